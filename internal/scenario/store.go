// Package scenario persists named simulation presets so a plan can be
// re-run without retyping its parameters. Results are never stored;
// only the inputs are.
package scenario

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/haskel/headroom/internal/simulation"
)

// Scenario is one named simulation preset.
type Scenario struct {
	Name      string             `yaml:"name" json:"name"`
	Request   simulation.Request `yaml:"request" json:"request"`
	UpdatedAt time.Time          `yaml:"updated_at" json:"updated_at"`
}

type fileData struct {
	Version   int                  `yaml:"version"`
	UpdatedAt time.Time            `yaml:"updated_at"`
	Scenarios map[string]*Scenario `yaml:"scenarios"`
}

const (
	currentVersion = 1
	fileName       = "scenarios.yaml"
)

// Store holds scenarios in memory and flushes them to a YAML file.
type Store struct {
	dataDir       string
	flushInterval time.Duration
	logger        *slog.Logger

	mu     sync.RWMutex
	data   *fileData
	dirty  bool
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a store rooted at dataDir.
func New(dataDir string, flushInterval time.Duration, logger *slog.Logger) *Store {
	return &Store{
		dataDir:       dataDir,
		flushInterval: flushInterval,
		logger:        logger,
		data:          newEmptyData(),
		done:          make(chan struct{}),
	}
}

func newEmptyData() *fileData {
	return &fileData{
		Version:   currentVersion,
		UpdatedAt: time.Now(),
		Scenarios: make(map[string]*Scenario),
	}
}

// Load reads scenarios from disk. A missing file is not an error.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dataDir, fileName)

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Info("no existing scenario file, starting fresh", "path", path)
			s.data = newEmptyData()
			return nil
		}
		return err
	}

	var data fileData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		s.logger.Warn("failed to decode scenario file, starting fresh", "error", err)
		s.data = newEmptyData()
		return nil
	}

	if data.Version > currentVersion {
		s.logger.Warn("scenario file version is newer than supported, starting fresh",
			"file_version", data.Version,
			"supported_version", currentVersion,
		)
		s.data = newEmptyData()
		return nil
	}

	if data.Scenarios == nil {
		data.Scenarios = make(map[string]*Scenario)
	}

	s.data = &data
	s.logger.Info("loaded scenarios from disk",
		"path", path,
		"scenarios", len(data.Scenarios),
	)

	return nil
}

// Save writes scenarios to disk.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	if err := os.MkdirAll(s.dataDir, 0755); err != nil {
		return err
	}

	path := filepath.Join(s.dataDir, fileName)
	tempPath := path + ".tmp"

	s.data.UpdatedAt = time.Now()

	raw, err := yaml.Marshal(s.data)
	if err != nil {
		return err
	}

	if err := os.WriteFile(tempPath, raw, 0644); err != nil {
		return err
	}

	// Atomic rename
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return err
	}

	s.dirty = false
	s.logger.Debug("saved scenarios to disk", "path", path)

	return nil
}

// Start starts the periodic flush goroutine.
func (s *Store) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	go s.flushLoop(ctx)
}

// Stop stops the periodic flush and saves final state.
func (s *Store) Stop() error {
	if s.cancel != nil {
		s.cancel()
		<-s.done
	}

	return s.Save()
}

func (s *Store) flushLoop(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.mu.RLock()
			dirty := s.dirty
			s.mu.RUnlock()

			if dirty {
				if err := s.Save(); err != nil {
					s.logger.Error("failed to save scenarios", "error", err)
				}
			}
		}
	}
}

// Get returns the named scenario, or false if it does not exist.
func (s *Store) Get(name string) (*Scenario, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sc, ok := s.data.Scenarios[name]
	if !ok {
		return nil, false
	}

	copied := *sc
	return &copied, true
}

// List returns all scenarios sorted by name.
func (s *Store) List() []*Scenario {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Scenario, 0, len(s.data.Scenarios))
	for _, sc := range s.data.Scenarios {
		copied := *sc
		result = append(result, &copied)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Put inserts or replaces the named scenario.
func (s *Store) Put(name string, req simulation.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Scenarios[name] = &Scenario{
		Name:      name,
		Request:   req,
		UpdatedAt: time.Now(),
	}
	s.dirty = true
}

// Delete removes the named scenario, reporting whether it existed.
func (s *Store) Delete(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data.Scenarios[name]; !ok {
		return false
	}

	delete(s.data.Scenarios, name)
	s.dirty = true
	return true
}

// Count returns the number of stored scenarios.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data.Scenarios)
}

// IsDirty returns whether there are unsaved changes.
func (s *Store) IsDirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty
}
