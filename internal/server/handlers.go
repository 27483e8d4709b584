package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/haskel/headroom/internal/scenario"
	"github.com/haskel/headroom/internal/simulation"
	"github.com/haskel/headroom/internal/sysinfo"
)

type InfoResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type StatusResponse struct {
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	UptimeSec float64           `json:"uptime_sec"`
	Scenarios int               `json:"scenarios"`
	System    *sysinfo.Snapshot `json:"system"`
}

// SimulateRequest is the POST /simulate body. Trials defaults to the
// configured value when omitted; a seed makes the run reproducible.
type SimulateRequest struct {
	TaskA            simulation.TaskSpec `json:"task_a"`
	TaskB            simulation.TaskSpec `json:"task_b"`
	ThresholdHours   float64             `json:"threshold_hours"`
	Trials           int                 `json:"trials,omitempty"`
	Seed             *int64              `json:"seed,omitempty"`
	IncludeDurations bool                `json:"include_durations,omitempty"`
}

type SimulateResponse struct {
	ID             string           `json:"id"`
	Probability    float64          `json:"probability"`
	Band           simulation.Band  `json:"band"`
	SuccessCount   int              `json:"success_count"`
	TotalTrials    int              `json:"total_trials"`
	ThresholdHours float64          `json:"threshold_hours"`
	Histogram      []simulation.Bin `json:"histogram"`
	Durations      []float64        `json:"durations,omitempty"`
	CompletedAt    time.Time        `json:"completed_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ScenarioListResponse struct {
	Scenarios []*scenario.Scenario `json:"scenarios"`
	Total     int                  `json:"total"`
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	resp := InfoResponse{
		Name:    "headroom",
		Version: s.version,
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp := StatusResponse{
		Name:      "headroom",
		Version:   s.version,
		UptimeSec: time.Since(s.startedAt).Seconds(),
		Scenarios: s.store.Count(),
		System:    s.collector.Collect(),
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	simReq := simulation.Request{
		TaskA:          req.TaskA,
		TaskB:          req.TaskB,
		ThresholdHours: req.ThresholdHours,
		Trials:         req.Trials,
	}
	if simReq.Trials == 0 {
		simReq.Trials = s.config.Simulation.DefaultTrials
	}

	s.runAndRespond(w, simReq, req.Seed, req.IncludeDurations)
}

func (s *Server) handleScenarioList(w http.ResponseWriter, r *http.Request) {
	list := s.store.List()

	s.writeJSON(w, http.StatusOK, ScenarioListResponse{
		Scenarios: list,
		Total:     len(list),
	})
}

func (s *Server) handleScenarioGet(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	sc, ok := s.store.Get(name)
	if !ok {
		s.writeError(w, http.StatusNotFound, "scenario not found")
		return
	}

	s.writeJSON(w, http.StatusOK, sc)
}

func (s *Server) handleScenarioPut(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		s.writeError(w, http.StatusBadRequest, "scenario name is required")
		return
	}

	var req simulation.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Trials == 0 {
		req.Trials = s.config.Simulation.DefaultTrials
	}

	if err := req.Validate(); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.store.Put(name, req)

	sc, _ := s.store.Get(name)
	s.writeJSON(w, http.StatusOK, sc)
}

func (s *Server) handleScenarioDelete(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	if !s.store.Delete(name) {
		s.writeError(w, http.StatusNotFound, "scenario not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleScenarioRun(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	sc, ok := s.store.Get(name)
	if !ok {
		s.writeError(w, http.StatusNotFound, "scenario not found")
		return
	}

	var seed *int64
	if raw := r.URL.Query().Get("seed"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "seed must be an integer")
			return
		}
		seed = &parsed
	}

	includeDurations := r.URL.Query().Get("include_durations") == "true"

	s.runAndRespond(w, sc.Request, seed, includeDurations)
}

// runAndRespond executes the request on the shared engine, or on a
// one-off seeded engine when a seed is given, and writes the response.
func (s *Server) runAndRespond(w http.ResponseWriter, req simulation.Request, seed *int64, includeDurations bool) {
	engine := s.engine
	if seed != nil {
		engine = simulation.NewEngine(simulation.NewSeededSampler(*seed), s.logger)
	}

	result, err := engine.Run(req)
	if err != nil {
		if errors.Is(err, simulation.ErrInvalidParameter) {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("simulation failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "simulation failed")
		return
	}

	histogram, err := simulation.BuildHistogram(result.Durations, req.ThresholdHours, s.config.Simulation.HistogramBins)
	if err != nil {
		s.logger.Error("histogram build failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "histogram build failed")
		return
	}

	resp := SimulateResponse{
		ID:             result.ID,
		Probability:    result.Probability,
		Band:           result.Band(),
		SuccessCount:   result.SuccessCount,
		TotalTrials:    result.TotalTrials,
		ThresholdHours: result.ThresholdHours,
		Histogram:      histogram,
		CompletedAt:    result.CompletedAt,
	}
	if includeDurations {
		resp.Durations = result.Durations
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, ErrorResponse{Error: msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response",
			"error", err,
			"status", status,
		)
	}
}
