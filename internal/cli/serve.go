package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/haskel/headroom/internal/config"
	"github.com/haskel/headroom/internal/logger"
	"github.com/haskel/headroom/internal/scenario"
	"github.com/haskel/headroom/internal/server"
	"github.com/haskel/headroom/internal/simulation"
	"github.com/haskel/headroom/internal/sysinfo"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the headroom server",
	Long:  `Start the headroom API server in foreground mode.`,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load config
	cfg := config.LoadOrDefault(cfgFile)

	// Override port if specified via flag
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = port
	}
	if cmd.Flags().Changed("host") {
		cfg.Server.Host = host
	}

	// Create logger
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	log.Info("headroom starting",
		"version", Version,
		"config", cfgFile,
	)

	// Create the simulation engine. A configured seed makes every
	// server run reproducible; zero means time-based seeding.
	var sampler simulation.Sampler
	if cfg.Simulation.Seed != 0 {
		sampler = simulation.NewSeededSampler(cfg.Simulation.Seed)
	} else {
		sampler = simulation.NewSampler()
	}
	engine := simulation.NewEngine(sampler, log)

	// Create scenario store
	store := scenario.New(cfg.Scenarios.DataDir, cfg.FlushInterval(), log)

	if err := store.Load(); err != nil {
		log.Warn("failed to load scenarios", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start scenario periodic flush
	store.Start(ctx)

	collector := sysinfo.NewCollector()

	// Write PID file if configured
	if cfg.Server.PIDFile != "" {
		if err := writePIDFile(cfg.Server.PIDFile); err != nil {
			log.Warn("failed to write PID file", "error", err)
		} else {
			defer os.Remove(cfg.Server.PIDFile)
		}
	}

	// Create and start server
	srv := server.New(cfg, engine, store, collector, log, Version)

	// Signal channels
	sighupCh := make(chan os.Signal, 1)
	sigCh := make(chan os.Signal, 1)
	shutdownDone := make(chan struct{})

	signal.Notify(sighupCh, syscall.SIGHUP)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Handle SIGHUP for hot-reload
	go func() {
		for {
			select {
			case <-sighupCh:
				log.Info("SIGHUP received, reloading configuration")

				newCfg := config.LoadOrDefault(cfgFile)
				if err := newCfg.Validate(); err != nil {
					log.Error("invalid configuration, reload aborted", "error", err)
					continue
				}

				srv.ReloadConfig(newCfg)
			case <-shutdownDone:
				return
			}
		}
	}()

	// Handle shutdown signals
	go func() {
		<-sigCh

		log.Info("shutdown signal received")

		// Stop receiving signals
		signal.Stop(sighupCh)
		signal.Stop(sigCh)
		close(shutdownDone)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown error", "error", err)
		}

		// Stop scenario store (saves final state)
		if err := store.Stop(); err != nil {
			log.Error("scenario store shutdown error", "error", err)
		}

		cancel()
	}()

	log.Info("headroom ready", "addr", srv.Addr())

	if err := srv.Start(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	log.Info("headroom stopped")
	return nil
}

func writePIDFile(path string) error {
	pid := os.Getpid()
	return os.WriteFile(path, []byte(fmt.Sprintf("%d", pid)), 0644)
}
