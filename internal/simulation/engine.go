// Package simulation implements the Monte Carlo engine that estimates
// the probability of two sequential tasks completing within a time
// budget. Task durations are independent uniform random variables; the
// estimate is the fraction of sampled trials whose total stays at or
// under the threshold.
package simulation

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Engine runs simulations. It holds no state across runs beyond the
// random source; every Run produces a fresh, independent result.
type Engine struct {
	sampler Sampler
	logger  *slog.Logger
}

// NewEngine creates an engine with the given sampler.
func NewEngine(sampler Sampler, logger *slog.Logger) *Engine {
	return &Engine{
		sampler: sampler,
		logger:  logger,
	}
}

// Run executes one simulation. Validation happens before any sampling;
// an invalid request returns ErrInvalidParameter and no result.
func (e *Engine) Run(req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()

	durations := make([]float64, req.Trials)
	successes := 0

	for i := 0; i < req.Trials; i++ {
		a := e.sampler.Uniform(req.TaskA.MinHours, req.TaskA.MaxHours)
		b := e.sampler.Uniform(req.TaskB.MinHours, req.TaskB.MaxHours)

		total := a + b
		durations[i] = total

		if total <= req.ThresholdHours {
			successes++
		}
	}

	result := &Result{
		ID:             uuid.NewString(),
		Durations:      durations,
		SuccessCount:   successes,
		TotalTrials:    req.Trials,
		Probability:    float64(successes) / float64(req.Trials),
		ThresholdHours: req.ThresholdHours,
		CompletedAt:    time.Now(),
	}

	e.logger.Debug("simulation complete",
		"id", result.ID,
		"trials", result.TotalTrials,
		"successes", result.SuccessCount,
		"probability", result.Probability,
		"threshold_hours", result.ThresholdHours,
		"duration", time.Since(start),
	)

	return result, nil
}
