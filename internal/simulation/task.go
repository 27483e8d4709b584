package simulation

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter indicates a simulation request failed validation.
// The engine refuses to run rather than produce a degenerate result.
var ErrInvalidParameter = errors.New("invalid simulation parameter")

const (
	// MinTrials is the smallest accepted trial count. Below this the
	// histogram bins stop being statistically meaningful.
	MinTrials = 100

	// MaxTrials is the largest accepted trial count. Estimator precision
	// grows with sqrt(trials), so raising this buys little.
	MaxTrials = 10000
)

// TaskSpec describes one task with an uncertain duration, modeled as
// uniformly distributed between MinHours and MaxHours.
type TaskSpec struct {
	Name     string  `json:"name" yaml:"name"`
	MinHours float64 `json:"min_hours" yaml:"min_hours"`
	MaxHours float64 `json:"max_hours" yaml:"max_hours"`
}

// Fixed reports whether the task duration is deterministic.
func (t TaskSpec) Fixed() bool {
	return t.MinHours == t.MaxHours
}

// Validate checks the duration range invariants.
func (t TaskSpec) Validate() error {
	var errs []error

	if t.MinHours < 0 {
		errs = append(errs, fmt.Errorf("%w: min_hours must be non-negative, got %g", ErrInvalidParameter, t.MinHours))
	}

	if t.MaxHours < t.MinHours {
		errs = append(errs, fmt.Errorf("%w: min_hours %g exceeds max_hours %g", ErrInvalidParameter, t.MinHours, t.MaxHours))
	}

	return errors.Join(errs...)
}

// Request holds the validated inputs for one simulation run.
type Request struct {
	TaskA          TaskSpec `json:"task_a" yaml:"task_a"`
	TaskB          TaskSpec `json:"task_b" yaml:"task_b"`
	ThresholdHours float64  `json:"threshold_hours" yaml:"threshold_hours"`
	Trials         int      `json:"trials" yaml:"trials"`
}

// Validate checks all preconditions before any sampling happens.
func (r Request) Validate() error {
	var errs []error

	if err := r.TaskA.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("task a: %w", err))
	}

	if err := r.TaskB.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("task b: %w", err))
	}

	if r.ThresholdHours <= 0 {
		errs = append(errs, fmt.Errorf("%w: threshold_hours must be positive, got %g", ErrInvalidParameter, r.ThresholdHours))
	}

	if r.Trials < MinTrials || r.Trials > MaxTrials {
		errs = append(errs, fmt.Errorf("%w: trials must be between %d and %d, got %d", ErrInvalidParameter, MinTrials, MaxTrials, r.Trials))
	}

	return errors.Join(errs...)
}
