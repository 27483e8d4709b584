package simulation

import "time"

// Result is the immutable output of one engine run.
type Result struct {
	ID             string    `json:"id"`
	Durations      []float64 `json:"durations,omitempty"`
	SuccessCount   int       `json:"success_count"`
	TotalTrials    int       `json:"total_trials"`
	Probability    float64   `json:"probability"`
	ThresholdHours float64   `json:"threshold_hours"`
	CompletedAt    time.Time `json:"completed_at"`
}

// Band classifies a probability estimate for display.
type Band string

const (
	BandHigh     Band = "high"
	BandModerate Band = "moderate"
	BandLow      Band = "low"
)

// BandFor returns the qualitative band for a probability estimate.
func BandFor(probability float64) Band {
	switch {
	case probability >= 0.8:
		return BandHigh
	case probability >= 0.5:
		return BandModerate
	default:
		return BandLow
	}
}

// Band returns the qualitative band for this result.
func (r *Result) Band() Band {
	return BandFor(r.Probability)
}
