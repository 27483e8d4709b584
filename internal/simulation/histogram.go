package simulation

import (
	"fmt"
	"math"
)

// DefaultHistogramBins is the bin count used when none is configured.
const DefaultHistogramBins = 10

// Bin is one contiguous sub-range of observed total durations.
type Bin struct {
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	Success    bool    `json:"success"`
}

// BuildHistogram bins the sampled totals into numBins equal-width bins.
//
// A bin is marked Success only when its entire range lies at or under
// the threshold; a bin straddling the threshold is marked failing. The
// classification is deliberately bin-level, not sample-level.
func BuildHistogram(durations []float64, threshold float64, numBins int) ([]Bin, error) {
	if len(durations) == 0 {
		return nil, fmt.Errorf("%w: no durations to bin", ErrInvalidParameter)
	}

	if numBins < 1 {
		return nil, fmt.Errorf("%w: bin count must be positive, got %d", ErrInvalidParameter, numBins)
	}

	minD, maxD := durations[0], durations[0]
	for _, d := range durations[1:] {
		if d < minD {
			minD = d
		}
		if d > maxD {
			maxD = d
		}
	}

	binSize := (maxD - minD) / float64(numBins)

	bins := make([]Bin, numBins)
	for i := range bins {
		bins[i].Start = minD + float64(i)*binSize
		bins[i].End = minD + float64(i+1)*binSize
		bins[i].Success = bins[i].End <= threshold
	}

	for _, d := range durations {
		idx := 0
		if binSize > 0 {
			// The clamp puts the sample equal to maxD into the last bin.
			idx = int(math.Floor((d - minD) / binSize))
			if idx > numBins-1 {
				idx = numBins - 1
			}
		}
		bins[idx].Count++
	}

	total := float64(len(durations))
	for i := range bins {
		bins[i].Percentage = float64(bins[i].Count) / total * 100
	}

	return bins, nil
}
