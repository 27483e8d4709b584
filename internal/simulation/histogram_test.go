package simulation

import (
	"errors"
	"math"
	"testing"
)

func TestBuildHistogram_CountsSumToTotal(t *testing.T) {
	durations := make([]float64, 1000)
	for i := range durations {
		durations[i] = 5 + float64(i%50)/10
	}

	bins, err := BuildHistogram(durations, 8, DefaultHistogramBins)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(bins) != DefaultHistogramBins {
		t.Fatalf("expected %d bins, got %d", DefaultHistogramBins, len(bins))
	}

	total := 0
	pctSum := 0.0
	for _, b := range bins {
		total += b.Count
		pctSum += b.Percentage
	}

	if total != len(durations) {
		t.Errorf("bin counts sum to %d, expected %d", total, len(durations))
	}

	if math.Abs(pctSum-100) > 1e-9 {
		t.Errorf("percentages sum to %f, expected 100", pctSum)
	}
}

func TestBuildHistogram_MaxSampleInLastBin(t *testing.T) {
	durations := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	bins, err := BuildHistogram(durations, 20, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The sample equal to the observed max must be clamped into the
	// last bin rather than computing to an out-of-range index.
	if bins[len(bins)-1].Count == 0 {
		t.Error("expected the max sample to land in the last bin")
	}
}

func TestBuildHistogram_DegenerateRange(t *testing.T) {
	durations := []float64{7, 7, 7, 7, 7}

	bins, err := BuildHistogram(durations, 8, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if bins[0].Count != len(durations) {
		t.Errorf("expected all %d samples in bin 0, got %d", len(durations), bins[0].Count)
	}

	for i, b := range bins[1:] {
		if b.Count != 0 {
			t.Errorf("expected bin %d empty, got %d", i+1, b.Count)
		}
	}
}

func TestBuildHistogram_SuccessClassification(t *testing.T) {
	// Samples span [0, 10] across 10 bins of width 1.
	durations := make([]float64, 100)
	for i := range durations {
		durations[i] = float64(i) * 10.0 / 99.0
	}

	bins, err := BuildHistogram(durations, 5.5, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, b := range bins {
		want := b.End <= 5.5
		if b.Success != want {
			t.Errorf("bin [%f, %f): Success = %v, expected %v", b.Start, b.End, b.Success, want)
		}
	}

	// The bin containing the threshold straddles it and must be failing.
	for _, b := range bins {
		if b.Start < 5.5 && b.End > 5.5 && b.Success {
			t.Errorf("straddling bin [%f, %f) marked as success", b.Start, b.End)
		}
	}
}

func TestBuildHistogram_InvalidInput(t *testing.T) {
	if _, err := BuildHistogram(nil, 8, 10); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for empty durations, got %v", err)
	}

	if _, err := BuildHistogram([]float64{1, 2}, 8, 0); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for zero bins, got %v", err)
	}
}
