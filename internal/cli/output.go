package cli

import (
	"fmt"
	"strings"

	"github.com/haskel/headroom/internal/simulation"
)

const histogramBarWidth = 30

// formatTaskRange renders a task as "name [2.0-4.0h]", collapsing a
// fixed duration to a single value.
func formatTaskRange(t simulation.TaskSpec) string {
	if t.Fixed() {
		return fmt.Sprintf("%s [%.1fh]", t.Name, t.MinHours)
	}
	return fmt.Sprintf("%s [%.1f-%.1fh]", t.Name, t.MinHours, t.MaxHours)
}

// printResult pretty-prints a simulation outcome with an ASCII
// distribution of sampled totals.
func printResult(probability float64, band string, successes, totalTrials int, thresholdHours float64, histogram []simulation.Bin) {
	fmt.Println("=== Simulation Result ===")
	fmt.Printf("Probability: %.1f%% (%s)\n", probability*100, band)
	fmt.Printf("Successes:   %d / %d\n", successes, totalTrials)
	fmt.Printf("Threshold:   %.1f hours\n", thresholdHours)

	if len(histogram) == 0 {
		return
	}

	fmt.Println("\nDistribution of total duration:")

	maxPct := 0.0
	for _, bin := range histogram {
		if bin.Percentage > maxPct {
			maxPct = bin.Percentage
		}
	}

	for _, bin := range histogram {
		width := 0
		if maxPct > 0 {
			width = int(bin.Percentage / maxPct * histogramBarWidth)
		}

		marker := "late"
		if bin.Success {
			marker = "ok"
		}

		fmt.Printf("  %6.2f - %6.2f h  %-*s %5.1f%%  %s\n",
			bin.Start, bin.End,
			histogramBarWidth, strings.Repeat("█", width),
			bin.Percentage, marker)
	}
}
