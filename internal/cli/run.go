package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haskel/headroom/internal/config"
	"github.com/haskel/headroom/internal/logger"
	"github.com/haskel/headroom/internal/simulation"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulation locally without a server",
	Long: `Run a Monte Carlo simulation in-process and print the result.

Examples:
  headroom run --a-min 2 --a-max 4 --b-min 3 --b-max 6 --threshold 8
  headroom run --a-min 2 --a-max 4 --b-min 3 --b-max 6 --threshold 8 --trials 5000 --seed 42`,
	RunE: runLocal,
}

var (
	taskAName string
	taskAMin  float64
	taskAMax  float64
	taskBName string
	taskBMin  float64
	taskBMax  float64
	threshold float64
	trials    int
	seed      int64
	showDurs  bool
)

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&taskAName, "a-name", "task-a", "first task name")
	cmd.Flags().Float64Var(&taskAMin, "a-min", 0, "first task minimum duration in hours")
	cmd.Flags().Float64Var(&taskAMax, "a-max", 0, "first task maximum duration in hours")
	cmd.Flags().StringVar(&taskBName, "b-name", "task-b", "second task name")
	cmd.Flags().Float64Var(&taskBMin, "b-min", 0, "second task minimum duration in hours")
	cmd.Flags().Float64Var(&taskBMax, "b-max", 0, "second task maximum duration in hours")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "completion threshold in hours")
	cmd.Flags().IntVar(&trials, "trials", 0, "trial count (default from config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for reproducible runs")
	cmd.Flags().BoolVar(&showDurs, "durations", false, "include raw durations in JSON output")
}

func init() {
	addSimFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}

func buildRequest(cfg *config.Config) simulation.Request {
	req := simulation.Request{
		TaskA:          simulation.TaskSpec{Name: taskAName, MinHours: taskAMin, MaxHours: taskAMax},
		TaskB:          simulation.TaskSpec{Name: taskBName, MinHours: taskBMin, MaxHours: taskBMax},
		ThresholdHours: threshold,
		Trials:         trials,
	}
	if req.Trials == 0 {
		req.Trials = cfg.Simulation.DefaultTrials
	}
	return req
}

func runLocal(cmd *cobra.Command, args []string) error {
	cfg := config.LoadOrDefault(cfgFile)
	req := buildRequest(cfg)

	var sampler simulation.Sampler
	if cmd.Flags().Changed("seed") {
		sampler = simulation.NewSeededSampler(seed)
	} else {
		sampler = simulation.NewSampler()
	}

	log := logger.New("error", "text")
	if verbose {
		log = logger.New("debug", "text")
	}

	engine := simulation.NewEngine(sampler, log)

	result, err := engine.Run(req)
	if err != nil {
		return err
	}

	histogram, err := simulation.BuildHistogram(result.Durations, req.ThresholdHours, cfg.Simulation.HistogramBins)
	if err != nil {
		return err
	}

	if jsonOut {
		out := map[string]any{
			"id":              result.ID,
			"probability":     result.Probability,
			"band":            result.Band(),
			"success_count":   result.SuccessCount,
			"total_trials":    result.TotalTrials,
			"threshold_hours": result.ThresholdHours,
			"histogram":       histogram,
			"completed_at":    result.CompletedAt,
		}
		if showDurs {
			out["durations"] = result.Durations
		}

		raw, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(raw))
		return nil
	}

	printResult(result.Probability, string(result.Band()), result.SuccessCount, result.TotalTrials, result.ThresholdHours, histogram)
	return nil
}
