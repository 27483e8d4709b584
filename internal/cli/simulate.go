package cli

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/haskel/headroom/internal/server"
	"github.com/haskel/headroom/internal/simulation"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a simulation on a headroom server",
	Long: `Send a simulation request to a running headroom server and print
the result.

Examples:
  headroom simulate --a-min 2 --a-max 4 --b-min 3 --b-max 6 --threshold 8
  headroom simulate --host 10.0.0.1 --a-min 2 --a-max 4 --b-min 3 --b-max 6 --threshold 8 --seed 42`,
	RunE: runSimulate,
}

func init() {
	addSimFlags(simulateCmd)
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	body := server.SimulateRequest{
		TaskA:            simulation.TaskSpec{Name: taskAName, MinHours: taskAMin, MaxHours: taskAMax},
		TaskB:            simulation.TaskSpec{Name: taskBName, MinHours: taskBMin, MaxHours: taskBMax},
		ThresholdHours:   threshold,
		Trials:           trials,
		IncludeDurations: showDurs,
	}
	if cmd.Flags().Changed("seed") {
		body.Seed = &seed
	}

	client := NewClient()

	data, status, err := client.Post("/simulate", body)
	if err != nil {
		return fmt.Errorf("failed to simulate: %w", err)
	}

	if status != http.StatusOK {
		return serverError(status, data)
	}

	if jsonOut {
		fmt.Println(string(data))
		return nil
	}

	var resp server.SimulateResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	printResult(resp.Probability, string(resp.Band), resp.SuccessCount, resp.TotalTrials, resp.ThresholdHours, resp.Histogram)
	return nil
}

// serverError extracts the error message from an API error body.
func serverError(status int, data []byte) error {
	var errResp server.ErrorResponse
	if err := json.Unmarshal(data, &errResp); err == nil && errResp.Error != "" {
		return fmt.Errorf("server returned status %d: %s", status, errResp.Error)
	}
	return fmt.Errorf("server returned status %d: %s", status, string(data))
}
