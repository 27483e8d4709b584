package cli

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/haskel/headroom/internal/server"
	"github.com/haskel/headroom/internal/simulation"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Manage named simulation presets on the server",
}

var scenariosListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored scenarios",
	RunE:  runScenariosList,
}

var scenariosSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save a scenario from the simulation flags",
	Long: `Store a named simulation preset on the server.

Example:
  headroom scenarios save launch --a-min 2 --a-max 4 --b-min 3 --b-max 6 --threshold 8`,
	Args: cobra.ExactArgs(1),
	RunE: runScenariosSave,
}

var scenariosDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a stored scenario",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenariosDelete,
}

var scenariosRunCmd = &cobra.Command{
	Use:   "run <name>",
	Short: "Run a stored scenario",
	Args:  cobra.ExactArgs(1),
	RunE:  runScenariosRun,
}

var scenarioSeed int64

func init() {
	addSimFlags(scenariosSaveCmd)
	scenariosRunCmd.Flags().Int64Var(&scenarioSeed, "seed", 0, "random seed for a reproducible run")

	scenariosCmd.AddCommand(scenariosListCmd)
	scenariosCmd.AddCommand(scenariosSaveCmd)
	scenariosCmd.AddCommand(scenariosDeleteCmd)
	scenariosCmd.AddCommand(scenariosRunCmd)
	rootCmd.AddCommand(scenariosCmd)
}

func runScenariosList(cmd *cobra.Command, args []string) error {
	client := NewClient()

	data, status, err := client.Get("/scenarios")
	if err != nil {
		return fmt.Errorf("failed to list scenarios: %w", err)
	}

	if status != http.StatusOK {
		return serverError(status, data)
	}

	if jsonOut {
		fmt.Println(string(data))
		return nil
	}

	var resp server.ScenarioListResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return err
	}

	if resp.Total == 0 {
		fmt.Println("No scenarios stored.")
		return nil
	}

	fmt.Printf("%-20s %-42s %10s %8s\n", "NAME", "TASKS", "THRESHOLD", "TRIALS")
	for _, sc := range resp.Scenarios {
		tasks := fmt.Sprintf("%s + %s", formatTaskRange(sc.Request.TaskA), formatTaskRange(sc.Request.TaskB))
		fmt.Printf("%-20s %-42s %9.1fh %8d\n", sc.Name, tasks, sc.Request.ThresholdHours, sc.Request.Trials)
	}

	return nil
}

func runScenariosSave(cmd *cobra.Command, args []string) error {
	name := args[0]

	body := simulation.Request{
		TaskA:          simulation.TaskSpec{Name: taskAName, MinHours: taskAMin, MaxHours: taskAMax},
		TaskB:          simulation.TaskSpec{Name: taskBName, MinHours: taskBMin, MaxHours: taskBMax},
		ThresholdHours: threshold,
		Trials:         trials,
	}

	client := NewClient()

	data, status, err := client.Put("/scenarios/"+name, body)
	if err != nil {
		return fmt.Errorf("failed to save scenario: %w", err)
	}

	if status != http.StatusOK {
		return serverError(status, data)
	}

	if jsonOut {
		fmt.Println(string(data))
	} else {
		fmt.Printf("Scenario '%s' saved\n", name)
	}

	return nil
}

func runScenariosDelete(cmd *cobra.Command, args []string) error {
	name := args[0]

	client := NewClient()

	data, status, err := client.Delete("/scenarios/" + name)
	if err != nil {
		return fmt.Errorf("failed to delete scenario: %w", err)
	}

	if status != http.StatusNoContent {
		return serverError(status, data)
	}

	if jsonOut {
		fmt.Printf(`{"status":"deleted","name":%q}`+"\n", name)
	} else {
		fmt.Printf("Scenario '%s' deleted\n", name)
	}

	return nil
}

func runScenariosRun(cmd *cobra.Command, args []string) error {
	name := args[0]

	path := fmt.Sprintf("/scenarios/%s/run", name)
	if cmd.Flags().Changed("seed") {
		path = fmt.Sprintf("%s?seed=%d", path, scenarioSeed)
	}

	client := NewClient()

	data, status, err := client.Post(path, nil)
	if err != nil {
		return fmt.Errorf("failed to run scenario: %w", err)
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
