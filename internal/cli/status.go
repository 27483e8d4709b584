package cli

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/haskel/headroom/internal/server"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Get current server status",
	Long:  `Query the running headroom server for uptime, scenario count and host metrics.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	client := NewClient()

	data, status, err := client.Get("/status")
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	if status != http.StatusOK {
		return serverError(status, data)
	}

	if jsonOut {
		fmt.Println(string(data))
		return nil
	}

	var resp server.StatusResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return err
	}

	fmt.Println("=== Server Status ===")
	fmt.Printf("Name:      %s\n", resp.Name)
	fmt.Printf("Version:   %s\n", resp.Version)
	fmt.Printf("Uptime:    %.0f s\n", resp.UptimeSec)
	fmt.Printf("Scenarios: %d\n", resp.Scenarios)

	if sys := resp.System; sys != nil {
		fmt.Printf("\nHost:\n")
		fmt.Printf("  Hostname:  %s\n", sys.Hostname)
		fmt.Printf("  CPU:       %.1f%%\n", sys.CPUPercent)
		if sys.MemTotalBytes > 0 {
			fmt.Printf("  Memory:    %.1f%% (%.1f / %.1f GB)\n",
				sys.MemPercent,
				float64(sys.MemUsedBytes)/1024/1024/1024,
				float64(sys.MemTotalBytes)/1024/1024/1024)
		}
		fmt.Printf("  Process:   %.1f MB RSS, %d goroutines\n",
			float64(sys.ProcRSSBytes)/1024/1024, sys.Goroutines)
	}

	return nil
}
