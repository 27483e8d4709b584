package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/haskel/headroom/internal/cli/tui"
)

var refreshInterval time.Duration

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	Long: `Launch an interactive terminal dashboard that browses stored
scenarios and runs them against a headroom server.

Examples:
  headroom tui                    # Basic launch with default settings
  headroom tui --refresh 2s       # Slower refresh rate
  headroom tui --host 10.0.0.1    # Connect to remote server`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().DurationVar(&refreshInterval, "refresh", 5*time.Second, "dashboard refresh interval")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	config := tui.Config{
		ServerURL:       GetServerURL(),
		RefreshInterval: refreshInterval,
		User:            user,
		Password:        password,
	}

	return tui.Run(config)
}
