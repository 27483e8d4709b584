package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/haskel/headroom/internal/config"
)

var stopPIDFile string

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running headroom server",
	Long: `Send SIGTERM to the server process recorded in the PID file.
The server finishes in-flight requests and flushes scenarios before exiting.`,
	RunE: runStop,
}

func init() {
	stopCmd.Flags().StringVar(&stopPIDFile, "pid-file", "", "PID file path (overrides config)")
	rootCmd.AddCommand(stopCmd)
}

func runStop(cmd *cobra.Command, args []string) error {
	pidPath := stopPIDFile
	if pidPath == "" {
		pidPath = config.LoadOrDefault(cfgFile).Server.PIDFile
	}
	if pidPath == "" {
		return errors.New("no PID file configured, pass --pid-file")
	}

	pid, err := readPIDFile(pidPath)
	if err != nil {
		return err
	}

	proc, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("process %d not found: %w", pid, err)
	}

	if err := proc.Signal(syscall.SIGTERM); err != nil {
		return fmt.Errorf("failed to signal process %d: %w", pid, err)
	}

	if jsonOut {
		out, _ := json.Marshal(map[string]any{
			"status":   "stopping",
			"pid":      pid,
			"pid_file": pidPath,
		})
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("Stopping headroom server: pid %d (from %s)\n", pid, pidPath)
	return nil
}

// readPIDFile parses the PID recorded by the serve command.
func readPIDFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("PID file %s not found, is the server running?", path)
		}
		return 0, fmt.Errorf("failed to read PID file %s: %w", path, err)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, fmt.Errorf("PID file %s does not contain a valid pid", path)
	}

	return pid, nil
}
