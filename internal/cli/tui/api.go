package tui

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Messages for tea.Cmd
type statusMsg struct {
	data *StatusData
	err  error
}

type scenariosMsg struct {
	data []ScenarioData
	err  error
}

type resultMsg struct {
	data *ResultData
	err  error
}

type tickMsg time.Time

// API client for TUI
type apiClient struct {
	baseURL  string
	client   *http.Client
	user     string
	password string
}

func newAPIClient(cfg Config) *apiClient {
	return &apiClient{
		baseURL: cfg.ServerURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		user:     cfg.User,
		password: cfg.Password,
	}
}

func (c *apiClient) do(method, path string) ([]byte, error) {
	req, err := http.NewRequest(method, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	if c.user != "" && c.password != "" {
		req.SetBasicAuth(c.user, c.password)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// fetchStatus fetches server status as tea.Cmd
func fetchStatus(cfg Config) tea.Cmd {
	return func() tea.Msg {
		client := newAPIClient(cfg)
		data, err := client.do(http.MethodGet, "/status")
		if err != nil {
			return statusMsg{err: err}
		}

		var status StatusData
		if err := json.Unmarshal(data, &status); err != nil {
			return statusMsg{err: fmt.Errorf("failed to parse status: %w", err)}
		}

		return statusMsg{data: &status}
	}
}

// fetchScenarios fetches the scenario list as tea.Cmd
func fetchScenarios(cfg Config) tea.Cmd {
	return func() tea.Msg {
		client := newAPIClient(cfg)
		data, err := client.do(http.MethodGet, "/scenarios")
		if err != nil {
			return scenariosMsg{err: err}
		}

		var list scenarioList
		if err := json.Unmarshal(data, &list); err != nil {
			return scenariosMsg{err: fmt.Errorf("failed to parse scenarios: %w", err)}
		}

		return scenariosMsg{data: list.Scenarios}
	}
}

// runScenario triggers a simulation run for the named scenario
func runScenario(cfg Config, name string) tea.Cmd {
	return func() tea.Msg {
		client := newAPIClient(cfg)
		data, err := client.do(http.MethodPost, fmt.Sprintf("/scenarios/%s/run", name))
		if err != nil {
			return resultMsg{err: err}
		}

		var result ResultData
		if err := json.Unmarshal(data, &result); err != nil {
			return resultMsg{err: fmt.Errorf("failed to parse result: %w", err)}
		}

		return resultMsg{data: &result}
	}
}

// tick creates a periodic tick command
func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
