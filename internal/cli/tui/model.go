package tui

import (
	"time"
)

// Config holds TUI configuration
type Config struct {
	ServerURL       string
	RefreshInterval time.Duration
	User            string
	Password        string
}

// Model represents the TUI state
type Model struct {
	config Config

	// Data from API
	status    *StatusData
	scenarios []ScenarioData
	result    *ResultData

	// UI state
	width       int
	height      int
	cursor      int
	running     bool
	loading     bool
	err         error
	lastUpdated time.Time
}

// StatusData mirrors the /status response
type StatusData struct {
	Version   string       `json:"version"`
	UptimeSec float64      `json:"uptime_sec"`
	Scenarios int          `json:"scenarios"`
	System    SystemStatus `json:"system"`
}

type SystemStatus struct {
	Hostname   string  `json:"hostname"`
	CPUPercent float64 `json:"cpu_percent"`
	MemPercent float64 `json:"mem_percent"`
	Goroutines int     `json:"goroutines"`
}

// ScenarioData mirrors one entry of the /scenarios response
type ScenarioData struct {
	Name    string      `json:"name"`
	Request RequestData `json:"request"`
}

type RequestData struct {
	TaskA          TaskData `json:"task_a"`
	TaskB          TaskData `json:"task_b"`
	ThresholdHours float64  `json:"threshold_hours"`
	Trials         int      `json:"trials"`
}

type TaskData struct {
	Name     string  `json:"name"`
	MinHours float64 `json:"min_hours"`
	MaxHours float64 `json:"max_hours"`
}

type scenarioList struct {
	Scenarios []ScenarioData `json:"scenarios"`
	Total     int            `json:"total"`
}

// ResultData mirrors the simulation response
type ResultData struct {
	Probability    float64   `json:"probability"`
	Band           string    `json:"band"`
	SuccessCount   int       `json:"success_count"`
	TotalTrials    int       `json:"total_trials"`
	ThresholdHours float64   `json:"threshold_hours"`
	Histogram      []BinData `json:"histogram"`
}

type BinData struct {
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	Success    bool    `json:"success"`
}

// NewModel creates a new TUI model
func NewModel(cfg Config) Model {
	return Model{
		config:  cfg,
		loading: true,
	}
}
