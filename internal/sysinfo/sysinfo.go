// Package sysinfo collects a point-in-time snapshot of the host and
// the running process for the status endpoint and the dashboard.
package sysinfo

import (
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

// Snapshot describes the host and process at one moment.
type Snapshot struct {
	Hostname      string    `json:"hostname"`
	Platform      string    `json:"platform"`
	UptimeSec     uint64    `json:"uptime_sec"`
	CPUPercent    float64   `json:"cpu_percent"`
	MemUsedBytes  uint64    `json:"mem_used_bytes"`
	MemTotalBytes uint64    `json:"mem_total_bytes"`
	MemPercent    float64   `json:"mem_percent"`
	ProcRSSBytes  uint64    `json:"proc_rss_bytes"`
	ProcCPUPct    float64   `json:"proc_cpu_percent"`
	Goroutines    int       `json:"goroutines"`
	CollectedAt   time.Time `json:"collected_at"`
}

// Collector takes snapshots. It keeps a handle to the current process
// so repeated CPU measurements can diff against the previous call.
type Collector struct {
	proc *process.Process
}

func NewCollector() *Collector {
	// A nil proc just means process stats stay zero in snapshots.
	proc, _ := process.NewProcess(int32(os.Getpid()))
	return &Collector{proc: proc}
}

// Collect gathers a snapshot. Individual probe failures leave their
// fields zeroed rather than failing the whole snapshot.
func (c *Collector) Collect() *Snapshot {
	snap := &Snapshot{
		Goroutines:  runtime.NumGoroutine(),
		CollectedAt: time.Now(),
	}

	if info, err := host.Info(); err == nil {
		snap.Hostname = info.Hostname
		snap.Platform = info.Platform
		snap.UptimeSec = info.Uptime
	}

	if percentages, err := cpu.Percent(0, false); err == nil && len(percentages) > 0 {
		snap.CPUPercent = percentages[0]
	}

	if v, err := mem.VirtualMemory(); err == nil {
		snap.MemUsedBytes = v.Used
		snap.MemTotalBytes = v.Total
		snap.MemPercent = v.UsedPercent
	}

	if c.proc != nil {
		if memInfo, err := c.proc.MemoryInfo(); err == nil {
			snap.ProcRSSBytes = memInfo.RSS
		}
		if pct, err := c.proc.CPUPercent(); err == nil {
			snap.ProcCPUPct = pct
		}
	}

	return snap
}
