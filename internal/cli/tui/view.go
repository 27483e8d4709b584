package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const histogramWidth = 30

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	sections = append(sections, m.renderTitleBar())

	if m.err != nil {
		sections = append(sections, errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	sections = append(sections, m.renderScenarios())

	if m.result != nil {
		sections = append(sections, m.renderResult())
	}

	sections = append(sections, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTitleBar() string {
	title := titleStyle.Render("HEADROOM DASHBOARD")

	refreshInfo := fmt.Sprintf("↻ %s", m.config.RefreshInterval)
	if m.loading {
		refreshInfo = "↻ loading..."
	}
	if m.running {
		refreshInfo = "▶ simulating..."
	}

	help := helpStyle.Render("q:quit r:refresh ↑↓:select enter:run")

	rightPart := fmt.Sprintf("%s | %s", refreshInfo, help)
	spacing := m.width - lipgloss.Width(title) - lipgloss.Width(rightPart) - 2
	if spacing < 1 {
		spacing = 1
	}

	return fmt.Sprintf("%s%s%s", title, strings.Repeat(" ", spacing), helpStyle.Render(rightPart))
}

func (m Model) renderScenarios() string {
	var lines []string
	lines = append(lines, sectionHeaderStyle.Render("  Scenarios"))

	if len(m.scenarios) == 0 {
		lines = append(lines, labelStyle.Render("  no scenarios stored, add one with 'headroom scenarios save'"))
		return strings.Join(lines, "\n")
	}

	for i, sc := range m.scenarios {
		marker := "  "
		style := valueStyle
		if i == m.cursor {
			marker = "> "
			style = selectedStyle
		}

		row := fmt.Sprintf("%s%-20s %s [%.1f-%.1fh] + %s [%.1f-%.1fh]  ≤ %.1fh, %d trials",
			marker, sc.Name,
			sc.Request.TaskA.Name, sc.Request.TaskA.MinHours, sc.Request.TaskA.MaxHours,
			sc.Request.TaskB.Name, sc.Request.TaskB.MinHours, sc.Request.TaskB.MaxHours,
			sc.Request.ThresholdHours, sc.Request.Trials)

		lines = append(lines, style.Render(row))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderResult() string {
	r := m.result

	var lines []string
	lines = append(lines, sectionHeaderStyle.Render("  Last Run"))

	probStyle := lipgloss.NewStyle().Bold(true).Foreground(bandColor(r.Band))
	summary := fmt.Sprintf("  %s  %s",
		probStyle.Render(fmt.Sprintf("%.1f%% on time (%s)", r.Probability*100, r.Band)),
		labelStyle.Render(fmt.Sprintf("%d/%d trials ≤ %.1fh", r.SuccessCount, r.TotalTrials, r.ThresholdHours)))
	lines = append(lines, summary)

	maxPct := 0.0
	for _, bin := range r.Histogram {
		if bin.Percentage > maxPct {
			maxPct = bin.Percentage
		}
	}

	for _, bin := range r.Histogram {
		filled := 0
		if maxPct > 0 {
			filled = int(bin.Percentage / maxPct * histogramWidth)
		}
		if filled > histogramWidth {
			filled = histogramWidth
		}

		barStyle := lateBarStyle
		if bin.Success {
			barStyle = okBarStyle
		}

		bar := barStyle.Render(strings.Repeat("█", filled)) +
			histogramEmptyStyle.Render(strings.Repeat("░", histogramWidth-filled))

		lines = append(lines, fmt.Sprintf("  %6.2f-%6.2fh [%s] %5.1f%%",
			bin.Start, bin.End, bar, bin.Percentage))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	if m.status == nil {
		return ""
	}

	sys := m.status.System
	updated := m.lastUpdated.Format("15:04:05")

	return helpStyle.Render(fmt.Sprintf(
		"  %s │ CPU: %.1f%% │ Mem: %.1f%% │ Goroutines: %d │ Updated: %s",
		sys.Hostname,
		sys.CPUPercent,
		sys.MemPercent,
		sys.Goroutines,
		updated,
	))
}
