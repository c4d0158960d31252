package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent      = lipgloss.Color("#8BC34A")
	destructive = lipgloss.Color("#e53935")
	muted       = lipgloss.Color("#6b7280")
	info        = lipgloss.Color("#2196F3")
)

type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Focused lipgloss.Style
	Value   lipgloss.Style
	Empty   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Status  lipgloss.Style
	Help    lipgloss.Style
	Result  lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(info).MarginBottom(1),
		Label:   lipgloss.NewStyle().Width(38),
		Focused: lipgloss.NewStyle().Width(38).Bold(true).Foreground(accent),
		Value:   lipgloss.NewStyle(),
		Empty:   lipgloss.NewStyle().Foreground(muted).Italic(true),
		Success: lipgloss.NewStyle().Bold(true).Foreground(accent),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(destructive),
		Status:  lipgloss.NewStyle().Foreground(info),
		Help:    lipgloss.NewStyle().Foreground(muted).MarginTop(1),
		Result:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MarginTop(1),
	}
}
