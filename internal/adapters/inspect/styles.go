package inspect

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/samegraph/internal/ui/style"
)

var (
	listStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(style.Slate)

	detailStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(style.Slate)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White)

	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Iris).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	dimStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(style.Mist)
)
