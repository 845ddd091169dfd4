package inspect

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/samegraph/internal/engine/graph"
)

// Run builds an inspector over result and blocks until the user quits it.
// Unlike the teacher's streaming tui.Renderer, there is no separate
// Start/Wait split: the graph is already final by the time Run is called,
// so there is nothing to race against and no errCh to multiplex.
func Run(result *graph.Result) error {
	program := tea.NewProgram(New(result))
	_, err := program.Run()
	return err
}
