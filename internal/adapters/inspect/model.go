// Package inspect implements a static bubbletea browser over a finished
// graph.Result: a scrollable node list paired with a detail pane showing
// a selected node's kind, dependencies, dependents, and required parents.
// Unlike the teacher's task-execution TUI, construction has already
// finished by the time this runs, so there is no live log stream to
// render, no span tracking, and no follow-mode.
package inspect

import (
	"reflect"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/samegraph/internal/core/domain"
	"go.trai.ch/samegraph/internal/engine/graph"
)

const listWidthRatio = 0.35

// row is one entry in the node list: the node itself plus whatever the
// list needs to render and sort it without re-deriving it every frame.
type row struct {
	node    domain.Node
	kind    string
	isInput bool
}

// Model is the inspector's bubbletea state.
type Model struct {
	Rows        []row
	ByPath      map[string]int // full_path -> index into Rows
	SelectedIdx int
	ListOffset  int

	ListWidth   int
	ListHeight  int
	DetailWidth int
	Height      int
}

// New builds an inspector model from a finished graph result. Rows are
// sorted alphabetically by full_path so the list is stable and searchable
// regardless of BFS discovery order.
func New(result *graph.Result) *Model {
	inputs := make(map[string]struct{}, len(result.InputNodes))
	for _, n := range result.InputNodes {
		inputs[n.Base().Target().FullPath()] = struct{}{}
	}

	rows := make([]row, 0, len(result.AllNodesOrdered))
	for _, n := range result.AllNodesOrdered {
		fullPath := n.Base().Target().FullPath()
		_, isInput := inputs[fullPath]
		rows = append(rows, row{node: n, kind: kindName(n), isInput: isInput})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].node.Base().Target().FullPath() < rows[j].node.Base().Target().FullPath()
	})

	byPath := make(map[string]int, len(rows))
	for i, r := range rows {
		byPath[r.node.Base().Target().FullPath()] = i
	}

	return &Model{
		Rows:   rows,
		ByPath: byPath,
	}
}

// kindName derives a display label from a node's concrete Go type, e.g.
// "*domain.CCLibrary" becomes "CCLibrary".
func kindName(n domain.Node) string {
	t := reflect.TypeOf(n)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Init satisfies tea.Model. There is nothing to kick off: the node
// population was built before this model exists.
func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) ensureVisible() {
	if m.ListHeight <= 0 {
		return
	}
	if m.SelectedIdx < m.ListOffset {
		m.ListOffset = m.SelectedIdx
	} else if m.SelectedIdx >= m.ListOffset+m.ListHeight {
		m.ListOffset = m.SelectedIdx - m.ListHeight + 1
	}
}

func (m *Model) selected() *row {
	if m.SelectedIdx >= 0 && m.SelectedIdx < len(m.Rows) {
		return &m.Rows[m.SelectedIdx]
	}
	return nil
}

// jumpTo moves the selection to the row for fullPath, if present, and
// scrolls it into view. It is the navigation primitive for jumping from a
// dependency/dependent reference in the detail pane to that node's own row.
func (m *Model) jumpTo(fullPath string) {
	idx, ok := m.ByPath[fullPath]
	if !ok {
		return
	}
	m.SelectedIdx = idx
	m.ensureVisible()
}

// Update handles keypresses and window resizes. There is no message type
// beyond bubbletea's own: no span/log traffic to react to, since the graph
// this model browses is already complete.
//
//nolint:gocritic // hugeParam: mirrors the teacher's Model.Update signature
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "k", "up":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
				m.ensureVisible()
			}
		case "j", "down":
			if m.SelectedIdx < len(m.Rows)-1 {
				m.SelectedIdx++
				m.ensureVisible()
			}
		case "g", "home":
			m.SelectedIdx = 0
			m.ensureVisible()
		case "G", "end":
			m.SelectedIdx = len(m.Rows) - 1
			m.ensureVisible()
		case "enter":
			if sel := m.selected(); sel != nil {
				if deps := sel.node.Base().DependencyNodes(); len(deps) > 0 {
					m.jumpTo(deps[0].Base().Target().FullPath())
				}
			}
		}

	case tea.WindowSizeMsg:
		m.ListWidth = int(float64(msg.Width) * listWidthRatio)
		m.DetailWidth = msg.Width - m.ListWidth
		m.Height = msg.Height
		m.ListHeight = msg.Height - 4 // header + borders
		m.ensureVisible()
	}

	return m, nil
}

// dependentsOf returns every row whose DependencyNodes includes target,
// computed on demand rather than cached, since the node population is
// small (a single parsed graph, not a monorepo-scale one) and this runs
// once per keypress, not per frame.
func (m *Model) dependentsOf(target string) []string {
	var out []string
	for _, r := range m.Rows {
		for _, dep := range r.node.Base().DependencyNodes() {
			if dep.Base().Target().FullPath() == target {
				out = append(out, r.node.Base().Target().FullPath())
				break
			}
		}
	}
	return out
}
