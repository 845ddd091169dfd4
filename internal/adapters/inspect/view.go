package inspect

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the list/detail split.
//
//nolint:gocritic // hugeParam: mirrors the teacher's Model.View signature
func (m *Model) View() string {
	if m.ListHeight == 0 {
		return "Initializing..."
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.nodeList(),
		m.detail(),
	)
}

//nolint:gocritic // hugeParam
func (m *Model) nodeList() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render(fmt.Sprintf("NODES (%d)", len(m.Rows))) + "\n\n")

	start := m.ListOffset
	end := m.ListOffset + m.ListHeight
	if end > len(m.Rows) {
		end = len(m.Rows)
	}
	if start > end {
		start = end
	}

	for i := start; i < end; i++ {
		s.WriteString(m.renderRow(i) + "\n")
	}

	return listStyle.Width(m.ListWidth).Render(s.String())
}

func (m *Model) renderRow(index int) string {
	r := m.Rows[index]
	name := r.node.Base().Target().FullPath()

	var cursor string
	rowText := fmt.Sprintf("%s  %s", r.kind, name)

	switch {
	case index == m.SelectedIdx:
		cursor = selectedStyle.Render("> ")
		rowText = selectedStyle.Render(rowText)
	case r.isInput:
		cursor = "  "
		rowText = inputStyle.Render(rowText)
	default:
		cursor = "  "
		rowText = dimStyle.Render(rowText)
	}

	return cursor + rowText
}

//nolint:gocritic // hugeParam
func (m *Model) detail() string {
	sel := m.selected()
	if sel == nil {
		return detailStyle.Width(m.DetailWidth).Render(titleStyle.Render("DETAIL"))
	}

	node := sel.node
	base := node.Base()
	target := base.Target()

	var s strings.Builder
	s.WriteString(titleStyle.Render("DETAIL: "+target.FullPath()) + "\n\n")
	s.WriteString(labelStyle.Render("Kind: ") + sel.kind + "\n")
	s.WriteString(labelStyle.Render("Directory: ") + target.Directory() + "\n")
	s.WriteString(labelStyle.Render("Owning file: ") + base.OwningFile().Filename() + "\n\n")

	s.WriteString(labelStyle.Render(fmt.Sprintf("Dependencies (%d):\n", len(base.DependencyNodes()))))
	if len(base.DependencyNodes()) == 0 {
		s.WriteString(dimStyle.Render("  none") + "\n")
	}
	for _, dep := range base.DependencyNodes() {
		s.WriteString("  " + dep.Base().Target().FullPath() + "\n")
	}

	s.WriteString("\n" + labelStyle.Render("Required parents:\n"))
	if len(base.RequiredParents()) == 0 {
		s.WriteString(dimStyle.Render("  none") + "\n")
	}
	for _, parent := range base.RequiredParents() {
		s.WriteString("  " + parent.FullPath() + "\n")
	}

	dependents := m.dependentsOf(target.FullPath())
	s.WriteString("\n" + labelStyle.Render(fmt.Sprintf("Dependents (%d):\n", len(dependents))))
	if len(dependents) == 0 {
		s.WriteString(dimStyle.Render("  none") + "\n")
	}
	for _, d := range dependents {
		s.WriteString("  " + d + "\n")
	}

	return detailStyle.Width(m.DetailWidth).Height(m.ListHeight).Render(s.String())
}
