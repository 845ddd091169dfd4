package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/samegraph/internal/core/domain"
	"go.trai.ch/samegraph/internal/engine/graph"
	"go.trai.ch/samegraph/internal/ui/style"
)

const maxTreeDepth = 32

var (
	rootStyle = lipgloss.NewStyle().Bold(true).Foreground(style.Iris)
	dimStyle  = lipgloss.NewStyle().Faint(true).Foreground(style.Slate)
)

// Tree writes a lipgloss-styled dependency tree of result's input nodes
// to w. Unlike Linear, Tree renders after construction has finished: it
// walks the already-resolved DependencyNodes edges rather than reacting
// to Builder spans as they happen.
func Tree(w io.Writer, result *graph.Result) {
	for _, root := range result.InputNodes {
		writeSubtree(w, root, 0, make(map[string]bool))
	}
}

// writeSubtree prints node and its dependencies, in the same
// collapsed-by-default-elsewhere, expand-on-revisit shape as the
// teacher's interactive tree: a node may appear under more than one
// parent since the underlying structure is a DAG, not a tree, but depth
// is capped to guard against a pathological fan-out.
func writeSubtree(w io.Writer, node domain.Node, depth int, visiting map[string]bool) {
	if depth > maxTreeDepth {
		return
	}

	fullPath := node.Base().Target().FullPath()
	indent := strings.Repeat("  ", depth)

	label := fullPath
	if depth == 0 {
		label = rootStyle.Render(fullPath)
	}

	if visiting[fullPath] {
		_, _ = fmt.Fprintf(w, "%s%s %s\n", indent, label, dimStyle.Render("(already shown)"))
		return
	}

	_, _ = fmt.Fprintf(w, "%s%s\n", indent, label)

	visiting[fullPath] = true
	for _, dep := range node.Base().DependencyNodes() {
		writeSubtree(w, dep, depth+1, visiting)
	}
	delete(visiting, fullPath)
}
