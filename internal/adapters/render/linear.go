// Package render presents graph construction: Linear implements
// ports.Renderer as a flat chronological log of the run, and Tree prints
// the finished graph as a styled dependency tree.
package render

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/samegraph/internal/core/ports"
	"go.trai.ch/samegraph/internal/ui/output"
)

// Linear implements ports.Renderer for CI/non-interactive environments:
// one line per node, printed as each span starts and ends, with no
// buffering or redraw.
type Linear struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output

	mu    sync.Mutex
	nodes map[string]*nodeState // spanID -> node state
}

type nodeState struct {
	name      string
	startTime time.Time
}

// NewLinear creates a Linear renderer writing progress to stderr and
// nothing (by design, since construction has no artifacts of its own to
// print on stdout) to stdout.
func NewLinear(stdout, stderr io.Writer) *Linear {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	term := output.NewWithProfile(stderr, output.ColorProfileANSI)

	return &Linear{
		stdout: stdout,
		stderr: stderr,
		output: term,
		nodes:  make(map[string]*nodeState),
	}
}

var _ ports.Renderer = (*Linear)(nil)

// Start is a no-op; the linear renderer is purely synchronous.
func (l *Linear) Start() error { return nil }

// Stop is a no-op; there is no buffered output to flush.
func (l *Linear) Stop() error { return nil }

// Wait is a no-op; the linear renderer has no background goroutine.
func (l *Linear) Wait() error { return nil }

// OnPlanEmit prints the BFS seed.
func (l *Linear) OnPlanEmit(seedTargets []string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintf(l.stderr, "resolving %d target(s): %v\n", len(seedTargets), seedTargets)
}

// OnNodeStart records the node's state and prints a start line.
func (l *Linear) OnNodeStart(spanID, _ /* parentID */, name string, startTime time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nodes[spanID] = &nodeState{name: name, startTime: startTime}

	prefix := l.output.String(fmt.Sprintf("[%s]", name)).Faint().String()
	_, _ = fmt.Fprintf(l.stderr, "%s processing...\n", prefix)
}

// OnNodeComplete prints a completion line and its outcome.
func (l *Linear) OnNodeComplete(spanID string, endTime time.Time, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	node, ok := l.nodes[spanID]
	if !ok {
		return
	}
	delete(l.nodes, spanID)

	duration := endTime.Sub(node.startTime)
	prefix := fmt.Sprintf("[%s]", node.name)

	if err != nil {
		symbol := l.output.String("✗").Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(l.stderr, "%s %s failed after %v: %v\n", prefix, symbol, duration, err)
		return
	}

	symbol := l.output.String("✓").Foreground(termenv.ANSIGreen).String()
	_, _ = fmt.Fprintf(l.stderr, "%s %s resolved in %v\n", prefix, symbol, duration)
}
