// Package source implements ports.SourceProvider: fetching and reading
// the specification files the graph builder discovers by directory walk.
package source

import (
	"os"

	"go.trai.ch/samegraph/internal/core/domain"
	"go.trai.ch/samegraph/internal/core/ports"
	"go.trai.ch/zerr"
)

// Local reads specification files directly off the local filesystem,
// rooted at Root. It never fetches anything remote; InitializeForFile
// only checks that the file exists, since a plain filesystem has nothing
// to check out.
type Local struct {
	Root string
}

// NewLocal creates a Local provider rooted at root.
func NewLocal(root string) *Local {
	return &Local{Root: root}
}

var _ ports.SourceProvider = (*Local)(nil)

// InitializeForFile confirms path exists under Root and is a regular
// file, without reading its contents.
func (l *Local) InitializeForFile(path string) error {
	info, err := os.Stat(l.resolve(path))
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSourceUnavailable.Error()), "path", path)
	}
	if info.IsDir() {
		return zerr.With(zerr.With(domain.ErrSourceUnavailable, "path", path), "reason", "is a directory")
	}
	return nil
}

// ReadToString returns path's contents.
func (l *Local) ReadToString(path string) (string, error) {
	data, err := os.ReadFile(l.resolve(path))
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrIO.Error()), "path", path)
	}
	return string(data), nil
}

func (l *Local) resolve(path string) string {
	if l.Root == "" {
		return path
	}
	return l.Root + "/" + path
}
