package source

import (
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/samegraph/internal/core/domain"
	"go.trai.ch/samegraph/internal/core/ports"
	"go.trai.ch/zerr"
)

// CAS decorates another SourceProvider with a content-addressed,
// file-per-entry cache on disk, the same file-per-key layout used by the
// build info store: one file per hashed key, no directory nesting by
// content type. Entries are keyed by the hash of the specification's
// path rather than its content, since the point is to avoid repeating a
// possibly expensive Inner.InitializeForFile (a network fetch, in a
// remote deployment) for a path this process has already resolved.
type CAS struct {
	Inner ports.SourceProvider
	Dir   string
}

// NewCAS wraps inner with an on-disk cache rooted at dir.
func NewCAS(inner ports.SourceProvider, dir string) *CAS {
	return &CAS{Inner: inner, Dir: dir}
}

var _ ports.SourceProvider = (*CAS)(nil)

// InitializeForFile ensures a cached copy of path exists, fetching
// through Inner on a cache miss.
func (c *CAS) InitializeForFile(path string) error {
	if _, err := os.Stat(c.entryPath(path)); err == nil {
		return nil
	}

	if err := c.Inner.InitializeForFile(path); err != nil {
		return err
	}
	text, err := c.Inner.ReadToString(path)
	if err != nil {
		return err
	}
	return c.write(path, text)
}

// ReadToString returns path's cached contents, populating the cache
// first if InitializeForFile has not already been called for path.
func (c *CAS) ReadToString(path string) (string, error) {
	data, err := os.ReadFile(c.entryPath(path))
	if err == nil {
		return string(data), nil
	}

	if err := c.Inner.InitializeForFile(path); err != nil {
		return "", err
	}
	text, err := c.Inner.ReadToString(path)
	if err != nil {
		return "", err
	}
	if err := c.write(path, text); err != nil {
		return "", err
	}
	return text, nil
}

func (c *CAS) write(path, text string) error {
	if err := os.MkdirAll(c.Dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrIO.Error()), "path", path)
	}
	if err := os.WriteFile(c.entryPath(path), []byte(text), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrIO.Error()), "path", path)
	}
	return nil
}

func (c *CAS) entryPath(path string) string {
	sum := xxhash.Sum64String(path)
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(sum >> (8 * (7 - i)))
	}
	return filepath.Join(c.Dir, hex.EncodeToString(buf[:]))
}
