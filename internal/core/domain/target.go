package domain

import (
	"path"
	"strings"

	"go.trai.ch/zerr"
)

// TargetInfo is a canonical reference to a build target, either written in
// full as "//dir/sub:name" or, relative to the file currently being parsed,
// as the short form ":name". Equality and hashing are defined on FullPath,
// so two TargetInfo values naming the same target always compare equal
// regardless of how each was spelled.
type TargetInfo struct {
	directory string
	name      string
	fullPath  string
}

// NewTargetInfo parses ref relative to currentDirectory (the directory of
// the BuildFile currently being parsed) and returns the canonical
// TargetInfo. ref must be of the form "//dir/sub:name" or ":name"; any
// other shape is an ErrInvalidTarget.
func NewTargetInfo(ref, currentDirectory string) (TargetInfo, error) {
	directory, name, err := splitRef(ref, currentDirectory)
	if err != nil {
		return TargetInfo{}, err
	}

	directory = canonicalDirectory(directory)

	return TargetInfo{
		directory: directory,
		name:      name,
		fullPath:  formatFullPath(directory, name),
	}, nil
}

// MustTargetInfo is like NewTargetInfo but panics on error. It exists for
// tests and for constructing the well-known targets a Node synthesizes for
// its own subnodes, where ref is always well-formed by construction.
func MustTargetInfo(ref, currentDirectory string) TargetInfo {
	t, err := NewTargetInfo(ref, currentDirectory)
	if err != nil {
		panic(err)
	}
	return t
}

func splitRef(ref, currentDirectory string) (directory, name string, err error) {
	switch {
	case strings.HasPrefix(ref, "//"):
		idx := strings.LastIndex(ref, ":")
		if idx < 0 {
			return "", "", zerr.With(ErrInvalidTarget, "ref", ref)
		}
		directory = strings.TrimPrefix(ref[:idx], "//")
		name = ref[idx+1:]
	case strings.HasPrefix(ref, ":"):
		directory = currentDirectory
		name = strings.TrimPrefix(ref, ":")
	default:
		return "", "", zerr.With(ErrInvalidTarget, "ref", ref)
	}

	if name == "" {
		return "", "", zerr.With(ErrInvalidTarget, "ref", ref)
	}

	return directory, name, nil
}

// canonicalDirectory collapses empty path components ("a//b" -> "a/b"),
// strips a leading/trailing separator, and maps the workspace root to "".
func canonicalDirectory(directory string) string {
	cleaned := path.Clean(directory)
	if cleaned == "." || cleaned == "/" {
		return ""
	}
	return strings.Trim(cleaned, "/")
}

func formatFullPath(directory, name string) string {
	if directory == "" {
		return "//:" + name
	}
	return "//" + directory + ":" + name
}

// Directory returns the path of the specification that owns this target.
func (t TargetInfo) Directory() string { return t.directory }

// Name returns the target's unqualified name within its owning file.
func (t TargetInfo) Name() string { return t.name }

// FullPath returns the canonical "//dir/sub:name" form. This is the value
// used for equality, hashing (as a map key), and diagnostics.
func (t TargetInfo) FullPath() string { return t.fullPath }

// String implements fmt.Stringer, returning FullPath.
func (t TargetInfo) String() string { return t.fullPath }

// BuildFile returns the conventional specification path for the target's
// owning directory, e.g. "//lib/util:foo" -> "lib/util/BUILD".
func (t TargetInfo) BuildFile() string {
	return BuildFilePath(t.directory)
}

// IsZero reports whether t is the zero TargetInfo (never a valid target).
func (t TargetInfo) IsZero() bool { return t.fullPath == "" }
