package domain

import "path/filepath"

const (
	// BuildFileName is the conventional name of a specification file within
	// a directory.
	BuildFileName = "BUILD"

	// StateDirName is the name of the tool's on-disk state directory,
	// rooted at the workspace root.
	StateDirName = ".samegraph"

	// SourceCacheDirName is the name of the content-addressed cache of
	// fetched specification text, under StateDirName.
	SourceCacheDirName = "cas"

	// DirPerm is the default permission for directories created by this
	// tool.
	DirPerm = 0o750

	// FilePerm is the default permission for files created by this tool.
	FilePerm = 0o644
)

// DefaultSourceCachePath returns the default path of the content-addressed
// source cache, rooted at root.
func DefaultSourceCachePath(root string) string {
	return filepath.Join(root, StateDirName, SourceCacheDirName)
}

// BuildFilePath returns the conventional specification path for a
// directory, e.g. "lib" -> "lib/BUILD".
func BuildFilePath(directory string) string {
	return filepath.Join(directory, BuildFileName)
}
