package domain

import "path/filepath"

// CCBinary extends CCLibrary with a linked output: a binary placed under
// the object directory, and a convenience symlink to it under the root
// directory. The concrete link command is an emitter's concern; this
// node only records the two output paths and inherits CCLibrary's
// sources/flags/dep parsing.
type CCBinary struct {
	CCLibrary

	OutputPath  string
	SymlinkPath string
}

// NewCCBinary constructs an unparsed CCBinary at target, computing its
// output locations from input's object and root directories.
func NewCCBinary(target TargetInfo, input *Input) *CCBinary {
	b := &CCBinary{CCLibrary: *NewCCLibrary(target)}
	if input != nil {
		b.OutputPath = filepath.Join(input.ObjectDir, target.Directory(), target.Name())
		b.SymlinkPath = filepath.Join(input.RootDir, target.Name())
	}
	return b
}

// Parse binds file, then reuses CCLibrary's field parsing for sources,
// headers, flags, and deps.
func (b *CCBinary) Parse(file *BuildFile, attr *AttributeTree) error {
	b.BindFile(file)
	return b.parseOwnFields(file, attr)
}
