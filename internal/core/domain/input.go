package domain

// Input is the read-only description of one parse request: the targets
// the user asked for, the directories a lowering writes into, and any
// toolchain-derived strings the core passes through to emitters without
// interpreting them itself.
type Input struct {
	BuildTargets   []TargetInfo
	RootDir        string
	ObjectDir      string
	ToolchainFlags []string

	targetSet map[string]struct{}
}

// NewInput builds an Input from the user's requested targets and the
// directories a node lowering needs.
func NewInput(buildTargets []TargetInfo, rootDir, objectDir string, toolchainFlags []string) *Input {
	set := make(map[string]struct{}, len(buildTargets))
	for _, t := range buildTargets {
		set[t.FullPath()] = struct{}{}
	}
	return &Input{
		BuildTargets:   buildTargets,
		RootDir:        rootDir,
		ObjectDir:      objectDir,
		ToolchainFlags: toolchainFlags,
		targetSet:      set,
	}
}

// ContainsTarget reports whether fullPath was one of the user's originally
// requested build targets.
func (i *Input) ContainsTarget(fullPath string) bool {
	_, ok := i.targetSet[fullPath]
	return ok
}
