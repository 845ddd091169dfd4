package domain

// GenSh is a shell-generation target: an arbitrary script executed to
// produce some output, with an explicit environment and dependency set.
// Command execution itself is a lowering's concern; this node only
// records the declarative shape of the script.
type GenSh struct {
	NodeBase

	Script string
	Env    []string
	Args   []string
}

// NewGenSh constructs an unparsed GenSh at target.
func NewGenSh(target TargetInfo, _ *Input) *GenSh {
	return &GenSh{NodeBase: NewNodeBase(target)}
}

// Parse reads the script body, its environment assignments, extra
// arguments, and dependency targets.
func (g *GenSh) Parse(file *BuildFile, attr *AttributeTree) error {
	g.BindFile(file)

	script, err := file.ParseSingleDirectory(attr, "script")
	if err != nil {
		return err
	}
	g.Script = script

	if err := file.ParseRepeatedString(attr, "env", false, &g.Env); err != nil {
		return err
	}
	if err := file.ParseRepeatedString(attr, "args", false, &g.Args); err != nil {
		return err
	}

	var deps []string
	if err := file.ParseRepeatedString(attr, "deps", false, &deps); err != nil {
		return err
	}
	for _, d := range deps {
		target, err := NewTargetInfo(d, g.Target().Directory())
		if err != nil {
			return err
		}
		g.AddDepTarget(target)
	}

	return nil
}
