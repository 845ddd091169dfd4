package domain

// Make is an externally-driven build invoked via a Makefile already
// present on disk (or generated by a sibling node, as Cmake's second
// subnode does). It records the directory to invoke make in, the
// targets to build, an install prefix, and pass-through arguments.
type Make struct {
	NodeBase

	Dir           string
	Targets       []string
	Args          []string
	Env           []string
	InstallPrefix string
}

// NewMake constructs an unparsed Make at target.
func NewMake(target TargetInfo, _ *Input) *Make {
	return &Make{NodeBase: NewNodeBase(target)}
}

// Parse reads the invocation directory, make targets, extra arguments,
// environment, install prefix, and dependency targets.
func (m *Make) Parse(file *BuildFile, attr *AttributeTree) error {
	m.BindFile(file)

	dir := m.Target().Directory()
	if v := attr.Get("dir"); !v.IsNull() {
		d, err := file.ParseSingleDirectory(attr, "dir")
		if err != nil {
			return err
		}
		dir = d
	}
	m.Dir = dir

	if err := file.ParseRepeatedString(attr, "targets", false, &m.Targets); err != nil {
		return err
	}
	if err := file.ParseRepeatedString(attr, "args", false, &m.Args); err != nil {
		return err
	}
	if err := file.ParseRepeatedString(attr, "env", false, &m.Env); err != nil {
		return err
	}
	if v, ok := attr.Get("install_prefix").String(); ok {
		m.InstallPrefix = v
	}

	var deps []string
	if err := file.ParseRepeatedString(attr, "deps", false, &deps); err != nil {
		return err
	}
	for _, d := range deps {
		target, err := NewTargetInfo(d, m.Target().Directory())
		if err != nil {
			return err
		}
		m.AddDepTarget(target)
	}

	return nil
}
