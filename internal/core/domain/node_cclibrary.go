package domain

// CCLibrary is a compiled C++ library: a set of sources and headers,
// compile and link flags, and an optional alwayslink marker forcing the
// linker to keep every object file even if nothing references its
// symbols.
type CCLibrary struct {
	NodeBase

	Sources      []string
	Headers      []string
	CompileFlags []string
	LinkFlags    []string
	AlwaysLink   bool
}

// NewCCLibrary constructs an unparsed CCLibrary at target.
func NewCCLibrary(target TargetInfo) *CCLibrary {
	return &CCLibrary{NodeBase: NewNodeBase(target)}
}

// Parse populates the library's sources, headers, and flags from attr,
// and records its dependency targets from "deps".
func (c *CCLibrary) Parse(file *BuildFile, attr *AttributeTree) error {
	c.BindFile(file)
	return c.parseOwnFields(file, attr)
}

// parseOwnFields is factored out so CCBinary.Parse can reuse it without
// re-binding the file.
func (c *CCLibrary) parseOwnFields(file *BuildFile, attr *AttributeTree) error {
	if err := file.ParseRepeatedString(attr, "srcs", false, &c.Sources); err != nil {
		return err
	}
	if err := file.ParseRepeatedString(attr, "hdrs", false, &c.Headers); err != nil {
		return err
	}
	if err := file.ParseRepeatedString(attr, "copts", false, &c.CompileFlags); err != nil {
		return err
	}
	if err := file.ParseRepeatedString(attr, "linkopts", false, &c.LinkFlags); err != nil {
		return err
	}

	if v, ok := attr.Get("alwayslink").Bool(); ok {
		c.AlwaysLink = v
	}

	var deps []string
	if err := file.ParseRepeatedString(attr, "deps", false, &deps); err != nil {
		return err
	}
	for _, d := range deps {
		target, err := NewTargetInfo(d, c.Target().Directory())
		if err != nil {
			return err
		}
		c.AddDepTarget(target)
	}

	return nil
}
