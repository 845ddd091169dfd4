package domain

// Config produces no build output. Its attribute object is a bag of
// string key/value pairs pushed into the owning BuildFile's
// inherited_env, optionally after other specifications named under
// "requires" have been loaded (and their environment merged in) so a
// config node can depend on values a sibling specification defines. It
// is also the carrier for base_dependency: every target named there is
// recorded against the owning file, not the config node itself, so it
// reaches every other node subsequently parsed from the same file.
type Config struct {
	NodeBase
}

// NewConfig constructs an unparsed Config at target.
func NewConfig(target TargetInfo, _ *Input) *Config {
	return &Config{NodeBase: NewNodeBase(target)}
}

// Parse records any "requires" target references as pre-parse
// dependencies, registers any "base_dependency" targets against file,
// then copies every remaining string-valued key into file.InheritedEnv.
func (c *Config) Parse(file *BuildFile, attr *AttributeTree) error {
	c.BindFile(file)

	var requires []string
	if err := file.ParseRepeatedString(attr, "requires", false, &requires); err != nil {
		return err
	}
	for _, r := range requires {
		target, err := NewTargetInfo(r, c.Target().Directory())
		if err != nil {
			return err
		}
		c.AddPreParse(target)
	}

	var baseDeps []string
	if err := file.ParseRepeatedString(attr, "base_dependency", false, &baseDeps); err != nil {
		return err
	}
	for _, d := range baseDeps {
		target, err := NewTargetInfo(d, c.Target().Directory())
		if err != nil {
			return err
		}
		file.AddBaseDependency(target.FullPath())
	}

	for _, m := range attr.Members() {
		if m.Key == "requires" || m.Key == "base_dependency" || m.Key == "name" {
			continue
		}
		if s, ok := m.Value.String(); ok {
			file.InheritedEnv()[m.Key] = s
		}
	}

	return nil
}
