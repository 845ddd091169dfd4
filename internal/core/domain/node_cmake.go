package domain

import "strings"

// Cmake drives an external CMake-based build. It never produces output
// itself; instead it spawns two subnodes at parse time: a shell-
// generation node that configures the CMake build into a private staging
// tree, and a make node that builds and installs from that
// configuration with $STAGING as its install prefix. No step moves the
// installed files out of $STAGING into the destination directory.
type Cmake struct {
	NodeBase

	CmakeDir  string
	CmakeEnv  []string
	CmakeArgs []string
}

// NewCmake constructs an unparsed Cmake at target.
func NewCmake(target TargetInfo, _ *Input) *Cmake {
	return &Cmake{NodeBase: NewNodeBase(target)}
}

// Parse reads cmake_dir (defaulting to the owning target's directory),
// cmake_env, cmake_args, and deps, then spawns the shell-generation and
// external-make subnodes described at the type level.
func (c *Cmake) Parse(file *BuildFile, attr *AttributeTree) error {
	c.BindFile(file)

	dir := c.Target().Directory()
	if v := attr.Get("cmake_dir"); !v.IsNull() {
		d, err := file.ParseSingleDirectory(attr, "cmake_dir")
		if err != nil {
			return err
		}
		dir = d
	}
	c.CmakeDir = dir

	if err := file.ParseRepeatedString(attr, "cmake_env", false, &c.CmakeEnv); err != nil {
		return err
	}
	if err := file.ParseRepeatedString(attr, "cmake_args", false, &c.CmakeArgs); err != nil {
		return err
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

	gen := c.NewSubnodeWithCurrentDeps(file, func(t TargetInfo) Node { return NewGenSh(t, nil) }).(*GenSh)
	gen.BindFile(file)
	gen.Env = append([]string{}, c.CmakeEnv...)
	gen.Script = genShScript(c.CmakeDir, c.CmakeArgs)

	install := c.NewSubnode(file, func(t TargetInfo) Node { return NewMake(t, nil) }).(*Make)
	install.BindFile(file)
	install.Dir = c.CmakeDir
	install.InstallPrefix = "$STAGING"
	install.Targets = []string{"install"}
	install.AddDepTarget(gen.Target())

	// Cmake's own target depends on its install subnode: building libfoo
	// means running the install step. This is also what keeps the
	// subnode chain from being pruned as unreachable, since the graph
	// builder only retains nodes reached by following dep_targets and
	// required_parents out from the user's requested roots.
	c.AddDepTarget(install.Target())

	return nil
}

// genShScript assembles the shell-generation subnode's script text: it
// creates $GEN_DIR/build, positions a $STAGING install prefix, exports
// CC/CXX plus any user environment, then invokes cmake with the library's
// own flags layered under the caller's cmake_args.
func genShScript(cmakeDir string, cmakeArgs []string) string {
	var b strings.Builder
	b.WriteString("mkdir -p \"$GEN_DIR/build\" && mkdir -p \"$STAGING\" && cd \"$GEN_DIR/build\" && ")
	b.WriteString("export CC CXX && ")
	b.WriteString("cmake -DCMAKE_INSTALL_PREFIX=. -B . \"")
	b.WriteString(cmakeDir)
	b.WriteString("\" -DCMAKE_CXX_FLAGS=\"$BASE_CXXFLAGS $USER_CXXFLAGS\" -DCMAKE_C_FLAGS=\"$BASE_CFLAGS $USER_CFLAGS\"")
	for _, a := range cmakeArgs {
		b.WriteByte(' ')
		b.WriteString(a)
	}
	return b.String()
}
