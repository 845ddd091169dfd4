package domain

import "strings"

// Autoconf drives an external autotools-style build: a ./configure
// invocation followed by make. Like Cmake, it produces no output
// itself; it spawns a shell-generation subnode that runs the configure
// script, and a make subnode that builds and installs from that
// configuration with $STAGING as its install prefix.
type Autoconf struct {
	NodeBase

	ConfigureCmd  string
	ConfigureEnv  []string
	ConfigureArgs []string
}

// NewAutoconf constructs an unparsed Autoconf at target.
func NewAutoconf(target TargetInfo, _ *Input) *Autoconf {
	return &Autoconf{NodeBase: NewNodeBase(target)}
}

// Parse reads configure_cmd (defaulting to "./configure"), configure_env,
// configure_args, and deps, then spawns the shell-generation and
// external-make subnodes described at the type level.
func (a *Autoconf) Parse(file *BuildFile, attr *AttributeTree) error {
	a.BindFile(file)

	cmd := "./configure"
	if v, ok := attr.Get("configure_cmd").String(); ok && v != "" {
		cmd = v
	}
	a.ConfigureCmd = cmd

	if err := file.ParseRepeatedString(attr, "configure_env", false, &a.ConfigureEnv); err != nil {
		return err
	}
	if err := file.ParseRepeatedString(attr, "configure_args", false, &a.ConfigureArgs); err != nil {
		return err
	}

	var deps []string
	if err := file.ParseRepeatedString(attr, "deps", false, &deps); err != nil {
		return err
	}
	for _, d := range deps {
		target, err := NewTargetInfo(d, a.Target().Directory())
		if err != nil {
			return err
		}
		a.AddDepTarget(target)
	}

	gen := a.NewSubnodeWithCurrentDeps(file, func(t TargetInfo) Node { return NewGenSh(t, nil) }).(*GenSh)
	gen.BindFile(file)
	gen.Env = append([]string{}, a.ConfigureEnv...)
	gen.Script = configureScript(a.ConfigureCmd, a.ConfigureArgs)

	install := a.NewSubnode(file, func(t TargetInfo) Node { return NewMake(t, nil) }).(*Make)
	install.BindFile(file)
	install.Dir = a.Target().Directory()
	install.InstallPrefix = "$STAGING"
	install.Targets = []string{"install"}
	install.AddDepTarget(gen.Target())

	// Autoconf's own target depends on its install subnode, same as
	// Cmake: this is both the build step and what keeps the subnode
	// chain from being pruned as unreachable.
	a.AddDepTarget(install.Target())

	return nil
}

// configureScript assembles the shell-generation subnode's script text:
// it creates $OBJ_DIR, sets DEST_DIR to $GEN_DIR, exports CC/CXX, then
// invokes the configure command with --prefix=/ and a --cache-file under
// $GEN_DIR, followed by configure_args. The user's configure_env is
// carried on the subnode's Env, not written into the script.
func configureScript(configureCmd string, configureArgs []string) string {
	var b strings.Builder
	b.WriteString("mkdir -p \"$OBJ_DIR\" && DEST_DIR=\"$GEN_DIR\" && ")
	b.WriteString("export CC CXX && ")
	b.WriteString(configureCmd)
	b.WriteString(" --prefix=/ --cache-file=\"$GEN_DIR/config.cache\"")
	for _, a := range configureArgs {
		b.WriteByte(' ')
		b.WriteString(a)
	}
	return b.String()
}
