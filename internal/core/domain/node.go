package domain

import "go.trai.ch/zerr"

// Node is the capability set every target variant implements: population
// of its own state from an attribute tree, late-binding validation once
// the whole graph is resolved, and transfer of any subnodes it spawned
// during its own parse into the global node population.
type Node interface {
	// Base returns the node's embedded common state. Concrete variants
	// get this for free by embedding NodeBase.
	Base() *NodeBase

	// Parse populates the node's own state from attributeNode, which was
	// read from file. A variant may call file's accessors and spawn
	// owned subnodes via NewSubnode / NewSubnodeWithCurrentDeps.
	Parse(file *BuildFile, attributeNode *AttributeTree) error

	// PostParse runs after every Node and edge in the graph has been
	// resolved. It exists for validation that depends on information
	// only available once the whole graph is linked.
	PostParse() error

	// ExtractSubnodes appends every subnode owned by this node (and,
	// recursively, subnodes they themselves spawned) to out, then clears
	// this node's own subnode list. It transfers ownership from the
	// parent to whatever global map the caller maintains.
	ExtractSubnodes(out *[]Node)
}

// Expander is implemented by node kinds (Plugin) that can rewrite an
// owning BuildFile's unparsed attribute tree mid-parse.
type Expander interface {
	Node

	// ExpandBuildFileNode may mutate attributeNode in place, injecting or
	// rewriting keys. It returns true if it changed anything, which
	// tells the graph builder to rescan the object for newly-eligible
	// expansions.
	ExpandBuildFileNode(file *BuildFile, attributeNode *AttributeTree) (bool, error)
}

// NodeBase holds the state common to every Node variant: its identity,
// its edges, and its owned subnodes. Concrete variants embed NodeBase and
// get Base, the ordered-set edge accessors, and a default no-op PostParse
// for free; ExtractSubnodes is likewise inherited unless a variant has a
// reason to override it.
type NodeBase struct {
	target     TargetInfo
	owningFile *BuildFile

	depTargets []TargetInfo
	depSeen    map[string]struct{}

	requiredParents []TargetInfo
	requiredSeen    map[string]struct{}

	preParse     []TargetInfo
	preParseSeen map[string]struct{}

	subnodes []Node

	dependencyNodes []Node
}

// NewNodeBase constructs the common state for a node at target. The
// owning file is not known until Parse runs, since the builder set
// constructs a node before calling its Parse; variants record it via
// BindFile as the first step of their own Parse.
func NewNodeBase(target TargetInfo) NodeBase {
	return NodeBase{target: target}
}

// BindFile records the BuildFile a node was parsed from. Every variant's
// Parse calls this first, before reading its own attribute keys.
func (n *NodeBase) BindFile(file *BuildFile) { n.owningFile = file }

// Base returns n itself, satisfying Node.Base for embedding types.
func (n *NodeBase) Base() *NodeBase { return n }

// PostParse is the default no-op, inherited by any variant that has no
// late-binding validation of its own.
func (n *NodeBase) PostParse() error { return nil }

// Target returns the node's immutable identity.
func (n *NodeBase) Target() TargetInfo { return n.target }

// OwningFile returns the BuildFile this node was parsed from.
func (n *NodeBase) OwningFile() *BuildFile { return n.owningFile }

// DepTargets returns the node's dependency targets in declaration order.
func (n *NodeBase) DepTargets() []TargetInfo { return n.depTargets }

// AddDepTarget appends t to the node's dependency set if not already
// present, preserving the insertion order spec requires for reproducible
// lowering.
func (n *NodeBase) AddDepTarget(t TargetInfo) {
	if n.depSeen == nil {
		n.depSeen = make(map[string]struct{})
	}
	if _, ok := n.depSeen[t.FullPath()]; ok {
		return
	}
	n.depSeen[t.FullPath()] = struct{}{}
	n.depTargets = append(n.depTargets, t)
}

// RequiredParents returns the targets that must be pulled into the graph
// whenever this node is.
func (n *NodeBase) RequiredParents() []TargetInfo { return n.requiredParents }

// AddRequiredParent records t as a required parent, deduplicated.
func (n *NodeBase) AddRequiredParent(t TargetInfo) {
	if n.requiredSeen == nil {
		n.requiredSeen = make(map[string]struct{})
	}
	if _, ok := n.requiredSeen[t.FullPath()]; ok {
		return
	}
	n.requiredSeen[t.FullPath()] = struct{}{}
	n.requiredParents = append(n.requiredParents, t)
}

// PreParse returns the specifications that must be loaded before this
// node's body is parsed.
func (n *NodeBase) PreParse() []TargetInfo { return n.preParse }

// AddPreParse records t as a pre-parse dependency, deduplicated.
func (n *NodeBase) AddPreParse(t TargetInfo) {
	if n.preParseSeen == nil {
		n.preParseSeen = make(map[string]struct{})
	}
	if _, ok := n.preParseSeen[t.FullPath()]; ok {
		return
	}
	n.preParseSeen[t.FullPath()] = struct{}{}
	n.preParse = append(n.preParse, t)
}

// DependencyNodes returns the resolved view of DepTargets, populated once
// graph construction links every edge by pointer.
func (n *NodeBase) DependencyNodes() []Node { return n.dependencyNodes }

// SetDependencyNodes installs the resolved dependency view. Called once,
// by the graph builder's link step.
func (n *NodeBase) SetDependencyNodes(nodes []Node) { n.dependencyNodes = nodes }

// Subnodes returns the nodes spawned so far during this node's own parse,
// still owned by it.
func (n *NodeBase) Subnodes() []Node { return n.subnodes }

// ExtractSubnodes appends every owned subnode, and (recursively) every
// subnode they in turn own, to out, then clears this node's own list.
// Defined on NodeBase so every variant inherits it unless it has a reason
// to override.
func (n *NodeBase) ExtractSubnodes(out *[]Node) {
	for _, sub := range n.subnodes {
		sub.ExtractSubnodes(out)
		*out = append(*out, sub)
	}
	n.subnodes = nil
}

// NewSubnode allocates a new node of whatever kind construct produces,
// assigns it a synthesised name via file.NextName, registers it as a
// subnode owned by n, and returns it. The child starts with no
// dependencies.
func (n *NodeBase) NewSubnode(file *BuildFile, construct func(TargetInfo) Node) Node {
	name := file.NextName("auto_")
	target := MustTargetInfo(":"+name, directoryOf(file.Filename()))
	child := construct(target)
	n.subnodes = append(n.subnodes, child)
	return child
}

// NewSubnodeWithCurrentDeps is like NewSubnode, but additionally copies
// n's current dep targets into the child at construction time. Used when
// a child logically inherits the dependency set its parent has declared
// so far (e.g. a Cmake shell-generation child inheriting the declared
// library deps).
func (n *NodeBase) NewSubnodeWithCurrentDeps(file *BuildFile, construct func(TargetInfo) Node) Node {
	child := n.NewSubnode(file, construct)
	for _, dep := range n.depTargets {
		child.Base().AddDepTarget(dep)
	}
	return child
}

// directoryOf returns the directory component of a BuildFile's filename,
// i.e. the path with its trailing "/BUILD" removed.
func directoryOf(filename string) string {
	const suffix = "/" + BuildFileName
	if len(filename) >= len(suffix) && filename[len(filename)-len(suffix):] == suffix {
		return filename[:len(filename)-len(suffix)]
	}
	if filename == BuildFileName {
		return ""
	}
	return filename
}

// NodeConstructor builds a fresh Node of a registered kind at target.
// input is threaded through so variants needing RootDir/ObjectDir (e.g.
// CCBinary's output paths) have it without the core depending on any
// adapter package.
type NodeConstructor func(target TargetInfo, input *Input) Node

// NodeBuilderSet maps a node-kind keyword to the constructor for that
// variant.
type NodeBuilderSet struct {
	builders map[string]NodeConstructor
	input    *Input
}

// NewNodeBuilderSet creates an empty registry bound to input.
func NewNodeBuilderSet(input *Input) *NodeBuilderSet {
	return &NodeBuilderSet{
		builders: make(map[string]NodeConstructor),
		input:    input,
	}
}

// Register installs the constructor for kind, overwriting any existing
// registration (used by Plugin.ExpandBuildFileNode to introduce kinds
// discovered only at parse time is not required; plugins instead name an
// already-registered kind).
func (s *NodeBuilderSet) Register(kind string, ctor NodeConstructor) {
	s.builders[kind] = ctor
}

// Registered reports whether kind has a constructor.
func (s *NodeBuilderSet) Registered(kind string) bool {
	_, ok := s.builders[kind]
	return ok
}

// New constructs a node of the given kind at target, or fails with
// ErrUnknownKind if kind has no constructor.
func (s *NodeBuilderSet) New(kind string, target TargetInfo) (Node, error) {
	ctor, ok := s.builders[kind]
	if !ok {
		return nil, zerr.With(ErrUnknownKind, "kind", kind)
	}
	return ctor(target, s.input), nil
}
