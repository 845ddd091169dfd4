package domain

import "go.trai.ch/zerr"

// Plugin produces no build output. It registers itself against a
// keyword so that, when the graph builder later encounters a top-level
// attribute object with a member under that keyword, it can rewrite that
// member into the shape of an already-registered node kind before the
// second (body) parse pass runs.
//
// Registration reuses the owning BuildFile's inherited_env string map,
// the only general-purpose key/value store a BuildFile exposes: the
// builder looks up "plugin:<keyword>" there to find this plugin's
// full_path before invoking ExpandBuildFileNode on it.
type Plugin struct {
	NodeBase

	Key       string
	ExpandsTo string
	Inject    []AttributeMember
}

// NewPlugin constructs an unparsed Plugin at target.
func NewPlugin(target TargetInfo, _ *Input) *Plugin {
	return &Plugin{NodeBase: NewNodeBase(target)}
}

// Parse reads the keyword this plugin intercepts ("key"), the node kind
// it rewrites a matching member into ("expands_to"), and any extra
// members to merge into the rewritten value ("inject"), then registers
// itself in the owning file's environment under "plugin:<key>".
func (p *Plugin) Parse(file *BuildFile, attr *AttributeTree) error {
	p.BindFile(file)

	key, err := file.ParseSingleDirectory(attr, "key")
	if err != nil {
		return err
	}
	p.Key = key

	expandsTo, err := file.ParseSingleDirectory(attr, "expands_to")
	if err != nil {
		return err
	}
	p.ExpandsTo = expandsTo

	if inject := attr.Get("inject"); inject.Kind() == AttrObject {
		p.Inject = inject.Members()
	}

	file.InheritedEnv()["plugin:"+p.Key] = p.Target().FullPath()

	return nil
}

// ExpandBuildFileNode looks for a member named p.Key in attributeNode. If
// found, its value (expected to be an object, e.g. {name: "r"}) is
// rewritten under the key p.ExpandsTo, with any injected members merged
// in, and the original key is removed. Returns true if it made a change.
func (p *Plugin) ExpandBuildFileNode(file *BuildFile, attributeNode *AttributeTree) (bool, error) {
	if attributeNode.Kind() != AttrObject {
		return false, nil
	}
	if !attributeNode.Has(p.Key) {
		return false, nil
	}

	value := attributeNode.Get(p.Key)
	if value.Kind() != AttrObject {
		return false, zerr.With(zerr.With(zerr.With(ErrSchema, "filename", file.Filename()), "key", p.Key), "reason", "plugin-matched value must be an object")
	}

	merged := append([]AttributeMember{}, value.Members()...)
	merged = append(merged, p.Inject...)

	removeMember(attributeNode, p.Key)
	attributeNode.SetMember(p.ExpandsTo, NewObject(merged))

	return true, nil
}

// removeMember deletes key from an object node, compacting its member
// list and reindexing. It exists only to support plugin expansion, which
// must remove the original keyword once it has been rewritten.
func removeMember(a *AttributeTree, key string) {
	if a.Kind() != AttrObject {
		return
	}
	out := a.members[:0]
	for _, m := range a.members {
		if m.Key != key {
			out = append(out, m)
		}
	}
	a.members = out
	a.reindex()
}
