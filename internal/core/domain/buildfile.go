package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

// BuildFile is the in-memory representation of one parsed specification:
// its top-level attribute objects, the key/value environment it inherited
// from its ancestor chain, and the set of targets every node in the file
// implicitly depends on.
type BuildFile struct {
	filename         string
	attributeNodes   []*AttributeTree
	inheritedEnv     map[string]string
	baseDependencies map[string]struct{}
	nextAutoID       int
}

// NewBuildFile creates an empty BuildFile for filename. Callers populate
// attributeNodes by calling Parse once the file's ancestor chain has been
// merged in, per the contract that inherited_env must be complete before
// any non-config node in the file is constructed.
func NewBuildFile(filename string) *BuildFile {
	return &BuildFile{
		filename:         filename,
		inheritedEnv:     make(map[string]string),
		baseDependencies: make(map[string]struct{}),
	}
}

// Filename returns the specification's source path.
func (f *BuildFile) Filename() string { return f.filename }

// AttributeNodes returns the file's top-level attribute objects, in
// declaration order.
func (f *BuildFile) AttributeNodes() []*AttributeTree { return f.attributeNodes }

// InheritedEnv returns the file's merged key/value environment.
func (f *BuildFile) InheritedEnv() map[string]string { return f.inheritedEnv }

// BaseDependencies returns the set of full_path strings every non-config
// node in this file implicitly depends on.
func (f *BuildFile) BaseDependencies() []string {
	deps := make([]string, 0, len(f.baseDependencies))
	for d := range f.baseDependencies {
		deps = append(deps, d)
	}
	return deps
}

// AddBaseDependency records fullPath as an implicit dependency of every
// non-config node subsequently parsed from this file.
func (f *BuildFile) AddBaseDependency(fullPath string) {
	f.baseDependencies[fullPath] = struct{}{}
}

// Parse decodes text as a single document whose root value must be an
// array, and installs that array's elements as the file's top-level
// attribute nodes (§6: "the top level is an array of objects"). It does
// not itself construct any Node; that is the caller's job once base
// dependencies and the inherited environment from the ancestor chain have
// been merged in.
func (f *BuildFile) Parse(text []byte) error {
	docs, err := ParseAttributeDocument(f.filename, text)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		f.attributeNodes = nil
		return nil
	}
	if len(docs) > 1 {
		return zerr.With(zerr.With(ErrParse, "filename", f.filename), "reason", "expected a single top-level document")
	}
	root := docs[0]
	if root.Kind() != AttrArray {
		return zerr.With(zerr.With(ErrParse, "filename", f.filename), "reason", "top level must be an array of objects")
	}
	f.attributeNodes = root.Array()
	return nil
}

// NextName returns "{prefix}{n}" where n is the file's auto-increment
// counter, post-incremented. It synthesises a name for a node whose
// attribute object declared none.
func (f *BuildFile) NextName(prefix string) string {
	name := fmt.Sprintf("%s%d", prefix, f.nextAutoID)
	f.nextAutoID++
	return name
}

// MergeParent copies every key of parent's inherited_env not already
// present locally, and copies parent's base_dependencies wholesale. It
// is called once per ancestor, walking from the nearest ancestor to the
// workspace root, so a value set by a closer ancestor is never
// overwritten by one set further away.
func (f *BuildFile) MergeParent(parent *BuildFile) {
	for k, v := range parent.inheritedEnv {
		if _, ok := f.inheritedEnv[k]; !ok {
			f.inheritedEnv[k] = v
		}
	}
	for dep := range parent.baseDependencies {
		f.baseDependencies[dep] = struct{}{}
	}
}

// MergeDependency unions other's inherited_env into self, with self's
// existing keys taking precedence. It is used when a config node
// declares a pre_parse dependency on another specification and that
// specification's environment must be folded in.
func (f *BuildFile) MergeDependency(other *BuildFile) {
	for k, v := range other.inheritedEnv {
		if _, ok := f.inheritedEnv[k]; !ok {
			f.inheritedEnv[k] = v
		}
	}
}

// GetKey returns the named member of node, or an ErrSchema if node is not
// an object. Call sites pass the attribute object currently being parsed;
// a missing key simply yields the null AttributeTree, matching Get's
// always-succeeds contract.
func (f *BuildFile) GetKey(node *AttributeTree, key string) (*AttributeTree, error) {
	if node.Kind() != AttrObject {
		return nil, zerr.With(zerr.With(zerr.With(ErrSchema, "filename", f.filename), "key", key), "reason", "not an object")
	}
	return node.Get(key), nil
}

// ParseSingleDirectory reads key as a required single string value and
// returns it. A missing key or a non-string value is a fatal ErrSchema
// naming the filename and key; for a non-string value the error carries
// the value's kind, not the value itself.
func (f *BuildFile) ParseSingleDirectory(node *AttributeTree, key string) (string, error) {
	v := node.Get(key)
	if v.IsNull() {
		return "", zerr.With(zerr.With(zerr.With(ErrSchema, "filename", f.filename), "key", key), "reason", "required key is absent")
	}
	s, ok := v.String()
	if !ok {
		return "", zerr.With(zerr.With(zerr.With(zerr.With(ErrSchema, "filename", f.filename), "key", key), "value", v.Kind().String()), "reason", "expected a string")
	}
	return s, nil
}

// ParseRepeatedString reads key as an array of strings and appends them
// to out. If required is true, an absent key is fatal; if false, an
// absent key leaves out unchanged. A key present but not an array of
// strings is always fatal, naming filename, key and the kind of the
// offending value (not the value itself).
func (f *BuildFile) ParseRepeatedString(node *AttributeTree, key string, required bool, out *[]string) error {
	v := node.Get(key)
	if v.IsNull() {
		if required {
			return zerr.With(zerr.With(zerr.With(ErrSchema, "filename", f.filename), "key", key), "reason", "required key is absent")
		}
		return nil
	}
	items := v.Array()
	if items == nil {
		return zerr.With(zerr.With(zerr.With(zerr.With(ErrSchema, "filename", f.filename), "key", key), "value", v.Kind().String()), "reason", "expected an array of strings")
	}
	for _, item := range items {
		s, ok := item.String()
		if !ok {
			return zerr.With(zerr.With(zerr.With(zerr.With(ErrSchema, "filename", f.filename), "key", key), "value", item.Kind().String()), "reason", "expected a string element")
		}
		*out = append(*out, s)
	}
	return nil
}
