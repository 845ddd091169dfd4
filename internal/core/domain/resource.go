package domain

import "path/filepath"

// Resource is a file artifact within an output tree, produced by a node
// lowering (e.g. a compiled object file, a linked binary, a generated
// header). Resources are value types and are freely copied.
type Resource struct {
	path string
	tags map[string]struct{}
}

// NewResource creates a Resource at path with no tags.
func NewResource(path string) Resource {
	return Resource{path: path}
}

// ResourceFromLocalPath joins and normalizes baseDir and rel into a
// Resource, as a node lowering does when it turns a declared source or
// output into a concrete on-disk path.
func ResourceFromLocalPath(baseDir, rel string) Resource {
	return NewResource(filepath.Clean(filepath.Join(baseDir, rel)))
}

// WithTag returns a copy of r with tag added to its tag set.
func (r Resource) WithTag(tag string) Resource {
	tags := make(map[string]struct{}, len(r.tags)+1)
	for t := range r.tags {
		tags[t] = struct{}{}
	}
	tags[tag] = struct{}{}
	return Resource{path: r.path, tags: tags}
}

// HasTag reports whether tag is present on r, e.g. "alwayslink".
func (r Resource) HasTag(tag string) bool {
	_, ok := r.tags[tag]
	return ok
}

// Path returns the resource's file path.
func (r Resource) Path() string { return r.path }
