package domain

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// ParseAttributeDocument parses text as a stream of specification
// documents and returns one AttributeTree per top-level document, in
// file order. A specification's concrete syntax is YAML: since YAML 1.2
// is a superset of JSON, this also accepts a plain JSON-like body, and
// yaml.Node's Content slice preserves mapping-key order exactly as
// written, which is what an AttributeTree's ordered objects require.
//
// filename is used only to annotate errors.
func ParseAttributeDocument(filename string, text []byte) ([]*AttributeTree, error) {
	dec := yaml.NewDecoder(bytes.NewReader(text))

	var docs []*AttributeTree
	for {
		var raw yaml.Node
		err := dec.Decode(&raw)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, zerr.With(zerr.Wrap(err, ErrParse.Error()), "filename", filename)
		}
		tree, err := fromYAMLNode(&raw, filename)
		if err != nil {
			return nil, err
		}
		docs = append(docs, tree)
	}
	return docs, nil
}

// fromYAMLNode converts a decoded yaml.Node into an AttributeTree. A
// top-level yaml.DocumentNode has exactly one child, which is unwrapped
// here so callers always work with the document's actual root value.
func fromYAMLNode(n *yaml.Node, filename string) (*AttributeTree, error) {
	if n.Kind == yaml.DocumentNode {
		if len(n.Content) == 0 {
			return nullNode, nil
		}
		return fromYAMLNode(n.Content[0], filename)
	}

	switch n.Kind {
	case yaml.ScalarNode:
		return scalarFromYAML(n, filename)
	case yaml.SequenceNode:
		items := make([]*AttributeTree, 0, len(n.Content))
		for _, c := range n.Content {
			item, err := fromYAMLNode(c, filename)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return NewArray(items), nil
	case yaml.MappingNode:
		if len(n.Content)%2 != 0 {
			return nil, zerr.With(zerr.With(ErrParse, "filename", filename), "reason", "malformed mapping")
		}
		seen := make(map[string]bool, len(n.Content)/2)
		members := make([]AttributeMember, 0, len(n.Content)/2)
		for i := 0; i < len(n.Content); i += 2 {
			keyNode, valNode := n.Content[i], n.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, zerr.With(zerr.With(ErrParse, "filename", filename), "reason", "object key must be a scalar")
			}
			key := keyNode.Value
			if seen[key] {
				return nil, zerr.With(zerr.With(zerr.With(ErrParse, "filename", filename), "key", key), "reason", "duplicate key")
			}
			seen[key] = true
			val, err := fromYAMLNode(valNode, filename)
			if err != nil {
				return nil, err
			}
			members = append(members, AttributeMember{Key: key, Value: val})
		}
		return NewObject(members), nil
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias, filename)
	default:
		return nil, zerr.With(zerr.With(ErrParse, "filename", filename), "reason", fmt.Sprintf("unsupported node kind %d", n.Kind))
	}
}

func scalarFromYAML(n *yaml.Node, filename string) (*AttributeTree, error) {
	switch n.Tag {
	case "!!null":
		return nullNode, nil
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return nil, zerr.With(zerr.With(zerr.With(ErrParse, "filename", filename), "value", n.Value), "reason", "invalid bool")
		}
		return NewBool(b), nil
	case "!!int", "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return nil, zerr.With(zerr.With(zerr.With(ErrParse, "filename", filename), "value", n.Value), "reason", "invalid number")
		}
		return NewNumber(f), nil
	default:
		return NewString(n.Value), nil
	}
}
