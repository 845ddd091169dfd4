package graph

import (
	"go.trai.ch/samegraph/internal/core/domain"
	"go.trai.ch/zerr"
)

// maxPluginIterations bounds the per-object plugin expansion fixpoint
// loop. Expansion is expected to be monotone (each round either inserts
// or rewrites a key it hasn't touched before); exceeding this many
// rounds on one object means some plugin pair is oscillating.
const maxPluginIterations = 64

// expandObject implements §4.5.2 step 7: repeatedly rescan obj's members
// for a key matching a registered plugin, letting the plugin rewrite obj
// in place, until a scan makes no further change.
func (b *Builder) expandObject(file *domain.BuildFile, obj *domain.AttributeTree) error {
	if obj.Kind() != domain.AttrObject {
		return nil
	}

	for iteration := 0; ; iteration++ {
		if iteration >= maxPluginIterations {
			return zerr.With(domain.ErrPluginLoop, "filename", file.Filename())
		}

		changed := false
		for _, m := range obj.Members() {
			pluginTarget := file.InheritedEnv()["plugin:"+m.Key]
			if pluginTarget == "" {
				continue
			}
			pluginNode, ok := b.nodes[pluginTarget]
			if !ok {
				return zerr.With(zerr.With(domain.ErrUnresolvedDependency, "filename", file.Filename()), "plugin_target", pluginTarget)
			}
			expander, ok := pluginNode.(domain.Expander)
			if !ok {
				return zerr.With(zerr.With(zerr.With(domain.ErrSchema, "filename", file.Filename()), "key", m.Key), "reason", "plugin target does not implement expansion")
			}

			didChange, err := expander.ExpandBuildFileNode(file, obj)
			if err != nil {
				return err
			}
			if didChange {
				changed = true
				break
			}
		}

		if !changed {
			return nil
		}
	}
}
