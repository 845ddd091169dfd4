// Package kinds installs every node-kind keyword this system understands
// into a fresh domain.NodeBuilderSet. It is its own leaf package, rather
// than living in internal/wiring, so internal/app can depend on it
// directly without a cycle back through wiring's own Components
// registration.
package kinds

import "go.trai.ch/samegraph/internal/core/domain"

// Register installs a constructor for every known node-kind keyword into
// builders. It is passed into parser.New as the registerKinds closure,
// since a NodeBuilderSet is built fresh per Parse call rather than held
// as a graft singleton.
func Register(builders *domain.NodeBuilderSet) {
	builders.Register("cc_library", func(t domain.TargetInfo, _ *domain.Input) domain.Node {
		return domain.NewCCLibrary(t)
	})
	builders.Register("cc_binary", func(t domain.TargetInfo, input *domain.Input) domain.Node {
		return domain.NewCCBinary(t, input)
	})
	builders.Register("cmake", func(t domain.TargetInfo, input *domain.Input) domain.Node {
		return domain.NewCmake(t, input)
	})
	builders.Register("autoconf", func(t domain.TargetInfo, input *domain.Input) domain.Node {
		return domain.NewAutoconf(t, input)
	})
	builders.Register("gen_sh", func(t domain.TargetInfo, input *domain.Input) domain.Node {
		return domain.NewGenSh(t, input)
	})
	builders.Register("make", func(t domain.TargetInfo, input *domain.Input) domain.Node {
		return domain.NewMake(t, input)
	})
	builders.Register("config", func(t domain.TargetInfo, input *domain.Input) domain.Node {
		return domain.NewConfig(t, input)
	})
	builders.Register("plugin", func(t domain.TargetInfo, input *domain.Input) domain.Node {
		return domain.NewPlugin(t, input)
	})
}
