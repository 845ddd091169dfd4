package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/samegraph/internal/app"
	"go.trai.ch/samegraph/internal/core/domain"
	"go.trai.ch/samegraph/internal/core/ports"
	"go.trai.ch/samegraph/internal/core/ports/mocks"
	"go.trai.ch/samegraph/internal/kinds"
	"go.trai.ch/samegraph/internal/parser"
	"go.uber.org/mock/gomock"
)

// memorySource is an in-memory ports.SourceProvider backed by a fixed file
// set, standing in for the real filesystem/CAS adapters in tests that only
// care about graph-construction behavior.
type memorySource struct {
	files map[string]string
}

func (s *memorySource) InitializeForFile(path string) error {
	if _, ok := s.files[path]; !ok {
		return domain.ErrSourceUnavailable
	}
	return nil
}

func (s *memorySource) ReadToString(path string) (string, error) {
	text, ok := s.files[path]
	if !ok {
		return "", domain.ErrIO
	}
	return text, nil
}

var _ ports.SourceProvider = (*memorySource)(nil)

func TestApp_Run_NoTargets(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	src := &memorySource{files: map[string]string{"BUILD": "[]"}}
	tracer := mocks.NewMockTracer(ctrl)
	p := parser.New(src, logger, tracer, kinds.Register)
	a := app.New(p, logger)

	_, err := a.Run(context.Background(), nil, app.RunOptions{OutputMode: "linear"})
	require.ErrorIs(t, err, domain.ErrNoTargetsSpecified)
}

func TestApp_Run_ResolvesDependencyGraph(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	src := &memorySource{files: map[string]string{
		"BUILD":     `[]`,
		"app/BUILD": `[{"cc_binary": {"name": "main", "deps": ["//lib:util"]}}]`,
		"lib/BUILD": `[{"cc_library": {"name": "util", "sources": ["u.cc"]}}]`,
	}}

	mockSpan := mocks.NewMockSpan(ctrl)
	mockSpan.EXPECT().End().AnyTimes()
	mockSpan.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()

	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().
		Start(gomock.Any(), gomock.Any()).
		Return(context.Background(), mockSpan).
		AnyTimes()
	tracer.EXPECT().EmitPlan(gomock.Any(), gomock.Any()).AnyTimes()

	p := parser.New(src, logger, tracer, kinds.Register)
	a := app.New(p, logger)

	result, err := a.Run(context.Background(), []string{"//app:main"}, app.RunOptions{OutputMode: "linear"})
	require.NoError(t, err)
	require.Contains(t, result.AllNodes, "//app:main")
	require.Contains(t, result.AllNodes, "//lib:util")

	main := result.AllNodes["//app:main"]
	require.Len(t, main.Base().DependencyNodes(), 1)
	require.Equal(t, "//lib:util", main.Base().DependencyNodes()[0].Base().Target().FullPath())
}
