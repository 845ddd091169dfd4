package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/samegraph/cmd/samegraph/commands"
	"go.trai.ch/samegraph/internal/app"
	"go.trai.ch/samegraph/internal/build"
	"go.trai.ch/samegraph/internal/core/domain"
	"go.trai.ch/samegraph/internal/engine/graph"
)

type mockApp struct {
	runFunc func(ctx context.Context, targetNames []string, opts app.RunOptions) (*graph.Result, error)
}

func (m *mockApp) Run(ctx context.Context, targetNames []string, opts app.RunOptions) (*graph.Result, error) {
	if m.runFunc != nil {
		return m.runFunc(ctx, targetNames, opts)
	}
	return &graph.Result{}, nil
}

func TestCommands_Graph(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.RunOptions
		var capturedTargets []string
		called := false

		mock := &mockApp{
			runFunc: func(_ context.Context, targetNames []string, opts app.RunOptions) (*graph.Result, error) {
				capturedOpts = opts
				capturedTargets = targetNames
				called = true
				return &graph.Result{}, nil
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"graph", "//app:main", "--ci", "--inspect"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "linear", capturedOpts.OutputMode)
		assert.True(t, capturedOpts.Inspect)
		assert.Equal(t, []string{"//app:main"}, capturedTargets)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ []string, _ app.RunOptions) (*graph.Result, error) {
				return nil, errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"graph", "//app:main"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("requires at least one target", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ []string, _ app.RunOptions) (*graph.Result, error) {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"graph"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
	})
}

func TestCommands_Targets(t *testing.T) {
	target, err := domain.NewTargetInfo("//app:main", "")
	require.NoError(t, err)
	node := domain.NewCCBinary(target, nil)

	mock := &mockApp{
		runFunc: func(_ context.Context, _ []string, _ app.RunOptions) (*graph.Result, error) {
			return &graph.Result{InputNodes: []domain.Node{node}}, nil
		},
	}

	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"targets", "//app:main"})

	err = cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "//app:main")
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
