package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/samegraph/internal/core/domain"
)

func TestGenSh_Parse(t *testing.T) {
	file := domain.NewBuildFile("lib/BUILD")
	attr := parseObject(t, `{script: "echo hi", env: [FOO=bar], args: [--flag], deps: ["//lib:dep"]}`)

	g := domain.NewGenSh(domain.MustTargetInfo("//lib:gen", ""), nil)
	require.NoError(t, g.Parse(file, attr))

	assert.Equal(t, "echo hi", g.Script)
	assert.Equal(t, []string{"FOO=bar"}, g.Env)
	assert.Equal(t, []string{"--flag"}, g.Args)
	require.Len(t, g.DepTargets(), 1)
	assert.Equal(t, "//lib:dep", g.DepTargets()[0].FullPath())
}

func TestGenSh_Parse_RequiresScript(t *testing.T) {
	file := domain.NewBuildFile("lib/BUILD")
	attr := parseObject(t, `{}`)

	g := domain.NewGenSh(domain.MustTargetInfo("//lib:gen", ""), nil)
	err := g.Parse(file, attr)
	require.ErrorIs(t, err, domain.ErrSchema)
}
