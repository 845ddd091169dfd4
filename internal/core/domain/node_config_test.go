package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/samegraph/internal/core/domain"
)

func TestConfig_Parse_PopulatesInheritedEnv(t *testing.T) {
	file := domain.NewBuildFile("BUILD")
	attr := parseObject(t, `{name: cfg, CC: clang, CXX: clang++}`)

	cfg := domain.NewConfig(domain.MustTargetInfo("//:cfg", ""), nil)
	require.NoError(t, cfg.Parse(file, attr))

	assert.Equal(t, "clang", file.InheritedEnv()["CC"])
	assert.Equal(t, "clang++", file.InheritedEnv()["CXX"])
	assert.NotContains(t, file.InheritedEnv(), "name", "the name key itself is never copied into inherited_env")
}

func TestConfig_Parse_RequiresRecordedAsPreParse(t *testing.T) {
	file := domain.NewBuildFile("lib/BUILD")
	attr := parseObject(t, `{requires: ["//:base"]}`)

	cfg := domain.NewConfig(domain.MustTargetInfo("//lib:cfg", ""), nil)
	require.NoError(t, cfg.Parse(file, attr))

	require.Len(t, cfg.PreParse(), 1)
	assert.Equal(t, "//:base", cfg.PreParse()[0].FullPath())
}

func TestConfig_Parse_NonStringValuesAreIgnored(t *testing.T) {
	file := domain.NewBuildFile("BUILD")
	attr := parseObject(t, `{flag: true, count: 3}`)

	cfg := domain.NewConfig(domain.MustTargetInfo("//:cfg", ""), nil)
	require.NoError(t, cfg.Parse(file, attr))

	assert.Empty(t, file.InheritedEnv())
}

func TestConfig_Parse_BaseDependencyRecordedAgainstFile(t *testing.T) {
	file := domain.NewBuildFile("lib/BUILD")
	attr := parseObject(t, `{base_dependency: ["//lib:generated_headers"]}`)

	cfg := domain.NewConfig(domain.MustTargetInfo("//lib:cfg", ""), nil)
	require.NoError(t, cfg.Parse(file, attr))

	assert.Equal(t, []string{"//lib:generated_headers"}, file.BaseDependencies())
	assert.NotContains(t, file.InheritedEnv(), "base_dependency", "base_dependency is consumed, not copied into inherited_env")
}
