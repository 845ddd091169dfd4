package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/samegraph/internal/adapters/source"
	"go.trai.ch/samegraph/internal/core/domain"
)

func TestLocal_InitializeForFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "BUILD"), []byte("[]"), 0o644))

	l := source.NewLocal(dir)
	assert.NoError(t, l.InitializeForFile("BUILD"))

	err := l.InitializeForFile("missing/BUILD")
	require.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

func TestLocal_InitializeForFile_RejectsDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "lib"), 0o750))

	l := source.NewLocal(dir)
	err := l.InitializeForFile("lib")
	require.ErrorIs(t, err, domain.ErrSourceUnavailable)
}

func TestLocal_ReadToString(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "BUILD"), []byte("[{cc_library: {name: foo}}]"), 0o644))

	l := source.NewLocal(dir)
	text, err := l.ReadToString("BUILD")
	require.NoError(t, err)
	assert.Equal(t, "[{cc_library: {name: foo}}]", text)

	_, err = l.ReadToString("missing/BUILD")
	require.ErrorIs(t, err, domain.ErrIO)
}

func TestLocal_EmptyRoot(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("BUILD", []byte("[]"), 0o644))

	l := source.NewLocal("")
	assert.NoError(t, l.InitializeForFile("BUILD"))
}
