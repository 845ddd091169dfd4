package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/samegraph/internal/core/domain"
)

func TestParseAttributeDocument(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{
			name: "array of objects",
			text: `[{cc_library: {name: foo, srcs: [a.cc, b.cc]}}]`,
		},
		{
			name: "plain JSON body",
			text: `[{"cc_library": {"name": "foo", "deps": ["//lib:bar"]}}]`,
		},
		{
			name: "empty document",
			text: ``,
		},
		{
			name:    "duplicate keys are rejected",
			text:    `[{a: 1, a: 2}]`,
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			text:    `[{`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, err := domain.ParseAttributeDocument("BUILD", []byte(tt.text))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.text == "" {
				assert.Empty(t, docs)
			}
		})
	}
}

func TestParseAttributeDocument_PreservesMemberOrder(t *testing.T) {
	docs, err := domain.ParseAttributeDocument("BUILD", []byte(`[{z: 1, a: 2, m: 3}]`))
	require.NoError(t, err)
	require.Len(t, docs, 1)

	root := docs[0].Array()
	require.Len(t, root, 1)
	assert.Equal(t, []string{"z", "a", "m"}, root[0].Keys())
}

func TestParseAttributeDocument_ScalarKinds(t *testing.T) {
	docs, err := domain.ParseAttributeDocument("BUILD", []byte(`[{b: true, n: 3.5, s: hello, u: null}]`))
	require.NoError(t, err)
	obj := docs[0].Array()[0]

	bv, ok := obj.Get("b").Bool()
	require.True(t, ok)
	assert.True(t, bv)

	nv, ok := obj.Get("n").Number()
	require.True(t, ok)
	assert.Equal(t, 3.5, nv)

	sv, ok := obj.Get("s").String()
	require.True(t, ok)
	assert.Equal(t, "hello", sv)

	assert.True(t, obj.Get("u").IsNull())
}

func TestParseAttributeDocument_MultipleDocumentsDecodeIndependently(t *testing.T) {
	// ParseAttributeDocument itself returns one tree per YAML document; it
	// is BuildFile.Parse that enforces a single top-level document. Here we
	// only check that two "---"-separated documents decode independently.
	docs, err := domain.ParseAttributeDocument("BUILD", []byte("a\n---\nb\n"))
	require.NoError(t, err)
	require.Len(t, docs, 2)

	av, _ := docs[0].String()
	bv, _ := docs[1].String()
	assert.Equal(t, "a", av)
	assert.Equal(t, "b", bv)
}
