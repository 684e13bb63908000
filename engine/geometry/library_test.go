package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibraryConcatenation(t *testing.T) {
	red := [4]float32{1, 0, 0, 1}
	green := [4]float32{0, 1, 0, 1}

	lib, err := NewLibraryBuilder().
		Add("box", Box(1, 1, 1), red).
		Add("pyramid", Pyramid(1, 1, 3), green).
		Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"box", "pyramid"}, lib.Names())
	assert.Equal(t, 24+5, lib.VertexCount())
	assert.Equal(t, 36+18, lib.IndexCount())

	box, err := lib.Lookup("box")
	require.NoError(t, err)
	assert.Equal(t, Submesh{IndexCount: 36, StartIndex: 0, BaseVertex: 0}, box)

	// The second shape's ranges start where the first ends.
	pyr, err := lib.Lookup("pyramid")
	require.NoError(t, err)
	assert.Equal(t, Submesh{IndexCount: 18, StartIndex: 36, BaseVertex: 24}, pyr)

	assert.Len(t, lib.VertexBytes(), lib.VertexCount()*GPUVertexSize)
	assert.Len(t, lib.IndexBytes(), lib.IndexCount()*4)
}

func TestLibraryLookupUnknown(t *testing.T) {
	lib, err := NewLibraryBuilder().Add("box", Box(1, 1, 1), [4]float32{}).Build()
	require.NoError(t, err)

	_, err = lib.Lookup("torus")
	assert.ErrorContains(t, err, "torus")
}

func TestLibraryDuplicateName(t *testing.T) {
	_, err := NewLibraryBuilder().
		Add("box", Box(1, 1, 1), [4]float32{}).
		Add("box", Box(2, 2, 2), [4]float32{}).
		Build()
	assert.ErrorContains(t, err, "duplicate")
}

func TestLibraryEmpty(t *testing.T) {
	_, err := NewLibraryBuilder().Build()
	assert.Error(t, err)
}

func TestLibraryDeterministicLayout(t *testing.T) {
	build := func() Library {
		lib, err := NewLibraryBuilder().
			Add("a", Box(1, 1, 1), [4]float32{1, 1, 1, 1}).
			Add("b", Sphere(1, 8, 8), [4]float32{0, 0, 1, 1}).
			Add("c", Wedge(1, 1, 1), [4]float32{0, 1, 1, 1}).
			Build()
		require.NoError(t, err)
		return lib
	}

	first, second := build(), build()
	for _, name := range first.Names() {
		a, err := first.Lookup(name)
		require.NoError(t, err)
		b, err := second.Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
	assert.Equal(t, first.VertexBytes(), second.VertexBytes())
	assert.Equal(t, first.IndexBytes(), second.IndexBytes())
}
