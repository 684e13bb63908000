package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertValidIndices(t *testing.T, mesh MeshData) {
	t.Helper()
	require.Zero(t, len(mesh.Indices)%3, "index count must form whole triangles")
	for _, idx := range mesh.Indices {
		assert.Less(t, int(idx), len(mesh.Positions), "index out of range")
	}
}

func TestBoxCounts(t *testing.T) {
	box := Box(1, 1, 1)
	assert.Len(t, box.Positions, 24)
	assert.Len(t, box.Indices, 36)
	assertValidIndices(t, box)

	// All vertices sit on the box surface.
	for _, p := range box.Positions {
		assert.LessOrEqual(t, absf(p[0]), float32(0.5))
		assert.LessOrEqual(t, absf(p[1]), float32(0.5))
		assert.LessOrEqual(t, absf(p[2]), float32(0.5))
	}
}

func TestGridCounts(t *testing.T) {
	grid := Grid(20, 30, 60, 40)
	assert.Len(t, grid.Positions, 60*40)
	assert.Len(t, grid.Indices, 59*39*6)
	assertValidIndices(t, grid)

	for _, p := range grid.Positions {
		assert.Zero(t, p[1], "grid lies in the xz plane")
		assert.LessOrEqual(t, absf(p[0]), float32(10))
		assert.LessOrEqual(t, absf(p[2]), float32(15))
	}

	// The boundary row and column land exactly on the half extents even when
	// the step does not divide the extent evenly in float32.
	first := grid.Positions[0]
	last := grid.Positions[len(grid.Positions)-1]
	assert.Equal(t, [3]float32{-10, 0, 15}, first)
	assert.Equal(t, [3]float32{10, 0, -15}, last)
}

func TestSphereCounts(t *testing.T) {
	const slices, stacks = 20, 20
	sphere := Sphere(1, slices, stacks)
	assert.Len(t, sphere.Positions, 2+(stacks-1)*(slices+1))
	assert.Len(t, sphere.Indices, slices*6+(stacks-2)*slices*6)
	assertValidIndices(t, sphere)

	// Every vertex lies on the sphere.
	for _, p := range sphere.Positions {
		r2 := p[0]*p[0] + p[1]*p[1] + p[2]*p[2]
		assert.InDelta(t, 1.0, r2, 1e-4)
	}
}

func TestCylinderCounts(t *testing.T) {
	const slices, stacks = 20, 20
	cyl := Cylinder(1.5, 1.5, 6, slices, stacks)
	assert.Len(t, cyl.Positions, (stacks+1)*(slices+1)+2*(slices+2))
	assert.Len(t, cyl.Indices, stacks*slices*6+2*slices*3)
	assertValidIndices(t, cyl)

	for _, p := range cyl.Positions {
		assert.LessOrEqual(t, absf(p[1]), float32(3))
	}
}

func TestConeTapersToApex(t *testing.T) {
	cone := Cone(2, 0, 3, 20, 20)
	assertValidIndices(t, cone)

	// Top-cap ring vertices collapse onto the axis.
	var maxTopRadius float32
	for _, p := range cone.Positions {
		if p[1] == 1.5 {
			r := p[0]*p[0] + p[2]*p[2]
			if r > maxTopRadius {
				maxTopRadius = r
			}
		}
	}
	assert.InDelta(t, 0.0, maxTopRadius, 1e-6)
}

func TestWedgeCounts(t *testing.T) {
	wedge := Wedge(1, 1, 1)
	assert.Len(t, wedge.Positions, 6)
	assert.Len(t, wedge.Indices, 24)
	assertValidIndices(t, wedge)
}

func TestPyramidCounts(t *testing.T) {
	pyr := Pyramid(1, 1, 3)
	assert.Len(t, pyr.Positions, 5)
	assert.Len(t, pyr.Indices, 18)
	assertValidIndices(t, pyr)
	assert.Equal(t, [3]float32{0, 3, 0}, pyr.Positions[4])
}

func TestPrismCounts(t *testing.T) {
	prism := Prism(1, 1, 1)
	assert.Len(t, prism.Positions, 6)
	assert.Len(t, prism.Indices, 24)
	assertValidIndices(t, prism)
}

func TestDiamondCounts(t *testing.T) {
	diamond := Diamond(1, 1, 0.5, 0.5)
	assert.Len(t, diamond.Positions, 6)
	assert.Len(t, diamond.Indices, 24)
	assertValidIndices(t, diamond)
	assert.Equal(t, [3]float32{0, 0.5, 0}, diamond.Positions[4])
	assert.Equal(t, [3]float32{0, -0.5, 0}, diamond.Positions[5])
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
