// package geometry procedurally generates the primitive meshes a scene is
// assembled from and concatenates them into a single shared vertex/index
// buffer with named submesh ranges.
package geometry

import (
	"github.com/chewxy/math32"
)

// MeshData holds the raw output of a shape generator before it is colored and
// merged into a Library.
type MeshData struct {
	// Positions are the model-space vertex positions.
	Positions [][3]float32
	// Indices are triangle-list indices into Positions.
	Indices []uint32
}

// Box generates an axis-aligned box centered at the origin with one quad per
// face (24 vertices, 36 indices). Faces do not share vertices so each face
// keeps a flat silhouette under index-based culling.
//
// Parameters:
//   - width, height, depth: box extents along x, y, z
//
// Returns:
//   - MeshData: the generated mesh
func Box(width, height, depth float32) MeshData {
	w, h, d := width/2, height/2, depth/2

	positions := [][3]float32{
		// front (-z)
		{-w, -h, -d}, {-w, h, -d}, {w, h, -d}, {w, -h, -d},
		// back (+z)
		{-w, -h, d}, {w, -h, d}, {w, h, d}, {-w, h, d},
		// top (+y)
		{-w, h, -d}, {-w, h, d}, {w, h, d}, {w, h, -d},
		// bottom (-y)
		{-w, -h, -d}, {w, -h, -d}, {w, -h, d}, {-w, -h, d},
		// left (-x)
		{-w, -h, d}, {-w, h, d}, {-w, h, -d}, {-w, -h, -d},
		// right (+x)
		{w, -h, -d}, {w, h, -d}, {w, h, d}, {w, -h, d},
	}

	indices := make([]uint32, 0, 36)
	for face := uint32(0); face < 6; face++ {
		base := face * 4
		indices = append(indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}

	return MeshData{Positions: positions, Indices: indices}
}

// Grid generates a flat grid in the xz plane centered at the origin with rows
// vertices along z and cols vertices along x.
//
// Parameters:
//   - width: total extent along x
//   - depth: total extent along z
//   - rows, cols: vertex counts along z and x (each must be >= 2)
//
// Returns:
//   - MeshData: the generated mesh
func Grid(width, depth float32, rows, cols int) MeshData {
	halfW := width / 2
	halfD := depth / 2
	dx := width / float32(cols-1)
	dz := depth / float32(rows-1)

	positions := make([][3]float32, 0, rows*cols)
	for r := 0; r < rows; r++ {
		z := halfD - float32(r)*dz
		if r == rows-1 {
			// Accumulated float32 error can overshoot the half extent; pin the
			// boundary row and column to the exact edge.
			z = -halfD
		}
		for c := 0; c < cols; c++ {
			x := -halfW + float32(c)*dx
			if c == cols-1 {
				x = halfW
			}
			positions = append(positions, [3]float32{x, 0, z})
		}
	}

	indices := make([]uint32, 0, (rows-1)*(cols-1)*6)
	for r := 0; r < rows-1; r++ {
		for c := 0; c < cols-1; c++ {
			i := uint32(r*cols + c)
			indices = append(indices,
				i, i+1, uint32(cols)+i+1,
				i, uint32(cols)+i+1, uint32(cols)+i,
			)
		}
	}

	return MeshData{Positions: positions, Indices: indices}
}

// Sphere generates a UV sphere from stacked rings between two pole vertices.
//
// Parameters:
//   - radius: sphere radius
//   - slices: subdivisions around the y axis
//   - stacks: subdivisions from pole to pole
//
// Returns:
//   - MeshData: the generated mesh
func Sphere(radius float32, slices, stacks int) MeshData {
	positions := [][3]float32{{0, radius, 0}}

	stackStep := math32.Pi / float32(stacks)
	sliceStep := 2 * math32.Pi / float32(slices)

	for s := 1; s < stacks; s++ {
		phi := float32(s) * stackStep
		for i := 0; i <= slices; i++ {
			theta := float32(i) * sliceStep
			positions = append(positions, [3]float32{
				radius * math32.Sin(phi) * math32.Cos(theta),
				radius * math32.Cos(phi),
				radius * math32.Sin(phi) * math32.Sin(theta),
			})
		}
	}
	positions = append(positions, [3]float32{0, -radius, 0})

	indices := make([]uint32, 0, slices*6+(stacks-2)*slices*6)

	// Top fan.
	for i := 1; i <= slices; i++ {
		indices = append(indices, 0, uint32(i+1), uint32(i))
	}

	// Middle quads.
	ringVerts := uint32(slices + 1)
	base := uint32(1)
	for s := 0; s < stacks-2; s++ {
		for i := 0; i < slices; i++ {
			a := base + uint32(s)*ringVerts + uint32(i)
			indices = append(indices,
				a, a+1, a+ringVerts+1,
				a, a+ringVerts+1, a+ringVerts,
			)
		}
	}

	// Bottom fan.
	south := uint32(len(positions) - 1)
	lastRing := south - ringVerts
	for i := 0; i < slices; i++ {
		indices = append(indices, south, lastRing+uint32(i), lastRing+uint32(i)+1)
	}

	return MeshData{Positions: positions, Indices: indices}
}

// Cylinder generates a cylinder (or truncated cone) along the y axis with
// caps at both ends. A zero top radius yields a cone-like taper with a
// degenerate top cap.
//
// Parameters:
//   - bottomRadius, topRadius: radii at y = -height/2 and y = +height/2
//   - height: extent along y
//   - slices: subdivisions around the y axis
//   - stacks: subdivisions along y
//
// Returns:
//   - MeshData: the generated mesh
func Cylinder(bottomRadius, topRadius, height float32, slices, stacks int) MeshData {
	stackHeight := height / float32(stacks)
	radiusStep := (topRadius - bottomRadius) / float32(stacks)
	sliceStep := 2 * math32.Pi / float32(slices)

	positions := make([][3]float32, 0, (stacks+1)*(slices+1)+2*(slices+2))

	for s := 0; s <= stacks; s++ {
		y := -height/2 + float32(s)*stackHeight
		r := bottomRadius + float32(s)*radiusStep
		for i := 0; i <= slices; i++ {
			theta := float32(i) * sliceStep
			positions = append(positions, [3]float32{
				r * math32.Cos(theta), y, r * math32.Sin(theta),
			})
		}
	}

	ringVerts := uint32(slices + 1)
	indices := make([]uint32, 0, stacks*slices*6+2*slices*3)
	for s := 0; s < stacks; s++ {
		for i := 0; i < slices; i++ {
			a := uint32(s)*ringVerts + uint32(i)
			indices = append(indices,
				a, a+ringVerts, a+ringVerts+1,
				a, a+ringVerts+1, a+1,
			)
		}
	}

	// Top cap ring + center.
	topBase := uint32(len(positions))
	y := height / 2
	for i := 0; i <= slices; i++ {
		theta := float32(i) * sliceStep
		positions = append(positions, [3]float32{
			topRadius * math32.Cos(theta), y, topRadius * math32.Sin(theta),
		})
	}
	positions = append(positions, [3]float32{0, y, 0})
	topCenter := uint32(len(positions) - 1)
	for i := 0; i < slices; i++ {
		indices = append(indices, topCenter, topBase+uint32(i)+1, topBase+uint32(i))
	}

	// Bottom cap ring + center.
	bottomBase := uint32(len(positions))
	y = -height / 2
	for i := 0; i <= slices; i++ {
		theta := float32(i) * sliceStep
		positions = append(positions, [3]float32{
			bottomRadius * math32.Cos(theta), y, bottomRadius * math32.Sin(theta),
		})
	}
	positions = append(positions, [3]float32{0, y, 0})
	bottomCenter := uint32(len(positions) - 1)
	for i := 0; i < slices; i++ {
		indices = append(indices, bottomCenter, bottomBase+uint32(i), bottomBase+uint32(i)+1)
	}

	return MeshData{Positions: positions, Indices: indices}
}

// Cone generates a cone tapering from bottomRadius to topRadius along y.
// It shares the cylinder topology so a zero top radius is valid.
//
// Parameters:
//   - bottomRadius, topRadius: radii at the base and apex
//   - height: extent along y
//   - slices: subdivisions around the y axis
//   - stacks: subdivisions along y
//
// Returns:
//   - MeshData: the generated mesh
func Cone(bottomRadius, topRadius, height float32, slices, stacks int) MeshData {
	return Cylinder(bottomRadius, topRadius, height, slices, stacks)
}

// Wedge generates a right-angle wedge: a box sliced diagonally so the +z top
// edge collapses onto the base. The vertical face sits at -z and the sloped
// face descends toward +z (6 vertices, 24 indices).
//
// Parameters:
//   - width, height, depth: extents along x, y, z
//
// Returns:
//   - MeshData: the generated mesh
func Wedge(width, height, depth float32) MeshData {
	w, h, d := width/2, height/2, depth/2

	positions := [][3]float32{
		{-w, -h, -d}, // 0 bottom back left
		{w, -h, -d},  // 1 bottom back right
		{w, -h, d},   // 2 bottom front right
		{-w, -h, d},  // 3 bottom front left
		{-w, h, -d},  // 4 top back left
		{w, h, -d},   // 5 top back right
	}

	indices := []uint32{
		// bottom
		0, 2, 1, 0, 3, 2,
		// back (vertical quad)
		0, 1, 5, 0, 5, 4,
		// slope
		4, 5, 2, 4, 2, 3,
		// left triangle
		0, 4, 3, // uses slope edge 4-3
		// right triangle
		1, 2, 5,
	}

	return MeshData{Positions: positions, Indices: indices}
}

// Pyramid generates a four-sided pyramid with a rectangular base centered at
// the origin and the apex on the +y axis (5 vertices, 18 indices).
//
// Parameters:
//   - width, depth: base extents along x and z
//   - height: apex height above the base plane
//
// Returns:
//   - MeshData: the generated mesh
func Pyramid(width, depth, height float32) MeshData {
	w, d := width/2, depth/2

	positions := [][3]float32{
		{-w, 0, -d}, // 0
		{w, 0, -d},  // 1
		{w, 0, d},   // 2
		{-w, 0, d},  // 3
		{0, height, 0},
	}

	indices := []uint32{
		// base
		0, 2, 1, 0, 3, 2,
		// sides
		0, 1, 4,
		1, 2, 4,
		2, 3, 4,
		3, 0, 4,
	}

	return MeshData{Positions: positions, Indices: indices}
}

// Prism generates a triangular prism with an isosceles cross-section in the
// xy plane extruded along z. The ridge runs along the top (6 vertices, 24
// indices).
//
// Parameters:
//   - width, height, depth: extents along x, y, z
//
// Returns:
//   - MeshData: the generated mesh
func Prism(width, height, depth float32) MeshData {
	w, h, d := width/2, height/2, depth/2

	positions := [][3]float32{
		{-w, -h, -d}, // 0 base back left
		{w, -h, -d},  // 1 base back right
		{w, -h, d},   // 2 base front right
		{-w, -h, d},  // 3 base front left
		{0, h, -d},   // 4 ridge back
		{0, h, d},    // 5 ridge front
	}

	indices := []uint32{
		// bottom
		0, 2, 1, 0, 3, 2,
		// back triangle
		0, 1, 4,
		// front triangle
		3, 5, 2,
		// left slope
		0, 4, 5, 0, 5, 3,
		// right slope
		1, 2, 5, 1, 5, 4,
	}

	return MeshData{Positions: positions, Indices: indices}
}

// Diamond generates two four-sided pyramids joined base to base: a square
// equator with apexes above and below (6 vertices, 24 indices).
//
// Parameters:
//   - width, depth: equator extents along x and z
//   - topHeight: apex height above the equator
//   - bottomHeight: apex depth below the equator
//
// Returns:
//   - MeshData: the generated mesh
func Diamond(width, depth, topHeight, bottomHeight float32) MeshData {
	w, d := width/2, depth/2

	positions := [][3]float32{
		{-w, 0, -d}, // 0
		{w, 0, -d},  // 1
		{w, 0, d},   // 2
		{-w, 0, d},  // 3
		{0, topHeight, 0},     // 4
		{0, -bottomHeight, 0}, // 5
	}

	indices := []uint32{
		// upper pyramid
		0, 1, 4,
		1, 2, 4,
		2, 3, 4,
		3, 0, 4,
		// lower pyramid
		1, 0, 5,
		2, 1, 5,
		3, 2, 5,
		0, 3, 5,
	}

	return MeshData{Positions: positions, Indices: indices}
}
