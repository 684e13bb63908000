package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-5

func assertMatNear(t *testing.T, want, got []float32) {
	t.Helper()
	require.Len(t, got, 16)
	for i := range want {
		assert.InDelta(t, want[i], got[i], epsilon, "element %d", i)
	}
}

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	for i := range m {
		m[i] = float32(i)
	}
	Identity(m)
	assertMatNear(t, []float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}, m)
}

func TestMul4Identity(t *testing.T) {
	id := make([]float32, 16)
	Identity(id)
	m := []float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	out := make([]float32, 16)
	Mul4(out, id, m)
	assertMatNear(t, m, out)
	Mul4(out, m, id)
	assertMatNear(t, m, out)
}

func TestMul4TranslationComposition(t *testing.T) {
	a := make([]float32, 16)
	b := make([]float32, 16)
	Translation(a, 1, 2, 3)
	Translation(b, 10, 20, 30)

	out := make([]float32, 16)
	Mul4(out, a, b)

	want := make([]float32, 16)
	Translation(want, 11, 22, 33)
	assertMatNear(t, want, out)
}

func TestMul4Aliasing(t *testing.T) {
	m := make([]float32, 16)
	Translation(m, 1, 0, 0)
	// out aliasing an input must still produce the correct product.
	Mul4(m, m, m)
	want := make([]float32, 16)
	Translation(want, 2, 0, 0)
	assertMatNear(t, want, m)
}

func TestTranspose4(t *testing.T) {
	m := []float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	out := make([]float32, 16)
	Transpose4(out, m)
	assertMatNear(t, []float32{
		1, 5, 9, 13,
		2, 6, 10, 14,
		3, 7, 11, 15,
		4, 8, 12, 16,
	}, out)

	// Transposing twice restores the original, and aliasing is allowed.
	Transpose4(out, out)
	assertMatNear(t, m, out)
}

func TestRotationY(t *testing.T) {
	m := make([]float32, 16)
	RotationY(m, float32(math.Pi/2))

	// Rotating +Z by 90 degrees around Y lands on +X.
	px, py, pz := transformPoint(m, 0, 0, 1)
	assert.InDelta(t, 1.0, px, epsilon)
	assert.InDelta(t, 0.0, py, epsilon)
	assert.InDelta(t, 0.0, pz, epsilon)
}

func transformPoint(m []float32, x, y, z float32) (float32, float32, float32) {
	return m[0]*x + m[4]*y + m[8]*z + m[12],
		m[1]*x + m[5]*y + m[9]*z + m[13],
		m[2]*x + m[6]*y + m[10]*z + m[14]
}

func TestInvert4RoundTrip(t *testing.T) {
	m := make([]float32, 16)
	tmp := make([]float32, 16)
	Translation(m, 3, -2, 5)
	Scaling(tmp, 2, 4, 0.5)
	Mul4(m, m, tmp)
	RotationY(tmp, 0.7)
	Mul4(m, m, tmp)

	inv := make([]float32, 16)
	require.True(t, Invert4(inv, m))

	out := make([]float32, 16)
	Mul4(out, m, inv)
	id := make([]float32, 16)
	Identity(id)
	assertMatNear(t, id, out)
}

func TestInvert4Singular(t *testing.T) {
	m := make([]float32, 16) // all zeros
	inv := make([]float32, 16)
	inv[3] = 42
	assert.False(t, Invert4(inv, m))
	assert.Equal(t, float32(42), inv[3], "singular input must leave out untouched")
}

func TestLookAtMapsEyeToOrigin(t *testing.T) {
	m := make([]float32, 16)
	LookAt(m, 5, 3, -7, 0, 0, 0, 0, 1, 0)
	x, y, z := transformPoint(m, 5, 3, -7)
	assert.InDelta(t, 0.0, x, epsilon)
	assert.InDelta(t, 0.0, y, epsilon)
	assert.InDelta(t, 0.0, z, epsilon)
}

func TestPerspectiveDepthRange(t *testing.T) {
	m := make([]float32, 16)
	Perspective(m, float32(math.Pi/4), 16.0/9.0, 1, 1000)

	// Points on the near and far planes map to clip depth 0 and 1 after the
	// perspective divide (WebGPU convention).
	nearZ := m[10]*(-1) + m[14]
	nearW := m[11] * (-1)
	assert.InDelta(t, 0.0, nearZ/nearW, epsilon)

	farZ := m[10]*(-1000) + m[14]
	farW := m[11] * (-1000)
	assert.InDelta(t, 1.0, farZ/farW, epsilon)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(1), Clamp(0.5, 1, 2))
	assert.Equal(t, float32(2), Clamp(3, 1, 2))
	assert.Equal(t, float32(1.5), Clamp(1.5, 1, 2))
}

func TestSliceToBytes(t *testing.T) {
	data := []float32{1, 2}
	b := SliceToBytes(data)
	require.Len(t, b, 8)
	assert.Nil(t, SliceToBytes([]float32{}))
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, 5, Coalesce(0, 0, 5, 7))
	assert.Equal(t, "a", Coalesce("", "a"))
	assert.Equal(t, 0, Coalesce(0, 0))
}
