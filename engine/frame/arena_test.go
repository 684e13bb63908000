package frame

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignRecordSize(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{1, 256},
		{255, 256},
		{256, 256},
		{257, 512},
		{432, 512},
		{512, 512},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, AlignRecordSize(c.in), "AlignRecordSize(%d)", c.in)
	}
}

func TestUploadArenaWriteDisjoint(t *testing.T) {
	a := NewUploadArena(4, 64)
	require.Equal(t, 256, a.Stride())
	require.Equal(t, 4*256, len(a.Bytes()))

	rec := bytes.Repeat([]byte{0xAB}, 64)
	a.Write(1, rec)

	// Record 1 holds the payload, its padding stays zero, and neighbors are
	// untouched.
	got := a.Record(1)
	assert.Equal(t, rec, got[:64])
	assert.Equal(t, make([]byte, 256-64), got[64:])
	assert.Equal(t, make([]byte, 256), a.Record(0))
	assert.Equal(t, make([]byte, 256), a.Record(2))
}

func TestUploadArenaWriteOverwrites(t *testing.T) {
	a := NewUploadArena(2, 16)
	a.Write(0, bytes.Repeat([]byte{0x01}, 16))
	a.Write(0, bytes.Repeat([]byte{0x02}, 16))
	assert.Equal(t, bytes.Repeat([]byte{0x02}, 16), a.Record(0)[:16])
}

func TestUploadArenaWritePanics(t *testing.T) {
	a := NewUploadArena(2, 16)

	assert.Panics(t, func() { a.Write(-1, make([]byte, 16)) })
	assert.Panics(t, func() { a.Write(2, make([]byte, 16)) })
	assert.Panics(t, func() { a.Write(0, make([]byte, 17)) })
	assert.NotPanics(t, func() { a.Write(0, make([]byte, 15)) })
}

func TestNewUploadArenaValidation(t *testing.T) {
	assert.Panics(t, func() { NewUploadArena(0, 16) })
	assert.Panics(t, func() { NewUploadArena(4, 0) })
}
