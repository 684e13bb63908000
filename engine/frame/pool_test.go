package frame

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeQueue is a deterministic CommandQueue: markers increment on Signal and
// completion advances only when the test says so. waited records every marker
// that forced a wait.
type fakeQueue struct {
	signaled  uint64
	completed uint64
	waited    []uint64
	waitErr   error
}

func (q *fakeQueue) Signal() uint64 {
	q.signaled++
	return q.signaled
}

func (q *fakeQueue) Completed() uint64 {
	return q.completed
}

func (q *fakeQueue) WaitFor(marker uint64) error {
	q.waited = append(q.waited, marker)
	if q.waitErr != nil {
		return q.waitErr
	}
	q.completed = marker
	return nil
}

func TestPoolPrimingNeverBlocks(t *testing.T) {
	q := &fakeQueue{}
	p := NewPool(q, 4, 64, 432)

	// First traversal: no slot has ever been submitted, so no waits even
	// though nothing has completed.
	for i := 0; i < p.FrameCount(); i++ {
		res, err := p.Advance()
		require.NoError(t, err)
		assert.Equal(t, i, res.Index())
		p.Retire()
	}
	assert.Empty(t, q.waited)
}

func TestPoolBlocksOnUnfinishedSlot(t *testing.T) {
	q := &fakeQueue{}
	p := NewPool(q, 4, 64, 432)

	for i := 0; i < 3; i++ {
		_, err := p.Advance()
		require.NoError(t, err)
		p.Retire()
	}

	// Slot 0 was retired with marker 1 and the GPU has completed nothing, so
	// the fourth advance must wait on exactly that marker.
	res, err := p.Advance()
	require.NoError(t, err)
	assert.Equal(t, 0, res.Index())
	assert.Equal(t, []uint64{1}, q.waited)
}

func TestPoolNoWaitWhenGPUKeepsUp(t *testing.T) {
	q := &fakeQueue{}
	p := NewPool(q, 4, 64, 432)

	for i := 0; i < 10; i++ {
		_, err := p.Advance()
		require.NoError(t, err)
		marker := p.Retire()
		// GPU finishes each frame immediately.
		q.completed = marker
	}
	assert.Empty(t, q.waited)
}

func TestPoolMarkersStrictlyIncrease(t *testing.T) {
	q := &fakeQueue{completed: ^uint64(0)} // never wait
	p := NewPool(q, 2, 64, 432)

	var prev uint64
	for i := 0; i < 8; i++ {
		_, err := p.Advance()
		require.NoError(t, err)
		m := p.Retire()
		assert.Greater(t, m, prev)
		prev = m
	}
}

func TestPoolDeviceLostSurfaces(t *testing.T) {
	q := &fakeQueue{waitErr: errors.New("device lost")}
	p := NewPool(q, 1, 64, 432)

	for i := 0; i < 3; i++ {
		_, err := p.Advance()
		require.NoError(t, err)
		p.Retire()
	}

	_, err := p.Advance()
	require.Error(t, err)
	assert.ErrorContains(t, err, "device lost")
}

func TestPoolRoundRobinOrder(t *testing.T) {
	q := &fakeQueue{completed: ^uint64(0)}
	p := NewPool(q, 1, 64, 432, WithFrameCount(4))
	require.Equal(t, 4, p.FrameCount())

	for i := 0; i < 12; i++ {
		res, err := p.Advance()
		require.NoError(t, err)
		assert.Equal(t, i%4, res.Index())
		assert.Equal(t, i%4, p.FrameIndex())
		assert.Same(t, res, p.Current())
		p.Retire()
	}
}

func TestPoolSlotArenasIndependent(t *testing.T) {
	q := &fakeQueue{completed: ^uint64(0)}
	p := NewPool(q, 2, 16, 32)

	a, err := p.Advance()
	require.NoError(t, err)
	p.Retire()
	b, err := p.Advance()
	require.NoError(t, err)

	a.Objects().Write(0, []byte{1, 2, 3, 4})
	assert.Equal(t, make([]byte, 4), b.Objects().Record(0)[:4])
	assert.NotSame(t, a.Objects(), b.Objects())
	assert.NotSame(t, a.Pass(), b.Pass())
}

func TestNewPoolValidation(t *testing.T) {
	assert.Panics(t, func() { NewPool(nil, 1, 16, 16) })
	assert.Panics(t, func() { NewPool(&fakeQueue{}, 1, 16, 16, WithFrameCount(0)) })
}
