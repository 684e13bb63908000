// package frame implements the CPU/GPU frame pipelining machinery: a ring of
// per-frame resource slots, the completion handshake that keeps the producer a
// bounded number of frames ahead of the consumer, and the closed-form
// descriptor addressing shared by the upload and bind paths.
package frame

import "fmt"

// CommandQueue is the narrow view of a GPU submission queue the pool needs
// for its completion handshake. Signal stamps a new strictly increasing
// marker after the current frame's work is submitted; Completed reports the
// highest marker the GPU has finished; WaitFor blocks until the given marker
// completes.
type CommandQueue interface {
	// Signal stamps and returns a new marker greater than every marker
	// previously returned.
	Signal() uint64

	// Completed returns the highest marker whose submitted work has finished
	// on the GPU. Zero means no signaled work has completed yet.
	Completed() uint64

	// WaitFor blocks until Completed() >= marker or the device is lost.
	//
	// Parameters:
	//   - marker: the completion marker to wait for
	//
	// Returns:
	//   - error: non-nil if the device was lost while waiting
	WaitFor(marker uint64) error
}

// Pool is the ring of frame resource slots. Advance hands the producer the
// next slot, blocking only when the GPU still owns it; Retire stamps the
// current slot with a fresh marker after submission. The zero marker state of
// a fresh slot means it has never been submitted, so the first ring traversal
// never blocks.
type Pool interface {
	// Advance moves to the next slot in round-robin order and blocks until
	// the GPU has finished the work previously submitted against it.
	//
	// Returns:
	//   - *Resource: the slot now owned by the CPU producer
	//   - error: non-nil if the device was lost while waiting
	Advance() (*Resource, error)

	// Retire signals the queue and stamps the current slot with the returned
	// marker. Called once per frame, after the frame's work is submitted.
	//
	// Returns:
	//   - uint64: the marker stamped on the current slot
	Retire() uint64

	// Current returns the slot most recently handed out by Advance.
	Current() *Resource

	// FrameIndex returns the ring index of the current slot.
	FrameIndex() int

	// FrameCount returns the number of slots in the ring.
	FrameCount() int
}

var _ Pool = &pool{}

type pool struct {
	queue     CommandQueue
	resources []*Resource
	current   int
}

type poolOptions struct {
	frameCount int
}

// PoolOption configures pool construction.
type PoolOption func(*poolOptions)

// WithFrameCount overrides the default ring depth of three slots.
//
// Parameters:
//   - count: number of slots in the ring (must be positive)
func WithFrameCount(count int) PoolOption {
	return func(o *poolOptions) {
		o.frameCount = count
	}
}

// NewPool creates a frame resource ring backed by queue. Every slot is
// allocated up front with its own object and pass arenas sized for itemCount
// items. The pool starts positioned before the first slot, so the first
// Advance yields slot zero.
//
// Parameters:
//   - queue: completion handshake with the GPU submission queue
//   - itemCount: number of per-item records in each slot's object arena
//   - objectRecordSize: unpadded size of one object record in bytes
//   - passRecordSize: unpadded size of the pass record in bytes
//   - opts: optional configuration (ring depth)
//
// Returns:
//   - Pool: the initialized frame resource ring
func NewPool(queue CommandQueue, itemCount, objectRecordSize, passRecordSize int, opts ...PoolOption) Pool {
	if queue == nil {
		panic("frame pool requires a command queue")
	}
	options := poolOptions{frameCount: 3}
	for _, opt := range opts {
		opt(&options)
	}
	if options.frameCount <= 0 {
		panic(fmt.Sprintf("frame count must be positive, got %d", options.frameCount))
	}

	resources := make([]*Resource, options.frameCount)
	for i := range resources {
		resources[i] = newResource(i, itemCount, objectRecordSize, passRecordSize)
	}

	return &pool{
		queue:     queue,
		resources: resources,
		current:   -1,
	}
}

func (p *pool) Advance() (*Resource, error) {
	p.current = (p.current + 1) % len(p.resources)
	res := p.resources[p.current]

	// A zero marker means the slot was never submitted, so the GPU cannot
	// still own it. This is what lets the first traversal of the ring prime
	// without blocking.
	if res.marker != 0 && p.queue.Completed() < res.marker {
		if err := p.queue.WaitFor(res.marker); err != nil {
			return nil, fmt.Errorf("waiting for frame slot %d (marker %d): %w", res.index, res.marker, err)
		}
	}
	return res, nil
}

func (p *pool) Retire() uint64 {
	if p.current < 0 {
		panic("retire called before the first advance")
	}
	marker := p.queue.Signal()
	p.resources[p.current].marker = marker
	return marker
}

func (p *pool) Current() *Resource {
	if p.current < 0 {
		return nil
	}
	return p.resources[p.current]
}

func (p *pool) FrameIndex() int {
	if p.current < 0 {
		return 0
	}
	return p.current
}

func (p *pool) FrameCount() int {
	return len(p.resources)
}
