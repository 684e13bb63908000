package renderer

import (
	"fmt"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/nestorplata/shapeframes/engine/frame"
)

// wgpuCommandQueue tracks frame markers against GPU progress. Markers are
// CPU-side monotonic counters stamped after each frame's submission; a marker
// is known complete once a device poll reports the queue empty, at which point
// every marker stamped so far is covered.
type wgpuCommandQueue struct {
	mu        *sync.Mutex
	device    *wgpu.Device
	signaled  uint64
	completed uint64
}

var _ frame.CommandQueue = &wgpuCommandQueue{}

func newWGPUCommandQueue(device *wgpu.Device) *wgpuCommandQueue {
	return &wgpuCommandQueue{
		mu:     &sync.Mutex{},
		device: device,
	}
}

func (q *wgpuCommandQueue) Signal() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.signaled++
	return q.signaled
}

func (q *wgpuCommandQueue) Completed() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.completed < q.signaled && q.device.Poll(false, nil) {
		q.completed = q.signaled
	}
	return q.completed
}

func (q *wgpuCommandQueue) WaitFor(marker uint64) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if marker > q.signaled {
		return fmt.Errorf("marker %d has not been signaled (latest %d)", marker, q.signaled)
	}
	for q.completed < marker {
		if !q.device.Poll(true, nil) {
			return fmt.Errorf("device poll did not drain the queue waiting for marker %d", marker)
		}
		q.completed = q.signaled
	}
	return nil
}
