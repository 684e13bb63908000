package scene

import (
	"math"
	"sync"
	"testing"

	"github.com/nestorplata/shapeframes/common"
	"github.com/nestorplata/shapeframes/engine/camera"
	"github.com/nestorplata/shapeframes/engine/frame"
	"github.com/nestorplata/shapeframes/engine/geometry"
	"github.com/nestorplata/shapeframes/engine/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeQueue is a CommandQueue whose completion point the test controls.
type fakeQueue struct {
	mu        sync.Mutex
	signaled  uint64
	completed uint64
}

func (q *fakeQueue) Signal() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.signaled++
	return q.signaled
}

func (q *fakeQueue) Completed() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.completed
}

func (q *fakeQueue) WaitFor(marker uint64) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.completed < marker {
		q.completed = marker
	}
	return nil
}

// fakeRenderer records every facade call so tests can assert on upload and
// draw traffic without a GPU.
type fakeRenderer struct {
	queue *fakeQueue

	initGeometryCalls      int
	initFrameResourcesArgs []int

	// uploads holds a deep copy of each WriteArenas batch, since the scene
	// reuses the staging arenas between frames.
	uploads [][]renderer.ArenaWrite

	begunFrames []int
	drawnSlots  [][]int
	endCalls    int
	presents    int
	wireframe   bool
}

var _ renderer.Renderer = &fakeRenderer{}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{queue: &fakeQueue{}}
}

func (f *fakeRenderer) Resize(width, height int) {}

func (f *fakeRenderer) SetPresentMode(mode renderer.PresentMode) {}

func (f *fakeRenderer) InitGeometry(lib geometry.Library) error {
	f.initGeometryCalls++
	return nil
}

func (f *fakeRenderer) InitFrameResources(frameCount, itemCount, objectStride, passStride int) error {
	f.initFrameResourcesArgs = []int{frameCount, itemCount, objectStride, passStride}
	return nil
}

func (f *fakeRenderer) Queue() frame.CommandQueue {
	return f.queue
}

func (f *fakeRenderer) WriteArenas(writes []renderer.ArenaWrite) error {
	batch := make([]renderer.ArenaWrite, len(writes))
	for i, w := range writes {
		data := make([]byte, len(w.Data))
		copy(data, w.Data)
		w.Data = data
		batch[i] = w
	}
	f.uploads = append(f.uploads, batch)
	return nil
}

func (f *fakeRenderer) SetWireframe(enabled bool) { f.wireframe = enabled }
func (f *fakeRenderer) Wireframe() bool           { return f.wireframe }

func (f *fakeRenderer) BeginFrame(frameIndex int) error {
	f.begunFrames = append(f.begunFrames, frameIndex)
	f.drawnSlots = append(f.drawnSlots, nil)
	return nil
}

func (f *fakeRenderer) Draw(slot int, submesh geometry.Submesh) error {
	last := len(f.drawnSlots) - 1
	f.drawnSlots[last] = append(f.drawnSlots[last], slot)
	return nil
}

func (f *fakeRenderer) EndFrame() { f.endCalls++ }
func (f *fakeRenderer) Present()  { f.presents++ }
func (f *fakeRenderer) Release()  {}

// objectWrites filters one upload batch down to its object records.
func objectWrites(batch []renderer.ArenaWrite) []renderer.ArenaWrite {
	var out []renderer.ArenaWrite
	for _, w := range batch {
		if w.Kind == renderer.ArenaKindObject {
			out = append(out, w)
		}
	}
	return out
}

func testLibrary(t *testing.T) geometry.Library {
	t.Helper()
	lib, err := geometry.NewLibraryBuilder().
		Add("box", geometry.Box(1, 1, 1), [4]float32{1, 0, 0, 1}).
		Add("sphere", geometry.Sphere(1, 8, 8), [4]float32{0, 1, 0, 1}).
		Build()
	require.NoError(t, err)
	return lib
}

func newTestScene(t *testing.T, r renderer.Renderer, itemCount int) Scene {
	t.Helper()
	cam := camera.NewCamera(camera.WithAspect(16.0 / 9.0))
	s := NewScene("test", cam, r, testLibrary(t), WithComputeWorkers(2))
	for i := 0; i < itemCount; i++ {
		name := "box"
		if i%2 == 1 {
			name = "sphere"
		}
		var world [16]float32
		common.Translation(world[:], float32(i), 0, 0)
		_, err := s.Add(name, world)
		require.NoError(t, err)
	}
	require.NoError(t, s.Init())
	return s
}

func TestSceneAddUnknownMesh(t *testing.T) {
	cam := camera.NewCamera()
	s := NewScene("test", cam, newFakeRenderer(), testLibrary(t))
	_, err := s.Add("torus", [16]float32{})
	assert.Error(t, err)
}

func TestSceneAddAfterInitFails(t *testing.T) {
	r := newFakeRenderer()
	s := newTestScene(t, r, 1)
	_, err := s.Add("box", [16]float32{})
	assert.Error(t, err)
}

func TestSceneInitRequiresItems(t *testing.T) {
	cam := camera.NewCamera()
	s := NewScene("test", cam, newFakeRenderer(), testLibrary(t))
	assert.Error(t, s.Init())
}

func TestSceneInitSizesFrameResources(t *testing.T) {
	r := newFakeRenderer()
	newTestScene(t, r, 5)

	require.Len(t, r.initFrameResourcesArgs, 4)
	assert.Equal(t, 3, r.initFrameResourcesArgs[0])
	assert.Equal(t, 5, r.initFrameResourcesArgs[1])
	assert.Equal(t, 256, r.initFrameResourcesArgs[2])
	assert.Equal(t, 512, r.initFrameResourcesArgs[3])
	assert.Equal(t, 1, r.initGeometryCalls)
}

func TestSceneInitialFramesStageEveryItem(t *testing.T) {
	r := newFakeRenderer()
	s := newTestScene(t, r, 4)

	// Every frame in the ring starts stale, so the first three updates each
	// stage all four items plus the pass record.
	for i := 0; i < 3; i++ {
		require.NoError(t, s.Update(0, 0))
		require.NoError(t, s.Draw())
		assert.Len(t, objectWrites(r.uploads[i]), 4, "frame %d", i)
	}

	// Ring fully propagated: only the pass record is uploaded.
	require.NoError(t, s.Update(0, 0))
	assert.Empty(t, objectWrites(r.uploads[3]))
	assert.Len(t, r.uploads[3], 1)
	assert.Equal(t, renderer.ArenaKindPass, r.uploads[3][0].Kind)
	assert.Equal(t, 1, s.StagedUploads())
}

func TestSceneMutationPropagatesForFullRing(t *testing.T) {
	r := newFakeRenderer()
	s := newTestScene(t, r, 2)

	// Drain the initial dirtiness.
	for i := 0; i < 3; i++ {
		require.NoError(t, s.Update(0, 0))
		require.NoError(t, s.Draw())
	}

	var moved [16]float32
	common.Translation(moved[:], 7, 0, 0)
	item := s.Items()[1]
	item.SetWorld(moved)
	assert.Equal(t, 3, item.DirtyFrames())

	// The mutated item is re-staged on exactly the next three frames, the
	// untouched item on none of them.
	for i := 0; i < 3; i++ {
		require.NoError(t, s.Update(0, 0))
		require.NoError(t, s.Draw())
		batch := objectWrites(r.uploads[3+i])
		require.Len(t, batch, 1, "frame %d", i)
		assert.Equal(t, 1, batch[0].Slot)
	}
	assert.Equal(t, 0, item.DirtyFrames())

	require.NoError(t, s.Update(0, 0))
	assert.Empty(t, objectWrites(r.uploads[6]))
}

func TestSceneRepeatedMutationRestartsCountdown(t *testing.T) {
	r := newFakeRenderer()
	s := newTestScene(t, r, 1)
	item := s.Items()[0]

	require.NoError(t, s.Update(0, 0))
	require.NoError(t, s.Draw())
	assert.Equal(t, 2, item.DirtyFrames())

	// A second mutation mid-propagation restarts the countdown with the
	// newest matrix.
	var moved [16]float32
	common.Translation(moved[:], 0, 9, 0)
	item.SetWorld(moved)
	assert.Equal(t, 3, item.DirtyFrames())

	require.NoError(t, s.Update(0, 0))
	assert.Equal(t, 2, item.DirtyFrames())

	// The staged record holds the transpose of the newest world matrix.
	batch := objectWrites(r.uploads[1])
	require.Len(t, batch, 1)
	var transposed [16]float32
	common.Transpose4(transposed[:], moved[:])
	assert.Equal(t, common.SliceToBytes(transposed[:]), batch[0].Data[:64])
}

func TestSceneUploadsTargetCurrentRingSlot(t *testing.T) {
	r := newFakeRenderer()
	s := newTestScene(t, r, 1)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Update(0, 0))
		require.NoError(t, s.Draw())
		for _, w := range r.uploads[i] {
			assert.Equal(t, i%3, w.Frame, "upload %d", i)
		}
	}
	assert.Equal(t, []int{0, 1, 2, 0, 1}, r.begunFrames)
}

func TestSceneDrawsInRegistrationOrder(t *testing.T) {
	r := newFakeRenderer()
	s := newTestScene(t, r, 3)

	require.NoError(t, s.Update(0, 0))
	require.NoError(t, s.Draw())

	require.Len(t, r.drawnSlots, 1)
	assert.Equal(t, []int{0, 1, 2}, r.drawnSlots[0])
	assert.Equal(t, 1, r.endCalls)
	assert.Equal(t, 1, r.presents)
}

func TestSceneDrawStampsMarkers(t *testing.T) {
	r := newFakeRenderer()
	s := newTestScene(t, r, 1)

	for i := 0; i < 4; i++ {
		require.NoError(t, s.Update(0, 0))
		require.NoError(t, s.Draw())
	}
	assert.Equal(t, uint64(4), r.queue.signaled)
}

func TestSceneUpdateBeforeInitFails(t *testing.T) {
	cam := camera.NewCamera()
	s := NewScene("test", cam, newFakeRenderer(), testLibrary(t))
	assert.Error(t, s.Update(0, 0))
	assert.Error(t, s.Draw())
}

func TestSceneDrawBeforeFirstUpdateFails(t *testing.T) {
	r := newFakeRenderer()
	s := newTestScene(t, r, 1)

	// No frame resource has been acquired yet, so there is nothing to draw
	// from; this must surface as an error, not a panic.
	assert.Error(t, s.Draw())
	assert.Empty(t, r.begunFrames)

	require.NoError(t, s.Update(0, 0))
	assert.NoError(t, s.Draw())
}

func TestScenePassConstantsCarryClockAndViewport(t *testing.T) {
	r := newFakeRenderer()
	s := newTestScene(t, r, 1)
	s.Resize(800, 600)

	require.NoError(t, s.Update(1.5, 0.016))

	var pass *renderer.ArenaWrite
	for i, w := range r.uploads[0] {
		if w.Kind == renderer.ArenaKindPass {
			pass = &r.uploads[0][i]
		}
	}
	require.NotNil(t, pass)

	pc := &camera.GPUPassConstants{}
	require.GreaterOrEqual(t, len(pass.Data), pc.Size())
	// TotalTime at offset 424, DeltaTime at 428, RenderTargetSize at 400.
	assert.Equal(t, float32(1.5), float32FromBytes(pass.Data[424:428]))
	assert.InDelta(t, 0.016, float64(float32FromBytes(pass.Data[428:432])), 1e-6)
	assert.Equal(t, float32(800), float32FromBytes(pass.Data[400:404]))
	assert.Equal(t, float32(600), float32FromBytes(pass.Data[404:408]))
}

func float32FromBytes(b []byte) float32 {
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return math.Float32frombits(bits)
}
