package frame

// Resource is one slot in the frame ring: the complete set of per-frame CPU
// staging state the producer fills while the GPU may still be consuming the
// other slots. Each slot owns its own object and pass arenas so frames never
// share upload memory.
type Resource struct {
	index   int
	marker  uint64
	objects *UploadArena
	pass    *UploadArena
}

func newResource(index, itemCount, objectRecordSize, passRecordSize int) *Resource {
	return &Resource{
		index:   index,
		objects: NewUploadArena(itemCount, objectRecordSize),
		pass:    NewUploadArena(1, passRecordSize),
	}
}

// Index returns the slot's position in the ring, in [0, frame count).
func (r *Resource) Index() int {
	return r.index
}

// Marker returns the completion marker stamped by the most recent Retire of
// this slot, or zero if the slot has never been submitted.
func (r *Resource) Marker() uint64 {
	return r.marker
}

// Objects returns the slot's per-item constant arena.
func (r *Resource) Objects() *UploadArena {
	return r.objects
}

// Pass returns the slot's single-record pass constant arena.
func (r *Resource) Pass() *UploadArena {
	return r.pass
}
