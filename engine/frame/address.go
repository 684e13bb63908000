package frame

// Descriptor table layout. Per-item object constant views for all frames come
// first, grouped by frame, followed by one pass constant view per frame:
//
//	[frame0 item0..itemN-1][frame1 item0..itemN-1]...[pass frame0..pass frameF-1]
//
// The functions below are the single source of truth for this layout. Both
// the publish path (building the views) and the bind path (selecting a view
// at draw time) recompute offsets from the same inputs, so the two can never
// disagree.

// ObjectOffset returns the descriptor table index of the object constant view
// for the given item slot in the given frame.
//
// Parameters:
//   - frameIndex: ring index of the frame, in [0, frame count)
//   - itemCount: total number of item slots per frame
//   - slot: the item's slot, in [0, itemCount)
//
// Returns:
//   - int: the flat descriptor table index
func ObjectOffset(frameIndex, itemCount, slot int) int {
	return frameIndex*itemCount + slot
}

// PassOffset returns the descriptor table index of the pass constant view for
// the given frame. Pass views live in a contiguous block after all object
// views.
//
// Parameters:
//   - frameCount: number of frames in the ring
//   - itemCount: total number of item slots per frame
//   - frameIndex: ring index of the frame, in [0, frameCount)
//
// Returns:
//   - int: the flat descriptor table index
func PassOffset(frameCount, itemCount, frameIndex int) int {
	return frameCount*itemCount + frameIndex
}

// TableSize returns the total number of descriptor table entries needed for
// frameCount frames of itemCount items plus one pass view per frame.
//
// Parameters:
//   - frameCount: number of frames in the ring
//   - itemCount: total number of item slots per frame
//
// Returns:
//   - int: the descriptor table entry count
func TableSize(frameCount, itemCount int) int {
	return frameCount*itemCount + frameCount
}
