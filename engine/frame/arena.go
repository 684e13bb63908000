package frame

import "fmt"

// UniformAlignment is the byte boundary every arena record stride is rounded
// up to. WebGPU requires uniform buffer binding offsets to be 256-byte
// aligned, so records are padded rather than packed.
const UniformAlignment = 256

// AlignRecordSize rounds size up to the next multiple of UniformAlignment.
//
// Parameters:
//   - size: unpadded record size in bytes
//
// Returns:
//   - int: the aligned stride in bytes
func AlignRecordSize(size int) int {
	return (size + UniformAlignment - 1) &^ (UniformAlignment - 1)
}

// UploadArena is a CPU-side staging region holding a fixed number of
// equally-sized records destined for a single GPU uniform buffer. Records are
// disjoint: record i occupies bytes [i*Stride, i*Stride+RecordSize) and
// writes to one record never touch another. The arena itself performs no GPU
// work; the renderer flushes Bytes() into the matching device buffer.
type UploadArena struct {
	recordSize int
	stride     int
	capacity   int
	data       []byte
}

// NewUploadArena creates an arena with room for capacity records of
// recordSize bytes each. Panics if capacity or recordSize is not positive,
// since an arena with no records indicates a wiring bug rather than a
// recoverable runtime condition.
//
// Parameters:
//   - capacity: number of records the arena holds
//   - recordSize: unpadded size of each record in bytes
//
// Returns:
//   - *UploadArena: the initialized arena
func NewUploadArena(capacity, recordSize int) *UploadArena {
	if capacity <= 0 {
		panic(fmt.Sprintf("upload arena capacity must be positive, got %d", capacity))
	}
	if recordSize <= 0 {
		panic(fmt.Sprintf("upload arena record size must be positive, got %d", recordSize))
	}
	stride := AlignRecordSize(recordSize)
	return &UploadArena{
		recordSize: recordSize,
		stride:     stride,
		capacity:   capacity,
		data:       make([]byte, stride*capacity),
	}
}

// Write copies record into the slot at index. Panics if index is out of range
// or the record is larger than the arena's record size; both are programming
// errors that would otherwise corrupt a neighboring record silently.
//
// Parameters:
//   - index: record slot to write, in [0, Capacity)
//   - record: bytes to copy (at most RecordSize bytes)
func (a *UploadArena) Write(index int, record []byte) {
	if index < 0 || index >= a.capacity {
		panic(fmt.Sprintf("upload arena write index %d out of range [0, %d)", index, a.capacity))
	}
	if len(record) > a.recordSize {
		panic(fmt.Sprintf("upload arena record of %d bytes exceeds record size %d", len(record), a.recordSize))
	}
	copy(a.data[index*a.stride:index*a.stride+a.recordSize], record)
}

// Record returns the byte region of the record at index, including alignment
// padding. The returned slice aliases the arena's backing store.
//
// Parameters:
//   - index: record slot to read, in [0, Capacity)
//
// Returns:
//   - []byte: the record's byte region of Stride length
func (a *UploadArena) Record(index int) []byte {
	if index < 0 || index >= a.capacity {
		panic(fmt.Sprintf("upload arena record index %d out of range [0, %d)", index, a.capacity))
	}
	return a.data[index*a.stride : (index+1)*a.stride]
}

// Bytes returns the arena's full backing store for a bulk GPU upload.
//
// Returns:
//   - []byte: the entire arena contents (Capacity * Stride bytes)
func (a *UploadArena) Bytes() []byte {
	return a.data
}

// Capacity returns the number of records the arena holds.
func (a *UploadArena) Capacity() int {
	return a.capacity
}

// RecordSize returns the unpadded size of each record in bytes.
func (a *UploadArena) RecordSize() int {
	return a.recordSize
}

// Stride returns the aligned distance in bytes between consecutive records.
func (a *UploadArena) Stride() int {
	return a.stride
}
