package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickRespectsInterval(t *testing.T) {
	p := NewProfiler(WithUpdateInterval(time.Hour))
	assert.False(t, p.Tick())
	assert.False(t, p.Tick())
}

func TestTickLogsAfterInterval(t *testing.T) {
	p := NewProfiler(WithUpdateInterval(time.Nanosecond))
	p.AddUploads(12)
	time.Sleep(time.Millisecond)
	assert.True(t, p.Tick())
	// Upload counter resets after a report.
	assert.Equal(t, int64(0), p.uploads.Load())
}
