package engine

import (
	"sync"
	"time"
)

const (
	frameTraceSamplesDefault   = 240
	defaultFrameTraceThreshold = 16667 * time.Microsecond
)

// FramePhaseTimings captures time spent in each frame phase (ms).
type FramePhaseTimings struct {
	LayoutMs float64 `json:"layoutMs"`
	PaintMs  float64 `json:"paintMs"`
}

// FrameSample describes one painted frame.
type FrameSample struct {
	Frame     int               `json:"frame"`
	Timestamp int64             `json:"ts"`
	FrameMs   float64           `json:"frameMs"`
	Phases    FramePhaseTimings `json:"phases"`
	// Redraws is the number of redraw requests this frame satisfied.
	Redraws int `json:"redraws"`
}

// FrameTimeline is a chronological view of recent frames.
type FrameTimeline struct {
	Samples     []FrameSample `json:"samples"`
	SlowFrames  int           `json:"slowFrames"`
	ThresholdMs float64       `json:"thresholdMs"`
}

// FrameTraceBuffer keeps the most recent frame samples. It is safe to read
// from another goroutine while the host loop records into it.
type FrameTraceBuffer struct {
	mu        sync.RWMutex
	ring      []FrameSample
	next      int
	full      bool
	slow      int
	threshold time.Duration
}

// NewFrameTraceBuffer creates a buffer holding capacity samples. Frames
// longer than threshold count as slow. Non-positive arguments use defaults.
func NewFrameTraceBuffer(capacity int, threshold time.Duration) *FrameTraceBuffer {
	if capacity <= 0 {
		capacity = frameTraceSamplesDefault
	}
	if threshold <= 0 {
		threshold = defaultFrameTraceThreshold
	}
	return &FrameTraceBuffer{ring: make([]FrameSample, capacity), threshold: threshold}
}

// Record stores sample, evicting the oldest one when full.
func (b *FrameTraceBuffer) Record(sample FrameSample, took time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ring[b.next] = sample
	b.next++
	if b.next == len(b.ring) {
		b.next = 0
		b.full = true
	}
	if took > b.threshold {
		b.slow++
	}
}

// Len returns the number of stored samples.
func (b *FrameTraceBuffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.full {
		return len(b.ring)
	}
	return b.next
}

// Timeline returns the stored samples oldest first.
func (b *FrameTraceBuffer) Timeline() FrameTimeline {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var samples []FrameSample
	if b.full {
		samples = make([]FrameSample, 0, len(b.ring))
		samples = append(samples, b.ring[b.next:]...)
		samples = append(samples, b.ring[:b.next]...)
	} else {
		samples = append([]FrameSample(nil), b.ring[:b.next]...)
	}
	return FrameTimeline{
		Samples:     samples,
		SlowFrames:  b.slow,
		ThresholdMs: millis(b.threshold),
	}
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
