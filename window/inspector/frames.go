package inspector

import "time"

// FrameHistory is a ring of frame times in milliseconds.
type FrameHistory struct {
	samples []float32
	next    int
	filled  int
}

// NewFrameHistory keeps the last n frame times. n is at least 1.
func NewFrameHistory(n int) *FrameHistory {
	return &FrameHistory{samples: make([]float32, max(n, 1))}
}

// Record stores one frame time.
func (h *FrameHistory) Record(dt time.Duration) {
	h.samples[h.next] = float32(dt.Seconds() * 1000)
	h.next = (h.next + 1) % len(h.samples)
	h.filled = min(h.filled+1, len(h.samples))
}

// Average returns the mean of the recorded frame times.
func (h *FrameHistory) Average() float32 {
	if h.filled == 0 {
		return 0
	}
	var sum float32
	for _, s := range h.samples[:h.filled] {
		sum += s
	}
	return sum / float32(h.filled)
}

// Samples returns the ring buffer in storage order, for plotting.
func (h *FrameHistory) Samples() []float32 {
	return h.samples
}
