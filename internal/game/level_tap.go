package game

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// levelTap passes audio through unchanged while keeping the most recent
// mono samples for the music button's level meter.
type levelTap struct {
	src  beep.Streamer
	mu   sync.RWMutex
	mono []float64
	head int
}

func newLevelTap(src beep.Streamer, ringSize int) *levelTap {
	return &levelTap{src: src, mono: make([]float64, ringSize)}
}

// Stream runs on the speaker goroutine.
func (t *levelTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.src.Stream(samples)
	if n == 0 || len(t.mono) == 0 {
		return n, ok
	}
	t.mu.Lock()
	for _, s := range samples[:n] {
		t.mono[t.head] = (s[0] + s[1]) / 2
		t.head = (t.head + 1) % len(t.mono)
	}
	t.mu.Unlock()
	return n, ok
}

func (t *levelTap) Err() error { return t.src.Err() }

// level returns the compressed RMS of the last n mono samples in [0, 1].
func (t *levelTap) level(n int) float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n = min(n, len(t.mono))
	if n == 0 {
		return 0
	}
	var sumSquares float64
	for k := 1; k <= n; k++ {
		v := t.mono[(t.head-k+len(t.mono))%len(t.mono)]
		sumSquares += v * v
	}
	rms := math.Sqrt(sumSquares / float64(n))
	return clamp01(math.Pow(rms, 0.3))
}
