package gallery

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/photo-rings/internal/config"
)

// Gate reports whether global effects are suspended.
type Gate interface {
	Active() bool
}

// Ease moves current a fixed fraction of the way to target.
func Ease(current, target, factor float64) float64 {
	return current + (target-current)*factor
}

// BreathScale maps a phase to a scale in [1-ScaleAmplitude, 1+ScaleAmplitude].
func BreathScale(phase float64) float64 {
	return 1 + math.Sin(phase)*config.ScaleAmplitude
}

// MaxOffset is how far an item on ringIndex may drift from its base.
// Rings at or beyond MaxOffsetBase stay put.
func MaxOffset(ringIndex int) float64 {
	return math.Max(0, config.MaxOffsetBase-float64(ringIndex))
}

// Simulator drives the drift and breathing of one table. It owns the
// resample clock and the last tick time; Advance is its only mutator.
type Simulator struct {
	table *Table
	gate  Gate
	rng   *rand.Rand

	// PerSecond converts the per-frame ease factor into a time-scaled
	// exponential decay at ReferenceFPS.
	PerSecond bool
	// BreatheWhileEnlarged keeps scale phases moving under the overlay.
	BreatheWhileEnlarged bool

	sinceResample time.Duration
	last          time.Time
}

func NewSimulator(table *Table, gate Gate, rng *rand.Rand) *Simulator {
	return &Simulator{table: table, gate: gate, rng: rng}
}

// Tick advances by the wall time since the previous Tick and returns it.
// The first call only records the timestamp.
func (s *Simulator) Tick(now time.Time) time.Duration {
	if s.last.IsZero() {
		s.last = now
		return 0
	}
	dt := max(now.Sub(s.last), 0)
	s.last = now
	s.Advance(dt)
	return dt
}

// Advance runs the resampler for every elapsed period and one
// interpolation step.
func (s *Simulator) Advance(dt time.Duration) {
	s.sinceResample += dt
	for s.sinceResample >= config.ResamplePeriod {
		s.sinceResample -= config.ResamplePeriod
		s.Resample()
	}
	s.step(dt)
}

// Resample draws fresh targets for every item that is free to move.
func (s *Simulator) Resample() {
	if s.gate.Active() {
		return
	}
	for i := range s.table.Items {
		it := &s.table.Items[i]
		if it.Hovered {
			continue
		}
		m := MaxOffset(it.RingIndex)
		it.TargetX = (s.rng.Float64()*2 - 1) * m
		it.TargetY = (s.rng.Float64()*2 - 1) * m
	}
}

func (s *Simulator) factor(dt time.Duration) float64 {
	if !s.PerSecond {
		return config.EaseFactor
	}
	frames := dt.Seconds() * config.ReferenceFPS
	return 1 - math.Pow(1-config.EaseFactor, frames)
}

func (s *Simulator) step(dt time.Duration) {
	enlarged := s.gate.Active()
	if enlarged && !s.BreatheWhileEnlarged {
		return
	}
	k := s.factor(dt)
	secs := dt.Seconds()
	for i := range s.table.Items {
		it := &s.table.Items[i]
		if it.Hovered {
			continue
		}
		if !enlarged {
			it.CurrentX = Ease(it.CurrentX, it.TargetX, k)
			it.CurrentY = Ease(it.CurrentY, it.TargetY, k)
		}
		it.ScalePhase += secs * it.ScaleSpeed
	}
}
