package gallery

import (
	"math"
	"math/rand/v2"

	"github.com/tanema/gween"

	"github.com/iburimskiy/photo-rings/internal/config"
)

// ItemState is the per-image animation record. Offsets are in pixels,
// base coordinates in percent of the container.
type ItemState struct {
	BaseX, BaseY float64
	Angle        float64
	Radius       float64
	RingIndex    int

	CurrentX, CurrentY float64
	TargetX, TargetY   float64

	Hovered    bool
	ScalePhase float64
	ScaleSpeed float64
}

// Scale is the breathing scale for the current phase.
func (s *ItemState) Scale() float64 {
	return BreathScale(s.ScalePhase)
}

// Element is the visual counterpart of an ItemState.
type Element struct {
	Index      int
	Generation uint64
	Image      string
	Size       float64 // pixels
	BaseX      float64 // percent
	BaseY      float64

	Pushed       bool
	PushX, PushY float64

	hoverScale float64
	hoverTween *gween.Tween
}

// Mount receives the elements of each build.
type Mount interface {
	Reset(generation uint64)
	Append(el Element)
}

// Table is the owned per-item state of one build generation.
// Items and Elements are indexed by the same stable handle.
type Table struct {
	Generation uint64
	Items      []ItemState
	Elements   []Element
}

func (t *Table) Len() int { return len(t.Items) }

func (t *Table) valid(i int) bool {
	return i >= 0 && i < len(t.Items) && i < len(t.Elements)
}

// BaseSize is the circle size of the innermost ring for a viewport.
func BaseSize(vp Viewport, totalRings int) float64 {
	containerSize := vp.Short() * config.ContainerFraction
	size := containerSize / (float64(totalRings) * config.SizeDivisor)
	return math.Max(config.MinBaseSize, math.Min(config.MaxBaseSize, size))
}

// RingSize shrinks linearly from base at the center to OuterSizeFactor of
// base at the outermost ring.
func RingSize(base float64, ringIndex, totalRings int) float64 {
	maxIdx := max(totalRings-1, 1)
	factor := 1 - (1-config.OuterSizeFactor)*float64(ringIndex)/float64(maxIdx)
	return math.Max(config.MinCircleSize, base*factor)
}

// Build lays images out on rings and fills a new table. Each image gets a
// random breathing phase and speed from rng.
func Build(rings []Ring, images []string, vp Viewport, generation uint64, rng *rand.Rand) *Table {
	t := &Table{
		Generation: generation,
		Items:      make([]ItemState, 0, len(images)),
		Elements:   make([]Element, 0, len(images)),
	}
	base := BaseSize(vp, len(rings))

	index := 0
	for _, ring := range rings {
		size := RingSize(base, ring.Index, len(rings))
		for k := 0; k < ring.Count && index < len(images); k++ {
			var angle float64
			x, y := 50.0, 50.0
			if ring.Radius != 0 {
				shift := float64(ring.Index) * math.Pi / config.RingAngleShift
				angle = shift + float64(k)/float64(ring.Count)*2*math.Pi
				x, y = polar(ring.Radius, angle)
			}

			t.Items = append(t.Items, ItemState{
				BaseX:      x,
				BaseY:      y,
				Angle:      angle,
				Radius:     ring.Radius,
				RingIndex:  ring.Index,
				ScalePhase: rng.Float64() * 2 * math.Pi,
				ScaleSpeed: config.MinScaleSpeed + rng.Float64()*config.ScaleSpeedSpan,
			})
			t.Elements = append(t.Elements, Element{
				Index:      index,
				Generation: generation,
				Image:      images[index],
				Size:       size,
				BaseX:      x,
				BaseY:      y,
				hoverScale: 1,
			})
			index++
		}
	}
	return t
}
