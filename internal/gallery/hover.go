package gallery

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/iburimskiy/photo-rings/internal/config"
)

// Geometry reports the live on-screen bounds of an element.
type Geometry interface {
	Bounds(i int) Rect
}

// HoverEngine pushes neighbours away from the hovered element.
type HoverEngine struct {
	table *Table
	gate  Gate
	geo   Geometry
}

func NewHoverEngine(table *Table, gate Gate, geo Geometry) *HoverEngine {
	return &HoverEngine{table: table, gate: gate, geo: geo}
}

// Enter marks i hovered and displaces every element whose top-left corner
// lies within PushThreshold of i's.
func (h *HoverEngine) Enter(i int) {
	if h.gate.Active() || !h.table.valid(i) {
		return
	}
	h.table.Items[i].Hovered = true
	el := &h.table.Elements[i]
	el.Pushed = false
	el.hoverScale = 1
	el.hoverTween = gween.New(1, config.HoverScale, config.HoverTween, ease.OutQuad)

	hovered := h.geo.Bounds(i)
	for j := range h.table.Elements {
		if j == i {
			continue
		}
		other := h.geo.Bounds(j)
		dx := other.X - hovered.X
		dy := other.Y - hovered.Y
		if math.Hypot(dx, dy) >= config.PushThreshold {
			continue
		}
		angle := math.Atan2(dy, dx)
		o := &h.table.Elements[j]
		o.Pushed = true
		o.PushX = math.Cos(angle) * config.PushDistance
		o.PushY = math.Sin(angle) * config.PushDistance
	}
}

// Leave clears i's hover and returns every pushed element to its own offset.
func (h *HoverEngine) Leave(i int) {
	if h.gate.Active() {
		return
	}
	if h.table.valid(i) {
		h.table.Items[i].Hovered = false
		h.table.Elements[i].clearHover()
	}
	for j := range h.table.Elements {
		h.table.Elements[j].clearPush()
	}
}

// Advance steps the hover scale tweens.
func (h *HoverEngine) Advance(dt float32) {
	if h.gate.Active() {
		return
	}
	for i := range h.table.Elements {
		el := &h.table.Elements[i]
		if el.hoverTween == nil {
			continue
		}
		v, done := el.hoverTween.Update(dt)
		el.hoverScale = float64(v)
		if done {
			el.hoverTween = nil
		}
	}
}

// Reset drops all hover and push state without looking at the gate.
func (h *HoverEngine) Reset() {
	for i := range h.table.Items {
		h.table.Items[i].Hovered = false
	}
	for i := range h.table.Elements {
		h.table.Elements[i].clearHover()
		h.table.Elements[i].clearPush()
	}
}

func (el *Element) clearHover() {
	el.hoverScale = 1
	el.hoverTween = nil
}

func (el *Element) clearPush() {
	el.Pushed = false
	el.PushX, el.PushY = 0, 0
}
