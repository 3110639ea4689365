package gallery

import (
	"math/rand/v2"
	"time"
)

// Mode says which process owns an element's transform this frame.
type Mode int

const (
	ModeDrift Mode = iota
	ModeHover
	ModePushed
)

// Transform is where and how large an element is drawn. X and Y are the
// element center in screen pixels.
type Transform struct {
	X, Y  float64
	Scale float64
	Mode  Mode
}

type Options struct {
	Rand                 *rand.Rand
	PerSecond            bool
	BreatheWhileEnlarged bool
}

// Gallery owns the per-item table of the current generation and routes
// input to the hover engine and the enlargement controller.
type Gallery struct {
	images   []string
	mount    Mount
	opts     Options
	viewport Viewport
	rings    []Ring

	table   *Table
	sim     *Simulator
	hover   *HoverEngine
	enlarge Enlargement
}

func New(images []string, mount Mount, opts Options) *Gallery {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	g := &Gallery{
		images: append([]string(nil), images...),
		mount:  mount,
		opts:   opts,
		table:  &Table{},
	}
	g.wire()
	return g
}

func (g *Gallery) wire() {
	g.sim = NewSimulator(g.table, &g.enlarge, g.opts.Rand)
	g.sim.PerSecond = g.opts.PerSecond
	g.sim.BreatheWhileEnlarged = g.opts.BreatheWhileEnlarged
	g.hover = NewHoverEngine(g.table, &g.enlarge, g)
}

// Rebuild discards the current table and lays everything out again for vp.
// The simulator and its resample clock are replaced with it.
func (g *Gallery) Rebuild(vp Viewport) {
	gen := g.table.Generation + 1
	g.viewport = vp
	if len(g.images) == 0 {
		g.rings = nil
		g.table = &Table{Generation: gen}
	} else {
		g.rings = Distribute(len(g.images))
		g.table = Build(g.rings, g.images, vp, gen, g.opts.Rand)
	}
	g.wire()

	if g.mount != nil {
		g.mount.Reset(gen)
		for _, el := range g.table.Elements {
			g.mount.Append(el)
		}
	}
}

// SetImages replaces the image list and rebuilds for the current viewport.
func (g *Gallery) SetImages(images []string) {
	g.images = append(g.images[:0:0], images...)
	g.Rebuild(g.viewport)
}

func (g *Gallery) Tick(now time.Time) {
	dt := g.sim.Tick(now)
	g.hover.Advance(float32(dt.Seconds()))
}

// advance steps the gallery by a fixed dt instead of wall-clock time.
func (g *Gallery) advance(dt time.Duration) {
	g.sim.Advance(dt)
	g.hover.Advance(float32(dt.Seconds()))
}

func (g *Gallery) Generation() uint64    { return g.table.Generation }
func (g *Gallery) Len() int              { return g.table.Len() }
func (g *Gallery) Rings() []Ring         { return g.rings }
func (g *Gallery) Viewport() Viewport    { return g.viewport }
func (g *Gallery) Images() []string      { return g.images }
func (g *Gallery) Enlarged() (int, bool) { return g.enlarge.Current() }

// Item returns a copy of the state for i.
func (g *Gallery) Item(i int) (ItemState, bool) {
	if !g.table.valid(i) {
		return ItemState{}, false
	}
	return g.table.Items[i], true
}

func (g *Gallery) Element(i int) (Element, bool) {
	if !g.table.valid(i) {
		return Element{}, false
	}
	return g.table.Elements[i], true
}

func (g *Gallery) PointerEnter(i int) { g.hover.Enter(i) }
func (g *Gallery) PointerLeave(i int) { g.hover.Leave(i) }

// Click enlarges i unless something is already enlarged.
func (g *Gallery) Click(i int) bool {
	if !g.table.valid(i) {
		return false
	}
	return g.enlarge.Open(i)
}

// Close leaves the overlay and resyncs every element to its own offset.
func (g *Gallery) Close(reason CloseReason) bool {
	if _, ok := g.enlarge.Close(reason); !ok {
		return false
	}
	g.hover.Reset()
	return true
}

// Transform resolves the transform for i. Hovered elements sit at their
// base, pushed ones add the push to their own offset without breathing.
func (g *Gallery) Transform(i int) (Transform, bool) {
	if !g.table.valid(i) {
		return Transform{}, false
	}
	it := &g.table.Items[i]
	el := &g.table.Elements[i]
	c := g.viewport.Container()
	cx := c.X + el.BaseX/100*c.W
	cy := c.Y + el.BaseY/100*c.H

	switch {
	case it.Hovered:
		return Transform{X: cx, Y: cy, Scale: el.hoverScale, Mode: ModeHover}, true
	case el.Pushed:
		return Transform{
			X:     cx + it.CurrentX + el.PushX,
			Y:     cy + it.CurrentY + el.PushY,
			Scale: 1,
			Mode:  ModePushed,
		}, true
	}
	return Transform{X: cx + it.CurrentX, Y: cy + it.CurrentY, Scale: it.Scale(), Mode: ModeDrift}, true
}

// Bounds is the on-screen square of element i.
func (g *Gallery) Bounds(i int) Rect {
	tr, ok := g.Transform(i)
	if !ok {
		return Rect{}
	}
	side := g.table.Elements[i].Size * tr.Scale
	return Rect{X: tr.X - side/2, Y: tr.Y - side/2, W: side, H: side}
}

// DrawOrder lists element indices back to front; hovered elements last.
func (g *Gallery) DrawOrder() []int {
	order := make([]int, 0, g.table.Len())
	var top []int
	for i := range g.table.Items {
		if g.table.Items[i].Hovered {
			top = append(top, i)
			continue
		}
		order = append(order, i)
	}
	return append(order, top...)
}

// ItemAt returns the topmost element whose circle contains (x, y).
func (g *Gallery) ItemAt(x, y float64) (int, bool) {
	order := g.DrawOrder()
	for k := len(order) - 1; k >= 0; k-- {
		i := order[k]
		r := g.Bounds(i)
		dx := x - (r.X + r.W/2)
		dy := y - (r.Y + r.H/2)
		radius := r.W / 2
		if dx*dx+dy*dy <= radius*radius {
			return i, true
		}
	}
	return 0, false
}
