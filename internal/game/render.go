package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/photo-rings/internal/config"
	"github.com/iburimskiy/photo-rings/internal/gallery"
)

const hint = "Click a photo to enlarge - Esc: close - Q: quit"

func (g *Game) Draw(screen *ebiten.Image) {
	p := g.theme.palette()
	screen.Fill(p.Background)

	g.letter.draw(screen, g.gallery.Viewport(), p)

	_, enlarged := g.gallery.Enlarged()
	for _, i := range g.gallery.DrawOrder() {
		g.drawItem(screen, i, enlarged, p)
	}

	for _, b := range g.buttons {
		b.draw(screen, p)
	}

	if enlarged {
		g.overlay.draw(screen, g.gallery.Viewport())
		return
	}
	ebitenutil.DebugPrintAt(screen, hint, 12, g.gallery.Viewport().Height-24)
}

func (g *Game) drawItem(screen *ebiten.Image, i int, enlarged bool, p palette) {
	tr, ok := g.gallery.Transform(i)
	if !ok {
		return
	}
	el, _ := g.gallery.Element(i)
	size := el.Size * tr.Scale

	alpha := 1.0
	if enlarged {
		alpha = config.OverlayDimming
	}

	s, ok := g.assets.at(i)
	switch {
	case ok && s.thumb != nil:
		k := size / float64(s.thumb.Bounds().Dx())
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(k, k)
		op.GeoM.Translate(tr.X-size/2, tr.Y-size/2)
		op.ColorScale.ScaleAlpha(float32(alpha))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(s.thumb, op)
	case ok && s.failed:
		vector.DrawFilledCircle(screen, float32(tr.X), float32(tr.Y), float32(size/2), withAlpha(fallbackFill, alpha), true)
	default:
		// still loading
		vector.DrawFilledCircle(screen, float32(tr.X), float32(tr.Y), float32(size/2), withAlpha(fallbackFill, 0.4*alpha), true)
	}

	if tr.Mode == gallery.ModeHover {
		vector.StrokeCircle(screen, float32(tr.X), float32(tr.Y), float32(size/2), 2, p.Border, true)
	}
}
