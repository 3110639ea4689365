package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/iburimskiy/photo-rings/internal/config"
	"github.com/iburimskiy/photo-rings/internal/gallery"
)

// overlay is the full-screen presentation of the enlarged photo. It holds
// its own reference to the texture so a rebuild underneath does not empty it.
type overlay struct {
	tex   *ebiten.Image
	fade  *gween.Tween
	alpha float64
}

func (o *overlay) open(s *slot) {
	o.tex = nil
	if s != nil && !s.failed {
		o.tex = s.full
	}
	o.alpha = 0
	o.fade = gween.New(0, config.OverlayAlpha, config.OverlayTween, ease.OutCubic)
}

func (o *overlay) close() {
	o.tex = nil
	o.fade = nil
	o.alpha = 0
}

func (o *overlay) update(dt float32) {
	if o.fade == nil {
		return
	}
	v, done := o.fade.Update(dt)
	o.alpha = float64(v)
	if done {
		o.fade = nil
	}
}

// rect is where the enlarged view sits: the photo fitted into EnlargedFill
// of the viewport, or a square placeholder when there is no photo.
func (o *overlay) rect(vp gallery.Viewport) gallery.Rect {
	w, h := float64(vp.Width), float64(vp.Height)
	if o.tex == nil {
		side := vp.Short() * 0.6
		return gallery.Rect{X: (w - side) / 2, Y: (h - side) / 2, W: side, H: side}
	}
	b := o.tex.Bounds()
	k := min(w*config.EnlargedFill/float64(b.Dx()), h*config.EnlargedFill/float64(b.Dy()))
	rw, rh := float64(b.Dx())*k, float64(b.Dy())*k
	return gallery.Rect{X: (w - rw) / 2, Y: (h - rh) / 2, W: rw, H: rh}
}

func (o *overlay) draw(screen *ebiten.Image, vp gallery.Viewport) {
	shadow := color.RGBA{A: uint8(255 * clamp01(o.alpha))}
	vector.DrawFilledRect(screen, 0, 0, float32(vp.Width), float32(vp.Height), shadow, false)

	visible := clamp01(o.alpha / config.OverlayAlpha)
	r := o.rect(vp)
	if o.tex == nil {
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), withAlpha(fallbackFill, visible), false)
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/float64(o.tex.Bounds().Dx()), r.H/float64(o.tex.Bounds().Dy()))
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleAlpha(float32(visible))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(o.tex, op)
}
