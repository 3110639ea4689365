package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/photo-rings/internal/config"
)

// button is a clickable rectangle in the top-left toolbar.
type button struct {
	x, y, w, h int
	label      func() string
	onClick    func()

	hovered bool
	pressed bool
	glow    float64 // 0..1 accent on the border
	hue     float64
}

func newButton(slot int, label func() string, onClick func()) *button {
	return &button{
		x:       config.ButtonX + slot*(config.ButtonWidth+config.ButtonGap),
		y:       config.ButtonY,
		w:       config.ButtonWidth,
		h:       config.ButtonHeight,
		label:   label,
		onClick: onClick,
	}
}

func (b *button) contains(x, y int) bool {
	return x >= b.x && x <= b.x+b.w && y >= b.y && y <= b.y+b.h
}

// update tracks hover and press; a click fires on release over the button.
func (b *button) update(mouseX, mouseY int, justPressed, justReleased bool) {
	b.hovered = b.contains(mouseX, mouseY)
	if b.hovered && justPressed {
		b.pressed = true
	}
	if justReleased {
		if b.pressed && b.hovered && b.onClick != nil {
			b.onClick()
		}
		b.pressed = false
	}
}

func (b *button) draw(screen *ebiten.Image, p palette) {
	bg := p.Button
	switch {
	case b.pressed:
		bg = shade(bg, 0.7)
	case b.hovered:
		bg = shade(bg, 0.85)
	}
	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bg, false)

	border := p.Border
	if b.glow > 0.01 {
		r, g, bl := hsvToRgb(b.hue, 0.8, 0.9)
		border = color.RGBA{R: r, G: g, B: bl, A: uint8(150 + 105*clamp01(b.glow))}
	}
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), float32(2+3*clamp01(b.glow)), border, false)

	label := b.label()
	textWidth := len(label) * letterCharWidth
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(b.x+(b.w-textWidth)/2), float64(b.y+(b.h-13)/2))
	op.ColorScale.ScaleWithColor(p.ButtonText)
	text.Draw(screen, label, letterFace, op)
}

func shade(c color.RGBA, k float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}
