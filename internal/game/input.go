package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/photo-rings/internal/gallery"
)

func (g *Game) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.closeOverlay(gallery.CloseEscape)
	}

	_, g.wheel = ebiten.Wheel()

	taps := inpututil.AppendJustPressedTouchIDs(nil)
	for _, id := range taps {
		x, y := ebiten.TouchPosition(id)
		g.tap(x, y)
	}
	if len(taps) > 0 {
		// Skip the mouse events some platforms synthesize from the same tap.
		return nil
	}

	mouseX, mouseY := ebiten.CursorPosition()
	pressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	released := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	if _, ok := g.gallery.Enlarged(); ok {
		if pressed {
			g.closeOverlay(gallery.CloseOverlayClick)
		}
		return nil
	}

	overButton := false
	for _, b := range g.buttons {
		b.update(mouseX, mouseY, pressed, released)
		overButton = overButton || b.hovered
	}

	g.trackHover(mouseX, mouseY, overButton)
	if pressed && !overButton && g.hover >= 0 {
		g.enlarge(g.hover)
	}
	return nil
}

// trackHover turns the cursor position into enter/leave calls.
func (g *Game) trackHover(mouseX, mouseY int, blocked bool) {
	if gen := g.gallery.Generation(); gen != g.hoverGen {
		g.hover = -1
		g.hoverGen = gen
	}

	cur := -1
	vp := g.gallery.Viewport()
	inside := mouseX >= 0 && mouseY >= 0 && mouseX < vp.Width && mouseY < vp.Height
	if !blocked && inside {
		if i, ok := g.gallery.ItemAt(float64(mouseX), float64(mouseY)); ok {
			cur = i
		}
	}
	if cur == g.hover {
		return
	}
	if g.hover >= 0 {
		g.gallery.PointerLeave(g.hover)
	}
	if cur >= 0 {
		g.gallery.PointerEnter(cur)
	}
	g.hover = cur
}

// tap handles a touch: it enlarges the tapped photo, or closes the overlay
// when the tap lands outside the enlarged view.
func (g *Game) tap(x, y int) {
	fx, fy := float64(x), float64(y)
	if _, ok := g.gallery.Enlarged(); ok {
		if !g.overlay.rect(g.gallery.Viewport()).Contains(fx, fy) {
			g.closeOverlay(gallery.CloseTapOutside)
		}
		return
	}
	for _, b := range g.buttons {
		if b.contains(x, y) {
			b.onClick()
			return
		}
	}
	if i, ok := g.gallery.ItemAt(fx, fy); ok {
		g.enlarge(i)
	}
}

func (g *Game) enlarge(i int) {
	if !g.gallery.Click(i) {
		return
	}
	s, _ := g.assets.at(i)
	g.overlay.open(s)
	g.logger.Debug("enlarged", "index", i)
}

func (g *Game) closeOverlay(reason gallery.CloseReason) {
	if !g.gallery.Close(reason) {
		return
	}
	g.overlay.close()
	g.hover = -1
	g.logger.Debug("overlay closed", "reason", reason)
}
