package game

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/photo-rings/internal/config"
	"github.com/iburimskiy/photo-rings/internal/gallery"
)

func newTestGame(t *testing.T, vp gallery.Viewport) *Game {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	cfg := config.Default()
	cfg.ImageDir = t.TempDir()
	cfg.Letter = filepath.Join(cfg.ImageDir, "no-letter.txt")

	g := New(ctx, cfg, filepath.Join(t.TempDir(), "prefs.toml"), quietLogger())
	g.pending = vp
	g.gallery.Rebuild(vp)
	return g
}

func center(t *testing.T, g *Game, i int) (int, int) {
	t.Helper()
	tr, ok := g.gallery.Transform(i)
	if !ok {
		t.Fatalf("no transform for %d", i)
	}
	return int(tr.X), int(tr.Y)
}

func TestTrackHoverEntersAndLeaves(t *testing.T) {
	g := newTestGame(t, gallery.Viewport{Width: 400, Height: 400})
	x, y := center(t, g, 0)

	g.trackHover(x, y, false)
	if g.hover != 0 {
		t.Fatalf("hover = %d, want 0", g.hover)
	}
	if it, _ := g.gallery.Item(0); !it.Hovered {
		t.Error("item 0 not hovered")
	}

	g.trackHover(-1, -1, false)
	if g.hover != -1 {
		t.Errorf("hover = %d after leaving", g.hover)
	}
	if it, _ := g.gallery.Item(0); it.Hovered {
		t.Error("item 0 still hovered")
	}
}

func TestTrackHoverBlockedByButton(t *testing.T) {
	g := newTestGame(t, gallery.Viewport{Width: 400, Height: 400})
	x, y := center(t, g, 0)

	g.trackHover(x, y, false)
	g.trackHover(x, y, true)
	if g.hover != -1 {
		t.Errorf("hover = %d while blocked", g.hover)
	}
}

func TestEnlargeAndEscape(t *testing.T) {
	g := newTestGame(t, gallery.Viewport{Width: 400, Height: 400})
	x, y := center(t, g, 0)
	g.trackHover(x, y, false)

	g.enlarge(0)
	if i, ok := g.gallery.Enlarged(); !ok || i != 0 {
		t.Fatalf("Enlarged = %d, %v", i, ok)
	}
	if g.overlay.fade == nil {
		t.Error("overlay fade not started")
	}

	g.closeOverlay(gallery.CloseEscape)
	if _, ok := g.gallery.Enlarged(); ok {
		t.Error("still enlarged after escape")
	}
	if g.hover != -1 || g.overlay.fade != nil {
		t.Errorf("hover = %d, fade = %v after close", g.hover, g.overlay.fade)
	}
	if it, _ := g.gallery.Item(0); it.Hovered {
		t.Error("hover state survived close")
	}
}

func TestTapOutsideCloses(t *testing.T) {
	g := newTestGame(t, gallery.Viewport{Width: 400, Height: 400})
	g.enlarge(3)

	g.tap(200, 200)
	if _, ok := g.gallery.Enlarged(); !ok {
		t.Fatal("tap inside the enlarged view closed it")
	}

	g.tap(5, 395)
	if _, ok := g.gallery.Enlarged(); ok {
		t.Error("tap outside did not close")
	}
}

func TestTapEnlargesPhoto(t *testing.T) {
	g := newTestGame(t, gallery.Viewport{Width: 400, Height: 400})
	x, y := center(t, g, 0)

	g.tap(x, y)
	if i, ok := g.gallery.Enlarged(); !ok || i != 0 {
		t.Errorf("Enlarged = %d, %v", i, ok)
	}
}

func TestTapButtonTogglesTheme(t *testing.T) {
	g := newTestGame(t, gallery.Viewport{Width: 400, Height: 400})
	b := g.buttons[1]

	g.tap(b.x+1, b.y+1)
	if !g.theme.light() {
		t.Fatal("theme button did not toggle")
	}
	if p := config.LoadPrefs(g.theme.prefsPath); p.Theme != config.ThemeLight {
		t.Errorf("saved theme = %q", p.Theme)
	}
	if _, ok := g.gallery.Enlarged(); ok {
		t.Error("button tap enlarged a photo")
	}
}

func TestLoadFolder(t *testing.T) {
	g := newTestGame(t, gallery.Viewport{Width: 400, Height: 400})
	x, y := center(t, g, 0)
	g.trackHover(x, y, false)
	gen := g.gallery.Generation()

	dir := t.TempDir()
	for _, name := range []string{"a.jpg", "b.png", "c.webp"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	g.loadFolder(dir)

	if g.gallery.Len() != 3 || g.gallery.Generation() != gen+1 {
		t.Fatalf("len = %d, generation = %d", g.gallery.Len(), g.gallery.Generation())
	}
	if g.assets.dir != dir || len(g.assets.slots) != 3 {
		t.Errorf("assets dir = %q, slots = %d", g.assets.dir, len(g.assets.slots))
	}

	// The old hover index belongs to the previous table.
	g.trackHover(-1, -1, false)
	if g.hover != -1 || g.hoverGen != g.gallery.Generation() {
		t.Errorf("hover = %d, hoverGen = %d", g.hover, g.hoverGen)
	}
}

func TestLoadFolderWithoutImagesKeepsGallery(t *testing.T) {
	g := newTestGame(t, gallery.Viewport{Width: 400, Height: 400})
	gen := g.gallery.Generation()

	g.loadFolder(t.TempDir())
	g.loadFolder(filepath.Join(t.TempDir(), "missing"))

	if g.gallery.Generation() != gen || g.gallery.Len() != len(config.DefaultImages) {
		t.Errorf("gallery changed: generation %d, len %d", g.gallery.Generation(), g.gallery.Len())
	}
}

func TestThemeDefaultsToDark(t *testing.T) {
	th := newTheme(filepath.Join(t.TempDir(), "prefs.toml"), quietLogger())
	if th.light() || th.palette() != darkPalette || th.label() != "Light" {
		t.Error("fresh theme is not dark")
	}
	th.toggle()
	th.toggle()
	if th.light() {
		t.Error("double toggle did not return to dark")
	}
}

func TestHoverIgnoresCursorOutsideWindow(t *testing.T) {
	vp := gallery.Viewport{Width: 400, Height: 300}
	g := newTestGame(t, vp)
	if g.gallery.Viewport() != vp {
		t.Fatalf("viewport = %+v, want %+v", g.gallery.Viewport(), vp)
	}
	x, y := center(t, g, 0)

	g.trackHover(x, y, false)
	g.trackHover(vp.Width+5, y, false)
	if g.hover != -1 {
		t.Errorf("hover = %d with the cursor outside the window", g.hover)
	}
}
