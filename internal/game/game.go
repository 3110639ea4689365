// Package game runs the ring gallery as an Ebitengine game: it mounts the
// gallery's elements as textures, feeds it pointer, touch and keyboard input
// and draws the result together with the typed letter, the toolbar and the
// enlargement overlay.
package game

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/photo-rings/internal/config"
	"github.com/iburimskiy/photo-rings/internal/gallery"
)

type Game struct {
	ctx    context.Context
	cfg    config.Config
	logger *log.Logger

	gallery *gallery.Gallery
	assets  *assets
	overlay overlay
	music   *music
	theme   *theme
	letter  *letterView
	buttons []*button

	pending gallery.Viewport

	// pointer tracking for enter/leave
	hover    int
	hoverGen uint64
	wheel    float64

	hue float64
	now func() time.Time
}

// New wires the gallery to its collaborators. The letter is fetched in the
// background; ctx bounds that fetch and all image loads.
func New(ctx context.Context, cfg config.Config, prefsPath string, logger *log.Logger) *Game {
	g := &Game{
		ctx:     ctx,
		cfg:     cfg,
		logger:  logger,
		assets:  newAssets(ctx, cfg.ImageDir, logger),
		music:   newMusic(cfg.Music, logger),
		theme:   newTheme(prefsPath, logger),
		letter:  newLetterView(),
		pending: gallery.Viewport{Width: cfg.Width, Height: cfg.Height},
		hover:   -1,
		now:     time.Now,
	}
	g.gallery = gallery.New(cfg.Images, g.assets, gallery.Options{
		PerSecond:            cfg.SmoothPerSecond,
		BreatheWhileEnlarged: cfg.BreatheWhileEnlarged,
	})
	g.buttons = []*button{
		newButton(0, g.music.label, g.toggleMusic),
		newButton(1, g.theme.label, g.theme.toggle),
		newButton(2, func() string { return "Folder" }, g.pickFolder),
	}

	go g.loadLetter(ctx)
	return g
}

func (g *Game) loadLetter(ctx context.Context) {
	s, err := fetchLetter(ctx, g.cfg.Letter)
	if err != nil {
		g.logger.Info("could not load background text", "src", g.cfg.Letter, "err", err)
		return
	}
	g.letter.ready <- s
}

func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if g.pending != g.gallery.Viewport() {
		g.gallery.Rebuild(g.pending)
		g.logger.Debug("layout rebuilt",
			"width", g.pending.Width,
			"height", g.pending.Height,
			"images", len(g.gallery.Images()),
			"rings", len(g.gallery.Rings()),
			"generation", g.gallery.Generation())
	}

	g.assets.drain()
	g.letter.poll()

	if err := g.handleInput(); err != nil {
		return err
	}

	dt := frameTime()
	g.gallery.Tick(g.now())
	g.overlay.update(float32(dt.Seconds()))
	g.letter.update(dt, g.gallery.Viewport(), g.wheel)

	g.music.update()
	g.hue += 0.5
	g.buttons[0].glow = g.music.level
	g.buttons[0].hue = g.hue + 180*g.music.level
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.pending = gallery.Viewport{Width: outsideWidth, Height: outsideHeight}
	return outsideWidth, outsideHeight
}

func frameTime() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

func (g *Game) toggleMusic() {
	if err := g.music.toggle(); err != nil {
		g.logger.Warn("playback failed", "err", err)
	}
}

// pickFolder swaps the photo set for the images in a chosen directory.
func (g *Game) pickFolder() {
	dir, err := zenity.SelectFile(zenity.Title("Choose image folder"), zenity.Directory())
	if errors.Is(err, zenity.ErrCanceled) {
		return
	}
	if err != nil {
		g.logger.Warn("folder dialog failed", "err", err)
		return
	}
	g.loadFolder(dir)
}

func (g *Game) loadFolder(dir string) {
	names, err := listImages(dir)
	if err != nil {
		g.logger.Warn("could not read folder", "dir", dir, "err", err)
		return
	}
	if len(names) == 0 {
		g.logger.Warn("no images in folder", "dir", dir)
		return
	}
	g.cfg.ImageDir = dir
	g.cfg.Images = names
	g.assets.dir = dir
	g.gallery.SetImages(names)
	g.logger.Info("loaded folder", "dir", dir, "images", len(names), "generation", g.gallery.Generation())
}

func (g *Game) Close() {
	g.music.stop()
}
