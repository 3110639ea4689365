package game

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/semaphore"

	"github.com/iburimskiy/photo-rings/internal/config"
	"github.com/iburimskiy/photo-rings/internal/gallery"
)

const maxConcurrentLoads = 4

var imageExts = []string{".jpg", ".jpeg", ".png", ".webp"}

type loadResult struct {
	generation uint64
	index      int
	thumb      image.Image
	full       image.Image
	err        error
}

// slot is the mounted visual element of one gallery item.
type slot struct {
	el     gallery.Element
	thumb  *ebiten.Image
	full   *ebiten.Image
	failed bool
}

// assets is the gallery's mount point. Every Append starts an independent
// load; results are applied on the update loop and dropped when they belong
// to an earlier generation.
type assets struct {
	logger *log.Logger
	dir    string

	generation uint64
	slots      []slot
	results    chan loadResult
	sem        *semaphore.Weighted
	ctx        context.Context
	cancel     context.CancelFunc
	parent     context.Context

	decode func(path string) (image.Image, error)
}

func newAssets(ctx context.Context, dir string, logger *log.Logger) *assets {
	a := &assets{
		logger:  logger,
		dir:     dir,
		results: make(chan loadResult, 64),
		sem:     semaphore.NewWeighted(maxConcurrentLoads),
		parent:  ctx,
		decode:  decodeFile,
	}
	a.ctx, a.cancel = context.WithCancel(ctx)
	return a
}

func (a *assets) Reset(generation uint64) {
	a.cancel()
	a.ctx, a.cancel = context.WithCancel(a.parent)
	a.generation = generation
	a.slots = a.slots[:0:0]
}

func (a *assets) Append(el gallery.Element) {
	a.slots = append(a.slots, slot{el: el})
	go a.load(a.ctx, el.Generation, el.Index, filepath.Join(a.dir, el.Image))
}

func (a *assets) load(ctx context.Context, generation uint64, index int, path string) {
	if err := a.sem.Acquire(ctx, 1); err != nil {
		return
	}
	res := loadResult{generation: generation, index: index}
	if src, err := a.decode(path); err != nil {
		res.err = err
	} else {
		res.thumb = coverCircle(src, config.ThumbnailSize)
		res.full = fitWithin(src, config.EnlargedMax)
	}
	a.sem.Release(1)

	select {
	case a.results <- res:
	case <-ctx.Done():
	}
}

// drain applies finished loads. It must run on the update loop.
func (a *assets) drain() {
	for {
		select {
		case res := <-a.results:
			a.apply(res)
		default:
			return
		}
	}
}

func (a *assets) apply(res loadResult) {
	if res.generation != a.generation || res.index < 0 || res.index >= len(a.slots) {
		a.logger.Debug("dropping stale image load", "generation", res.generation, "index", res.index)
		return
	}
	s := &a.slots[res.index]
	if res.err != nil {
		s.failed = true
		a.logger.Debug("image load failed", "image", s.el.Image, "err", res.err)
		return
	}
	s.thumb = ebiten.NewImageFromImage(res.thumb)
	s.full = ebiten.NewImageFromImage(res.full)
}

func (a *assets) at(i int) (*slot, bool) {
	if i < 0 || i >= len(a.slots) {
		return nil, false
	}
	return &a.slots[i], true
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// listImages returns the image files in dir, sorted by name.
func listImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if slices.Contains(imageExts, strings.ToLower(filepath.Ext(e.Name()))) {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)
	return names, nil
}

// coverCircle scales src to cover a size x size square, center-cropped, and
// cuts it to a circle.
func coverCircle(src image.Image, size int) *image.RGBA {
	b := src.Bounds()
	side := min(b.Dx(), b.Dy())
	crop := image.Rect(0, 0, side, side).Add(image.Point{
		X: b.Min.X + (b.Dx()-side)/2,
		Y: b.Min.Y + (b.Dy()-side)/2,
	})

	square := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.ApproxBiLinear.Scale(square, square.Bounds(), src, crop, xdraw.Src, nil)

	out := image.NewRGBA(square.Bounds())
	draw.DrawMask(out, out.Bounds(), square, image.Point{}, circleMask{size: size}, image.Point{}, draw.Over)
	return out
}

// fitWithin downscales src so neither side exceeds limit.
func fitWithin(src image.Image, limit int) image.Image {
	b := src.Bounds()
	longest := max(b.Dx(), b.Dy())
	if longest <= limit {
		return src
	}
	k := float64(limit) / float64(longest)
	dst := image.NewRGBA(image.Rect(0, 0, max(int(float64(b.Dx())*k), 1), max(int(float64(b.Dy())*k), 1)))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// circleMask is an antialiased disc filling a size x size square.
type circleMask struct {
	size int
}

func (c circleMask) ColorModel() color.Model { return color.AlphaModel }

func (c circleMask) Bounds() image.Rectangle { return image.Rect(0, 0, c.size, c.size) }

func (c circleMask) At(x, y int) color.Color {
	r := float64(c.size) / 2
	d := math.Hypot(float64(x)+0.5-r, float64(y)+0.5-r)
	return color.Alpha{A: uint8(clamp01(r-d+0.5) * 255)}
}
