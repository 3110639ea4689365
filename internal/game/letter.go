package game

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/photo-rings/internal/gallery"
	"github.com/iburimskiy/photo-rings/internal/typewriter"
)

const (
	letterMargin     = 40
	letterLineHeight = 16
	letterCharWidth  = 7
	wheelLines       = 3
)

var letterFace = text.NewGoXFace(basicfont.Face7x13)

// fetchLetter reads src from disk or, for http(s) URLs, over the network.
func fetchLetter(ctx context.Context, src string) (string, error) {
	if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
		data, err := os.ReadFile(src)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return "", err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: %s", src, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// letterView types the fetched letter into the background.
type letterView struct {
	ready  chan string
	tw     *typewriter.Typewriter
	offset float64
	lines  []string
}

func newLetterView() *letterView {
	return &letterView{ready: make(chan string, 1)}
}

func (l *letterView) poll() {
	select {
	case s := <-l.ready:
		l.tw = typewriter.New(s, nil)
	default:
	}
}

func (l *letterView) update(dt time.Duration, vp gallery.Viewport, wheel float64) {
	if l.tw == nil {
		return
	}
	l.tw.Advance(dt)

	cols := max((vp.Width-2*letterMargin)/letterCharWidth, 1)
	l.lines = typewriter.Wrap(l.tw.Visible(), cols)
	view := float64(vp.Height - 2*letterMargin)
	content := float64(len(l.lines) * letterLineHeight)
	bottom := max(content-view, 0)

	if wheel != 0 {
		l.offset = min(max(l.offset-wheel*wheelLines*letterLineHeight, 0), bottom)
		l.tw.Scroll(l.offset, content, view)
	}
	if l.tw.AutoScroll() {
		l.offset = bottom
	}
}

func (l *letterView) draw(screen *ebiten.Image, vp gallery.Viewport, p palette) {
	if l.tw == nil {
		return
	}
	first := int(l.offset) / letterLineHeight
	visible := (vp.Height-2*letterMargin)/letterLineHeight + 1
	for k := first; k < len(l.lines) && k < first+visible; k++ {
		line := l.lines[k]
		if k == len(l.lines)-1 && l.tw.CursorVisible() {
			line += "_"
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(letterMargin, float64(letterMargin+k*letterLineHeight)-l.offset)
		op.ColorScale.ScaleWithColor(p.Letter)
		text.Draw(screen, line, letterFace, op)
	}
}
