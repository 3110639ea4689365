// Package typewriter reveals a text a character at a time at a typing pace,
// pausing after punctuation and following the end of the text unless the
// reader has scrolled away.
package typewriter

import (
	"math/rand/v2"
	"time"
)

const (
	CharsPerMinute = 180 * 6
	CharDelay      = time.Minute / CharsPerMinute
	StartDelay     = 500 * time.Millisecond
	Jitter         = 10 * time.Millisecond
	CursorLinger   = 2 * time.Second
	ScrollResume   = 3 * time.Second
	BottomSlack    = 50.0
)

// Typewriter is advanced from a single update loop.
type Typewriter struct {
	text  []rune
	shown int
	wait  time.Duration
	rng   *rand.Rand

	finished   bool
	cursor     bool
	cursorLeft time.Duration

	userScrolled bool
	scrollIdle   time.Duration
}

func New(text string, rng *rand.Rand) *Typewriter {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Typewriter{
		text:   []rune(text),
		wait:   StartDelay,
		rng:    rng,
		cursor: true,
	}
}

// Delay is the pause after typing r, before jitter.
func Delay(r rune) time.Duration {
	switch r {
	case '.', '!', '?':
		return CharDelay * 6
	case ',':
		return CharDelay * 3
	case '\n':
		return CharDelay * 4
	}
	return CharDelay
}

func (t *Typewriter) jitter() time.Duration {
	return time.Duration((t.rng.Float64()*2 - 1) * float64(Jitter))
}

func (t *Typewriter) Advance(dt time.Duration) {
	if t.userScrolled {
		t.scrollIdle -= dt
		if t.scrollIdle <= 0 {
			t.userScrolled = false
		}
	}

	if t.finished {
		if t.cursor {
			t.cursorLeft -= dt
			if t.cursorLeft <= 0 {
				t.cursor = false
			}
		}
		return
	}

	t.wait -= dt
	for t.wait <= 0 {
		if t.shown == len(t.text) {
			t.finished = true
			t.cursorLeft = CursorLinger + t.wait
			if t.cursorLeft <= 0 {
				t.cursor = false
			}
			return
		}
		t.shown++
		t.wait += Delay(t.text[t.shown-1]) + t.jitter()
	}
}

// Scroll records a scroll by the reader. Moving away from the bottom stops
// auto-scroll until ScrollResume passes without another scroll.
func (t *Typewriter) Scroll(offset, contentHeight, viewHeight float64) {
	atBottom := contentHeight-offset <= viewHeight+BottomSlack
	if atBottom {
		t.userScrolled = false
		t.scrollIdle = 0
		return
	}
	t.userScrolled = true
	t.scrollIdle = ScrollResume
}

func (t *Typewriter) Visible() string     { return string(t.text[:t.shown]) }
func (t *Typewriter) Done() bool          { return t.finished }
func (t *Typewriter) CursorVisible() bool { return t.cursor }
func (t *Typewriter) AutoScroll() bool    { return !t.userScrolled }
