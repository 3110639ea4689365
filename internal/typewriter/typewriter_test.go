package typewriter

import (
	"math/rand/v2"
	"reflect"
	"testing"
	"time"
)

func newTypewriter(text string) *Typewriter {
	return New(text, rand.New(rand.NewPCG(3, 4)))
}

func TestDelayByCharacter(t *testing.T) {
	tests := []struct {
		r    rune
		want time.Duration
	}{
		{'a', CharDelay},
		{' ', CharDelay},
		{'.', 6 * CharDelay},
		{'!', 6 * CharDelay},
		{'?', 6 * CharDelay},
		{',', 3 * CharDelay},
		{'\n', 4 * CharDelay},
	}
	for _, tt := range tests {
		if got := Delay(tt.r); got != tt.want {
			t.Errorf("Delay(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
	if CharDelay < 55*time.Millisecond || CharDelay > 56*time.Millisecond {
		t.Errorf("CharDelay = %v, want ~55.5ms", CharDelay)
	}
}

func TestStartsAfterDelay(t *testing.T) {
	tw := newTypewriter("hello")
	tw.Advance(StartDelay - time.Millisecond)
	if got := tw.Visible(); got != "" {
		t.Fatalf("visible before start = %q", got)
	}
	tw.Advance(time.Millisecond)
	if got := tw.Visible(); got != "h" {
		t.Errorf("visible at start = %q, want h", got)
	}
}

func TestPacingWithJitter(t *testing.T) {
	tw := newTypewriter("a.b")
	tw.Advance(StartDelay)
	if tw.Visible() != "a" {
		t.Fatalf("visible = %q", tw.Visible())
	}
	tw.Advance(CharDelay - Jitter - time.Millisecond)
	if tw.Visible() != "a" {
		t.Fatalf("second char too early: %q", tw.Visible())
	}
	tw.Advance(2*Jitter + time.Millisecond)
	if tw.Visible() != "a." {
		t.Fatalf("visible = %q, want a.", tw.Visible())
	}
	// Full stop holds the next character back for six character times.
	// The overshoot of the previous step carries over.
	tw.Advance(6*CharDelay - 3*Jitter - time.Millisecond)
	if tw.Visible() != "a." {
		t.Fatalf("pause after period too short: %q", tw.Visible())
	}
	tw.Advance(4*Jitter + time.Millisecond)
	if tw.Visible() != "a.b" {
		t.Errorf("visible = %q, want a.b", tw.Visible())
	}
}

func TestCursorLingersAfterDone(t *testing.T) {
	tw := newTypewriter("hi")
	for range 100 {
		if tw.Done() {
			break
		}
		tw.Advance(10 * time.Millisecond)
	}
	if !tw.Done() || tw.Visible() != "hi" {
		t.Fatalf("done = %v, visible = %q", tw.Done(), tw.Visible())
	}
	if !tw.CursorVisible() {
		t.Fatal("cursor gone at completion")
	}
	tw.Advance(CursorLinger - 20*time.Millisecond)
	if !tw.CursorVisible() {
		t.Error("cursor gone too early")
	}
	tw.Advance(20 * time.Millisecond)
	if tw.CursorVisible() {
		t.Error("cursor still visible after linger")
	}
}

func TestEmptyText(t *testing.T) {
	tw := newTypewriter("")
	tw.Advance(StartDelay)
	if !tw.Done() || tw.Visible() != "" {
		t.Fatalf("done = %v, visible = %q", tw.Done(), tw.Visible())
	}
	tw.Advance(CursorLinger)
	if tw.CursorVisible() {
		t.Error("cursor visible after linger")
	}
}

func TestLargeStepTypesSeveralCharacters(t *testing.T) {
	tw := newTypewriter("abcdef")
	tw.Advance(StartDelay + 3*CharDelay + 5*time.Millisecond)
	n := len(tw.Visible())
	if n < 3 || n > 5 {
		t.Errorf("typed %d characters, want about 4", n)
	}
}

func TestScrollSuspendsAutoScroll(t *testing.T) {
	tw := newTypewriter("x")
	if !tw.AutoScroll() {
		t.Fatal("auto-scroll off initially")
	}

	tw.Scroll(0, 1000, 300)
	if tw.AutoScroll() {
		t.Fatal("auto-scroll still on after scrolling up")
	}
	tw.Advance(ScrollResume - time.Millisecond)
	if tw.AutoScroll() {
		t.Error("auto-scroll resumed early")
	}
	tw.Advance(time.Millisecond)
	if !tw.AutoScroll() {
		t.Error("auto-scroll not resumed after idle")
	}

	tw.Scroll(100, 1000, 300)
	tw.Advance(2 * time.Second)
	tw.Scroll(100, 1000, 300) // restarts the idle timer
	tw.Advance(2 * time.Second)
	if tw.AutoScroll() {
		t.Error("idle timer not restarted by a second scroll")
	}
}

func TestScrollBackToBottomResumes(t *testing.T) {
	tw := newTypewriter("x")
	tw.Scroll(0, 1000, 300)
	tw.Scroll(660, 1000, 300) // within the bottom slack
	if !tw.AutoScroll() {
		t.Error("auto-scroll not resumed at the bottom")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		text string
		cols int
		want []string
	}{
		{"short", 10, []string{"short"}},
		{"hello world again", 11, []string{"hello world", "again"}},
		{"one\ntwo", 10, []string{"one", "two"}},
		{"abcdefgh", 3, []string{"abc", "def", "gh"}},
		{"", 5, []string{""}},
		{"abc ", 3, []string{"abc"}},
	}
	for _, tt := range tests {
		if got := Wrap(tt.text, tt.cols); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Wrap(%q, %d) = %q, want %q", tt.text, tt.cols, got, tt.want)
		}
	}
}
