package gallery

// CloseReason is one of the ways out of the overlay.
type CloseReason int

const (
	CloseOverlayClick CloseReason = iota
	CloseEscape
	CloseTapOutside
)

func (r CloseReason) String() string {
	switch r {
	case CloseOverlayClick:
		return "overlay-click"
	case CloseEscape:
		return "escape"
	case CloseTapOutside:
		return "tap-outside"
	}
	return "unknown"
}

// Enlargement is either none or showing exactly one item.
// Only the owner calls Open and Close; everyone else reads Active.
type Enlargement struct {
	showing bool
	index   int
}

func (e *Enlargement) Active() bool { return e.showing }

// Current returns the shown index, if any.
func (e *Enlargement) Current() (int, bool) {
	return e.index, e.showing
}

// Open moves none -> showing(i). It is a no-op while already showing.
func (e *Enlargement) Open(i int) bool {
	if e.showing {
		return false
	}
	e.showing = true
	e.index = i
	return true
}

// Close moves showing -> none and returns the index that was shown.
func (e *Enlargement) Close(CloseReason) (int, bool) {
	if !e.showing {
		return 0, false
	}
	i := e.index
	e.showing = false
	e.index = 0
	return i, true
}
