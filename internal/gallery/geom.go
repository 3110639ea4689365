package gallery

import "math"

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Viewport is the outer window size in pixels.
type Viewport struct {
	Width, Height int
}

func (v Viewport) Short() float64 {
	return float64(min(v.Width, v.Height))
}

// Container is the centered square that percent coordinates map onto.
func (v Viewport) Container() Rect {
	side := v.Short()
	return Rect{
		X: (float64(v.Width) - side) / 2,
		Y: (float64(v.Height) - side) / 2,
		W: side,
		H: side,
	}
}

// polar converts a ring position to percent coordinates around (50, 50).
func polar(radius, angle float64) (x, y float64) {
	return 50 + radius*math.Cos(angle), 50 + radius*math.Sin(angle)
}
