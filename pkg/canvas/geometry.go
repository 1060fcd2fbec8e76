package canvas

import "math"

// EMU (English Metric Units) conversion factors used by OOXML.
const (
	EMUPerInch  = 914400
	EMUPerPoint = 12700
	PointsPerIn = 72.0
)

// Box is an axis-aligned rectangle in inches, origin at the top-left of the page.
type Box struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Rect is shorthand for a Box literal.
func Rect(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Bottom returns the y coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// CenterX returns the horizontal center.
func (b Box) CenterX() float64 { return b.X + b.W/2 }

// CenterY returns the vertical center.
func (b Box) CenterY() float64 { return b.Y + b.H/2 }

// Inset shrinks the box by dx on the left and right and dy on the top and bottom.
func (b Box) Inset(dx, dy float64) Box {
	return Box{X: b.X + dx, Y: b.Y + dy, W: b.W - 2*dx, H: b.H - 2*dy}
}

// Within reports whether the box lies inside a page of the given size,
// allowing for float rounding.
func (b Box) Within(width, height float64) bool {
	const eps = 1e-6
	return b.X >= -eps && b.Y >= -eps &&
		b.Right() <= width+eps && b.Bottom() <= height+eps
}

// InchesToEMU converts inches to EMU, rounding to the nearest unit.
func InchesToEMU(in float64) int64 {
	return int64(math.Round(in * EMUPerInch))
}

// PointsToEMU converts points to EMU.
func PointsToEMU(pt float64) int64 {
	return int64(math.Round(pt * EMUPerPoint))
}
