package hardhat

import (
	"fmt"
	"math"
)

// Point is a coordinate in the 2D space shared by all boxes of a frame
type Point struct {
	X float64
	Y float64
}

// Box is an axis aligned rectangle defined by two diagonal corners.  A valid
// Box has BottomLeft strictly smaller than TopRight on both axes
type Box struct {
	BottomLeft Point
	TopRight   Point
}

// NewBox returns a Box from the corner coordinates x1,y1 (bottom left) and
// x2,y2 (top right)
func NewBox(x1, y1, x2, y2 float64) Box {
	return Box{
		BottomLeft: Point{X: x1, Y: y1},
		TopRight:   Point{X: x2, Y: y2},
	}
}

// Width returns the width of the box
func (b Box) Width() float64 {
	return b.TopRight.X - b.BottomLeft.X
}

// Height returns the height of the box
func (b Box) Height() float64 {
	return b.TopRight.Y - b.BottomLeft.Y
}

// Area returns width x height
func (b Box) Area() float64 {
	return b.Width() * b.Height()
}

// Valid reports whether the box has a positive area
func (b Box) Valid() bool {
	return b.BottomLeft.X < b.TopRight.X && b.BottomLeft.Y < b.TopRight.Y
}

// IntersectionArea returns the area of the overlapping region of the two
// boxes, or 0 when they do not overlap
func (b Box) IntersectionArea(other Box) float64 {

	w := math.Min(b.TopRight.X, other.TopRight.X) - math.Max(b.BottomLeft.X, other.BottomLeft.X)

	if w <= 0 {
		return 0
	}

	h := math.Min(b.TopRight.Y, other.TopRight.Y) - math.Max(b.BottomLeft.Y, other.BottomLeft.Y)

	if h <= 0 {
		return 0
	}

	return w * h
}

// OverlapRatio returns the fraction of the smaller of the two boxes covered by
// their intersection.  Unlike IoU this reaches 1.0 when one box is fully
// contained in the other, which is what is needed to decide if a head sits
// inside a worker
func (b Box) OverlapRatio(other Box) float64 {

	smaller := math.Min(b.Area(), other.Area())

	if smaller <= 0 {
		return 0
	}

	return b.IntersectionArea(other) / smaller
}

// String returns a human readable form of the box for logging
func (b Box) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", b.BottomLeft.X, b.BottomLeft.Y,
		b.TopRight.X, b.TopRight.Y)
}
