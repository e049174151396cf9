package binpack

import "fmt"

// Area describes the dimensions of an entity in 2D space.
type Area struct {
	// Width is the dimension on the horizontal x-axis.
	Width int `json:"width"`
	// Height is the dimension on the vertical y-axis.
	Height int `json:"height"`
}

// NewArea creates a new area with the specified dimensions.
func NewArea(width, height int) Area {
	return Area{Width: width, Height: height}
}

// Eq tests whether the receiver and another area have equal values.
func (a *Area) Eq(area Area) bool {
	return a.Width == area.Width && a.Height == area.Height
}

// String returns a string representation of the area.
func (a *Area) String() string {
	return fmt.Sprintf("<%v, %v>", a.Width, a.Height)
}

// Total returns the total area (width * height).
func (a *Area) Total() int {
	return a.Width * a.Height
}

// Perimeter returns the sum length of all sides.
func (a *Area) Perimeter() int {
	return (a.Width + a.Height) << 1
}

// MaxSide returns the value of the greater side.
func (a *Area) MaxSide() int {
	return max(a.Width, a.Height)
}

// MinSide returns the value of the lesser side.
func (a *Area) MinSide() int {
	return min(a.Width, a.Height)
}

// Ratio computes the ratio between the width/height.
func (a *Area) Ratio() float64 {
	return float64(a.Width) / float64(a.Height)
}

// Rotated returns the area rotated 90 degrees, with its width and height
// exchanged.
func (a *Area) Rotated() Area {
	return Area{Width: a.Height, Height: a.Width}
}

// Rect describes an axis-aligned region in 2D space using inclusive integer
// coordinates: a 1x1 region at the origin is {0, 0, 0, 0}.
type Rect struct {
	// Left is the coordinate of the left-edge on the x-axis.
	Left int `json:"left"`
	// Top is the coordinate of the top-edge on the y-axis.
	Top int `json:"top"`
	// Right is the coordinate of the right-edge on the x-axis.
	Right int `json:"right"`
	// Bottom is the coordinate of the bottom-edge on the y-axis.
	Bottom int `json:"bottom"`
}

// InvalidRect is the sentinel value returned when packing fails. It carries
// no geometric meaning and must not be treated as a zero-area region.
var InvalidRect = Rect{Left: 1, Top: 1, Right: 0, Bottom: 0}

// NewRect initializes a new rectangle using the specified left/top/right/bottom
// coordinates.
func NewRect(left, top, right, bottom int) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// IsValid returns if the rectangle is valid, i.e. Right is greater than or
// equal to Left and Bottom is greater than or equal to Top.
func (r *Rect) IsValid() bool {
	return r.Left <= r.Right && r.Top <= r.Bottom
}

// Eq tests whether the receiver and another rectangle have equal values.
func (r *Rect) Eq(rect Rect) bool {
	return r.Left == rect.Left && r.Top == rect.Top &&
		r.Right == rect.Right && r.Bottom == rect.Bottom
}

// String returns a string describing the rectangle.
func (r *Rect) String() string {
	return fmt.Sprintf("<%v, %v, %v, %v>", r.Left, r.Top, r.Right, r.Bottom)
}

// Width returns the width of the rectangle. Coordinates are inclusive, so a
// rectangle with equal left and right edges has a width of 1.
func (r *Rect) Width() int {
	return r.Right - r.Left + 1
}

// Height returns the height of the rectangle. Coordinates are inclusive, so a
// rectangle with equal top and bottom edges has a height of 1.
func (r *Rect) Height() int {
	return r.Bottom - r.Top + 1
}

// Area returns the total area (width * height).
func (r *Rect) Area() int {
	return r.Width() * r.Height()
}

// Size returns the dimensions of the rectangle.
func (r *Rect) Size() Area {
	return Area{Width: r.Width(), Height: r.Height()}
}

// Contains tests whether the specified coordinates are within the bounds of
// the receiver.
func (r *Rect) Contains(x, y int) bool {
	return r.Left <= x && x <= r.Right && r.Top <= y && y <= r.Bottom
}

// ContainsRect tests whether the specified rectangle is contained within the
// bounds of the receiver.
func (r *Rect) ContainsRect(rect Rect) bool {
	return r.Left <= rect.Left && rect.Right <= r.Right &&
		r.Top <= rect.Top && rect.Bottom <= r.Bottom
}

// Intersects tests whether the receiver has any overlap with the specified
// rectangle.
func (r *Rect) Intersects(rect Rect) bool {
	return rect.Left <= r.Right && r.Left <= rect.Right &&
		rect.Top <= r.Bottom && r.Top <= rect.Bottom
}

// Intersect returns a rectangle representing only the overlapping area of
// this rectangle and another, or an invalid rectangle when no overlap is
// present.
func (r *Rect) Intersect(rect Rect) Rect {
	return Rect{
		Left:   max(r.Left, rect.Left),
		Top:    max(r.Top, rect.Top),
		Right:  min(r.Right, rect.Right),
		Bottom: min(r.Bottom, rect.Bottom),
	}
}

// Union returns a minimum rectangle required to contain the receiver and
// another rectangle.
func (r *Rect) Union(rect Rect) Rect {
	return Rect{
		Left:   min(r.Left, rect.Left),
		Top:    min(r.Top, rect.Top),
		Right:  max(r.Right, rect.Right),
		Bottom: max(r.Bottom, rect.Bottom),
	}
}

// vim: ts=4
