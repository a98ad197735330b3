package model

// Point is a position in layout units. Y grows downward: row 0 is at the top.
type Point struct {
	X, Y float64
}

// Size is a width/height pair in layout units.
type Size struct {
	Width, Height float64
}

// BBox is an axis-aligned rectangle whose origin is its top-left corner.
type BBox struct {
	X      float64 // Left
	Y      float64 // Top
	Width  float64
	Height float64
}

// NewBBox creates a bounding box from a position and a size.
func NewBBox(p Point, s Size) BBox {
	return BBox{X: p.X, Y: p.Y, Width: s.Width, Height: s.Height}
}

// Origin returns the top-left corner.
func (b BBox) Origin() Point {
	return Point{X: b.X, Y: b.Y}
}

// Right returns the right edge X coordinate
func (b BBox) Right() float64 {
	return b.X + b.Width
}

// Bottom returns the bottom edge Y coordinate
func (b BBox) Bottom() float64 {
	return b.Y + b.Height
}

// Contains checks if a point is inside the bounding box
func (b BBox) Contains(p Point) bool {
	return p.X >= b.X && p.X <= b.Right() &&
		p.Y >= b.Y && p.Y <= b.Bottom()
}

// Overlaps reports whether the interiors of two boxes intersect. Boxes that
// only share an edge do not overlap.
func (b BBox) Overlaps(other BBox) bool {
	return b.X < other.Right() && other.X < b.Right() &&
		b.Y < other.Bottom() && other.Y < b.Bottom()
}

// IsEmpty returns true if the bounding box has zero area
func (b BBox) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}
