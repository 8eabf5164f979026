// Package shape defines the two shape kinds a stitch path is made of:
// unit rectangles for embroidery fill cells and point polylines for
// connector segments.
//
// Shape is a sealed sum type: only Rect and Path implement it, and the
// compiler guarantees no third variant can be constructed outside this
// package. Encoders may therefore match exhaustively and treat any other
// value as a contract violation.
package shape

// Point is an immutable point on the pixel-corner grid.
type Point struct {
	X, Y int
}

// Shape is either a Rect or a Path. The unexported marker method seals the
// interface.
type Shape interface {
	sealed()
}

// Rect is one embroidery fill cell at pixel coordinate (X, Y).
// It is rendered as a unit rectangle scaled by the physical pixel size.
type Rect struct {
	X, Y int
}

func (Rect) sealed() {}

// Path is a connector (jump) segment between two non-adjacent fill cells,
// as an ordered polyline of grid-corner points.
type Path struct {
	Points []Point
}

func (Path) sealed() {}

// NewPath copies pts into a fresh Path so later mutation of the argument
// cannot affect the shape.
func NewPath(pts []Point) Path {
	cp := make([]Point, len(pts))
	copy(cp, pts)
	return Path{Points: cp}
}

// Equal reports point-wise equality with other.
func (p Path) Equal(other Path) bool {
	if len(p.Points) != len(other.Points) {
		return false
	}
	for i, pt := range p.Points {
		if pt != other.Points[i] {
			return false
		}
	}
	return true
}
