package partition

import (
	"github.com/katalvlaran/pixstitch/raster"
	"github.com/katalvlaran/pixstitch/shape"
)

// Partition is one continuous stitch path for one color grouping: an
// ordered shape sequence in which every pixel of the grouping appears as
// exactly one Rect, with Path shapes bridging non-adjacent consecutive
// Rects. A Partition is owned by exactly one layer/export context and is
// never shared.
type Partition struct {
	// Name is the human-readable grouping key, e.g. "#ff0000" or
	// "#ff0000_1".
	Name string
	// Color is the grouping's 24-bit color key.
	Color raster.Color
	// Shapes is the ordered Rect/Path sequence.
	Shapes []shape.Shape
}

// PixelCount returns the number of Rect shapes (fill cells).
func (p *Partition) PixelCount() int {
	n := 0
	for _, s := range p.Shapes {
		if _, ok := s.(shape.Rect); ok {
			n++
		}
	}
	return n
}

// Coords returns the Rect coordinates in visiting order.
func (p *Partition) Coords() []raster.Coord {
	out := make([]raster.Coord, 0, len(p.Shapes))
	for _, s := range p.Shapes {
		if r, ok := s.(shape.Rect); ok {
			out = append(out, raster.Coord{X: r.X, Y: r.Y})
		}
	}
	return out
}

// JumpStitches counts order-adjacent Rect pairs whose Chebyshev distance
// exceeds 1. It is a pure diagnostic derived from the visiting order and
// never alters it.
func (p *Partition) JumpStitches() int {
	return JumpStitches(p.Coords())
}

// JumpStitches counts consecutive coordinate pairs further than one step
// apart (in the Chebyshev metric) in a visiting order.
func JumpStitches(coords []raster.Coord) int {
	jumps := 0
	for i := 1; i < len(coords); i++ {
		if coords[i-1].Chebyshev(coords[i]) > 1 {
			jumps++
		}
	}
	return jumps
}

// ReplaceOrder rebuilds the shape sequence from a new visiting order,
// typically one produced by Walk after a manual edit. Consecutive
// coordinates further than one step apart receive a direct rectilinear
// connector; the no-repeated-Rect invariant is the caller's to uphold
// (Walk preserves it).
func (p *Partition) ReplaceOrder(coords []raster.Coord) {
	shapes := make([]shape.Shape, 0, len(coords))
	for i, c := range coords {
		shapes = append(shapes, shape.Rect{X: c.X, Y: c.Y})
		if i+1 < len(coords) && c.Chebyshev(coords[i+1]) > 1 {
			shapes = append(shapes, directConnector(c, coords[i+1]))
		}
	}
	p.Shapes = shapes
}

// directConnector builds the fallback connector between two pixels: a
// straight segment when they share a row or column, otherwise one
// right-angle bend through an intermediate point.
func directConnector(from, to raster.Coord) shape.Path {
	if from.X == to.X || from.Y == to.Y {
		return shape.Path{Points: []shape.Point{
			{X: from.X, Y: from.Y},
			{X: to.X, Y: to.Y},
		}}
	}
	return shape.Path{Points: []shape.Point{
		{X: from.X, Y: from.Y},
		{X: to.X, Y: from.Y},
		{X: to.X, Y: to.Y},
	}}
}
