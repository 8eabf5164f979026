// Package raster provides the read-only pixel grid underlying all graph
// construction: a WxH lookup of 24-bit color keys with an Empty sentinel
// for transparent cells.
package raster

import (
	"image"
	"image/color"
)

// Grid is an immutable 2D lookup of pixel colors derived from an input image.
// Cells are stored row-major; transparent pixels are Empty.
// It is safe for concurrent readers once built.
type Grid struct {
	width, height int
	cells         []Color
}

// FromImage builds a Grid from img. Pixels whose alpha channel is not fully
// opaque are treated as Empty and excluded from every downstream graph.
// Returns ErrNilImage for a nil image and ErrEmptyImage for a zero-area one;
// no partial grid is ever produced.
// Complexity: O(W×H) time and memory.
func FromImage(img image.Image) (*Grid, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil, ErrEmptyImage
	}

	g := &Grid{
		width:  w,
		height: h,
		cells:  make([]Color, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			if px.A != 0xff {
				g.cells[y*w+x] = Empty
				continue
			}
			g.cells[y*w+x] = RGB(px.R, px.G, px.B)
		}
	}

	return g, nil
}

// FromCells builds a Grid directly from a row-major cell matrix.
// Intended for callers that already hold color keys (and for tests).
// Returns ErrEmptyImage when rows or columns are missing; rows must be of
// equal length or the excess cells are ignored.
func FromCells(rows [][]Color) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyImage
	}
	h, w := len(rows), len(rows[0])
	g := &Grid{
		width:  w,
		height: h,
		cells:  make([]Color, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < len(rows[y]) {
				g.cells[y*w+x] = rows[y][x]
			} else {
				g.cells[y*w+x] = Empty
			}
		}
	}

	return g, nil
}

// Width returns the grid width in pixels.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in pixels.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the color at (x,y), or Empty when the cell is transparent
// or outside the grid. Complexity: O(1).
func (g *Grid) At(x, y int) Color {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.cells[y*g.width+x]
}

// Solid reports whether (x,y) holds any non-Empty color.
func (g *Grid) Solid(x, y int) bool {
	return g.At(x, y) != Empty
}

// Colors returns the distinct non-Empty colors of the grid, ordered by
// first appearance in row-major scan order. The order is deterministic for
// a given image, which keeps every downstream traversal reproducible.
func (g *Grid) Colors() []Color {
	seen := make(map[Color]struct{})
	var out []Color
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := g.cells[y*g.width+x]
			if c == Empty {
				continue
			}
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}

	return out
}
