// Package raster defines core types and sentinel errors for the raster
// subpackage of github.com/katalvlaran/pixstitch.
package raster

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrNilImage indicates a nil input image.
	ErrNilImage = errors.New("raster: input image is nil")
	// ErrEmptyImage indicates an input image with zero width or height.
	ErrEmptyImage = errors.New("raster: input image has zero area")
)

// Color is a canonical 24-bit RGB color key, laid out as 0xRRGGBB.
// Pixels that are not fully opaque never receive a Color; they are Empty.
type Color int32

// Empty marks a transparent or out-of-bounds cell.
const Empty Color = -1

// RGB packs three 8-bit channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(int32(r)<<16 | int32(g)<<8 | int32(b))
}

// R, G, B unpack the respective channel.
func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// Hex renders the color as a lowercase "#rrggbb" string.
// Empty renders as "#empty" so it is recognizable in diagnostics.
func (c Color) Hex() string {
	if c == Empty {
		return "#empty"
	}
	return fmt.Sprintf("#%06x", int32(c))
}

// Coord is an integer pixel coordinate, origin top-left.
// It is an immutable value type, usable as a map key and as graph node identity.
type Coord struct {
	X, Y int
}

// Chebyshev returns the Chebyshev (chessboard) distance to other.
// Two coords are 8-connected neighbors exactly when the distance is 1.
func (c Coord) Chebyshev(other Coord) int {
	dx := c.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dy := c.Y - other.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}
