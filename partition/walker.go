package partition

import (
	"github.com/katalvlaran/pixstitch/raster"
)

// WalkMode names the four deterministic directional visiting patterns.
type WalkMode int

const (
	// SpiralCW biases toward turning clockwise at every step.
	SpiralCW WalkMode = iota
	// SpiralCCW biases toward turning counter-clockwise at every step.
	SpiralCCW
	// SnakeCW sweeps back and forth, preferring to continue straight,
	// breaking rows clockwise.
	SnakeCW
	// SnakeCCW sweeps back and forth, breaking rows counter-clockwise.
	SnakeCCW
)

// heading is a cardinal direction on the pixel grid (y grows downward).
type heading int

const (
	north heading = iota
	east
	south
	west
)

// opposite returns the reverse cardinal.
func (h heading) opposite() heading {
	switch h {
	case north:
		return south
	case south:
		return north
	case east:
		return west
	default:
		return east
	}
}

// offset pairs a step vector with the heading it represents.
type offset struct {
	dx, dy int
	dir    heading
}

// baseOffsets is the canonical rotation cycle: S, W, N, E.
var baseOffsets = [4]offset{
	{0, 1, south},
	{-1, 0, west},
	{0, -1, north},
	{1, 0, east},
}

// walkNode is one stack entry: a coordinate plus the heading it was
// entered with.
type walkNode struct {
	coord raster.Coord
	dir   heading
}

// priorities returns the neighbor priority order (highest first) for one
// step. Spiral modes anchor the offset opposite the current heading first
// (continue-turning bias); snake modes anchor the heading itself first
// (continue-straight bias). Clockwise variants reverse the rotated cycle.
func priorities(mode WalkMode, dir heading) [4]offset {
	anchor := dir.opposite()
	if mode == SnakeCW || mode == SnakeCCW {
		anchor = dir
	}

	// Rotate the cycle so the anchor comes first.
	shift := 0
	for i, o := range baseOffsets {
		if o.dir == anchor {
			shift = i
			break
		}
	}
	var out [4]offset
	for i := range out {
		out[i] = baseOffsets[(shift+i)%4]
	}

	// The base cycle turns clockwise on a y-down grid; counter-clockwise
	// variants reverse the cycle while keeping the anchor first.
	if mode == SpiralCCW || mode == SnakeCCW {
		out[1], out[3] = out[3], out[1]
	}

	return out
}

// Walk produces a full visiting order of mask starting at start, in the
// requested mode. The traversal is 4-connected and purely positional, so
// it is deterministic for a given mask order, start, and mode.
//
// Coordinates unreachable from start are appended after the walked prefix
// in their original relative order, so no pixel is ever dropped. A start
// outside the mask returns the mask unchanged. An isolated start yields a
// valid single-element walked prefix.
//
// Time: O(len(mask)); Memory: O(len(mask)).
func Walk(mask []raster.Coord, start raster.Coord, mode WalkMode) []raster.Coord {
	inMask := make(map[raster.Coord]bool, len(mask))
	for _, c := range mask {
		inMask[c] = true
	}
	if !inMask[start] {
		out := make([]raster.Coord, len(mask))
		copy(out, mask)
		return out
	}

	visited := make(map[raster.Coord]bool, len(mask))
	order := make([]raster.Coord, 0, len(mask))
	stack := []walkNode{{coord: start, dir: north}}

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[node.coord] {
			continue
		}
		visited[node.coord] = true
		order = append(order, node.coord)

		prio := priorities(mode, node.dir)
		// Push in reverse priority order: the highest-priority neighbor
		// must be popped first.
		for i := len(prio) - 1; i >= 0; i-- {
			o := prio[i]
			next := raster.Coord{X: node.coord.X + o.dx, Y: node.coord.Y + o.dy}
			if !inMask[next] || visited[next] {
				continue
			}
			stack = append(stack, walkNode{coord: next, dir: o.dir})
		}
	}

	// Re-append anything a disconnected mask kept out of reach.
	for _, c := range mask {
		if !visited[c] {
			order = append(order, c)
		}
	}

	return order
}
