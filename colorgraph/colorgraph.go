// Package colorgraph groups same-colored, 8-connected pixels of a raster
// grid into per-color adjacency graphs, the foundation for partition
// ordering.
//
// Neighbor lists are always produced in the same fixed direction order
// (NW, N, NE, E, SE, S, SW, W, optionally rotated), so every downstream
// traversal is reproducible for a given image.
package colorgraph

import (
	"github.com/katalvlaran/pixstitch/raster"
)

// direction pairs an (dx,dy) offset with its compass name.
type direction struct {
	dx, dy int
	name   string
}

// directions is the fixed neighbor examination order.
var directions = []direction{
	{-1, -1, "NW"},
	{0, -1, "N"},
	{1, -1, "NE"},
	{1, 0, "E"},
	{1, 1, "SE"},
	{0, 1, "S"},
	{-1, 1, "SW"},
	{-1, 0, "W"},
}

// Option configures graph construction via functional arguments.
type Option func(*Options)

// Options holds tunable parameters for Build.
type Options struct {
	// Rotation shifts the direction examination order by |Rotation| steps;
	// a negative value additionally reverses it. Any fixed value keeps the
	// output deterministic. Valid range is -8..7; values are taken modulo 8.
	Rotation int
}

// DefaultOptions returns Options with the canonical direction order
// (Rotation == 0).
func DefaultOptions() Options {
	return Options{Rotation: 0}
}

// WithRotation sets the neighbor-order rotation.
func WithRotation(n int) Option {
	return func(o *Options) { o.Rotation = n }
}

// Graph is one color's pixel adjacency: an insertion-ordered node list plus
// 8-connected neighbor lists. Edges are symmetric by construction, carry no
// self-loops, and never reference out-of-bounds coordinates.
type Graph struct {
	color raster.Color
	nodes []raster.Coord
	adj   map[raster.Coord][]raster.Coord
}

// Build constructs one adjacency Graph per distinct color of grid.
// For every non-empty pixel it examines the 8 neighbors in the (possibly
// rotated) fixed direction order and records those sharing the pixel's
// color. An empty grid yields an empty map; there are no failure modes.
// Complexity: O(W×H) time and memory.
func Build(grid *raster.Grid, opts ...Option) map[raster.Color]*Graph {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	dirs := rotatedDirections(o.Rotation)

	out := make(map[raster.Color]*Graph)
	width, height := grid.Width(), grid.Height()
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			color := grid.At(x, y)
			if color == raster.Empty {
				continue
			}
			g, ok := out[color]
			if !ok {
				g = &Graph{color: color, adj: make(map[raster.Coord][]raster.Coord)}
				out[color] = g
			}
			coord := raster.Coord{X: x, Y: y}
			var neighbors []raster.Coord
			for _, d := range dirs {
				nx, ny := x+d.dx, y+d.dy
				if !grid.InBounds(nx, ny) {
					continue
				}
				if grid.At(nx, ny) != color {
					continue
				}
				neighbors = append(neighbors, raster.Coord{X: nx, Y: ny})
			}
			g.nodes = append(g.nodes, coord)
			g.adj[coord] = neighbors
		}
	}

	return out
}

// rotatedDirections returns the direction order shifted left by |n| steps,
// reversed when n is negative.
func rotatedDirections(n int) []direction {
	shift := n
	if shift < 0 {
		shift = -shift
	}
	shift %= len(directions)
	rotated := make([]direction, 0, len(directions))
	rotated = append(rotated, directions[shift:]...)
	rotated = append(rotated, directions[:shift]...)
	if n < 0 {
		for i, j := 0, len(rotated)-1; i < j; i, j = i+1, j-1 {
			rotated[i], rotated[j] = rotated[j], rotated[i]
		}
	}

	return rotated
}

// Color returns the color key this graph was built for.
func (g *Graph) Color() raster.Color { return g.color }

// Len returns the number of pixels in the graph.
func (g *Graph) Len() int { return len(g.nodes) }

// Nodes returns the pixel coordinates in insertion order.
// The returned slice is shared; callers must not mutate it.
func (g *Graph) Nodes() []raster.Coord { return g.nodes }

// Contains reports whether c is a pixel of this graph.
func (g *Graph) Contains(c raster.Coord) bool {
	_, ok := g.adj[c]
	return ok
}

// Neighbors returns c's same-color 8-connected neighbors in direction order.
// The result is nil when c is not part of the graph.
func (g *Graph) Neighbors(c raster.Coord) []raster.Coord {
	return g.adj[c]
}

// Degree returns the number of neighbors of c.
func (g *Graph) Degree(c raster.Coord) int {
	return len(g.adj[c])
}

// Adjacent reports whether a and b share an edge.
func (g *Graph) Adjacent(a, b raster.Coord) bool {
	for _, n := range g.adj[a] {
		if n == b {
			return true
		}
	}
	return false
}
