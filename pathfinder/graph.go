package pathfinder

import (
	"sync"

	"github.com/katalvlaran/pixstitch/raster"
)

// Finder builds and caches vertex grid graphs for one raster grid and
// answers shortest-route queries over them.
//
// The cache is keyed by (color, weighted) and guarded by a sync.RWMutex so
// concurrent callers working on different colors build each graph exactly
// once. A Finder never mutates its grid.
type Finder struct {
	grid *raster.Grid
	opts Options

	mu    sync.RWMutex
	cache map[graphKey]*vertexGraph
}

// graphKey identifies one cached vertex grid graph.
type graphKey struct {
	color    raster.Color
	weighted bool
}

// vertexGraph is the grid-corner graph for one (color, weighting) pair.
// Corners are indexed row-major: idx = y*(width+1) + x. Edge weights of 0
// mark absent edges (real weights are always >= 1).
type vertexGraph struct {
	cols, rows int // corner counts: width+1, height+1

	// horiz[y*(cols-1)+x] is the weight of edge (x,y)-(x+1,y).
	horiz []int64
	// vert[y*cols+x] is the weight of edge (x,y)-(x,y+1).
	vert []int64
	// member[idx] reports whether the corner has at least one incident edge.
	member []bool
}

// New creates a Finder over grid. The grid must outlive the Finder.
func New(grid *raster.Grid, opts ...Option) *Finder {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Finder{
		grid:  grid,
		opts:  o,
		cache: make(map[graphKey]*vertexGraph),
	}
}

// graph returns the cached vertex grid graph for key, building it on first
// use. Double-checked locking keeps the build once-per-key under
// concurrent access.
func (f *Finder) graph(color raster.Color, weighted bool) *vertexGraph {
	key := graphKey{color: color, weighted: weighted}

	f.mu.RLock()
	g, ok := f.cache[key]
	f.mu.RUnlock()
	if ok {
		return g
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if g, ok = f.cache[key]; ok {
		return g
	}
	g = f.build(color, weighted)
	f.cache[key] = g

	return g
}

// pixelWeight is the cost contribution of pixel (px,py) to an adjacent
// edge of the graph built for color. Empty and out-of-bounds pixels
// contribute MaxWeight; unweighted mode always contributes 1.
func (f *Finder) pixelWeight(color raster.Color, weighted bool, px, py int) int64 {
	if !weighted {
		return 1
	}
	pixel := f.grid.At(px, py)
	if pixel == raster.Empty {
		return MaxWeight
	}
	return f.opts.Weight(color, pixel)
}

// build constructs the vertex grid graph for one (color, weighting) pair.
//
// A horizontal edge (x,y)-(x+1,y) exists iff pixel (x,y-1) or (x,y) is
// solid; a vertical edge (x,y)-(x,y+1) iff pixel (x-1,y) or (x,y) is.
// The edge weight is the minimum of the two bordering pixel weights.
// Complexity: O(W×H) time and memory.
func (f *Finder) build(color raster.Color, weighted bool) *vertexGraph {
	cols, rows := f.grid.Width()+1, f.grid.Height()+1
	g := &vertexGraph{
		cols:   cols,
		rows:   rows,
		horiz:  make([]int64, rows*(cols-1)),
		vert:   make([]int64, (rows-1)*cols),
		member: make([]bool, rows*cols),
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if x+1 < cols {
				if f.grid.Solid(x, y-1) || f.grid.Solid(x, y) {
					w := minWeight(
						f.pixelWeight(color, weighted, x, y-1),
						f.pixelWeight(color, weighted, x, y),
					)
					g.horiz[y*(cols-1)+x] = w
					g.member[y*cols+x] = true
					g.member[y*cols+x+1] = true
				}
			}
			if y+1 < rows {
				if f.grid.Solid(x-1, y) || f.grid.Solid(x, y) {
					w := minWeight(
						f.pixelWeight(color, weighted, x-1, y),
						f.pixelWeight(color, weighted, x, y),
					)
					g.vert[y*cols+x] = w
					g.member[y*cols+x] = true
					g.member[(y+1)*cols+x] = true
				}
			}
		}
	}

	return g
}

func minWeight(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// index maps a corner to its row-major index.
func (g *vertexGraph) index(v Vertex) int {
	return v.Y*g.cols + v.X
}

// vertex converts a row-major index back to a corner coordinate.
func (g *vertexGraph) vertex(idx int) Vertex {
	return Vertex{X: idx % g.cols, Y: idx / g.cols}
}

// inBounds reports whether v is a corner of the grid at all.
func (g *vertexGraph) inBounds(v Vertex) bool {
	return v.X >= 0 && v.X < g.cols && v.Y >= 0 && v.Y < g.rows
}

// contains reports whether v participates in the graph (has an edge).
func (g *vertexGraph) contains(v Vertex) bool {
	return g.inBounds(v) && g.member[g.index(v)]
}

// neighborOffsets is the fixed corner-neighbor examination order: E, S, W, N.
// Keeping it fixed makes breadth-first parents, and therefore reconstructed
// routes, reproducible.
var neighborOffsets = [4]struct{ dx, dy int }{
	{1, 0}, {0, 1}, {-1, 0}, {0, -1},
}

// edgeWeight returns the weight of the edge from corner idx toward offset
// k, or 0 when the edge is absent.
func (g *vertexGraph) edgeWeight(idx, k int) int64 {
	x, y := idx%g.cols, idx/g.cols
	switch k {
	case 0: // east
		if x+1 < g.cols {
			return g.horiz[y*(g.cols-1)+x]
		}
	case 1: // south
		if y+1 < g.rows {
			return g.vert[y*g.cols+x]
		}
	case 2: // west
		if x-1 >= 0 {
			return g.horiz[y*(g.cols-1)+x-1]
		}
	case 3: // north
		if y-1 >= 0 {
			return g.vert[(y-1)*g.cols+x]
		}
	}
	return 0
}

// neighborIndex returns the corner index reached from idx via offset k.
// Callers must have checked edge existence first.
func (g *vertexGraph) neighborIndex(idx, k int) int {
	d := neighborOffsets[k]
	return idx + d.dy*g.cols + d.dx
}
