package partition

import (
	"fmt"

	"github.com/katalvlaran/pixstitch/colorgraph"
	"github.com/katalvlaran/pixstitch/pathfinder"
	"github.com/katalvlaran/pixstitch/raster"
	"github.com/katalvlaran/pixstitch/shape"
)

// Orderer merges every connected component of each color into continuous
// stitch paths, bridging gaps with connector routes from a
// pathfinder.Finder.
type Orderer struct {
	grid   *raster.Grid
	graphs map[raster.Color]*colorgraph.Graph
	finder *pathfinder.Finder
	opts   Options
}

// OrderResult holds the produced partitions plus the jump-stitch
// diagnostic summed over all of them.
type OrderResult struct {
	Partitions   []Partition
	JumpStitches int
}

// NewOrderer creates an Orderer over grid and its per-color adjacency
// graphs. finder supplies connector routes. Returns ErrNilGrid or
// ErrNilFinder for invalid input.
func NewOrderer(grid *raster.Grid, graphs map[raster.Color]*colorgraph.Graph, finder *pathfinder.Finder, opts ...Option) (*Orderer, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if finder == nil {
		return nil, ErrNilFinder
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Orderer{
		grid:   grid,
		graphs: graphs,
		finder: finder,
		opts:   o,
	}, nil
}

// Order produces the partitions for every color of the grid, in the
// colors' first-appearance order. Each pixel of a color appears exactly
// once as a Rect across the color's partitions, regardless of grouping
// mode.
func (o *Orderer) Order() (*OrderResult, error) {
	res := &OrderResult{}
	for _, color := range o.grid.Colors() {
		g, ok := o.graphs[color]
		if !ok || g.Len() == 0 {
			continue
		}
		switch o.opts.Grouping {
		case GroupByComponent:
			for idx, comp := range g.Components() {
				order := o.orderComponent(g, comp)
				res.Partitions = append(res.Partitions, Partition{
					Name:   fmt.Sprintf("%s_%d", color.Hex(), idx),
					Color:  color,
					Shapes: o.emitShapes(g, order),
				})
			}
		default: // GroupByColor
			var order []raster.Coord
			for _, comp := range g.Components() {
				order = append(order, o.orderComponent(g, comp)...)
			}
			res.Partitions = append(res.Partitions, Partition{
				Name:   color.Hex(),
				Color:  color,
				Shapes: o.emitShapes(g, order),
			})
		}
	}
	for i := range res.Partitions {
		res.JumpStitches += res.Partitions[i].JumpStitches()
	}

	return res, nil
}

// orderComponent produces the linear visiting order of one connected
// component: a complete self-avoiding walk when the component is below the
// SAW gate and such a walk exists, otherwise the iterative depth-first
// order.
func (o *Orderer) orderComponent(g *colorgraph.Graph, comp []raster.Coord) []raster.Coord {
	if len(comp) == 1 {
		return comp
	}
	start := g.StartNode(comp)
	if len(comp) < o.opts.SAWThreshold {
		if walk, complete := sawWithBacktracking(g, start, len(comp)); complete {
			return walk
		}
	}

	return dfsOrder(g, start, len(comp))
}

// dfsOrder is the stack-based depth-first traversal of the component
// containing start. Neighbors are pushed in the adjacency list's fixed
// direction order, so the last-listed direction is explored first; the
// order is reproducible for a given image and rotation.
func dfsOrder(g *colorgraph.Graph, start raster.Coord, size int) []raster.Coord {
	visited := make(map[raster.Coord]bool, size)
	order := make([]raster.Coord, 0, size)
	stack := []raster.Coord{start}

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[node] {
			continue
		}
		visited[node] = true
		order = append(order, node)
		for _, nb := range g.Neighbors(node) {
			if !visited[nb] {
				stack = append(stack, nb)
			}
		}
	}

	return order
}

// sawWithBacktracking searches for a self-avoiding walk covering the whole
// component (size pixels) starting at start: try each unvisited neighbor
// in direction order, backtrack on dead ends. Returns (walk, true) when a
// complete walk exists; otherwise (longest partial walk found, false).
// Worst-case exponential; callers gate it by component size.
func sawWithBacktracking(g *colorgraph.Graph, start raster.Coord, size int) ([]raster.Coord, bool) {
	path := []raster.Coord{start}
	onPath := map[raster.Coord]bool{start: true}
	longest := []raster.Coord{start}

	var walk func(node raster.Coord) bool
	walk = func(node raster.Coord) bool {
		if len(path) == size {
			return true
		}
		for _, next := range g.Neighbors(node) {
			if onPath[next] {
				continue
			}
			path = append(path, next)
			onPath[next] = true
			if len(path) > len(longest) {
				longest = append(longest[:0:0], path...)
			}
			if walk(next) {
				return true
			}
			path = path[:len(path)-1]
			delete(onPath, next)
		}
		return false
	}

	if walk(start) {
		return path, true
	}

	return longest, false
}

// emitShapes walks the ordered pixel list pairwise: a Rect per pixel, and
// between non-adjacent consecutive pixels a connector Path — the minimal
// route from the pathfinder when one exists, else the direct rectilinear
// fallback.
func (o *Orderer) emitShapes(g *colorgraph.Graph, order []raster.Coord) []shape.Shape {
	shapes := make([]shape.Shape, 0, len(order))
	for i, cur := range order {
		shapes = append(shapes, shape.Rect{X: cur.X, Y: cur.Y})
		if i+1 >= len(order) {
			break
		}
		next := order[i+1]
		if g.Adjacent(cur, next) {
			continue
		}
		shapes = append(shapes, o.connector(g.Color(), cur, next))
	}

	return shapes
}

// connector bridges two non-adjacent pixels. The route query runs between
// the pixels' top-left grid corners; the result is trimmed to the pixel
// bounds and simplified to its turning points. Unreachable targets
// (disconnected board, transparency) fall back to the direct rectilinear
// connector.
func (o *Orderer) connector(color raster.Color, from, to raster.Coord) shape.Path {
	route, err := o.finder.FindPath(
		color,
		pathfinder.Vertex{X: from.X, Y: from.Y},
		pathfinder.Vertex{X: to.X, Y: to.Y},
		o.opts.WeightedBridges,
	)
	if err != nil {
		return directConnector(from, to)
	}
	pts := pathfinder.Simplify(pathfinder.TrimToPixelBounds(route))
	if len(pts) < 2 {
		return directConnector(from, to)
	}

	return shape.Path{Points: pts}
}
