package colorgraph

import (
	"github.com/katalvlaran/pixstitch/raster"
)

// Components finds the maximal connected subsets of the graph.
// Every pixel belongs to exactly one component; components are disjoint by
// construction. The sweep starts new components in node insertion order and
// collects members breadth-first, so the result is deterministic for a
// given image.
//
// Time:   O(V + E).
// Memory: O(V) for seen flags and output.
func (g *Graph) Components() [][]raster.Coord {
	seen := make(map[raster.Coord]bool, len(g.nodes))
	var comps [][]raster.Coord

	for _, start := range g.nodes {
		if seen[start] {
			continue
		}
		// BFS to collect the component containing start.
		queue := []raster.Coord{start}
		seen[start] = true
		var comp []raster.Coord
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, v := range g.adj[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// StartNode picks the traversal entry point for one component: the first
// member (in component order) with exactly one neighbor, or, when no such
// dead-end exists, the member closest to the grid origin by squared
// Euclidean distance.
func (g *Graph) StartNode(component []raster.Coord) raster.Coord {
	for _, c := range component {
		if len(g.adj[c]) == 1 {
			return c
		}
	}
	best := component[0]
	bestDist := best.X*best.X + best.Y*best.Y
	for _, c := range component[1:] {
		d := c.X*c.X + c.Y*c.Y
		if d < bestDist {
			bestDist = d
			best = c
		}
	}

	return best
}
