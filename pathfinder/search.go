package pathfinder

import (
	"container/heap"

	"github.com/katalvlaran/pixstitch/raster"
)

// FindPath returns the ordered corner route of minimum cost from start to
// end on the vertex grid graph for color. Unweighted mode minimizes the
// segment count via breadth-first search; weighted mode minimizes the
// summed perceptual cost via Dijkstra. Ties break toward the lowest
// row-major corner index, so repeated queries on the same graph are
// reproducible.
//
// Returns ErrVertexNotFound when either endpoint borders no pixel of the
// graph, and ErrNoRoute when no connecting path exists.
func (f *Finder) FindPath(color raster.Color, start, end Vertex, weighted bool) ([]Vertex, error) {
	g := f.graph(color, weighted)
	if !g.contains(start) || !g.contains(end) {
		return nil, ErrVertexNotFound
	}
	if start == end {
		return []Vertex{start}, nil
	}

	var prev []int32
	if weighted {
		prev = g.dijkstra(g.index(start), g.index(end))
	} else {
		prev = g.bfs(g.index(start), g.index(end))
	}
	if prev == nil {
		return nil, ErrNoRoute
	}

	return g.reconstruct(prev, g.index(end)), nil
}

// bfs runs breadth-first search from src and returns the predecessor table,
// or nil when dst was never reached. Neighbors are examined in the fixed
// E, S, W, N order, so the first-discovered parent is deterministic.
// Complexity: O(V + E).
func (g *vertexGraph) bfs(src, dst int) []int32 {
	prev := make([]int32, g.rows*g.cols)
	for i := range prev {
		prev[i] = -1
	}
	seen := make([]bool, g.rows*g.cols)
	seen[src] = true

	queue := []int{src}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == dst {
			return prev
		}
		for k := 0; k < 4; k++ {
			if g.edgeWeight(u, k) == 0 {
				continue
			}
			v := g.neighborIndex(u, k)
			if seen[v] {
				continue
			}
			seen[v] = true
			prev[v] = int32(u)
			queue = append(queue, v)
		}
	}

	return nil
}

// pqItem is one heap entry: a corner index with its tentative distance.
type pqItem struct {
	idx  int
	dist int64
}

// cornerPQ is a min-heap ordered by (dist, idx); the index component is the
// deterministic tie-break.
type cornerPQ []pqItem

func (pq cornerPQ) Len() int { return len(pq) }
func (pq cornerPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].idx < pq[j].idx
}
func (pq cornerPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *cornerPQ) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }
func (pq *cornerPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// dijkstra runs Dijkstra's algorithm from src with a lazy decrease-key
// strategy (duplicates pushed, stale entries skipped) and returns the
// predecessor table, or nil when dst is unreachable. Edges at MaxWeight or
// above are treated as impassable walls.
// Complexity: O((V + E) log V).
func (g *vertexGraph) dijkstra(src, dst int) []int32 {
	n := g.rows * g.cols
	dist := make([]int64, n)
	prev := make([]int32, n)
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = MaxWeight
		prev[i] = -1
	}
	dist[src] = 0

	pq := cornerPQ{{idx: src, dist: 0}}
	heap.Init(&pq)

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(pqItem)
		u := item.idx
		if visited[u] {
			continue // stale heap entry
		}
		visited[u] = true
		if u == dst {
			return prev
		}
		for k := 0; k < 4; k++ {
			w := g.edgeWeight(u, k)
			if w == 0 || w >= MaxWeight {
				continue
			}
			v := g.neighborIndex(u, k)
			nd := item.dist + w
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = int32(u)
				heap.Push(&pq, pqItem{idx: v, dist: nd})
			}
		}
	}

	return nil
}

// reconstruct rebuilds the route ending at dst from a predecessor table;
// the chain terminates at the search source, whose predecessor is -1.
func (g *vertexGraph) reconstruct(prev []int32, dst int) []Vertex {
	var rev []int
	for at := dst; at != -1; at = int(prev[at]) {
		rev = append(rev, at)
	}
	out := make([]Vertex, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		out = append(out, g.vertex(rev[i]))
	}

	return out
}
