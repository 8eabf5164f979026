// Package pathfinder computes minimal connector routes over the vertex
// grid graph of a raster image: the graph whose nodes are pixel-corner
// points and whose edges run alongside at least one solid pixel.
//
// What:
//
//   - Finder lazily builds and caches one vertex grid graph per
//     (color, weighting) pair.
//   - FindPath answers shortest-route queries between two grid corners:
//     breadth-first search in unweighted mode (fewest segments), Dijkstra
//     in weighted mode (minimum perceptual-color cost).
//   - TrimToPixelBounds removes redundant corners belonging to the start
//     or end pixel, leaving the minimal segment that actually exits the
//     start pixel and enters the end pixel.
//   - Simplify reduces a corner-by-corner route to its direction-change
//     points.
//
// Why:
//
//   - Partition ordering must bridge non-adjacent pixels (including
//     disconnected components of a color) with the cheapest rectilinear
//     connector, so jump stitches run along existing fabric of compatible
//     color instead of cutting across open ground.
//
// Weighting:
//
//   - Unweighted edges cost 1. Weighted edges cost the minimum over the
//     two bordering pixels of WeightFunc(graphColor, pixelColor); the
//     default is 1 + 0.1·deltaE² truncated to an integer, with deltaE the
//     CIEDE2000 perceptual difference. An empty bordering pixel
//     contributes MaxWeight, which dominates any real route.
//
// Complexity:
//
//   - Graph build: O(W×H) per (color, weighting) key, computed once.
//   - FindPath: O(V + E) unweighted, O((V + E) log V) weighted,
//     with V = (W+1)×(H+1) corners.
//
// Errors:
//
//   - ErrVertexNotFound: an endpoint borders no pixel of the graph.
//   - ErrNoRoute: the endpoints are not connected.
//
// Both are recoverable: callers fall back to a direct rectilinear
// connector.
package pathfinder
