// Package partition turns per-color pixel adjacency graphs into ordered
// stitch paths: sequences of unit rectangles (fill cells) interleaved with
// connector polylines (jump stitches).
//
// What:
//
//   - Partition: one continuous stitch path for one color grouping — an
//     ordered shape sequence plus a color key and a human-readable name.
//   - Orderer: produces partitions from a raster grid. Within each
//     connected component it orders pixels by a bounded self-avoiding walk
//     (small components) or an iterative depth-first traversal; across
//     components and across traversal jumps it bridges with minimal
//     connector routes from the pathfinder, falling back to a direct
//     rectilinear connector when no route exists.
//   - Walk: on-demand directional re-ordering of an existing coordinate
//     set from a user-chosen start, in one of four deterministic patterns
//     (spiral or snake, clockwise or counter-clockwise).
//
// Determinism:
//
//   - Neighbor lists come from colorgraph in fixed direction order, colors
//     are processed in first-appearance order, and the walker's rotating
//     priority scheme is purely positional, so the same image and options
//     always produce the same partitions.
//
// Expense:
//
//   - The self-avoiding-walk search backtracks and is worst-case
//     exponential in component size; it is gated by SAWThreshold rather
//     than by any timeout. Everything else is linear or near-linear.
//
// Errors:
//
//   - ErrNilGrid, ErrNilFinder: invalid Orderer construction.
//
// Route failures inside ordering are not errors: they are recovered with
// the rectilinear fallback connector.
package partition
