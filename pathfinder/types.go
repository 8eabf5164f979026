// Package pathfinder types, options, and sentinel errors.
package pathfinder

import (
	"errors"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/pixstitch/raster"
)

// Sentinel errors for route queries.
var (
	// ErrVertexNotFound indicates a query endpoint that borders no pixel
	// of the requested graph.
	ErrVertexNotFound = errors.New("pathfinder: vertex not part of graph")
	// ErrNoRoute indicates the endpoints are in the graph but disconnected.
	ErrNoRoute = errors.New("pathfinder: no route between vertices")
)

// MaxWeight is the impassable edge weight contributed by an empty bordering
// pixel. Its exact value is irrelevant as long as it dominates any real
// route; edges that would cost MaxWeight or more are never relaxed.
const MaxWeight int64 = math.MaxInt64

// Vertex is a grid-corner coordinate: x in [0, width], y in [0, height].
// Corner (x,y) is the top-left corner of pixel (x,y).
type Vertex struct {
	X, Y int
}

// WeightFunc computes the traversal cost contributed by one solid pixel
// bordering an edge of the vertex grid graph built for graphColor.
// Implementations must return a value in [1, MaxWeight).
type WeightFunc func(graphColor, pixelColor raster.Color) int64

// DefaultWeight is the perceptual weight carried over from the reference
// behavior: 1 + 0.1·deltaE² truncated to an integer, with deltaE the
// CIEDE2000 difference between the graph color and the pixel color.
// The integer truncation is kept as observed; supply a custom WeightFunc
// to change it.
func DefaultWeight(graphColor, pixelColor raster.Color) int64 {
	de := deltaE(graphColor, pixelColor)
	return int64(1 + 0.1*de*de)
}

// deltaE returns the CIEDE2000 difference between two color keys on the
// classical 0..100 scale. colorful normalizes its distances to roughly 0..1,
// so the result is scaled back up before the quadratic penalty is applied.
func deltaE(a, b raster.Color) float64 {
	ca := colorful.Color{R: float64(a.R()) / 255, G: float64(a.G()) / 255, B: float64(a.B()) / 255}
	cb := colorful.Color{R: float64(b.R()) / 255, G: float64(b.G()) / 255, B: float64(b.B()) / 255}
	return ca.DistanceCIEDE2000(cb) * 100
}

// Option configures a Finder via functional arguments.
type Option func(*Options)

// Options holds tunable Finder parameters.
type Options struct {
	// Weight computes per-pixel edge costs in weighted mode.
	Weight WeightFunc
}

// DefaultOptions returns Options using DefaultWeight.
func DefaultOptions() Options {
	return Options{Weight: DefaultWeight}
}

// WithWeightFunc replaces the weighted-mode cost function.
func WithWeightFunc(fn WeightFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Weight = fn
		}
	}
}
