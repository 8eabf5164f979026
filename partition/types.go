// Package partition types, options, and sentinel errors.
package partition

import (
	"errors"
)

// Sentinel errors for Orderer construction.
var (
	// ErrNilGrid indicates a nil raster grid.
	ErrNilGrid = errors.New("partition: grid is nil")
	// ErrNilFinder indicates a nil pathfinder.
	ErrNilFinder = errors.New("partition: finder is nil")
)

// DefaultSAWThreshold is the component size below which the bounded
// self-avoiding-walk search is attempted before falling back to plain
// depth-first ordering.
const DefaultSAWThreshold = 40

// Grouping selects how partitions are cut.
type Grouping int

const (
	// GroupByColor produces one partition per color; disconnected
	// components of the color are bridged with connector paths.
	GroupByColor Grouping = iota
	// GroupByComponent produces one partition per connected component,
	// named "#rrggbb_idx".
	GroupByComponent
)

// Option configures an Orderer via functional arguments.
type Option func(*Options)

// Options holds tunable ordering parameters.
type Options struct {
	// SAWThreshold gates the self-avoiding-walk search: components with
	// fewer pixels attempt it, components at or above always use DFS
	// (the SAW search backtracks and is worst-case exponential).
	SAWThreshold int

	// WeightedBridges selects perceptual-cost routing for connector
	// bridges instead of fewest-segments routing.
	WeightedBridges bool

	// Grouping selects per-color or per-component partitions.
	Grouping Grouping
}

// DefaultOptions returns Options with the SAW gate at DefaultSAWThreshold,
// unweighted bridges, and one partition per color.
func DefaultOptions() Options {
	return Options{
		SAWThreshold:    DefaultSAWThreshold,
		WeightedBridges: false,
		Grouping:        GroupByColor,
	}
}

// WithSAWThreshold sets the self-avoiding-walk size gate.
// Values below zero are treated as zero (SAW disabled).
func WithSAWThreshold(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.SAWThreshold = n
	}
}

// WithWeightedBridges toggles perceptual-cost connector routing.
func WithWeightedBridges(enabled bool) Option {
	return func(o *Options) { o.WeightedBridges = enabled }
}

// WithGrouping selects the partition grouping mode.
func WithGrouping(g Grouping) Option {
	return func(o *Options) { o.Grouping = g }
}
