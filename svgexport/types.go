// Package svgexport types, parameters, and sentinel errors.
package svgexport

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pixstitch/partition"
)

// Sentinel errors for document encoding.
var (
	// ErrNoLayers indicates an export with nothing to emit.
	ErrNoLayers = errors.New("svgexport: document has no layers")
	// ErrUnknownShape indicates a shape variant the encoder does not
	// recognize. Every shape the pipeline itself produces is one of the
	// two known kinds, so this is a contract violation and fails the
	// whole encode.
	ErrUnknownShape = errors.New("svgexport: unknown shape variant")
	// ErrUnknownFillMode indicates an unparsable fill-mode name.
	ErrUnknownFillMode = errors.New("svgexport: unknown fill mode")
)

// InchesToMM is the conversion factor for hoop dimensions.
const InchesToMM = 25.4

// FillMode selects a named machine fill method with its max-stitch-length
// default.
type FillMode int

const (
	// FillAuto is the standard automatic fill.
	FillAuto FillMode = iota
	// FillSatin approximates satin columns.
	FillSatin
	// FillLegacy is the backward-compatible fill of older machines.
	FillLegacy
)

// Method returns the machine fill method name.
func (m FillMode) Method() string {
	switch m {
	case FillSatin:
		return "satin_column"
	case FillLegacy:
		return "legacy_fill"
	default:
		return "auto_fill"
	}
}

// MaxStitchLengthMM returns the mode's default maximum stitch length.
func (m FillMode) MaxStitchLengthMM() float64 {
	if m == FillSatin {
		return 100.0
	}
	return 1000.0
}

// ParseFillMode maps a user-facing mode name to a FillMode.
func ParseFillMode(s string) (FillMode, error) {
	switch s {
	case "auto":
		return FillAuto, nil
	case "satin":
		return FillSatin, nil
	case "legacy":
		return FillLegacy, nil
	}
	return FillAuto, fmt.Errorf("%w: %q", ErrUnknownFillMode, s)
}

// EmbroideryParams are the per-layer machine parameters applied to every
// fill cell.
type EmbroideryParams struct {
	PullCompensationMM    float64
	MaxStitchLengthMM     float64
	FillMethod            string
	OddPixelAngleDegrees  int
	EvenPixelAngleDegrees int
	// MinJumpStitchLengthMM is omitted from the output entirely when not
	// positive, for backward compatibility with documents that never set
	// it.
	MinJumpStitchLengthMM float64
	FillUnderlay          bool
}

// DefaultEmbroideryParams returns the parameters for one fill mode:
// no pull compensation, the mode's stitch-length default, angles 90/0 for
// even/odd checkerboard parity, underlay on, no minimum jump length.
func DefaultEmbroideryParams(mode FillMode) EmbroideryParams {
	return EmbroideryParams{
		PullCompensationMM:    0.0,
		MaxStitchLengthMM:     mode.MaxStitchLengthMM(),
		FillMethod:            mode.Method(),
		OddPixelAngleDegrees:  0,
		EvenPixelAngleDegrees: 90,
		MinJumpStitchLengthMM: 0.0,
		FillUnderlay:          true,
	}
}

// RunningStitchParams style the connector polylines.
type RunningStitchParams struct {
	LengthMM    float64
	ToleranceMM float64
	LockStart   bool
	LockEnd     bool
}

// DefaultRunningStitchParams returns the connector defaults:
// 2.5mm stitches, 0.2mm tolerance, locked at both ends.
func DefaultRunningStitchParams() RunningStitchParams {
	return RunningStitchParams{
		LengthMM:    2.5,
		ToleranceMM: 0.2,
		LockStart:   true,
		LockEnd:     true,
	}
}

// Vec2 is a 2D value in document units.
type Vec2 struct {
	X, Y float64
}

// Layer is one named group of partitions with physical placement.
// All physical-unit and machine parameters arrive here by value; the
// encoder reads no ambient state.
type Layer struct {
	Name string
	// ImageWidth and ImageHeight are the source raster dimensions in
	// pixels; the rotation anchor is the layer's geometric center derived
	// from them.
	ImageWidth, ImageHeight int
	// PixelSize is the physical size of one pixel, in millimeters.
	PixelSize Vec2
	// Position translates the layer within the hoop, in millimeters.
	Position Vec2
	// Rotation is applied about the layer's center, in degrees.
	Rotation float64
	// Scale multiplies the layer after rotation; (1,1) is natural size.
	Scale Vec2
	Embroidery EmbroideryParams
	Running    RunningStitchParams
	Partitions []partition.Partition
}

// Document is a complete export: hoop physical size plus ordered layers.
type Document struct {
	// HoopSize is the hoop width and height in inches.
	HoopSize Vec2
	// Title is the document title element text.
	Title  string
	Layers []Layer
}
