package raster_test

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/katalvlaran/pixstitch/raster"
)

// TestFromImage_Errors verifies that nil and zero-area images are rejected
// before any grid is produced.
func TestFromImage_Errors(t *testing.T) {
	cases := []struct {
		name string
		img  image.Image
		err  error
	}{
		{"Nil", nil, raster.ErrNilImage},
		{"ZeroArea", image.NewNRGBA(image.Rect(0, 0, 0, 0)), raster.ErrEmptyImage},
		{"ZeroHeight", image.NewNRGBA(image.Rect(0, 0, 3, 0)), raster.ErrEmptyImage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := raster.FromImage(tc.img)
			if !errors.Is(err, tc.err) {
				t.Errorf("FromImage error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestFromImage_AlphaRule checks that any pixel that is not fully opaque
// is Empty, and opaque pixels carry their 24-bit color key.
func TestFromImage_AlphaRule(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 255, G: 0, B: 0, A: 254})

	g, err := raster.FromImage(img)
	if err != nil {
		t.Fatalf("FromImage error: %v", err)
	}
	if got := g.At(0, 0); got != raster.RGB(255, 0, 0) {
		t.Errorf("At(0,0) = %v; want %v", got, raster.RGB(255, 0, 0))
	}
	if got := g.At(1, 0); got != raster.Empty {
		t.Errorf("At(1,0) = %v; want Empty", got)
	}
}

// TestAt_OutOfBounds checks the Empty sentinel outside the grid.
func TestAt_OutOfBounds(t *testing.T) {
	g, err := raster.FromCells([][]raster.Color{{raster.RGB(1, 2, 3)}})
	if err != nil {
		t.Fatalf("FromCells error: %v", err)
	}
	for _, xy := range [][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}} {
		if got := g.At(xy[0], xy[1]); got != raster.Empty {
			t.Errorf("At(%d,%d) = %v; want Empty", xy[0], xy[1], got)
		}
	}
}

// TestColors_Order verifies first-appearance ordering in row-major scan.
func TestColors_Order(t *testing.T) {
	red, blue := raster.RGB(255, 0, 0), raster.RGB(0, 0, 255)
	g, err := raster.FromCells([][]raster.Color{
		{red, blue, red},
		{blue, blue, blue},
	})
	if err != nil {
		t.Fatalf("FromCells error: %v", err)
	}
	colors := g.Colors()
	if len(colors) != 2 || colors[0] != red || colors[1] != blue {
		t.Errorf("Colors() = %v; want [%v %v]", colors, red, blue)
	}
}

// TestColorHex pins the canonical lowercase rendering.
func TestColorHex(t *testing.T) {
	if got := raster.RGB(255, 0, 0).Hex(); got != "#ff0000" {
		t.Errorf("Hex() = %q; want %q", got, "#ff0000")
	}
	if got := raster.RGB(0, 16, 255).Hex(); got != "#0010ff" {
		t.Errorf("Hex() = %q; want %q", got, "#0010ff")
	}
}

// TestChebyshev checks the adjacency metric used for jump-stitch counting.
func TestChebyshev(t *testing.T) {
	cases := []struct {
		a, b raster.Coord
		want int
	}{
		{raster.Coord{0, 0}, raster.Coord{0, 0}, 0},
		{raster.Coord{0, 0}, raster.Coord{1, 1}, 1},
		{raster.Coord{0, 0}, raster.Coord{2, 0}, 2},
		{raster.Coord{3, 1}, raster.Coord{0, 2}, 3},
	}
	for _, tc := range cases {
		if got := tc.a.Chebyshev(tc.b); got != tc.want {
			t.Errorf("Chebyshev(%v,%v) = %d; want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
