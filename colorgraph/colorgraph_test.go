package colorgraph_test

import (
	"testing"

	"github.com/katalvlaran/pixstitch/colorgraph"
	"github.com/katalvlaran/pixstitch/raster"
)

var (
	red  = raster.RGB(255, 0, 0)
	blue = raster.RGB(0, 0, 255)
)

func mustGrid(t *testing.T, cells [][]raster.Color) *raster.Grid {
	t.Helper()
	g, err := raster.FromCells(cells)
	if err != nil {
		t.Fatalf("FromCells error: %v", err)
	}
	return g
}

// TestBuild_NeighborOrder pins the canonical NW..W examination order for the
// center pixel of a full 3x3 block.
func TestBuild_NeighborOrder(t *testing.T) {
	grid := mustGrid(t, [][]raster.Color{
		{red, red, red},
		{red, red, red},
		{red, red, red},
	})
	g := colorgraph.Build(grid)[red]
	if g == nil {
		t.Fatal("no graph built for red")
	}

	want := []raster.Coord{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
		{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2},
		{X: 0, Y: 2}, {X: 0, Y: 1},
	}
	got := g.Neighbors(raster.Coord{X: 1, Y: 1})
	if len(got) != len(want) {
		t.Fatalf("Neighbors(center) = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Neighbors(center)[%d] = %v; want %v", i, got[i], want[i])
		}
	}
}

// TestBuild_Rotation checks that a rotation shifts the order and a negative
// rotation reverses it.
func TestBuild_Rotation(t *testing.T) {
	grid := mustGrid(t, [][]raster.Color{
		{red, red, red},
		{red, red, red},
		{red, red, red},
	})
	center := raster.Coord{X: 1, Y: 1}

	// Rotation 3 starts at E: E, SE, S, SW, W, NW, N, NE.
	g := colorgraph.Build(grid, colorgraph.WithRotation(3))[red]
	if got, want := g.Neighbors(center)[0], (raster.Coord{X: 2, Y: 1}); got != want {
		t.Errorf("rotation 3 first neighbor = %v; want %v", got, want)
	}

	// Rotation -3 rotates to E first, then reverses: NE, N, NW, W, SW, S, SE, E.
	g = colorgraph.Build(grid, colorgraph.WithRotation(-3))[red]
	if got, want := g.Neighbors(center)[0], (raster.Coord{X: 2, Y: 0}); got != want {
		t.Errorf("rotation -3 first neighbor = %v; want %v", got, want)
	}
}

// TestBuild_ColorSeparation verifies that edges never cross colors and that
// diagonal contact still connects same-colored pixels.
func TestBuild_ColorSeparation(t *testing.T) {
	grid := mustGrid(t, [][]raster.Color{
		{red, blue},
		{blue, red},
	})
	graphs := colorgraph.Build(grid)

	rg := graphs[red]
	if rg.Len() != 2 {
		t.Fatalf("red Len = %d; want 2", rg.Len())
	}
	if !rg.Adjacent(raster.Coord{X: 0, Y: 0}, raster.Coord{X: 1, Y: 1}) {
		t.Error("red diagonal pair not adjacent")
	}
	if rg.Contains(raster.Coord{X: 1, Y: 0}) {
		t.Error("red graph contains a blue pixel")
	}
	bg := graphs[blue]
	if !bg.Adjacent(raster.Coord{X: 1, Y: 0}, raster.Coord{X: 0, Y: 1}) {
		t.Error("blue diagonal pair not adjacent")
	}
}

// TestBuild_Symmetry checks the undirected-edge invariant on an uneven image.
func TestBuild_Symmetry(t *testing.T) {
	grid := mustGrid(t, [][]raster.Color{
		{red, blue, red},
		{blue, blue, blue},
		{red, raster.Empty, blue},
	})
	for _, g := range colorgraph.Build(grid) {
		for _, u := range g.Nodes() {
			for _, v := range g.Neighbors(u) {
				if !g.Adjacent(v, u) {
					t.Errorf("color %v: edge %v->%v has no reverse", g.Color(), u, v)
				}
			}
		}
	}
}

// TestComponents covers a split color and the single-component case.
func TestComponents(t *testing.T) {
	grid := mustGrid(t, [][]raster.Color{
		{red, blue, red},
		{blue, blue, blue},
	})
	graphs := colorgraph.Build(grid)

	rc := graphs[red].Components()
	if len(rc) != 2 {
		t.Fatalf("red components = %d; want 2", len(rc))
	}
	if len(rc[0]) != 1 || rc[0][0] != (raster.Coord{X: 0, Y: 0}) {
		t.Errorf("red component 0 = %v; want [(0,0)]", rc[0])
	}
	if len(rc[1]) != 1 || rc[1][0] != (raster.Coord{X: 2, Y: 0}) {
		t.Errorf("red component 1 = %v; want [(2,0)]", rc[1])
	}

	bc := graphs[blue].Components()
	if len(bc) != 1 || len(bc[0]) != 4 {
		t.Fatalf("blue components = %v; want one of size 4", bc)
	}
}

// TestStartNode prefers a degree-1 dead end, falling back to the member
// nearest the origin.
func TestStartNode(t *testing.T) {
	// A 1x3 strip: both ends have degree 1; the first in component order wins.
	strip := mustGrid(t, [][]raster.Color{{red, red, red}})
	sg := colorgraph.Build(strip)[red]
	comp := sg.Components()[0]
	if got, want := sg.StartNode(comp), (raster.Coord{X: 0, Y: 0}); got != want {
		t.Errorf("strip StartNode = %v; want %v", got, want)
	}

	// A 2x2 block has no degree-1 member; the origin-nearest one wins.
	block := mustGrid(t, [][]raster.Color{
		{red, red},
		{red, red},
	})
	bg := colorgraph.Build(block)[red]
	if got, want := bg.StartNode(bg.Components()[0]), (raster.Coord{X: 0, Y: 0}); got != want {
		t.Errorf("block StartNode = %v; want %v", got, want)
	}
}
