package pathfinder

import (
	"github.com/katalvlaran/pixstitch/shape"
)

// pixelCorners returns the four corners of the pixel whose top-left corner
// is v.
func pixelCorners(v Vertex) [4]Vertex {
	return [4]Vertex{
		{v.X, v.Y},
		{v.X + 1, v.Y},
		{v.X, v.Y + 1},
		{v.X + 1, v.Y + 1},
	}
}

func inCorners(corners [4]Vertex, v Vertex) bool {
	for _, c := range corners {
		if c == v {
			return true
		}
	}
	return false
}

// TrimToPixelBounds trims a route whose endpoints may include several
// corners of the same start or end pixel: leading corners belonging
// entirely to the start pixel and trailing corners belonging to the end
// pixel are dropped, leaving the minimal segment that actually exits the
// start pixel and enters the end pixel. The start and end pixels are the
// ones whose top-left corners are the route's first and last vertices.
//
// When trimming would invert the range — the degenerate adjacent-pixel
// case — the original route is returned unmodified, or collapsed to a
// single point when both endpoints coincide.
func TrimToPixelBounds(route []Vertex) []Vertex {
	if len(route) < 2 {
		return route
	}

	startCorners := pixelCorners(route[0])
	endCorners := pixelCorners(route[len(route)-1])

	// Last leading vertex still inside the start pixel: the exit point.
	startIdx := 0
	for i, v := range route {
		if inCorners(startCorners, v) {
			startIdx = i
		} else {
			break
		}
	}

	// First trailing vertex inside the end pixel: the entry point.
	endIdx := len(route) - 1
	for i := len(route) - 1; i >= 0; i-- {
		if inCorners(endCorners, route[i]) {
			endIdx = i
		} else {
			break
		}
	}

	if startIdx >= endIdx {
		if route[0] == route[len(route)-1] {
			return []Vertex{route[0]}
		}
		return route
	}

	return route[startIdx : endIdx+1]
}

// Simplify reduces a corner-by-corner route to its direction-change points:
// the start, the end, and every vertex where the incoming and outgoing step
// vectors differ. Simplify is idempotent.
func Simplify(route []Vertex) []shape.Point {
	if len(route) < 2 {
		out := make([]shape.Point, 0, len(route))
		for _, v := range route {
			out = append(out, shape.Point{X: v.X, Y: v.Y})
		}
		return out
	}

	out := []shape.Point{{X: route[0].X, Y: route[0].Y}}
	for i := 1; i < len(route)-1; i++ {
		dx1, dy1 := route[i].X-route[i-1].X, route[i].Y-route[i-1].Y
		dx2, dy2 := route[i+1].X-route[i].X, route[i+1].Y-route[i].Y
		if dx1 != dx2 || dy1 != dy2 {
			out = append(out, shape.Point{X: route[i].X, Y: route[i].Y})
		}
	}
	out = append(out, shape.Point{X: route[len(route)-1].X, Y: route[len(route)-1].Y})

	return out
}
