package svgexport_test

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pixstitch/partition"
	"github.com/katalvlaran/pixstitch/raster"
	"github.com/katalvlaran/pixstitch/shape"
	"github.com/katalvlaran/pixstitch/svgexport"
)

var red = raster.RGB(255, 0, 0)

// testDocument builds a one-layer document with a bridged red partition:
// Rect(0,0), connector, Rect(2,0).
func testDocument() *svgexport.Document {
	return &svgexport.Document{
		HoopSize: svgexport.Vec2{X: 4, Y: 4},
		Title:    "out.svg",
		Layers: []svgexport.Layer{{
			Name:        "layer_0",
			ImageWidth:  3,
			ImageHeight: 1,
			PixelSize:   svgexport.Vec2{X: 2.5, Y: 2.5},
			Position:    svgexport.Vec2{X: 10, Y: 20},
			Rotation:    45,
			Scale:       svgexport.Vec2{X: 1, Y: 1},
			Embroidery:  svgexport.DefaultEmbroideryParams(svgexport.FillAuto),
			Running:     svgexport.DefaultRunningStitchParams(),
			Partitions: []partition.Partition{{
				Name:  "#ff0000",
				Color: red,
				Shapes: []shape.Shape{
					shape.Rect{X: 0, Y: 0},
					shape.Path{Points: []shape.Point{{X: 1, Y: 0}, {X: 2, Y: 0}}},
					shape.Rect{X: 2, Y: 0},
				},
			}},
		}},
	}
}

func encode(t *testing.T, d *svgexport.Document) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, d.Encode(&buf))
	return buf.String()
}

// TestEncode_Header pins the hoop-derived dimensions: 4 inches is 101.6mm,
// rounded to 102.
func TestEncode_Header(t *testing.T) {
	out := encode(t, testDocument())

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8" standalone="no"?>`))
	assert.Contains(t, out, `width="102mm"`)
	assert.Contains(t, out, `height="102mm"`)
	assert.Contains(t, out, `viewBox="0 0 102 102"`)
	assert.Contains(t, out, `<title id="title1023">out.svg</title>`)
	assert.Contains(t, out, `spacingx="2.5"`)
	assert.Contains(t, out, `spacingy="2.5"`)
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
}

// TestEncode_LayerTransform pins the translate/rotate/scale group with the
// rotation anchored at the layer center.
func TestEncode_LayerTransform(t *testing.T) {
	out := encode(t, testDocument())

	// Anchor: 3*2.5/2 = 3.75 horizontally, 1*2.5/2 = 1.25 vertically.
	assert.Contains(t, out,
		`<g id="layer_0" transform="translate(10 20) rotate(45 3.75 1.25) scale(1 1)">`)
	assert.Contains(t, out, `<g id="partition_0_ff0000">`)
}

// TestEncode_Rect pins the full fill-cell attribute sequence, including
// the checkerboard angle in the id.
func TestEncode_Rect(t *testing.T) {
	out := encode(t, testDocument())

	assert.Contains(t, out, `<rect x="0" y="0" width="2.5" height="2.5" fill="#ff0000" `+
		`id="pixel_0_0_0_90" style="display:inline;stroke:none" `+
		`inkstitch:fill_method="auto_fill" inkstitch:angle="90" `+
		`inkstitch:max_stitch_length_mm="1000" inkstitch:pull_compensation_mm="0" `+
		`inkstitch:fill_underlay="true" />`)

	// (2+0) is even as well; the odd angle appears for pixel parity 1.
	assert.Contains(t, out, `id="pixel_0_2_0_90"`)
	assert.NotContains(t, out, "min_jump_stitch_length_mm",
		"zero minimum jump length must be omitted")
}

// TestEncode_RectOddAngle checks the odd-parity angle and the optional
// minimum jump-stitch attribute.
func TestEncode_RectOddAngle(t *testing.T) {
	d := testDocument()
	d.Layers[0].Embroidery.MinJumpStitchLengthMM = 1.5
	d.Layers[0].Partitions[0].Shapes = []shape.Shape{shape.Rect{X: 1, Y: 0}}
	out := encode(t, d)

	assert.Contains(t, out, `id="pixel_0_1_0_0"`)
	assert.Contains(t, out, `inkstitch:angle="0"`)
	assert.Contains(t, out, `inkstitch:min_jump_stitch_length_mm="1.5"`)
}

// TestEncode_Path pins the connector polyline and its running-stitch
// metadata. Point coordinates scale by the pixel size.
func TestEncode_Path(t *testing.T) {
	out := encode(t, testDocument())

	assert.Contains(t, out, `<path d="M 2.5 0 L 5 0" id="connector_0_0_1" `+
		`style="fill:none;stroke:#ff0000;stroke-width:0.25" `+
		`inkstitch:stroke_method="running_stitch" `+
		`inkstitch:running_stitch_length_mm="2.5" `+
		`inkstitch:running_stitch_tolerance_mm="0.2" `+
		`inkstitch:lock_start="true" inkstitch:lock_end="true" />`)
}

// TestEncode_GeometryRoundTrip parses the emitted document back and checks
// that the shape geometry survives unchanged (scaled by the pixel size).
func TestEncode_GeometryRoundTrip(t *testing.T) {
	d := testDocument()
	out := encode(t, d)

	var rects [][2]float64
	for _, m := range regexp.MustCompile(`<rect x="([0-9.]+)" y="([0-9.]+)"`).FindAllStringSubmatch(out, -1) {
		x, err := strconv.ParseFloat(m[1], 64)
		require.NoError(t, err)
		y, err := strconv.ParseFloat(m[2], 64)
		require.NoError(t, err)
		rects = append(rects, [2]float64{x, y})
	}
	var paths []string
	for _, m := range regexp.MustCompile(`<path d="([^"]+)"`).FindAllStringSubmatch(out, -1) {
		paths = append(paths, m[1])
	}

	ps := d.Layers[0].PixelSize
	var wantRects [][2]float64
	var wantPaths []string
	for _, s := range d.Layers[0].Partitions[0].Shapes {
		switch v := s.(type) {
		case shape.Rect:
			wantRects = append(wantRects, [2]float64{float64(v.X) * ps.X, float64(v.Y) * ps.Y})
		case shape.Path:
			var b strings.Builder
			for i, pt := range v.Points {
				if i == 0 {
					b.WriteString("M ")
				} else {
					b.WriteString(" L ")
				}
				fmt.Fprintf(&b, "%g %g", float64(pt.X)*ps.X, float64(pt.Y)*ps.Y)
			}
			wantPaths = append(wantPaths, b.String())
		}
	}
	assert.Equal(t, wantRects, rects)
	assert.Equal(t, wantPaths, paths)
}

// TestEncode_Deterministic re-encodes the same document and compares bytes.
func TestEncode_Deterministic(t *testing.T) {
	d := testDocument()
	first := encode(t, d)
	second := encode(t, d)
	assert.Equal(t, first, second)
}

func TestEncode_Errors(t *testing.T) {
	var buf bytes.Buffer

	empty := &svgexport.Document{HoopSize: svgexport.Vec2{X: 4, Y: 4}}
	assert.ErrorIs(t, empty.Encode(&buf), svgexport.ErrNoLayers)

	d := testDocument()
	d.Layers[0].Partitions[0].Shapes = append(d.Layers[0].Partitions[0].Shapes, nil)
	assert.ErrorIs(t, d.Encode(&buf), svgexport.ErrUnknownShape)
}

// TestEncode_TitleEscaped guards attribute/text escaping.
func TestEncode_TitleEscaped(t *testing.T) {
	d := testDocument()
	d.Title = `a<b&"c"`
	out := encode(t, d)
	assert.Contains(t, out, "<title id=\"title1023\">a&lt;b&amp;&quot;c&quot;</title>")
}

func TestParseFillMode(t *testing.T) {
	cases := []struct {
		in     string
		want   svgexport.FillMode
		method string
		maxLen float64
	}{
		{"auto", svgexport.FillAuto, "auto_fill", 1000},
		{"satin", svgexport.FillSatin, "satin_column", 100},
		{"legacy", svgexport.FillLegacy, "legacy_fill", 1000},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			mode, err := svgexport.ParseFillMode(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, mode)
			assert.Equal(t, tc.method, mode.Method())
			assert.Equal(t, tc.maxLen, mode.MaxStitchLengthMM())
		})
	}

	_, err := svgexport.ParseFillMode("zigzag")
	assert.ErrorIs(t, err, svgexport.ErrUnknownFillMode)
}

func TestDefaultEmbroideryParams(t *testing.T) {
	p := svgexport.DefaultEmbroideryParams(svgexport.FillSatin)
	assert.Equal(t, "satin_column", p.FillMethod)
	assert.Equal(t, 100.0, p.MaxStitchLengthMM)
	assert.Equal(t, 90, p.EvenPixelAngleDegrees)
	assert.Equal(t, 0, p.OddPixelAngleDegrees)
	assert.True(t, p.FillUnderlay)
	assert.Zero(t, p.MinJumpStitchLengthMM)
}
