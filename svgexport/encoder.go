// Package svgexport serializes ordered partitions into an annotated SVG
// document for embroidery-machine tooling.
//
// The geometry and machine-metadata attributes are bit-exact and stable
// across runs: downstream tooling parses specific attribute names and
// numeric formatting, and golden-file diffs must stay quiet. That is why
// the writer emits attributes in a fixed order by hand instead of going
// through encoding/xml, which owns attribute ordering and escaping.
package svgexport

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/pixstitch/shape"
)

// Encode writes the complete SVG document to w. Output is byte-identical
// for identical input. An unknown shape variant aborts with
// ErrUnknownShape; write failures propagate unmodified. Everything goes
// through one buffered writer flushed at the end, so a failed encode does
// not leave a syntactically complete document behind.
func (d *Document) Encode(w io.Writer) error {
	if len(d.Layers) == 0 {
		return ErrNoLayers
	}

	bw := bufio.NewWriter(w)
	e := &encoder{w: bw}

	e.header(d)
	for idx := range d.Layers {
		if err := e.layer(idx, &d.Layers[idx]); err != nil {
			return err
		}
	}
	e.line("</svg>")

	return bw.Flush()
}

// encoder tracks the output writer; bufio retains the first write error
// and reports it from Flush, so string emission needs no per-call checks.
type encoder struct {
	w *bufio.Writer
}

func (e *encoder) str(s string)  { _, _ = e.w.WriteString(s) }
func (e *encoder) line(s string) { e.str(s); e.str("\n") }

// attr writes one space-terminated attribute.
func (e *encoder) attr(name, value string) {
	e.str(name)
	e.str(`="`)
	e.str(value)
	e.str(`" `)
}

// fnum renders a float the same way in every run: shortest representation
// that round-trips, plain notation for this value range.
func fnum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// header emits the xml declaration, the svg element sized from the hoop
// (inches rounded to whole millimeters), the title, the pixel-size pattern
// grid, and the defs block.
func (e *encoder) header(d *Document) {
	widthMM := int(math.Round(d.HoopSize.X * InchesToMM))
	heightMM := int(math.Round(d.HoopSize.Y * InchesToMM))

	e.line(`<?xml version="1.0" encoding="UTF-8" standalone="no"?>`)
	e.line("<svg")
	e.line(`  width="` + strconv.Itoa(widthMM) + `mm"`)
	e.line(`  height="` + strconv.Itoa(heightMM) + `mm"`)
	e.line(`  viewBox="0 0 ` + strconv.Itoa(widthMM) + " " + strconv.Itoa(heightMM) + `"`)
	e.line(`  version="1.1"`)
	e.line(`  id="svg8"`)
	e.line(`  xmlns="http://www.w3.org/2000/svg"`)
	e.line(`  xmlns:svg="http://www.w3.org/2000/svg"`)
	e.line(`  xmlns:inkstitch="http://inkstitch.org/namespace"`)
	e.line(">")
	e.line(`<title id="title1023">` + xmlEscape(d.Title) + "</title>")
	e.line("<sodipodi:namedview")
	e.line(`  inkscape:document-units="mm"`)
	e.line(`  inkscape:pagecheckerboard="true"`)
	e.line(`  showgrid="true"`)
	e.line(">")
	e.line("<inkscape:grid")
	e.line(`  id="grid1"`)
	e.line(`  units="mm"`)
	e.line(`  originx="0"`)
	e.line(`  originy="0"`)
	e.line(`  spacingx="` + fnum(d.Layers[0].PixelSize.X) + `"`)
	e.line(`  spacingy="` + fnum(d.Layers[0].PixelSize.Y) + `"`)
	e.line(`  enabled="true"`)
	e.line(`  visible="true"`)
	e.line("/>")
	e.line("</sodipodi:namedview>")
	e.line("<defs")
	e.line(`  id="defs1"`)
	e.line("/>")
}

// layer emits one named group carrying the translate/rotate/scale
// transform, then each partition as a nested group.
func (e *encoder) layer(idx int, l *Layer) error {
	anchorX := float64(l.ImageWidth) * l.PixelSize.X / 2
	anchorY := float64(l.ImageHeight) * l.PixelSize.Y / 2

	e.line(`<g id="` + xmlEscape(l.Name) + `" transform="` +
		"translate(" + fnum(l.Position.X) + " " + fnum(l.Position.Y) + ") " +
		"rotate(" + fnum(l.Rotation) + " " + fnum(anchorX) + " " + fnum(anchorY) + ") " +
		"scale(" + fnum(l.Scale.X) + " " + fnum(l.Scale.Y) + `)">`)

	for pi := range l.Partitions {
		p := &l.Partitions[pi]
		id := "partition_" + strconv.Itoa(idx) + "_" + strings.ReplaceAll(p.Name, "#", "")
		e.line(`<g id="` + id + `">`)
		for si, s := range p.Shapes {
			switch v := s.(type) {
			case shape.Rect:
				e.rect(idx, l, v, p.Color.Hex())
			case shape.Path:
				e.path(idx, pi, si, l, v, p.Color.Hex())
			default:
				return ErrUnknownShape
			}
		}
		e.line("</g>")
	}
	e.line("</g>")

	return nil
}

// rect emits one fill cell. The stitch angle alternates by checkerboard
// parity of the pixel coordinate; the minimum jump-stitch length is
// omitted entirely when not positive.
func (e *encoder) rect(layerIdx int, l *Layer, r shape.Rect, color string) {
	angle := l.Embroidery.OddPixelAngleDegrees
	if (r.X+r.Y)%2 == 0 {
		angle = l.Embroidery.EvenPixelAngleDegrees
	}

	e.str("<rect ")
	e.attr("x", fnum(float64(r.X)*l.PixelSize.X))
	e.attr("y", fnum(float64(r.Y)*l.PixelSize.Y))
	e.attr("width", fnum(l.PixelSize.X))
	e.attr("height", fnum(l.PixelSize.Y))
	e.attr("fill", color)
	e.attr("id", "pixel_"+strconv.Itoa(layerIdx)+"_"+strconv.Itoa(r.X)+"_"+strconv.Itoa(r.Y)+"_"+strconv.Itoa(angle))
	e.attr("style", "display:inline;stroke:none")
	e.attr("inkstitch:fill_method", l.Embroidery.FillMethod)
	e.attr("inkstitch:angle", strconv.Itoa(angle))
	e.attr("inkstitch:max_stitch_length_mm", fnum(l.Embroidery.MaxStitchLengthMM))
	e.attr("inkstitch:pull_compensation_mm", fnum(l.Embroidery.PullCompensationMM))
	e.attr("inkstitch:fill_underlay", strconv.FormatBool(l.Embroidery.FillUnderlay))
	if l.Embroidery.MinJumpStitchLengthMM > 0.0 {
		e.attr("inkstitch:min_jump_stitch_length_mm", fnum(l.Embroidery.MinJumpStitchLengthMM))
	}
	e.line("/>")
}

// path emits one connector polyline with stroke-only styling and
// running-stitch metadata.
func (e *encoder) path(layerIdx, partIdx, shapeIdx int, l *Layer, p shape.Path, color string) {
	var d strings.Builder
	for i, pt := range p.Points {
		if i == 0 {
			d.WriteString("M ")
		} else {
			d.WriteString(" L ")
		}
		d.WriteString(fnum(float64(pt.X) * l.PixelSize.X))
		d.WriteString(" ")
		d.WriteString(fnum(float64(pt.Y) * l.PixelSize.Y))
	}

	e.str("<path ")
	e.attr("d", d.String())
	e.attr("id", "connector_"+strconv.Itoa(layerIdx)+"_"+strconv.Itoa(partIdx)+"_"+strconv.Itoa(shapeIdx))
	e.attr("style", "fill:none;stroke:"+color+";stroke-width:0.25")
	e.attr("inkstitch:stroke_method", "running_stitch")
	e.attr("inkstitch:running_stitch_length_mm", fnum(l.Running.LengthMM))
	e.attr("inkstitch:running_stitch_tolerance_mm", fnum(l.Running.ToleranceMM))
	e.attr("inkstitch:lock_start", strconv.FormatBool(l.Running.LockStart))
	e.attr("inkstitch:lock_end", strconv.FormatBool(l.Running.LockEnd))
	e.line("/>")
}

// xmlEscape covers the five characters that may not appear raw in
// attribute or text content.
func xmlEscape(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return r.Replace(s)
}
