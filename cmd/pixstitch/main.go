// Command pixstitch converts a pixel-art image into an embroidery-ready
// annotated SVG: per-color stitch paths with connector routing, serialized
// with machine metadata.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/katalvlaran/pixstitch/colorgraph"
	"github.com/katalvlaran/pixstitch/partition"
	"github.com/katalvlaran/pixstitch/pathfinder"
	"github.com/katalvlaran/pixstitch/raster"
	"github.com/katalvlaran/pixstitch/svgexport"
)

func main() {
	input := flag.String("input", "", "Input pixel-art image (png, gif, jpeg, bmp or webp)")
	output := flag.String("output", "out.svg", "Output SVG path")
	hoopWidth := flag.Float64("hoop-width", 4.0, "Hoop width in inches")
	hoopHeight := flag.Float64("hoop-height", 4.0, "Hoop height in inches")
	pixelSize := flag.Float64("pixel-size", 2.5, "Physical pixel size in mm")
	fill := flag.String("fill", "auto", "Fill mode: auto, satin or legacy")
	sawThreshold := flag.Int("saw-threshold", partition.DefaultSAWThreshold,
		"Component size below which a complete single-stroke walk is attempted")
	rotation := flag.Int("rotation", 0, "Neighbor examination order rotation (-8..7)")
	weighted := flag.Bool("weighted-bridges", false,
		"Route connectors by perceptual color cost instead of fewest segments")
	group := flag.String("group", "color", "Partition grouping: color or component")
	flag.Parse()

	if *input == "" {
		failf("Please specify an input image")
	}

	mode, err := svgexport.ParseFillMode(*fill)
	if err != nil {
		failf("invalid -fill value: %v", err)
	}
	grouping := partition.GroupByColor
	switch *group {
	case "color":
	case "component":
		grouping = partition.GroupByComponent
	default:
		failf("invalid -group value %q: want color or component", *group)
	}

	img, err := loadImage(*input)
	if err != nil {
		failf("could not load input image: %v", err)
	}

	grid, err := raster.FromImage(img)
	if err != nil {
		failf("could not read pixels: %v", err)
	}

	graphs := colorgraph.Build(grid, colorgraph.WithRotation(*rotation))
	finder := pathfinder.New(grid)
	orderer, err := partition.NewOrderer(grid, graphs, finder,
		partition.WithSAWThreshold(*sawThreshold),
		partition.WithWeightedBridges(*weighted),
		partition.WithGrouping(grouping),
	)
	if err != nil {
		failf("could not set up ordering: %v", err)
	}

	res, err := orderer.Order()
	if err != nil {
		failf("could not order partitions: %v", err)
	}
	for i := range res.Partitions {
		p := &res.Partitions[i]
		fmt.Printf("partition %s: %d pixels, %d jump stitches\n",
			p.Name, p.PixelCount(), p.JumpStitches())
	}
	fmt.Printf("Jump stitches: %d\n", res.JumpStitches)

	doc := svgexport.Document{
		HoopSize: svgexport.Vec2{X: *hoopWidth, Y: *hoopHeight},
		Title:    filepath.Base(*output),
		Layers: []svgexport.Layer{{
			Name:        "layer_0",
			ImageWidth:  grid.Width(),
			ImageHeight: grid.Height(),
			PixelSize:   svgexport.Vec2{X: *pixelSize, Y: *pixelSize},
			Position:    svgexport.Vec2{},
			Rotation:    0,
			Scale:       svgexport.Vec2{X: 1, Y: 1},
			Embroidery:  svgexport.DefaultEmbroideryParams(mode),
			Running:     svgexport.DefaultRunningStitchParams(),
			Partitions:  res.Partitions,
		}},
	}

	// Encode into memory first so a failed encode never leaves a usable
	// partial file on disk.
	var buf bytes.Buffer
	if err := doc.Encode(&buf); err != nil {
		failf("could not encode SVG: %v", err)
	}
	if err := os.WriteFile(*output, buf.Bytes(), 0o644); err != nil {
		failf("could not write output file: %v", err)
	}
	fmt.Printf("Exported %s\n", *output)
}

func failf(f string, args ...any) {
	fmt.Printf(f+"\n", args...)
	os.Exit(1)
}

func loadImage(from string) (image.Image, error) {
	file, err := os.Open(from)
	if err != nil {
		return nil, errors.Join(errors.New("could not open image file"), err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, errors.Join(errors.New("could not decode image"), err)
	}

	return img, nil
}
