// Package pixstitch turns pixel-art rasters into machine-embroidery
// stitch paths and exports them as annotated SVG.
//
// 🚀 What is pixstitch?
//
//	A deterministic pipeline from image to stitchable document:
//		• raster:     decoded images as flat color grids with an Empty sentinel
//		• colorgraph: per-color 8-connected adjacency graphs & components
//		• pathfinder: corner-grid routing — fewest segments or perceptual cost
//		• partition:  continuous stitch orders, connector bridges, jump counts
//		• svgexport:  bit-stable SVG with Ink/Stitch machine metadata
//
// ✨ Why choose pixstitch?
//
//   - Reproducible – identical input yields byte-identical output
//   - Physical-unit aware – hoop inches, millimeter pixel sizes
//   - Pure Go pipeline – one small CLI, library-first packages
//
// The cmd/pixstitch command wires the whole pipeline together:
//
//	pixstitch -input art.png -output out.svg -hoop-width 4 -hoop-height 4
//
//	go get github.com/katalvlaran/pixstitch
package pixstitch
