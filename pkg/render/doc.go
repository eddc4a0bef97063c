// Package render converts rendered connector scenes between output formats.
//
// # Overview
//
// The scene sinks live in the [sink] subpackage: SVG is written directly from
// the scene graph, PNG is rasterized with gogpu/gg and JSON dumps the laid
// out poses. This package holds the conversions that need an external tool.
//
// # Format Conversion
//
// [ToPDF] converts an SVG document with the rsvg-convert tool (from librsvg).
// [ToPNG] does the same for raster output when the native PNG sink is not
// wanted, for example to get identical text shaping to the SVG.
//
//	svg := sink.RenderSVG(root, 800, 600)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [sink]: github.com/matzehuels/linkdraw/pkg/render/sink
package render
