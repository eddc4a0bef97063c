// Package sink writes laid out connector scenes to output formats.
//
// # Overview
//
// A "sink" turns a scene tree, after [linkset.Set.Frame] has laid it out,
// into bytes. This package provides:
//
//   - SVG: nested groups with their local transforms, optional hover effects
//   - PNG: native rasterization with gogpu/gg
//   - PDF: SVG converted with rsvg-convert
//   - JSON: the pose dump of every connector
//
// Sinks only read the scene, so several can run concurrently over the same
// laid out tree.
//
// # SVG Output
//
//	svg := sink.RenderSVG(root, 800, 600,
//	    sink.WithBackground("#fff"),
//	    sink.WithInteraction(),
//	)
//
// With [WithInteraction] every connector group carries its emphasis paint and
// hover text as data attributes, and a small script swaps them in while the
// pointer is over the connector.
//
// # PNG Output
//
//	png, err := sink.RenderPNG(root, 800, 600, sink.WithScale(2))
//
// Labels use the built-in Go Regular face unless [WithFont] names a font file.
//
// [linkset.Set.Frame]: github.com/matzehuels/linkdraw/pkg/linkset.Set.Frame
package sink
