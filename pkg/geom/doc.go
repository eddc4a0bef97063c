// Package geom provides the 2D geometry used by connector rendering.
//
// Coordinates follow screen conventions: the origin is at the top-left,
// X grows to the right and Y grows downwards.
//
// # Curves
//
// A [Curve] is either a straight segment or a quadratic Bezier with a single
// control point. It carries a draw progress in [0, 1] that renderers use to
// reveal the curve gradually:
//
//	var c geom.Curve
//	c.SampleLine([]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: -5}})
//	mid := c.PointAt(0.5)
//	dir := c.TangentAt(0.5)
//
// Sampling outside [0, 1] is undefined. Callers clamp.
//
// # Outlines
//
// Shapes expose their geometry as an [Outline], a list of move, line,
// quadratic and close segments that sinks translate into SVG path data or
// raster drawing calls.
package geom
