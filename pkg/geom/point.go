package geom

import (
	"math"

	"github.com/gogpu/gg"
)

// Point is a 2D point or vector. It is gg's point type, so values pass to the
// PNG rasterizer without conversion.
type Point = gg.Point

// Pt is a convenience constructor for Point.
func Pt(x, y float64) Point { return gg.Pt(x, y) }

// Angle returns the angle of v measured from the positive X axis.
func Angle(v Point) float64 { return math.Atan2(v.Y, v.X) }

// Near reports whether p and q differ by at most eps on each axis.
func Near(p, q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}
