package geom

import "github.com/gogpu/gg"

// Curve is the path of a connector: a straight segment from P0 to P1, or a
// quadratic Bezier through Control when HasControl is set.
//
// Progress is the draw progress in [0, 1]. It is 1 for a fully drawn curve
// and is animated from 0 when a connector is first revealed.
type Curve struct {
	P0, P1     Point
	Control    Point
	HasControl bool
	Progress   float64
}

// SampleLine sets the endpoints from points[0] and points[1] and the control
// point from points[2] when present. It resets Progress to 1.
// The caller guarantees at least two points.
func (c *Curve) SampleLine(points []Point) {
	c.P0 = points[0]
	c.P1 = points[1]
	if len(points) > 2 {
		c.Control = points[2]
		c.HasControl = true
	} else {
		c.Control = Point{}
		c.HasControl = false
	}
	c.Progress = 1
}

// Points returns the curve's defining points in SampleLine order.
func (c *Curve) Points() []Point {
	if c.HasControl {
		return []Point{c.P0, c.P1, c.Control}
	}
	return []Point{c.P0, c.P1}
}

// quad returns the curve as a gg quadratic. It is only meaningful when
// HasControl is set.
func (c *Curve) quad() gg.QuadBez { return gg.NewQuadBez(c.P0, c.Control, c.P1) }

// PointAt returns the point at parameter t.
func (c *Curve) PointAt(t float64) Point {
	if !c.HasControl {
		return gg.NewLine(c.P0, c.P1).Eval(t)
	}
	return c.quad().Eval(t)
}

// TangentAt returns the unnormalized derivative at parameter t.
func (c *Curve) TangentAt(t float64) Point {
	if !c.HasControl {
		return c.P1.Sub(c.P0)
	}
	// 2[(1-t)(C-P0) + t(P1-C)]
	d0 := c.Control.Sub(c.P0)
	d1 := c.P1.Sub(c.Control)
	return d0.Lerp(d1, t).Mul(2)
}

// Truncated returns the visible part of the curve, [0, Progress], as a new
// fully drawn curve that follows the original path exactly.
func (c *Curve) Truncated() Curve {
	t := clamp01(c.Progress)
	if !c.HasControl {
		l := gg.NewLine(c.P0, c.P1).Subsegment(0, t)
		return Curve{P0: l.P0, P1: l.P1, Progress: 1}
	}
	q := c.quad().Subsegment(0, t)
	return Curve{P0: q.P0, Control: q.P1, P1: q.P2, HasControl: true, Progress: 1}
}

// Outline implements Shape. Only the visible part of the curve is emitted.
func (c *Curve) Outline() Outline {
	v := c.Truncated()
	o := Outline{{Op: MoveTo, Pts: [2]Point{v.P0}}}
	if v.HasControl {
		return append(o, Segment{Op: QuadTo, Pts: [2]Point{v.Control, v.P1}})
	}
	return append(o, Segment{Op: LineTo, Pts: [2]Point{v.P1}})
}

// ControlFromCurveness derives a quadratic control point for the segment
// p0->p1 bent by curveness. A curveness of 0 yields the chord midpoint.
func ControlFromCurveness(p0, p1 Point, curveness float64) Point {
	return Point{
		X: (p0.X+p1.X)/2 - (p0.Y-p1.Y)*curveness,
		Y: (p0.Y+p1.Y)/2 - (p1.X-p0.X)*curveness,
	}
}

func clamp01(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}
