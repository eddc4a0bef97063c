package geom

import (
	"fmt"
	"strings"
)

// Op is a path segment operation.
type Op int

const (
	MoveTo Op = iota
	LineTo
	QuadTo
	Close
)

// Segment is a single path operation. MoveTo and LineTo use Pts[0]; QuadTo
// uses Pts[0] as control point and Pts[1] as end point.
type Segment struct {
	Op  Op
	Pts [2]Point
}

// Outline is an ordered list of path segments.
type Outline []Segment

// Shape is anything that can describe itself as an outline in local
// coordinates.
type Shape interface {
	Outline() Outline
}

// PathData renders o as SVG path data with two decimals.
func (o Outline) PathData() string {
	var b strings.Builder
	for i, s := range o {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch s.Op {
		case MoveTo:
			fmt.Fprintf(&b, "M%.2f,%.2f", s.Pts[0].X, s.Pts[0].Y)
		case LineTo:
			fmt.Fprintf(&b, "L%.2f,%.2f", s.Pts[0].X, s.Pts[0].Y)
		case QuadTo:
			fmt.Fprintf(&b, "Q%.2f,%.2f %.2f,%.2f", s.Pts[0].X, s.Pts[0].Y, s.Pts[1].X, s.Pts[1].Y)
		case Close:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

// Bounds returns the axis-aligned box spanned by the outline's points,
// control points included.
func (o Outline) Bounds() (lo, hi Point, ok bool) {
	for _, s := range o {
		n := 0
		switch s.Op {
		case MoveTo, LineTo:
			n = 1
		case QuadTo:
			n = 2
		}
		for _, p := range s.Pts[:n] {
			if !ok {
				lo, hi, ok = p, p, true
				continue
			}
			lo.X, lo.Y = minf(lo.X, p.X), minf(lo.Y, p.Y)
			hi.X, hi.Y = maxf(hi.X, p.X), maxf(hi.Y, p.Y)
		}
	}
	return lo, hi, ok
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
