package symbol

import (
	"math"

	"github.com/matzehuels/linkdraw/pkg/geom"
)

var builtins = map[string]Factory{
	"circle":    circle,
	"rect":      rect,
	"square":    square,
	"roundRect": roundRect,
	"triangle":  triangle,
	"diamond":   diamond,
	"pin":       pin,
	"arrow":     arrow,
}

func polygon(pts ...geom.Point) geom.Outline {
	o := make(geom.Outline, 0, len(pts)+1)
	for i, p := range pts {
		op := geom.LineTo
		if i == 0 {
			op = geom.MoveTo
		}
		o = append(o, geom.Segment{Op: op, Pts: [2]geom.Point{p}})
	}
	return append(o, geom.Segment{Op: geom.Close})
}

func quad(ctrl, to geom.Point) geom.Segment {
	return geom.Segment{Op: geom.QuadTo, Pts: [2]geom.Point{ctrl, to}}
}

// arc appends quadratic pieces approximating an elliptical arc from angle a0
// to a1 (radians, y-down).
func arc(o geom.Outline, c geom.Point, rx, ry, a0, a1 float64, n int) geom.Outline {
	step := (a1 - a0) / float64(n)
	k := 1 / math.Cos(step/2)
	for i := range n {
		mid := a0 + step*(float64(i)+0.5)
		end := a0 + step*float64(i+1)
		o = append(o, quad(
			geom.Pt(c.X+rx*k*math.Cos(mid), c.Y+ry*k*math.Sin(mid)),
			geom.Pt(c.X+rx*math.Cos(end), c.Y+ry*math.Sin(end)),
		))
	}
	return o
}

func circle(x, y, w, h float64) geom.Outline {
	r := math.Min(w, h) / 2
	c := geom.Pt(x+w/2, y+h/2)
	o := geom.Outline{{Op: geom.MoveTo, Pts: [2]geom.Point{geom.Pt(c.X+r, c.Y)}}}
	o = arc(o, c, r, r, 0, 2*math.Pi, 8)
	return append(o, geom.Segment{Op: geom.Close})
}

func rect(x, y, w, h float64) geom.Outline {
	return polygon(geom.Pt(x, y), geom.Pt(x+w, y), geom.Pt(x+w, y+h), geom.Pt(x, y+h))
}

func square(x, y, w, h float64) geom.Outline {
	side := math.Min(w, h)
	return rect(x+(w-side)/2, y+(h-side)/2, side, side)
}

func roundRect(x, y, w, h float64) geom.Outline {
	r := math.Min(w, h) / 4
	o := geom.Outline{{Op: geom.MoveTo, Pts: [2]geom.Point{geom.Pt(x+r, y)}}}
	o = append(o,
		geom.Segment{Op: geom.LineTo, Pts: [2]geom.Point{geom.Pt(x+w-r, y)}},
		quad(geom.Pt(x+w, y), geom.Pt(x+w, y+r)),
		geom.Segment{Op: geom.LineTo, Pts: [2]geom.Point{geom.Pt(x+w, y+h-r)}},
		quad(geom.Pt(x+w, y+h), geom.Pt(x+w-r, y+h)),
		geom.Segment{Op: geom.LineTo, Pts: [2]geom.Point{geom.Pt(x+r, y+h)}},
		quad(geom.Pt(x, y+h), geom.Pt(x, y+h-r)),
		geom.Segment{Op: geom.LineTo, Pts: [2]geom.Point{geom.Pt(x, y+r)}},
		quad(geom.Pt(x, y), geom.Pt(x+r, y)),
		geom.Segment{Op: geom.Close},
	)
	return o
}

func triangle(x, y, w, h float64) geom.Outline {
	return polygon(geom.Pt(x+w/2, y), geom.Pt(x+w, y+h), geom.Pt(x, y+h))
}

func diamond(x, y, w, h float64) geom.Outline {
	cx, cy := x+w/2, y+h/2
	return polygon(geom.Pt(cx, y), geom.Pt(x+w, cy), geom.Pt(cx, y+h), geom.Pt(x, cy))
}

// pin is a teardrop with its round head at the top and its tip at the bottom
// of the box.
func pin(x, y, w, h float64) geom.Outline {
	r := math.Min(w/2, h/3)
	cx := x + w/2
	head := geom.Pt(cx, y+r)
	tip := geom.Pt(cx, y+h)
	o := geom.Outline{{Op: geom.MoveTo, Pts: [2]geom.Point{tip}}}
	o = append(o, quad(geom.Pt(cx-r, y+h*0.6), geom.Pt(cx-r, head.Y)))
	o = arc(o, head, r, r, math.Pi, 2*math.Pi, 4)
	o = append(o, quad(geom.Pt(cx+r, y+h*0.6), tip), geom.Segment{Op: geom.Close})
	return o
}

// arrow points towards -y: the tip sits at the top center of the box and the
// notch at three quarters of its height.
func arrow(x, y, w, h float64) geom.Outline {
	cx := x + w/2
	dx := w / 2
	return polygon(
		geom.Pt(cx, y),
		geom.Pt(cx+dx, y+h),
		geom.Pt(cx, y+h*3/4),
		geom.Pt(cx-dx, y+h),
	)
}
