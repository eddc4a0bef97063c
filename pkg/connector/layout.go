package connector

import (
	"math"

	"github.com/matzehuels/linkdraw/pkg/geom"
	"github.com/matzehuels/linkdraw/pkg/scene"
)

// labelSwitch is the |direction| component beyond which end and start
// labels are aligned away from the line instead of centered.
const labelSwitch = 0.8

// Layout positions markers and label for the current curve. It does nothing
// when there is nothing to place or when neither the element nor its curve
// changed since the last pass. It reports whether any work was done.
func (e *Element) Layout() bool {
	from, to := e.markers[From], e.markers[To]
	if from == nil && to == nil && e.label.Ignore {
		return false
	}
	inv := e.InvScale()
	if !e.group.Dirty() && !e.line.Dirty() {
		return false
	}

	percent := e.curve.Progress
	fromPos := e.curve.PointAt(0)
	toPos := e.curve.PointAt(percent)
	d := toPos.Sub(fromPos).Normalize()

	if from != nil {
		from.Position = fromPos
		from.Rotation = markerRotation(from, math.Pi/2, e.curve.TangentAt(0))
		from.SetScale(inv * percent)
	}
	if to != nil {
		to.Position = toPos
		to.Rotation = markerRotation(to, -math.Pi/2, e.curve.TangentAt(percent))
		to.SetScale(inv * percent)
	}

	if !e.label.Ignore {
		e.layoutLabel(inv, percent, fromPos, toPos, d)
	}

	e.group.ClearDirty()
	e.line.ClearDirty()
	return true
}

func markerRotation(m *Marker, base float64, tangent geom.Point) float64 {
	if r, ok := m.SpecifiedRotation(); ok {
		return r
	}
	return base - geom.Angle(tangent)
}

// InvScale returns the factor that cancels the scaling of every ancestor
// group. Ancestors with a zero x-scale are skipped.
func (e *Element) InvScale() float64 {
	inv := 1.0
	for p := e.group.Parent(); p != nil; p = p.Parent() {
		if p.ScaleX != 0 {
			inv /= p.ScaleX
		}
	}
	return inv
}

func (e *Element) layoutLabel(inv, percent float64, fromPos, toPos, d geom.Point) {
	l := e.label
	c := l.cache
	distX := c.Distance[0] * inv
	distY := c.Distance[1] * inv

	half := percent / 2
	tangent := e.curve.TangentAt(half)
	cp := e.curve.PointAt(half)
	n := geom.Pt(tangent.Y, -tangent.X)
	if n.Y > 0 {
		n = n.Mul(-1)
	}
	l.normal = n
	dir := 1.0
	if tangent.X < 0 {
		dir = -1
	}

	if c.Position == PosStart || c.Position == PosEnd {
		l.Rotation = 0
	} else {
		r := -geom.Angle(tangent)
		if toPos.X < fromPos.X {
			r += math.Pi
		}
		l.Rotation = r
	}

	var dy float64
	var align, valign string
	switch c.Position {
	case PosInsideStartTop, PosInsideMiddleTop, PosInsideEndTop, PosMiddle:
		dy, valign = -distY, scene.VAlignBottom
	case PosInsideStartBottom, PosInsideMiddleBottom, PosInsideEndBottom:
		dy, valign = distY, scene.VAlignTop
	default:
		dy, valign = 0, scene.VAlignMiddle
	}

	origin := geom.Point{}
	switch c.Position {
	case PosEnd:
		l.Position = geom.Pt(d.X*distX+toPos.X, d.Y*distY+toPos.Y)
		align = pick(d.X, scene.AlignLeft, scene.AlignRight, scene.AlignCenter)
		valign = pick(d.Y, scene.VAlignTop, scene.VAlignBottom, scene.VAlignMiddle)
	case PosStart:
		l.Position = geom.Pt(-d.X*distX+fromPos.X, -d.Y*distY+fromPos.Y)
		align = pick(d.X, scene.AlignRight, scene.AlignLeft, scene.AlignCenter)
		valign = pick(d.Y, scene.VAlignBottom, scene.VAlignTop, scene.VAlignMiddle)
	case PosInsideStart, PosInsideStartTop, PosInsideStartBottom:
		l.Position = geom.Pt(distX*dir+fromPos.X, fromPos.Y+dy)
		align = scene.AlignLeft
		if tangent.X < 0 {
			align = scene.AlignRight
		}
		origin = geom.Pt(-distX*dir, -dy)
	case PosInsideEnd, PosInsideEndTop, PosInsideEndBottom:
		l.Position = geom.Pt(-distX*dir+toPos.X, toPos.Y+dy)
		align = scene.AlignLeft
		if tangent.X >= 0 {
			align = scene.AlignRight
		}
		origin = geom.Pt(distX*dir, -dy)
	default: // middle and insideMiddle*
		l.Position = geom.Pt(cp.X, cp.Y+dy)
		align = scene.AlignCenter
		origin = geom.Pt(0, -dy)
	}
	l.Origin = origin
	l.SetScale(inv)

	if c.Align != "" {
		align = c.Align
	}
	if c.VerticalAlign != "" {
		valign = c.VerticalAlign
	}
	l.Style.Align = align
	l.Style.VerticalAlign = valign
}

// pick returns pos when v is beyond +labelSwitch, neg when beyond
// -labelSwitch and mid otherwise.
func pick(v float64, pos, neg, mid string) string {
	switch {
	case v > labelSwitch:
		return pos
	case v < -labelSwitch:
		return neg
	}
	return mid
}
