package connector

import (
	"fmt"
	"time"

	"github.com/matzehuels/linkdraw/pkg/anim"
	"github.com/matzehuels/linkdraw/pkg/data"
	"github.com/matzehuels/linkdraw/pkg/geom"
	"github.com/matzehuels/linkdraw/pkg/scene"
	"github.com/matzehuels/linkdraw/pkg/style"
	"github.com/matzehuels/linkdraw/pkg/symbol"
)

// DefaultLineWidth is the stroke width when the line style sets none.
const DefaultLineWidth = 1

// hoverLift is how far the emphasis stroke is lightened when the record sets
// no emphasis color.
const hoverLift = 0.1

// Element is one connector.
type Element struct {
	group   *scene.Group
	line    *scene.Path
	curve   *geom.Curve
	label   *Label
	markers [2]*Marker
	kinds   [2]string
	state   scene.State

	animator  anim.Animator
	duration  time.Duration
	registry  *symbol.Registry
	onRebuild func(cat Category, from, to string)
}

// Option configures an Element.
type Option func(*Element)

// WithAnimator sets the animator used for the reveal and for geometry
// updates. The default completes transitions immediately.
func WithAnimator(a anim.Animator) Option {
	return func(e *Element) { e.animator = a }
}

// WithDuration sets the transition duration.
func WithDuration(d time.Duration) Option {
	return func(e *Element) { e.duration = d }
}

// WithRegistry sets the symbol registry markers are built from.
func WithRegistry(r *symbol.Registry) Option {
	return func(e *Element) { e.registry = r }
}

// WithMarkerRebuild registers fn to be called whenever a data update
// replaces the marker of a category. from and to are the old and new kinds.
func WithMarkerRebuild(fn func(cat Category, from, to string)) Option {
	return func(e *Element) { e.onRebuild = fn }
}

// New builds the connector for record idx of src. The curve starts with zero
// progress and is revealed through the animator. scope may be nil.
//
// New panics if the record has fewer than two layout points.
func New(src data.Source, idx int, scope *SeriesScope, opts ...Option) *Element {
	e := &Element{
		group:    scene.NewGroup("connector"),
		curve:    &geom.Curve{},
		label:    newLabel(),
		animator: anim.Immediate{},
		registry: symbol.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.curve.SampleLine(mustLayout(src, idx))
	e.curve.Progress = 0
	e.line = scene.NewPath("line", e.curve)
	e.group.Add(e.line)
	e.group.Add(e.label.Text)

	v := src.ItemVisual(idx)
	for _, cat := range Categories {
		sv := cat.visual(v)
		e.kinds[cat] = sv.Kind
		if m := e.createMarker(cat, sv); m != nil {
			e.markers[cat] = m
			e.group.Add(m.Path)
		}
	}

	e.animator.Animate(anim.Tween{
		Key:      e.curve,
		Duration: e.duration,
		Apply: func(t float64) {
			e.curve.Progress = t
			e.line.MarkDirty()
		},
	})

	e.updateCommon(src, idx, scope)
	return e
}

// UpdateData refreshes the element from a changed record: the curve moves
// to the new geometry, markers are rebuilt when their kind changed, and
// styles and label are resolved again.
func (e *Element) UpdateData(src data.Source, idx int, scope *SeriesScope) {
	var target geom.Curve
	target.SampleLine(mustLayout(src, idx))
	e.animateTo(target)

	e.diffMarkers(src.ItemVisual(idx))
	e.updateCommon(src, idx, scope)
	e.group.MarkDirty()
}

// UpdateLayout moves the curve to the record's current geometry without a
// transition.
func (e *Element) UpdateLayout(src data.Source, idx int) {
	e.SetLinePoints(mustLayout(src, idx))
}

// SetLinePoints writes endpoints and optional control point onto the curve
// and resets its progress to 1.
func (e *Element) SetLinePoints(points []geom.Point) {
	if len(points) < 2 {
		panic(fmt.Sprintf("connector: SetLinePoints needs at least 2 points, got %d", len(points)))
	}
	e.curve.SampleLine(points)
	e.line.MarkDirty()
}

func (e *Element) animateTo(target geom.Curve) {
	from := *e.curve
	fromCtl := from.Control
	if !from.HasControl {
		fromCtl = from.PointAt(0.5)
	}
	toCtl := target.Control
	if !target.HasControl {
		toCtl = target.P0.Lerp(target.P1, 0.5)
	}
	e.animator.Animate(anim.Tween{
		Key:      e.curve,
		Duration: e.duration,
		Apply: func(t float64) {
			if t >= 1 {
				*e.curve = target
			} else {
				e.curve.P0 = from.P0.Lerp(target.P0, t)
				e.curve.P1 = from.P1.Lerp(target.P1, t)
				e.curve.Control = fromCtl.Lerp(toCtl, t)
				e.curve.HasControl = from.HasControl || target.HasControl
				e.curve.Progress = from.Progress + (1-from.Progress)*t
			}
			e.line.MarkDirty()
		},
	})
}

func mustLayout(src data.Source, idx int) []geom.Point {
	pts := src.ItemLayout(idx)
	if len(pts) < 2 {
		panic(fmt.Sprintf("connector: item %d has %d layout points, need at least 2", idx, len(pts)))
	}
	return pts
}

// updateCommon resolves line, marker and label styles for record idx.
func (e *Element) updateCommon(src data.Source, idx int, scope *SeriesScope) {
	var st SeriesScope
	if scope != nil && !src.HasItemOption() {
		st = *scope
	} else {
		st = resolveStyles(src.ItemModel(idx))
	}

	v := src.ItemVisual(idx)
	opacity := 1.0
	switch {
	case v.Opacity != nil:
		opacity = *v.Opacity
	case st.LineStyle.Opacity != nil:
		opacity = *st.LineStyle.Opacity
	}

	width := st.LineStyle.Width
	if width == 0 {
		width = DefaultLineWidth
	}
	e.line.Style = scene.Paint{
		Stroke:        v.Color,
		LineWidth:     width,
		Dash:          st.LineStyle.Dash(),
		Opacity:       opacity,
		StrokeNoScale: true,
	}

	hoverStroke := st.HoverLineStyle.Color
	if hoverStroke == "" {
		hoverStroke = style.Lift(v.Color, hoverLift)
	}
	e.line.Emphasis = &scene.PaintOverlay{
		Stroke:    hoverStroke,
		LineWidth: st.HoverLineStyle.Width,
		Opacity:   st.HoverLineStyle.Opacity,
	}

	for _, m := range e.markers {
		if m == nil {
			continue
		}
		m.setColor(v.Color, opacity)
		m.setEmphasis(hoverStroke, st.HoverLineStyle.Opacity)
	}

	e.resolveLabel(src, idx, st.Label, st.HoverLabel, v.Color)
}

// Group returns the root of the element's subtree.
func (e *Element) Group() *scene.Group { return e.group }

// Line returns the path drawing the curve.
func (e *Element) Line() *scene.Path { return e.line }

// Curve returns the element's curve geometry.
func (e *Element) Curve() *geom.Curve { return e.curve }

// Marker returns the marker of cat, or nil.
func (e *Element) Marker(cat Category) *Marker { return e.markers[cat] }

// Label returns the element's label.
func (e *Element) Label() *Label { return e.label }
