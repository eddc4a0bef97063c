package connector

import (
	"math"

	"github.com/matzehuels/linkdraw/pkg/data"
	"github.com/matzehuels/linkdraw/pkg/scene"
	"github.com/matzehuels/linkdraw/pkg/symbol"
)

// Marker is the shape drawn at one end of a connector.
type Marker struct {
	*scene.Path

	category Category
	kind     string
	shape    *symbol.Shape
	rotation *float64 // radians
}

// Category returns the end the marker belongs to.
func (m *Marker) Category() Category { return m.category }

// Kind returns the symbol kind.
func (m *Marker) Kind() string { return m.kind }

// Shape returns the marker outline.
func (m *Marker) Shape() *symbol.Shape { return m.shape }

// SpecifiedRotation returns the fixed rotation in radians, if the record
// sets one.
func (m *Marker) SpecifiedRotation() (float64, bool) {
	if m.rotation == nil {
		return 0, false
	}
	return *m.rotation, true
}

// createMarker builds the marker for cat, or returns nil when the record
// names no drawable kind.
func (e *Element) createMarker(cat Category, v data.SymbolVisual) *Marker {
	w, h := v.Size[0], v.Size[1]
	shape, ok := e.registry.Create(v.Kind, -w/2+v.Offset[0], -h/2+v.Offset[1], w, h, v.KeepAspect)
	if !ok {
		return nil
	}
	m := &Marker{
		Path:     scene.NewPath(cat.String(), shape),
		category: cat,
		kind:     v.Kind,
		shape:    shape,
	}
	m.setRotation(v.Rotate)
	return m
}

// refresh updates size, offset, aspect and rotation of a kept marker.
func (m *Marker) refresh(v data.SymbolVisual) {
	w, h := v.Size[0], v.Size[1]
	m.shape.SetBox(-w/2+v.Offset[0], -h/2+v.Offset[1], w, h)
	m.shape.KeepAspect = v.KeepAspect
	m.setRotation(v.Rotate)
	m.MarkDirty()
}

func (m *Marker) setRotation(deg *float64) {
	if deg == nil || math.IsNaN(*deg) {
		m.rotation = nil
		return
	}
	r := *deg * math.Pi / 180
	m.rotation = &r
}

// setColor paints a solid marker with color, or strokes an empty one.
func (m *Marker) setColor(color string, opacity float64) {
	if m.shape.Empty() {
		m.Style = scene.Paint{Fill: "#fff", Stroke: color, LineWidth: 1, Opacity: opacity, StrokeNoScale: true}
		return
	}
	m.Style = scene.Paint{Fill: color, Opacity: opacity}
}

func (m *Marker) setEmphasis(color string, opacity *float64) {
	if m.shape.Empty() {
		m.Emphasis = &scene.PaintOverlay{Stroke: color, Opacity: opacity}
		return
	}
	m.Emphasis = &scene.PaintOverlay{Fill: color, Opacity: opacity}
}

// diffMarkers rebuilds the marker of a category only when the recorded kind
// changed. A kept marker is refreshed in place.
func (e *Element) diffMarkers(v data.Visual) {
	for _, cat := range Categories {
		sv := cat.visual(v)
		if e.kinds[cat] == sv.Kind {
			if m := e.markers[cat]; m != nil {
				m.refresh(sv)
			}
			continue
		}
		if old := e.markers[cat]; old != nil {
			e.group.Remove(old.Path)
		}
		m := e.createMarker(cat, sv)
		e.markers[cat] = m
		if m != nil {
			m.SetState(e.state)
			e.group.Add(m.Path)
		}
		if e.onRebuild != nil {
			e.onRebuild(cat, e.kinds[cat], sv.Kind)
		}
		e.kinds[cat] = sv.Kind
	}
}
