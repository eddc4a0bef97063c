package linkset

import (
	"github.com/matzehuels/linkdraw/pkg/connector"
	pkgio "github.com/matzehuels/linkdraw/pkg/io"
)

// Dump captures the current poses of every connector for export.
func (s *Set) Dump(width, height float64) pkgio.Layout {
	out := pkgio.Layout{
		Width:    width,
		Height:   height,
		InvScale: 1,
		Links:    make([]pkgio.LinkPose, 0, len(s.elements)),
	}
	for i, e := range s.elements {
		if i == 0 {
			out.InvScale = e.InvScale()
		}
		out.Links = append(out.Links, s.pose(i, e))
	}
	return out
}

func (s *Set) pose(i int, e *connector.Element) pkgio.LinkPose {
	c := e.Curve()
	p := pkgio.LinkPose{
		Index:    i,
		State:    e.State().String(),
		Progress: c.Progress,
		Stroke:   e.Line().ActiveStyle().Stroke,
		Opacity:  e.Line().ActiveStyle().Opacity,
	}
	if s.src != nil && i < s.src.Count() {
		p.Name = s.src.Name(i)
	}
	for _, pt := range c.Points() {
		p.Points = append(p.Points, [2]float64{pt.X, pt.Y})
	}
	for _, cat := range connector.Categories {
		m := e.Marker(cat)
		if m == nil {
			continue
		}
		p.Markers = append(p.Markers, pkgio.MarkerPose{
			Category: cat.String(),
			Kind:     m.Kind(),
			Position: [2]float64{m.Position.X, m.Position.Y},
			Rotation: m.Rotation,
			Scale:    m.ScaleX,
		})
	}
	if l := e.Label(); !l.Ignore {
		p.Label = &pkgio.LabelPose{
			Text:          l.Style.Text,
			HoverText:     l.HoverText(),
			Policy:        l.Cache().Position,
			Position:      [2]float64{l.Position.X, l.Position.Y},
			Rotation:      l.Rotation,
			Origin:        [2]float64{l.Origin.X, l.Origin.Y},
			Align:         l.Style.Align,
			VerticalAlign: l.Style.VerticalAlign,
		}
	}
	return p
}
