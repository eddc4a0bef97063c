package style

// Line types.
const (
	LineSolid  = "solid"
	LineDashed = "dashed"
	LineDotted = "dotted"
)

// LineStyle is a resolved stroke style. Zero values mean "unset" so that an
// emphasis style can be layered over a base style with [LineStyle.Over].
type LineStyle struct {
	Color   string
	Width   float64
	Type    string
	Opacity *float64

	// Curveness bends a connector whose geometry is derived from two
	// endpoints. It is not layered by Over.
	Curveness float64
}

// LineStyleOf reads color, width, type, opacity and curveness from a
// lineStyle model.
func LineStyleOf(m *Model) LineStyle {
	var s LineStyle
	s.Color, _ = m.String("color")
	s.Width, _ = m.Float("width")
	s.Type, _ = m.String("type")
	if o, ok := m.Float("opacity"); ok {
		s.Opacity = &o
	}
	s.Curveness, _ = m.Float("curveness")
	return s
}

// Over fills the unset fields of s from base.
func (s LineStyle) Over(base LineStyle) LineStyle {
	if s.Color == "" {
		s.Color = base.Color
	}
	if s.Width == 0 {
		s.Width = base.Width
	}
	if s.Type == "" {
		s.Type = base.Type
	}
	if s.Opacity == nil {
		s.Opacity = base.Opacity
	}
	return s
}

// Dash returns the dash pattern for the line type, or nil for solid lines.
func (s LineStyle) Dash() []float64 {
	w := max(s.Width, 1)
	switch s.Type {
	case LineDashed:
		return []float64{4 * w, 2 * w}
	case LineDotted:
		return []float64{w, w}
	}
	return nil
}
