package style

// Label is a resolved label option set.
type Label struct {
	Show          bool
	Position      string
	Distance      Pair
	HasDistance   bool
	Align         string
	VerticalAlign string
	Color         string
	FontStyle     string
	FontWeight    string
	FontSize      float64
	FontFamily    string
	Formatter     string
}

// LabelOf reads a label model.
func LabelOf(m *Model) Label {
	var l Label
	if show, ok := m.GetShallow("show").(bool); ok {
		l.Show = show
	}
	l.Position, _ = m.String("position")
	l.Distance, l.HasDistance = m.Pair("distance")
	l.Align, _ = m.String("align")
	l.VerticalAlign, _ = m.String("verticalAlign")
	l.Color, _ = m.String("color")
	l.FontStyle, _ = m.GetShallow("fontStyle").(string)
	l.FontWeight = fontWeight(m.GetShallow("fontWeight"))
	l.FontSize, _ = toFloat(m.GetShallow("fontSize"))
	l.FontFamily, _ = m.GetShallow("fontFamily").(string)
	l.Formatter, _ = m.String("formatter")
	return l
}

// fontWeight accepts both keyword and numeric weights.
func fontWeight(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if f, ok := toFloat(v); ok {
		return FormatNumber(f)
	}
	return ""
}
