package scene

// Paint is the concrete paint of a path.
type Paint struct {
	Fill          string
	Stroke        string
	LineWidth     float64
	Dash          []float64
	Opacity       float64
	StrokeNoScale bool
}

// PaintOverlay is applied on top of a Paint in the emphasis state. Empty
// strings, a zero width and a nil opacity inherit from the base paint.
type PaintOverlay struct {
	Fill      string
	Stroke    string
	LineWidth float64
	Opacity   *float64
}

// PaintFor returns the paint a renderer uses for state.
func PaintFor(s State, base Paint, emphasis *PaintOverlay) Paint {
	if s != StateEmphasis || emphasis == nil {
		return base
	}
	out := base
	if emphasis.Fill != "" {
		out.Fill = emphasis.Fill
	}
	if emphasis.Stroke != "" {
		out.Stroke = emphasis.Stroke
	}
	if emphasis.LineWidth != 0 {
		out.LineWidth = emphasis.LineWidth
	}
	if emphasis.Opacity != nil {
		out.Opacity = *emphasis.Opacity
	}
	return out
}

// Text alignments.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"

	VAlignTop    = "top"
	VAlignMiddle = "middle"
	VAlignBottom = "bottom"
)

// TextStyle is the concrete style of a text node.
type TextStyle struct {
	Text          string
	Fill          string
	Opacity       float64
	FontStyle     string
	FontWeight    string
	FontSize      float64
	FontFamily    string
	Align         string
	VerticalAlign string
}

// TextOverlay replaces the text and selected font attributes while hovered.
// Text is always applied; an empty string hides the label.
type TextOverlay struct {
	Text       string
	Fill       string
	FontStyle  string
	FontWeight string
	FontSize   float64
	FontFamily string
}

// TextFor returns the text style a renderer uses for state.
func TextFor(s State, base TextStyle, hover *TextOverlay) TextStyle {
	if s != StateEmphasis || hover == nil {
		return base
	}
	out := base
	out.Text = hover.Text
	if hover.Fill != "" {
		out.Fill = hover.Fill
	}
	if hover.FontStyle != "" {
		out.FontStyle = hover.FontStyle
	}
	if hover.FontWeight != "" {
		out.FontWeight = hover.FontWeight
	}
	if hover.FontSize != 0 {
		out.FontSize = hover.FontSize
	}
	if hover.FontFamily != "" {
		out.FontFamily = hover.FontFamily
	}
	return out
}
