package connector

import (
	"github.com/matzehuels/linkdraw/pkg/data"
	"github.com/matzehuels/linkdraw/pkg/style"
)

// Category selects one end of a connector.
type Category int

const (
	From Category = iota
	To
)

// Categories lists both ends in child order.
var Categories = [2]Category{From, To}

// String returns the scene name of the category's marker.
func (c Category) String() string {
	if c == To {
		return "toSymbol"
	}
	return "fromSymbol"
}

func (c Category) visual(v data.Visual) data.SymbolVisual {
	if c == To {
		return v.To
	}
	return v.From
}

// SeriesScope holds styles resolved once per series. Elements use it instead
// of their item model when the source carries no per-item options.
type SeriesScope struct {
	LineStyle      style.LineStyle
	HoverLineStyle style.LineStyle
	Label          style.Label
	HoverLabel     style.Label
}

// NewSeriesScope resolves the shared styles of a series model.
func NewSeriesScope(series *style.Model) *SeriesScope {
	s := resolveStyles(series)
	return &s
}

func resolveStyles(m *style.Model) SeriesScope {
	return SeriesScope{
		LineStyle:      style.LineStyleOf(m.GetModel("lineStyle")),
		HoverLineStyle: style.LineStyleOf(m.GetModel("emphasis.lineStyle")),
		Label:          style.LabelOf(m.GetModel("label")),
		HoverLabel:     style.LabelOf(m.GetModel("emphasis.label")),
	}
}
