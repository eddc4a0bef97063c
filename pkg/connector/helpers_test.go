package connector

import (
	"github.com/matzehuels/linkdraw/pkg/data"
	"github.com/matzehuels/linkdraw/pkg/geom"
	"github.com/matzehuels/linkdraw/pkg/scene"
	"github.com/matzehuels/linkdraw/pkg/style"
)

// stubSource is a single-record data.Source.
type stubSource struct {
	points     []geom.Point
	visual     data.Visual
	options    map[string]any
	series     map[string]any
	name       string
	value      any
	formatted  map[scene.State]string
	itemOption bool
}

func newStub(points ...geom.Point) *stubSource {
	return &stubSource{
		points: points,
		visual: data.Visual{
			Color: "#5470c6",
			From:  data.SymbolVisual{Kind: "none", Size: style.Broadcast(10)},
			To:    data.SymbolVisual{Kind: "arrow", Size: style.Broadcast(10)},
		},
		options: map[string]any{},
		series:  map[string]any{},
	}
}

func (s *stubSource) withLabel(opts map[string]any) *stubSource {
	s.options["label"] = opts
	return s
}

func (s *stubSource) Count() int                  { return 1 }
func (s *stubSource) ItemLayout(int) []geom.Point { return s.points }
func (s *stubSource) ItemVisual(int) data.Visual  { return s.visual }
func (s *stubSource) RawValue(int) any            { return s.value }
func (s *stubSource) Name(int) string             { return s.name }
func (s *stubSource) HasItemOption() bool         { return s.itemOption }
func (s *stubSource) SeriesModel() *style.Model   { return style.NewModel(s.series, nil) }
func (s *stubSource) ItemModel(int) *style.Model  { return style.NewModel(s.options, s.SeriesModel()) }
func (s *stubSource) FormattedLabel(_ int, st scene.State) (string, bool) {
	text, ok := s.formatted[st]
	return text, ok
}

// scaledParents nests g under groups with the given x/y scales, innermost
// last, and returns the outermost group.
func scaledParents(g *scene.Group, scales ...float64) *scene.Group {
	child := g
	var root *scene.Group
	for i := len(scales) - 1; i >= 0; i-- {
		p := scene.NewGroup("parent")
		p.SetScale(scales[i])
		p.Add(child)
		child = p
		root = p
	}
	return root
}
