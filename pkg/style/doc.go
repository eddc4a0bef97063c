// Package style resolves declarative style options into concrete values.
//
// Options are held in a [Model], a nested option tree with parent fallback:
// an item model falls back to its series model, and a sub-model obtained with
// [Model.GetModel] falls back to the same path on the parent. Paths use dots:
//
//	series := style.NewModel(map[string]any{"lineStyle": map[string]any{"width": 2}}, nil)
//	item := style.NewModel(map[string]any{"lineStyle": map[string]any{"color": "#c23531"}}, series)
//	ls := style.LineStyleOf(item.GetModel("lineStyle")) // color from item, width from series
//
// Colors are parsed and adjusted with go-colorful.
package style
