package data

import (
	"fmt"
	"strings"

	"github.com/matzehuels/linkdraw/pkg/errors"
	"github.com/matzehuels/linkdraw/pkg/geom"
	pkgio "github.com/matzehuels/linkdraw/pkg/io"
	"github.com/matzehuels/linkdraw/pkg/scene"
	"github.com/matzehuels/linkdraw/pkg/style"
)

// Defaults applied when neither the item nor the series sets a channel.
const (
	DefaultColor      = "#5470c6"
	DefaultSymbolSize = 10
)

// List is a Source backed by a dataset.
type List struct {
	seriesName    string
	series        *style.Model
	items         []item
	hasItemOption bool
}

type item struct {
	name   string
	value  any
	model  *style.Model
	points []geom.Point
	visual Visual
}

// NewList resolves every link of ds. Links that reference nodes must find
// them placed; run placement first for datasets with unplaced nodes.
func NewList(ds *pkgio.Dataset) (*List, error) {
	l := &List{
		seriesName: ds.Series.Name,
		series:     style.NewModel(ds.Series.Options, nil),
		items:      make([]item, 0, len(ds.Links)),
	}
	for i, link := range ds.Links {
		it := item{
			name:  link.Name,
			value: link.Value,
			model: style.NewModel(link.Options, l.series),
		}
		if it.name == "" && link.Source != "" {
			it.name = link.Source + " > " + link.Target
		}
		if len(link.Options) > 0 {
			l.hasItemOption = true
		}

		pts, err := linkPoints(ds, i, link)
		if err != nil {
			return nil, err
		}
		if len(pts) == 2 {
			if c, _ := it.model.Float("lineStyle.curveness"); c != 0 {
				pts = append(pts, geom.ControlFromCurveness(pts[0], pts[1], c))
			}
		}
		it.points = pts
		it.visual = resolveVisual(it.model)
		l.items = append(l.items, it)
	}
	return l, nil
}

func linkPoints(ds *pkgio.Dataset, i int, link pkgio.Link) ([]geom.Point, error) {
	if len(link.Coords) > 0 {
		if err := errors.ValidateItemPoints(i, link.Coords); err != nil {
			return nil, err
		}
		pts := make([]geom.Point, len(link.Coords))
		for j, c := range link.Coords {
			pts[j] = geom.Pt(c[0], c[1])
		}
		return pts, nil
	}
	pts := make([]geom.Point, 0, 3)
	for _, id := range []string{link.Source, link.Target} {
		n, ok := ds.NodeByID(id)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidDataset, "link %d: unknown node %q", i, id)
		}
		if !n.Placed() {
			return nil, errors.New(errors.ErrCodeInvalidDataset, "link %d: node %q has no position", i, id)
		}
		pts = append(pts, geom.Pt(*n.X, *n.Y))
	}
	return pts, nil
}

func resolveVisual(m *style.Model) Visual {
	v := Visual{Color: DefaultColor}
	if c, ok := m.String("lineStyle.color"); ok {
		v.Color = c
	} else if c, ok := m.String("color"); ok {
		v.Color = c
	}
	if o, ok := m.Float("opacity"); ok {
		v.Opacity = &o
	}

	from, to := ends(m.Get("symbol"))
	v.From.Kind, _ = from.(string)
	v.To.Kind, _ = to.(string)
	if v.From.Kind == "" {
		v.From.Kind = "none"
	}
	if v.To.Kind == "" {
		v.To.Kind = "none"
	}

	v.From.Size, v.To.Size = style.Broadcast(DefaultSymbolSize), style.Broadcast(DefaultSymbolSize)
	if size := m.Get("symbolSize"); size != nil {
		from, to := ends(size)
		if p, ok := style.PairOf(from); ok {
			v.From.Size = p
		}
		if p, ok := style.PairOf(to); ok {
			v.To.Size = p
		}
	}

	from, to = ends(m.Get("symbolOffset"))
	v.From.Offset, _ = style.PairOf(from)
	v.To.Offset, _ = style.PairOf(to)

	from, to = ends(m.Get("symbolRotate"))
	if r, ok := style.Number(from); ok {
		v.From.Rotate = &r
	}
	if r, ok := style.Number(to); ok {
		v.To.Rotate = &r
	}

	from, to = ends(m.Get("symbolKeepAspect"))
	v.From.KeepAspect, _ = from.(bool)
	v.To.KeepAspect, _ = to.(bool)
	return v
}

// ends splits a per-end option: a two-element list is [from, to], anything
// else applies to both ends.
func ends(v any) (from, to any) {
	if list, ok := v.([]any); ok && len(list) == 2 {
		return list[0], list[1]
	}
	return v, v
}

// Count implements Source.
func (l *List) Count() int { return len(l.items) }

// ItemLayout implements Source. The returned slice is a copy.
func (l *List) ItemLayout(i int) []geom.Point {
	return append([]geom.Point(nil), l.items[i].points...)
}

// SetItemLayout overrides the geometry of record i.
func (l *List) SetItemLayout(i int, pts []geom.Point) {
	l.items[i].points = append([]geom.Point(nil), pts...)
}

// ItemVisual implements Source.
func (l *List) ItemVisual(i int) Visual { return l.items[i].visual }

// ItemModel implements Source.
func (l *List) ItemModel(i int) *style.Model { return l.items[i].model }

// RawValue implements Source.
func (l *List) RawValue(i int) any { return l.items[i].value }

// Name implements Source. Links without a name are called "source > target".
func (l *List) Name(i int) string { return l.items[i].name }

// HasItemOption implements Source.
func (l *List) HasItemOption() bool { return l.hasItemOption }

// SeriesModel implements Source.
func (l *List) SeriesModel() *style.Model { return l.series }

// SeriesName returns the series name used for {a} in formatters.
func (l *List) SeriesName() string { return l.seriesName }

// FormattedLabel implements Source. The normal state reads label.formatter;
// the emphasis state reads emphasis.label.formatter only.
func (l *List) FormattedLabel(i int, state scene.State) (string, bool) {
	path := "label.formatter"
	if state == scene.StateEmphasis {
		path = "emphasis.label.formatter"
	}
	tpl, ok := l.items[i].model.String(path)
	if !ok {
		return "", false
	}
	r := strings.NewReplacer(
		"{a}", l.seriesName,
		"{b}", l.items[i].name,
		"{c}", FormatValue(l.items[i].value),
	)
	return r.Replace(tpl), true
}

// FormatValue renders a raw value for display: numbers are rounded to the
// display precision, nil becomes "-".
func FormatValue(v any) string {
	if v == nil {
		return "-"
	}
	if f, ok := style.Number(v); ok {
		return style.FormatNumber(f)
	}
	return fmt.Sprint(v)
}
