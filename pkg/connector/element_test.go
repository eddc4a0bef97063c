package connector

import (
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/linkdraw/pkg/anim"
	"github.com/matzehuels/linkdraw/pkg/data"
	"github.com/matzehuels/linkdraw/pkg/geom"
	"github.com/matzehuels/linkdraw/pkg/scene"
	"github.com/matzehuels/linkdraw/pkg/style"
)

func TestNewPanicsWithoutGeometry(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("New did not panic")
		}
		if msg, _ := r.(string); !strings.Contains(msg, "need at least 2") {
			t.Errorf("panic message = %v", r)
		}
	}()
	New(newStub(geom.Pt(0, 0)), 0, nil)
}

func TestNewBuildsSubtree(t *testing.T) {
	e := New(newStub(geom.Pt(0, 0), geom.Pt(10, 0)), 0, nil)

	if e.Marker(From) != nil {
		t.Error("kind none should not build a marker")
	}
	to := e.Marker(To)
	if to == nil || to.Kind() != "arrow" || to.Name != "toSymbol" {
		t.Fatalf("to marker = %+v", to)
	}
	if e.Group().ChildOfName("line") == nil || e.Group().ChildOfName("label") == nil {
		t.Error("line and label must be children of the element")
	}
	if to.Parent() != e.Group() {
		t.Error("marker should be attached to the element group")
	}
	if e.Curve().Progress != 1 {
		t.Errorf("Immediate reveal left progress at %v", e.Curve().Progress)
	}
	if !e.Label().Ignore {
		t.Error("label without show flags should be ignored")
	}
}

func TestMarkerScaleFollowsProgress(t *testing.T) {
	tests := []struct {
		name    string
		scales  []float64
		wantInv float64
	}{
		{"no ancestors", nil, 1},
		{"zoomed", []float64{2}, 0.5},
		{"chain", []float64{4, 0.5}, 0.5},
		{"zero scale skipped", []float64{4, 0, 0.5}, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := anim.NewTimeline(nil)
			src := newStub(geom.Pt(0, 0), geom.Pt(10, 0))
			src.visual.From.Kind = "circle"
			e := New(src, 0, nil, WithAnimator(tl))
			if len(tt.scales) > 0 {
				scaledParents(e.Group(), tt.scales...)
			}

			if got := e.InvScale(); math.Abs(got-tt.wantInv) > 1e-12 {
				t.Fatalf("InvScale() = %v, want %v", got, tt.wantInv)
			}

			e.Layout()
			for _, cat := range Categories {
				if m := e.Marker(cat); m.ScaleX != 0 || m.ScaleY != 0 {
					t.Errorf("%s scale at progress 0 = (%v, %v), want 0", cat, m.ScaleX, m.ScaleY)
				}
			}

			tl.Finish()
			if !e.Layout() {
				t.Fatal("Layout() after reveal did no work")
			}
			for _, cat := range Categories {
				if m := e.Marker(cat); math.Abs(m.ScaleX-tt.wantInv) > 1e-12 || m.ScaleX != m.ScaleY {
					t.Errorf("%s scale = (%v, %v), want %v", cat, m.ScaleX, m.ScaleY, tt.wantInv)
				}
			}
		})
	}
}

func TestMarkerRebuildOnlyOnKindChange(t *testing.T) {
	type rebuild struct {
		cat      Category
		from, to string
	}
	var rebuilds []rebuild
	src := newStub(geom.Pt(0, 0), geom.Pt(10, 0))
	e := New(src, 0, nil, WithMarkerRebuild(func(cat Category, from, to string) {
		rebuilds = append(rebuilds, rebuild{cat, from, to})
	}))
	before := e.Marker(To)

	// Same kind, new size and offset: refreshed in place.
	src.visual.To.Size = style.Pair{20, 8}
	src.visual.To.Offset = style.Pair{2, 0}
	e.UpdateData(src, 0, nil)
	if len(rebuilds) != 0 {
		t.Fatalf("unexpected rebuilds %v", rebuilds)
	}
	if e.Marker(To) != before {
		t.Fatal("marker instance replaced although the kind is unchanged")
	}
	if s := before.Shape(); s.W != 20 || s.H != 8 || s.X != -8 {
		t.Errorf("shape box = (%v, %v, %v, %v), want x=-8 w=20 h=8", s.X, s.Y, s.W, s.H)
	}

	// New kind: rebuilt.
	src.visual.To.Kind = "diamond"
	e.UpdateData(src, 0, nil)
	if len(rebuilds) != 1 || rebuilds[0] != (rebuild{To, "arrow", "diamond"}) {
		t.Fatalf("rebuilds = %v", rebuilds)
	}
	if e.Marker(To) == before || before.Parent() != nil {
		t.Error("old marker should be detached and replaced")
	}

	// Removed kind: marker dropped.
	src.visual.To.Kind = "none"
	e.UpdateData(src, 0, nil)
	if e.Marker(To) != nil {
		t.Error("kind none should remove the marker")
	}
	if e.Group().ChildOfName("toSymbol") != nil {
		t.Error("removed marker still attached")
	}
	if len(rebuilds) != 2 {
		t.Errorf("rebuilds = %d, want 2", len(rebuilds))
	}
}

func TestMarkerInheritsState(t *testing.T) {
	src := newStub(geom.Pt(0, 0), geom.Pt(10, 0))
	e := New(src, 0, nil)
	e.Highlight()
	src.visual.From.Kind = "circle"
	e.UpdateData(src, 0, nil)
	if m := e.Marker(From); m == nil || m.State() != scene.StateEmphasis {
		t.Error("a marker created while highlighted should start in emphasis")
	}
}

func TestLabelIgnore(t *testing.T) {
	tests := []struct {
		show, hoverShow bool
		wantIgnore      bool
	}{
		{false, false, true},
		{true, false, false},
		{false, true, false},
		{true, true, false},
	}
	for _, tt := range tests {
		src := newStub(geom.Pt(0, 0), geom.Pt(10, 0))
		src.options["label"] = map[string]any{"show": tt.show}
		src.options["emphasis"] = map[string]any{"label": map[string]any{"show": tt.hoverShow}}
		e := New(src, 0, nil)
		if got := e.Label().Ignore; got != tt.wantIgnore {
			t.Errorf("show=%v hoverShow=%v: Ignore = %v, want %v", tt.show, tt.hoverShow, got, tt.wantIgnore)
		}
	}
}

func TestLabelText(t *testing.T) {
	tests := []struct {
		name      string
		value     any
		formatted map[scene.State]string
		wantText  string
		wantHover string
	}{
		{"rounded value", 0.1 + 0.2, nil, "0.3", "0.3"},
		{"name without value", nil, nil, "a > b", "a > b"},
		{"non-finite verbatim", math.Inf(1), nil, "+Inf", "+Inf"},
		{"string value", "n/a", nil, "n/a", "n/a"},
		{"boolean value", true, nil, "1", "1"},
		{"numeric string", " 2.50 ", nil, "2.5", "2.5"},
		{"formatter", 3.0, map[scene.State]string{scene.StateNormal: "three"}, "three", "three"},
		{"emphasis formatter", 3.0, map[scene.State]string{scene.StateEmphasis: "THREE"}, "3", "THREE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newStub(geom.Pt(0, 0), geom.Pt(10, 0)).withLabel(map[string]any{"show": true})
			src.name = "a > b"
			src.value = tt.value
			src.formatted = tt.formatted
			e := New(src, 0, nil)

			l := e.Label()
			if l.Style.Text != tt.wantText {
				t.Errorf("text = %q, want %q", l.Style.Text, tt.wantText)
			}
			if l.HoverText() != tt.wantHover {
				t.Errorf("hover text = %q, want %q", l.HoverText(), tt.wantHover)
			}
		})
	}
}

func TestHoverOnlyLabel(t *testing.T) {
	src := newStub(geom.Pt(0, 0), geom.Pt(10, 0))
	src.value = 7
	src.options["emphasis"] = map[string]any{"label": map[string]any{"show": true, "color": "#f00", "fontSize": 16}}
	e := New(src, 0, nil)

	l := e.Label()
	if l.Ignore {
		t.Fatal("hover-only label must not be ignored")
	}
	if got := l.ActiveStyle().Text; got != "" {
		t.Errorf("normal text = %q, want empty", got)
	}
	e.Highlight()
	got := l.ActiveStyle()
	if got.Text != "7" || got.Fill != "#f00" || got.FontSize != 16 {
		t.Errorf("emphasis style = %+v", got)
	}
}

func TestLabelHiddenAfterUpdateClearsHover(t *testing.T) {
	src := newStub(geom.Pt(0, 0), geom.Pt(10, 0)).withLabel(map[string]any{"show": true})
	src.value = 4
	e := New(src, 0, nil)
	if got := e.Label().HoverText(); got != "4" {
		t.Fatalf("hover text = %q, want %q", got, "4")
	}

	src.withLabel(map[string]any{"show": false})
	e.UpdateData(src, 0, nil)

	l := e.Label()
	if !l.Ignore {
		t.Error("label should be ignored once show and hover show are off")
	}
	if l.Hover == nil || l.Hover.Text != "" {
		t.Errorf("hover overlay = %+v, want an empty overlay", l.Hover)
	}
	if l.Style.Text != "" {
		t.Errorf("text = %q, want empty", l.Style.Text)
	}
}

func TestLabelLayoutCacheDefaults(t *testing.T) {
	src := newStub(geom.Pt(0, 0), geom.Pt(10, 0)).withLabel(map[string]any{"show": true})
	c := New(src, 0, nil).Label().Cache()
	if c.Position != PosMiddle || c.Distance != (style.Pair{5, 5}) {
		t.Errorf("cache = %+v", c)
	}

	src.withLabel(map[string]any{"show": true, "position": "end", "distance": []any{3.0, 4.0}, "align": "right"})
	c = New(src, 0, nil).Label().Cache()
	if c.Position != PosEnd || c.Distance != (style.Pair{3, 4}) || c.Align != "right" {
		t.Errorf("cache = %+v", c)
	}
}

func TestOpacityPrecedence(t *testing.T) {
	half, quarter := 0.5, 0.25
	tests := []struct {
		name   string
		visual *float64
		line   any
		want   float64
	}{
		{"default", nil, nil, 1},
		{"line style", nil, quarter, 0.25},
		{"visual wins", &half, quarter, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newStub(geom.Pt(0, 0), geom.Pt(10, 0))
			src.visual.Opacity = tt.visual
			if tt.line != nil {
				src.options["lineStyle"] = map[string]any{"opacity": tt.line}
			}
			e := New(src, 0, nil)
			if got := e.Line().Style.Opacity; got != tt.want {
				t.Errorf("line opacity = %v, want %v", got, tt.want)
			}
			if got := e.Marker(To).Style.Opacity; got != tt.want {
				t.Errorf("marker opacity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSeriesScopeFastPath(t *testing.T) {
	src := newStub(geom.Pt(0, 0), geom.Pt(10, 0))
	src.options["lineStyle"] = map[string]any{"width": 4}
	scope := &SeriesScope{LineStyle: style.LineStyle{Width: 2}}

	e := New(src, 0, scope)
	if got := e.Line().Style.LineWidth; got != 2 {
		t.Errorf("without item options width = %v, want scope width 2", got)
	}

	src.itemOption = true
	e.UpdateData(src, 0, scope)
	if got := e.Line().Style.LineWidth; got != 4 {
		t.Errorf("with item options width = %v, want item width 4", got)
	}
}

func TestHighlight(t *testing.T) {
	src := newStub(geom.Pt(0, 0), geom.Pt(10, 0)).withLabel(map[string]any{"show": true})
	src.visual.Color = "#000000"
	e := New(src, 0, nil)

	e.Highlight()
	if e.State() != scene.StateEmphasis || e.Line().State() != scene.StateEmphasis ||
		e.Label().State() != scene.StateEmphasis || e.Marker(To).State() != scene.StateEmphasis {
		t.Fatal("Highlight() must switch every sub-element")
	}
	if got := e.Line().ActiveStyle().Stroke; got == "#000000" || got == "" {
		t.Errorf("emphasis stroke = %q, want a lifted color", got)
	}
	if got := e.Marker(To).ActiveStyle().Fill; got != e.Line().ActiveStyle().Stroke {
		t.Errorf("marker emphasis fill = %q, want line emphasis stroke", got)
	}

	e.Downplay()
	if e.Line().ActiveStyle().Stroke != "#000000" || e.Marker(To).State() != scene.StateNormal {
		t.Error("Downplay() must restore the normal state")
	}
}

func TestEmptyMarkerPaint(t *testing.T) {
	src := newStub(geom.Pt(0, 0), geom.Pt(10, 0))
	src.visual.To.Kind = "emptyCircle"
	m := New(src, 0, nil).Marker(To)
	if m.Style.Fill != "#fff" || m.Style.Stroke != src.visual.Color {
		t.Errorf("empty marker paint = %+v", m.Style)
	}
}

func TestSetLinePointsRoundTrip(t *testing.T) {
	tests := [][]geom.Point{
		{geom.Pt(1, 2), geom.Pt(3, 4)},
		{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(5, -5)},
	}
	for _, pts := range tests {
		e := New(newStub(geom.Pt(0, 0), geom.Pt(1, 1)), 0, nil)
		e.Curve().Progress = 0.3
		e.SetLinePoints(pts)
		got := e.Curve().Points()
		if len(got) != len(pts) {
			t.Fatalf("Points() = %v, want %v", got, pts)
		}
		for i := range pts {
			if got[i] != pts[i] {
				t.Errorf("point %d = %v, want %v", i, got[i], pts[i])
			}
		}
		if e.Curve().Progress != 1 {
			t.Errorf("progress = %v, want 1", e.Curve().Progress)
		}
	}
}

func TestUpdateDataAnimatesGeometry(t *testing.T) {
	tl := anim.NewTimeline(anim.Linear)
	src := newStub(geom.Pt(0, 0), geom.Pt(10, 0))
	e := New(src, 0, nil, WithAnimator(tl))
	tl.Finish()

	src.points = []geom.Point{geom.Pt(0, 0), geom.Pt(20, 0)}
	e.UpdateData(src, 0, nil)
	tl.Seek(0.5)
	if got := e.Curve().P1; !geom.Near(got, geom.Pt(15, 0), 1e-9) {
		t.Errorf("P1 halfway = %v, want (15,0)", got)
	}
	tl.Finish()
	if got := e.Curve().P1; got != geom.Pt(20, 0) || e.Curve().HasControl {
		t.Errorf("P1 after update = %v (control %v)", got, e.Curve().HasControl)
	}
}

func TestUpdateLayoutIsImmediate(t *testing.T) {
	tl := anim.NewTimeline(nil)
	src := newStub(geom.Pt(0, 0), geom.Pt(10, 0))
	e := New(src, 0, nil, WithAnimator(tl))
	tl.Finish()

	src.points = []geom.Point{geom.Pt(5, 5), geom.Pt(6, 6), geom.Pt(7, 0)}
	e.UpdateLayout(src, 0)
	if tl.Active() {
		t.Error("UpdateLayout should not start a transition")
	}
	if !e.Curve().HasControl || e.Curve().P0 != geom.Pt(5, 5) {
		t.Errorf("curve = %+v", *e.Curve())
	}
}

var _ data.Source = (*stubSource)(nil)
