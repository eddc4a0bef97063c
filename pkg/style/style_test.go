package style

import (
	"strings"
	"testing"
)

func TestModelFallback(t *testing.T) {
	series := NewModel(map[string]any{
		"lineStyle": map[string]any{"width": 2, "color": "#333"},
		"label":     map[string]any{"show": true, "distance": []any{3.0, 4.0}},
	}, nil)
	item := NewModel(map[string]any{
		"lineStyle": map[string]any{"color": "#c23531"},
	}, series)

	ls := LineStyleOf(item.GetModel("lineStyle"))
	if ls.Color != "#c23531" {
		t.Errorf("Color = %q, want item override", ls.Color)
	}
	if ls.Width != 2 {
		t.Errorf("Width = %v, want 2 from series", ls.Width)
	}

	lbl := LabelOf(item.GetModel("label"))
	if !lbl.Show {
		t.Error("Show = false, want true from series")
	}
	if lbl.Distance != (Pair{3, 4}) {
		t.Errorf("Distance = %v, want [3 4]", lbl.Distance)
	}
}

func TestNilModel(t *testing.T) {
	var m *Model
	if m.Get("a.b") != nil {
		t.Error("nil model Get() should be nil")
	}
	if m.GetModel("x") != nil {
		t.Error("nil model GetModel() should be nil")
	}
	if _, ok := m.Float("width"); ok {
		t.Error("nil model Float() should not be ok")
	}
}

func TestPairOf(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Pair
		ok   bool
	}{
		{"float scalar", 6.0, Pair{6, 6}, true},
		{"int scalar", 4, Pair{4, 4}, true},
		{"toml int", int64(8), Pair{8, 8}, true},
		{"pair", []any{2.0, 3.0}, Pair{2, 3}, true},
		{"single element", []any{5.0}, Pair{5, 5}, true},
		{"too long", []any{1.0, 2.0, 3.0}, Pair{}, false},
		{"string", "10", Pair{}, false},
		{"nil", nil, Pair{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PairOf(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Errorf("PairOf(%v) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestLineStyleOver(t *testing.T) {
	op := 0.4
	base := LineStyle{Color: "#111111", Width: 2, Type: LineSolid, Opacity: &op}
	hover := LineStyle{Width: 4}.Over(base)

	if hover.Width != 4 || hover.Color != "#111111" || hover.Opacity != &op {
		t.Errorf("Over() = %+v", hover)
	}
}

func TestLineStyleDash(t *testing.T) {
	if d := (LineStyle{Type: LineDashed, Width: 2}).Dash(); len(d) != 2 || d[0] != 8 || d[1] != 4 {
		t.Errorf("dashed Dash() = %v, want [8 4]", d)
	}
	if d := (LineStyle{Type: LineSolid}).Dash(); d != nil {
		t.Errorf("solid Dash() = %v, want nil", d)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in    string
		hex   string
		alpha float64
	}{
		{"#fff", "#ffffff", 1},
		{"#C23531", "#c23531", 1},
		{"rgb(255, 0, 0)", "#ff0000", 1},
		{"rgba(0,0,255,0.5)", "#0000ff", 0.5},
		{"black", "#000000", 1},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, a, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error = %v", tt.in, err)
			}
			if c.Hex() != tt.hex || a != tt.alpha {
				t.Errorf("ParseColor(%q) = %s/%v, want %s/%v", tt.in, c.Hex(), a, tt.hex, tt.alpha)
			}
		})
	}

	if _, _, err := ParseColor("chartreuse-ish"); err == nil {
		t.Error("ParseColor(unknown) should fail")
	}
}

func TestLift(t *testing.T) {
	got := Lift("#000000", 0.5)
	if !strings.HasPrefix(got, "#") || got == "#000000" {
		t.Errorf("Lift(#000000, 0.5) = %q, want a lighter color", got)
	}
	if Lift("not a color", 0.1) != "not a color" {
		t.Error("Lift() should pass through unparseable colors")
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.1 + 0.2, "0.3"},
		{42, "42"},
		{-1.5, "-1.5"},
		{1.23456789012345, "1.2345678901"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
