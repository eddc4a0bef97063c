package placement

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/linkdraw/pkg/geom"
	pkgio "github.com/matzehuels/linkdraw/pkg/io"
)

func ptr(v float64) *float64 { return &v }

func TestParsePlain(t *testing.T) {
	out := `graph 1 3 2
node a 0.5 1.5 0.1 0.1 a solid point black lightgrey
node "b c" 2.5 0.5 0.1 0.1 "b c" solid point black lightgrey
edge a "b c" 4 0.6 1.5 1 1 2 0.5 2.4 0.5 solid black
stop
`
	pos, err := ParsePlain(strings.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		id   string
		want geom.Point
	}{
		{"a", geom.Pt(36, 36)},
		{"b c", geom.Pt(180, 108)},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got, ok := pos[tt.id]; !ok || !geom.Near(got, tt.want, 1e-9) {
				t.Errorf("pos[%q] = %v (%v), want %v", tt.id, got, ok, tt.want)
			}
		})
	}
}

func TestParsePlainMalformed(t *testing.T) {
	for _, in := range []string{"graph 1", "graph 1 1 1\nnode a x 1"} {
		if _, err := ParsePlain(strings.NewReader(in)); err == nil {
			t.Errorf("ParsePlain(%q) should fail", in)
		}
	}
}

func TestFields(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"node a 1 2", []string{"node", "a", "1", "2"}},
		{`node "x y" 1`, []string{"node", "x y", "1"}},
		{`node "say \"hi\"" 1`, []string{"node", `say "hi"`, "1"}},
		{`node "" 1`, []string{"node", "", "1"}},
	}
	for _, tt := range tests {
		got := fields(tt.line)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
			t.Errorf("fields(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestToDOT(t *testing.T) {
	ds := &pkgio.Dataset{
		Nodes: []pkgio.Node{{ID: "a"}, {ID: "b"}},
		Links: []pkgio.Link{
			{Source: "a", Target: "b"},
			{Coords: [][2]float64{{0, 0}, {1, 1}}},
		},
	}
	dot := ToDOT(ds, Options{})
	for _, want := range []string{"rankdir=LR;", `"a";`, `"a" -> "b";`} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Count(dot, "->") != 1 {
		t.Errorf("only node links should become edges:\n%s", dot)
	}
}

func TestPlaceKeepsPlacedNodes(t *testing.T) {
	ds := &pkgio.Dataset{Nodes: []pkgio.Node{{ID: "a", X: ptr(3), Y: ptr(4)}}}
	if err := Place(context.Background(), ds, Options{}); err != nil {
		t.Fatal(err)
	}
	if *ds.Nodes[0].X != 3 || *ds.Nodes[0].Y != 4 {
		t.Errorf("placed node moved to (%v, %v)", *ds.Nodes[0].X, *ds.Nodes[0].Y)
	}
}

func TestPlace(t *testing.T) {
	ds := &pkgio.Dataset{
		Nodes: []pkgio.Node{{ID: "a"}, {ID: "b"}, {ID: "fixed", X: ptr(-1), Y: ptr(-1)}},
		Links: []pkgio.Link{{Source: "a", Target: "b"}},
	}
	if err := Place(context.Background(), ds, Options{Margin: 10}); err != nil {
		t.Fatal(err)
	}
	if ds.Unplaced() {
		t.Fatal("nodes left unplaced")
	}
	a, b := ds.Nodes[0], ds.Nodes[1]
	if *a.X >= *b.X {
		t.Errorf("rankdir LR should put a (%v) left of b (%v)", *a.X, *b.X)
	}
	if *ds.Nodes[2].X != -1 {
		t.Error("fixed node moved")
	}
}
