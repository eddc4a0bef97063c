package connector_test

import (
	"fmt"

	"github.com/matzehuels/linkdraw/pkg/connector"
	"github.com/matzehuels/linkdraw/pkg/data"
	pkgio "github.com/matzehuels/linkdraw/pkg/io"
)

func Example() {
	ds := &pkgio.Dataset{
		Series: pkgio.Series{Options: map[string]any{
			"symbol": []any{"none", "arrow"},
			"label":  map[string]any{"show": true, "position": "middle"},
		}},
		Links: []pkgio.Link{{Coords: [][2]float64{{0, 0}, {10, 0}}, Value: 42}},
	}
	list, err := data.NewList(ds)
	if err != nil {
		panic(err)
	}

	scope := connector.NewSeriesScope(list.SeriesModel())
	e := connector.New(list, 0, scope)
	e.Layout()

	l := e.Label()
	fmt.Println(l.Style.Text, l.Position, l.Style.Align, l.Style.VerticalAlign)
	fmt.Println(e.Marker(connector.To).Kind(), e.Marker(connector.To).Position)
	// Output:
	// 42 {5 -5} center bottom
	// arrow {10 0}
}
