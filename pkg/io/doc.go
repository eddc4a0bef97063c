// Package io reads connector datasets and writes computed layouts.
//
// # Dataset Format
//
// A dataset describes one series of links. It can be written as JSON, TOML
// or YAML; the file extension selects the decoder.
//
//	{
//	  "series": {
//	    "name": "flows",
//	    "options": {
//	      "symbol": ["none", "arrow"],
//	      "symbolSize": 10,
//	      "lineStyle": {"color": "#5470c6", "width": 2},
//	      "label": {"show": true, "position": "middle"}
//	    }
//	  },
//	  "nodes": [
//	    {"id": "a", "x": 40, "y": 40},
//	    {"id": "b"}
//	  ],
//	  "links": [
//	    {"source": "a", "target": "b", "value": 12.5},
//	    {"coords": [[0, 0], [100, 0], [50, -40]], "name": "arc"}
//	  ]
//	}
//
// # Links
//
// A link takes its geometry from explicit "coords" (two endpoints and an
// optional control point) or from the positions of its "source" and "target"
// nodes. Nodes without x/y are placed automatically before rendering.
//
// The optional "options" object of a link overrides the series options for
// that link only. Recognized keys:
//
//   - symbol, symbolSize, symbolOffset, symbolRotate, symbolKeepAspect:
//     a scalar for both ends or a [from, to] pair
//   - opacity: visual opacity of the whole connector
//   - lineStyle: color, width, type (solid, dashed, dotted), opacity, curveness
//   - label: show, position, distance, formatter, color and font fields
//   - emphasis: lineStyle and label overrides for the highlighted state
//
// # Layout Export
//
// [WriteLayout] and [ExportLayout] dump the computed marker and label poses
// as JSON for external tools and for golden tests.
package io
