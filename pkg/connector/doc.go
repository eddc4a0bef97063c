// Package connector implements the directed connector element: a line or
// single-control-point curve between two anchors, decorated with optional
// endpoint markers and a label.
//
// An [Element] owns a scene subtree:
//
//	connector (group)
//	├── line        the curve, drawn up to its progress
//	├── label       text placed by one of 13 policies
//	├── fromSymbol  optional marker at the start
//	└── toSymbol    optional marker at the end
//
// The host builds one element per data record with [New], refreshes it with
// [Element.UpdateData] and calls [Element.Layout] once per frame. Layout
// only does work when the element or its curve changed. It orients markers
// along the curve, cancels the scaling inherited from ancestor groups so
// markers and labels keep a constant on-screen size, and anchors the label.
//
// # Label Policies
//
//	start, end                       beyond the endpoints, unrotated
//	middle                           above the midpoint, along the curve
//	insideStart, insideMiddle, insideEnd
//	insideStartTop, insideMiddleTop, insideEndTop
//	insideStartBottom, insideMiddleBottom, insideEndBottom
//
// The inside policies rotate the label with the curve's tangent at half the
// draw progress and keep the text upright when the connector runs right to
// left.
//
// Elements are not safe for concurrent use. A laid-out subtree can be read
// by several renderers at once.
package connector
