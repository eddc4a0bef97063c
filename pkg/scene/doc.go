// Package scene is a small retained scene graph for connector rendering.
//
// The tree is made of [Group], [Path] and [Text] nodes. Every node embeds a
// [Base] carrying its local transform, an ignore flag, a dirty flag and the
// interaction [State]. Parents are tracked with read-only back-references so
// that a node can inspect its ancestor chain (for example to compensate
// inherited scaling) without owning it.
//
// # Transforms
//
// A node's local transform is
//
//	translate(position + origin) · rotate(rotation) · scale(scaleX, scaleY) · translate(-origin)
//
// A positive rotation turns counter-clockwise on the y-down canvas. Sinks
// that use the opposite convention (SVG, gg) negate the angle.
//
// # States
//
// Nodes hold a base style and an optional emphasis overlay. [PaintFor] and
// [TextFor] are pure functions mapping the node's current [State] to the
// style a renderer must use.
package scene
