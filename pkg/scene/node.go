package scene

import (
	"slices"

	"github.com/matzehuels/linkdraw/pkg/geom"
)

// State is the interaction state of a node.
type State int

const (
	StateNormal State = iota
	StateEmphasis
)

// String returns "normal" or "emphasis".
func (s State) String() string {
	if s == StateEmphasis {
		return "emphasis"
	}
	return "normal"
}

// Node is any element of the scene tree.
type Node interface {
	Attr() *Base
}

// Base holds the attributes shared by every node.
type Base struct {
	Name     string
	Position geom.Point
	Rotation float64
	ScaleX   float64
	ScaleY   float64
	Origin   geom.Point
	Ignore   bool

	parent *Group
	dirty  bool
	state  State
}

func newBase(name string) Base {
	return Base{Name: name, ScaleX: 1, ScaleY: 1, dirty: true}
}

// Attr implements Node.
func (b *Base) Attr() *Base { return b }

// Parent returns the group holding this node, or nil for a root.
func (b *Base) Parent() *Group { return b.parent }

// MarkDirty flags the node's geometry as changed.
func (b *Base) MarkDirty() { b.dirty = true }

// Dirty reports whether the geometry changed since the last ClearDirty.
func (b *Base) Dirty() bool { return b.dirty }

// ClearDirty resets the dirty flag after a layout pass.
func (b *Base) ClearDirty() { b.dirty = false }

// State returns the node's interaction state.
func (b *Base) State() State { return b.state }

// SetState switches the node's interaction state.
func (b *Base) SetState(s State) { b.state = s }

// SetScale sets the same scale on both axes.
func (b *Base) SetScale(s float64) { b.ScaleX, b.ScaleY = s, s }

// LocalMatrix returns the node's transform relative to its parent.
func (b *Base) LocalMatrix() geom.Matrix {
	m := geom.Translate(b.Position.X+b.Origin.X, b.Position.Y+b.Origin.Y)
	if b.Rotation != 0 {
		m = m.Mul(geom.Rotate(b.Rotation))
	}
	m = m.Mul(geom.Scale(b.ScaleX, b.ScaleY))
	return m.Mul(geom.Translate(-b.Origin.X, -b.Origin.Y))
}

// Group is an ordered container of nodes.
type Group struct {
	Base
	children []Node
}

// NewGroup creates an empty group with unit scale.
func NewGroup(name string) *Group {
	return &Group{Base: newBase(name)}
}

// Add appends n and makes g its parent. A node already attached elsewhere is
// detached first.
func (g *Group) Add(n Node) {
	if n == nil {
		return
	}
	if p := n.Attr().parent; p != nil {
		p.Remove(n)
	}
	n.Attr().parent = g
	g.children = append(g.children, n)
	g.MarkDirty()
}

// Remove detaches n from g. It is a no-op when n is not a child of g.
func (g *Group) Remove(n Node) {
	if n == nil {
		return
	}
	i := slices.Index(g.children, n)
	if i < 0 {
		return
	}
	g.children = slices.Delete(g.children, i, i+1)
	n.Attr().parent = nil
	g.MarkDirty()
}

// ChildOfName returns the first child with the given name.
func (g *Group) ChildOfName(name string) Node {
	for _, c := range g.children {
		if c.Attr().Name == name {
			return c
		}
	}
	return nil
}

// Children returns the children in paint order.
func (g *Group) Children() []Node { return g.children }

// Len returns the number of children.
func (g *Group) Len() int { return len(g.children) }

// Path is a stroked or filled shape.
type Path struct {
	Base
	Shape    geom.Shape
	Style    Paint
	Emphasis *PaintOverlay
}

// NewPath creates a path node for shape.
func NewPath(name string, shape geom.Shape) *Path {
	return &Path{Base: newBase(name), Shape: shape}
}

// SetShape replaces the shape and marks the node dirty.
func (p *Path) SetShape(s geom.Shape) {
	p.Shape = s
	p.MarkDirty()
}

// ActiveStyle returns the paint for the node's current state.
func (p *Path) ActiveStyle() Paint { return PaintFor(p.state, p.Style, p.Emphasis) }

// Text is a single-line text label anchored at its position.
type Text struct {
	Base
	Style TextStyle
	Hover *TextOverlay
}

// NewText creates a text node.
func NewText(name string) *Text {
	return &Text{Base: newBase(name)}
}

// ActiveStyle returns the text style for the node's current state.
func (t *Text) ActiveStyle() TextStyle { return TextFor(t.state, t.Style, t.Hover) }
