package scene

import "github.com/matzehuels/linkdraw/pkg/geom"

// WalkFunc is called for every visited node with its world transform.
// Returning false skips the node's children.
type WalkFunc func(n Node, world geom.Matrix) bool

// Walk visits root and its descendants depth-first in paint order. Ignored
// nodes and their subtrees are skipped.
func Walk(root Node, fn WalkFunc) {
	walk(root, geom.Identity(), fn)
}

func walk(n Node, parent geom.Matrix, fn WalkFunc) {
	b := n.Attr()
	if b.Ignore {
		return
	}
	world := parent.Mul(b.LocalMatrix())
	if !fn(n, world) {
		return
	}
	if g, ok := n.(*Group); ok {
		for _, c := range g.children {
			walk(c, world, fn)
		}
	}
}

// Root returns the topmost ancestor of n.
func Root(n Node) Node {
	for p := n.Attr().parent; p != nil; p = p.parent {
		n = p
	}
	return n
}
