// Package symbol builds the marker shapes drawn at connector endpoints.
//
// Shapes are looked up by kind in a [Registry]. A kind prefixed with "empty"
// (for example "emptyCircle") is the stroked, white-filled variant of the
// base kind. The "none" kind never resolves.
package symbol

import (
	"math"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/matzehuels/linkdraw/pkg/geom"
)

// None is the sentinel kind meaning "no marker".
const None = "none"

// Factory builds the outline of a shape fitted into the box (x, y, w, h).
type Factory func(x, y, w, h float64) geom.Outline

// Shape is a marker outline with its kind and box.
type Shape struct {
	kind    string
	factory Factory
	empty   bool

	X, Y, W, H float64
	KeepAspect bool
}

// Kind returns the kind the shape was created with, including any "empty"
// prefix.
func (s *Shape) Kind() string { return s.kind }

// Empty reports whether the shape is drawn stroked with a white fill.
func (s *Shape) Empty() bool { return s.empty }

// SetBox refits the shape into a new box.
func (s *Shape) SetBox(x, y, w, h float64) {
	s.X, s.Y, s.W, s.H = x, y, w, h
}

// Outline implements geom.Shape.
func (s *Shape) Outline() geom.Outline {
	x, y, w, h := s.X, s.Y, s.W, s.H
	if s.KeepAspect && w != h {
		side := math.Min(w, h)
		x += (w - side) / 2
		y += (h - side) / 2
		w, h = side, side
	}
	return s.factory(x, y, w, h)
}

// Registry maps kinds to factories. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns a registry holding the built-in kinds.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	for k, f := range builtins {
		r.factories[k] = f
	}
	return r
}

// Register adds or replaces a kind.
func (r *Registry) Register(kind string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[kind] = f
}

// Lookup returns the factory for kind and whether kind is an "empty" variant.
func (r *Registry) Lookup(kind string) (f Factory, empty, ok bool) {
	if kind == "" || kind == None {
		return nil, false, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if f, ok := r.factories[kind]; ok {
		return f, false, true
	}
	if base, ok := strings.CutPrefix(kind, "empty"); ok && base != "" {
		rs := []rune(base)
		rs[0] = unicode.ToLower(rs[0])
		if f, ok := r.factories[string(rs)]; ok {
			return f, true, true
		}
	}
	return nil, false, false
}

// Known reports whether kind resolves to a shape.
func (r *Registry) Known(kind string) bool {
	_, _, ok := r.Lookup(kind)
	return ok
}

// Kinds returns the registered base kinds in sorted order.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]string, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Create builds a shape of kind in the box (x, y, w, h). It returns false for
// "none", the empty kind and unknown kinds.
func (r *Registry) Create(kind string, x, y, w, h float64, keepAspect bool) (*Shape, bool) {
	f, empty, ok := r.Lookup(kind)
	if !ok {
		return nil, false
	}
	return &Shape{
		kind:       kind,
		factory:    f,
		empty:      empty,
		X:          x,
		Y:          y,
		W:          w,
		H:          h,
		KeepAspect: keepAspect,
	}, true
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry { return defaultRegistry }

// Create builds a shape from the default registry.
func Create(kind string, x, y, w, h float64, keepAspect bool) (*Shape, bool) {
	return defaultRegistry.Create(kind, x, y, w, h, keepAspect)
}
