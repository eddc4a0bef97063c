package style

import (
	"strings"
)

// Model is a node of an option tree. A nil *Model is valid and empty.
type Model struct {
	option map[string]any
	parent *Model
}

// NewModel wraps option with an optional parent used for fallback lookups.
func NewModel(option map[string]any, parent *Model) *Model {
	return &Model{option: option, parent: parent}
}

// Option returns the raw option map of m.
func (m *Model) Option() map[string]any {
	if m == nil {
		return nil
	}
	return m.option
}

// Parent returns the fallback model.
func (m *Model) Parent() *Model {
	if m == nil {
		return nil
	}
	return m.parent
}

// Get resolves a dot path on m, falling back to the parent when the path is
// unset locally.
func (m *Model) Get(path string) any {
	if m == nil {
		return nil
	}
	if v := lookup(m.option, path); v != nil {
		return v
	}
	return m.parent.Get(path)
}

// GetShallow reads a single key of m without walking nested options.
func (m *Model) GetShallow(key string) any {
	if m == nil {
		return nil
	}
	if v, ok := m.option[key]; ok && v != nil {
		return v
	}
	return m.parent.GetShallow(key)
}

// GetModel returns the sub-model at path. Its parent is the sub-model at the
// same path of m's parent.
func (m *Model) GetModel(path string) *Model {
	if m == nil {
		return nil
	}
	sub, _ := lookup(m.option, path).(map[string]any)
	return &Model{option: sub, parent: m.parent.GetModel(path)}
}

// Bool reads a boolean at path.
func (m *Model) Bool(path string) (bool, bool) {
	b, ok := m.Get(path).(bool)
	return b, ok
}

// Float reads a number at path.
func (m *Model) Float(path string) (float64, bool) {
	return toFloat(m.Get(path))
}

// String reads a string at path.
func (m *Model) String(path string) (string, bool) {
	s, ok := m.Get(path).(string)
	return s, ok
}

// Pair reads a scalar-or-pair at path; see [PairOf].
func (m *Model) Pair(path string) (Pair, bool) {
	return PairOf(m.Get(path))
}

func lookup(option map[string]any, path string) any {
	if option == nil {
		return nil
	}
	cur := any(option)
	for _, key := range strings.Split(path, ".") {
		node, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = node[key]
	}
	return cur
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// Number converts any decoded numeric value to float64.
func Number(v any) (float64, bool) { return toFloat(v) }
