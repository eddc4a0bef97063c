package io

// Dataset is a decoded dataset file.
type Dataset struct {
	Series Series `json:"series" toml:"series" yaml:"series"`
	Nodes  []Node `json:"nodes,omitempty" toml:"nodes,omitempty" yaml:"nodes,omitempty"`
	Links  []Link `json:"links" toml:"links" yaml:"links"`
}

// Series holds the options shared by every link.
type Series struct {
	Name    string         `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`
	Options map[string]any `json:"options,omitempty" toml:"options,omitempty" yaml:"options,omitempty"`
}

// Node is a named anchor that links can reference. X and Y are nil for nodes
// that still need placement.
type Node struct {
	ID    string   `json:"id" toml:"id" yaml:"id"`
	Label string   `json:"label,omitempty" toml:"label,omitempty" yaml:"label,omitempty"`
	X     *float64 `json:"x,omitempty" toml:"x,omitempty" yaml:"x,omitempty"`
	Y     *float64 `json:"y,omitempty" toml:"y,omitempty" yaml:"y,omitempty"`
}

// Placed reports whether the node has explicit coordinates.
func (n Node) Placed() bool { return n.X != nil && n.Y != nil }

// Link is one connector record.
type Link struct {
	Name    string         `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`
	Source  string         `json:"source,omitempty" toml:"source,omitempty" yaml:"source,omitempty"`
	Target  string         `json:"target,omitempty" toml:"target,omitempty" yaml:"target,omitempty"`
	Coords  [][2]float64   `json:"coords,omitempty" toml:"coords,omitempty" yaml:"coords,omitempty"`
	Value   any            `json:"value,omitempty" toml:"value,omitempty" yaml:"value,omitempty"`
	Options map[string]any `json:"options,omitempty" toml:"options,omitempty" yaml:"options,omitempty"`
}

// NodeByID returns the node with id.
func (d *Dataset) NodeByID(id string) (Node, bool) {
	for _, n := range d.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Unplaced reports whether any node lacks coordinates.
func (d *Dataset) Unplaced() bool {
	for _, n := range d.Nodes {
		if !n.Placed() {
			return true
		}
	}
	return false
}
