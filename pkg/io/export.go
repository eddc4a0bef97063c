package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Layout is the JSON dump of a laid-out frame.
type Layout struct {
	Width    float64    `json:"width"`
	Height   float64    `json:"height"`
	InvScale float64    `json:"inv_scale"`
	Links    []LinkPose `json:"links"`
}

// LinkPose is the computed state of one connector.
type LinkPose struct {
	Index    int          `json:"index"`
	Name     string       `json:"name,omitempty"`
	State    string       `json:"state"`
	Points   [][2]float64 `json:"points"`
	Progress float64      `json:"progress"`
	Stroke   string       `json:"stroke,omitempty"`
	Opacity  float64      `json:"opacity"`
	Markers  []MarkerPose `json:"markers,omitempty"`
	Label    *LabelPose   `json:"label,omitempty"`
}

// MarkerPose is the pose of an endpoint marker.
type MarkerPose struct {
	Category string     `json:"category"`
	Kind     string     `json:"kind"`
	Position [2]float64 `json:"position"`
	Rotation float64    `json:"rotation"`
	Scale    float64    `json:"scale"`
}

// LabelPose is the pose and resolved content of a label.
type LabelPose struct {
	Text          string     `json:"text"`
	HoverText     string     `json:"hover_text,omitempty"`
	Policy        string     `json:"policy"`
	Position      [2]float64 `json:"position"`
	Rotation      float64    `json:"rotation"`
	Origin        [2]float64 `json:"origin"`
	Align         string     `json:"align"`
	VerticalAlign string     `json:"vertical_align"`
}

// WriteLayout encodes l as indented JSON to w.
func WriteLayout(l Layout, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportLayout writes l to a JSON file at path.
func ExportLayout(l Layout, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteLayout(l, f)
}
