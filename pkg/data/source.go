// Package data adapts datasets into the per-item records a connector reads.
//
// [Source] is the narrow read-only view a connector consumes. [List] is the
// concrete source built from a decoded dataset: it resolves item options over
// series options, derives item geometry and formats label text.
package data

import (
	"github.com/matzehuels/linkdraw/pkg/geom"
	"github.com/matzehuels/linkdraw/pkg/scene"
	"github.com/matzehuels/linkdraw/pkg/style"
)

// Source is a read-only collection of connector records.
type Source interface {
	// Count returns the number of records.
	Count() int
	// ItemLayout returns the endpoints and optional control point of record i.
	ItemLayout(i int) []geom.Point
	// ItemVisual returns the resolved visual channels of record i.
	ItemVisual(i int) Visual
	// ItemModel returns the option model of record i. Its parent is the
	// series model.
	ItemModel(i int) *style.Model
	// FormattedLabel returns the formatter output for record i in state. The
	// bool is false when no formatter applies.
	FormattedLabel(i int, state scene.State) (string, bool)
	// RawValue returns the record's value, or nil.
	RawValue(i int) any
	// Name returns the record's display name.
	Name(i int) string
	// HasItemOption reports whether any record overrides series options.
	HasItemOption() bool
	// SeriesModel returns the shared series model.
	SeriesModel() *style.Model
}

// Visual is the resolved visual encoding of one record.
type Visual struct {
	Color   string
	Opacity *float64
	From    SymbolVisual
	To      SymbolVisual
}

// SymbolVisual describes the marker at one end of a connector.
type SymbolVisual struct {
	Kind       string
	Size       style.Pair
	Offset     style.Pair
	Rotate     *float64 // degrees; nil follows the curve
	KeepAspect bool
}
