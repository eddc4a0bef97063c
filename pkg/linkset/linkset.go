// Package linkset manages the collection of connectors drawn for one series.
//
// A [Set] owns a root scene group holding one [connector.Element] per data
// record. [Set.Update] reconciles elements with a new source by index:
// existing elements receive the new record, new records get new elements and
// surplus elements are removed. [Set.Frame] runs the per-frame layout over
// every element.
package linkset

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/linkdraw/pkg/connector"
	"github.com/matzehuels/linkdraw/pkg/data"
	"github.com/matzehuels/linkdraw/pkg/errors"
	"github.com/matzehuels/linkdraw/pkg/observability"
	"github.com/matzehuels/linkdraw/pkg/scene"
)

// Set is the host of a series' connectors. It is not safe for concurrent
// use; a laid-out tree may be rendered concurrently.
type Set struct {
	root     *scene.Group
	elements []*connector.Element
	src      data.Source
	logger   *log.Logger
	opts     []connector.Option
	ctx      context.Context
}

// New creates an empty set. opts are passed to every element it builds.
func New(logger *log.Logger, opts ...connector.Option) *Set {
	if logger == nil {
		logger = log.Default()
	}
	s := &Set{
		root:   scene.NewGroup("links"),
		logger: logger,
		ctx:    context.Background(),
	}
	s.opts = append(append(s.opts, opts...), connector.WithMarkerRebuild(s.markerRebuilt))
	return s
}

func (s *Set) markerRebuilt(cat connector.Category, from, to string) {
	s.logger.Debug("rebuilt marker", "category", cat, "from", from, "to", to)
	observability.Frame().OnMarkerRebuild(s.ctx, cat.String(), from, to)
}

// Group returns the root group. Attach it under a scaled parent to zoom.
func (s *Set) Group() *scene.Group { return s.root }

// Source returns the source of the last Update.
func (s *Set) Source() data.Source { return s.src }

// Elements returns the connectors in record order.
func (s *Set) Elements() []*connector.Element { return s.elements }

// Len returns the number of connectors.
func (s *Set) Len() int { return len(s.elements) }

// Update reconciles the set with src.
func (s *Set) Update(ctx context.Context, src data.Source) {
	s.ctx = ctx
	defer func() { s.ctx = context.Background() }()

	scope := connector.NewSeriesScope(src.SeriesModel())
	n := src.Count()
	added, updated, removed := 0, 0, 0

	for i := 0; i < n; i++ {
		if i < len(s.elements) {
			s.elements[i].UpdateData(src, i, scope)
			updated++
			continue
		}
		e := connector.New(src, i, scope, s.opts...)
		s.root.Add(e.Group())
		s.elements = append(s.elements, e)
		added++
	}
	for _, e := range s.elements[n:] {
		s.root.Remove(e.Group())
		removed++
	}
	clear(s.elements[n:])
	s.elements = s.elements[:n]
	s.src = src

	s.logger.Debug("updated links", "added", added, "updated", updated, "removed", removed)
}

// UpdateLayout moves every connector to its record's current geometry
// without transitions.
func (s *Set) UpdateLayout(src data.Source) {
	for i, e := range s.elements {
		e.UpdateLayout(src, i)
	}
}

// Frame lays out every connector and returns how many did work.
func (s *Set) Frame(ctx context.Context) int {
	start := time.Now()
	laidOut := 0
	for _, e := range s.elements {
		if e.Layout() {
			laidOut++
		}
	}
	observability.Frame().OnFrame(ctx, len(s.elements), laidOut, time.Since(start))
	return laidOut
}

// Invalidate forces a layout of every connector on the next Frame, for
// example after an ancestor's scale changed.
func (s *Set) Invalidate() {
	for _, e := range s.elements {
		e.Group().MarkDirty()
	}
}

// Highlight switches connector i to the emphasis state.
func (s *Set) Highlight(i int) error {
	e, err := s.at(i)
	if err != nil {
		return err
	}
	e.Highlight()
	return nil
}

// Downplay switches connector i back to the normal state.
func (s *Set) Downplay(i int) error {
	e, err := s.at(i)
	if err != nil {
		return err
	}
	e.Downplay()
	return nil
}

// Toggle flips connector i between normal and emphasis.
func (s *Set) Toggle(i int) error {
	e, err := s.at(i)
	if err != nil {
		return err
	}
	if e.State() == scene.StateEmphasis {
		e.Downplay()
	} else {
		e.Highlight()
	}
	return nil
}

func (s *Set) at(i int) (*connector.Element, error) {
	if i < 0 || i >= len(s.elements) {
		return nil, errors.New(errors.ErrCodeNotFound, "link %d out of range (have %d)", i, len(s.elements))
	}
	return s.elements[i], nil
}
