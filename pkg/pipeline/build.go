package pipeline

import (
	"context"

	"github.com/matzehuels/linkdraw/pkg/anim"
	"github.com/matzehuels/linkdraw/pkg/connector"
	"github.com/matzehuels/linkdraw/pkg/data"
	pkgio "github.com/matzehuels/linkdraw/pkg/io"
	"github.com/matzehuels/linkdraw/pkg/linkset"
	"github.com/matzehuels/linkdraw/pkg/placement"
	"github.com/matzehuels/linkdraw/pkg/scene"
)

// Place positions the dataset's unplaced nodes.
func Place(ctx context.Context, ds *pkgio.Dataset, opts Options) error {
	return placement.Place(ctx, ds, placement.Options{RankDir: opts.RankDir, Margin: 20})
}

// Positions returns the coordinates of every placed node.
func Positions(ds *pkgio.Dataset) map[string][2]float64 {
	out := make(map[string][2]float64, len(ds.Nodes))
	for _, n := range ds.Nodes {
		if n.Placed() {
			out[n.ID] = [2]float64{*n.X, *n.Y}
		}
	}
	return out
}

// ApplyPositions fills unplaced nodes from pos and reports whether every
// node ended up placed.
func ApplyPositions(ds *pkgio.Dataset, pos map[string][2]float64) bool {
	for i := range ds.Nodes {
		n := &ds.Nodes[i]
		if n.Placed() {
			continue
		}
		p, ok := pos[n.ID]
		if !ok {
			return false
		}
		x, y := p[0], p[1]
		n.X, n.Y = &x, &y
	}
	return true
}

// BuildFrame turns a placed dataset into a laid out scene.
//
// The connectors are created on a linear timeline so that their reveal can
// be stopped exactly at opts.Progress. The set hangs below a canvas group
// scaled by opts.Zoom, so markers and labels keep their on-screen size.
func BuildFrame(ctx context.Context, ds *pkgio.Dataset, opts Options) (*Frame, error) {
	opts.SetFrameDefaults()

	list, err := data.NewList(ds)
	if err != nil {
		return nil, err
	}
	if err := ValidateStyles(list); err != nil {
		return nil, err
	}

	canvas := scene.NewGroup("canvas")
	canvas.SetScale(opts.Zoom)

	timeline := anim.NewTimeline(anim.Linear)
	set := linkset.New(opts.Logger, connector.WithAnimator(timeline))
	canvas.Add(set.Group())
	set.Update(ctx, list)

	if opts.Progress >= 1 {
		timeline.Finish()
	} else {
		timeline.Seek(opts.Progress)
	}
	laidOut := set.Frame(ctx)

	for _, i := range opts.Highlight {
		if err := set.Highlight(i); err != nil {
			return nil, err
		}
	}
	return &Frame{Set: set, Width: opts.Width, Height: opts.Height, LaidOut: laidOut}, nil
}

// Root returns the topmost group of the frame, the canvas.
func (f *Frame) Root() scene.Node { return scene.Root(f.Set.Group()) }
