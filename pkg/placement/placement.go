// Package placement assigns positions to dataset nodes that have none.
//
// Placement builds a DOT digraph from the dataset's nodes and the links that
// reference them, lays it out with Graphviz's dot engine and reads the node
// centers back from the "plain" output format. Graphviz reports inches with
// the origin at the bottom left; positions are converted to points on a
// y-down canvas.
//
// Nodes that already carry coordinates are never moved.
package placement

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/linkdraw/pkg/errors"
	"github.com/matzehuels/linkdraw/pkg/geom"
	pkgio "github.com/matzehuels/linkdraw/pkg/io"
	"github.com/matzehuels/linkdraw/pkg/observability"
)

// PointsPerInch converts Graphviz coordinates to canvas units.
const PointsPerInch = 72

// Options tunes the dot layout.
type Options struct {
	// RankDir is the dot rankdir attribute: TB, LR, BT or RL. Default LR.
	RankDir string
	// NodeSep and RankSep are dot separations in inches.
	NodeSep float64
	RankSep float64
	// Margin is added around the laid out graph, in points.
	Margin float64
}

func (o *Options) setDefaults() {
	if o.RankDir == "" {
		o.RankDir = "LR"
	}
	if o.NodeSep == 0 {
		o.NodeSep = 0.5
	}
	if o.RankSep == 0 {
		o.RankSep = 1
	}
}

// Place fills in X and Y for every unplaced node of ds.
func Place(ctx context.Context, ds *pkgio.Dataset, opts Options) (err error) {
	start := time.Now()
	defer func() {
		observability.Pipeline().OnPlaceComplete(ctx, len(ds.Nodes), time.Since(start), err)
	}()

	if !ds.Unplaced() {
		return nil
	}
	opts.setDefaults()

	pos, err := Layout(ctx, ToDOT(ds, opts))
	if err != nil {
		return err
	}
	for i := range ds.Nodes {
		n := &ds.Nodes[i]
		if n.Placed() {
			continue
		}
		p, ok := pos[n.ID]
		if !ok {
			return errors.New(errors.ErrCodeInternal, "graphviz did not place node %q", n.ID)
		}
		x, y := p.X+opts.Margin, p.Y+opts.Margin
		n.X, n.Y = &x, &y
	}
	return nil
}

// ToDOT converts the dataset's node graph to DOT.
func ToDOT(ds *pkgio.Dataset, opts Options) string {
	opts.setDefaults()

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", opts.RankDir)
	fmt.Fprintf(&buf, "  nodesep=%s;\n", strconv.FormatFloat(opts.NodeSep, 'f', -1, 64))
	fmt.Fprintf(&buf, "  ranksep=%s;\n", strconv.FormatFloat(opts.RankSep, 'f', -1, 64))
	buf.WriteString("  node [shape=point, width=0.1];\n")
	buf.WriteString("\n")

	for _, n := range ds.Nodes {
		fmt.Fprintf(&buf, "  %q;\n", n.ID)
	}

	buf.WriteString("\n")
	for _, l := range ds.Links {
		if l.Source == "" || l.Target == "" || len(l.Coords) > 0 {
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", l.Source, l.Target)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// Layout runs dot over a DOT graph and returns node centers in points,
// y-down.
func Layout(ctx context.Context, dot string) (map[string]geom.Point, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDataset, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.Format("plain"), &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "layout")
	}
	return ParsePlain(&buf)
}

// ParsePlain reads Graphviz "plain" output.
func ParsePlain(r io.Reader) (map[string]geom.Point, error) {
	var (
		height float64
		pos    = map[string]geom.Point{}
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		f := fields(sc.Text())
		if len(f) == 0 {
			continue
		}
		switch f[0] {
		case "graph":
			if len(f) < 4 {
				return nil, errors.New(errors.ErrCodeInternal, "malformed graph line %q", sc.Text())
			}
			h, err := strconv.ParseFloat(f[3], 64)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "graph height")
			}
			height = h
		case "node":
			if len(f) < 4 {
				return nil, errors.New(errors.ErrCodeInternal, "malformed node line %q", sc.Text())
			}
			x, errX := strconv.ParseFloat(f[2], 64)
			y, errY := strconv.ParseFloat(f[3], 64)
			if errX != nil || errY != nil {
				return nil, errors.New(errors.ErrCodeInternal, "bad coordinates for node %q", f[1])
			}
			pos[f[1]] = geom.Pt(x*PointsPerInch, (height-y)*PointsPerInch)
		case "stop":
			return pos, nil
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read plain output")
	}
	return pos, nil
}

// fields splits a plain-format line, honoring double-quoted names.
func fields(line string) []string {
	var (
		out []string
		cur strings.Builder
		inQ bool
		esc bool
	)
	flush := func() {
		if cur.Len() > 0 {
			out = append(out, cur.String())
			cur.Reset()
		}
	}
	for _, r := range line {
		switch {
		case esc:
			cur.WriteRune(r)
			esc = false
		case inQ && r == '\\':
			esc = true
		case r == '"':
			inQ = !inQ
			if !inQ && cur.Len() == 0 {
				out = append(out, "")
			}
		case !inQ && (r == ' ' || r == '\t'):
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return out
}
