package pipeline

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/linkdraw/pkg/errors"
	"github.com/matzehuels/linkdraw/pkg/observability"
	"github.com/matzehuels/linkdraw/pkg/render/sink"
)

// Render encodes a laid out frame in every format of opts.Formats. Formats
// are encoded concurrently; the frame is only read.
func Render(ctx context.Context, f *Frame, opts Options) (artifacts map[string][]byte, err error) {
	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	defer func() {
		observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	}()

	var mu sync.Mutex
	artifacts = make(map[string][]byte, len(opts.Formats))

	g, ctx := errgroup.WithContext(ctx)
	for _, format := range opts.Formats {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := RenderFormat(f, format, opts)
			if err != nil {
				code := errors.GetCode(err)
				if code == "" {
					code = errors.ErrCodeInternal
				}
				return errors.Wrap(code, err, "render %s", format)
			}
			mu.Lock()
			artifacts[format] = data
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return artifacts, nil
}

// RenderFormat encodes f in a single format.
func RenderFormat(f *Frame, format string, opts Options) ([]byte, error) {
	root := f.Root()
	switch format {
	case FormatSVG:
		return sink.RenderSVG(root, f.Width, f.Height, svgOptions(opts)...), nil
	case FormatPDF:
		return sink.RenderPDF(root, f.Width, f.Height, svgOptions(opts)...)
	case FormatPNG:
		return sink.RenderPNG(root, f.Width, f.Height, pngOptions(opts)...)
	case FormatJSON:
		return sink.RenderJSON(f.Set, f.Width, f.Height)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
}

func svgOptions(opts Options) []sink.SVGOption {
	var out []sink.SVGOption
	if opts.Background != "" {
		out = append(out, sink.WithBackground(opts.Background))
	}
	if opts.Title != "" {
		out = append(out, sink.WithTitle(opts.Title))
	}
	if opts.Interactive {
		out = append(out, sink.WithInteraction())
	}
	return out
}

func pngOptions(opts Options) []sink.PNGOption {
	out := []sink.PNGOption{sink.WithScale(opts.Scale)}
	if opts.Background != "" {
		out = append(out, sink.WithPNGBackground(opts.Background))
	}
	if opts.Font != "" {
		out = append(out, sink.WithFont(opts.Font))
	}
	return out
}
