package sink

import (
	"bytes"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/linkdraw/pkg/errors"
	"github.com/matzehuels/linkdraw/pkg/geom"
	"github.com/matzehuels/linkdraw/pkg/scene"
	"github.com/matzehuels/linkdraw/pkg/style"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale      float64
	background string
	fontPath   string
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithPNGBackground fills the canvas before drawing.
func WithPNGBackground(color string) PNGOption {
	return func(r *pngRenderer) { r.background = color }
}

// WithFont draws labels with the TrueType or OpenType font at path instead
// of the built-in Go Regular face.
func WithFont(path string) PNGOption {
	return func(r *pngRenderer) { r.fontPath = path }
}

// RenderPNG rasterizes the scene below root.
//
// Paths follow their full world transform. Labels are placed at their
// transformed anchor and drawn unrotated.
func RenderPNG(root scene.Node, width, height float64, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	w, h := int(math.Ceil(width*r.scale)), int(math.Ceil(height*r.scale))
	if w <= 0 || h <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "canvas %vx%v at scale %v is empty", width, height, r.scale)
	}

	src, err := r.fontSource()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	dc := gg.NewContext(w, h)
	defer dc.Close()

	if r.background != "" {
		if setColor(dc, r.background, 1) {
			dc.DrawRectangle(0, 0, float64(w), float64(h))
			if err := dc.Fill(); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "fill background")
			}
		}
	}

	base := geom.Scale(r.scale, r.scale)
	var drawErr error
	scene.Walk(root, func(n scene.Node, world geom.Matrix) bool {
		if drawErr != nil {
			return false
		}
		world = base.Mul(world)
		switch n := n.(type) {
		case *scene.Path:
			drawErr = drawPath(dc, n, world)
		case *scene.Text:
			drawText(dc, src, n, world)
		}
		return true
	})
	if drawErr != nil {
		return nil, drawErr
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

func (r *pngRenderer) fontSource() (*text.FontSource, error) {
	if r.fontPath != "" {
		src, err := text.NewFontSourceFromFile(r.fontPath)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "load font %s", r.fontPath)
		}
		return src, nil
	}
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load built-in font")
	}
	return src, nil
}

// toGG converts a scene matrix to gg's row-major layout.
func toGG(m geom.Matrix) gg.Matrix {
	return gg.Matrix{
		A: m.A, B: m.C, C: m.E,
		D: m.B, E: m.D, F: m.F,
	}
}

func drawPath(dc *gg.Context, p *scene.Path, world geom.Matrix) error {
	if p.Shape == nil {
		return nil
	}
	outline := p.Shape.Outline()
	if len(outline) == 0 {
		return nil
	}
	paint := p.ActiveStyle()

	dc.Push()
	defer dc.Pop()
	dc.SetTransform(toGG(world))
	dc.ClearPath()
	for _, s := range outline {
		switch s.Op {
		case geom.MoveTo:
			dc.MoveTo(s.Pts[0].X, s.Pts[0].Y)
		case geom.LineTo:
			dc.LineTo(s.Pts[0].X, s.Pts[0].Y)
		case geom.QuadTo:
			dc.QuadraticTo(s.Pts[0].X, s.Pts[0].Y, s.Pts[1].X, s.Pts[1].Y)
		case geom.Close:
			dc.ClosePath()
		}
	}

	if setColor(dc, paint.Fill, paint.Opacity) {
		if err := dc.FillPreserve(); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "fill %s", p.Name)
		}
	}
	if setColor(dc, paint.Stroke, paint.Opacity) && paint.LineWidth > 0 {
		width := paint.LineWidth
		if !paint.StrokeNoScale {
			width *= math.Sqrt(math.Abs(world.A*world.D - world.B*world.C))
		}
		dc.SetLineWidth(width)
		if len(paint.Dash) > 0 {
			dc.SetDash(paint.Dash...)
		} else {
			dc.ClearDash()
		}
		if err := dc.Stroke(); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "stroke %s", p.Name)
		}
	}
	dc.ClearPath()
	return nil
}

func drawText(dc *gg.Context, src *text.FontSource, t *scene.Text, world geom.Matrix) {
	st := t.ActiveStyle()
	if st.Text == "" || st.FontSize <= 0 {
		return
	}
	if !setColor(dc, st.Fill, st.Opacity) {
		return
	}
	scale := math.Sqrt(math.Abs(world.A*world.D - world.B*world.C))
	dc.SetFont(src.Face(st.FontSize * scale))

	// The local origin of a text node is its anchor.
	at := world.Apply(geom.Point{})
	ax, ay := anchor(st.Align, st.VerticalAlign)
	dc.DrawStringAnchored(st.Text, at.X, at.Y, ax, ay)
}

// anchor maps alignment to gg's anchor fractions. ay = 1 puts the top of the
// text on the anchor and ay = 0 the baseline.
func anchor(align, valign string) (ax, ay float64) {
	switch align {
	case scene.AlignLeft:
		ax = 0
	case scene.AlignRight:
		ax = 1
	default:
		ax = 0.5
	}
	switch valign {
	case scene.VAlignTop:
		ay = 1
	case scene.VAlignBottom:
		ay = 0
	default:
		ay = 0.5
	}
	return ax, ay
}

// setColor applies c with opacity and reports whether anything visible will
// be painted.
func setColor(dc *gg.Context, c string, opacity float64) bool {
	if c == "" {
		return false
	}
	col, alpha, err := style.ParseColor(c)
	if err != nil {
		return false
	}
	a := alpha * opacity
	if a <= 0 {
		return false
	}
	dc.SetRGBA(col.R, col.G, col.B, a)
	return true
}
