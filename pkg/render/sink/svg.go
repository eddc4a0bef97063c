package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/matzehuels/linkdraw/pkg/geom"
	"github.com/matzehuels/linkdraw/pkg/scene"
	"github.com/matzehuels/linkdraw/pkg/style"
)

const connectorInteractionCSS = `
    .connector { cursor: pointer; }
    .connector path, .connector text { transition: stroke 0.15s ease, fill 0.15s ease, opacity 0.15s ease; }`

// The script swaps every child's attributes for its data-hover-* twin while
// the pointer is over the connector group.
const connectorInteractionJS = `
    function swap(el, on) {
      for (const attr of ['stroke', 'fill', 'opacity', 'stroke-width']) {
        const key = attr.replace(/(^|-)(\w)/g, (_, __, c) => c.toUpperCase());
        const hover = el.dataset['hover' + key];
        if (hover === undefined) continue;
        if (on) {
          el.dataset['base' + key] = el.getAttribute(attr) ?? '';
          el.setAttribute(attr, hover);
        } else if (el.dataset['base' + key] !== undefined) {
          el.setAttribute(attr, el.dataset['base' + key]);
        }
      }
      if (el.tagName === 'text' && el.dataset.hoverText !== undefined) {
        if (on) { el.dataset.baseText = el.textContent; el.textContent = el.dataset.hoverText; }
        else if (el.dataset.baseText !== undefined) { el.textContent = el.dataset.baseText; }
      }
    }
    document.querySelectorAll('.connector').forEach(g => {
      g.addEventListener('mouseenter', () => g.querySelectorAll('path, text').forEach(el => swap(el, true)));
      g.addEventListener('mouseleave', () => g.querySelectorAll('path, text').forEach(el => swap(el, false)));
    });`

// SVGOption configures RenderSVG.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	background  string
	title       string
	interactive bool
}

// WithBackground fills the canvas with color.
func WithBackground(color string) SVGOption { return func(r *svgRenderer) { r.background = color } }

// WithTitle adds a <title> element.
func WithTitle(title string) SVGOption { return func(r *svgRenderer) { r.title = title } }

// WithInteraction adds hover styling: each connector switches to its
// emphasis paint and hover text while the pointer is over it.
func WithInteraction() SVGOption { return func(r *svgRenderer) { r.interactive = true } }

// RenderSVG writes the scene below root as an SVG document of the given
// size. Groups become nested <g> elements carrying their local transform.
func RenderSVG(root scene.Node, width, height float64, opts ...SVGOption) []byte {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escapeXML(r.title))
	}
	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", escapeXML(r.background))
	}

	r.renderNode(&buf, root, 1)

	if r.interactive {
		fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", connectorInteractionCSS)
		fmt.Fprintf(&buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", connectorInteractionJS)
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) renderNode(buf *bytes.Buffer, n scene.Node, depth int) {
	b := n.Attr()
	if b.Ignore {
		return
	}
	indent := strings.Repeat("  ", depth)

	switch n := n.(type) {
	case *scene.Group:
		buf.WriteString(indent + "<g")
		if n.Name != "" {
			fmt.Fprintf(buf, ` data-name="%s"`, escapeXML(n.Name))
		}
		if r.interactive && n.Name == "connector" {
			buf.WriteString(` class="connector"`)
		}
		writeTransform(buf, b.LocalMatrix())
		buf.WriteString(">\n")
		for _, c := range n.Children() {
			r.renderNode(buf, c, depth+1)
		}
		buf.WriteString(indent + "</g>\n")
	case *scene.Path:
		r.renderPath(buf, indent, n)
	case *scene.Text:
		r.renderText(buf, indent, n)
	}
}

func (r *svgRenderer) renderPath(buf *bytes.Buffer, indent string, p *scene.Path) {
	if p.Shape == nil {
		return
	}
	d := p.Shape.Outline().PathData()
	if d == "" {
		return
	}
	paint := p.ActiveStyle()

	fmt.Fprintf(buf, `%s<path data-name="%s" d="%s"`, indent, escapeXML(p.Name), d)
	writeTransform(buf, p.LocalMatrix())
	fmt.Fprintf(buf, ` fill="%s" stroke="%s"`, paintColor(paint.Fill), paintColor(paint.Stroke))
	if paint.Stroke != "" {
		fmt.Fprintf(buf, ` stroke-width="%s"`, num(paint.LineWidth))
	}
	if len(paint.Dash) > 0 {
		parts := make([]string, len(paint.Dash))
		for i, v := range paint.Dash {
			parts[i] = num(v)
		}
		fmt.Fprintf(buf, ` stroke-dasharray="%s"`, strings.Join(parts, " "))
	}
	if paint.Opacity != 1 {
		fmt.Fprintf(buf, ` opacity="%s"`, num(paint.Opacity))
	}
	if paint.StrokeNoScale {
		buf.WriteString(` vector-effect="non-scaling-stroke"`)
	}
	if r.interactive && p.State() == scene.StateNormal && p.Emphasis != nil {
		hover := scene.PaintFor(scene.StateEmphasis, p.Style, p.Emphasis)
		fmt.Fprintf(buf, ` data-hover-fill="%s" data-hover-stroke="%s" data-hover-opacity="%s" data-hover-stroke-width="%s"`,
			paintColor(hover.Fill), paintColor(hover.Stroke), num(hover.Opacity), num(hover.LineWidth))
	}
	buf.WriteString("/>\n")
}

func (r *svgRenderer) renderText(buf *bytes.Buffer, indent string, t *scene.Text) {
	st := t.ActiveStyle()
	hover := scene.TextFor(scene.StateEmphasis, t.Style, t.Hover)
	withHover := r.interactive && t.State() == scene.StateNormal && t.Hover != nil
	if st.Text == "" && !(withHover && hover.Text != "") {
		return
	}

	fmt.Fprintf(buf, `%s<text data-name="%s"`, indent, escapeXML(t.Name))
	writeTransform(buf, t.LocalMatrix())
	fmt.Fprintf(buf, ` text-anchor="%s" dominant-baseline="%s"`, textAnchor(st.Align), dominantBaseline(st.VerticalAlign))
	fmt.Fprintf(buf, ` fill="%s" font-size="%s"`, paintColor(st.Fill), num(st.FontSize))
	if st.FontFamily != "" {
		fmt.Fprintf(buf, ` font-family="%s"`, escapeXML(st.FontFamily))
	}
	if st.FontWeight != "" && st.FontWeight != "normal" {
		fmt.Fprintf(buf, ` font-weight="%s"`, escapeXML(st.FontWeight))
	}
	if st.FontStyle != "" && st.FontStyle != "normal" {
		fmt.Fprintf(buf, ` font-style="%s"`, escapeXML(st.FontStyle))
	}
	if st.Opacity != 1 {
		fmt.Fprintf(buf, ` opacity="%s"`, num(st.Opacity))
	}
	if withHover {
		fmt.Fprintf(buf, ` data-hover-text="%s" data-hover-fill="%s"`, escapeXML(hover.Text), paintColor(hover.Fill))
	}
	fmt.Fprintf(buf, ">%s</text>\n", escapeXML(st.Text))
}

func writeTransform(buf *bytes.Buffer, m geom.Matrix) {
	if m == geom.Identity() {
		return
	}
	if m.A == 1 && m.B == 0 && m.C == 0 && m.D == 1 {
		fmt.Fprintf(buf, ` transform="translate(%s %s)"`, num(m.E), num(m.F))
		return
	}
	fmt.Fprintf(buf, ` transform="matrix(%s %s %s %s %s %s)"`,
		num(m.A), num(m.B), num(m.C), num(m.D), num(m.E), num(m.F))
}

func textAnchor(align string) string {
	switch align {
	case scene.AlignLeft:
		return "start"
	case scene.AlignRight:
		return "end"
	}
	return "middle"
}

func dominantBaseline(valign string) string {
	switch valign {
	case scene.VAlignTop:
		return "text-before-edge"
	case scene.VAlignBottom:
		return "text-after-edge"
	}
	return "central"
}

func paintColor(c string) string {
	if c == "" {
		return "none"
	}
	return escapeXML(c)
}

func num(v float64) string { return style.FormatNumber(v) }

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
