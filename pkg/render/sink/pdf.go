package sink

import (
	"github.com/matzehuels/linkdraw/pkg/render"
	"github.com/matzehuels/linkdraw/pkg/scene"
)

// RenderPDF renders the scene as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(root scene.Node, width, height float64, opts ...SVGOption) ([]byte, error) {
	return render.ToPDF(RenderSVG(root, width, height, opts...))
}
