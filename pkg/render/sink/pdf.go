package sink

import (
	"context"

	"github.com/matzehuels/slidedeck/pkg/canvas"
	"github.com/matzehuels/slidedeck/pkg/render"
)

// RenderPDF renders one slide to SVG and converts it with rsvg-convert.
// The SVG options apply to the intermediate SVG.
func RenderPDF(ctx context.Context, c *canvas.Canvas, opts ...SVGOption) ([]byte, error) {
	svg, err := RenderSVG(c, opts...)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}
