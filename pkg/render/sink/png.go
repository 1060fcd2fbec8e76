package sink

import (
	"bytes"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/slidedeck/pkg/canvas"
	"github.com/matzehuels/slidedeck/pkg/errors"
)

// DefaultDPI is the PNG resolution: 13.33in renders 1280px wide.
const DefaultDPI = 96.0

// MaxDPI bounds the raster size (13.33in at 600 dpi is 8000px wide).
const MaxDPI = 600

// PNGOption configures the raster renderer.
type PNGOption func(*pngRenderer)

// WithDPI sets the pixels per inch.
func WithDPI(dpi float64) PNGOption { return func(r *pngRenderer) { r.dpi = dpi } }

type pngRenderer struct {
	dpi float64
}

// RenderPNG rasterizes one slide.
func RenderPNG(c *canvas.Canvas, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{dpi: DefaultDPI}
	for _, opt := range opts {
		opt(&r)
	}
	if r.dpi <= 0 || r.dpi > MaxDPI {
		return nil, errors.New(errors.ErrCodeInvalidInput, "dpi must be in (0, %d], got %.1f", MaxDPI, r.dpi)
	}

	faces, err := newFaceCache(r.dpi)
	if err != nil {
		return nil, err
	}
	defer faces.Close()

	px := func(in float64) float64 { return in * r.dpi }
	dc := gg.NewContext(int(math.Round(px(c.Width))), int(math.Round(px(c.Height))))
	dc.SetColor(rgba(c.Background))
	dc.Clear()

	for _, el := range c.Elements() {
		if el.Kind == canvas.KindRect {
			if el.Fill != nil {
				dc.DrawRectangle(px(el.Box.X), px(el.Box.Y), px(el.Box.W), px(el.Box.H))
				dc.SetColor(rgba(*el.Fill))
				dc.Fill()
			}
			if el.HasBorder() {
				dc.DrawRectangle(px(el.Box.X), px(el.Box.Y), px(el.Box.W), px(el.Box.H))
				dc.SetColor(rgba(*el.Border))
				dc.SetLineWidth(el.BorderWidth * r.dpi / canvas.PointsPerIn)
				dc.Stroke()
			}
		}
		if el.Kind == canvas.KindText || el.IsLabel() {
			face := faces.face(*el.Style)
			dc.SetFontFace(face)
			dc.SetColor(rgba(el.Style.Color))
			ax := anchorX(el.Style.Align)
			for _, ln := range placeText(face, el, r.dpi) {
				dc.DrawStringAnchored(ln.text, ln.x, ln.baseline, ax, 0)
			}
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "encode png")
	}
	return buf.Bytes(), nil
}

func anchorX(a canvas.Align) float64 {
	switch a {
	case canvas.AlignCenter:
		return 0.5
	case canvas.AlignRight:
		return 1
	}
	return 0
}
