package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/slidedeck/pkg/canvas"
)

// SVG user units are points, so font sizes carry over unchanged.
const svgDPI = canvas.PointsPerIn

const fontFamily = `'Go', Calibri, 'Helvetica Neue', Arial, sans-serif`

// SVGOption configures the SVG renderer.
type SVGOption func(*svgRenderer)

// WithOutlines draws a dashed outline around every text box, which makes
// overflowing and overlapping boxes visible.
func WithOutlines() SVGOption { return func(r *svgRenderer) { r.outlines = true } }

type svgRenderer struct {
	outlines bool
}

// RenderSVG renders one slide. Text is wrapped with the metrics of the
// embedded Go fonts; viewers substitute their own fonts, so line breaks
// are approximate.
func RenderSVG(c *canvas.Canvas, opts ...SVGOption) ([]byte, error) {
	var r svgRenderer
	for _, opt := range opts {
		opt(&r)
	}
	faces, err := newFaceCache(svgDPI)
	if err != nil {
		return nil, err
	}
	defer faces.Close()

	pt := func(in float64) float64 { return in * svgDPI }
	w, h := pt(c.Width), pt(c.Height)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`+"\n",
		w, h, w, h)
	fmt.Fprintf(&buf, "  <title>%s</title>\n", xmlEscape(c.Title))
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.2f" height="%.2f" fill="%s"/>`+"\n", w, h, c.Background)

	for i, el := range c.Elements() {
		b := el.Box
		if el.Kind == canvas.KindRect {
			fill := "none"
			if el.Fill != nil {
				fill = el.Fill.String()
			}
			stroke := ""
			if el.HasBorder() {
				stroke = fmt.Sprintf(` stroke="%s" stroke-width="%.2f"`, el.Border, el.BorderWidth)
			}
			fmt.Fprintf(&buf, `  <rect id="el-%d" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"%s/>`+"\n",
				i, pt(b.X), pt(b.Y), pt(b.W), pt(b.H), fill, stroke)
		} else if r.outlines {
			fmt.Fprintf(&buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="#F59E0B" stroke-width="0.5" stroke-dasharray="3 2"/>`+"\n",
				pt(b.X), pt(b.Y), pt(b.W), pt(b.H))
		}
		if el.Kind == canvas.KindText || el.IsLabel() {
			writeSVGText(&buf, faces, el, i)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func writeSVGText(buf *bytes.Buffer, faces *faceCache, el canvas.Element, id int) {
	s := *el.Style
	weight, style := "normal", "normal"
	if s.Bold {
		weight = "bold"
	}
	if s.Italic {
		style = "italic"
	}
	fmt.Fprintf(buf, `  <g id="text-%d" font-family="%s" font-size="%.1f" font-weight="%s" font-style="%s" fill="%s" text-anchor="%s">`+"\n",
		id, fontFamily, s.Size, weight, style, s.Color, svgAnchor(s.Align))
	for _, ln := range placeText(faces.face(s), el, svgDPI) {
		fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" xml:space="preserve">%s</text>`+"\n", ln.x, ln.baseline, xmlEscape(ln.text))
	}
	buf.WriteString("  </g>\n")
}

func svgAnchor(a canvas.Align) string {
	switch a {
	case canvas.AlignCenter:
		return "middle"
	case canvas.AlignRight:
		return "end"
	}
	return "start"
}
