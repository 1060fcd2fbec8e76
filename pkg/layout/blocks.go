package layout

import "github.com/matzehuels/slidedeck/pkg/canvas"

// Header bar metrics.
const (
	HeaderHeight    = 1.1
	HeaderTitleSize = 24
	HeaderSubSize   = 12
)

// HeaderSubtitleColor is the muted blue used under slide titles.
var HeaderSubtitleColor = canvas.RGB(0xA8, 0xC4, 0xE0)

// HeaderBar draws the full-width navy band with a title and optional subtitle.
func HeaderBar(c *canvas.Canvas, title, subtitle string) error {
	if _, err := c.DrawRect(canvas.Rect(0, 0, c.Width, HeaderHeight), canvas.Navy.Ptr(), nil, 0); err != nil {
		return err
	}
	if _, err := c.DrawText(title, canvas.Rect(0.4, 0.15, 10, 0.6),
		canvas.Style{Size: HeaderTitleSize, Bold: true, Color: canvas.White}); err != nil {
		return err
	}
	if subtitle == "" {
		return nil
	}
	_, err := c.DrawText(subtitle, canvas.Rect(0.4, 0.72, 10, 0.35),
		canvas.Style{Size: HeaderSubSize, Color: HeaderSubtitleColor})
	return err
}

// Strip draws a solid colored band with a centered bold white label.
func Strip(c *canvas.Canvas, label string, b canvas.Box, color canvas.Color, size float64) (*canvas.Element, error) {
	el, err := c.DrawRect(b, color.Ptr(), color.Ptr(), 0)
	if err != nil {
		return nil, err
	}
	if err := el.SetLabel(label, canvas.Style{Size: size, Bold: true, Color: canvas.White}); err != nil {
		return nil, err
	}
	return el, nil
}

// Panel draws a filled body with a border of the given width.
func Panel(c *canvas.Canvas, b canvas.Box, fill, border canvas.Color, borderPt float64) (*canvas.Element, error) {
	return c.DrawRect(b, fill.Ptr(), border.Ptr(), borderPt)
}

// Background fills the whole page.
func Background(c *canvas.Canvas, color canvas.Color) error {
	_, err := c.DrawRect(canvas.Rect(0, 0, c.Width, c.Height), color.Ptr(), nil, 0)
	return err
}
