package layout

import "github.com/matzehuels/slidedeck/pkg/canvas"

// Bullet block metrics, in inches.
const (
	HeadingHeight  = 0.35
	HeadingAdvance = 0.38
	BulletIndent   = 0.15
	BulletHeight   = 0.28
	BulletGap      = 0.02

	// BulletGlyph prefixes every bullet line.
	BulletGlyph = "  -  "

	DefaultHeadSize   = 14
	DefaultBulletSize = 12
)

// BulletSpec describes a heading followed by a bullet list.
type BulletSpec struct {
	Heading     string
	Bullets     []string
	X, Y, W     float64
	HeadColor   canvas.Color
	BulletColor canvas.Color
	HeadSize    float64 // points, DefaultHeadSize when zero
	BulletSize  float64 // points, DefaultBulletSize when zero
}

// BulletBlock draws a bold heading at (X, Y) and one text line per bullet
// below it. It returns the y coordinate after the last bullet, which is
// Y + HeadingAdvance + len(Bullets) * (BulletHeight + BulletGap).
func BulletBlock(c *canvas.Canvas, spec BulletSpec) (float64, error) {
	headSize := spec.HeadSize
	if headSize == 0 {
		headSize = DefaultHeadSize
	}
	bulletSize := spec.BulletSize
	if bulletSize == 0 {
		bulletSize = DefaultBulletSize
	}

	if _, err := c.DrawText(spec.Heading, canvas.Rect(spec.X, spec.Y, spec.W, HeadingHeight),
		canvas.Style{Size: headSize, Bold: true, Color: spec.HeadColor}); err != nil {
		return spec.Y, err
	}

	cur := Cursor{Y: spec.Y + HeadingAdvance}
	for _, b := range spec.Bullets {
		y := cur.Next(BulletHeight, BulletGap)
		box := canvas.Rect(spec.X+BulletIndent, y, spec.W-BulletIndent, BulletHeight)
		if _, err := c.DrawText(BulletGlyph+b, box, canvas.Style{Size: bulletSize, Color: spec.BulletColor}); err != nil {
			return cur.Y, err
		}
	}
	return cur.Y, nil
}

// ListSpec places plain lines at a fixed step with no heading. Format, when
// set, receives the one-based line number and the item.
type ListSpec struct {
	Items  []string
	X, Y   float64
	W, H   float64
	Step   float64
	Style  canvas.Style
	Format func(n int, item string) string
}

// List draws one text element per item and returns the y after the last.
func List(c *canvas.Canvas, spec ListSpec) (float64, error) {
	cur := Cursor{Y: spec.Y}
	for i, item := range spec.Items {
		text := item
		if spec.Format != nil {
			text = spec.Format(i+1, item)
		}
		y := cur.Next(spec.Step, 0)
		if _, err := c.DrawText(text, canvas.Rect(spec.X, y, spec.W, spec.H), spec.Style); err != nil {
			return cur.Y, err
		}
	}
	return cur.Y, nil
}
