package layout

import (
	"github.com/matzehuels/slidedeck/pkg/canvas"
	"github.com/matzehuels/slidedeck/pkg/errors"
)

// Card offsets inside a card body, in inches.
const (
	cardPadX     = 0.1
	cardTagY     = 0.42
	cardTagH     = 0.25
	cardDescY    = 0.65
	cardDescTrim = 0.7
)

// Card is one grid item.
type Card struct {
	Title       string
	Tag         string // secondary line under the strip, e.g. "Role: Admin"
	Color       canvas.Color
	Description string
}

// GridSpec positions cards in rows of Columns.
type GridSpec struct {
	Columns          int
	CardW, CardH     float64
	GapX, GapY       float64
	OriginX, OriginY float64
	StripH           float64
	TitleSize        float64
	BodySize         float64
	TagColor         canvas.Color
	TextColor        canvas.Color
}

// GridCell returns the row and column of item i. A grid with fewer than
// one column is treated as a single column.
func GridCell(i, columns int) (row, col int) {
	if columns < 1 {
		return i, 0
	}
	return i / columns, i % columns
}

// CardBox returns the body box of item i.
func (g GridSpec) CardBox(i int) canvas.Box {
	row, col := GridCell(i, g.Columns)
	return canvas.Rect(
		g.OriginX+float64(col)*(g.CardW+g.GapX),
		g.OriginY+float64(row)*(g.CardH+g.GapY),
		g.CardW, g.CardH,
	)
}

// CardGrid draws every card. Items past the last row that fits still
// render, outside the page.
func CardGrid(c *canvas.Canvas, items []Card, g GridSpec) error {
	if g.Columns < 1 {
		return errors.New(errors.ErrCodeInvalidGeometry, "card grid needs at least one column, got %d", g.Columns)
	}
	for i, it := range items {
		b := g.CardBox(i)
		if _, err := c.DrawRect(b, canvas.White.Ptr(), canvas.Hairline.Ptr(), 1); err != nil {
			return err
		}
		if _, err := Strip(c, it.Title, canvas.Rect(b.X, b.Y, b.W, g.StripH), it.Color, g.TitleSize); err != nil {
			return err
		}
		if it.Tag != "" {
			tag := canvas.Rect(b.X+cardPadX, b.Y+cardTagY, b.W-2*cardPadX, cardTagH)
			if _, err := c.DrawText(it.Tag, tag, canvas.Style{Size: g.BodySize, Bold: true, Color: g.TagColor}); err != nil {
				return err
			}
		}
		desc := canvas.Rect(b.X+cardPadX, b.Y+cardDescY, b.W-2*cardPadX, g.CardH-cardDescTrim)
		if _, err := c.DrawText(it.Description, desc, canvas.Style{Size: g.BodySize, Color: g.TextColor}); err != nil {
			return err
		}
	}
	return nil
}
