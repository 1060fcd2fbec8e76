package deck

import (
	"github.com/matzehuels/slidedeck/pkg/canvas"
	"github.com/matzehuels/slidedeck/pkg/layout"
)

// ScreenGrid is the card grid of a cards slide: four columns of 3.0x1.75
// cards starting under the header bar.
var ScreenGrid = layout.GridSpec{
	Columns:   4,
	CardW:     3.0,
	CardH:     1.75,
	GapX:      0.2,
	GapY:      0.2,
	OriginX:   0.3,
	OriginY:   1.25,
	StripH:    0.38,
	TitleSize: 11,
	BodySize:  9,
	TagColor:  canvas.DarkGrey,
	TextColor: canvas.Black,
}

func assembleCards(p *pen, _ *Deck, s Slide) {
	cards := make([]layout.Card, len(s.Screens))
	for i, sc := range s.Screens {
		cards[i] = layout.Card{
			Title:       sc.Name,
			Tag:         "Role: " + sc.Roles,
			Color:       sc.Color,
			Description: sc.Description,
		}
	}
	p.do(func() error { return layout.CardGrid(p.c, cards, ScreenGrid) })
}
