package deck

import (
	"github.com/matzehuels/slidedeck/pkg/canvas"
	"github.com/matzehuels/slidedeck/pkg/layout"
)

// Bullet block placement inside an overview panel.
const (
	panelPadX     = 0.2
	panelPadY     = 0.1
	panelTrimW    = 0.3
	panelHeadSize = 15
)

func assembleOverview(p *pen, _ *Deck, s Slide) {
	for _, pn := range s.Panels {
		p.panel(pn.Box, canvas.White, canvas.Hairline, 1)

		w := pn.TextWidth
		if w == 0 {
			w = pn.Box.W - panelTrimW
		}
		p.bullets(layout.BulletSpec{
			Heading:     pn.Heading,
			Bullets:     pn.Bullets,
			X:           pn.Box.X + panelPadX,
			Y:           pn.Box.Y + panelPadY,
			W:           w,
			HeadColor:   canvas.Navy,
			BulletColor: canvas.Black,
			HeadSize:    panelHeadSize,
		})
	}
}
