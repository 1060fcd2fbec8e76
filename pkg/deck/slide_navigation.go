package deck

import (
	"strings"

	"github.com/matzehuels/slidedeck/pkg/canvas"
)

// Navigation column geometry.
const (
	navX0     = 0.3
	navStep   = 3.27
	navTop    = 1.25
	navW      = 3.0
	navH      = 6.1
	navStripH = 0.48
	navFirst  = 1.82
	navLine   = 0.42
	navLabelH = 0.2
)

// SplitNav splits a "Label - description" entry. Entries without a
// separator are all label.
func SplitNav(entry string) (label, desc string) {
	label, desc, _ = strings.Cut(entry, " - ")
	return label, desc
}

func assembleNavigation(p *pen, d *Deck, s Slide) {
	for i, r := range d.Roles {
		x := navX0 + float64(i)*navStep
		p.panel(canvas.Rect(x, navTop, navW, navH), canvas.White, canvas.Hairline, 1)
		p.strip(r.Name, canvas.Rect(x, navTop, navW, navStripH), r.Color, 13)

		y := navFirst
		for _, entry := range r.Nav {
			label, desc := SplitNav(entry)
			p.text(label, canvas.Rect(x+0.15, y, navW-0.25, navLabelH),
				canvas.Style{Size: 10, Bold: true, Color: r.Color})
			if desc != "" {
				p.text(desc, canvas.Rect(x+0.15, y+navLabelH-0.02, navW-0.25, navLabelH),
					canvas.Style{Size: 10, Color: canvas.Black})
			}
			y += navLine
		}
	}

	if s.Note != "" {
		p.text(s.Note, canvas.Rect(0.3, 7.1, 12.73, 0.38),
			canvas.Style{Size: 10, Italic: true, Color: canvas.DarkGrey})
	}
}
