package deck

import (
	"github.com/matzehuels/slidedeck/pkg/canvas"
	"github.com/matzehuels/slidedeck/pkg/layout"
)

// Role column geometry.
const (
	roleX0     = 0.3
	roleStep   = 3.25
	roleTop    = 1.25
	roleW      = 3.0
	roleH      = 6.05
	roleStripH = 0.5
)

func assembleRoles(p *pen, d *Deck, _ Slide) {
	for i, r := range d.Roles {
		x := roleX0 + float64(i)*roleStep
		y := roleTop
		login := canvas.Style{Size: 10, Italic: true, Color: canvas.DarkGrey}

		p.panel(canvas.Rect(x, y, roleW, roleH), r.Tint, r.Edge, 1.5)
		p.strip(r.Name, canvas.Rect(x, y, roleW, roleStripH), r.Color, 15)
		p.text(r.Email, canvas.Rect(x+0.1, y+0.55, 2.8, 0.25), login)
		login.Size = 9
		p.text("Pass: "+r.Password, canvas.Rect(x+0.1, y+0.78, 2.8, 0.25), login)

		p.list(layout.ListSpec{
			Items:  r.Duties,
			X:      x + 0.15,
			Y:      y + 1.05,
			W:      2.75,
			H:      0.3,
			Step:   0.32,
			Style:  canvas.Style{Size: 10, Color: canvas.Black},
			Format: func(_ int, s string) string { return "- " + s },
		})
	}
}
