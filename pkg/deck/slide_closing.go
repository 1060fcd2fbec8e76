package deck

import (
	"github.com/matzehuels/slidedeck/pkg/canvas"
	"github.com/matzehuels/slidedeck/pkg/layout"
)

func assembleClosing(p *pen, d *Deck, s Slide) {
	cl := s.Closing
	centered := func(size float64, bold bool, color canvas.Color) canvas.Style {
		return canvas.Style{Size: size, Bold: bold, Color: color, Align: canvas.AlignCenter}
	}

	p.text(cl.Heading, canvas.Rect(0.5, 0.6, 12.33, 0.7), centered(30, true, canvas.White))
	p.text(cl.Caption, canvas.Rect(0.5, 1.35, 12.33, 0.4), centered(14, false, muted))

	for i, l := range cl.Links {
		x := 1.5 + float64(i)*5.5
		p.rect(canvas.Rect(x, 2.0, 5.0, 0.9), l.Color.Ptr(), nil, 0)
		p.text(l.Label, canvas.Rect(x+0.2, 2.08, 4.6, 0.3), canvas.Style{Size: 12, Bold: true, Color: canvas.White})
		p.text(l.URL, canvas.Rect(x+0.2, 2.42, 4.6, 0.45), canvas.Style{Size: 11, Color: pale})
	}

	// Demo accounts, one card per role.
	p.text(cl.CredentialsTitle, canvas.Rect(0.5, 3.1, 12.33, 0.35), centered(14, true, canvas.White))
	for i, r := range d.Roles {
		x := 0.4 + float64(i)*3.2
		p.panel(canvas.Rect(x, 3.55, 3.0, 1.25), canvas.Midnight, r.Color, 1.5)
		p.text(r.Name, canvas.Rect(x+0.15, 3.62, 2.7, 0.3), canvas.Style{Size: 12, Bold: true, Color: r.Color})
		p.text(r.Email, canvas.Rect(x+0.15, 3.96, 2.7, 0.25), canvas.Style{Size: 10, Color: canvas.White})
		p.text("Password: "+r.Password, canvas.Rect(x+0.15, 4.2, 2.7, 0.25), canvas.Style{Size: 10, Color: muted})
	}
	if cl.StaffCode != "" {
		p.text("Staff Code for signup (non-student roles):  "+cl.StaffCode,
			canvas.Rect(0.5, 4.95, 12.33, 0.35), centered(12, false, pale))
	}

	p.panel(canvas.Rect(0.5, 5.45, 12.33, 1.75), canvas.Midnight, canvas.Blue, 1)
	p.text(cl.TeamTitle, canvas.Rect(0.7, 5.55, 11.9, 0.35), canvas.Style{Size: 13, Bold: true, Color: canvas.White})
	p.list(layout.ListSpec{
		Items: cl.Members,
		X:     0.7,
		Y:     5.95,
		W:     7.0,
		H:     0.3,
		Step:  0.32,
		Style: canvas.Style{Size: 11, Color: pale},
	})
	p.text(cl.Guide, canvas.Rect(7.5, 5.95, 5.0, 0.65), canvas.Style{Size: 11, Color: muted})
}
