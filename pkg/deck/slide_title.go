package deck

import (
	"github.com/matzehuels/slidedeck/pkg/canvas"
)

// Cover column, centered on the page.
const (
	coverX = 1.0
	coverW = 11.33
)

func assembleTitle(p *pen, _ *Deck, s Slide) {
	cv := s.Cover
	w := p.c.Width
	center := func(size float64, bold bool, color canvas.Color) canvas.Style {
		return canvas.Style{Size: size, Bold: bold, Color: color, Align: canvas.AlignCenter}
	}

	p.rect(canvas.Rect(0, 6.8, w, 0.7), canvas.Blue.Ptr(), nil, 0)
	p.text(cv.Title, canvas.Rect(coverX, 1.6, coverW, 1.2), center(44, true, canvas.White))
	p.text(cv.Subtitle, canvas.Rect(coverX, 2.85, coverW, 0.6), center(22, false, sky))
	p.rect(canvas.Rect(3.5, 3.55, 6.33, 0.05), canvas.Blue.Ptr(), nil, 0)
	p.text(cv.Caption, canvas.Rect(coverX, 3.75, coverW, 0.5), center(16, false, pale))
	p.text(cv.Tagline, canvas.Rect(coverX, 4.25, coverW, 0.4), center(13, false, muted))
	p.text(cv.Link, canvas.Rect(coverX, 6.9, coverW, 0.4), center(11, false, canvas.White))
}
