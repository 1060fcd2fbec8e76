package deck

import (
	"fmt"

	"github.com/matzehuels/slidedeck/pkg/canvas"
	"github.com/matzehuels/slidedeck/pkg/errors"
	"github.com/matzehuels/slidedeck/pkg/layout"
)

// Secondary text colors on dark and header backgrounds.
var (
	sky   = canvas.RGB(0x93, 0xC5, 0xFD)
	pale  = canvas.RGB(0xBF, 0xDB, 0xFE)
	muted = layout.HeaderSubtitleColor
)

type assembleFunc func(p *pen, d *Deck, s Slide)

var assemblers = map[Kind]assembleFunc{
	KindTitle:      assembleTitle,
	KindOverview:   assembleOverview,
	KindRoles:      assembleRoles,
	KindFlow:       assembleFlow,
	KindCards:      assembleCards,
	KindNavigation: assembleNavigation,
	KindWorkflow:   assembleWorkflow,
	KindClosing:    assembleClosing,
}

// background returns the page color for a slide kind. Title and closing
// slides are dark, content slides are light grey.
func background(k Kind) canvas.Color {
	switch k {
	case KindTitle, KindClosing:
		return canvas.Navy
	}
	return canvas.Grey
}

// Assemble builds one canvas per slide, in deck order.
func Assemble(d *Deck) (*canvas.Document, error) {
	doc := &canvas.Document{
		Title:  d.Title,
		Width:  d.Width,
		Height: d.Height,
		Slides: make([]*canvas.Canvas, 0, len(d.Slides)),
	}
	for i, s := range d.Slides {
		c, err := AssembleSlide(d, s)
		if err != nil {
			return nil, fmt.Errorf("slide %d (%s): %w", i+1, s.Kind, err)
		}
		doc.Slides = append(doc.Slides, c)
	}
	return doc, nil
}

// AssembleSlide builds a single canvas.
func AssembleSlide(d *Deck, s Slide) (*canvas.Canvas, error) {
	fn, ok := assemblers[s.Kind]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidDeck, "unknown slide kind %q", s.Kind)
	}
	title := s.Title
	if title == "" {
		title = d.Title
	}
	c, err := canvas.New(title, d.Width, d.Height, background(s.Kind))
	if err != nil {
		return nil, err
	}

	p := &pen{c: c}
	if s.Title != "" && s.Kind != KindTitle && s.Kind != KindClosing {
		p.do(func() error { return layout.HeaderBar(c, s.Title, s.Subtitle) })
	}
	fn(p, d, s)
	if p.err != nil {
		return nil, p.err
	}
	return c, nil
}
