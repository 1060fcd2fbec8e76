package canvas

import "github.com/matzehuels/slidedeck/pkg/errors"

// Canvas is one slide surface.
type Canvas struct {
	Title      string
	Width      float64
	Height     float64
	Background Color

	elements []*Element
}

// New creates an empty canvas. Width and height must be positive.
func New(title string, width, height float64, background Color) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidGeometry, "page size %.2fx%.2f must be positive", width, height)
	}
	return &Canvas{Title: title, Width: width, Height: height, Background: background}, nil
}

// DrawRect adds a rectangle. A nil fill is transparent. No border is painted
// when border is nil or borderPt is zero.
func (c *Canvas) DrawRect(b Box, fill, border *Color, borderPt float64) (*Element, error) {
	if err := checkBox(b); err != nil {
		return nil, err
	}
	if borderPt < 0 {
		return nil, errors.New(errors.ErrCodeInvalidGeometry, "negative border width %.2f", borderPt)
	}
	el := &Element{Kind: KindRect, Box: b, Fill: fill}
	if border != nil && borderPt > 0 {
		el.Border = border
		el.BorderWidth = borderPt
	}
	c.elements = append(c.elements, el)
	return el, nil
}

// DrawText adds a single-run text box.
func (c *Canvas) DrawText(text string, b Box, s Style) (*Element, error) {
	if err := checkBox(b); err != nil {
		return nil, err
	}
	if s.Size < 0 {
		return nil, errors.New(errors.ErrCodeInvalidGeometry, "negative font size %.2f", s.Size)
	}
	if s.Align == "" {
		s.Align = AlignLeft
	}
	el := &Element{Kind: KindText, Box: b, Text: text, Style: &s}
	c.elements = append(c.elements, el)
	return el, nil
}

func checkBox(b Box) error {
	if b.W < 0 || b.H < 0 {
		return errors.New(errors.ErrCodeInvalidGeometry, "negative size %.2fx%.2f at (%.2f, %.2f)", b.W, b.H, b.X, b.Y)
	}
	return nil
}

// Len returns the number of elements.
func (c *Canvas) Len() int { return len(c.elements) }

// Elements returns copies of the elements in paint order.
func (c *Canvas) Elements() []Element {
	out := make([]Element, len(c.elements))
	for i, el := range c.elements {
		cp := *el
		if el.Style != nil {
			s := *el.Style
			cp.Style = &s
		}
		out[i] = cp
	}
	return out
}

// Counts returns the number of rectangles and text elements.
func (c *Canvas) Counts() (rects, texts int) {
	for _, el := range c.elements {
		switch el.Kind {
		case KindRect:
			rects++
		case KindText:
			texts++
		}
	}
	return rects, texts
}

// OutOfBounds returns the indexes of elements that leave the page.
func (c *Canvas) OutOfBounds() []int {
	var idx []int
	for i, el := range c.elements {
		if !el.Box.Within(c.Width, c.Height) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Document is an ordered list of slides sharing one page size.
type Document struct {
	Title  string
	Width  float64
	Height float64
	Slides []*Canvas
}

// ElementCount returns the total number of elements across all slides.
func (d *Document) ElementCount() int {
	n := 0
	for _, s := range d.Slides {
		n += s.Len()
	}
	return n
}
