package canvas

import "github.com/matzehuels/slidedeck/pkg/errors"

// Kind tags the element variant.
type Kind string

const (
	KindRect Kind = "rect"
	KindText Kind = "text"
)

// Align is the horizontal alignment of a text paragraph.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Style applies to a whole text run.
type Style struct {
	Size   float64 `json:"size"` // points
	Bold   bool    `json:"bold,omitempty"`
	Italic bool    `json:"italic,omitempty"`
	Color  Color   `json:"color"`
	Align  Align   `json:"align,omitempty"`
	NoWrap bool    `json:"no_wrap,omitempty"` // single line, no word wrap
}

// Element is one drawable unit. Rect elements use Fill, Border and
// BorderWidth, and may carry a centered label in Text/Style. Text elements
// use Text and Style.
type Element struct {
	Kind        Kind    `json:"kind"`
	Box         Box     `json:"box"`
	Fill        *Color  `json:"fill,omitempty"`
	Border      *Color  `json:"border,omitempty"`
	BorderWidth float64 `json:"border_width,omitempty"` // points
	Text        string  `json:"text,omitempty"`
	Style       *Style  `json:"style,omitempty"`
}

// HasBorder reports whether a border is painted.
func (e Element) HasBorder() bool {
	return e.Border != nil && e.BorderWidth > 0
}

// IsLabel reports whether a rectangle carries text.
func (e Element) IsLabel() bool {
	return e.Kind == KindRect && e.Style != nil && e.Text != ""
}

// SetLabel puts a single centered run inside a rectangle. It is the
// post-adjust hook used for colored header strips and flow nodes.
func (e *Element) SetLabel(text string, s Style) error {
	if e.Kind != KindRect {
		return errors.New(errors.ErrCodeInvalidInput, "label on %s element", e.Kind)
	}
	if s.Size < 0 {
		return errors.New(errors.ErrCodeInvalidGeometry, "negative font size %.2f", s.Size)
	}
	if s.Align == "" {
		s.Align = AlignCenter
	}
	e.Text = text
	e.Style = &s
	return nil
}
