package sink

import (
	"encoding/json"

	"github.com/matzehuels/slidedeck/pkg/canvas"
	"github.com/matzehuels/slidedeck/pkg/errors"
)

type jsonDocument struct {
	Title  string      `json:"title"`
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Slides []jsonSlide `json:"slides"`
}

type jsonSlide struct {
	Index      int              `json:"index"`
	Title      string           `json:"title"`
	Background canvas.Color     `json:"background"`
	Rects      int              `json:"rects"`
	Texts      int              `json:"texts"`
	OffPage    []int            `json:"off_page,omitempty"`
	Elements   []canvas.Element `json:"elements"`
}

// RenderJSON dumps every slide's elements in paint order.
func RenderJSON(doc *canvas.Document) ([]byte, error) {
	out := jsonDocument{
		Title:  doc.Title,
		Width:  doc.Width,
		Height: doc.Height,
		Slides: make([]jsonSlide, len(doc.Slides)),
	}
	for i, c := range doc.Slides {
		rects, texts := c.Counts()
		out.Slides[i] = jsonSlide{
			Index:      i + 1,
			Title:      c.Title,
			Background: c.Background,
			Rects:      rects,
			Texts:      texts,
			OffPage:    c.OutOfBounds(),
			Elements:   c.Elements(),
		}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "encode json")
	}
	return data, nil
}
