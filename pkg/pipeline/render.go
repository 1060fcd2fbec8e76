package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/matzehuels/slidedeck/pkg/canvas"
	"github.com/matzehuels/slidedeck/pkg/errors"
	"github.com/matzehuels/slidedeck/pkg/render/sink"
)

// RenderFormat serializes doc to one format. Per-slide formats return one
// artifact per slide in slide order.
func RenderFormat(ctx context.Context, doc *canvas.Document, format string, buildID uuid.UUID, opts Options) ([]Artifact, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}

	switch format {
	case FormatPPTX:
		data, err := sink.RenderPPTX(doc, sink.WithBuildID(buildID))
		if err != nil {
			return nil, err
		}
		return []Artifact{{Format: format, Data: data}}, nil
	case FormatJSON:
		data, err := sink.RenderJSON(doc)
		if err != nil {
			return nil, err
		}
		return []Artifact{{Format: format, Data: data}}, nil
	}

	out := make([]Artifact, 0, len(doc.Slides))
	for i := range doc.Slides {
		a, err := RenderSlide(ctx, doc, i+1, format, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// RenderSlide serializes one 1-based slide to a per-slide format.
func RenderSlide(ctx context.Context, doc *canvas.Document, n int, format string, opts Options) (Artifact, error) {
	if n < 1 || n > len(doc.Slides) {
		return Artifact{}, errors.New(errors.ErrCodeSlideNotFound, "slide %d out of range 1..%d", n, len(doc.Slides))
	}
	c := doc.Slides[n-1]

	var svgOpts []sink.SVGOption
	if opts.Outlines {
		svgOpts = append(svgOpts, sink.WithOutlines())
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatSVG:
		data, err = sink.RenderSVG(c, svgOpts...)
	case FormatPNG:
		dpi := opts.DPI
		if dpi == 0 {
			dpi = sink.DefaultDPI
		}
		data, err = sink.RenderPNG(c, sink.WithDPI(dpi))
	case FormatPDF:
		data, err = sink.RenderPDF(ctx, c, svgOpts...)
	default:
		return Artifact{}, errors.New(errors.ErrCodeInvalidFormat, "%s is not a per-slide format", format)
	}
	if err != nil {
		return Artifact{}, fmt.Errorf("render slide %d as %s: %w", n, format, err)
	}
	return Artifact{Format: format, Slide: n, Data: data}, nil
}
