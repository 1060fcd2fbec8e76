// Package pipeline builds decks: load → assemble → render.
//
// The CLI, the preview server and the watch loop all go through a [Runner]
// so caching, logging and validation behave the same everywhere.
//
// # Stages
//
//  1. Load: read the deck description (TOML or YAML, or the built-in deck)
//  2. Assemble: draw every slide onto a canvas
//  3. Render: serialize the canvases to the requested formats
//
// Load and assemble always run; they are cheap. Render results are cached
// per artifact under the hash of the deck source.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    DeckPath: "deck.toml",
//	    Formats:  []string{"pptx", "svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	paths, err := result.Write("out/deck.pptx")
package pipeline

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/slidedeck/pkg/cache"
	"github.com/matzehuels/slidedeck/pkg/canvas"
	"github.com/matzehuels/slidedeck/pkg/deck"
	"github.com/matzehuels/slidedeck/pkg/errors"
	"github.com/matzehuels/slidedeck/pkg/render/sink"
)

// Format constants for output formats.
const (
	FormatPPTX = "pptx"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// DefaultFormats is what a plain build writes.
var DefaultFormats = []string{FormatPPTX}

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPPTX: true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// PerSlide reports whether format produces one file per slide.
func PerSlide(format string) bool {
	return format == FormatSVG || format == FormatPNG || format == FormatPDF
}

// Options configures a build.
type Options struct {
	// DeckPath is a .toml/.yaml deck. Empty builds the built-in deck.
	DeckPath string `json:"deck_path,omitempty"`

	// Formats to render. Defaults to [DefaultFormats].
	Formats []string `json:"formats,omitempty"`

	// DPI for PNG output. Defaults to [sink.DefaultDPI].
	DPI float64 `json:"dpi,omitempty"`

	// Outlines draws text-box outlines in SVG and PDF output.
	Outlines bool `json:"outlines,omitempty"`

	// Strict fails the build when an element lies outside its slide.
	Strict bool `json:"strict,omitempty"`

	// Refresh skips cache reads; results are still written.
	Refresh bool `json:"refresh,omitempty"`

	validated bool
}

// Artifact is one rendered output.
type Artifact struct {
	Format string
	Slide  int // 1-based; 0 for whole-deck formats
	Data   []byte
	Cached bool
}

// Name returns the artifact's file name relative to the output set, e.g.
// "slide-03.svg". Whole-deck artifacts are named by format only.
func (a Artifact) Name() string {
	if a.Slide == 0 {
		return "deck." + a.Format
	}
	return fmt.Sprintf("slide-%02d.%s", a.Slide, a.Format)
}

// Result contains the outputs of a build.
type Result struct {
	Deck     *deck.Deck
	Document *canvas.Document

	// DeckHash is the SHA-256 of the deck source.
	DeckHash string

	// BuildID is derived from DeckHash and the binary version, so identical
	// inputs produce identical packages.
	BuildID uuid.UUID

	// Artifacts in format order, then slide order.
	Artifacts []Artifact

	// OffPage maps 1-based slide numbers to element indices outside the slide.
	OffPage map[int][]int

	Stats Stats
}

// Stats contains build statistics.
type Stats struct {
	Slides       int
	Elements     int
	CacheHits    int
	LoadTime     time.Duration
	AssembleTime time.Duration
	RenderTime   time.Duration
}

// Artifact returns the first artifact with the given format and slide.
func (r *Result) Artifact(format string, slide int) (Artifact, bool) {
	for _, a := range r.Artifacts {
		if a.Format == format && a.Slide == slide {
			return a, true
		}
	}
	return Artifact{}, false
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: pptx, svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated flag value, dropping blanks and
// duplicates.
func ParseFormats(s string) ([]string, error) {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || slices.Contains(out, f) {
			continue
		}
		if err := ValidateFormat(f); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// ValidateAndSetDefaults checks options and fills in defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Formats) == 0 {
		o.Formats = slices.Clone(DefaultFormats)
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.DPI == 0 {
		o.DPI = sink.DefaultDPI
	}
	if o.DPI < 0 || o.DPI > sink.MaxDPI {
		return errors.New(errors.ErrCodeInvalidInput, "dpi must be in (0, %d], got %.1f", sink.MaxDPI, o.DPI)
	}
	if o.DeckPath != "" {
		if err := errors.ValidateDeckFilename(o.DeckPath); err != nil {
			return err
		}
	}
	o.validated = true
	return nil
}

// ArtifactKeyOpts returns cache key options for one artifact.
func (o *Options) ArtifactKeyOpts(format string, slide int) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format, Slide: slide}
	switch format {
	case FormatPNG:
		k.DPI = o.DPI
	case FormatSVG, FormatPDF:
		k.Outlines = o.Outlines
	}
	return k
}
