package pipeline

import (
	"path/filepath"
	"slices"
	"testing"

	"github.com/matzehuels/slidedeck/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"pptx", false},
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"pptx", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}
	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in      string
		want    []string
		wantErr bool
	}{
		{"pptx", []string{"pptx"}, false},
		{"pptx,svg", []string{"pptx", "svg"}, false},
		{" PPTX , png ,", []string{"pptx", "png"}, false},
		{"svg,svg,pdf", []string{"svg", "pdf"}, false},
		{"", nil, false},
		{"pptx,gif", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormats(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormats(%q) error = %v", tt.in, err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ParseFormats(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("zero options should be valid: %v", err)
	}
	if !slices.Equal(opts.Formats, DefaultFormats) {
		t.Errorf("Formats = %v, want %v", opts.Formats, DefaultFormats)
	}
	if opts.DPI != 96 {
		t.Errorf("DPI = %v, want 96", opts.DPI)
	}

	opts.Formats[0] = "svg"
	if DefaultFormats[0] != FormatPPTX {
		t.Error("defaults must not alias DefaultFormats")
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"bad format", Options{Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
		{"negative dpi", Options{DPI: -1}, errors.ErrCodeInvalidInput},
		{"huge dpi", Options{DPI: 100000}, errors.ErrCodeInvalidInput},
		{"json deck", Options{DeckPath: "deck.json"}, errors.ErrCodeInvalidDeck},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	opts := Options{DPI: 192, Outlines: true}

	if k := opts.ArtifactKeyOpts(FormatPNG, 2); k.DPI != 192 || k.Slide != 2 || k.Outlines {
		t.Errorf("png key = %+v", k)
	}
	if k := opts.ArtifactKeyOpts(FormatSVG, 1); k.DPI != 0 || !k.Outlines {
		t.Errorf("svg key = %+v", k)
	}
	if k := opts.ArtifactKeyOpts(FormatPPTX, 0); k.DPI != 0 || k.Outlines {
		t.Errorf("pptx key = %+v", k)
	}
}

func TestArtifactName(t *testing.T) {
	tests := []struct {
		a    Artifact
		want string
	}{
		{Artifact{Format: "pptx"}, "deck.pptx"},
		{Artifact{Format: "json"}, "deck.json"},
		{Artifact{Format: "svg", Slide: 3}, "slide-03.svg"},
		{Artifact{Format: "png", Slide: 12}, "slide-12.png"},
	}
	for _, tt := range tests {
		if got := tt.a.Name(); got != tt.want {
			t.Errorf("Name() = %q, want %q", got, tt.want)
		}
	}
}

func TestOutputPaths(t *testing.T) {
	r := &Result{Artifacts: []Artifact{
		{Format: "pptx"},
		{Format: "json"},
		{Format: "svg", Slide: 1},
	}}
	out := filepath.Join("out", "talk.pptx")
	got := r.OutputPaths(out)

	want := map[string]string{
		"deck.pptx":    out,
		"deck.json":    filepath.Join("out", "talk.json"),
		"slide-01.svg": filepath.Join("out", "talk_slides", "slide-01.svg"),
	}
	for name, p := range want {
		if got[name] != p {
			t.Errorf("OutputPaths()[%s] = %q, want %q", name, got[name], p)
		}
	}
}

func TestPerSlide(t *testing.T) {
	for f, want := range map[string]bool{"pptx": false, "json": false, "svg": true, "png": true, "pdf": true} {
		if PerSlide(f) != want {
			t.Errorf("PerSlide(%s) = %v", f, !want)
		}
	}
}
