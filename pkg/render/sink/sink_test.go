package sink

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"encoding/xml"
	"image/png"
	"io"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/slidedeck/pkg/canvas"
	"github.com/matzehuels/slidedeck/pkg/deck"
	"github.com/matzehuels/slidedeck/pkg/errors"
)

func defaultDocument(t *testing.T) *canvas.Document {
	t.Helper()
	d, err := deck.Default()
	if err != nil {
		t.Fatalf("deck.Default: %v", err)
	}
	doc, err := deck.Assemble(d)
	if err != nil {
		t.Fatalf("deck.Assemble: %v", err)
	}
	return doc
}

func readZip(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("zip.NewReader: %v", err)
	}
	parts := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		b, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		parts[f.Name] = string(b)
	}
	return parts
}

func wellFormed(t *testing.T, name, content string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(content))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return
		}
		if err != nil {
			t.Errorf("%s is not well-formed XML: %v", name, err)
			return
		}
	}
}

func TestRenderPPTX(t *testing.T) {
	doc := defaultDocument(t)
	id := uuid.MustParse("6f1c2a4e-0b7d-4c1e-9a55-3d2f8e4b7c10")

	data, err := RenderPPTX(doc, WithBuildID(id), WithCreator("tester"))
	if err != nil {
		t.Fatalf("RenderPPTX: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("RenderPPTX returned no bytes")
	}

	parts := readZip(t, data)
	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"docProps/core.xml",
		"docProps/app.xml",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/slide8.xml",
		"ppt/slides/_rels/slide8.xml.rels",
	} {
		if _, ok := parts[name]; !ok {
			t.Errorf("missing part %s", name)
		}
	}
	if _, ok := parts["ppt/slides/slide9.xml"]; ok {
		t.Error("unexpected ninth slide")
	}
	for name, content := range parts {
		wellFormed(t, name, content)
	}

	pres := parts["ppt/presentation.xml"]
	if !strings.Contains(pres, `<p:sldSz cx="12188952" cy="6858000"/>`) {
		t.Errorf("presentation.xml has wrong slide size:\n%s", pres)
	}
	if got := strings.Count(pres, "<p:sldId "); got != 8 {
		t.Errorf("sldId count = %d, want 8", got)
	}

	core := parts["docProps/core.xml"]
	if !strings.Contains(core, id.String()) || !strings.Contains(core, "<dc:creator>tester</dc:creator>") {
		t.Errorf("core.xml missing build id or creator:\n%s", core)
	}

	title := parts["ppt/slides/slide1.xml"]
	for _, want := range []string{
		"Digital Black Board",
		`<a:srgbClr val="1E3A5F"/>`,
		`sz="4400" b="1"`,
		`algn="ctr"`,
	} {
		if !strings.Contains(title, want) {
			t.Errorf("slide1.xml missing %q", want)
		}
	}

	roles := parts["ppt/slides/slide3.xml"]
	if !strings.Contains(roles, `i="1"`) || !strings.Contains(roles, `<a:ln w="19050">`) {
		t.Error("roles slide should have italic runs and 1.5pt borders")
	}
	flow := parts["ppt/slides/slide4.xml"]
	if !strings.Contains(flow, "<a:br>") {
		t.Error("multi-line branch text should use line breaks")
	}
}

func TestRenderPPTXDeterministic(t *testing.T) {
	doc := defaultDocument(t)
	id := uuid.New()
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	a, err := RenderPPTX(doc, WithBuildID(id), WithTimestamp(ts))
	if err != nil {
		t.Fatal(err)
	}
	b, err := RenderPPTX(doc, WithBuildID(id), WithTimestamp(ts))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("same document and options should produce identical packages")
	}
	if !strings.Contains(readZip(t, a)["docProps/core.xml"], "2026-01-02T03:04:05Z") {
		t.Error("timestamp not written")
	}
}

func TestRenderPPTXEmpty(t *testing.T) {
	if _, err := RenderPPTX(&canvas.Document{}); err == nil {
		t.Error("empty document should fail")
	}
}

func TestRenderSVG(t *testing.T) {
	doc := defaultDocument(t)
	c := doc.Slides[4]

	svg, err := RenderSVG(c)
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	s := string(svg)
	wellFormed(t, "slide5.svg", s)

	if !strings.HasPrefix(s, "<svg") {
		t.Errorf("output does not start with <svg: %.40q", s)
	}
	rects, _ := c.Counts()
	if got := strings.Count(s, `<rect id="el-`); got != rects {
		t.Errorf("rects = %d, want %d", got, rects)
	}
	if !strings.Contains(s, "Browse Courses") {
		t.Error("card title missing")
	}
	if strings.Contains(s, "stroke-dasharray") {
		t.Error("outlines drawn without WithOutlines")
	}

	outlined, err := RenderSVG(c, WithOutlines())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(outlined), "stroke-dasharray") {
		t.Error("WithOutlines should outline text boxes")
	}
}

func TestRenderPNG(t *testing.T) {
	doc := defaultDocument(t)

	data, err := RenderPNG(doc.Slides[0])
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 1280 || b.Dy() != 720 {
		t.Errorf("bounds = %v, want 1280x720", b)
	}
	r, g, b, _ := img.At(5, 5).RGBA()
	if r>>8 != 0x1E || g>>8 != 0x3A || b>>8 != 0x5F {
		t.Errorf("corner pixel = %02X%02X%02X, want navy", r>>8, g>>8, b>>8)
	}

	small, err := RenderPNG(doc.Slides[0], WithDPI(48))
	if err != nil {
		t.Fatal(err)
	}
	img, _ = png.Decode(bytes.NewReader(small))
	if img.Bounds().Dx() != 640 {
		t.Errorf("48 dpi width = %d, want 640", img.Bounds().Dx())
	}

	for _, dpi := range []float64{0, -1, MaxDPI + 1, 100000} {
		if _, err := RenderPNG(doc.Slides[0], WithDPI(dpi)); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("dpi %v: err = %v, want INVALID_INPUT", dpi, err)
		}
	}
}

func TestRenderJSON(t *testing.T) {
	doc := defaultDocument(t)
	data, err := RenderJSON(doc)
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	var out struct {
		Slides []struct {
			Index      int    `json:"index"`
			Background string `json:"background"`
			Rects      int    `json:"rects"`
			Texts      int    `json:"texts"`
			Elements   []struct {
				Kind string `json:"kind"`
			} `json:"elements"`
		} `json:"slides"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if len(out.Slides) != 8 {
		t.Fatalf("slides = %d, want 8", len(out.Slides))
	}
	first := out.Slides[0]
	if first.Background != "#1E3A5F" {
		t.Errorf("background = %q", first.Background)
	}
	if first.Rects+first.Texts != len(first.Elements) {
		t.Errorf("counts %d+%d do not match %d elements", first.Rects, first.Texts, len(first.Elements))
	}
}

func TestWrapText(t *testing.T) {
	faces, err := newFaceCache(svgDPI)
	if err != nil {
		t.Fatal(err)
	}
	defer faces.Close()
	face := faces.face(canvas.Style{Size: 10})

	tests := []struct {
		name  string
		text  string
		width float64
		want  int
	}{
		{"fits", "Dashboard", 500, 1},
		{"hard break", "Teaching tools\nCourses, Assignments", 500, 2},
		{"wraps", "one two three four five six seven eight nine ten", 60, 5},
		{"long word", "supercalifragilistic", 10, 1},
		{"empty", "", 100, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := wrapText(face, tt.text, tt.width)
			if tt.name == "wraps" {
				if len(lines) < 2 {
					t.Errorf("wrapText() = %d lines, want several", len(lines))
				}
				for _, ln := range lines {
					if strings.Contains(ln, " ") && measure(face, ln) > tt.width {
						t.Errorf("line %q is wider than %v", ln, tt.width)
					}
				}
				return
			}
			if len(lines) != tt.want {
				t.Errorf("wrapText() = %q, want %d lines", lines, tt.want)
			}
		})
	}
}

func TestWrapTextKeepsSpaces(t *testing.T) {
	faces, err := newFaceCache(svgDPI)
	if err != nil {
		t.Fatal(err)
	}
	defer faces.Close()
	face := faces.face(canvas.Style{Size: 10})

	tests := []struct {
		name  string
		text  string
		width float64
		want  []string
	}{
		{"bullet glyph", "  -  one", 500, []string{"  -  one"}},
		{"padded column", "KARANAM BHARGAV            (2400031923)", 1000, []string{"KARANAM BHARGAV            (2400031923)"}},
		{"break drops spaces at the seam", "alpha    beta", 1, []string{"alpha", "beta"}},
		{"leading spaces never break alone", "    word", 1, []string{"    word"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(face, tt.text, tt.width)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("wrapText(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestRenderSVGPreservesSpacing(t *testing.T) {
	c, err := canvas.New("spacing", 13.33, 7.5, canvas.White)
	if err != nil {
		t.Fatal(err)
	}
	for i, text := range []string{"  -  one", "KARANAM BHARGAV            (2400031923)"} {
		if _, err := c.DrawText(text, canvas.Rect(0.5, 0.5+float64(i), 12, 0.4), canvas.Style{Size: 11, Color: canvas.Black}); err != nil {
			t.Fatal(err)
		}
	}

	data, err := RenderSVG(c)
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	for _, want := range []string{
		`xml:space="preserve">  -  one</text>`,
		`xml:space="preserve">KARANAM BHARGAV            (2400031923)</text>`,
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("svg missing %q", want)
		}
	}
}

func TestPlaceTextAlignment(t *testing.T) {
	faces, err := newFaceCache(svgDPI)
	if err != nil {
		t.Fatal(err)
	}
	defer faces.Close()

	el := canvas.Element{
		Kind:  canvas.KindRect,
		Box:   canvas.Rect(1, 1, 2, 0.5),
		Text:  "Admin",
		Style: &canvas.Style{Size: 12, Align: canvas.AlignCenter},
	}
	lines := placeText(faces.face(*el.Style), el, svgDPI)
	if len(lines) != 1 {
		t.Fatalf("lines = %d", len(lines))
	}
	if got, want := lines[0].x, el.Box.CenterX()*svgDPI; math.Abs(got-want) > 1e-9 {
		t.Errorf("centered x = %v, want %v", got, want)
	}
	// label is vertically centered: baseline sits below the box center
	if cy := el.Box.CenterY() * svgDPI; lines[0].baseline <= cy || lines[0].baseline > cy+12 {
		t.Errorf("baseline %v not near center %v", lines[0].baseline, cy)
	}
}
