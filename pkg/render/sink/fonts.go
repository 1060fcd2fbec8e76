package sink

import (
	"image/color"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/slidedeck/pkg/canvas"
	"github.com/matzehuels/slidedeck/pkg/errors"
)

// Text box insets in inches, matching the Office defaults.
const (
	insetX      = 0.1
	insetY      = 0.05
	lineSpacing = 1.2
)

var (
	fontsOnce sync.Once
	fontSet   [4]*truetype.Font // regular, bold, italic, bold italic
	fontsErr  error
)

func loadFonts() error {
	fontsOnce.Do(func() {
		for i, ttf := range [][]byte{goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF} {
			f, err := truetype.Parse(ttf)
			if err != nil {
				fontsErr = errors.Wrap(errors.ErrCodeInternal, err, "parse embedded font")
				return
			}
			fontSet[i] = f
		}
	})
	return fontsErr
}

type faceKey struct {
	size         float64
	bold, italic bool
}

// faceCache builds font faces at one resolution. dpi is output units per
// inch, so measured advances come back in output units.
type faceCache struct {
	dpi   float64
	faces map[faceKey]font.Face
}

func newFaceCache(dpi float64) (*faceCache, error) {
	if err := loadFonts(); err != nil {
		return nil, err
	}
	return &faceCache{dpi: dpi, faces: make(map[faceKey]font.Face)}, nil
}

func (fc *faceCache) face(s canvas.Style) font.Face {
	k := faceKey{size: s.Size, bold: s.Bold, italic: s.Italic}
	if f, ok := fc.faces[k]; ok {
		return f
	}
	idx := 0
	if s.Bold {
		idx |= 1
	}
	if s.Italic {
		idx |= 2
	}
	f := truetype.NewFace(fontSet[idx], &truetype.Options{
		Size:    s.Size,
		DPI:     fc.dpi,
		Hinting: font.HintingFull,
	})
	fc.faces[k] = f
	return f
}

func (fc *faceCache) Close() {
	for _, f := range fc.faces {
		_ = f.Close()
	}
}

type textLine struct {
	text        string
	x, baseline float64
}

// placeText lays out a text element or rectangle label in output units.
// Text boxes are top-anchored, labels are centered vertically.
func placeText(face font.Face, el canvas.Element, dpi float64) []textLine {
	s := *el.Style
	size := s.Size * dpi / canvas.PointsPerIn
	inner := el.Box.Inset(insetX, insetY)
	left := inner.X * dpi
	width := inner.W * dpi

	var lines []string
	if s.NoWrap {
		lines = strings.Split(el.Text, "\n")
	} else {
		lines = wrapText(face, el.Text, width)
	}

	lineH := size * lineSpacing
	top := inner.Y * dpi
	if el.Kind == canvas.KindRect {
		top = el.Box.CenterY()*dpi - float64(len(lines))*lineH/2
	}
	x := left
	switch s.Align {
	case canvas.AlignCenter:
		x = left + width/2
	case canvas.AlignRight:
		x = left + width
	}

	out := make([]textLine, len(lines))
	for i, ln := range lines {
		out[i] = textLine{text: ln, x: x, baseline: top + float64(i)*lineH + size}
	}
	return out
}

// wrapText breaks text into lines no wider than width. Hard line feeds are
// kept, and so are runs of spaces inside a line. Breaks only happen between
// words; a single word wider than the box gets a line of its own.
func wrapText(face font.Face, text string, width float64) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Split(para, " ")
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if w != "" && strings.TrimSpace(line) != "" && measure(face, candidate) > width {
				lines = append(lines, strings.TrimRight(line, " "))
				line = w
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}

func measure(face font.Face, s string) float64 {
	return float64(font.MeasureString(face, s)) / 64
}

func rgba(c canvas.Color) color.Color {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}
