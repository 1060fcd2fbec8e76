package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/slidedeck/pkg/pipeline"
)

// ANSI 256 palette shared by the console, the spinner and the inspector.
var (
	ansiTeal  = lipgloss.Color("36")
	ansiGreen = lipgloss.Color("35")
	ansiAmber = lipgloss.Color("220")
	ansiRed   = lipgloss.Color("167")
	ansiBlue  = lipgloss.Color("75")
	ansiWhite = lipgloss.Color("255")
	ansiGray  = lipgloss.Color("245")
	ansiDim   = lipgloss.Color("240")
)

// Styles reused by the inspector and the spinner.
var (
	StyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(ansiTeal)
	StyleValue   = lipgloss.NewStyle().Foreground(ansiWhite)
	StyleDim     = lipgloss.NewStyle().Foreground(ansiDim)
	StyleWarning = lipgloss.NewStyle().Foreground(ansiAmber)
	StyleLink    = lipgloss.NewStyle().Foreground(ansiBlue).Underline(true)

	styleIconSpinner = lipgloss.NewStyle().Foreground(ansiTeal)
	styleKey         = lipgloss.NewStyle().Foreground(ansiGray).Width(12)
	styleCommand     = lipgloss.NewStyle().Foreground(ansiBlue)
)

// mark is the glyph leading a status line.
type mark struct {
	glyph string
	style lipgloss.Style
}

var (
	markOK   = mark{"✓", lipgloss.NewStyle().Foreground(ansiGreen)}
	markFail = mark{"✗", lipgloss.NewStyle().Foreground(ansiRed)}
	markWarn = mark{"!", lipgloss.NewStyle().Foreground(ansiAmber)}
	markInfo = mark{"›", lipgloss.NewStyle().Foreground(ansiGray)}
)

// console prints human-facing status lines. Diagnostics go through the
// logger instead.
type console struct {
	w io.Writer
}

func (c console) status(m mark, format string, args ...any) {
	fmt.Fprintln(c.w, m.style.Render(m.glyph)+" "+fmt.Sprintf(format, args...))
}

func (c console) success(format string, args ...any) { c.status(markOK, format, args...) }
func (c console) failure(format string, args ...any) { c.status(markFail, format, args...) }
func (c console) info(format string, args ...any)    { c.status(markInfo, format, args...) }

func (c console) warn(format string, args ...any) {
	fmt.Fprintln(c.w, markWarn.style.Render(markWarn.glyph)+" "+StyleWarning.Render(fmt.Sprintf(format, args...)))
}

// detail prints an indented, dimmed line.
func (c console) detail(format string, args ...any) {
	fmt.Fprintln(c.w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// file prints one written output path.
func (c console) file(path string) {
	fmt.Fprintln(c.w, "  "+StyleDim.Render("→")+" "+StyleValue.Render(path))
}

func (c console) field(key, value string) {
	fmt.Fprintln(c.w, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// hint suggests the command to run next.
func (c console) hint(description, cmd string) {
	fmt.Fprintln(c.w, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// buildSummary prints "8 slides · 143 elements · fresh" for a build. The
// last part reports how many artifacts came from the cache.
func (c console) buildSummary(res *pipeline.Result) {
	files := len(res.Artifacts)
	cached := res.Stats.CacheHits

	origin := StyleDim.Render("fresh")
	switch {
	case files > 0 && cached == files:
		origin = markOK.style.Render("cached")
	case cached > 0:
		origin = markOK.style.Render(fmt.Sprintf("%d/%d cached", cached, files))
	}

	sep := StyleDim.Render(" · ")
	fmt.Fprintln(c.w, "  "+
		StyleDim.Render(plural(res.Stats.Slides, "slide"))+sep+
		StyleDim.Render(plural(res.Stats.Elements, "element"))+sep+origin)
}

// offPage warns about slides with elements outside the page, naming them
// in slide order.
func (c console) offPage(off map[int][]int) {
	if len(off) == 0 {
		return
	}
	slides := make([]int, 0, len(off))
	for n := range off {
		slides = append(slides, n)
	}
	sort.Ints(slides)

	names := make([]string, len(slides))
	for i, n := range slides {
		names[i] = fmt.Sprintf("%d (%d)", n, len(off[n]))
	}
	c.warn("Elements outside the page on slide %s; run with --strict to fail", strings.Join(names, ", "))
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
