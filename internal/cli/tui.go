package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/slidedeck/pkg/canvas"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
	headerStyle  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// =============================================================================
// InspectModel - Interactive slide browser
// =============================================================================

// InspectModel is the bubbletea model for browsing a document's elements.
type InspectModel struct {
	Doc    *canvas.Document
	Slide  int // 0-based
	Cursor int
	Height int
	Offset int

	offPage []map[int]bool
}

// NewInspectModel creates a browser positioned on slide (0-based).
func NewInspectModel(doc *canvas.Document, slide int) InspectModel {
	m := InspectModel{Doc: doc, Height: 15, offPage: make([]map[int]bool, len(doc.Slides))}
	for i, c := range doc.Slides {
		m.offPage[i] = make(map[int]bool)
		for _, idx := range c.OutOfBounds() {
			m.offPage[i][idx] = true
		}
	}
	if slide > 0 && slide < len(doc.Slides) {
		m.Slide = slide
	}
	return m
}

func (m InspectModel) Init() tea.Cmd {
	return nil
}

func (m InspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h", "pgup":
			if m.Slide > 0 {
				m.Slide--
				m.Cursor, m.Offset = 0, 0
			}
		case "right", "l", "pgdown", "tab":
			if m.Slide < len(m.Doc.Slides)-1 {
				m.Slide++
				m.Cursor, m.Offset = 0, 0
			}
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < m.current().Len()-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 9
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m InspectModel) current() *canvas.Canvas {
	return m.Doc.Slides[m.Slide]
}

func (m InspectModel) View() string {
	var b strings.Builder
	c := m.current()
	rects, texts := c.Counts()

	title := c.Title
	if title == "" {
		title = "(untitled)"
	}
	b.WriteString(StyleTitle.Render(fmt.Sprintf("Slide %d/%d", m.Slide+1, len(m.Doc.Slides))))
	b.WriteString("  " + StyleValue.Render(title))
	b.WriteString("\n")
	summary := fmt.Sprintf("%d rects · %d texts · background %s", rects, texts, c.Background)
	if n := len(m.offPage[m.Slide]); n > 0 {
		summary += " · " + StyleWarning.Render(fmt.Sprintf("%d off-page", n))
	}
	b.WriteString(listDimStyle.Render(summary))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("←/→ slide  ↑/↓ element  q quit"))
	b.WriteString("\n\n")

	elems := c.Elements()
	end := min(m.Offset+m.Height, len(elems))

	rows := make([][]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, append([]string{cursor}, elementRow(i, elems[i])...))
	}

	t := elementTable(rows).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			idx := m.Offset + row
			base := lipgloss.NewStyle()
			if m.offPage[m.Slide][idx] {
				base = base.Foreground(colorYellow)
			}
			if idx == m.Cursor {
				if !m.offPage[m.Slide][idx] {
					base = base.Foreground(colorCyan)
				}
				return base.Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", min(m.Cursor+1, len(elems)), len(elems))))

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

func elementTable(rows [][]string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "Kind", "X", "Y", "W", "H", "Fill", "Text").
		Rows(rows...)
}

// elementRow formats one element for the inspect table.
func elementRow(i int, e canvas.Element) []string {
	fill := "—"
	if e.Fill != nil {
		fill = e.Fill.String()
	}
	text := e.Text
	if e.Style != nil && text != "" {
		var flags string
		if e.Style.Bold {
			flags += "b"
		}
		if e.Style.Italic {
			flags += "i"
		}
		text = fmt.Sprintf("%s [%gpt%s]", truncate(text, 32), e.Style.Size, flags)
	}
	return []string{
		fmt.Sprint(i),
		string(e.Kind),
		fmt.Sprintf("%.2f", e.Box.X),
		fmt.Sprintf("%.2f", e.Box.Y),
		fmt.Sprintf("%.2f", e.Box.W),
		fmt.Sprintf("%.2f", e.Box.H),
		fill,
		text,
	}
}

// truncate shortens s to n runes on one line.
func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ⏎ ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
