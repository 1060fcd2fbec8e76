package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/slidedeck/pkg/canvas"
	"github.com/matzehuels/slidedeck/pkg/deck"
)

func defaultDoc(t *testing.T) *canvas.Document {
	t.Helper()
	d, err := deck.Default()
	if err != nil {
		t.Fatal(err)
	}
	doc, err := deck.Assemble(d)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func press(m InspectModel, keys ...tea.KeyMsg) InspectModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(InspectModel)
	}
	return m
}

var (
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
)

func TestInspectModelNavigation(t *testing.T) {
	doc := defaultDoc(t)
	m := NewInspectModel(doc, 0)

	m = press(m, keyLeft)
	if m.Slide != 0 {
		t.Errorf("left on first slide moved to %d", m.Slide)
	}

	m = press(m, keyDown, keyDown, keyUp)
	if m.Cursor != 1 {
		t.Errorf("Cursor = %d, want 1", m.Cursor)
	}

	m = press(m, keyRight)
	if m.Slide != 1 || m.Cursor != 0 {
		t.Errorf("right: Slide=%d Cursor=%d, want 1, 0", m.Slide, m.Cursor)
	}

	for i := 0; i < 20; i++ {
		m = press(m, keyRight)
	}
	if m.Slide != len(doc.Slides)-1 {
		t.Errorf("Slide = %d, want last slide %d", m.Slide, len(doc.Slides)-1)
	}
}

func TestInspectModelScrolls(t *testing.T) {
	doc := defaultDoc(t)
	m := NewInspectModel(doc, 4)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 14})
	m = next.(InspectModel)
	if m.Height != 5 {
		t.Fatalf("Height = %d, want 5", m.Height)
	}

	n := doc.Slides[4].Len()
	for i := 0; i < n+5; i++ {
		m = press(m, keyDown)
	}
	if m.Cursor != n-1 {
		t.Errorf("Cursor = %d, want %d", m.Cursor, n-1)
	}
	if m.Offset != n-m.Height {
		t.Errorf("Offset = %d, want %d", m.Offset, n-m.Height)
	}
}

func TestInspectModelQuit(t *testing.T) {
	m := NewInspectModel(defaultDoc(t), 0)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestInspectModelView(t *testing.T) {
	doc := defaultDoc(t)
	view := NewInspectModel(doc, 0).View()

	for _, want := range []string{"Slide 1/8", "Kind", "rect", "Digital Black Board"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryTable(t *testing.T) {
	out := summaryTable(defaultDoc(t))
	for _, want := range []string{"Title", "Rects", "Off-page"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q", want)
		}
	}
}

func TestElementRow(t *testing.T) {
	e := canvas.Element{
		Kind:  canvas.KindText,
		Box:   canvas.Rect(0.4, 0.15, 12.5, 0.6),
		Text:  "Roles",
		Style: &canvas.Style{Size: 24, Bold: true},
	}
	got := elementRow(3, e)
	want := []string{"3", "text", "0.40", "0.15", "12.50", "0.60", "—", "Roles [24ptb]"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("elementRow() = %v, want %v", got, want)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"much longer text", 5, "much…"},
		{"a\nb", 10, "a ⏎ b"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
