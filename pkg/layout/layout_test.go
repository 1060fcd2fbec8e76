package layout

import (
	"math"
	"testing"

	"github.com/matzehuels/slidedeck/pkg/canvas"
	"github.com/matzehuels/slidedeck/pkg/errors"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func page(t *testing.T) *canvas.Canvas {
	t.Helper()
	c, err := canvas.New("layout", 13.33, 7.5, canvas.Grey)
	if err != nil {
		t.Fatalf("canvas.New: %v", err)
	}
	return c
}

func TestCursor(t *testing.T) {
	cur := Cursor{Y: 1}
	if y := cur.Next(0.28, 0.02); y != 1 {
		t.Errorf("first Next() = %v, want 1", y)
	}
	if !near(cur.Y, 1.30) {
		t.Errorf("Y after Next = %v, want 1.30", cur.Y)
	}
	cur.Skip(0.5)
	if !near(cur.Y, 1.80) {
		t.Errorf("Y after Skip = %v, want 1.80", cur.Y)
	}
}

func TestBulletBlock(t *testing.T) {
	tests := []struct {
		name    string
		bullets []string
	}{
		{"empty", nil},
		{"one", []string{"a"}},
		{"four", []string{"Assignments", "Quizzes", "Grades", "Announcements"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := page(t)
			y, err := BulletBlock(c, BulletSpec{Heading: "About", Bullets: tt.bullets, X: 0.55, Y: 1.35, W: 5.6})
			if err != nil {
				t.Fatalf("BulletBlock: %v", err)
			}
			want := 1.35 + HeadingAdvance + float64(len(tt.bullets))*(BulletHeight+BulletGap)
			if !near(y, want) {
				t.Errorf("BulletBlock() = %v, want %v", y, want)
			}
			_, texts := c.Counts()
			if texts != len(tt.bullets)+1 {
				t.Errorf("texts = %d, want %d", texts, len(tt.bullets)+1)
			}
		})
	}
}

func TestBulletBlockScenario(t *testing.T) {
	c := page(t)
	y, err := BulletBlock(c, BulletSpec{
		Heading: "About",
		Bullets: []string{"one", "two", "three", "four"},
		X:       0.55, Y: 1.35, W: 5.6,
		HeadColor: canvas.Navy, BulletColor: canvas.Black,
	})
	if err != nil {
		t.Fatalf("BulletBlock: %v", err)
	}
	if !near(y, 2.93) {
		t.Errorf("BulletBlock() = %v, want 2.93", y)
	}

	els := c.Elements()
	if len(els) != 5 {
		t.Fatalf("elements = %d, want 5", len(els))
	}
	head := els[0]
	if !head.Style.Bold || head.Style.Size != DefaultHeadSize || head.Box.H != HeadingHeight {
		t.Errorf("heading = %+v", head)
	}
	first := els[1]
	if first.Text != "  -  one" {
		t.Errorf("bullet text = %q", first.Text)
	}
	if !near(first.Box.X, 0.70) || !near(first.Box.W, 5.45) || !near(first.Box.Y, 1.73) {
		t.Errorf("bullet box = %+v", first.Box)
	}
	if first.Style.Size != DefaultBulletSize || first.Style.Bold {
		t.Errorf("bullet style = %+v", *first.Style)
	}
}

func TestList(t *testing.T) {
	c := page(t)
	y, err := List(c, ListSpec{
		Items: []string{"Login", "Open course"},
		X:     0.6, Y: 5.54, W: 3.8, H: 0.4, Step: 0.45,
		Style:  canvas.Style{Size: 10},
		Format: func(n int, s string) string { return string(rune('0'+n)) + ".  " + s },
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if !near(y, 6.44) {
		t.Errorf("List() = %v, want 6.44", y)
	}
	els := c.Elements()
	if els[1].Text != "2.  Open course" || !near(els[1].Box.Y, 5.99) {
		t.Errorf("second line = %q at %v", els[1].Text, els[1].Box.Y)
	}
}

func TestFlowRowArrows(t *testing.T) {
	spec := FlowRowSpec{
		Labels: []string{"Login", "Auth", "Role", "Dashboard", "Logout"},
		X0:     0.5, Y: 1.8, NodeW: 2.0, NodeH: 0.65, Gap: 0.45,
		Normal:     NodeStyle{Fill: canvas.LightBlue, Border: canvas.Blue, Text: canvas.Navy},
		Emphasis:   NodeStyle{Fill: canvas.Navy, Border: canvas.Navy, Text: canvas.White},
		ArrowColor: canvas.Blue,
	}
	c := page(t)
	if err := FlowRow(c, spec); err != nil {
		t.Fatalf("FlowRow: %v", err)
	}

	rects, texts := c.Counts()
	if rects != 9 || texts != 0 {
		t.Errorf("Counts() = %d, %d, want 9 rects", rects, texts)
	}

	for i := 0; i < len(spec.Labels)-1; i++ {
		node, next, arrow := spec.NodeBox(i), spec.NodeBox(i+1), spec.ArrowBox(i)
		if !near(arrow.X, node.Right()+ArrowInset) {
			t.Errorf("arrow %d left = %v, want %v", i, arrow.X, node.Right()+ArrowInset)
		}
		if arrow.Right() > next.X+eps {
			t.Errorf("arrow %d right %v passes next node %v", i, arrow.Right(), next.X)
		}
		if !near(arrow.CenterY(), node.CenterY()) {
			t.Errorf("arrow %d not centered: %v vs %v", i, arrow.CenterY(), node.CenterY())
		}
	}

	els := c.Elements()
	if *els[0].Fill != canvas.Navy || *els[len(els)-1].Fill != canvas.Navy {
		t.Error("first and last nodes should be emphasized")
	}
	if *els[2].Fill != canvas.LightBlue {
		t.Errorf("middle node fill = %v", *els[2].Fill)
	}
	if els[1].HasBorder() {
		t.Error("arrow should have no border")
	}
	if els[0].Text != "Login" || els[0].Style.Size != NodeLabelSize || !els[0].Style.Bold {
		t.Errorf("node label = %q %+v", els[0].Text, els[0].Style)
	}
}

func TestFlowRowRejectsNarrowGap(t *testing.T) {
	c := page(t)
	err := FlowRow(c, FlowRowSpec{Labels: []string{"a", "b"}, NodeW: 1, NodeH: 1, Gap: 0.05})
	if !errors.Is(err, errors.ErrCodeInvalidGeometry) {
		t.Errorf("FlowRow() error = %v, want INVALID_GEOMETRY", err)
	}
}

func TestGridCell(t *testing.T) {
	tests := []struct {
		i, cols  int
		row, col int
	}{
		{0, 4, 0, 0},
		{3, 4, 0, 3},
		{4, 4, 1, 0},
		{7, 4, 1, 3},
		{11, 4, 2, 3},
		{5, 3, 1, 2},
		{2, 1, 2, 0},
		{2, 0, 2, 0},
		{3, -2, 3, 0},
	}
	for _, tt := range tests {
		row, col := GridCell(tt.i, tt.cols)
		if row != tt.row || col != tt.col {
			t.Errorf("GridCell(%d, %d) = (%d, %d), want (%d, %d)", tt.i, tt.cols, row, col, tt.row, tt.col)
		}
	}
}

func screenGrid() GridSpec {
	return GridSpec{
		Columns: 4, CardW: 3.0, CardH: 1.75, GapX: 0.2, GapY: 0.2,
		OriginX: 0.3, OriginY: 1.25, StripH: 0.38,
		TitleSize: 11, BodySize: 9,
		TagColor: canvas.DarkGrey, TextColor: canvas.Black,
	}
}

func TestCardGridPlacement(t *testing.T) {
	g := screenGrid()
	items := make([]Card, 12)
	for i := range items {
		items[i] = Card{Title: "Screen", Tag: "Role: Admin", Color: canvas.Blue, Description: "d"}
	}

	c := page(t)
	if err := CardGrid(c, items, g); err != nil {
		t.Fatalf("CardGrid: %v", err)
	}
	rects, texts := c.Counts()
	if rects != 24 || texts != 24 {
		t.Errorf("Counts() = %d, %d, want 24, 24", rects, texts)
	}

	seen := map[[2]int]bool{}
	colX := map[int]float64{}
	for i := range items {
		row, col := GridCell(i, g.Columns)
		if seen[[2]int{row, col}] {
			t.Errorf("duplicate cell (%d, %d)", row, col)
		}
		seen[[2]int{row, col}] = true

		b := g.CardBox(i)
		if x, ok := colX[col]; ok && x != b.X {
			t.Errorf("column %d has x %v and %v", col, x, b.X)
		}
		colX[col] = b.X
	}

	b := g.CardBox(7)
	if !near(b.X, 0.3+3*3.2) || !near(b.Y, 1.25+1.95) {
		t.Errorf("CardBox(7) = %+v", b)
	}
	if len(c.OutOfBounds()) != 0 {
		t.Errorf("12 screens should fit the page, out of bounds: %v", c.OutOfBounds())
	}
}

func TestCardGridOverflowStillRenders(t *testing.T) {
	items := make([]Card, 16)
	c := page(t)
	if err := CardGrid(c, items, screenGrid()); err != nil {
		t.Fatalf("CardGrid: %v", err)
	}
	if len(c.OutOfBounds()) == 0 {
		t.Error("fourth row should fall off the page")
	}
}

func TestCardGridRejectsZeroColumns(t *testing.T) {
	g := screenGrid()
	g.Columns = 0
	err := CardGrid(page(t), []Card{{Title: "x"}}, g)
	if !errors.Is(err, errors.ErrCodeInvalidGeometry) {
		t.Errorf("CardGrid() error = %v, want INVALID_GEOMETRY", err)
	}
}

func TestHeaderBar(t *testing.T) {
	c := page(t)
	if err := HeaderBar(c, "Overview", ""); err != nil {
		t.Fatalf("HeaderBar: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("no subtitle: Len() = %d, want 2", c.Len())
	}
	if err := HeaderBar(c, "Overview", "What it does"); err != nil {
		t.Fatalf("HeaderBar: %v", err)
	}
	if c.Len() != 5 {
		t.Errorf("with subtitle: Len() = %d, want 5", c.Len())
	}
	bar := c.Elements()[0]
	if bar.Box.W != c.Width || bar.Box.H != HeaderHeight {
		t.Errorf("bar = %+v", bar.Box)
	}
}

func TestCardGridNeedsColumns(t *testing.T) {
	g := screenGrid()
	g.Columns = 0
	err := CardGrid(page(t), []Card{{Title: "Screen"}}, g)
	if !errors.Is(err, errors.ErrCodeInvalidGeometry) {
		t.Errorf("CardGrid() error = %v, want INVALID_GEOMETRY", err)
	}
}
