package deck

import (
	"github.com/matzehuels/slidedeck/pkg/canvas"
	"github.com/matzehuels/slidedeck/pkg/layout"
)

// MainFlow returns the flow row used by a flow slide. It is exported so the
// Graphviz export draws the same nodes in the same order.
func MainFlow(f *Flow) layout.FlowRowSpec {
	return layout.FlowRowSpec{
		Labels: f.Nodes,
		X0:     0.5,
		Y:      1.8,
		NodeW:  2.0,
		NodeH:  0.65,
		Gap:    0.45,
		Normal: layout.NodeStyle{
			Fill: canvas.LightBlue, Border: canvas.Blue, Text: canvas.Navy,
		},
		Emphasis: layout.NodeStyle{
			Fill: canvas.Navy, Border: canvas.Navy, Text: canvas.White,
		},
		ArrowColor: canvas.Blue,
	}
}

func assembleFlow(p *pen, d *Deck, s Slide) {
	f := s.Flow
	section := canvas.Style{Size: 13, Bold: true, Color: canvas.Navy}

	p.do(func() error { return layout.FlowRow(p.c, MainFlow(f)) })

	// One card per role, under the row.
	p.text(f.BranchTitle, canvas.Rect(0.5, 2.75, 12, 0.35), section)
	const branchW = 2.9
	for i, r := range d.Roles {
		x := 0.5 + float64(i)*(branchW+0.3)
		p.panel(canvas.Rect(x, 3.2, branchW, 1.3), r.Tint, r.Edge, 1.5)
		p.strip(r.Name, canvas.Rect(x, 3.2, branchW, 0.45), r.Color, 13)
		p.text(r.Summary, canvas.Rect(x+0.1, 3.68, branchW-0.2, 0.85), canvas.Style{Size: 11, Color: canvas.Black})
	}

	p.text(f.SubflowsTitle, canvas.Rect(0.5, 4.7, 12, 0.35), section)
	for i, sf := range f.Subflows {
		x := 0.5 + float64(i)*4.28
		p.panel(canvas.Rect(x, 5.1, 4.0, 2.3), canvas.White, canvas.Hairline, 1)
		p.text(sf.Title, canvas.Rect(x+0.15, 5.18, 3.7, 0.32), canvas.Style{Size: 12, Bold: true, Color: canvas.Navy})
		p.list(layout.ListSpec{
			Items:  sf.Steps,
			X:      x + 0.15,
			Y:      5.54,
			W:      3.7,
			H:      0.4,
			Step:   0.45,
			Style:  canvas.Style{Size: 10, Color: canvas.Black},
			Format: numbered,
		})
	}
}
