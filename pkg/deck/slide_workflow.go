package deck

import (
	"github.com/matzehuels/slidedeck/pkg/canvas"
	"github.com/matzehuels/slidedeck/pkg/layout"
)

// Workflow panel grid.
const (
	workflowCols = 3
	workflowX0   = 0.3
	workflowTop  = 1.25
	workflowW    = 4.0
	workflowH    = 3.0
	workflowGap  = 0.27
	workflowRow  = 3.1
)

func assembleWorkflow(p *pen, _ *Deck, s Slide) {
	for i, wf := range s.Workflows {
		row, col := layout.GridCell(i, workflowCols)
		x := workflowX0 + float64(col)*(workflowW+workflowGap)
		y := workflowTop + float64(row)*workflowRow

		p.panel(canvas.Rect(x, y, workflowW, workflowH), canvas.White, canvas.Hairline, 1)
		p.strip(wf.Title, canvas.Rect(x, y, workflowW, 0.44), wf.Color, 12)
		p.list(layout.ListSpec{
			Items:  wf.Steps,
			X:      x + 0.15,
			Y:      y + 0.5,
			W:      workflowW - 0.25,
			H:      0.38,
			Step:   0.41,
			Style:  canvas.Style{Size: 9.5, Color: canvas.Black},
			Format: numbered,
		})
	}
}
