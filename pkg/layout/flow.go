package layout

import (
	"github.com/matzehuels/slidedeck/pkg/canvas"
	"github.com/matzehuels/slidedeck/pkg/errors"
)

// Flow diagram metrics.
const (
	NodeBorder     = 1.5 // points
	NodeLabelSize  = 11
	ArrowInset     = 0.05
	ArrowThickness = 0.04
)

// NodeStyle colors one flow node.
type NodeStyle struct {
	Fill   canvas.Color
	Border canvas.Color
	Text   canvas.Color
}

// FlowNode draws a filled, bordered box with a centered bold label.
func FlowNode(c *canvas.Canvas, label string, b canvas.Box, st NodeStyle) (*canvas.Element, error) {
	el, err := c.DrawRect(b, st.Fill.Ptr(), st.Border.Ptr(), NodeBorder)
	if err != nil {
		return nil, err
	}
	if err := el.SetLabel(label, canvas.Style{Size: NodeLabelSize, Bold: true, Color: st.Text}); err != nil {
		return nil, err
	}
	return el, nil
}

// ArrowSegment draws a thin filled bar with no border and no head.
func ArrowSegment(c *canvas.Canvas, x, y, w, h float64, color canvas.Color) (*canvas.Element, error) {
	return c.DrawRect(canvas.Rect(x, y, w, h), color.Ptr(), nil, 0)
}

// FlowRowSpec lays out labels left to right with arrows between them.
// The first and last nodes use Emphasis, the rest use Normal.
type FlowRowSpec struct {
	Labels     []string
	X0, Y      float64
	NodeW      float64
	NodeH      float64
	Gap        float64
	Normal     NodeStyle
	Emphasis   NodeStyle
	ArrowColor canvas.Color
}

// NodeBox returns the box of node i.
func (s FlowRowSpec) NodeBox(i int) canvas.Box {
	return canvas.Rect(s.X0+float64(i)*(s.NodeW+s.Gap), s.Y, s.NodeW, s.NodeH)
}

// ArrowBox returns the box of the arrow that leaves node i.
func (s FlowRowSpec) ArrowBox(i int) canvas.Box {
	n := s.NodeBox(i)
	return canvas.Rect(n.Right()+ArrowInset, s.Y+s.NodeH/2-ArrowThickness/2, s.Gap-2*ArrowInset, ArrowThickness)
}

// FlowRow draws every node and the N-1 arrows between them.
func FlowRow(c *canvas.Canvas, spec FlowRowSpec) error {
	if spec.Gap < 2*ArrowInset {
		return errors.New(errors.ErrCodeInvalidGeometry, "flow gap %.2f leaves no room for arrows", spec.Gap)
	}
	last := len(spec.Labels) - 1
	for i, label := range spec.Labels {
		st := spec.Normal
		if i == 0 || i == last {
			st = spec.Emphasis
		}
		if _, err := FlowNode(c, label, spec.NodeBox(i), st); err != nil {
			return err
		}
		if i < last {
			a := spec.ArrowBox(i)
			if _, err := ArrowSegment(c, a.X, a.Y, a.W, a.H, spec.ArrowColor); err != nil {
				return err
			}
		}
	}
	return nil
}
