package deck

import (
	"fmt"

	"github.com/matzehuels/slidedeck/pkg/canvas"
	"github.com/matzehuels/slidedeck/pkg/layout"
)

// pen draws onto one canvas and keeps the first error. Once an error is
// recorded every later call is a no-op, so assemblers read as a flat list
// of drawing calls.
type pen struct {
	c   *canvas.Canvas
	err error
}

func (p *pen) do(fn func() error) {
	if p.err == nil {
		p.err = fn()
	}
}

func (p *pen) text(s string, b canvas.Box, st canvas.Style) {
	p.do(func() error {
		_, err := p.c.DrawText(s, b, st)
		return err
	})
}

func (p *pen) rect(b canvas.Box, fill, border *canvas.Color, pt float64) {
	p.do(func() error {
		_, err := p.c.DrawRect(b, fill, border, pt)
		return err
	})
}

func (p *pen) panel(b canvas.Box, fill, border canvas.Color, pt float64) {
	p.do(func() error {
		_, err := layout.Panel(p.c, b, fill, border, pt)
		return err
	})
}

func (p *pen) strip(label string, b canvas.Box, color canvas.Color, size float64) {
	p.do(func() error {
		_, err := layout.Strip(p.c, label, b, color, size)
		return err
	})
}

func (p *pen) bullets(spec layout.BulletSpec) float64 {
	y := spec.Y
	p.do(func() (err error) {
		y, err = layout.BulletBlock(p.c, spec)
		return err
	})
	return y
}

func (p *pen) list(spec layout.ListSpec) float64 {
	y := spec.Y
	p.do(func() (err error) {
		y, err = layout.List(p.c, spec)
		return err
	})
	return y
}

func numbered(n int, s string) string {
	return fmt.Sprintf("%d.  %s", n, s)
}
