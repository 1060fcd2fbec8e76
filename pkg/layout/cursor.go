package layout

// Cursor is a vertical position that advances as lines are placed.
// A cursor belongs to one layout call and is never shared.
type Cursor struct {
	Y float64
}

// Next returns the current position and advances by h+gap.
func (c *Cursor) Next(h, gap float64) float64 {
	y := c.Y
	c.Y += h + gap
	return y
}

// Skip advances the cursor without placing anything.
func (c *Cursor) Skip(d float64) {
	c.Y += d
}
