// Package canvas holds the drawing surface that slide assemblers paint on.
//
// A [Canvas] is one slide: a fixed page size in inches, a background color,
// and an ordered list of [Element] values. Insertion order is paint order, so
// later elements cover earlier ones. There are only two element kinds:
//
//   - KindRect: a rectangle with an optional fill and an optional border.
//     A rectangle may carry a centered label (see [Element.SetLabel]).
//   - KindText: a single-paragraph text box with one style for the whole
//     string. There is no inline rich text.
//
// Drawing never measures text and never clips. Coordinates are not checked
// against the page; [Canvas.OutOfBounds] reports elements that leave it so
// callers (and tests) can enforce that separately.
//
// A [Document] is the ordered list of canvases that output sinks serialize.
package canvas
