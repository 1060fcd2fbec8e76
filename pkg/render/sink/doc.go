// Package sink serializes an assembled [canvas.Document].
//
// Every sink is a pure function of the document and its options: the same
// document with the same build ID and timestamp yields identical bytes,
// which lets the pipeline cache artifacts by deck hash.
//
//   - [RenderPPTX]: one Office Open XML presentation
//   - [RenderSVG]: one SVG image per slide
//   - [RenderPNG]: one raster image per slide, drawn with gg
//   - [RenderPDF]: one PDF per slide via rsvg-convert
//   - [RenderJSON]: the element lists, for inspection and diffing
package sink
