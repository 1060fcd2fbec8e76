// Package render turns assembled slide documents into files.
//
// The [sink] subpackage serializes a document as PPTX, per-slide SVG or
// PNG, PDF, or a JSON element dump. The [flowdot] subpackage exports flow
// slides as Graphviz diagrams.
//
// [ToPDF] and [ToPNG] convert any SVG using the external rsvg-convert tool
// (from librsvg):
//
//	svg, _ := sink.RenderSVG(slide)
//	pdf, err := render.ToPDF(ctx, svg)
package render
