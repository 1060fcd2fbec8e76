// Package flowdot exports the flow slides of a deck as Graphviz diagrams.
//
// The main row of a flow slide becomes a left-to-right chain of boxes with
// the same emphasis as the slide: the first and last node are drawn dark.
// With [Options.Branches] the last node fans out to one node per role, and
// with [Options.Subflows] every sub-flow becomes a cluster of numbered steps.
//
// [ToDOT] is pure and deterministic. [RenderSVG] lays the DOT source out with
// the WebAssembly build of Graphviz bundled by go-graphviz, so no system
// install is needed.
package flowdot
