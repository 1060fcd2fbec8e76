// Package pkg provides the libraries behind slidedeck.
//
// # Overview
//
// Slidedeck turns a declarative deck description into widescreen slides.
// Content lives in data (TOML or YAML); layout lives in code. The pkg
// directory is organized into three areas:
//
//  1. Drawing: [canvas] primitives and [layout] helpers
//  2. Content: [deck] tables and the per-kind slide assemblers
//  3. Output: [render] sinks, the [pipeline] runner, [cache] backends
//     and the preview [server]
//
// # Architecture
//
// Data flows one way:
//
//	deck file (TOML / YAML, or the built-in deck)
//	         ↓
//	    [deck] package (load, validate, assemble)
//	         ↓
//	    [layout] package (bullet blocks, flow rows, card grids)
//	         ↓
//	    [canvas] package (rectangles and text runs at literal coordinates)
//	         ↓
//	    [render/sink] package (PPTX, SVG, PNG, PDF, JSON)
//
// # Quick Start
//
// Build the built-in deck:
//
//	d, _ := deck.Default()
//	doc, _ := deck.Assemble(d)
//	data, _ := sink.RenderPPTX(doc)
//	os.WriteFile(deck.DefaultOutput, data, 0644)
//
// Or go through the runner, which adds caching and validation:
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	res, _ := runner.Execute(ctx, pipeline.Options{Formats: []string{"pptx", "svg"}})
//	res.Write("out/deck.pptx")
//
// # Main Packages
//
// [canvas] - Geometry in inches, colors, and the Canvas that stores
// elements in paint order. Nothing is clipped; OutOfBounds reports
// elements that leave the slide.
//
// [layout] - Composite helpers with fixed line heights: BulletBlock,
// FlowRow, CardGrid, HeaderBar.
//
// [deck] - Content tables and one assembler per slide kind.
//
// [render/sink] - Serializers. [render/flowdot] exports flow slides as
// Graphviz diagrams.
//
// [pipeline] - Load → assemble → render with artifact caching and a
// file watcher. Used by the CLI and the preview server.
//
// [cache] - Artifact cache backends: null, file, Redis, MongoDB.
//
// [server] - HTTP preview of a deck.
//
// [errors] - Coded errors shared by every package.
//
// [canvas]: https://pkg.go.dev/github.com/matzehuels/slidedeck/pkg/canvas
// [layout]: https://pkg.go.dev/github.com/matzehuels/slidedeck/pkg/layout
// [deck]: https://pkg.go.dev/github.com/matzehuels/slidedeck/pkg/deck
// [render]: https://pkg.go.dev/github.com/matzehuels/slidedeck/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/slidedeck/pkg/render/sink
// [render/flowdot]: https://pkg.go.dev/github.com/matzehuels/slidedeck/pkg/render/flowdot
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/slidedeck/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/slidedeck/pkg/cache
// [server]: https://pkg.go.dev/github.com/matzehuels/slidedeck/pkg/server
// [errors]: https://pkg.go.dev/github.com/matzehuels/slidedeck/pkg/errors
package pkg
