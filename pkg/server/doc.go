// Package server serves live previews of a deck over HTTP.
//
// Every request reloads the deck file, so edits show up on the next page
// refresh. Rendered artifacts go through the pipeline's cache under a
// "preview:" key scope, and concurrent requests for the same format share
// one build.
//
// Routes:
//
//	GET /                 HTML index with every slide inline
//	GET /slides/{n}.svg   one slide as SVG
//	GET /slides/{n}.png   one slide as PNG
//	GET /deck.pptx        the presentation
//	GET /deck.json        the element dump
//	GET /healthz          liveness probe
package server
