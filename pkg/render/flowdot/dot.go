package flowdot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/slidedeck/pkg/canvas"
	"github.com/matzehuels/slidedeck/pkg/deck"
	"github.com/matzehuels/slidedeck/pkg/errors"
	"github.com/matzehuels/slidedeck/pkg/render"
)

// Options configures which parts of a flow slide are exported.
type Options struct {
	// Branches adds one node per role after the last flow node.
	Branches bool
	// Subflows adds one cluster per sub-flow.
	Subflows bool
}

// ToDOT converts a flow slide to Graphviz DOT. Roles are only read when
// opts.Branches is set.
func ToDOT(f *deck.Flow, roles []deck.Role, opts Options) string {
	row := deck.MainFlow(f)

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"filled\", fontname=\"Helvetica-Bold\", fontsize=14, margin=\"0.2,0.1\"];\n")
	fmt.Fprintf(&buf, "  edge [color=%q, penwidth=2, arrowsize=0.7];\n", row.ArrowColor.String())
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	last := len(f.Nodes) - 1
	for i, label := range f.Nodes {
		st := row.Normal
		if i == 0 || i == last {
			st = row.Emphasis
		}
		fmt.Fprintf(&buf, "  %s [%s];\n", nodeID("n", i), nodeAttrs(label, st.Fill, st.Border, st.Text))
	}
	for i := 0; i < last; i++ {
		fmt.Fprintf(&buf, "  %s -> %s;\n", nodeID("n", i), nodeID("n", i+1))
	}

	if opts.Branches && last >= 0 && len(roles) > 0 {
		buf.WriteString("\n")
		for i, r := range roles {
			label := r.Name
			if r.Summary != "" {
				label += "\n" + firstLine(r.Summary)
			}
			fmt.Fprintf(&buf, "  %s [%s];\n", nodeID("r", i), nodeAttrs(label, r.Tint, r.Color, r.Color))
			fmt.Fprintf(&buf, "  %s -> %s [style=dashed];\n", nodeID("n", last), nodeID("r", i))
		}
	}

	if opts.Subflows {
		for i, sf := range f.Subflows {
			fmt.Fprintf(&buf, "\n  subgraph cluster_%d {\n", i)
			fmt.Fprintf(&buf, "    label=%q;\n", sf.Title)
			buf.WriteString("    style=\"rounded\";\n")
			fmt.Fprintf(&buf, "    color=%q;\n", canvas.Hairline.String())
			fmt.Fprintf(&buf, "    fontcolor=%q;\n", canvas.Navy.String())
			prefix := fmt.Sprintf("s%d_", i)
			for j, step := range sf.Steps {
				label := fmt.Sprintf("%d. %s", j+1, step)
				fmt.Fprintf(&buf, "    %s [%s, fontname=\"Helvetica\", fontsize=11];\n",
					nodeID(prefix, j), nodeAttrs(label, canvas.White, canvas.Hairline, canvas.Black))
			}
			for j := 0; j+1 < len(sf.Steps); j++ {
				fmt.Fprintf(&buf, "    %s -> %s;\n", nodeID(prefix, j), nodeID(prefix, j+1))
			}
			buf.WriteString("  }\n")
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(prefix string, i int) string {
	return strconv.Quote(prefix + strconv.Itoa(i))
}

func nodeAttrs(label string, fill, border, text canvas.Color) string {
	return strings.Join([]string{
		fmt.Sprintf("label=%q", label),
		fmt.Sprintf("fillcolor=%q", fill.String()),
		fmt.Sprintf("color=%q", border.String()),
		fmt.Sprintf("fontcolor=%q", text.String()),
	}, ", ")
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

// RenderSVG lays out a DOT graph and returns SVG bytes.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized svg tag with one that
// scales to its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}

var validFormats = map[string]bool{"dot": true, "svg": true, "png": true, "pdf": true}

func convert(ctx context.Context, dot, format string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	switch format {
	case "png":
		return render.ToPNG(ctx, svg, 2.0)
	case "pdf":
		return render.ToPDF(ctx, svg)
	}
	return svg, nil
}

// Export renders every flow slide of d as dot, svg, png or pdf. Keys are
// 1-based slide numbers. png and pdf need rsvg-convert.
func Export(ctx context.Context, d *deck.Deck, opts Options, format string) (map[int][]byte, error) {
	if !validFormats[format] {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported flow format %q (want dot, svg, png or pdf)", format)
	}
	out := make(map[int][]byte)
	for _, i := range d.FlowSlides() {
		dot := ToDOT(d.Slides[i].Flow, d.Roles, opts)
		if format == "dot" {
			out[i+1] = []byte(dot)
			continue
		}
		data, err := convert(ctx, dot, format)
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", i+1, err)
		}
		out[i+1] = data
	}
	return out, nil
}
