package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/matzehuels/slidedeck/pkg/errors"
	"github.com/matzehuels/slidedeck/pkg/render/flowdot"
)

type flowOpts struct {
	deck     string
	output   string
	format   string
	branches bool
	subflows bool
}

// flowCommand creates the flow command, which exports flow slides as
// Graphviz diagrams.
func (c *CLI) flowCommand() *cobra.Command {
	opts := flowOpts{output: ".", format: "svg"}

	cmd := &cobra.Command{
		Use:   "flow",
		Short: "Export flow slides as Graphviz diagrams",
		Long: `Flow writes every flow slide of the deck as a left-to-right Graphviz diagram,
one file per slide named flow-NN.<format>. png and pdf need rsvg-convert on PATH.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFlow(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.deck, "deck", "", "deck file (.toml, .yaml); built-in deck if empty")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output directory")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot, svg, png, pdf")
	cmd.Flags().BoolVar(&opts.branches, "branches", false, "add one node per role after the flow")
	cmd.Flags().BoolVar(&opts.subflows, "subflows", false, "add the numbered sub-flows as clusters")

	return cmd
}

func (c *CLI) runFlow(ctx context.Context, o flowOpts) error {
	d, err := loadDeck(o.deck)
	if err != nil {
		return err
	}

	files, err := flowdot.Export(ctx, d, flowdot.Options{Branches: o.branches, Subflows: o.subflows}, o.format)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		c.out.warn("%s has no flow slides", deckLabel(o.deck))
		return nil
	}

	if err := os.MkdirAll(o.output, 0755); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", o.output)
	}

	slides := make([]int, 0, len(files))
	for n := range files {
		slides = append(slides, n)
	}
	sort.Ints(slides)

	c.out.success("Exported %d flow diagram(s)", len(slides))
	for _, n := range slides {
		path := filepath.Join(o.output, fmt.Sprintf("flow-%02d.%s", n, o.format))
		if err := os.WriteFile(path, files[n], 0644); err != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "write %s", path)
		}
		c.Logger.Debug("wrote flow diagram", "slide", n, "path", path, "bytes", len(files[n]))
		c.out.file(path)
	}
	return nil
}
