package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/slidedeck/pkg/pipeline"
	"github.com/matzehuels/slidedeck/pkg/server"
)

type serveOpts struct {
	deck     string
	addr     string
	noCache  bool
	cacheURL string
	dpi      float64
	outlines bool
}

// serveCommand creates the serve command for the browser preview.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: server.DefaultAddr}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview a deck in the browser",
		Long: `Serve renders the deck on every request, so edits to the deck file show up on reload.

Routes:
  /                 slide overview
  /slides/{n}.svg   one slide as SVG
  /slides/{n}.png   one slide as PNG
  /deck.pptx        the presentation
  /deck.json        element dump
  /healthz          liveness probe`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.deck, "deck", "", "deck file (.toml, .yaml); built-in deck if empty")
	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().StringVar(&opts.cacheURL, "cache", "", "cache backend: dir path, file://, redis://, mongodb:// (default local dir)")
	cmd.Flags().Float64Var(&opts.dpi, "dpi", 0, "png resolution, at most 600 (default 96)")
	cmd.Flags().BoolVar(&opts.outlines, "outlines", false, "outline text boxes in svg output")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, o serveOpts) error {
	popts := pipeline.Options{
		DeckPath: o.deck,
		DPI:      o.dpi,
		Outlines: o.outlines,
	}
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, o.noCache, o.cacheURL)
	if err != nil {
		return err
	}
	defer runner.Close()

	c.out.info("Serving slide preview (ctrl+c to stop)")
	c.out.field("deck", deckLabel(o.deck))
	c.out.field("url", StyleLink.Render("http://"+o.addr))
	return server.New(runner, popts).ListenAndServe(ctx, o.addr)
}
