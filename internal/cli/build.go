package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/slidedeck/pkg/errors"
	"github.com/matzehuels/slidedeck/pkg/pipeline"
)

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	deck     string
	output   string
	formats  string
	noCache  bool
	refresh  bool
	cacheURL string
	strict   bool
	watch    bool
	dpi      float64
	outlines bool
}

// buildCommand creates the build command. With no flags it writes the
// built-in deck to DBB_Prototype_Presentation.pptx.
func (c *CLI) buildCommand() *cobra.Command {
	var opts buildOpts

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a deck into a presentation",
		Long: `Build assembles every slide of a deck and writes the requested formats.

pptx and json are written to the output path (json next to it as <name>.json).
svg, png and pdf are written one file per slide into <name>_slides/.`,
		Example: `  slidedeck build
  slidedeck build --deck talk.yaml -o talk.pptx -f pptx,svg
  slidedeck build --deck talk.toml --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.deck, "deck", "", "deck file (.toml, .yaml); built-in deck if empty")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "presentation path (default from deck, else DBB_Prototype_Presentation.pptx)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): pptx (default), svg, png, pdf, json (comma-separated)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")
	cmd.Flags().StringVar(&opts.cacheURL, "cache", "", "cache backend: dir path, file://, redis://, mongodb:// (default local dir)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when an element lies outside its slide")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "rebuild when the deck file changes (needs --deck)")
	cmd.Flags().Float64Var(&opts.dpi, "dpi", 0, "png resolution, at most 600 (default 96)")
	cmd.Flags().BoolVar(&opts.outlines, "outlines", false, "outline text boxes in svg and pdf output")

	return cmd
}

func (o buildOpts) pipelineOptions() (pipeline.Options, error) {
	var formats []string
	if o.formats != "" {
		var err error
		if formats, err = pipeline.ParseFormats(o.formats); err != nil {
			return pipeline.Options{}, err
		}
	}
	opts := pipeline.Options{
		DeckPath: o.deck,
		Formats:  formats,
		DPI:      o.dpi,
		Outlines: o.outlines,
		Strict:   o.strict,
		Refresh:  o.refresh,
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return pipeline.Options{}, err
	}
	return opts, nil
}

func (c *CLI) runBuild(ctx context.Context, o buildOpts) error {
	opts, err := o.pipelineOptions()
	if err != nil {
		return err
	}
	if o.watch && o.deck == "" {
		return errors.New(errors.ErrCodeInvalidInput, "--watch needs --deck")
	}

	runner, err := c.newRunner(ctx, o.noCache, o.cacheURL)
	if err != nil {
		return err
	}
	defer runner.Close()

	c.Logger.Debug("building", "deck", deckLabel(o.deck), "formats", opts.Formats)

	spinner := newSpinner(ctx, fmt.Sprintf("Building %s...", deckLabel(o.deck)))
	spinner.Start()
	res, err := runner.Execute(ctx, opts)
	spinner.Stop()
	if spinner.Cancelled() {
		return ctx.Err()
	}
	if err != nil {
		return err
	}
	logBuild(c.Logger, deckLabel(o.deck), res)
	if err := c.writeResult(res, o.output); err != nil {
		return err
	}

	if !o.watch {
		if o.deck == "" {
			c.out.hint("Preview in a browser", "slidedeck serve")
		}
		return nil
	}

	c.out.info("Watching %s for changes (ctrl+c to stop)", o.deck)
	return runner.Watch(ctx, opts, pipeline.WatchOptions{
		OnBuild: func(res *pipeline.Result, err error) {
			if err != nil {
				c.out.failure("Rebuild failed: %s", errors.UserMessage(err))
				return
			}
			logBuild(c.Logger, deckLabel(o.deck), res)
			if err := c.writeResult(res, o.output); err != nil {
				c.out.failure("Write failed: %s", errors.UserMessage(err))
			}
		},
	})
}

// writeResult writes every artifact and prints the confirmation.
func (c *CLI) writeResult(res *pipeline.Result, output string) error {
	out := outputPath(output, res.Deck)
	paths, err := res.Write(out)
	if err != nil {
		return err
	}

	c.out.success("Presentation saved: %s", out)
	c.out.buildSummary(res)
	for _, p := range paths {
		if p != out {
			c.out.file(p)
		}
	}
	c.out.offPage(res.OffPage)
	return nil
}
