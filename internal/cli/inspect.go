package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/slidedeck/pkg/canvas"
	"github.com/matzehuels/slidedeck/pkg/deck"
	"github.com/matzehuels/slidedeck/pkg/errors"
)

type inspectOpts struct {
	deck  string
	slide int
	plain bool
}

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var opts inspectOpts

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Browse the assembled slides and their elements",
		Long: `Inspect assembles the deck and opens an interactive browser over every slide's
elements in paint order. Elements outside the slide are highlighted.

With --plain it prints the tables instead: a slide summary, or one slide's
elements when --slide is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.deck, "deck", "", "deck file (.toml, .yaml); built-in deck if empty")
	cmd.Flags().IntVarP(&opts.slide, "slide", "s", 0, "1-based slide to open")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print tables instead of the interactive browser")

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, o inspectOpts) error {
	d, err := loadDeck(o.deck)
	if err != nil {
		return err
	}
	doc, err := deck.Assemble(d)
	if err != nil {
		return err
	}
	if o.slide < 0 || o.slide > len(doc.Slides) {
		return errors.New(errors.ErrCodeSlideNotFound, "slide %d out of range 1..%d", o.slide, len(doc.Slides))
	}
	c.Logger.Debug("assembled", "slides", len(doc.Slides), "elements", doc.ElementCount())

	if o.plain {
		if o.slide > 0 {
			fmt.Println(slideTable(doc.Slides[o.slide-1]))
		} else {
			fmt.Println(summaryTable(doc))
		}
		return nil
	}

	start := 0
	if o.slide > 0 {
		start = o.slide - 1
	}
	_, err = tea.NewProgram(NewInspectModel(doc, start), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

// summaryTable lists every slide with its element counts.
func summaryTable(doc *canvas.Document) string {
	rows := make([][]string, 0, len(doc.Slides))
	for i, c := range doc.Slides {
		rects, texts := c.Counts()
		rows = append(rows, []string{
			fmt.Sprint(i + 1),
			truncate(c.Title, 40),
			fmt.Sprint(rects),
			fmt.Sprint(texts),
			fmt.Sprint(len(c.OutOfBounds())),
		})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Title", "Rects", "Texts", "Off-page").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 4 && rows[row][4] != "0" {
				return lipgloss.NewStyle().Foreground(colorYellow)
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

// slideTable lists one slide's elements in paint order.
func slideTable(c *canvas.Canvas) string {
	elems := c.Elements()
	rows := make([][]string, len(elems))
	for i, e := range elems {
		rows[i] = append([]string{""}, elementRow(i, e)...)
	}
	off := make(map[int]bool)
	for _, i := range c.OutOfBounds() {
		off[i] = true
	}
	return elementTable(rows).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if off[row] {
				return lipgloss.NewStyle().Foreground(colorYellow)
			}
			return lipgloss.NewStyle()
		}).
		Render()
}
