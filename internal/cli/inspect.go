package cli

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackedcards/pkg/carousel"
	"github.com/matzehuels/stackedcards/pkg/errors"
	"github.com/matzehuels/stackedcards/pkg/pipeline"
)

const (
	orderDeck  = "deck"  // cards by deck index
	orderPaint = "paint" // cards back to front
)

// inspectCommand creates the inspect command, which prints the per-card
// transform values at one scroll position.
func (c *CLI) inspectCommand() *cobra.Command {
	var opts renderOpts
	var order string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print card transforms for a scroll position",
		Example: `  stackedcards inspect --scroll 195
  stackedcards inspect --page 3 --order paint`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if order != orderDeck && order != orderPaint {
				return errors.New(errors.ErrCodeInvalidInput, "invalid order: %q (must be 'deck' or 'paint')", order)
			}
			if err := validatePage(opts.page); err != nil {
				return err
			}
			return c.runInspect(cmd.Context(), cmd.OutOrStdout(), cmd.Flags().Changed("scroll"), order, &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.page, "page", "p", 0, "page to snap to (0-based)")
	cmd.Flags().Float64Var(&opts.scroll, "scroll", 0, "horizontal scroll offset in points (overrides --page)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "viewport width (default from config)")
	cmd.Flags().BoolVar(&opts.noRotation, "no-rotation", false, "disable card rotation")
	cmd.Flags().StringVar(&order, "order", orderDeck, "row order: deck, paint")

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, w io.Writer, useScroll bool, order string, opts *renderOpts) error {
	d, err := c.newDeck()
	if err != nil {
		return err
	}

	f := pipeline.GenerateFrame(ctx, d, c.buildPipelineOptions(useScroll, opts))
	cards := f.Cards
	if order == orderDeck {
		cards = slices.Clone(cards)
		slices.SortFunc(cards, func(a, b carousel.CardFrame) int { return a.Card.Index - b.Card.Index })
	}

	fmt.Fprintln(w, StyleTitle.Render("Frame")+" "+StyleDim.Render(fmt.Sprintf(
		"scroll %.1f · width %.0f · current %d · %s",
		f.ScrollX, f.Viewport.Width, f.Current, f.Direction)))
	fmt.Fprintln(w, transformTable(cards))
	return nil
}

// transformTable renders one row per card.
func transformTable(cards []carousel.CardFrame) string {
	rows := make([][]string, 0, len(cards))
	for _, c := range cards {
		marker := ""
		if c.Focused {
			marker = "▸"
		}
		rows = append(rows, []string{
			marker,
			fmt.Sprintf("%d", c.Card.Index),
			"  ",
			fmt.Sprintf("%.1f", c.Geometry.MinX),
			fmt.Sprintf("%+.3f", c.Transform.Progress),
			fmt.Sprintf("%.3f", c.Transform.Scale),
			fmt.Sprintf("%+.2f°", c.Transform.Rotation),
			fmt.Sprintf("%+.1f", c.Transform.Offset),
			fmt.Sprintf("%+.1f", c.Transform.Excess),
			fmt.Sprintf("%d", c.ZIndex),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Card", "", "MinX", "Progress", "Scale", "Rotation", "Offset", "Excess", "Z").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			c := cards[row]
			switch {
			case col == 2:
				return cellStyle.Background(lipgloss.Color(c.Card.Color))
			case c.Focused:
				return cellStyle.Foreground(colorCyan).Bold(true)
			case col >= 3:
				return cellStyle.Foreground(colorWhite).Align(lipgloss.Right)
			}
			return cellStyle.Foreground(colorGray)
		})

	return t.Render()
}
