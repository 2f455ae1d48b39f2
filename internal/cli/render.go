package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackedcards/pkg/errors"
	"github.com/matzehuels/stackedcards/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string   // output file path (or base path for multiple outputs); "-" for stdout
	formats    []string // output formats: "svg", "json", "png", "pdf"
	page       int      // page to snap to
	scroll     float64  // raw scroll offset, overrides page when set
	width      float64  // viewport width in points
	height     float64  // viewport height in points
	indicator  bool     // draw the scroll indicator
	labels     bool     // print card labels
	background string   // viewport background colour
	noRotation bool     // disable card rotation
	scale      float64  // PNG scale factor
}

// renderCommand creates the render command for writing single frames.
//
// Default settings:
//   - page: 0 (the first card focused)
//   - format: svg
//   - viewport: from the config file (390x400 unless changed)
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a carousel frame to SVG, JSON, PNG or PDF",
		Long: `Render the carousel at one scroll position.

The frame is taken either at a snapped page (--page) or at a raw horizontal
scroll offset in points (--scroll), which shows cards mid-transition.

PNG and PDF output require rsvg-convert (librsvg).`,
		Example: `  stackedcards render --page 2 -o page2.svg
  stackedcards render --scroll 585 -f svg,json -o halfway
  stackedcards render --page 1 -f json -o -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if err := errors.ValidateOutputPath(opts.output); err != nil {
				return err
			}
			if err := validatePage(opts.page); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), cmd.Flags().Changed("scroll"), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple); - for stdout")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, png, pdf (comma-separated)")
	cmd.Flags().IntVarP(&opts.page, "page", "p", 0, "page to snap to (0-based)")
	cmd.Flags().Float64Var(&opts.scroll, "scroll", 0, "horizontal scroll offset in points (overrides --page)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "viewport width (default from config)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "viewport height (default from config)")
	cmd.Flags().BoolVar(&opts.indicator, "indicator", false, "draw the scroll indicator")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "print card labels")
	cmd.Flags().StringVar(&opts.background, "background", "", "background colour (#rrggbb)")
	cmd.Flags().BoolVar(&opts.noRotation, "no-rotation", false, "disable card rotation")
	cmd.Flags().Float64Var(&opts.scale, "scale", 2, "PNG scale factor")

	return cmd
}

// validatePage rejects a negative --page, which would otherwise fall back to
// a raw scroll offset of 0.
func validatePage(page int) error {
	if page < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "invalid page: %d (must be 0 or greater)", page)
	}
	return nil
}

// buildPipelineOptions merges the render flags over the config defaults.
func (c *CLI) buildPipelineOptions(useScroll bool, opts *renderOpts) pipeline.Options {
	po := c.pipelineOptions()
	po.Formats = opts.formats
	po.Labels = opts.labels
	po.Background = opts.background
	po.Scale = opts.scale
	po.Indicator = po.Indicator || opts.indicator

	if useScroll {
		po.ScrollX = opts.scroll
	} else {
		po.Page = opts.page
	}
	if opts.width > 0 {
		po.Viewport.Width = opts.width
	}
	if opts.height > 0 {
		po.Viewport.Height = opts.height
	}
	if opts.noRotation {
		po.Carousel.Transform.RotationEnabled = false
	}
	return po
}

// runRender computes the frame and writes one file per format.
func (c *CLI) runRender(ctx context.Context, stdout io.Writer, useScroll bool, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	d, err := c.newDeck()
	if err != nil {
		return err
	}

	result, err := c.newRunner().Execute(ctx, d, c.buildPipelineOptions(useScroll, opts))
	if err != nil {
		return err
	}
	logger.Debugf("Frame: %d cards, current %d, scroll %.1f",
		result.Stats.CardCount, result.Frame.Current, result.Frame.ScrollX)

	if opts.output == "-" {
		for _, format := range opts.formats {
			if _, err := stdout.Write(result.Artifacts[format]); err != nil {
				return err
			}
		}
		return nil
	}

	base := basePath(opts.output)
	for _, format := range opts.formats {
		path := outputPath(opts.output, base, format, len(opts.formats))
		if err := writeFile(path, result.Artifacts[format]); err != nil {
			return err
		}
		printFile(path)
	}
	prog.done(fmt.Sprintf("Rendered %d file(s)", len(opts.formats)))
	return nil
}

// basePath derives the base output path from the output flag.
// If output is empty, the app name is used. A known format extension is stripped.
func basePath(output string) string {
	if output == "" {
		return appName
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath returns the file for format. A single format with an explicit
// output path is written to that path as given.
func outputPath(output, base, format string, formatCount int) string {
	if output != "" && formatCount == 1 && filepath.Ext(output) != "" {
		return output
	}
	return base + "." + format
}

// writeFile writes data to path, creating parent directories.
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}
