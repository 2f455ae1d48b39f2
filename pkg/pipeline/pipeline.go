// Package pipeline provides the frame pipeline for stackedcards.
//
// This package implements the layout → render pipeline used by the render
// and inspect commands. Centralizing it keeps the CLI commands thin and lets
// every entry point resolve scroll positions and formats the same way.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Layout: Resolve the scroll offset and compute a [carousel.Frame]
//  2. Render: Generate output in one or more formats (SVG, JSON, PNG, PDF)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Page:    2,
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, d, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackedcards/pkg/carousel"
	"github.com/matzehuels/stackedcards/pkg/errors"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultWidth is the default viewport width in points.
	DefaultWidth = 390.0

	// DefaultHeight is the default viewport height in points.
	DefaultHeight = 400.0

	// NoPage marks Options.Page as unset; ScrollX is used instead.
	NoPage = -1
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
	FormatPNG:  true,
	FormatPDF:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Layout options
	Viewport carousel.Viewport
	Carousel carousel.Options
	Page     int     // snap to this page; NoPage to use ScrollX
	ScrollX  float64 // raw horizontal scroll offset

	// Render options
	Formats    []string
	Indicator  bool
	Labels     bool
	Background string
	Scale      float64 // PNG scale factor

	// Runtime options
	Logger *log.Logger

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Frame is the computed carousel frame.
	Frame carousel.Frame

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	CardCount  int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, json, png, pdf)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and fills in defaults.
// Calling it more than once has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetLayoutDefaults()
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults sets default values for frame computation.
func (o *Options) SetLayoutDefaults() {
	if o.Viewport.Width == 0 {
		o.Viewport.Width = DefaultWidth
	}
	if o.Viewport.Height == 0 {
		o.Viewport.Height = DefaultHeight
	}
	if o.Carousel == (carousel.Options{}) {
		o.Carousel = carousel.DefaultOptions()
	}
	if math.IsNaN(o.ScrollX) || math.IsInf(o.ScrollX, 0) {
		o.ScrollX = 0
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if o.Background != "" {
		if err := errors.ValidateHexColor(o.Background); err != nil {
			return err
		}
	}
	return ValidateFormats(o.Formats)
}

// HasPage reports whether the run targets a page rather than a raw offset.
func (o *Options) HasPage() bool {
	return o.Page >= 0
}
