package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/stackedcards/pkg/carousel"
	"github.com/matzehuels/stackedcards/pkg/observability"
	"github.com/matzehuels/stackedcards/pkg/render/sink"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, f carousel.Frame, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	hooks := observability.Render()
	svgOpts := buildSVGOptions(opts)
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		start := time.Now()
		hooks.OnRenderStart(ctx, format)

		var data []byte
		var err error
		switch format {
		case FormatSVG:
			data = sink.RenderSVG(f, svgOpts...)
		case FormatJSON:
			data, err = sink.RenderJSON(f)
		case FormatPNG:
			data, err = sink.RenderPNG(ctx, f, pngOptions(svgOpts, opts.Scale)...)
		case FormatPDF:
			data, err = sink.RenderPDF(ctx, f, svgOpts...)
		}

		hooks.OnRenderComplete(ctx, format, len(data), time.Since(start), err)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// buildSVGOptions builds SVG rendering options.
func buildSVGOptions(opts Options) []sink.SVGOption {
	var svgOpts []sink.SVGOption
	if opts.Indicator {
		svgOpts = append(svgOpts, sink.WithIndicator())
	}
	if opts.Labels {
		svgOpts = append(svgOpts, sink.WithLabels())
	}
	if opts.Background != "" {
		svgOpts = append(svgOpts, sink.WithBackground(opts.Background))
	}
	return svgOpts
}

func pngOptions(svgOpts []sink.SVGOption, scale float64) []sink.PNGOption {
	pngOpts := []sink.PNGOption{sink.WithPNGSVGOptions(svgOpts...)}
	if scale > 0 {
		pngOpts = append(pngOpts, sink.WithScale(scale))
	}
	return pngOpts
}
