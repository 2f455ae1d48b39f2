// Package render converts rendered SVG frames to other formats.
//
// The [ToPDF] and [ToPNG] functions convert any SVG document using the
// external rsvg-convert tool (from librsvg):
//
//	svg := sink.RenderSVG(frame)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// When rsvg-convert is not installed the functions return an error with code
// FILE_NOT_FOUND and installation instructions.
//
// Frame rendering itself lives in the [sink] subpackage.
package render
