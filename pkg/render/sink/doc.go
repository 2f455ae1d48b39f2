// Package sink renders carousel frames to output formats.
//
// A "sink" turns a computed [carousel.Frame] into bytes:
//
//   - SVG: one rounded rectangle per card, painted in z-index order, with a
//     vertical gradient fill and the card's rotation applied about its center
//   - JSON: the per-card transform values for external tools and debugging
//   - PNG and PDF: the SVG converted by rsvg-convert (see package render)
//
// # SVG Output
//
//	svg := sink.RenderSVG(frame,
//	    sink.WithIndicator(),
//	    sink.WithLabels(),
//	)
//
// # SVG Options
//
//   - [WithIndicator]: draw a horizontal scroll indicator under the cards
//   - [WithLabels]: print each card's label in its center
//   - [WithBackground]: fill the viewport with a colour
//   - [WithCornerRadius]: corner radius of an unscaled card (default 20)
//
// # JSON Output
//
//	data, err := sink.RenderJSON(frame)
//
// Cards appear in paint order in both formats.
package sink
