// Package carousel computes complete frames of the stacked-cards carousel.
//
// A frame is what the presentation layer draws for one scroll position. The
// engine lays the deck out as full-width pages inside a horizontal scroll
// container: card i occupies
//
//	minX = i*Width - scrollX
//	maxX = minX + Width
//
// For every card it then runs the pipeline
//
//	geometry → progress.Calculate → transform.Apply → zindex.Rank
//
// and resolves the card's visual rectangle (inset by the viewport padding,
// scaled about its trailing edge, shifted by the pin and excess offsets).
// Cards in a [Frame] are sorted in paint order, lowest z-index first.
//
// # Fail-soft behaviour
//
// [Layout] never produces NaN or infinite values; an unusable viewport width
// falls back to width 1 inside the progress calculator. [Engine] adds frame
// memory on top: when the viewport width is unusable it returns the previous
// frame unchanged instead of laying out a degenerate one.
//
// # Diagnostics
//
// With Options.Debug set, every card transform is reported through
// observability.Carousel().OnCardTransform. Every frame is reported through
// OnFrame regardless of the flag.
package carousel
