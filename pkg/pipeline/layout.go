package pipeline

import (
	"context"

	"github.com/matzehuels/stackedcards/pkg/carousel"
	"github.com/matzehuels/stackedcards/pkg/deck"
	"github.com/matzehuels/stackedcards/pkg/scroll"
)

// =============================================================================
// Frame Generation
// =============================================================================

// GenerateFrame computes the frame for the scroll position described by
// opts. A page is clamped to the deck and becomes the committed card; a raw
// scroll offset commits the nearest page.
func GenerateFrame(ctx context.Context, d *deck.Deck, opts Options) carousel.Frame {
	opts.SetLayoutDefaults()

	st := scroll.NewState(d)
	scrollX := opts.ScrollX
	if opts.HasPage() {
		page := d.Clamp(opts.Page)
		scrollX = carousel.SnapOffset(page, opts.Viewport)
		st.SetScrolled(d.Card(page).ID, d)
	} else {
		st.SetScrolled(d.Card(carousel.NearestIndex(scrollX, opts.Viewport, d)).ID, d)
	}

	return carousel.Layout(ctx, d, opts.Viewport, scrollX, st, opts.Carousel)
}
