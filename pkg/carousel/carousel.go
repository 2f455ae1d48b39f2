package carousel

import (
	"context"
	"math"
	"slices"
	"time"

	"github.com/matzehuels/stackedcards/pkg/deck"
	"github.com/matzehuels/stackedcards/pkg/observability"
	"github.com/matzehuels/stackedcards/pkg/progress"
	"github.com/matzehuels/stackedcards/pkg/scroll"
	"github.com/matzehuels/stackedcards/pkg/transform"
	"github.com/matzehuels/stackedcards/pkg/zindex"
)

// Viewport is the visible area of the scroll container.
type Viewport struct {
	Width    float64
	Height   float64
	Padding  float64 // horizontal inset of each card within its page
	VPadding float64 // vertical inset of each card
}

// Usable reports whether the width can be laid out.
func (v Viewport) Usable() bool {
	return v.Width > 0 && !math.IsInf(v.Width, 0)
}

// Options configures frame computation.
type Options struct {
	Limit     float64
	Clamp     progress.ClampMode
	Transform transform.Config
	Debug     bool
}

// DefaultOptions returns the settings of the demo view.
func DefaultOptions() Options {
	return Options{
		Limit:     progress.DefaultLimit,
		Clamp:     progress.ClampSymmetric,
		Transform: transform.DefaultConfig(),
	}
}

// Rect is an axis-aligned rectangle; rotation is applied about its center.
type Rect struct {
	X, Y, W, H float64
}

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// CardFrame is the computed state of one card.
type CardFrame struct {
	Card      deck.Card
	Geometry  progress.Geometry
	Transform transform.Transform
	ZIndex    int
	Focused   bool
	Rect      Rect
}

// Frame is the full carousel state for one scroll position.
type Frame struct {
	Cards     []CardFrame // paint order, lowest z-index first
	Current   int
	Direction zindex.Direction
	ScrollX   float64
	Viewport  Viewport
}

// ScrollFraction returns how far the scroll position is through the deck,
// in [0, 1].
func (f Frame) ScrollFraction() float64 {
	n := len(f.Cards)
	if n <= 1 || !f.Viewport.Usable() {
		return 0
	}
	return clamp01(f.ScrollX / (float64(n-1) * f.Viewport.Width))
}

// Card returns the frame of the card at deck index i.
func (f Frame) Card(i int) (CardFrame, bool) {
	for _, c := range f.Cards {
		if c.Card.Index == i {
			return c, true
		}
	}
	return CardFrame{}, false
}

// Layout computes the frame of d at horizontal scroll offset scrollX.
func Layout(ctx context.Context, d *deck.Deck, vp Viewport, scrollX float64, st scroll.State, opts Options) Frame {
	start := time.Now()
	hooks := observability.Carousel()

	if math.IsNaN(scrollX) || math.IsInf(scrollX, 0) {
		scrollX = 0
	}

	pageWidth := vp.Width
	if !vp.Usable() {
		pageWidth = 1
	}

	n := d.Len()
	frame := Frame{
		Cards:     make([]CardFrame, 0, n),
		Current:   st.CurrentIndex,
		Direction: st.Direction,
		ScrollX:   scrollX,
		Viewport:  vp,
	}

	for _, c := range d.Cards() {
		minX := float64(c.Index)*pageWidth - scrollX
		geom := progress.Geometry{MinX: minX, MaxX: minX + pageWidth, Width: vp.Width}
		p := progress.Calculate(geom, opts.Limit, opts.Clamp)
		t := transform.Apply(p, minX, opts.Transform)
		z := zindex.Rank(c.Index, n, st.CurrentIndex, st.Direction)

		cf := CardFrame{
			Card:      c,
			Geometry:  geom,
			Transform: t,
			ZIndex:    z,
			Focused:   c.Index == st.CurrentIndex,
			Rect:      visualRect(geom, vp, t),
		}
		frame.Cards = append(frame.Cards, cf)

		if opts.Debug {
			hooks.OnCardTransform(ctx, observability.CardEvent{
				Index:    c.Index,
				Progress: p,
				Scale:    t.Scale,
				Rotation: t.Rotation,
				Offset:   t.TotalOffset(),
				ZIndex:   z,
			})
		}
	}

	slices.SortStableFunc(frame.Cards, func(a, b CardFrame) int {
		return a.ZIndex - b.ZIndex
	})

	hooks.OnFrame(ctx, n, st.CurrentIndex, time.Since(start))
	return frame
}

// visualRect insets the page by the padding, scales it about its trailing
// edge (vertically centered) and shifts it by the total offset.
func visualRect(g progress.Geometry, vp Viewport, t transform.Transform) Rect {
	pad, vpad := finite(vp.Padding), finite(vp.VPadding)
	w := math.Max(0, (g.MaxX-g.MinX)-2*pad)
	h := math.Max(0, finite(vp.Height)-2*vpad)
	right := g.MaxX - pad

	sw, sh := w*t.Scale, h*t.Scale
	return Rect{
		X: right - sw + t.TotalOffset(),
		Y: vpad + (h-sh)/2,
		W: sw,
		H: sh,
	}
}

// SnapOffset returns the scroll offset at which card index is snapped.
func SnapOffset(index int, vp Viewport) float64 {
	return float64(index) * vp.Width
}

// NearestIndex returns the card index closest to being snapped at scrollX.
func NearestIndex(scrollX float64, vp Viewport, d *deck.Deck) int {
	if !vp.Usable() || math.IsNaN(scrollX) {
		return d.Clamp(0)
	}
	last := float64(d.Len() - 1)
	return int(math.Max(0, math.Min(last, math.Round(scrollX/vp.Width))))
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
