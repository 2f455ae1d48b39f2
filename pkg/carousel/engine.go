package carousel

import (
	"context"

	"github.com/matzehuels/stackedcards/pkg/deck"
	"github.com/matzehuels/stackedcards/pkg/scroll"
)

// Engine computes successive frames for one deck and remembers the last
// good frame. A new frame supersedes the previous one; nothing is queued.
type Engine struct {
	deck *deck.Deck
	opts Options
	last *Frame
}

// NewEngine creates an engine for d.
func NewEngine(d *deck.Deck, opts Options) *Engine {
	return &Engine{deck: d, opts: opts}
}

// Deck returns the engine's deck.
func (e *Engine) Deck() *deck.Deck { return e.deck }

// Options returns the options in effect.
func (e *Engine) Options() Options { return e.opts }

// SetOptions replaces the options, e.g. when the user toggles rotation.
func (e *Engine) SetOptions(opts Options) { e.opts = opts }

// Frame lays out the deck. If vp cannot be laid out and a previous frame
// exists, the previous frame is returned unchanged.
func (e *Engine) Frame(ctx context.Context, vp Viewport, scrollX float64, st scroll.State) Frame {
	if !vp.Usable() && e.last != nil {
		return *e.last
	}
	f := Layout(ctx, e.deck, vp, scrollX, st, e.opts)
	if vp.Usable() {
		e.last = &f
	}
	return f
}

// Last returns the most recent usable frame.
func (e *Engine) Last() (Frame, bool) {
	if e.last == nil {
		return Frame{}, false
	}
	return *e.last, true
}
