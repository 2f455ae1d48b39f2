// Package scroll tracks the paging state of the carousel.
//
// [State] is mutated only by drag-gesture callbacks and read synchronously by
// the render pass, both on the UI event loop, so it carries no locking.
package scroll

import (
	"math"

	"github.com/google/uuid"

	"github.com/matzehuels/stackedcards/pkg/deck"
	"github.com/matzehuels/stackedcards/pkg/zindex"
)

// SnapThreshold is the fraction of a page a drag must travel to turn the page.
const SnapThreshold = 0.25

// Phase is the phase of a drag gesture.
type Phase int

const (
	Changed Phase = iota
	Ended
)

// String returns the lower-case name of the phase.
func (p Phase) String() string {
	if p == Ended {
		return "ended"
	}
	return "changed"
}

// Drag is a drag-gesture event. Translation is measured from where the drag
// started.
type Drag struct {
	TranslationX float64
	TranslationY float64
	Phase        Phase
}

// State is the scroll state of the carousel.
type State struct {
	ScrolledID   *uuid.UUID // currently snapped card, nil before the first snap
	CurrentIndex int        // last committed index
	Direction    zindex.Direction
}

// NewState returns a state focused on the first card of d.
func NewState(d *deck.Deck) State {
	var s State
	if d.Len() > 0 {
		s.commit(d, 0)
	}
	return s
}

// HandleDrag applies a drag event. A Changed event records the drag
// direction. An Ended event commits the page the drag settles on and resets
// the direction. It reports whether the committed index changed.
func (s *State) HandleDrag(d Drag, dk *deck.Deck, pageWidth float64) bool {
	switch d.Phase {
	case Changed:
		switch {
		case d.TranslationX < 0:
			s.Direction = zindex.Left
		case d.TranslationX > 0:
			s.Direction = zindex.Right
		}
		return false
	case Ended:
		defer func() { s.Direction = zindex.None }()
		return s.commit(dk, s.CurrentIndex+PageDelta(d.TranslationX, pageWidth))
	}
	return false
}

// PageDelta returns -1, 0 or +1: the number of pages a horizontal drag of
// translationX turns. Dragging left turns to the next page.
func PageDelta(translationX, pageWidth float64) int {
	if pageWidth <= 0 || math.IsNaN(pageWidth) || math.IsNaN(translationX) {
		return 0
	}
	if math.Abs(translationX) < pageWidth*SnapThreshold {
		return 0
	}
	if translationX < 0 {
		return 1
	}
	return -1
}

// SetScrolled commits the card with the given identity as the snapped card.
// Unknown identities are ignored.
func (s *State) SetScrolled(id uuid.UUID, dk *deck.Deck) bool {
	idx, ok := dk.IndexOf(id)
	if !ok {
		return false
	}
	return s.commit(dk, idx)
}

// Step moves the committed index by delta pages, as keyboard paging does.
func (s *State) Step(delta int, dk *deck.Deck) bool {
	return s.commit(dk, s.CurrentIndex+delta)
}

// Reset clears the drag direction without committing, for cancelled drags.
func (s *State) Reset() { s.Direction = zindex.None }

func (s *State) commit(dk *deck.Deck, idx int) bool {
	if dk.Len() == 0 {
		return false
	}
	idx = dk.Clamp(idx)
	changed := idx != s.CurrentIndex || s.ScrolledID == nil
	s.CurrentIndex = idx
	id := dk.Card(idx).ID
	s.ScrolledID = &id
	return changed
}
