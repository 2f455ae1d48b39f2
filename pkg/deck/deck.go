package deck

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/matzehuels/stackedcards/pkg/errors"
)

// DefaultColors is the palette of the demo deck.
var DefaultColors = []string{
	"#ff3b30", // red
	"#007aff", // blue
	"#34c759", // green
	"#ffcc00", // yellow
	"#ff2d55", // pink
	"#af52de", // purple
	"#ff9500", // orange
}

// Card is a single carousel card.
type Card struct {
	ID    uuid.UUID
	Color string // "#rrggbb"
	Label string
	Index int // ordinal position in the deck, 0-based
}

// RGB returns the card colour as 8-bit components.
func (c Card) RGB() (r, g, b uint8) {
	r, g, b, _ = ParseColor(c.Color)
	return r, g, b
}

// Deck is an immutable ordered sequence of cards.
type Deck struct {
	cards []Card
}

// New builds a deck with one card per colour, in order.
func New(colors ...string) (*Deck, error) {
	if len(colors) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidDeck, "deck needs at least one card")
	}
	cards := make([]Card, len(colors))
	for i, c := range colors {
		if err := errors.ValidateHexColor(c); err != nil {
			return nil, err
		}
		cards[i] = Card{
			ID:    uuid.New(),
			Color: c,
			Label: fmt.Sprintf("Card %d", i+1),
			Index: i,
		}
	}
	return &Deck{cards: cards}, nil
}

// Default returns the demo deck built from DefaultColors.
func Default() *Deck {
	d, err := New(DefaultColors...)
	if err != nil {
		panic(err) // DefaultColors is static
	}
	return d
}

// Len returns the number of cards.
func (d *Deck) Len() int {
	if d == nil {
		return 0
	}
	return len(d.cards)
}

// Card returns the card at index i. It panics if i is out of range.
func (d *Deck) Card(i int) Card { return d.cards[i] }

// Cards returns a copy of the cards in deck order.
func (d *Deck) Cards() []Card {
	if d == nil {
		return nil
	}
	return append([]Card(nil), d.cards...)
}

// IndexOf returns the index of the card with the given identity.
func (d *Deck) IndexOf(id uuid.UUID) (int, bool) {
	if d == nil {
		return 0, false
	}
	for i, c := range d.cards {
		if c.ID == id {
			return i, true
		}
	}
	return 0, false
}

// Clamp bounds i to a valid card index. An empty deck yields 0.
func (d *Deck) Clamp(i int) int {
	n := d.Len()
	switch {
	case n == 0 || i < 0:
		return 0
	case i >= n:
		return n - 1
	}
	return i
}

// ParseColor decodes a "#rrggbb" colour.
func ParseColor(s string) (r, g, b uint8, err error) {
	if err := errors.ValidateHexColor(s); err != nil {
		return 0, 0, 0, err
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, errors.Wrap(errors.ErrCodeInvalidDeck, err, "parse colour %q", s)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}
