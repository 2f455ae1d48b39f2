// Package deck defines the cards shown by the carousel.
//
// A [Deck] is a fixed, ordered sequence of [Card] values. Each card has a
// stable random identity (a UUID), a fill colour and its 0-based ordinal
// position. Cards and decks are immutable once created: the carousel never
// inserts, removes or reorders cards while it is running, so a card's index
// can be used directly by the z-index policy in package zindex.
//
// # Usage
//
//	d, err := deck.New("#ff3b30", "#007aff", "#34c759")
//	if err != nil {
//	    return err
//	}
//	for _, c := range d.Cards() {
//	    fmt.Println(c.Index, c.Color)
//	}
//
// [Default] returns the seven-card demo deck.
package deck
