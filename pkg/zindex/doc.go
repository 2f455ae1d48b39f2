// Package zindex ranks overlapping cards for drawing.
//
// While the carousel scrolls, neighbouring cards overlap. [Rank] assigns each
// card an integer; cards are painted in ascending rank so that higher ranks
// end up on top. The policy is:
//
//   - The focused card (index == current) ranks deckSize*3, above everything.
//   - Cards ahead of the focused one rank deckSize*2 - index, so nearer cards
//     cover farther ones.
//   - Cards behind the focused one rank by their raw index.
//
// While the user drags right (back toward lower indexes) the two sides swap
// layers: cards behind get deckSize + index and cards ahead get
// deckSize - index. The card being scrolled toward therefore layers above the
// card being scrolled away from.
//
// Every card in a deck has a unique index, so ranks never tie, and the
// focused rank is strictly greater than any other rank for every deck size.
package zindex
