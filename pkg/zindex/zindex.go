package zindex

import (
	"cmp"
	"slices"
)

// Rank returns the draw rank of the card at index in a deck of deckSize cards
// while current is focused and the user drags in dir. Higher is drawn on top.
func Rank(index, deckSize, current int, dir Direction) int {
	switch {
	case index == current:
		return deckSize * 3
	case index > current:
		if dir == Right {
			return deckSize - index
		}
		return deckSize*2 - index
	default:
		if dir == Right {
			return index + deckSize
		}
		return index
	}
}

// DrawOrder returns all card indexes in paint order (ascending rank).
func DrawOrder(deckSize, current int, dir Direction) []int {
	order := make([]int, deckSize)
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		return cmp.Compare(Rank(a, deckSize, current, dir), Rank(b, deckSize, current, dir))
	})
	return order
}
