package zindex

import (
	"strings"

	"github.com/matzehuels/stackedcards/pkg/errors"
)

// Direction is the horizontal direction of an active drag.
type Direction int

const (
	None  Direction = iota // no drag in progress
	Left                   // finger moving left, toward higher indexes
	Right                  // finger moving right, toward lower indexes
)

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// ParseDirection parses "none", "left" or "right" (case-insensitive).
// Empty means None.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return None, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return None, errors.New(errors.ErrCodeInvalidDirection, "unknown drag direction %q (want none, left or right)", s)
}
