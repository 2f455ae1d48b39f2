package progress

import (
	"fmt"
	"math"

	"github.com/matzehuels/stackedcards/pkg/errors"
)

// DefaultLimit bounds progress to [-2, 2].
const DefaultLimit = 2.0

// ClampMode selects how the raw progress is bounded.
type ClampMode int

const (
	// ClampSymmetric bounds progress to [-limit, limit].
	ClampSymmetric ClampMode = iota
	// ClampUpper only caps progress at +limit.
	ClampUpper
)

// String returns the configuration name of the mode.
func (m ClampMode) String() string {
	switch m {
	case ClampSymmetric:
		return "symmetric"
	case ClampUpper:
		return "upper"
	}
	return fmt.Sprintf("ClampMode(%d)", int(m))
}

// ParseClampMode parses "symmetric" or "upper". Empty means symmetric.
func ParseClampMode(s string) (ClampMode, error) {
	switch s {
	case "", "symmetric":
		return ClampSymmetric, nil
	case "upper":
		return ClampUpper, nil
	}
	return ClampSymmetric, errors.New(errors.ErrCodeInvalidInput, "unknown clamp mode %q (want symmetric or upper)", s)
}

// Geometry is a card's frame within the horizontal scroll container.
type Geometry struct {
	MinX  float64
	MaxX  float64
	Width float64 // container width
}

// SafeWidth returns the container width, or 1 when it is unusable.
func (g Geometry) SafeWidth() float64 {
	if g.Width <= 0 || math.IsNaN(g.Width) || math.IsInf(g.Width, 0) {
		return 1
	}
	return g.Width
}

// Raw returns the unclamped progress. It is NaN-free but may be infinite
// when MaxX is infinite.
func Raw(g Geometry) float64 {
	p := g.MaxX/g.SafeWidth() - 1.0
	if math.IsNaN(p) {
		return 0
	}
	return p
}

// Calculate returns the clamped progress of a card.
func Calculate(g Geometry, limit float64, mode ClampMode) float64 {
	return Clamp(Raw(g), limit, mode)
}

// Clamp bounds p according to mode. A non-positive or NaN limit falls back
// to DefaultLimit.
func Clamp(p, limit float64, mode ClampMode) float64 {
	if !(limit > 0) || math.IsInf(limit, 0) {
		limit = DefaultLimit
	}
	if math.IsNaN(p) {
		return 0
	}
	if mode == ClampUpper {
		// The lower side is open, but -Inf must not escape.
		return max(min(p, limit), -math.MaxFloat64)
	}
	return max(min(p, limit), -limit)
}
