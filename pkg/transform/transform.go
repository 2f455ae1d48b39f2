package transform

import (
	"fmt"
	"math"

	"github.com/matzehuels/stackedcards/pkg/errors"
)

// Defaults for Config.
const (
	DefaultScaleAmount        = 0.1
	DefaultMaxDegrees         = 5.0
	DefaultBackwardMultiplier = 6.0

	// ExcessOffsetRotating and ExcessOffsetFlat are the excess offsets used
	// when Config.ExcessOffset is zero, depending on whether rotation is on.
	ExcessOffsetRotating = 8.0
	ExcessOffsetFlat     = 10.0
)

// PinMode selects which cards get pinned to the viewport edge.
type PinMode int

const (
	// PinPast pins cards that have scrolled past the leading edge (minX < 0).
	PinPast PinMode = iota
	// PinUpcoming pulls cards that are still ahead (minX > 0) back to the
	// leading edge, stacking them underneath the focused card.
	PinUpcoming
	// PinNone disables pinning.
	PinNone
)

// String returns the configuration name of the mode.
func (m PinMode) String() string {
	switch m {
	case PinPast:
		return "past"
	case PinUpcoming:
		return "upcoming"
	case PinNone:
		return "none"
	}
	return fmt.Sprintf("PinMode(%d)", int(m))
}

// ParsePinMode parses "past", "upcoming" or "none". Empty means past.
func ParsePinMode(s string) (PinMode, error) {
	switch s {
	case "", "past":
		return PinPast, nil
	case "upcoming":
		return PinUpcoming, nil
	case "none":
		return PinNone, nil
	}
	return PinPast, errors.New(errors.ErrCodeInvalidInput, "unknown pin mode %q (want past, upcoming or none)", s)
}

// Config holds the per-view transform settings.
type Config struct {
	ScaleAmount        float64
	SymmetricScale     bool
	RotationEnabled    bool
	MaxDegrees         float64
	ExcessOffset       float64 // 0 selects ExcessOffsetRotating/ExcessOffsetFlat
	BackwardMultiplier float64
	Focused            bool
	Pin                PinMode
}

// DefaultConfig returns the settings of the demo view.
func DefaultConfig() Config {
	return Config{
		ScaleAmount:        DefaultScaleAmount,
		SymmetricScale:     true,
		RotationEnabled:    true,
		MaxDegrees:         DefaultMaxDegrees,
		BackwardMultiplier: DefaultBackwardMultiplier,
		Pin:                PinPast,
	}
}

// BaseExcess returns the excess offset in effect.
func (c Config) BaseExcess() float64 {
	if c.ExcessOffset != 0 {
		return c.ExcessOffset
	}
	if c.RotationEnabled {
		return ExcessOffsetRotating
	}
	return ExcessOffsetFlat
}

// Transform is the visual state of one card.
type Transform struct {
	Progress float64
	Scale    float64
	Rotation float64 // degrees
	Offset   float64 // pin offset, after edge gain
	Excess   float64
}

// TotalOffset returns the horizontal shift applied to the card.
func (t Transform) TotalOffset() float64 { return t.Offset + t.Excess }

// Identity is the transform of a snapped card at the origin.
var Identity = Transform{Scale: 1}

// Apply derives the full transform for a card with progress p whose frame
// starts at minX.
func Apply(p, minX float64, cfg Config) Transform {
	return Transform{
		Progress: p,
		Scale:    Scale(p, cfg.ScaleAmount, cfg.SymmetricScale),
		Rotation: Rotation(p, cfg.MaxDegrees, cfg.RotationEnabled),
		Offset:   HorizontalOffset(p, minX, cfg.Pin, cfg.Focused),
		Excess:   Excess(p, cfg.BaseExcess(), cfg.BackwardMultiplier),
	}
}

// Scale returns 1 - |p|*amount, or 1 - p*amount when symmetric is false.
// The result is never negative: progress that is unbounded below (ClampUpper)
// shrinks a card to nothing rather than mirroring it.
func Scale(p, amount float64, symmetric bool) float64 {
	if symmetric {
		return math.Max(0, 1-math.Abs(p)*amount)
	}
	return math.Max(0, 1-p*amount)
}

// Rotation returns p*maxDegrees, or 0 when disabled.
func Rotation(p, maxDegrees float64, enabled bool) float64 {
	if !enabled {
		return 0
	}
	return p * maxDegrees
}

// PinOffset returns the shift that keeps a card at the leading edge.
func PinOffset(minX float64, mode PinMode) float64 {
	switch mode {
	case PinPast:
		if minX < 0 {
			return -minX
		}
	case PinUpcoming:
		if minX > 0 {
			return -minX
		}
	}
	return 0
}

// EdgeGain returns 0 when |p| > 1 and 4*(|p|-0.5)^2 otherwise.
func EdgeGain(p float64) float64 {
	a := math.Abs(p)
	if a > 1 {
		return 0
	}
	d := a - 0.5
	return 4 * d * d
}

// HorizontalOffset returns the pin offset, dampened by EdgeGain when focused.
func HorizontalOffset(p, minX float64, mode PinMode, focused bool) float64 {
	off := PinOffset(minX, mode)
	if focused {
		off *= EdgeGain(p)
	}
	return off
}

// Excess returns p*base for p >= 0 and p*base*backwardMultiplier otherwise.
func Excess(p, base, backwardMultiplier float64) float64 {
	if p >= 0 {
		return p * base
	}
	return p * base * backwardMultiplier
}
