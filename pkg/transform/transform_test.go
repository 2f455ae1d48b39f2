package transform

import (
	"math"
	"testing"

	"github.com/matzehuels/stackedcards/pkg/errors"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < eps }

func TestScale(t *testing.T) {
	tests := []struct {
		name      string
		p         float64
		symmetric bool
		want      float64
	}{
		{"centered", 0, true, 1},
		{"half ahead", 0.5, true, 0.95},
		{"half behind symmetric", -0.5, true, 0.95},
		{"half behind signed", -0.5, false, 1.05},
		{"limit", 2, true, 0.8},
		{"far behind floors at zero", -12, true, 0},
		{"far ahead signed floors at zero", 12, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Scale(tt.p, 0.1, tt.symmetric); !approx(got, tt.want) {
				t.Errorf("Scale(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestScaleRange(t *testing.T) {
	const amount = 0.1
	for p := -0.999; p < 1; p += 0.001 {
		s := Scale(p, amount, true)
		if s <= 1-amount || s > 1 {
			t.Fatalf("Scale(%v) = %v, want in (%v, 1]", p, s, 1-amount)
		}
	}
}

func TestRotation(t *testing.T) {
	if got := Rotation(0.5, 5, true); !approx(got, 2.5) {
		t.Errorf("Rotation(0.5) = %v, want 2.5", got)
	}
	if got := Rotation(-2, 5, true); !approx(got, -10) {
		t.Errorf("Rotation(-2) = %v, want -10", got)
	}
	if got := Rotation(0.5, 5, false); got != 0 {
		t.Errorf("Rotation disabled = %v, want 0", got)
	}
}

func TestPinOffset(t *testing.T) {
	tests := []struct {
		minX float64
		mode PinMode
		want float64
	}{
		{-120, PinPast, 120},
		{0, PinPast, 0},
		{80, PinPast, 0},
		{-120, PinUpcoming, 0},
		{80, PinUpcoming, -80},
		{-120, PinNone, 0},
		{80, PinNone, 0},
	}
	for _, tt := range tests {
		if got := PinOffset(tt.minX, tt.mode); got != tt.want {
			t.Errorf("PinOffset(%v, %v) = %v, want %v", tt.minX, tt.mode, got, tt.want)
		}
	}
}

func TestEdgeGain(t *testing.T) {
	tests := []struct {
		p, want float64
	}{
		{0, 1},
		{0.5, 0},
		{-0.5, 0},
		{1, 1},
		{-1, 1},
		{0.25, 0.25},
		{1.01, 0},
		{-2, 0},
	}
	for _, tt := range tests {
		if got := EdgeGain(tt.p); !approx(got, tt.want) {
			t.Errorf("EdgeGain(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestHorizontalOffsetFocused(t *testing.T) {
	// Progress 0.25 → gain 0.25.
	if got := HorizontalOffset(0.25, -100, PinPast, true); !approx(got, 25) {
		t.Errorf("focused offset = %v, want 25", got)
	}
	if got := HorizontalOffset(0.25, -100, PinPast, false); !approx(got, 100) {
		t.Errorf("unfocused offset = %v, want 100", got)
	}
	if got := HorizontalOffset(1.5, -100, PinPast, true); got != 0 {
		t.Errorf("focused offset beyond edge = %v, want 0", got)
	}
}

func TestExcess(t *testing.T) {
	tests := []struct {
		p, base, mult, want float64
	}{
		{0, 8, 6, 0},
		{0.5, 8, 6, 4},
		{2, 10, 6, 20},
		{-0.5, 8, 6, -24},
		{-0.5, 8, 1, -4},
	}
	for _, tt := range tests {
		if got := Excess(tt.p, tt.base, tt.mult); !approx(got, tt.want) {
			t.Errorf("Excess(%v, %v, %v) = %v, want %v", tt.p, tt.base, tt.mult, got, tt.want)
		}
	}
}

func TestBaseExcess(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.BaseExcess(); got != ExcessOffsetRotating {
		t.Errorf("rotating BaseExcess = %v, want %v", got, ExcessOffsetRotating)
	}
	cfg.RotationEnabled = false
	if got := cfg.BaseExcess(); got != ExcessOffsetFlat {
		t.Errorf("flat BaseExcess = %v, want %v", got, ExcessOffsetFlat)
	}
	cfg.ExcessOffset = 3
	if got := cfg.BaseExcess(); got != 3 {
		t.Errorf("explicit BaseExcess = %v, want 3", got)
	}
}

func TestApplyNeutral(t *testing.T) {
	for _, focused := range []bool{false, true} {
		cfg := DefaultConfig()
		cfg.Focused = focused
		got := Apply(0, 0, cfg)
		if got.Scale != 1 || got.Rotation != 0 || got.TotalOffset() != 0 {
			t.Errorf("Apply(0, 0, focused=%v) = %+v, want identity", focused, got)
		}
	}
}

func TestApplyHalfPage(t *testing.T) {
	got := Apply(0.5, 150, DefaultConfig())
	if !approx(got.Scale, 0.95) {
		t.Errorf("Scale = %v, want 0.95", got.Scale)
	}
	if !approx(got.Rotation, 2.5) {
		t.Errorf("Rotation = %v, want 2.5", got.Rotation)
	}
	if got.Offset != 0 {
		t.Errorf("Offset = %v, want 0", got.Offset)
	}
	if !approx(got.Excess, 4) {
		t.Errorf("Excess = %v, want 4", got.Excess)
	}
}

func TestParsePinMode(t *testing.T) {
	for _, m := range []PinMode{PinPast, PinUpcoming, PinNone} {
		got, err := ParsePinMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParsePinMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParsePinMode("sideways"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ParsePinMode(sideways) error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}
