package deck

import (
	"testing"

	"github.com/google/uuid"

	"github.com/matzehuels/stackedcards/pkg/errors"
)

func TestNew(t *testing.T) {
	d, err := New("#ff0000", "#00ff00", "#0000ff")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if d.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", d.Len())
	}

	seen := make(map[uuid.UUID]bool)
	for i, c := range d.Cards() {
		if c.Index != i {
			t.Errorf("card %d Index = %d", i, c.Index)
		}
		if seen[c.ID] {
			t.Errorf("card %d has duplicate ID %s", i, c.ID)
		}
		seen[c.ID] = true
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name   string
		colors []string
	}{
		{"empty", nil},
		{"bad colour", []string{"#ff0000", "red"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.colors...)
			if err == nil {
				t.Fatal("New() expected error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidDeck) {
				t.Errorf("New() code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidDeck)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	d := Default()
	if d.Len() != len(DefaultColors) {
		t.Errorf("Len() = %d, want %d", d.Len(), len(DefaultColors))
	}
}

func TestIndexOf(t *testing.T) {
	d := Default()
	c := d.Card(4)

	idx, ok := d.IndexOf(c.ID)
	if !ok || idx != 4 {
		t.Errorf("IndexOf() = %d, %v, want 4, true", idx, ok)
	}

	if _, ok := d.IndexOf(uuid.New()); ok {
		t.Error("IndexOf(unknown) should not be found")
	}
}

func TestCardsReturnsCopy(t *testing.T) {
	d := Default()
	cards := d.Cards()
	cards[0].Color = "#000000"

	if d.Card(0).Color == "#000000" {
		t.Error("Cards() should return a copy")
	}
}

func TestClamp(t *testing.T) {
	d := Default()
	tests := []struct{ in, want int }{
		{-3, 0},
		{0, 0},
		{3, 3},
		{6, 6},
		{7, 6},
		{100, 6},
	}
	for _, tt := range tests {
		if got := d.Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}

	var empty *Deck
	if got := empty.Clamp(5); got != 0 {
		t.Errorf("nil deck Clamp(5) = %d, want 0", got)
	}
}

func TestParseColor(t *testing.T) {
	r, g, b, err := ParseColor("#ff9500")
	if err != nil {
		t.Fatalf("ParseColor() error = %v", err)
	}
	if r != 0xff || g != 0x95 || b != 0x00 {
		t.Errorf("ParseColor() = %d,%d,%d", r, g, b)
	}

	if _, _, _, err := ParseColor("#zzzzzz"); err == nil {
		t.Error("ParseColor(#zzzzzz) expected error")
	}
}
