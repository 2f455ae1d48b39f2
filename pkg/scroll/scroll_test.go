package scroll

import (
	"testing"

	"github.com/google/uuid"

	"github.com/matzehuels/stackedcards/pkg/deck"
	"github.com/matzehuels/stackedcards/pkg/zindex"
)

func TestNewState(t *testing.T) {
	d := deck.Default()
	s := NewState(d)
	if s.CurrentIndex != 0 || s.Direction != zindex.None {
		t.Fatalf("NewState() = %+v", s)
	}
	if s.ScrolledID == nil || *s.ScrolledID != d.Card(0).ID {
		t.Error("NewState() should snap to the first card")
	}
}

func TestHandleDragChangedSetsDirection(t *testing.T) {
	d := deck.Default()
	s := NewState(d)

	tests := []struct {
		tx   float64
		want zindex.Direction
	}{
		{-10, zindex.Left},
		{0, zindex.Left}, // unchanged
		{25, zindex.Right},
	}
	for _, tt := range tests {
		if changed := s.HandleDrag(Drag{TranslationX: tt.tx, Phase: Changed}, d, 300); changed {
			t.Errorf("Changed event should never commit")
		}
		if s.Direction != tt.want {
			t.Errorf("after tx=%v Direction = %v, want %v", tt.tx, s.Direction, tt.want)
		}
	}
	if s.CurrentIndex != 0 {
		t.Errorf("CurrentIndex = %d, want 0", s.CurrentIndex)
	}
}

func TestHandleDragEnded(t *testing.T) {
	tests := []struct {
		name        string
		start       int
		tx          float64
		wantIndex   int
		wantChanged bool
	}{
		{"next page", 2, -150, 3, true},
		{"previous page", 2, 150, 1, true},
		{"short drag stays", 2, -40, 2, false},
		{"first card clamps", 0, 200, 0, false},
		{"last card clamps", 6, -200, 6, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := deck.Default()
			s := NewState(d)
			s.Step(tt.start, d)
			s.HandleDrag(Drag{TranslationX: tt.tx, Phase: Changed}, d, 300)

			changed := s.HandleDrag(Drag{TranslationX: tt.tx, Phase: Ended}, d, 300)
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
			if s.CurrentIndex != tt.wantIndex {
				t.Errorf("CurrentIndex = %d, want %d", s.CurrentIndex, tt.wantIndex)
			}
			if s.Direction != zindex.None {
				t.Errorf("Direction = %v, want none after drag end", s.Direction)
			}
			if *s.ScrolledID != d.Card(tt.wantIndex).ID {
				t.Error("ScrolledID should match the committed card")
			}
		})
	}
}

func TestPageDelta(t *testing.T) {
	tests := []struct {
		tx, width float64
		want      int
	}{
		{-75, 300, 1},
		{-74, 300, 0},
		{75, 300, -1},
		{10, 0, 0},
		{-500, -1, 0},
	}
	for _, tt := range tests {
		if got := PageDelta(tt.tx, tt.width); got != tt.want {
			t.Errorf("PageDelta(%v, %v) = %d, want %d", tt.tx, tt.width, got, tt.want)
		}
	}
}

func TestSetScrolled(t *testing.T) {
	d := deck.Default()
	s := NewState(d)

	if !s.SetScrolled(d.Card(5).ID, d) {
		t.Error("SetScrolled should report a change")
	}
	if s.CurrentIndex != 5 {
		t.Errorf("CurrentIndex = %d, want 5", s.CurrentIndex)
	}
	if s.SetScrolled(uuid.New(), d) {
		t.Error("SetScrolled(unknown) should be ignored")
	}
	if s.CurrentIndex != 5 {
		t.Errorf("CurrentIndex = %d after unknown id, want 5", s.CurrentIndex)
	}
}

func TestReset(t *testing.T) {
	d := deck.Default()
	s := NewState(d)
	s.HandleDrag(Drag{TranslationX: -5, Phase: Changed}, d, 300)
	s.Reset()
	if s.Direction != zindex.None {
		t.Errorf("Direction = %v after Reset", s.Direction)
	}
}
