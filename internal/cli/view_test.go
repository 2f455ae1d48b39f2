package cli

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/stackedcards/pkg/carousel"
	"github.com/matzehuels/stackedcards/pkg/config"
	"github.com/matzehuels/stackedcards/pkg/deck"
	"github.com/matzehuels/stackedcards/pkg/zindex"
)

func newTestViewModel(t *testing.T) *viewModel {
	t.Helper()
	cfg := config.Default()
	m := newViewModel(context.Background(), deck.Default(), cfg.CarouselOptions(), cfg.Viewport(), false)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// settle runs the snap animation to completion.
func settle(t *testing.T, m *viewModel) {
	t.Helper()
	for i := 0; m.animating; i++ {
		if i > 10*fps {
			t.Fatal("snap animation did not settle")
		}
		m.Update(frameMsg{gen: m.tickGen})
	}
}

func TestViewModelResize(t *testing.T) {
	m := newTestViewModel(t)
	if m.cols != 80 || m.rows != 24-chromeRows {
		t.Errorf("size = %dx%d, want 80x%d", m.cols, m.rows, 24-chromeRows)
	}
	vp := m.viewport()
	if vp.Height != float64(m.rows)*cellAspect {
		t.Errorf("viewport height = %v, want %v", vp.Height, float64(m.rows)*cellAspect)
	}
	// 88 of 390 points of padding scaled to 80 columns.
	if want := 88.0 * 80 / 390; vp.Padding != want {
		t.Errorf("viewport padding = %v, want %v", vp.Padding, want)
	}
}

func TestViewModelKeyPaging(t *testing.T) {
	m := newTestViewModel(t)

	_, cmd := m.Update(keyMsg("right"))
	if cmd == nil {
		t.Fatal("paging should start the snap animation")
	}
	if m.state.CurrentIndex != 1 {
		t.Fatalf("CurrentIndex = %d, want 1", m.state.CurrentIndex)
	}
	settle(t, m)
	if m.scrollX != 80 {
		t.Errorf("scrollX = %v, want 80", m.scrollX)
	}

	m.Update(keyMsg("h"))
	settle(t, m)
	if m.state.CurrentIndex != 0 || m.scrollX != 0 {
		t.Errorf("after h: index %d scroll %v, want 0 0", m.state.CurrentIndex, m.scrollX)
	}

	// Paging stops at the ends.
	m.Update(keyMsg("left"))
	if m.state.CurrentIndex != 0 {
		t.Errorf("CurrentIndex = %d, want 0", m.state.CurrentIndex)
	}
	m.Update(keyMsg("G"))
	settle(t, m)
	if m.state.CurrentIndex != 6 {
		t.Errorf("after G: CurrentIndex = %d, want 6", m.state.CurrentIndex)
	}
	m.Update(keyMsg("l"))
	if m.state.CurrentIndex != 6 {
		t.Errorf("CurrentIndex = %d, want 6", m.state.CurrentIndex)
	}
}

func TestViewModelToggles(t *testing.T) {
	m := newTestViewModel(t)

	m.Update(keyMsg("r"))
	if m.engine.Options().Transform.RotationEnabled {
		t.Error("r should disable rotation")
	}
	m.Update(keyMsg("f"))
	if !m.engine.Options().Transform.Focused {
		t.Error("f should enable focused edge gain")
	}
	m.Update(keyMsg("i"))
	if !m.showIndicator {
		t.Error("i should show the indicator")
	}
	if !strings.Contains(m.View(), "rotation off") {
		t.Error("header should report rotation off")
	}
}

func TestViewModelQuit(t *testing.T) {
	m := newTestViewModel(t)
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestViewModelDrag(t *testing.T) {
	tests := []struct {
		name      string
		releaseX  int
		wantIndex int
	}{
		{"short drag snaps back", 35, 0},
		{"left drag turns to next card", 10, 1},
		{"right drag at first card stays", 70, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestViewModel(t)

			m.Update(tea.MouseMsg{X: 40, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
			if !m.dragging {
				t.Fatal("press should start a drag")
			}

			m.Update(tea.MouseMsg{X: tt.releaseX, Y: 10, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
			wantDir := zindex.Left
			if tt.releaseX > 40 {
				wantDir = zindex.Right
			}
			if m.state.Direction != wantDir {
				t.Errorf("Direction during drag = %v, want %v", m.state.Direction, wantDir)
			}
			if want := m.clampScroll(float64(40 - tt.releaseX)); m.scrollX != want {
				t.Errorf("scrollX during drag = %v, want %v", m.scrollX, want)
			}

			m.Update(tea.MouseMsg{X: tt.releaseX, Y: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
			if m.dragging {
				t.Error("release should end the drag")
			}
			if m.state.Direction != zindex.None {
				t.Errorf("Direction after release = %v, want none", m.state.Direction)
			}
			if m.state.CurrentIndex != tt.wantIndex {
				t.Errorf("CurrentIndex = %d, want %d", m.state.CurrentIndex, tt.wantIndex)
			}
			settle(t, m)
			if want := carousel.SnapOffset(tt.wantIndex, m.viewport()); m.scrollX != want {
				t.Errorf("scrollX after snap = %v, want %v", m.scrollX, want)
			}
		})
	}
}

func TestViewModelWheel(t *testing.T) {
	m := newTestViewModel(t)
	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelRight})
	if m.state.CurrentIndex != 1 {
		t.Errorf("CurrentIndex = %d, want 1", m.state.CurrentIndex)
	}
}

func TestViewModelInterruptedSnapDropsStaleFrames(t *testing.T) {
	m := newTestViewModel(t)
	m.Update(keyMsg("right"))
	stale := m.tickGen

	// Grab the card mid-snap and let go without moving.
	m.Update(tea.MouseMsg{X: 40, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: 40, Y: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if !m.animating || m.tickGen == stale {
		t.Fatalf("release should restart the snap: animating %v gen %d (was %d)", m.animating, m.tickGen, stale)
	}

	before := m.scrollX
	if _, cmd := m.Update(frameMsg{gen: stale}); cmd != nil || m.scrollX != before {
		t.Errorf("stale frame advanced the spring: scroll %v -> %v, cmd %v", before, m.scrollX, cmd != nil)
	}
	if _, cmd := m.Update(frameMsg{gen: m.tickGen}); cmd == nil || m.scrollX == before {
		t.Errorf("current frame did not advance the spring: scroll %v -> %v", before, m.scrollX)
	}
}

func TestViewModelJump(t *testing.T) {
	m := newTestViewModel(t)
	m.jump(3)
	if m.state.CurrentIndex != 3 || m.scrollX != 240 || m.animating {
		t.Errorf("jump(3): index %d scroll %v animating %v", m.state.CurrentIndex, m.scrollX, m.animating)
	}
	m.jump(99)
	if m.state.CurrentIndex != 6 {
		t.Errorf("jump(99): index %d, want 6", m.state.CurrentIndex)
	}
}

func TestViewModelView(t *testing.T) {
	cfg := config.Default()
	m := newViewModel(context.Background(), deck.Default(), cfg.CarouselOptions(), cfg.Viewport(), true)
	if !strings.Contains(m.View(), "starting") {
		t.Error("view before the first resize should show a placeholder")
	}

	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	out := m.View()
	if got := strings.Count(out, "\n"); got != 20-1 {
		t.Errorf("view lines = %d, want %d", got+1, 20)
	}
	for _, want := range []string{"Stacked Cards", "1/7", "Card 1", "━"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
