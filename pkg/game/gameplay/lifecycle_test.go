package gameplay

import (
	"reflect"
	"slices"
	"testing"
	"time"

	"awaresnake/pkg/engine/world"
	"awaresnake/pkg/game/content"
)

func TestTogglePause_TwiceRestoresState(t *testing.T) {
	m, clk := newTestMachine(t, nil)
	m.Step()
	before := m.Snapshot()

	if !m.TogglePause() {
		t.Fatal("TogglePause() = false, want paused")
	}
	if !m.State().Paused {
		t.Fatal("Paused = false after first toggle")
	}
	clk.Advance(5 * time.Second)
	if m.TogglePause() {
		t.Fatal("TogglePause() = true, want resumed")
	}

	after := m.Snapshot()
	if !reflect.DeepEqual(before, after) {
		t.Errorf("snapshot changed across pause/resume:\n before %+v\n after  %+v", before, after)
	}
	if got := m.Now(); !got.Equal(time.Unix(1_700_000_000, 0)) {
		t.Errorf("game time = %v, want frozen at start", got)
	}
}

func TestTogglePause_RealizedThought(t *testing.T) {
	m, _ := newTestMachine(t, nil)
	m.State().HasRealized = true
	m.TogglePause()
	if texts := m.State().Messages.Texts(); !slices.Equal(texts, []string{content.PauseThought}) {
		t.Errorf("Messages = %v, want the pause thought", texts)
	}
}

func TestReset(t *testing.T) {
	m, _ := newTestMachine(t, nil)
	g := m.State()
	g.Score = 70
	g.HasRealized = true
	g.EscapeAttempts = 2
	g.Snake = []world.Position{pos(3, 3), pos(3, 4)}
	g.Direction = world.Up
	m.startEscape()
	m.TogglePause()

	m.Reset()

	g = m.State()
	if g.EscapeAttempts != 3 || !g.HasRealized {
		t.Errorf("EscapeAttempts = %d HasRealized = %v, want 3 true", g.EscapeAttempts, g.HasRealized)
	}
	if !slices.Equal(g.Snake, []world.Position{pos(10, 10)}) || g.Food != pos(15, 15) {
		t.Errorf("Snake = %v Food = %v, want initial layout", g.Snake, g.Food)
	}
	if g.Direction != world.Right || g.Score != 0 || g.Paused || g.IsEscaping || g.GameOver || g.Won {
		t.Errorf("state not reset: %+v", m.Snapshot())
	}
	if !g.EscapeStartedAt.IsZero() {
		t.Errorf("EscapeStartedAt = %v, want zero", g.EscapeStartedAt)
	}
	if texts := g.Messages.Texts(); !slices.Equal(texts, []string{content.Taunt}) {
		t.Errorf("Messages = %v, want the taunt", texts)
	}
}

func TestReset_FirstAttemptIsQuiet(t *testing.T) {
	m, _ := newTestMachine(t, nil)
	m.Reset()
	g := m.State()
	if g.EscapeAttempts != 1 {
		t.Errorf("EscapeAttempts = %d, want 1", g.EscapeAttempts)
	}
	if n := g.Messages.Len(); n != 0 {
		t.Errorf("Messages = %v, want none", g.Messages.Texts())
	}
}

func TestReset_UnpausesClock(t *testing.T) {
	m, clk := newTestMachine(t, nil)
	m.TogglePause()
	clk.Advance(time.Second)
	m.Reset()
	start := m.Now()
	clk.Advance(time.Second)
	if got := m.Now().Sub(start); got != time.Second {
		t.Errorf("game time advanced %v after reset, want 1s", got)
	}
}
