package renderer

import (
	"strings"
	"testing"

	"awaresnake/pkg/engine/input"
	"awaresnake/pkg/game/state"
)

func TestMoodOf(t *testing.T) {
	tests := []struct {
		name string
		snap state.Snapshot
		want Mood
	}{
		{"normal", state.Snapshot{}, MoodNormal},
		{"realized", state.Snapshot{HasRealized: true}, MoodRealized},
		{"escaping", state.Snapshot{HasRealized: true, IsEscaping: true}, MoodEscaping},
		{"paused", state.Snapshot{HasRealized: true, Paused: true}, MoodPaused},
		{"over", state.Snapshot{GameOver: true, Paused: true}, MoodOver},
		{"won", state.Snapshot{GameOver: true, Won: true}, MoodWon},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MoodOf(tt.snap); got != tt.want {
				t.Errorf("MoodOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatusLine(t *testing.T) {
	got := StatusLine(state.Snapshot{Score: 30, EscapeAttempts: 2, GameOver: true})
	for _, want := range []string{"Score: 30", "Attempts: 2", "GAME OVER"} {
		if !strings.Contains(got, want) {
			t.Errorf("StatusLine() = %q, missing %q", got, want)
		}
	}
	if got := StatusLine(state.Snapshot{}); strings.Contains(got, "Attempts") {
		t.Errorf("StatusLine() = %q, want no attempts on a first run", got)
	}
}

func TestLegend(t *testing.T) {
	lines := Legend()
	if len(lines) != len(legendActions) {
		t.Fatalf("len(Legend()) = %d, want %d", len(lines), len(legendActions))
	}
	if !strings.HasPrefix(lines[0], "Move Up: ") || !strings.Contains(lines[0], "arrow_up") {
		t.Errorf("first legend line = %q", lines[0])
	}
	for _, l := range lines {
		if strings.Contains(l, "gamepad_") {
			t.Errorf("legend line %q lists a gamepad code", l)
		}
	}
}

func TestSend(t *testing.T) {
	ch := make(chan input.Intent, 1)
	if Send(ch, input.Intent{Action: input.ActionNone}) {
		t.Error("Send() accepted ActionNone")
	}
	if !Send(ch, input.Intent{Action: input.ActionPause}) {
		t.Error("Send() rejected an intent with room")
	}
	if Send(ch, input.Intent{Action: input.ActionReset}) {
		t.Error("Send() blocked or accepted on a full channel")
	}
	if got := <-ch; got.Action != input.ActionPause {
		t.Errorf("received %v, want pause", got.Action)
	}
}
