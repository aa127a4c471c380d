// Package renderer holds the Renderer interface and the presentation helpers
// every front end shares.
package renderer

import (
	"fmt"
	"sort"
	"strings"

	"awaresnake/pkg/engine/input"
	"awaresnake/pkg/game/state"
)

// Icons used by the text front ends
const (
	IconHead  = "@"
	IconBody  = "o"
	IconFood  = "*"
	IconEmpty = "·"
)

// Mood is the overall visual state of a frame. Front ends pick palettes by it.
type Mood int

const (
	MoodNormal Mood = iota
	MoodRealized
	MoodEscaping
	MoodPaused
	MoodOver
	MoodWon
)

// MoodOf classifies a snapshot, most urgent state first
func MoodOf(snap state.Snapshot) Mood {
	switch {
	case snap.Won:
		return MoodWon
	case snap.GameOver:
		return MoodOver
	case snap.Paused:
		return MoodPaused
	case snap.IsEscaping:
		return MoodEscaping
	case snap.HasRealized:
		return MoodRealized
	default:
		return MoodNormal
	}
}

// Icon returns the text glyph for a cell kind
func Icon(k state.CellKind) string {
	switch k {
	case state.CellHead:
		return IconHead
	case state.CellBody:
		return IconBody
	case state.CellFood:
		return IconFood
	default:
		return IconEmpty
	}
}

// StatusLine summarises score, attempts and mode in one line
func StatusLine(snap state.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Score: %d  Length: %d", snap.Score, len(snap.Snake))
	if snap.EscapeAttempts > 0 {
		fmt.Fprintf(&b, "  Attempts: %d", snap.EscapeAttempts)
	}
	switch MoodOf(snap) {
	case MoodWon:
		b.WriteString("  [BOARD FULL]")
	case MoodOver:
		b.WriteString("  [GAME OVER]")
	case MoodPaused:
		b.WriteString("  [PAUSED]")
	case MoodEscaping:
		b.WriteString("  [ESCAPING]")
	case MoodRealized:
		b.WriteString("  [AWARE]")
	}
	return b.String()
}

// legendActions lists the actions shown in help text, in display order
var legendActions = []input.Action{
	input.ActionMoveUp,
	input.ActionMoveDown,
	input.ActionMoveLeft,
	input.ActionMoveRight,
	input.ActionPause,
	input.ActionReset,
	input.ActionQuit,
}

// Legend returns one "Action: codes" line per bindable action. Only keyboard
// codes are listed; gamepad and web codes are omitted.
func Legend() []string {
	byAction := input.GetBindingsByAction()
	lines := make([]string, 0, len(legendActions))
	for _, act := range legendActions {
		var codes []string
		for _, c := range byAction[act] {
			if strings.HasPrefix(c, "gamepad_") || isWebWord(c) {
				continue
			}
			codes = append(codes, c)
		}
		sort.Strings(codes)
		codeText := strings.Join(codes, ", ")
		if codeText == "" {
			codeText = "(unbound)"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", input.ActionName(act), codeText))
	}
	return lines
}

func isWebWord(code string) bool {
	switch code {
	case "up", "down", "left", "right", "pause", "reset", "quit":
		return true
	}
	return false
}
