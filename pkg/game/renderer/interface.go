package renderer

import (
	"context"

	"awaresnake/pkg/engine/input"
	"awaresnake/pkg/game/state"
)

// Renderer defines the interface for game front ends.
// Implementations include TUI (ANSI terminal), tcell, Ebiten and the browser.
type Renderer interface {
	// Init prepares the renderer (colors, terminal mode, window, listener)
	Init() error

	// RenderFrame hands the renderer the latest snapshot. It is called from the
	// loop goroutine and must not block for long.
	RenderFrame(snap state.Snapshot)

	// Intents delivers the player's intents. Sends are non-blocking; intents
	// are dropped when the loop falls behind.
	Intents() <-chan input.Intent

	// Run drives the renderer's own event loop until ctx is done or the
	// player quits.
	Run(ctx context.Context) error

	// Close releases everything Init acquired
	Close() error
}

// IntentBuffer is the capacity of a renderer's intent channel
const IntentBuffer = 16

// Send delivers intent on ch without blocking and reports whether it fit
func Send(ch chan<- input.Intent, intent input.Intent) bool {
	if intent.Action == input.ActionNone {
		return false
	}
	select {
	case ch <- intent:
		return true
	default:
		// Channel full, drop input
		return false
	}
}
