package gameplay

import (
	"github.com/golang/glog"

	"awaresnake/pkg/game/content"
	"awaresnake/pkg/game/state"
)

// TogglePause flips the pause state and reports whether the game is now
// paused. Game time stops while paused, so escape and message timers resume
// where they left off. Pausing a finished game does nothing.
func (m *Machine) TogglePause() bool {
	g := m.game
	if g.GameOver {
		return g.Paused
	}

	if g.Paused {
		m.clock.Resume()
		g.Paused = false
		glog.V(1).Info("resumed")
		return false
	}

	m.clock.Pause()
	g.Paused = true
	if g.HasRealized {
		g.Messages.Push(m.message(content.Line(content.PauseThought), m.cfg.DefaultMessageDuration))
	}
	glog.V(1).Info("paused")
	return true
}

// Reset starts a new round. Realization and the escape attempt count carry
// over; everything else returns to its initial value and the game unpauses.
func (m *Machine) Reset() {
	prev := m.game
	next := state.NewGame(m.cfg.GridSize, m.cfg.MaxMessages)
	next.HasRealized = prev.HasRealized
	next.EscapeAttempts = prev.EscapeAttempts + 1

	m.clock.Resume()
	m.game = next

	if prev.EscapeAttempts > 0 {
		next.Messages.Push(m.message(content.Line(content.Taunt), m.cfg.DefaultMessageDuration))
	}
	glog.V(1).Infof("reset: attempts=%d realized=%v previous score=%d", next.EscapeAttempts, next.HasRealized, prev.Score)
}
