// Package gameplay provides the snake's state machine: ticking, collisions,
// growth, the narrative triggers and the input mapping that drives them.
package gameplay

import (
	"fmt"
	"math/rand"
	"time"

	"awaresnake/pkg/engine/clock"
	"awaresnake/pkg/game/config"
	"awaresnake/pkg/game/messages"
	"awaresnake/pkg/game/state"
)

// Machine owns a single game and every mutation of it.
// It is not safe for concurrent use; one loop goroutine drives it.
type Machine struct {
	cfg   config.Config
	rng   *rand.Rand
	clock *clock.PausableClock
	game  *state.Game
}

// New creates a machine with a fresh game. rng drives food placement, escape
// movement and every narrative roll; time is read from tp.
func New(cfg config.Config, rng *rand.Rand, tp clock.TimeProvider) *Machine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Machine{
		cfg:   cfg,
		rng:   rng,
		clock: clock.NewPausableClock(tp),
		game:  state.NewGame(cfg.GridSize, cfg.MaxMessages),
	}
}

// State exposes the live game. Callers outside the loop should use Snapshot.
func (m *Machine) State() *state.Game {
	return m.game
}

// Snapshot returns an immutable copy of the game
func (m *Machine) Snapshot() state.Snapshot {
	return m.game.Snapshot()
}

// Config returns the configuration the machine runs with
func (m *Machine) Config() config.Config {
	return m.cfg
}

// Now returns the current game time, frozen while paused
func (m *Machine) Now() time.Time {
	return m.clock.Now()
}

// chance draws a Bernoulli(p) outcome
func (m *Machine) chance(p float64) bool {
	return m.rng.Float64() < p
}

// message builds a message stamped with the current game time
func (m *Machine) message(text string, d time.Duration) messages.Message {
	return messages.Message{Text: text, Duration: d, CreatedAt: m.clock.Now()}
}

// checkInvariants panics on states no sequence of operations should produce
func (m *Machine) checkInvariants() {
	g := m.game
	mustf(len(g.Snake) >= 1, "snake has no segments")
	mustf(g.Score >= 0, "negative score %d", g.Score)
	mustf(g.Head().InBounds(g.GridSize), "head %v outside %dx%d grid", g.Head(), g.GridSize, g.GridSize)
	mustf(g.Messages.Len() <= g.Messages.Cap(), "message queue holds %d > %d", g.Messages.Len(), g.Messages.Cap())
}

func mustf(ok bool, format string, args ...any) {
	if !ok {
		panic(fmt.Sprintf("gameplay: invariant violated: "+format, args...))
	}
}
