package gameplay

import (
	"math/rand"
	"testing"
	"time"

	"awaresnake/pkg/engine/clock"
	"awaresnake/pkg/engine/world"
	"awaresnake/pkg/game/config"
	"awaresnake/pkg/game/messages"
)

// newTestMachine returns a machine on a mock clock with every narrative roll
// disabled; mutate can switch them back on.
func newTestMachine(t *testing.T, mutate func(*config.Config)) (*Machine, *clock.MockTimeProvider) {
	t.Helper()
	cfg := config.Default()
	cfg.ConsciousnessChance = 0
	cfg.EscapeTriggerChance = 0
	cfg.RefusalChance = 0
	if mutate != nil {
		mutate(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	clk := clock.NewMockTimeProvider(time.Unix(1_700_000_000, 0))
	return New(cfg, rand.New(rand.NewSource(1)), clk), clk
}

func pos(x, y int) world.Position {
	return world.Position{X: x, Y: y}
}

func fillQueue(m *Machine, d time.Duration) {
	g := m.State()
	for g.Messages.HasRoom() {
		g.Messages.Push(messages.Message{Text: "filler", Duration: d, CreatedAt: m.Now()})
	}
}
