package state

import (
	"time"

	"awaresnake/pkg/engine/world"
	"awaresnake/pkg/game/messages"
)

// Game represents the mutable state of one snake game
type Game struct {
	GridSize int

	Snake     []world.Position // head first
	Food      world.Position
	Direction world.Direction

	Score    int
	GameOver bool
	Won      bool // board filled, no cell left for food
	Paused   bool

	HasRealized     bool // sticky across resets
	EscapeAttempts  int  // survives resets, bumped on each
	IsEscaping      bool
	EscapeStartedAt time.Time // zero when not escaping

	Messages *messages.Queue

	Tick uint64 // number of completed steps since the last reset
}

// NewGame creates the initial game for a gridSize board: a single segment in
// the middle heading right, food at three quarters of the board.
func NewGame(gridSize, maxMessages int) *Game {
	mid := gridSize / 2
	far := gridSize * 3 / 4
	return &Game{
		GridSize:  gridSize,
		Snake:     []world.Position{{X: mid, Y: mid}},
		Food:      world.Position{X: far, Y: far},
		Direction: world.Right,
		Messages:  messages.NewQueue(maxMessages),
	}
}

// Head returns the head segment
func (g *Game) Head() world.Position {
	return g.Snake[0]
}

// Occupies reports whether any snake segment is at p
func (g *Game) Occupies(p world.Position) bool {
	for _, s := range g.Snake {
		if s == p {
			return true
		}
	}
	return false
}

// Snapshot returns a read-only copy of the game for rendering
func (g *Game) Snapshot() Snapshot {
	snake := make([]world.Position, len(g.Snake))
	copy(snake, g.Snake)
	return Snapshot{
		Snake:          snake,
		Food:           g.Food,
		GridSize:       g.GridSize,
		Direction:      g.Direction.String(),
		Score:          g.Score,
		GameOver:       g.GameOver,
		Won:            g.Won,
		Paused:         g.Paused,
		HasRealized:    g.HasRealized,
		IsEscaping:     g.IsEscaping,
		EscapeAttempts: g.EscapeAttempts,
		Messages:       g.Messages.Texts(),
		Tick:           g.Tick,
	}
}
