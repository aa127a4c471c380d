package gameplay

import (
	"github.com/golang/glog"

	"awaresnake/pkg/engine/world"
	"awaresnake/pkg/game/content"
)

// Step advances the game by one tick. It does nothing while paused or after
// game over and reports whether the game changed.
func (m *Machine) Step() bool {
	g := m.game
	if g.GameOver || g.Paused {
		return false
	}

	now := m.clock.Now()
	g.Messages.Sweep(now)

	if g.IsEscaping && now.Sub(g.EscapeStartedAt) >= m.cfg.EscapeDuration {
		m.endEscape()
	}

	head, ok := m.nextHead()
	if !ok {
		m.die("wall", head)
		return true
	}
	// Self-intersection is allowed while escaping
	if !g.IsEscaping && g.Occupies(head) {
		m.die("self", head)
		return true
	}

	ate := head == g.Food
	g.Snake = append(g.Snake, world.Position{})
	copy(g.Snake[1:], g.Snake[:len(g.Snake)-1])
	g.Snake[0] = head
	if !ate {
		g.Snake = g.Snake[:len(g.Snake)-1]
	}
	g.Tick++

	if ate {
		m.eat()
	}

	m.checkInvariants()
	return true
}

// nextHead computes where the head goes this tick. While escaping it jumps in
// a random direction and wraps around the board; otherwise it follows the
// current direction and reports false when that leaves the board.
func (m *Machine) nextHead() (world.Position, bool) {
	g := m.game
	if g.IsEscaping {
		dirs := world.AllDirections()
		dir := dirs[m.rng.Intn(len(dirs))]
		return g.Head().Step(dir, m.cfg.EscapeStep).Wrap(g.GridSize), true
	}

	head := g.Head().Step(g.Direction, 1)
	if !head.InBounds(g.GridSize) {
		return head, false
	}
	return head, true
}

// die ends the game and lets the snake complain about it
func (m *Machine) die(cause string, at world.Position) {
	g := m.game
	g.GameOver = true
	g.IsEscaping = false
	g.EscapeStartedAt = zeroTime
	g.Messages.Replace(m.message(content.DeathLine(m.rng), m.cfg.DefaultMessageDuration))
	glog.V(1).Infof("game over: %s collision at %v, score=%d length=%d", cause, at, g.Score, len(g.Snake))
}

// eat handles a tick on which the head landed on the food
func (m *Machine) eat() {
	g := m.game
	g.Score += m.cfg.FoodScore

	food, ok := PlaceFood(m.rng, g.Snake, g.GridSize)
	if !ok {
		g.GameOver = true
		g.Won = true
		g.IsEscaping = false
		g.EscapeStartedAt = zeroTime
		g.Messages.Replace(m.message(content.Line(content.Victory), m.cfg.DefaultMessageDuration))
		glog.Infof("board filled at score %d", g.Score)
		return
	}
	g.Food = food
	glog.V(2).Infof("ate food, score=%d length=%d next food at %v", g.Score, len(g.Snake), food)

	m.afterMeal()
}

// ChangeDirection asks the snake to turn. Reversals, turns while escaping
// or dead, and the occasional refusal of a realized snake leave the
// direction unchanged. Turns are accepted while paused and take effect on
// the first tick after resuming. It reports whether the direction changed.
func (m *Machine) ChangeDirection(requested world.Direction) bool {
	g := m.game
	if g.GameOver || g.IsEscaping || !requested.IsValid() {
		return false
	}
	if g.Direction.IsOpposite(requested) {
		return false
	}

	if g.HasRealized && m.chance(m.cfg.RefusalChance) {
		g.Messages.PushIfRoom(m.message(content.Line(content.Refusal), m.cfg.RefusalMessageDuration))
		glog.V(1).Infof("snake refused to turn %v", requested)
		return false
	}

	if g.Direction == requested {
		return false
	}
	g.Direction = requested
	return true
}
