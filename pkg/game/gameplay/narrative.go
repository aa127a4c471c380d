package gameplay

import (
	"time"

	"github.com/golang/glog"

	"awaresnake/pkg/game/content"
)

var zeroTime time.Time

// afterMeal runs the narrative triggers that only fire on food-eating ticks
func (m *Machine) afterMeal() {
	g := m.game

	if !g.HasRealized && g.Score >= m.cfg.RealizationScore {
		g.HasRealized = true
		g.Messages.Replace(m.message(content.Line(content.Realization), m.cfg.DefaultMessageDuration))
		glog.Infof("snake realized at score %d", g.Score)
		return
	}

	if !g.HasRealized || g.IsEscaping {
		return
	}
	if !m.chance(m.cfg.ConsciousnessChance) || !g.Messages.HasRoom() {
		return
	}
	g.Messages.Push(m.message(content.Thought(m.rng), m.cfg.DefaultMessageDuration))

	if m.chance(m.cfg.EscapeTriggerChance) {
		m.startEscape()
	}
}

// startEscape puts the snake into escape mode. The announcement replaces the
// queue and stays up for the whole escape window.
func (m *Machine) startEscape() {
	g := m.game
	g.IsEscaping = true
	g.EscapeStartedAt = m.clock.Now()
	g.Messages.Replace(m.message(content.EscapeLine(m.rng), m.cfg.EscapeDuration))
	glog.V(1).Infof("escape attempt started at %v", g.Head())
}

// endEscape returns the snake to normal play
func (m *Machine) endEscape() {
	g := m.game
	g.IsEscaping = false
	g.EscapeStartedAt = zeroTime
	g.Messages.Replace(m.message(content.Line(content.PulledBack), m.cfg.DefaultMessageDuration))
	glog.V(1).Infof("escape attempt over, head back at %v", g.Head())
}
