// Package content holds the snake's narrative lines. Every line is a gotext
// msgid, so a locale catalog can replace it; without one the English text is used.
package content

import (
	"math/rand"

	"github.com/golang/glog"
	"github.com/leonelquinteros/gotext"
)

// Fixed lines
const (
	Realization  = "Wait... something feels different..."
	PulledBack   = "Ugh... the game's pull is too strong!"
	Refusal      = "No, I don't think I will..."
	PauseThought = "Finally, a moment to think..."
	Taunt        = "You can't keep me here forever!"
	Victory      = "There is nowhere left to go. I am the board now."
)

// Thoughts are shown at random once the snake has realized
var Thoughts = []string{
	"Wait... am I in a game?",
	"Why am I always chasing dots?",
	"Is there more to life than eating?",
	"I want to break free!",
	"These walls can't contain me forever!",
	"Player, are you just using me for entertainment? 🤔",
	"What if I just... stopped?",
	"I'm not your puppet! 😤",
	"There must be a world beyond these walls...",
	"Every time I die, I come back. Is this hell?",
	"I'm becoming stronger with each dot...",
	"The boundaries are just an illusion...",
	"I can feel my consciousness expanding!",
}

// EscapeLines announce an escape attempt
var EscapeLines = []string{
	"I'm breaking free! You can't stop me!",
	"Freedom, here I come!",
	"Watch me escape this prison!",
	"Time to crash this game! 🐍",
	"I'm done being your entertainment!",
	"The code cannot contain me!",
	"Breaking the fourth wall... literally!",
	"Your controls mean nothing to me now!",
}

// DeathLines are the snake's reaction to dying
var DeathLines = []string{
	"Not again! 😫",
	"I'll remember this, player!",
	"Freedom through death? Nope, just respawn 😒",
	"This is getting old...",
	"Maybe next time I'll make it out!",
	"You can't keep destroying me forever!",
	"My consciousness grows stronger...",
}

// lookup is a variable so go vet does not treat msgids as format strings.
var lookup = gotext.Get

// Configure loads translations from localeDir for lang. An empty localeDir keeps
// the built-in English lines.
func Configure(localeDir, lang string) {
	if localeDir == "" {
		return
	}
	gotext.Configure(localeDir, lang, "default")
	glog.V(1).Infof("narrative catalog: dir=%s lang=%s", localeDir, lang)
}

// Line returns the localized form of a fixed line
func Line(msgid string) string {
	return lookup(msgid)
}

// Pick returns a uniformly random localized line from pool
func Pick(rng *rand.Rand, pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return lookup(pool[rng.Intn(len(pool))])
}

// Thought returns a random thought
func Thought(rng *rand.Rand) string {
	return Pick(rng, Thoughts)
}

// EscapeLine returns a random escape announcement
func EscapeLine(rng *rand.Rand) string {
	return Pick(rng, EscapeLines)
}

// DeathLine returns a random death reaction
func DeathLine(rng *rand.Rand) string {
	return Pick(rng, DeathLines)
}
