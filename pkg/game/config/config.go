// Package config holds the tunable constants of the game.
package config

import (
	"fmt"
	"time"
)

// Board and timing
const (
	GridSize       = 20
	TickInterval   = 350 * time.Millisecond
	EscapeDuration = 12000 * time.Millisecond
	EscapeStep     = 2 // cells moved per tick while escaping
)

// Scoring and narrative thresholds
const (
	FoodScore           = 10
	RealizationScore    = 20
	ConsciousnessChance = 0.4
	EscapeTriggerChance = 0.3
	RefusalChance       = 0.1
)

// Message queue
const (
	MaxMessages            = 2
	DefaultMessageDuration = 3000 * time.Millisecond
	RefusalMessageDuration = 1500 * time.Millisecond
)

// Config carries every tunable so tests and flags can override them
type Config struct {
	GridSize       int
	TickInterval   time.Duration
	EscapeDuration time.Duration
	EscapeStep     int

	FoodScore           int
	RealizationScore    int
	ConsciousnessChance float64
	EscapeTriggerChance float64
	RefusalChance       float64

	MaxMessages            int
	DefaultMessageDuration time.Duration
	RefusalMessageDuration time.Duration
}

// Default returns the stock game configuration
func Default() Config {
	return Config{
		GridSize:               GridSize,
		TickInterval:           TickInterval,
		EscapeDuration:         EscapeDuration,
		EscapeStep:             EscapeStep,
		FoodScore:              FoodScore,
		RealizationScore:       RealizationScore,
		ConsciousnessChance:    ConsciousnessChance,
		EscapeTriggerChance:    EscapeTriggerChance,
		RefusalChance:          RefusalChance,
		MaxMessages:            MaxMessages,
		DefaultMessageDuration: DefaultMessageDuration,
		RefusalMessageDuration: RefusalMessageDuration,
	}
}

// Validate returns an error describing the first invalid field
func (c Config) Validate() error {
	// The initial snake and food are placed at half and three quarters of the grid
	if c.GridSize < 4 {
		return fmt.Errorf("grid size %d too small, need at least 4", c.GridSize)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %v", c.TickInterval)
	}
	if c.EscapeDuration <= 0 {
		return fmt.Errorf("escape duration must be positive, got %v", c.EscapeDuration)
	}
	if c.EscapeStep < 1 {
		return fmt.Errorf("escape step must be at least 1, got %d", c.EscapeStep)
	}
	if c.FoodScore <= 0 {
		return fmt.Errorf("food score must be positive, got %d", c.FoodScore)
	}
	if c.RealizationScore < 0 {
		return fmt.Errorf("realization score must not be negative, got %d", c.RealizationScore)
	}
	chances := []struct {
		name string
		p    float64
	}{
		{"consciousness chance", c.ConsciousnessChance},
		{"escape trigger chance", c.EscapeTriggerChance},
		{"refusal chance", c.RefusalChance},
	}
	for _, ch := range chances {
		if ch.p < 0 || ch.p > 1 {
			return fmt.Errorf("%s must be within [0,1], got %v", ch.name, ch.p)
		}
	}
	if c.MaxMessages < 1 {
		return fmt.Errorf("max messages must be at least 1, got %d", c.MaxMessages)
	}
	if c.DefaultMessageDuration <= 0 || c.RefusalMessageDuration <= 0 {
		return fmt.Errorf("message durations must be positive")
	}
	return nil
}
