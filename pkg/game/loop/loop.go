// Package loop drives a gameplay.Machine from a fixed-period ticker and a
// stream of intents, all on one goroutine.
package loop

import (
	"context"
	"time"

	"github.com/golang/glog"

	"awaresnake/pkg/engine/input"
	"awaresnake/pkg/game/gameplay"
	"awaresnake/pkg/game/state"
)

// Frontend is the part of a renderer the loop talks to
type Frontend interface {
	RenderFrame(snap state.Snapshot)
	Intents() <-chan input.Intent
}

// Runner owns the only goroutine that mutates the game
type Runner struct {
	machine  *gameplay.Machine
	frontend Frontend
	interval time.Duration

	// ticks overrides the internal ticker when set
	ticks <-chan time.Time
}

// Option configures a Runner
type Option func(*Runner)

// WithTicks replaces the ticker with an externally driven channel
func WithTicks(ticks <-chan time.Time) Option {
	return func(r *Runner) {
		r.ticks = ticks
	}
}

// WithInterval overrides the tick interval taken from the machine's config
func WithInterval(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.interval = d
		}
	}
}

// New creates a runner for m publishing to f
func New(m *gameplay.Machine, f Frontend, opts ...Option) *Runner {
	r := &Runner{
		machine:  m,
		frontend: f,
		interval: m.Config().TickInterval,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run ticks the machine and applies intents until ctx is cancelled, a Quit
// intent arrives or the intent channel closes. A quit returns nil; a
// cancelled context returns its error.
func (r *Runner) Run(ctx context.Context) error {
	ticks := r.ticks
	if ticks == nil {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		ticks = ticker.C
	}
	intents := r.frontend.Intents()

	r.publish()
	glog.V(1).Infof("loop started, tick=%v", r.interval)

	for {
		select {
		case <-ctx.Done():
			glog.V(1).Info("loop stopped: context done")
			return ctx.Err()

		case <-ticks:
			if r.machine.Step() {
				r.publish()
			}

		case intent, ok := <-intents:
			if !ok {
				glog.V(1).Info("loop stopped: intent channel closed")
				return nil
			}
			if gameplay.ProcessIntent(r.machine, intent) {
				glog.V(1).Info("loop stopped: quit")
				return nil
			}
			r.publish()
		}
	}
}

func (r *Runner) publish() {
	r.frontend.RenderFrame(r.machine.Snapshot())
}
