// Package cellterm draws the board on a full-screen tcell terminal.
package cellterm

import (
	"context"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"
	"github.com/mattn/go-runewidth"

	"awaresnake/pkg/engine/input"
	"awaresnake/pkg/game/renderer"
	"awaresnake/pkg/game/state"
)

var _ renderer.Renderer = (*Renderer)(nil)

// Renderer is a tcell-backed front end
type Renderer struct {
	screen  tcell.Screen
	intents chan input.Intent
	frames  chan state.Snapshot
	redraw  chan struct{}

	closeOnce sync.Once
	last      state.Snapshot
	hasLast   bool
}

// New wraps screen. A nil screen opens the real terminal on Init.
func New(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:  screen,
		intents: make(chan input.Intent, renderer.IntentBuffer),
		frames:  make(chan state.Snapshot, 1),
		redraw:  make(chan struct{}, 1),
	}
}

// Init opens and initialises the screen
func (r *Renderer) Init() error {
	if r.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("problem creating screen: %w", err)
		}
		r.screen = s
	}
	if err := r.screen.Init(); err != nil {
		return fmt.Errorf("init problem: %w", err)
	}
	r.screen.HideCursor()
	r.screen.Clear()
	return nil
}

// RenderFrame queues snap for drawing, replacing any frame not yet drawn
func (r *Renderer) RenderFrame(snap state.Snapshot) {
	select {
	case <-r.frames:
	default:
	}
	r.frames <- snap
}

// Intents returns the key intents
func (r *Renderer) Intents() <-chan input.Intent {
	return r.intents
}

// Run polls terminal events and draws frames until ctx is done
func (r *Renderer) Run(ctx context.Context) error {
	go r.pollEvents()

	for {
		select {
		case <-ctx.Done():
			return nil
		case snap := <-r.frames:
			r.last, r.hasLast = snap, true
			r.draw(snap)
		case <-r.redraw:
			r.screen.Sync()
			if r.hasLast {
				r.draw(r.last)
			}
		}
	}
}

// Close restores the terminal
func (r *Renderer) Close() error {
	r.closeOnce.Do(func() {
		if r.screen != nil {
			r.screen.Fini()
		}
	})
	return nil
}

// pollEvents runs until the screen is finalised and PollEvent returns nil
func (r *Renderer) pollEvents() {
	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			code := keyCode(ev.Key(), ev.Rune())
			if code == "" {
				continue
			}
			intent := input.FromCode(input.DeviceKeyboard, code)
			glog.V(3).Infof("key %q -> %s", code, input.ActionName(intent.Action))
			renderer.Send(r.intents, intent)
		case *tcell.EventResize:
			select {
			case r.redraw <- struct{}{}:
			default:
			}
		}
	}
}

// keyCode converts a tcell key into a binding code
func keyCode(key tcell.Key, ch rune) string {
	switch key {
	case tcell.KeyUp:
		return "arrow_up"
	case tcell.KeyDown:
		return "arrow_down"
	case tcell.KeyLeft:
		return "arrow_left"
	case tcell.KeyRight:
		return "arrow_right"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "escape"
	case tcell.KeyCtrlC:
		return "ctrl_c"
	case tcell.KeyRune:
		if ch == ' ' {
			return "space"
		}
		if ch >= 'A' && ch <= 'Z' {
			ch += 'a' - 'A'
		}
		if ch > ' ' && ch < 0x7f {
			return string(ch)
		}
	}
	return ""
}

func styleFor(kind state.CellKind, mood renderer.Mood) tcell.Style {
	base := tcell.StyleDefault
	switch kind {
	case state.CellHead, state.CellBody:
		fg := tcell.ColorGreen
		switch mood {
		case renderer.MoodRealized:
			fg = tcell.ColorPurple
		case renderer.MoodEscaping, renderer.MoodOver:
			fg = tcell.ColorRed
		}
		return base.Foreground(fg).Bold(kind == state.CellHead)
	case state.CellFood:
		return base.Foreground(tcell.ColorYellow).Bold(true)
	default:
		return base.Foreground(tcell.ColorGray)
	}
}

// drawText writes text from column x and returns the column after it.
// Wide runes such as emoji take two cells.
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) int {
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		s.SetContent(x, y, ch, nil, style)
		x += w
	}
	return x
}

func (r *Renderer) draw(snap state.Snapshot) {
	s := r.screen
	s.Clear()
	mood := renderer.MoodOf(snap)
	border := tcell.StyleDefault.Foreground(tcell.ColorBlue)

	// Each cell is two columns wide so the board looks square
	right := snap.GridSize*2 + 1
	bottom := snap.GridSize + 1
	for x := 0; x <= right; x++ {
		s.SetContent(x, 0, '-', nil, border)
		s.SetContent(x, bottom, '-', nil, border)
	}
	for y := 1; y < bottom; y++ {
		s.SetContent(0, y, '|', nil, border)
		s.SetContent(right, y, '|', nil, border)
	}

	for y, row := range snap.Cells() {
		for x, kind := range row {
			glyph := []rune(renderer.Icon(kind))[0]
			s.SetContent(1+x*2, 1+y, glyph, nil, styleFor(kind, mood))
		}
	}

	status := tcell.StyleDefault.Bold(true)
	if mood == renderer.MoodOver {
		status = status.Foreground(tcell.ColorRed)
	}
	drawText(s, 0, bottom+1, status, renderer.StatusLine(snap))

	msgStyle := tcell.StyleDefault.Foreground(tcell.ColorTeal)
	for i, m := range snap.Messages {
		drawText(s, 0, bottom+2+i, msgStyle, m)
	}
	for i, l := range renderer.Legend() {
		drawText(s, right+3, 1+i, tcell.StyleDefault.Foreground(tcell.ColorGray), l)
	}
	s.Show()
}
