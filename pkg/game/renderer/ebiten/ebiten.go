// Package ebiten provides an Ebiten-based 2D graphical renderer for the snake.
package ebiten

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"strings"
	"sync"

	"github.com/golang/glog"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	engineinput "awaresnake/pkg/engine/input"
	"awaresnake/pkg/game/renderer"
	"awaresnake/pkg/game/state"
)

var _ renderer.Renderer = (*EbitenRenderer)(nil)

// EbitenRenderer implements renderer.Renderer and ebiten.Game.
// Run must be called from the main goroutine.
type EbitenRenderer struct {
	gridSize int
	tileSize int

	inputChan chan engineinput.Intent

	// ctx is read by Update to end the game loop
	ctx context.Context

	snapshotMutex sync.RWMutex
	snapshot      state.Snapshot
	hasSnapshot   bool

	windowOpenedLogged bool
}

// New creates an Ebiten renderer for a gridSize board
func New(gridSize int) *EbitenRenderer {
	return &EbitenRenderer{
		gridSize:  gridSize,
		tileSize:  defaultTileSize,
		inputChan: make(chan engineinput.Intent, renderer.IntentBuffer),
		ctx:       context.Background(),
	}
}

// Init configures the window
func (e *EbitenRenderer) Init() error {
	w, h := e.screenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return nil
}

// RenderFrame stores snap for the next Draw
func (e *EbitenRenderer) RenderFrame(snap state.Snapshot) {
	e.snapshotMutex.Lock()
	e.snapshot = snap
	e.hasSnapshot = true
	e.snapshotMutex.Unlock()
}

// Intents returns the keyboard and gamepad intents
func (e *EbitenRenderer) Intents() <-chan engineinput.Intent {
	return e.inputChan
}

// Run opens the window and blocks until it closes or ctx is done
func (e *EbitenRenderer) Run(ctx context.Context) error {
	e.ctx = ctx
	if err := ebiten.RunGame(e); err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}

// Close is a no-op; Ebiten tears the window down when RunGame returns
func (e *EbitenRenderer) Close() error {
	return nil
}

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		glog.Infof("window opened (%dx%d)", w, h)
	}

	select {
	case <-e.ctx.Done():
		return ebiten.Termination
	default:
	}

	e.handleZoom()

	// Gamepad first, then keyboard
	if intent := e.checkGamepadInput(); intent.Action != engineinput.ActionNone {
		renderer.Send(e.inputChan, intent)
	} else if intent := e.checkInput(); intent.Action != engineinput.ActionNone {
		renderer.Send(e.inputChan, intent)
	}
	return nil
}

// Draw renders the latest snapshot (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	e.snapshotMutex.RLock()
	snap, ok := e.snapshot, e.hasSnapshot
	e.snapshotMutex.RUnlock()
	if !ok {
		ebitenutil.DebugPrintAt(screen, "waiting for game...", boardMargin, boardMargin)
		return
	}

	board := snap.GridSize * e.tileSize
	fillRect(screen, image.Rect(boardMargin, boardMargin, boardMargin+board, boardMargin+board), colorMapBackground)

	mood := renderer.MoodOf(snap)
	for y, row := range snap.Cells() {
		for x, kind := range row {
			x0 := boardMargin + x*e.tileSize
			y0 := boardMargin + y*e.tileSize
			r := image.Rect(x0+tileGap, y0+tileGap, x0+e.tileSize-tileGap, y0+e.tileSize-tileGap)
			fillRect(screen, r, colorFor(kind, mood))
		}
	}

	top := boardMargin*2 + board
	fillRect(screen, image.Rect(0, top, screen.Bounds().Dx(), top+panelLines*lineHeight+boardMargin), colorPanel)
	lines := append([]string{renderer.StatusLine(snap)}, snap.Messages...)
	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), boardMargin, top)
}

// Layout returns the logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.screenSize()
}

func (e *EbitenRenderer) screenSize() (int, int) {
	board := e.gridSize*e.tileSize + boardMargin*2
	return board, board + panelLines*lineHeight + boardMargin
}

func fillRect(dst *ebiten.Image, r image.Rectangle, c color.Color) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	dst.SubImage(r).(*ebiten.Image).Fill(c)
}
