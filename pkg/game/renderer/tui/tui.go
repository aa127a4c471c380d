// Package tui renders the board as an ANSI frame on a raw-mode terminal.
package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/gookit/color"

	"awaresnake/pkg/engine/input"
	"awaresnake/pkg/engine/terminal"
	"awaresnake/pkg/game/renderer"
	"awaresnake/pkg/game/state"
)

const (
	clearScreen = "\x1b[H\x1b[2J"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"

	// Lines drawn around the board: two borders, status, two messages, legend
	chromeRows = 6
)

var _ renderer.Renderer = (*TUIRenderer)(nil)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	in  *os.File
	out io.Writer

	restore func() error
	intents chan input.Intent
	frames  chan state.Snapshot
	errs    chan error

	colorHead    color.Style
	colorBody    color.Style
	colorFood    color.Style
	colorEmpty   color.Style
	colorBorder  color.Style
	colorMessage color.Style
	colorStatus  color.Style
	colorDenied  color.Style
	colorSubtle  color.Style
}

// New creates a TUI renderer reading keys from in and drawing to out
func New(in *os.File, out io.Writer) *TUIRenderer {
	return &TUIRenderer{
		in:      in,
		out:     out,
		intents: make(chan input.Intent, renderer.IntentBuffer),
		frames:  make(chan state.Snapshot, 1),
		errs:    make(chan error, 1),
	}
}

// Init sets up colors and puts the terminal into raw mode
func (t *TUIRenderer) Init() error {
	t.colorHead = color.Style{color.FgGreen, color.OpBold}
	t.colorBody = color.Style{color.FgGreen}
	t.colorFood = color.Style{color.FgYellow, color.OpBold}
	t.colorEmpty = color.Style{color.FgGray}
	t.colorBorder = color.Style{color.FgBlue}
	t.colorMessage = color.Style{color.FgCyan}
	t.colorStatus = color.Style{color.FgWhite, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}

	if t.in != nil && terminal.IsTerminal(t.in) {
		restore, err := input.MakeRaw(int(t.in.Fd()))
		if err != nil {
			return fmt.Errorf("tui init: %w", err)
		}
		t.restore = restore
	}
	_, err := io.WriteString(t.out, hideCursor)
	return err
}

// stdoutSize is consulted when the output is not a terminal itself
var stdoutSize = terminal.GetSize

// CheckSize logs a warning when the terminal is too small for a board of
// gridSize cells and reports whether the board fits.
func (t *TUIRenderer) CheckSize(gridSize int) bool {
	w, h := t.size()
	cols, rows := gridSize*2+2, gridSize+chromeRows
	if !terminal.Fits(w, h, cols, rows) {
		glog.Warningf("terminal is %dx%d, board needs %dx%d; the frame will wrap", w, h, cols, rows)
		return false
	}
	return true
}

func (t *TUIRenderer) size() (width, height int) {
	if f, ok := t.out.(*os.File); ok {
		if w, h, ok := terminal.SizeOf(f); ok {
			return w, h
		}
	}
	return stdoutSize()
}

// RenderFrame queues snap for drawing. Only the newest snapshot is kept.
func (t *TUIRenderer) RenderFrame(snap state.Snapshot) {
	select {
	case <-t.frames:
	default:
	}
	t.frames <- snap
}

// Intents returns the channel of decoded key presses
func (t *TUIRenderer) Intents() <-chan input.Intent {
	return t.intents
}

// Run draws frames and reads keys until ctx is done
func (t *TUIRenderer) Run(ctx context.Context) error {
	if t.in != nil {
		// The reader blocks in Read and is abandoned on exit.
		go t.readKeys()
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-t.errs:
			return fmt.Errorf("reading keys: %w", err)
		case snap := <-t.frames:
			if _, err := io.WriteString(t.out, clearScreen+t.Frame(snap)); err != nil {
				return fmt.Errorf("drawing frame: %w", err)
			}
		}
	}
}

// Close restores the terminal
func (t *TUIRenderer) Close() error {
	io.WriteString(t.out, showCursor+"\r\n")
	if t.restore != nil {
		return t.restore()
	}
	return nil
}

func (t *TUIRenderer) readKeys() {
	r := bufio.NewReader(t.in)
	for {
		code, err := input.ReadCode(r)
		if err != nil {
			if errors.Is(err, io.EOF) {
				renderer.Send(t.intents, input.Intent{Action: input.ActionQuit})
				return
			}
			select {
			case t.errs <- err:
			default:
			}
			return
		}
		if code == "" {
			continue
		}
		intent := input.FromCode(input.DeviceTerminal, code)
		glog.V(3).Infof("key %q -> %s", code, input.ActionName(intent.Action))
		renderer.Send(t.intents, intent)
	}
}

// Frame renders snap as a block of styled lines separated by CRLF
func (t *TUIRenderer) Frame(snap state.Snapshot) string {
	head, body := t.colorHead, t.colorBody
	switch renderer.MoodOf(snap) {
	case renderer.MoodRealized:
		head, body = color.Style{color.FgMagenta, color.OpBold}, color.Style{color.FgMagenta}
	case renderer.MoodEscaping:
		head, body = color.Style{color.FgRed, color.OpBold, color.OpBlink}, color.Style{color.FgRed}
	case renderer.MoodOver:
		head, body = t.colorDenied, t.colorSubtle
	}

	var b strings.Builder
	border := t.colorBorder.Sprint("+" + strings.Repeat("--", snap.GridSize) + "+")

	b.WriteString(border)
	b.WriteString("\r\n")
	for y, row := range snap.Cells() {
		b.WriteString(t.colorBorder.Sprint("|"))
		for x := range row {
			kind := row[x]
			icon := renderer.Icon(kind) + " "
			switch kind {
			case state.CellHead:
				b.WriteString(head.Sprint(icon))
			case state.CellBody:
				b.WriteString(body.Sprint(icon))
			case state.CellFood:
				b.WriteString(t.colorFood.Sprint(icon))
			default:
				b.WriteString(t.colorEmpty.Sprint(icon))
			}
		}
		b.WriteString(t.colorBorder.Sprint("|"))
		if y < len(snap.Messages) {
			b.WriteString("  ")
			b.WriteString(t.colorMessage.Sprint(snap.Messages[y]))
		}
		b.WriteString("\r\n")
	}
	b.WriteString(border)
	b.WriteString("\r\n")

	status := renderer.StatusLine(snap)
	if snap.GameOver && !snap.Won {
		b.WriteString(t.colorDenied.Sprint(status))
	} else {
		b.WriteString(t.colorStatus.Sprint(status))
	}
	b.WriteString("\r\n")
	b.WriteString(t.colorSubtle.Sprint(strings.Join(renderer.Legend()[4:], "  ")))
	b.WriteString("\r\n")
	return b.String()
}
