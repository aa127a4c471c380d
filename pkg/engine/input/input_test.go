package input

import (
	"bufio"
	"io"
	"strings"
	"testing"
	"time"

	"awaresnake/pkg/engine/world"
)

func TestReadCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"\x1b[A", "arrow_up"},
		{"\x1b[B", "arrow_down"},
		{"\x1b[C", "arrow_right"},
		{"\x1b[D", "arrow_left"},
		{"\x1bOA", "arrow_up"},
		{"\x1b[Z", ""},
		{"\x1bx", "escape"},
		{"\x1b", "escape"},
		{" ", "space"},
		{"\r", "enter"},
		{"\x03", "ctrl_c"},
		{"W", "w"},
		{"q", "q"},
		{"\x01", ""},
	}
	for _, tt := range tests {
		got, err := ReadCode(bufio.NewReader(strings.NewReader(tt.in)))
		if err != nil {
			t.Errorf("ReadCode(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ReadCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReadCodeSequence(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("\x1b[Ad p"))
	var got []string
	for {
		code, err := ReadCode(r)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadCode error = %v", err)
		}
		got = append(got, code)
	}
	want := []string{"arrow_up", "d", "space", "p"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("codes = %v, want %v", got, want)
	}
}

func TestReadCode_EscapeKeepsNextKey(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("\x1bq\x1b\x1b[B"))
	want := []string{"escape", "q", "escape", "arrow_down"}
	for _, w := range want {
		code, err := ReadCode(r)
		if err != nil {
			t.Fatalf("ReadCode error = %v", err)
		}
		if code != w {
			t.Fatalf("ReadCode = %q, want %q", code, w)
		}
	}
}

func TestReadCode_LoneEscapeDoesNotWait(t *testing.T) {
	pr, pw := io.Pipe()
	defer pr.Close()
	go pw.Write([]byte{0x1b})

	done := make(chan string, 1)
	go func() {
		code, _ := ReadCode(bufio.NewReader(pr))
		done <- code
	}()

	select {
	case code := <-done:
		if code != "escape" {
			t.Errorf("ReadCode = %q, want escape", code)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("ReadCode blocked after a lone ESC")
	}
}

func TestMapToIntent(t *testing.T) {
	tests := []struct {
		code string
		want Action
	}{
		{"arrow_up", ActionMoveUp},
		{"w", ActionMoveUp},
		{"down", ActionMoveDown},
		{"h", ActionMoveLeft},
		{"gamepad_dpad_right", ActionMoveRight},
		{"space", ActionPause},
		{"pause", ActionPause},
		{"r", ActionReset},
		{"reset", ActionReset},
		{"q", ActionQuit},
		{"ctrl_c", ActionQuit},
		{"xyzzy", ActionNone},
	}
	for _, tt := range tests {
		got := FromCode(DeviceKeyboard, tt.code)
		if got.Action != tt.want {
			t.Errorf("FromCode(%q) = %s, want %s", tt.code, ActionName(got.Action), ActionName(tt.want))
		}
	}
}

func TestIntentDirection(t *testing.T) {
	tests := []struct {
		action Action
		want   world.Direction
		ok     bool
	}{
		{ActionMoveUp, world.Up, true},
		{ActionMoveDown, world.Down, true},
		{ActionMoveLeft, world.Left, true},
		{ActionMoveRight, world.Right, true},
		{ActionPause, 0, false},
		{ActionNone, 0, false},
	}
	for _, tt := range tests {
		got, ok := Intent{Action: tt.action}.Direction()
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("Intent{%s}.Direction() = %v, %v; want %v, %v", ActionName(tt.action), got, ok, tt.want, tt.ok)
		}
	}
}

func TestSetSingleBindingKeepsReserved(t *testing.T) {
	saved := make(map[string]Action, len(bindings))
	for k, v := range bindings {
		saved[k] = v
	}
	t.Cleanup(func() { bindings = saved })

	SetSingleBinding(ActionMoveUp, "i")
	codes := GetBindingsByAction()[ActionMoveUp]
	if strings.Join(codes, ",") != "arrow_up,gamepad_dpad_up,i,up" {
		t.Errorf("bindings for Move Up = %v, want [arrow_up gamepad_dpad_up i up]", codes)
	}
	if FromCode(DeviceKeyboard, "w").Action != ActionNone {
		t.Error("old binding w still mapped after rebinding")
	}

	SetSingleBinding(ActionPause, "arrow_left")
	if FromCode(DeviceKeyboard, "arrow_left").Action != ActionMoveLeft {
		t.Error("reserved code arrow_left was rebound")
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		name string
		want Action
		ok   bool
	}{
		{"up", ActionMoveUp, true},
		{"LEFT", ActionMoveLeft, true},
		{"Move Right", ActionMoveRight, true},
		{" pause ", ActionPause, true},
		{"quit", ActionQuit, true},
		{"none", ActionNone, false},
		{"jump", ActionNone, false},
	}
	for _, tt := range tests {
		got, ok := ParseAction(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseAction(%q) = %v, %v, want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestBind(t *testing.T) {
	saved := make(map[string]Action, len(bindings))
	for k, v := range bindings {
		saved[k] = v
	}
	t.Cleanup(func() { bindings = saved })

	if err := Bind("pause=x"); err != nil {
		t.Fatalf("Bind(pause=x) error = %v", err)
	}
	if got := FromCode(DeviceTerminal, "x").Action; got != ActionPause {
		t.Errorf("x maps to %v, want Pause", ActionName(got))
	}
	if got := FromCode(DeviceTerminal, "space").Action; got != ActionNone {
		t.Errorf("space still maps to %v after rebinding pause", ActionName(got))
	}
	if got := FromCode(DeviceWeb, "pause").Action; got != ActionPause {
		t.Errorf("web pause maps to %v after rebinding, want Pause", ActionName(got))
	}

	for _, bad := range []string{"pause", "jump=x", "up=", "quit=arrow_up", "left=ctrl_c"} {
		if err := Bind(bad); err == nil {
			t.Errorf("Bind(%q) = nil, want error", bad)
		}
	}
	if got := FromCode(DeviceTerminal, "arrow_up").Action; got != ActionMoveUp {
		t.Errorf("arrow_up maps to %v, want Move Up", ActionName(got))
	}
}
