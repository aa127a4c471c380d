package input

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"awaresnake/pkg/engine/world"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
	DeviceTerminal
	DeviceWeb
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight

	// Game control
	ActionPause
	ActionReset

	// Front end only, never reaches the game state
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// Direction returns the heading a movement intent asks for
func (i Intent) Direction() (world.Direction, bool) {
	switch i.Action {
	case ActionMoveUp:
		return world.Up, true
	case ActionMoveDown:
		return world.Down, true
	case ActionMoveLeft:
		return world.Left, true
	case ActionMoveRight:
		return world.Right, true
	default:
		return 0, false
	}
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "w", "arrow_up", "gamepad_dpad_up").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Key repeat is already collapsed by the terminal, tcell, ebiten's
// IsKeyJustPressed and the browser, so this is a thin layer for now.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, WASD, Vim, web buttons)
	"arrow_up":    ActionMoveUp,
	"w":           ActionMoveUp,
	"k":           ActionMoveUp,
	"up":          ActionMoveUp,
	"arrow_down":  ActionMoveDown,
	"s":           ActionMoveDown,
	"j":           ActionMoveDown,
	"down":        ActionMoveDown,
	"arrow_left":  ActionMoveLeft,
	"a":           ActionMoveLeft,
	"h":           ActionMoveLeft,
	"left":        ActionMoveLeft,
	"arrow_right": ActionMoveRight,
	"d":           ActionMoveRight,
	"l":           ActionMoveRight,
	"right":       ActionMoveRight,

	// Pause
	"space": ActionPause,
	"p":     ActionPause,
	"pause": ActionPause,

	// Reset
	"r":     ActionReset,
	"enter": ActionReset,
	"reset": ActionReset,

	// Quit
	"q":      ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,
	"quit":   ActionQuit,

	// Controller/gamepad specific bindings
	"gamepad_dpad_up":    ActionMoveUp,
	"gamepad_dpad_down":  ActionMoveDown,
	"gamepad_dpad_left":  ActionMoveLeft,
	"gamepad_dpad_right": ActionMoveRight,
	"gamepad_start":      ActionPause,
	"gamepad_a":          ActionReset,
	"gamepad_b":          ActionQuit,
}

// reserved codes can never be rebound or removed. The web buttons and the
// gamepad send fixed codes, so only keyboard keys are rebindable.
var reserved = map[string]bool{
	"arrow_up":    true,
	"arrow_down":  true,
	"arrow_left":  true,
	"arrow_right": true,
	"ctrl_c":      true,

	"up":    true,
	"down":  true,
	"left":  true,
	"right": true,
	"pause": true,
	"reset": true,
	"quit":  true,

	"gamepad_dpad_up":    true,
	"gamepad_dpad_down":  true,
	"gamepad_dpad_left":  true,
	"gamepad_dpad_right": true,
	"gamepad_start":      true,
	"gamepad_a":          true,
	"gamepad_b":          true,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// FromCode runs a code from device through every layer
func FromCode(device Device, code string) Intent {
	raw := RawInput{Device: device, Code: code, Timestamp: time.Now()}
	return MapToIntent(NewDebouncedInput(raw))
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveUp:
		return "Move Up"
	case ActionMoveDown:
		return "Move Down"
	case ActionMoveLeft:
		return "Move Left"
	case ActionMoveRight:
		return "Move Right"
	case ActionPause:
		return "Pause"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

var actionsByName = map[string]Action{
	"up":    ActionMoveUp,
	"down":  ActionMoveDown,
	"left":  ActionMoveLeft,
	"right": ActionMoveRight,
	"pause": ActionPause,
	"reset": ActionReset,
	"quit":  ActionQuit,
}

// ParseAction looks an action up by its short name ("up", "pause", ...) or
// by the name ActionName gives it. Case is ignored.
func ParseAction(name string) (Action, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if a, ok := actionsByName[name]; ok {
		return a, true
	}
	for _, a := range actionsByName {
		if strings.ToLower(ActionName(a)) == name {
			return a, true
		}
	}
	return ActionNone, false
}

// Bind applies an "action=code" rebinding such as "up=i", replacing the
// action's other non-reserved codes.
func Bind(spec string) error {
	name, code, ok := strings.Cut(spec, "=")
	if !ok {
		return fmt.Errorf("binding %q: want action=code", spec)
	}
	action, ok := ParseAction(name)
	if !ok {
		return fmt.Errorf("binding %q: unknown action %q", spec, name)
	}
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return fmt.Errorf("binding %q: empty code", spec)
	}
	if reserved[code] {
		return fmt.Errorf("binding %q: %s is reserved", spec, code)
	}
	SetSingleBinding(action, code)
	return nil
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't shuffle between frames.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single code.
// Reserved codes are never removed and cannot be reassigned.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if reserved[c] {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reserved[code] {
		bindings[code] = action
	}
}
