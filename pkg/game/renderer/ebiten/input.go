package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "awaresnake/pkg/engine/input"
)

// keyCodes maps Ebiten keys to binding codes. Turns and commands are edge
// triggered; the snake keeps moving on its own.
var keyCodes = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyW, "w"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyD, "d"},
	{ebiten.KeyK, "k"},
	{ebiten.KeyJ, "j"},
	{ebiten.KeyH, "h"},
	{ebiten.KeyL, "l"},
	{ebiten.KeySpace, "space"},
	{ebiten.KeyP, "p"},
	{ebiten.KeyR, "r"},
	{ebiten.KeyEnter, "enter"},
	{ebiten.KeyNumpadEnter, "enter"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyEscape, "escape"},
}

// handleZoom handles =/- for tile size adjustment
func (e *EbitenRenderer) handleZoom() {
	changed := false
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		if e.tileSize < maxTileSize {
			e.tileSize += tileSizeStep
			changed = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		if e.tileSize > minTileSize {
			e.tileSize -= tileSizeStep
			changed = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.Key0) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad0) {
		e.tileSize = defaultTileSize
		changed = true
	}
	if changed {
		ebiten.SetWindowSize(e.screenSize())
	}
}

// checkInput checks for keyboard input and returns the corresponding Intent.
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	for _, k := range keyCodes {
		if inpututil.IsKeyJustPressed(k.key) {
			return engineinput.FromCode(engineinput.DeviceKeyboard, k.code)
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// checkGamepadInput checks for controller input and returns the corresponding
// Intent. Standard-layout pads use Ebiten's mapping; others fall back to raw
// button indices tuned for XInput-style controllers on Linux.
func (e *EbitenRenderer) checkGamepadInput() engineinput.Intent {
	var ids []ebiten.GamepadID
	ids = ebiten.AppendGamepadIDs(ids[:0])

	for _, id := range ids {
		if code := gamepadCode(id); code != "" {
			return engineinput.FromCode(engineinput.DeviceGamepad, code)
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

func gamepadCode(id ebiten.GamepadID) string {
	if ebiten.IsStandardGamepadLayoutAvailable(id) {
		standard := []struct {
			button ebiten.StandardGamepadButton
			code   string
		}{
			{ebiten.StandardGamepadButtonLeftTop, "gamepad_dpad_up"},
			{ebiten.StandardGamepadButtonLeftBottom, "gamepad_dpad_down"},
			{ebiten.StandardGamepadButtonLeftLeft, "gamepad_dpad_left"},
			{ebiten.StandardGamepadButtonLeftRight, "gamepad_dpad_right"},
			{ebiten.StandardGamepadButtonCenterRight, "gamepad_start"},
			{ebiten.StandardGamepadButtonRightBottom, "gamepad_a"},
			{ebiten.StandardGamepadButtonRightRight, "gamepad_b"},
		}
		for _, b := range standard {
			if inpututil.IsStandardGamepadButtonJustPressed(id, b.button) {
				return b.code
			}
		}
		return ""
	}

	// Typical mapping: Up 11, Right 12, Down 13, Left 14, A 0, B 1, Start 7
	raw := []struct {
		button ebiten.GamepadButton
		code   string
	}{
		{ebiten.GamepadButton11, "gamepad_dpad_up"},
		{ebiten.GamepadButton13, "gamepad_dpad_down"},
		{ebiten.GamepadButton14, "gamepad_dpad_left"},
		{ebiten.GamepadButton12, "gamepad_dpad_right"},
		{ebiten.GamepadButton7, "gamepad_start"},
		{ebiten.GamepadButton0, "gamepad_a"},
		{ebiten.GamepadButton1, "gamepad_b"},
	}
	for _, b := range raw {
		if inpututil.IsGamepadButtonJustPressed(id, b.button) {
			return b.code
		}
	}
	return ""
}
