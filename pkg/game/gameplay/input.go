package gameplay

import (
	"github.com/golang/glog"

	engineinput "awaresnake/pkg/engine/input"
)

// ProcessIntent maps a high-level intent onto the machine. It holds no game
// logic of its own and returns true when the intent asks the front end to quit.
func ProcessIntent(m *Machine, intent engineinput.Intent) (quit bool) {
	switch intent.Action {
	case engineinput.ActionNone:
		return false

	case engineinput.ActionMoveUp, engineinput.ActionMoveDown,
		engineinput.ActionMoveLeft, engineinput.ActionMoveRight:
		dir, _ := intent.Direction()
		m.ChangeDirection(dir)
		return false

	case engineinput.ActionPause:
		m.TogglePause()
		return false

	case engineinput.ActionReset:
		m.Reset()
		return false

	case engineinput.ActionQuit:
		return true
	}

	glog.Warningf("unhandled action %d", intent.Action)
	return false
}
