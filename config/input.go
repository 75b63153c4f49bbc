package config

import "github.com/automoto/burrow/shared/netconfig"

// ActionID represents a logical game action
type ActionID = netconfig.ActionID

const (
	ActionNone         = netconfig.ActionNone
	ActionJump         = netconfig.ActionJump
	ActionAbility      = netconfig.ActionAbility
	ActionSelectBurrow = netconfig.ActionSelectBurrow
	ActionSelectDash   = netconfig.ActionSelectDash
	ActionRun          = netconfig.ActionRun
	ActionCount        = netconfig.ActionCount
)

// InputConfig holds client-side input filtering. Device polling lives
// outside this module; clients translate their devices into actions and axes.
type InputConfig struct {
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

// ActionNames maps ActionID to a stable name used in logs and tuning files.
var ActionNames = map[ActionID]string{
	ActionJump:         "jump",
	ActionAbility:      "ability",
	ActionSelectBurrow: "select_burrow",
	ActionSelectDash:   "select_dash",
	ActionRun:          "run",
}

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
	}
}

// ApplyDeadzone zeroes analog axes whose magnitude falls inside the deadzone.
func (c InputConfig) ApplyDeadzone(x, y float64) (float64, float64) {
	if x*x+y*y < c.AnalogDeadzone*c.AnalogDeadzone {
		return 0, 0
	}
	return x, y
}
