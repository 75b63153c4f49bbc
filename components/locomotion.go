package components

import (
	"github.com/automoto/burrow/config"
	"github.com/automoto/burrow/locomotion"
	"github.com/yohamta/donburi"
)

// LocomotionData is the movement and ability state of a character.
type LocomotionData struct {
	State  locomotion.State
	Visual locomotion.VisualOffset
	Clock  float64 // Simulated seconds, the monotonic clock for ability cooldowns

	// Result of the most recent tick
	Last locomotion.Result
}

var Locomotion = donburi.NewComponentType[LocomotionData]()

// TuningData is the per-player tuning: the global tuning with the player's
// profile applied on top.
type TuningData struct {
	Config config.LocomotionConfig
}

var Tuning = donburi.NewComponentType[TuningData]()
