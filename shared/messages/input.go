package messages

import (
	"github.com/automoto/burrow/config"
	"github.com/automoto/burrow/locomotion"
)

// PlayerInput is sent from client to server each frame with the player's input state.
// Used for server-side movement processing and client-side prediction reconciliation.
type PlayerInput struct {
	Sequence  uint32                   // Incrementing ID for reconciliation
	Actions   map[config.ActionID]bool // Which actions are currently held
	MoveX     float64                  // Strafe axis, right is positive
	MoveY     float64                  // Forward axis
	LookX     float64                  // Look delta since the previous input
	LookY     float64
	Timestamp int64 // Client timestamp (Unix ms)
}

// NewPlayerInput creates a PlayerInput with initialized map
func NewPlayerInput(seq uint32) PlayerInput {
	return PlayerInput{
		Sequence: seq,
		Actions:  make(map[config.ActionID]bool),
	}
}

// Held returns the held state of every action as a fixed array.
func (p PlayerInput) Held() [config.ActionCount]bool {
	var held [config.ActionCount]bool
	for id, down := range p.Actions {
		if id > config.ActionNone && id < config.ActionCount {
			held[id] = down
		}
	}
	return held
}

// ToLocomotion builds a machine tick input from a network input and the held
// state of the previous tick.
func ToLocomotion(p PlayerInput, prev [config.ActionCount]bool, dt, now float64) locomotion.Input {
	return BuildInput(p.Held(), prev, p.MoveX, p.MoveY, p.LookX, p.LookY, dt, now)
}

// BuildInput turns held action state into a machine tick input. Button edges
// are derived from the previous held state; run stays level-triggered.
func BuildInput(cur, prev [config.ActionCount]bool, moveX, moveY, lookX, lookY, dt, now float64) locomotion.Input {
	pressed := func(a config.ActionID) bool { return cur[a] && !prev[a] }
	return locomotion.Input{
		LookX:        lookX,
		LookY:        lookY,
		MoveX:        moveX,
		MoveY:        moveY,
		Jump:         pressed(config.ActionJump),
		Ability:      pressed(config.ActionAbility),
		SelectBurrow: pressed(config.ActionSelectBurrow),
		SelectDash:   pressed(config.ActionSelectDash),
		Run:          cur[config.ActionRun],
		DT:           dt,
		Now:          now,
	}
}
