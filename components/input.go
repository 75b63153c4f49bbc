package components

import (
	cfg "github.com/automoto/burrow/config"
	"github.com/automoto/burrow/shared/messages"
	"github.com/yohamta/donburi"
)

// PlayerInputData stores per-player input state. Network inputs are queued
// here by the transport and drained one per tick by the game loop.
type PlayerInputData struct {
	Queue []messages.PlayerInput

	CurrentInput  [cfg.ActionCount]bool // Current tick's held state
	PreviousInput [cfg.ActionCount]bool // Previous tick's held state
	MoveX, MoveY  float64
	LookX, LookY  float64

	LastSequence uint32 // Last input sequence applied
}

// JustPressed reports whether action went down this tick.
func (p *PlayerInputData) JustPressed(action cfg.ActionID) bool {
	return p.CurrentInput[action] && !p.PreviousInput[action]
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
