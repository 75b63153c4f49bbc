package messages

import "github.com/leap-fish/necs/esync"

// AbilityEvent is broadcast when a character's ability state machine reports
// a transition (burrow start, launch ready, launch, dash start and end).
type AbilityEvent struct {
	NetworkID esync.NetworkId
	Events    uint16 // locomotion.Event bit set
	Ability   int    // Ability state after the tick
	X, Y, Z   float64
}

// DespawnEvent is broadcast when a player entity is removed
type DespawnEvent struct {
	NetworkID esync.NetworkId
}
