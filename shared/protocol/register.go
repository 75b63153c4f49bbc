package protocol

import (
	"github.com/automoto/burrow/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetPosition    uint = 10
	SyncIDNetOrientation uint = 11
	SyncIDNetLocomotion  uint = 12
	SyncIDNetArena       uint = 13
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetPosition    uint8 = 10
	InterpIDNetOrientation uint8 = 11
)

// RegisterComponents registers all network components with necs for serialization.
// This must be called by both server and client before any network operations.
func RegisterComponents() error {
	if err := esync.RegisterComponent(
		SyncIDNetPosition,
		netcomponents.NetPositionData{},
		netcomponents.NetPosition,
		esync.WithInterpFn(InterpIDNetPosition, netcomponents.LerpNetPosition),
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetOrientation,
		netcomponents.NetOrientationData{},
		netcomponents.NetOrientation,
		esync.WithInterpFn(InterpIDNetOrientation, netcomponents.LerpNetOrientation),
	); err != nil {
		return err
	}

	// Locomotion: no interpolation (discrete ability state and timers)
	if err := esync.RegisterComponent(
		SyncIDNetLocomotion,
		netcomponents.NetLocomotionData{},
		netcomponents.NetLocomotion,
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetArena,
		netcomponents.NetArenaData{},
		netcomponents.NetArena,
	); err != nil {
		return err
	}

	return nil
}
