package locomotion

import (
	"github.com/automoto/burrow/shared/gamemath"
	"github.com/automoto/burrow/shared/netconfig"
)

// SurfaceHandle is a weak reference into an external surface registry. It is
// never owned; the registry may drop the surface at any time.
type SurfaceHandle uint32

// NoSurface is the zero handle and refers to nothing.
const NoSurface SurfaceHandle = 0

// State is the per-character locomotion memory. It is a plain value so it can
// be copied for prediction and replay.
type State struct {
	// Orientation in degrees
	Yaw     float64
	Pitch   float64
	BodyYaw float64 // Cosmetic facing, eased toward the movement heading

	VelocityVertical float64
	HorizontalSpeed  float64
	MoveIntent       gamemath.Vec3 // Unit vector or zero, rebuilt every tick

	// Grounding memory
	Grounded        bool
	GroundContact   bool // Last grounded report from move-and-collide
	CoyoteTimer     float64
	JumpBufferTimer float64
	AirJumpsUsed    int

	// Ability state machine
	Ability               netconfig.AbilityStateID
	Power                 netconfig.PowerMode
	BurrowAnchor          SurfaceHandle
	AbilityTimer          float64 // Seconds left in the current timed ability phase
	DashDirection         gamemath.Vec3
	LastDashStart         float64
	HasDashed             bool
	DashCooldownRemaining float64

	Flags Flags
}

// Flags are the read-only outputs consumed by animation, audio and UI.
type Flags struct {
	Grounded  bool
	Running   bool
	Jumping   bool // True only on the tick a jump or launch happened
	Falling   bool
	Burrowing bool
	Dashing   bool
}

// AbilityActive reports whether an exclusive ability owns the character.
func (f Flags) AbilityActive() bool {
	return f.Burrowing || f.Dashing
}

// NewState returns the state of a freshly spawned character facing yaw.
func NewState(yaw float64) State {
	return State{
		Yaw:     yaw,
		BodyYaw: yaw,
	}
}
