// Package netconfig defines lightweight types shared between the locomotion
// core, the server and the client. It must have zero dependencies on any
// graphics library so the dedicated server binary stays headless.
package netconfig

// AbilityStateID identifies the exclusive ability state of a character.
type AbilityStateID int

const (
	AbilityIdle AbilityStateID = iota
	AbilityBurrowing
	AbilityReadyToLaunch
	AbilityDashing
)

// AbilityStateNames maps AbilityStateID to a short name for logs and events.
var AbilityStateNames = map[AbilityStateID]string{
	AbilityIdle:          "idle",
	AbilityBurrowing:     "burrowing",
	AbilityReadyToLaunch: "ready_to_launch",
	AbilityDashing:       "dashing",
}

func (s AbilityStateID) String() string {
	if name, ok := AbilityStateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Exclusive reports whether the state fully overrides gravity and movement.
func (s AbilityStateID) Exclusive() bool {
	return s == AbilityBurrowing || s == AbilityReadyToLaunch || s == AbilityDashing
}

// Burrowed reports whether the character is under the surface.
func (s AbilityStateID) Burrowed() bool {
	return s == AbilityBurrowing || s == AbilityReadyToLaunch
}

// PowerMode is the currently selected ability in the extended variant.
type PowerMode int

const (
	PowerBurrow PowerMode = iota
	PowerDash
)

func (p PowerMode) String() string {
	switch p {
	case PowerBurrow:
		return "burrow"
	case PowerDash:
		return "dash"
	}
	return "unknown"
}

// SurfaceClass is the capability classification of a surface.
type SurfaceClass int

const (
	SurfaceNone SurfaceClass = iota
	SurfaceSolid
	SurfaceBurrowable
)

// SurfaceClassNames maps the level-file names to classes. "feathers" is the
// burrowable material.
var SurfaceClassNames = map[string]SurfaceClass{
	"":         SurfaceSolid,
	"solid":    SurfaceSolid,
	"feathers": SurfaceBurrowable,
}

// Variant selects which controller feature set is active.
type Variant string

const (
	VariantBase     Variant = "base"
	VariantExtended Variant = "extended"
)

// ActionID represents a logical input action.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionJump
	ActionAbility
	ActionSelectBurrow
	ActionSelectDash
	ActionRun
	ActionCount // Must be last - used for array sizing
)
