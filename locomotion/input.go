package locomotion

import (
	"github.com/automoto/burrow/shared/gamemath"
	"github.com/automoto/burrow/shared/netconfig"
)

// Input is everything the machine reads from the player for one tick.
type Input struct {
	// Raw look delta
	LookX, LookY float64
	// Movement axes in [-1, 1]; MoveY is forward
	MoveX, MoveY float64

	// Button edges for this tick
	Jump         bool
	Ability      bool
	SelectBurrow bool
	SelectDash   bool

	// Held state
	Run bool

	DT  float64 // Tick duration in seconds
	Now float64 // Monotonic clock in seconds
}

// GroundProbe is the surface classification under the character's feet.
type GroundProbe struct {
	Hit     bool
	Class   netconfig.SurfaceClass
	Surface SurfaceHandle
}

// Burrowable reports whether the probed surface accepts the burrow ability.
func (p GroundProbe) Burrowable() bool {
	return p.Hit && p.Class == netconfig.SurfaceBurrowable && p.Surface != NoSurface
}

// MoveResult is what move-and-collide actually did with a displacement.
type MoveResult struct {
	Applied  gamemath.Vec3
	Grounded bool
}

// Environment is the world as seen by one character. Move-and-collide is the
// only way the machine changes world position.
type Environment interface {
	Position() gamemath.Vec3
	ProbeGround() GroundProbe
	MoveAndCollide(delta gamemath.Vec3) MoveResult
	// ClosestPoint returns the point on the surface nearest to p. ok is false
	// when the handle no longer resolves.
	ClosestPoint(surface SurfaceHandle, p gamemath.Vec3) (closest gamemath.Vec3, ok bool)
}

// sanitize clamps axes and replaces non-finite values so a bad input tick
// never propagates NaN into the state.
func sanitize(in Input) Input {
	in.LookX = gamemath.Sanitize(in.LookX)
	in.LookY = gamemath.Sanitize(in.LookY)
	in.MoveX = gamemath.ClampFloat(gamemath.Sanitize(in.MoveX), -1, 1)
	in.MoveY = gamemath.ClampFloat(gamemath.Sanitize(in.MoveY), -1, 1)
	in.DT = gamemath.Sanitize(in.DT)
	in.Now = gamemath.Sanitize(in.Now)
	return in
}
