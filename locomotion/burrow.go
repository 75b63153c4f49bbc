package locomotion

import (
	"github.com/automoto/burrow/config"
	"github.com/automoto/burrow/shared/gamemath"
	"github.com/automoto/burrow/shared/netconfig"
)

// timerEpsilon absorbs float drift when a duration is consumed in dt steps.
const timerEpsilon = 1e-9

func enterBurrow(s *State, cfg *config.LocomotionConfig, anchor SurfaceHandle) Event {
	s.Ability = netconfig.AbilityBurrowing
	s.AbilityTimer = cfg.Burrow.BurrowTime
	s.BurrowAnchor = anchor
	s.VelocityVertical = 0
	return EventBurrowStarted
}

// advanceBurrowTimer counts the burrow phase down. Expiry only unlocks the
// launch; there is no automatic exit from the burrow.
func advanceBurrowTimer(s *State, dt float64) Event {
	if s.Ability != netconfig.AbilityBurrowing {
		return 0
	}
	s.AbilityTimer -= dt
	if s.AbilityTimer > timerEpsilon {
		return 0
	}
	s.AbilityTimer = 0
	s.Ability = netconfig.AbilityReadyToLaunch
	return EventLaunchReady
}

func launch(s *State, cfg *config.LocomotionConfig) Event {
	s.Ability = netconfig.AbilityIdle
	s.AbilityTimer = 0
	s.BurrowAnchor = NoSurface
	s.VelocityVertical = cfg.Burrow.LaunchForce
	s.JumpBufferTimer = 0
	s.CoyoteTimer = 0
	s.Flags.Jumping = true
	return EventLaunched
}

// burrowDisplacement creeps toward the closest point of the anchor surface.
// A dangling anchor yields no motion.
func burrowDisplacement(s *State, cfg *config.LocomotionConfig, dt float64, env Environment) gamemath.Vec3 {
	if s.BurrowAnchor == NoSurface {
		return gamemath.Zero
	}
	pos := env.Position()
	next := pos.Add(s.MoveIntent.Scale(cfg.Burrow.BurrowSpeed * dt))
	closest, ok := env.ClosestPoint(s.BurrowAnchor, next)
	if !ok || !closest.IsFinite() {
		return gamemath.Zero
	}
	return closest.Sub(pos)
}
