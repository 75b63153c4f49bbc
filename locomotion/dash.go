package locomotion

import (
	"github.com/automoto/burrow/config"
	"github.com/automoto/burrow/shared/gamemath"
	"github.com/automoto/burrow/shared/netconfig"
)

// dashReady reports whether the cooldown has elapsed on the monotonic clock.
// Triggering exactly at the boundary is allowed. Clocks built by summing tick
// durations land a rounding error short of it, hence the epsilon.
func dashReady(s *State, cfg *config.LocomotionConfig, now float64) bool {
	if !s.HasDashed {
		return true
	}
	return now-s.LastDashStart >= cfg.Dash.DashCooldown-timerEpsilon
}

func updateDashCooldown(s *State, cfg *config.LocomotionConfig, now float64) {
	if !s.HasDashed {
		s.DashCooldownRemaining = 0
		return
	}
	remaining := cfg.Dash.DashCooldown - (now - s.LastDashStart)
	if remaining <= timerEpsilon {
		remaining = 0
	}
	s.DashCooldownRemaining = gamemath.ClampFloat(remaining, 0, cfg.Dash.DashCooldown)
}

func enterDash(s *State, cfg *config.LocomotionConfig, now float64) Event {
	dir := s.MoveIntent
	if dir.Len() < 0.1 {
		dir = gamemath.LookForward(s.Yaw, s.Pitch)
	}
	dir = dir.Flat().Normalize()
	if dir == gamemath.Zero {
		dir, _ = gamemath.YawBasis(s.Yaw)
	}

	s.Ability = netconfig.AbilityDashing
	s.AbilityTimer = cfg.Dash.DashDuration
	s.DashDirection = dir
	s.LastDashStart = now
	s.HasDashed = true
	return EventDashStarted
}

// dashDisplacement moves along the captured direction at constant speed and
// ends the dash once its duration has been spent.
func dashDisplacement(s *State, cfg *config.LocomotionConfig, dt float64) (gamemath.Vec3, Event) {
	delta := s.DashDirection.Scale(cfg.Dash.DashSpeed * dt)
	s.AbilityTimer -= dt
	if s.AbilityTimer > timerEpsilon {
		return delta, 0
	}
	s.Ability = netconfig.AbilityIdle
	s.AbilityTimer = 0
	s.DashDirection = gamemath.Zero
	return delta, EventDashEnded
}
