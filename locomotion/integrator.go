package locomotion

import (
	"github.com/automoto/burrow/config"
	"github.com/automoto/burrow/shared/gamemath"
)

// integrate eases the horizontal speed, applies gravity and composes the
// tick's displacement. It only runs while no exclusive ability is active.
func integrate(s *State, cfg *config.LocomotionConfig, dt float64) gamemath.Vec3 {
	target := cfg.Movement.WalkSpeed
	if s.Flags.Running {
		target = cfg.Movement.SprintSpeed
	}
	target *= s.MoveIntent.Len()
	s.HorizontalSpeed = gamemath.Lerp(s.HorizontalSpeed, target, cfg.Movement.Acceleration*dt)

	s.VelocityVertical += cfg.Jump.Gravity * dt
	s.Flags.Falling = s.VelocityVertical < cfg.Jump.FallingThreshold && !s.Grounded

	velocity := s.MoveIntent.Scale(s.HorizontalSpeed).Add(gamemath.Up.Scale(s.VelocityVertical))
	return velocity.Scale(dt)
}
