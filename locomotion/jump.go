package locomotion

import "github.com/automoto/burrow/config"

// updateJumpBuffer refreshes the buffer on a request and otherwise decays it.
func updateJumpBuffer(s *State, cfg *config.LocomotionConfig, requested bool, dt float64) {
	if requested {
		s.JumpBufferTimer = cfg.Jump.JumpBufferWindow
		return
	}
	s.JumpBufferTimer -= dt
}

// decideJump performs at most one jump per tick. A ground jump inside the
// coyote window wins over an air jump.
func decideJump(s *State, cfg *config.LocomotionConfig) Event {
	if s.JumpBufferTimer <= 0 {
		return 0
	}

	if s.CoyoteTimer > 0 {
		s.VelocityVertical = cfg.Jump.JumpForce
		s.JumpBufferTimer = 0
		s.CoyoteTimer = 0
		s.Flags.Jumping = true
		return EventJumped
	}

	if s.AirJumpsUsed < cfg.Jump.MaxAirJumps {
		s.VelocityVertical = cfg.Jump.JumpForce * cfg.Jump.AirJumpFactor
		s.AirJumpsUsed++
		s.JumpBufferTimer = 0
		s.Flags.Jumping = true
		return EventAirJumped
	}

	return 0
}
