package locomotion

import "github.com/automoto/burrow/config"

// updateGround applies the grounded report from the previous move. Coyote
// time and the air-jump budget reset only on the landing edge.
func updateGround(s *State, cfg *config.LocomotionConfig, dt float64) Event {
	var events Event
	wasGrounded := s.Grounded
	s.Grounded = s.GroundContact
	s.Flags.Grounded = s.Grounded

	if !s.Grounded {
		s.CoyoteTimer -= dt
		return events
	}

	if !wasGrounded {
		s.CoyoteTimer = cfg.Jump.CoyoteTime
		s.AirJumpsUsed = 0
		events |= EventLanded
	}
	if s.VelocityVertical < 0 {
		s.VelocityVertical = cfg.Jump.GroundStick
	}
	return events
}
