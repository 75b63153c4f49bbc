package locomotion

import (
	"github.com/automoto/burrow/config"
	"github.com/automoto/burrow/shared/gamemath"
)

// Controller binds one character's state to its environment and tuning.
type Controller struct {
	State  State
	Visual VisualOffset
	Config *config.LocomotionConfig
	Env    Environment
}

// NewController returns a controller for a character spawned facing yaw. A nil
// cfg uses the global locomotion tuning.
func NewController(cfg *config.LocomotionConfig, env Environment, yaw float64) *Controller {
	if cfg == nil {
		cfg = &config.Locomotion
	}
	return &Controller{
		State:  NewState(yaw),
		Config: cfg,
		Env:    env,
	}
}

// Tick advances the state machine and the cosmetic offset by one frame.
func (c *Controller) Tick(in Input) Result {
	res := Advance(&c.State, c.Config, in, c.Env)
	c.Visual.Update(&c.State, c.Config, gamemath.Sanitize(in.DT))
	return res
}
