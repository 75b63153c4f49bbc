package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/automoto/burrow/shared/netconfig"
	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is returned when a tuning file describes an unusable controller.
var ErrInvalidTuning = errors.New("invalid tuning")

// LoadTuning reads a YAML tuning file. Keys missing from the file keep their
// default values.
func LoadTuning(path string) (*LocomotionConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTuning(data)
}

// ParseTuning overlays YAML tuning data on the defaults and validates it.
func ParseTuning(data []byte) (*LocomotionConfig, error) {
	cfg := DefaultLocomotion()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse tuning yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects tunings the locomotion machine cannot run with.
func (c *LocomotionConfig) Validate() error {
	switch c.Variant {
	case netconfig.VariantBase, netconfig.VariantExtended:
	default:
		return fmt.Errorf("%w: unknown variant %q", ErrInvalidTuning, c.Variant)
	}
	if c.Look.MinPitch > c.Look.MaxPitch {
		return fmt.Errorf("%w: min_pitch %.2f above max_pitch %.2f", ErrInvalidTuning, c.Look.MinPitch, c.Look.MaxPitch)
	}
	if c.Jump.MaxAirJumps < 0 {
		return fmt.Errorf("%w: max_air_jumps must not be negative", ErrInvalidTuning)
	}
	if c.Burrow.BurrowTime <= 0 {
		return fmt.Errorf("%w: burrow_time must be positive", ErrInvalidTuning)
	}
	if c.Dash.DashDuration <= 0 || c.Dash.DashCooldown < 0 {
		return fmt.Errorf("%w: dash_duration must be positive and dash_cooldown not negative", ErrInvalidTuning)
	}
	if c.Jump.JumpBufferWindow < 0 || c.Jump.CoyoteTime < 0 {
		return fmt.Errorf("%w: jump windows must not be negative", ErrInvalidTuning)
	}
	return nil
}
