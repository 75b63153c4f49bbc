package config

import "github.com/automoto/burrow/shared/netconfig"

// LookConfig contains mouse-look configuration values
type LookConfig struct {
	Sensitivity float64 `yaml:"sensitivity"`
	LookScale   float64 `yaml:"look_scale"` // Raw delta multiplier applied on top of Sensitivity
	MinPitch    float64 `yaml:"min_pitch"`  // Degrees, negative looks up
	MaxPitch    float64 `yaml:"max_pitch"`  // Degrees, positive looks down
}

// MovementConfig contains ground movement configuration values
type MovementConfig struct {
	WalkSpeed      float64 `yaml:"walk_speed"`
	SprintSpeed    float64 `yaml:"sprint_speed"`
	Acceleration   float64 `yaml:"acceleration"`    // Exponential smoothing rate for horizontal speed
	RotationSpeed  float64 `yaml:"rotation_speed"`  // Body facing smoothing rate
	IntentDeadzone float64 `yaml:"intent_deadzone"` // Input magnitude below which intent is zero
}

// JumpConfig contains jump, gravity and grounding configuration values
type JumpConfig struct {
	JumpForce        float64 `yaml:"jump_force"`
	AirJumpFactor    float64 `yaml:"air_jump_factor"`    // Air jumps use JumpForce * AirJumpFactor
	MaxAirJumps      int     `yaml:"max_air_jumps"`
	Gravity          float64 `yaml:"gravity"`
	JumpBufferWindow float64 `yaml:"jump_buffer_window"` // Seconds an early jump press is remembered
	CoyoteTime       float64 `yaml:"coyote_time"`        // Seconds after leaving ground a jump still counts as grounded
	GroundStick      float64 `yaml:"ground_stick"`       // Vertical velocity held while standing
	FallingThreshold float64 `yaml:"falling_threshold"`  // Vertical velocity below which an airborne character is falling
}

// BurrowConfig contains burrow ability configuration values
type BurrowConfig struct {
	BurrowSpeed float64 `yaml:"burrow_speed"` // Homing creep speed along the surface
	BurrowTime  float64 `yaml:"burrow_time"`  // Seconds before launch is available
	LaunchForce float64 `yaml:"launch_force"`
}

// DashConfig contains dash ability configuration values (extended variant)
type DashConfig struct {
	DashSpeed    float64 `yaml:"dash_speed"`
	DashDuration float64 `yaml:"dash_duration"`
	DashCooldown float64 `yaml:"dash_cooldown"`
}

// VisualConfig contains cosmetic follow-up configuration values
type VisualConfig struct {
	BurrowSink    float64 `yaml:"burrow_sink"`    // How far the visual capsule sinks while burrowed
	SinkDuration  float64 `yaml:"sink_duration"`  // Seconds for the sink/rise tween
	FacingEnabled bool    `yaml:"facing_enabled"` // Ease BodyYaw toward the movement heading
}

// LocomotionConfig groups every tunable read by the locomotion machine
type LocomotionConfig struct {
	Variant  netconfig.Variant `yaml:"variant"`
	Look     LookConfig        `yaml:"look"`
	Movement MovementConfig    `yaml:"movement"`
	Jump     JumpConfig        `yaml:"jump"`
	Burrow   BurrowConfig      `yaml:"burrow"`
	Dash     DashConfig        `yaml:"dash"`
	Visual   VisualConfig      `yaml:"visual"`
}

// Extended reports whether the dash and power-select features are enabled.
func (c *LocomotionConfig) Extended() bool {
	return c.Variant == netconfig.VariantExtended
}

// ArenaConfig contains reference collision world configuration values
type ArenaConfig struct {
	// Character capsule approximation
	BodyRadius float64
	BodyHeight float64
	StepHeight float64 // Surfaces whose top is within this of the feet do not block sideways
	GroundSkin float64 // Distance under the feet still counted as standing

	ProbeDistance float64 // Downward probe length for surface classification

	// Broadphase grid
	CellSize  int
	SpaceSize int
	UnitScale float64 // Resolv units per world unit
}

// ServerConfig contains dedicated server configuration values
type ServerConfig struct {
	Port           uint
	TickRate       int
	Name           string
	Version        string
	MaxPlayers     int
	MaxInputQueue  int // Pending inputs kept per player
	ProfileAppName string
	Verbose        bool // Log every ability event
}

// Global configuration instances
var Locomotion LocomotionConfig
var Arena ArenaConfig
var Server ServerConfig

// DefaultLocomotion returns the shipped tuning for the extended controller.
func DefaultLocomotion() LocomotionConfig {
	return LocomotionConfig{
		Variant: netconfig.VariantExtended,
		Look: LookConfig{
			Sensitivity: 2.0,
			LookScale:   100.0,
			MinPitch:    -35.0,
			MaxPitch:    70.0,
		},
		Movement: MovementConfig{
			WalkSpeed:      4.0,
			SprintSpeed:    7.0,
			Acceleration:   12.0,
			RotationSpeed:  12.0,
			IntentDeadzone: 0.1,
		},
		Jump: JumpConfig{
			JumpForce:        7.0,
			AirJumpFactor:    0.9,
			MaxAirJumps:      1,
			Gravity:          -20.0,
			JumpBufferWindow: 0.15,
			CoyoteTime:       0.15,
			GroundStick:      -2.0,
			FallingThreshold: -1.0,
		},
		Burrow: BurrowConfig{
			BurrowSpeed: 10.0,
			BurrowTime:  1.0,
			LaunchForce: 14.0,
		},
		Dash: DashConfig{
			DashSpeed:    18.0,
			DashDuration: 0.2,
			DashCooldown: 1.5,
		},
		Visual: VisualConfig{
			BurrowSink:    1.5,
			SinkDuration:  0.35,
			FacingEnabled: true,
		},
	}
}

func init() {
	Locomotion = DefaultLocomotion()

	Arena = ArenaConfig{
		BodyRadius:    0.5,
		BodyHeight:    2.0,
		StepHeight:    0.3,
		GroundSkin:    0.05,
		ProbeDistance: 1.5,
		CellSize:      16,
		SpaceSize:     4096,
		UnitScale:     16.0,
	}

	Server = ServerConfig{
		Port:           7373,
		TickRate:       50,
		Name:           "Burrow Server",
		MaxPlayers:     16,
		MaxInputQueue:  8,
		ProfileAppName: "burrow",
	}
}
