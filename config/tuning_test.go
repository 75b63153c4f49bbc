package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/automoto/burrow/shared/netconfig"
)

func TestLoadTuning(t *testing.T) {
	tests := []struct {
		name       string
		createFile bool
		content    string
		wantErr    bool
		validate   func(t *testing.T, cfg *LocomotionConfig, err error)
	}{
		{
			name:       "overrides keep unspecified defaults",
			createFile: true,
			content: `variant: base
jump:
  jump_force: 9.5
  max_air_jumps: 2
burrow:
  burrow_time: 0.5
`,
			validate: func(t *testing.T, cfg *LocomotionConfig, err error) {
				if cfg.Variant != netconfig.VariantBase {
					t.Errorf("Variant = %q, want %q", cfg.Variant, netconfig.VariantBase)
				}
				if cfg.Jump.JumpForce != 9.5 {
					t.Errorf("Jump.JumpForce = %v, want 9.5", cfg.Jump.JumpForce)
				}
				if cfg.Jump.MaxAirJumps != 2 {
					t.Errorf("Jump.MaxAirJumps = %d, want 2", cfg.Jump.MaxAirJumps)
				}
				if cfg.Burrow.BurrowTime != 0.5 {
					t.Errorf("Burrow.BurrowTime = %v, want 0.5", cfg.Burrow.BurrowTime)
				}
				if cfg.Jump.Gravity != -20 {
					t.Errorf("Jump.Gravity = %v, want default -20", cfg.Jump.Gravity)
				}
				if cfg.Dash.DashCooldown != 1.5 {
					t.Errorf("Dash.DashCooldown = %v, want default 1.5", cfg.Dash.DashCooldown)
				}
			},
		},
		{
			name:       "missing file",
			createFile: false,
			wantErr:    true,
			validate: func(t *testing.T, cfg *LocomotionConfig, err error) {
				if !os.IsNotExist(err) {
					t.Errorf("want not-exist error, got %v", err)
				}
			},
		},
		{
			name:       "malformed yaml",
			createFile: true,
			content:    "jump:\n  jump_force: [7\n",
			wantErr:    true,
			validate: func(t *testing.T, cfg *LocomotionConfig, err error) {
				if err == nil || !strings.Contains(err.Error(), "yaml") {
					t.Errorf("want yaml parse error, got %v", err)
				}
			},
		},
		{
			name:       "inverted pitch range",
			createFile: true,
			content:    "look:\n  min_pitch: 80\n  max_pitch: 10\n",
			wantErr:    true,
			validate: func(t *testing.T, cfg *LocomotionConfig, err error) {
				if !errors.Is(err, ErrInvalidTuning) {
					t.Errorf("want ErrInvalidTuning, got %v", err)
				}
			},
		},
		{
			name:       "unknown variant",
			createFile: true,
			content:    "variant: turbo\n",
			wantErr:    true,
			validate: func(t *testing.T, cfg *LocomotionConfig, err error) {
				if !errors.Is(err, ErrInvalidTuning) {
					t.Errorf("want ErrInvalidTuning, got %v", err)
				}
			},
		},
		{
			name:       "empty file is the default tuning",
			createFile: true,
			content:    "",
			validate: func(t *testing.T, cfg *LocomotionConfig, err error) {
				if *cfg != DefaultLocomotion() {
					t.Errorf("empty file should yield defaults, got %+v", *cfg)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tuning.yaml")
			if tt.createFile {
				if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
					t.Fatalf("write tuning file: %v", err)
				}
			}

			cfg, err := LoadTuning(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadTuning() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && cfg == nil {
				t.Fatalf("LoadTuning() returned nil config")
			}
			if tt.validate != nil {
				tt.validate(t, cfg, err)
			}
		})
	}
}

func TestInputDeadzone(t *testing.T) {
	in := InputConfig{AnalogDeadzone: 0.25}

	if x, y := in.ApplyDeadzone(0.1, 0.1); x != 0 || y != 0 {
		t.Errorf("ApplyDeadzone(0.1, 0.1) = (%v, %v), want zeroed", x, y)
	}
	if x, y := in.ApplyDeadzone(0.5, -0.2); x != 0.5 || y != -0.2 {
		t.Errorf("ApplyDeadzone(0.5, -0.2) = (%v, %v), want unchanged", x, y)
	}
}

func TestActionNamesCoverEveryAction(t *testing.T) {
	for id := ActionNone + 1; id < ActionCount; id++ {
		if ActionNames[id] == "" {
			t.Errorf("action %d has no name", id)
		}
	}
}
