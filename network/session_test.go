package network

import (
	"errors"
	"testing"

	"github.com/automoto/burrow/config"
	"github.com/automoto/burrow/shared/arena"
	"github.com/automoto/burrow/shared/gamemath"
	"github.com/automoto/burrow/shared/messages"
	"github.com/automoto/burrow/shared/netcomponents"
	"github.com/automoto/burrow/shared/netconfig"
)

func testArenas(name string) (*arena.Arena, error) {
	if name != "flat" {
		return nil, errors.New("unknown arena")
	}
	a := arena.New(config.Arena)
	a.AddSurface(gamemath.NewBox(-20, -20, 40, 40, -1, 0), netconfig.SurfaceSolid)
	return a, nil
}

func joinedClient(arenaName string) *Client {
	c := NewClient()
	c.state = StateJoinedGame
	c.join = messages.JoinAccepted{
		NetworkID:   4,
		TickRate:    50,
		Arena:       arenaName,
		Variant:     string(netconfig.VariantBase),
		Sensitivity: 3,
		InvertPitch: true,
	}
	return c
}

func TestSession_WaitsForJoin(t *testing.T) {
	c := NewClient()
	c.state = StateConnecting
	s := NewSession(c, config.DefaultLocomotion(), testArenas)

	res, err := s.Update(messages.NewPlayerInput(0))
	if err != nil || res.Events != 0 {
		t.Fatalf("Update() = %v, %v while connecting", res, err)
	}

	c.setError(errors.New("boom"))
	if _, err := s.Update(messages.NewPlayerInput(0)); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("Update() error = %v, want ErrSessionClosed", err)
	}
}

func TestSession_PredictorFromJoin(t *testing.T) {
	s := NewSession(joinedClient("flat"), config.DefaultLocomotion(), testArenas)

	if _, err := s.Update(messages.NewPlayerInput(0)); err != nil {
		t.Fatalf("Update() before the first snapshot = %v", err)
	}
	if s.Predictor() != nil {
		t.Fatalf("predictor created without a snapshot")
	}

	st := ServerState{Position: netcomponents.NetPositionData{X: 1, Z: 2}}
	if err := s.applyServerState(st); err != nil {
		t.Fatalf("applyServerState() = %v", err)
	}

	p := s.Predictor()
	if p.Config.Variant != netconfig.VariantBase || p.Config.Look.Sensitivity != 3 || !p.InvertPitch {
		t.Errorf("predictor config = %+v, invert = %v", p.Config.Look, p.InvertPitch)
	}
	if p.DT != 0.02 {
		t.Errorf("DT = %v, want 0.02", p.DT)
	}
	if got := p.Body.Position(); got != (gamemath.Vec3{X: 1, Z: 2}) {
		t.Errorf("body position = %+v", got)
	}

	// Without a connection the predicted input cannot be sent.
	if _, err := s.Update(messages.NewPlayerInput(0)); err == nil {
		t.Errorf("Update() sent input without a connection")
	}
}

func TestSession_UnknownArena(t *testing.T) {
	s := NewSession(joinedClient("mystery"), config.DefaultLocomotion(), testArenas)
	if err := s.applyServerState(ServerState{}); err == nil {
		t.Fatalf("applyServerState() accepted an unknown arena")
	}
}

func TestSession_AppliesStickDeadzone(t *testing.T) {
	tests := []struct {
		name       string
		x, y       float64
		wantIntent bool
	}{
		{"inside deadzone", 0.15, 0.15, false},
		{"outside deadzone", 0.5, 0.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(joinedClient("flat"), config.DefaultLocomotion(), testArenas)
			if err := s.applyServerState(ServerState{}); err != nil {
				t.Fatalf("applyServerState() = %v", err)
			}

			in := messages.NewPlayerInput(0)
			in.MoveX, in.MoveY = tt.x, tt.y
			_, _ = s.Update(in)

			moving := s.Predictor().State.MoveIntent != gamemath.Zero
			if moving != tt.wantIntent {
				t.Errorf("move intent = %+v, want moving %v", s.Predictor().State.MoveIntent, tt.wantIntent)
			}
		})
	}
}
