package network

import (
	"math"
	"testing"

	"github.com/automoto/burrow/config"
	"github.com/automoto/burrow/locomotion"
	"github.com/automoto/burrow/shared/arena"
	"github.com/automoto/burrow/shared/gamemath"
	"github.com/automoto/burrow/shared/messages"
	"github.com/automoto/burrow/shared/netcomponents"
	"github.com/automoto/burrow/shared/netconfig"
)

const tickDT = 0.02

func newBody() *arena.Body {
	a := arena.New(config.Arena)
	a.AddSurface(gamemath.NewBox(-20, -20, 40, 40, -1, 0), netconfig.SurfaceBurrowable)
	return a.NewBody(gamemath.Vec3{})
}

// authority replays inputs the way the server does.
type authority struct {
	state locomotion.State
	clock float64
	cfg   config.LocomotionConfig
	body  *arena.Body
	prev  [config.ActionCount]bool
	seq   uint32
}

func (a *authority) apply(input messages.PlayerInput) {
	a.clock += tickDT
	in := messages.ToLocomotion(input, a.prev, tickDT, a.clock)
	a.prev = input.Held()
	locomotion.Advance(&a.state, &a.cfg, in, a.body)
	a.seq = input.Sequence
}

func (a *authority) snapshot() (netcomponents.NetLocomotionData, netcomponents.NetPositionData) {
	p := a.body.Position()
	return netcomponents.NetLocomotionData{State: a.state, Clock: a.clock, LastSequence: a.seq},
		netcomponents.NetPositionData{X: p.X, Y: p.Y, Z: p.Z}
}

func scriptedInput(i int) messages.PlayerInput {
	in := messages.NewPlayerInput(0)
	in.MoveY = 1
	in.LookX = 0.1
	if i == 5 || i == 12 {
		in.Actions[config.ActionJump] = true
	}
	if i > 20 {
		in.Actions[config.ActionRun] = true
	}
	return in
}

func TestPredictionBuffer_Unacknowledged(t *testing.T) {
	var pb PredictionBuffer
	for seq := uint32(1); seq <= 70; seq++ {
		pb.Store(messages.NewPlayerInput(seq), gamemath.Vec3{X: float64(seq)})
	}

	if _, ok := pb.Get(3); ok {
		t.Errorf("sequence 3 should have been overwritten")
	}
	pending := pb.GetUnacknowledged(65)
	if len(pending) != 5 {
		t.Fatalf("unacknowledged = %d records, want 5", len(pending))
	}
	if pending[0].Input.Sequence != 66 {
		t.Errorf("first unacknowledged = %d, want 66", pending[0].Input.Sequence)
	}
	if got := pb.PredictionError(70, gamemath.Vec3{X: 67}); got != 3 {
		t.Errorf("PredictionError() = %v, want 3", got)
	}
}

func TestPredictor_MatchesAuthority(t *testing.T) {
	cfg := config.DefaultLocomotion()
	p := NewPredictor(cfg, newBody(), tickDT)
	auth := &authority{state: locomotion.NewState(0), cfg: cfg, body: newBody()}

	var sent []messages.PlayerInput
	for i := 0; i < 40; i++ {
		in, _ := p.Next(scriptedInput(i))
		sent = append(sent, in)
	}
	predicted := p.Body.Position()

	// The server has processed 30 of the 40 inputs.
	for _, in := range sent[:30] {
		auth.apply(in)
	}
	loco, pos := auth.snapshot()
	miss := p.Reconcile(loco, pos)

	if miss > 1e-9 {
		t.Errorf("prediction missed the server by %v", miss)
	}
	if d := p.Body.Position().Sub(predicted).Len(); d > 1e-9 {
		t.Errorf("replay moved the prediction by %v", d)
	}
	if p.Pending(loco.LastSequence) != 10 {
		t.Errorf("Pending() = %d, want 10", p.Pending(loco.LastSequence))
	}
}

func TestPredictor_ReconcileCorrectsDrift(t *testing.T) {
	cfg := config.DefaultLocomotion()
	p := NewPredictor(cfg, newBody(), tickDT)
	auth := &authority{state: locomotion.NewState(0), cfg: cfg, body: newBody()}

	var sent []messages.PlayerInput
	for i := 0; i < 20; i++ {
		in, _ := p.Next(scriptedInput(i))
		sent = append(sent, in)
	}
	for _, in := range sent[:15] {
		auth.apply(in)
	}

	// The server pushed the character sideways.
	loco, pos := auth.snapshot()
	pos.X += 2
	auth.body.SetPosition(pos.Vec3())
	for _, in := range sent[15:] {
		auth.apply(in)
	}

	miss := p.Reconcile(loco, pos)
	if math.Abs(miss-2) > 1e-6 {
		t.Errorf("miss = %v, want 2", miss)
	}
	if d := p.Body.Position().Sub(auth.body.Position()).Len(); d > 1e-9 {
		t.Errorf("replayed position differs from the server by %v", d)
	}
	if p.State != auth.state {
		t.Errorf("replayed state differs from the server")
	}
}
