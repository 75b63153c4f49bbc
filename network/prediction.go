package network

import (
	"github.com/automoto/burrow/config"
	"github.com/automoto/burrow/locomotion"
	"github.com/automoto/burrow/shared/gamemath"
	"github.com/automoto/burrow/shared/messages"
	"github.com/automoto/burrow/shared/netcomponents"
)

const predictionBufferSize = 64

// InputRecord stores an input alongside the predicted position after applying it.
type InputRecord struct {
	Input     messages.PlayerInput
	Predicted gamemath.Vec3
}

// PredictionBuffer is a ring buffer that stores recent inputs and their
// predicted outcomes for server reconciliation.
type PredictionBuffer struct {
	history [predictionBufferSize]InputRecord
	nextSeq uint32
}

// Store saves an input and the resulting predicted position.
func (pb *PredictionBuffer) Store(input messages.PlayerInput, predicted gamemath.Vec3) {
	idx := input.Sequence % predictionBufferSize
	pb.history[idx] = InputRecord{
		Input:     input,
		Predicted: predicted,
	}
	pb.nextSeq = input.Sequence + 1
}

// Get retrieves a stored record by sequence number. Returns false if not found
// or if the slot has been overwritten.
func (pb *PredictionBuffer) Get(seq uint32) (InputRecord, bool) {
	idx := seq % predictionBufferSize
	record := pb.history[idx]
	if record.Input.Sequence != seq {
		return InputRecord{}, false
	}
	return record, true
}

// NextSeq returns the next expected sequence number.
func (pb *PredictionBuffer) NextSeq() uint32 {
	return pb.nextSeq
}

// GetUnacknowledged returns all stored inputs with sequence numbers greater
// than lastAcked and less than nextSeq (i.e. inputs the server hasn't
// confirmed yet).
func (pb *PredictionBuffer) GetUnacknowledged(lastAcked uint32) []InputRecord {
	var results []InputRecord
	for seq := lastAcked + 1; seq < pb.nextSeq; seq++ {
		if record, ok := pb.Get(seq); ok {
			results = append(results, record)
		}
	}
	return results
}

// PredictionError is the distance between the predicted and the server
// position for a given sequence.
func (pb *PredictionBuffer) PredictionError(seq uint32, server gamemath.Vec3) float64 {
	record, ok := pb.Get(seq)
	if !ok {
		return 0
	}
	return record.Predicted.Sub(server).Len()
}

// Body is the local collision proxy the predictor moves. arena.Body satisfies it.
type Body interface {
	locomotion.Environment
	SetPosition(p gamemath.Vec3)
}

// Predictor runs the locomotion machine locally for the controlled character
// and rewinds to the server state when a snapshot arrives.
type Predictor struct {
	State  locomotion.State
	Visual locomotion.VisualOffset
	Clock  float64
	Config config.LocomotionConfig
	Body   Body

	InvertPitch bool
	DT          float64

	buffer   PredictionBuffer
	prevHeld [config.ActionCount]bool
	seq      uint32
}

// NewPredictor starts prediction from a freshly spawned character.
func NewPredictor(cfg config.LocomotionConfig, body Body, dt float64) *Predictor {
	return &Predictor{
		State:  locomotion.NewState(0),
		Config: cfg,
		Body:   body,
		DT:     dt,
	}
}

// Next stamps input with the next sequence number, applies it locally and
// records it for replay. The stamped input is returned for sending.
func (p *Predictor) Next(input messages.PlayerInput) (messages.PlayerInput, locomotion.Result) {
	p.seq++
	input.Sequence = p.seq
	res := p.apply(input)
	p.Visual.Update(&p.State, &p.Config, p.DT)
	p.buffer.Store(input, p.Body.Position())
	return input, res
}

func (p *Predictor) apply(input messages.PlayerInput) locomotion.Result {
	p.Clock += p.DT
	in := messages.ToLocomotion(input, p.prevHeld, p.DT, p.Clock)
	if p.InvertPitch {
		in.LookY = -in.LookY
	}
	p.prevHeld = input.Held()
	return locomotion.Advance(&p.State, &p.Config, in, p.Body)
}

// Reconcile adopts the server state for the last acknowledged input and
// replays every input the server has not processed yet. It returns how far
// the earlier prediction was from the server position.
func (p *Predictor) Reconcile(server netcomponents.NetLocomotionData, pos netcomponents.NetPositionData) float64 {
	miss := p.buffer.PredictionError(server.LastSequence, pos.Vec3())

	p.State = server.State
	p.Clock = server.Clock
	p.Body.SetPosition(pos.Vec3())
	if record, ok := p.buffer.Get(server.LastSequence); ok {
		p.prevHeld = record.Input.Held()
	} else {
		p.prevHeld = [config.ActionCount]bool{}
	}

	for _, record := range p.buffer.GetUnacknowledged(server.LastSequence) {
		p.apply(record.Input)
		p.buffer.Store(record.Input, p.Body.Position())
	}
	return miss
}

// Pending reports how many inputs are waiting for server acknowledgement.
func (p *Predictor) Pending(lastAcked uint32) int {
	return len(p.buffer.GetUnacknowledged(lastAcked))
}
