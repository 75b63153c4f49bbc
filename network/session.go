package network

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/burrow/config"
	"github.com/automoto/burrow/locomotion"
	"github.com/automoto/burrow/shared/arena"
	"github.com/automoto/burrow/shared/messages"
	"github.com/automoto/burrow/shared/netconfig"
)

// ErrSessionClosed is returned by Update once the connection is gone.
var ErrSessionClosed = errors.New("session closed")

// correctionThreshold is the server/prediction distance worth logging.
const correctionThreshold = 0.25

// ArenaSource loads the client's copy of an arena by name.
type ArenaSource func(name string) (*arena.Arena, error)

// Session drives the locally controlled character for a joined client: it
// predicts every input and reconciles with each snapshot.
type Session struct {
	client *Client
	arenas ArenaSource
	tuning config.LocomotionConfig
	input  config.InputConfig

	predictor *Predictor
	arena     *arena.Arena
}

// NewSession wraps a connecting client. tuning is the client's copy of the
// server tuning; the join reply overrides the variant and look settings.
func NewSession(client *Client, tuning config.LocomotionConfig, arenas ArenaSource) *Session {
	return &Session{
		client: client,
		arenas: arenas,
		tuning: tuning,
		input:  config.Input,
	}
}

// Predictor returns the local predictor, nil until the first snapshot that
// contains the controlled character.
func (s *Session) Predictor() *Predictor {
	return s.predictor
}

// Update runs one client tick. It returns a zero result while the join or the
// first snapshot is still pending.
func (s *Session) Update(input messages.PlayerInput) (locomotion.Result, error) {
	switch s.client.State() {
	case StateError:
		return locomotion.Result{}, fmt.Errorf("%w: %v", ErrSessionClosed, s.client.LastError())
	case StateDisconnected:
		return locomotion.Result{}, ErrSessionClosed
	case StateJoinedGame:
	default:
		return locomotion.Result{}, nil
	}

	if snap := s.client.LatestSnapshot(); snap != nil {
		if st, ok := FindState(*snap, s.client.NetworkID()); ok {
			if err := s.applyServerState(st); err != nil {
				return locomotion.Result{}, err
			}
		}
	}
	if s.predictor == nil {
		return locomotion.Result{}, nil
	}

	input.MoveX, input.MoveY = s.input.ApplyDeadzone(input.MoveX, input.MoveY)
	sent, res := s.predictor.Next(input)
	if err := s.client.SendInput(sent); err != nil {
		return res, fmt.Errorf("send input: %w", err)
	}
	return res, nil
}

func (s *Session) applyServerState(st ServerState) error {
	if s.predictor == nil {
		join := s.client.Join()
		a, err := s.arenas(join.Arena)
		if err != nil {
			return fmt.Errorf("load arena %q: %w", join.Arena, err)
		}
		s.arena = a

		tuning := s.tuning
		tuning.Variant = netconfig.Variant(join.Variant)
		if join.Sensitivity > 0 {
			tuning.Look.Sensitivity = join.Sensitivity
		}
		dt := 1.0 / float64(max(join.TickRate, 1))

		s.predictor = NewPredictor(tuning, a.NewBody(st.Position.Vec3()), dt)
		s.predictor.InvertPitch = join.InvertPitch
		log.Printf("[session] predicting in arena %s (variant %s)", join.Arena, tuning.Variant)
	}

	if miss := s.predictor.Reconcile(st.Locomotion, st.Position); miss > correctionThreshold {
		log.Printf("[session] corrected prediction by %.3f at input %d", miss, st.Locomotion.LastSequence)
	}
	return nil
}
