package systems

import (
	"github.com/automoto/burrow/components"
	"github.com/automoto/burrow/shared/messages"
	"github.com/yohamta/donburi"
)

// QueueInput stores a network input for the next ticks. Inputs that are not
// newer than everything already seen are dropped. When the queue is full the
// oldest pending input is discarded. Returns false for dropped inputs.
func QueueInput(entry *donburi.Entry, in messages.PlayerInput, max int) bool {
	pi := components.PlayerInput.Get(entry)

	newest := pi.LastSequence
	if n := len(pi.Queue); n > 0 {
		newest = pi.Queue[n-1].Sequence
	}
	if in.Sequence <= newest {
		return false
	}

	if max > 0 && len(pi.Queue) >= max {
		copy(pi.Queue, pi.Queue[1:])
		pi.Queue = pi.Queue[:len(pi.Queue)-1]
	}
	pi.Queue = append(pi.Queue, in)
	return true
}

// consumeInput moves the oldest queued input into the current tick. With an
// empty queue the held buttons and stick carry over so a late packet does not
// read as a release; look deltas do not repeat.
func consumeInput(pi *components.PlayerInputData) {
	pi.PreviousInput = pi.CurrentInput

	if len(pi.Queue) == 0 {
		pi.LookX, pi.LookY = 0, 0
		return
	}

	next := pi.Queue[0]
	pi.Queue[0] = messages.PlayerInput{}
	pi.Queue = pi.Queue[1:]

	pi.CurrentInput = next.Held()
	pi.MoveX, pi.MoveY = next.MoveX, next.MoveY
	pi.LookX, pi.LookY = next.LookX, next.LookY
	pi.LastSequence = next.Sequence
}
