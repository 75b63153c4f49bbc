package locomotion

import (
	"strings"

	"github.com/automoto/burrow/shared/gamemath"
)

// Event is a bit set of discrete things that happened during one tick.
type Event uint16

const (
	EventLanded Event = 1 << iota
	EventJumped
	EventAirJumped
	EventBurrowStarted
	EventLaunchReady
	EventLaunched
	EventDashStarted
	EventDashEnded
)

var eventNames = []struct {
	ev   Event
	name string
}{
	{EventLanded, "landed"},
	{EventJumped, "jumped"},
	{EventAirJumped, "air_jumped"},
	{EventBurrowStarted, "burrow_started"},
	{EventLaunchReady, "launch_ready"},
	{EventLaunched, "launched"},
	{EventDashStarted, "dash_started"},
	{EventDashEnded, "dash_ended"},
}

// Has reports whether every event in o is set.
func (e Event) Has(o Event) bool {
	return e&o == o
}

func (e Event) String() string {
	if e == 0 {
		return "none"
	}
	var names []string
	for _, n := range eventNames {
		if e.Has(n.ev) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}

// Result reports what one tick did.
type Result struct {
	Requested MoveRequest
	Applied   MoveResult
	Events    Event
}

// MoveRequest is the displacement submitted to move-and-collide and who produced it.
type MoveRequest struct {
	Source       MotionSource
	Displacement gamemath.Vec3
}

// MotionSource names the unit that produced a tick's displacement.
type MotionSource int

const (
	MotionNone MotionSource = iota
	MotionIntegrator
	MotionBurrow
	MotionDash
)
