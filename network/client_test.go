package network

import (
	"testing"

	"github.com/automoto/burrow/shared/messages"
)

func TestClient_SendBeforeJoin(t *testing.T) {
	c := NewClient()

	if err := c.SendInput(messages.NewPlayerInput(1)); err != nil {
		t.Errorf("SendInput() before join = %v, want nil", err)
	}
	if err := c.SendMessage(messages.JoinRequest{}); err == nil {
		t.Errorf("SendMessage() without a connection succeeded")
	}
	if c.State() != StateDisconnected {
		t.Errorf("State() = %v, want disconnected", c.State())
	}
}

func TestDrainChan(t *testing.T) {
	ch := make(chan messages.AbilityEvent, 4)
	ch <- messages.AbilityEvent{Events: 1}
	ch <- messages.AbilityEvent{Events: 2}

	got := drainChan(ch)
	if len(got) != 2 || got[1].Events != 2 {
		t.Fatalf("drainChan() = %+v", got)
	}
	if len(drainChan(ch)) != 0 {
		t.Errorf("second drain returned events")
	}
}
