package network

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/automoto/burrow/shared/messages"
	"github.com/coder/websocket"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateJoinedGame
	StateError
)

func (s ClientState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateJoinedGame:
		return "joined"
	case StateError:
		return "error"
	}
	return "unknown"
}

const writeTimeout = 2 * time.Second

// Client manages a WebSocket connection to the game server.
// All shared fields are protected by mu (router callbacks run on necs goroutines).
type Client struct {
	mu sync.RWMutex

	state     ClientState
	lastError error
	join      messages.JoinAccepted
	conn      *websocket.Conn

	snapshotCh chan esync.WorldSnapshot // size-1 buffered; latest wins
	abilityCh  chan messages.AbilityEvent
	despawnCh  chan messages.DespawnEvent
}

func NewClient() *Client {
	return &Client{
		state:      StateDisconnected,
		snapshotCh: make(chan esync.WorldSnapshot, 1),
		abilityCh:  make(chan messages.AbilityEvent, 16),
		despawnCh:  make(chan messages.DespawnEvent, 4),
	}
}

// Connect dials the server in a background goroutine and initiates the join handshake.
func (c *Client) Connect(address, version, playerName string) {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.mu.Unlock()

	router.OnConnect(func(_ *router.NetworkClient) {
		log.Println("[client] connected to server")
		c.mu.Lock()
		c.state = StateConnected
		c.mu.Unlock()

		err := c.SendMessage(messages.JoinRequest{
			Version:    version,
			PlayerName: playerName,
		})
		if err != nil {
			c.setError(fmt.Errorf("failed to send join request: %w", err))
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinAccepted) {
		log.Printf("[client] join accepted: networkID=%d server=%s arena=%s variant=%s",
			msg.NetworkID, msg.ServerName, msg.Arena, msg.Variant)
		c.mu.Lock()
		c.join = msg
		c.state = StateJoinedGame
		c.mu.Unlock()
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinRejected) {
		log.Printf("[client] join rejected: %s", msg.Reason)
		c.setError(fmt.Errorf("join rejected: %s", msg.Reason))
	})

	router.On(func(_ *router.NetworkClient, snapshot esync.WorldSnapshot) {
		select { // drain stale, push latest
		case <-c.snapshotCh:
		default:
		}
		c.snapshotCh <- snapshot
	})

	router.On(func(_ *router.NetworkClient, evt messages.AbilityEvent) {
		select {
		case c.abilityCh <- evt:
		default:
		}
	})

	router.On(func(_ *router.NetworkClient, evt messages.DespawnEvent) {
		select {
		case c.despawnCh <- evt:
		default:
		}
	})

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] disconnected: %v", err)
		c.mu.Lock()
		if c.state != StateError {
			c.state = StateDisconnected
		}
		c.conn = nil
		c.mu.Unlock()
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] error: %v", err)
	})

	go func() {
		transport := transports.NewWsClientTransport("ws://" + address)
		err := transport.Start(func(conn *websocket.Conn) {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
		})
		if err != nil {
			c.setError(fmt.Errorf("connection failed: %w", err))
		}
	}()
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.state = StateDisconnected
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}

	router.ResetRouter()
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

// Join returns the server's join reply. It is zero until the join is accepted.
func (c *Client) Join() messages.JoinAccepted {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.join
}

func (c *Client) NetworkID() esync.NetworkId {
	return c.Join().NetworkID
}

// LatestSnapshot returns the most recent WorldSnapshot, or nil. Non-blocking.
func (c *Client) LatestSnapshot() *esync.WorldSnapshot {
	select {
	case snap := <-c.snapshotCh:
		return &snap
	default:
		return nil
	}
}

func (c *Client) SendMessage(msg any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return fmt.Errorf("not connected")
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageBinary, payload)
}

// SendInput sends an input once the join has been accepted. Inputs produced
// before that are dropped.
func (c *Client) SendInput(input messages.PlayerInput) error {
	if c.State() != StateJoinedGame {
		return nil
	}
	input.Timestamp = time.Now().UnixMilli()
	return c.SendMessage(input)
}

func (c *Client) setError(err error) {
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}

// DrainAbilityEvents returns all pending ability events, non-blocking.
func (c *Client) DrainAbilityEvents() []messages.AbilityEvent {
	return drainChan(c.abilityCh)
}

// DrainDespawnEvents returns all pending despawn events, non-blocking.
func (c *Client) DrainDespawnEvents() []messages.DespawnEvent {
	return drainChan(c.despawnCh)
}

func drainChan[T any](ch chan T) []T {
	var out []T
	for {
		select {
		case v := <-ch:
			out = append(out, v)
		default:
			return out
		}
	}
}
