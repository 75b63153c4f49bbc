package core

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/automoto/burrow/archetypes"
	"github.com/automoto/burrow/components"
	"github.com/automoto/burrow/config"
	"github.com/automoto/burrow/locomotion"
	"github.com/automoto/burrow/profile"
	"github.com/automoto/burrow/shared/arena"
	"github.com/automoto/burrow/shared/messages"
	"github.com/automoto/burrow/shared/netcomponents"
	"github.com/automoto/burrow/systems"
	"github.com/automoto/burrow/systems/factory"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
)

var (
	ErrVersionMismatch = errors.New("version mismatch")
	ErrServerFull      = errors.New("server full")
)

// Sender delivers a message to one connected client.
type Sender interface {
	SendMessage(msg any) error
}

// Server manages the game state and client connections
type Server struct {
	cfg       config.ServerConfig
	world     donburi.World
	loop      *GameLoop
	transport *transports.WsServerTransport

	arena     *arena.Arena
	arenaName string
	arenaInfo *donburi.Entry
	tuning    config.LocomotionConfig
	profiles  *profile.Manager

	// Track which network client owns which entity
	clientEntities map[Sender]donburi.Entity
	nextIndex      int
	tick           uint64

	// Guards the world and everything above; router callbacks run on
	// transport goroutines.
	mu sync.RWMutex
}

// NewServer creates a new game server simulating in a. A nil profiles manager
// disables persistence.
func NewServer(cfg config.ServerConfig, a *arena.Arena, arenaName string, tuning config.LocomotionConfig, profiles *profile.Manager) *Server {
	world := donburi.NewWorld()

	s := &Server{
		cfg:            cfg,
		world:          world,
		arena:          a,
		arenaName:      arenaName,
		tuning:         tuning,
		profiles:       profiles,
		clientEntities: make(map[Sender]donburi.Entity),
	}
	s.loop = NewGameLoop(s, cfg.TickRate)

	// Set up the world for esync
	srvsync.UseEsync(world)

	s.arenaInfo = archetypes.Arena.Spawn(world, netcomponents.NetArena)
	components.Arena.SetValue(s.arenaInfo, components.ArenaData{Name: arenaName, Arena: a})
	netcomponents.NetArena.SetValue(s.arenaInfo, netcomponents.NetArenaData{
		Name:    arenaName,
		Variant: string(tuning.Variant),
	})
	arenaEntity := s.arenaInfo.Entity()
	if err := srvsync.NetworkSync(world, &arenaEntity, netcomponents.NetArena); err != nil {
		log.Printf("Failed to setup network sync for arena: %v", err)
	}

	return s
}

// Start begins the server on the configured port
func (s *Server) Start() error {
	s.setupRouterCallbacks()

	// Start game loop
	go s.loop.Run()

	// Create and start WebSocket transport
	s.transport = transports.NewWsServerTransport(s.cfg.Port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server and saves every connected profile.
func (s *Server) Stop() {
	s.loop.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()
	for client, entity := range s.clientEntities {
		s.removePlayerLocked(entity)
		delete(s.clientEntities, client)
	}
}

func (s *Server) setupRouterCallbacks() {
	// Handle new connections
	router.OnConnect(func(client *router.NetworkClient) {
		log.Printf("Client connected: %s", client.Id())
	})

	// Handle disconnections
	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		if err != nil {
			log.Printf("Client %s disconnected with error: %v", client.Id(), err)
		} else {
			log.Printf("Client %s disconnected", client.Id())
		}
		s.Leave(client)
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		if _, err := s.Join(client, req); err != nil {
			log.Printf("Join from %s rejected: %v", client.Id(), err)
		}
	})

	// Handle player input messages
	router.On(func(client *router.NetworkClient, input messages.PlayerInput) {
		s.QueueInput(client, input)
	})

	// Handle errors
	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("Client error: %v", err)
	})
}

// Join spawns a player for client and replies with the join result.
func (s *Server) Join(client Sender, req messages.JoinRequest) (messages.JoinAccepted, error) {
	if s.cfg.Version != "" && req.Version != s.cfg.Version {
		err := fmt.Errorf("%w: server %q, client %q", ErrVersionMismatch, s.cfg.Version, req.Version)
		s.reject(client, err)
		return messages.JoinAccepted{}, err
	}

	prof := s.profiles.Load(req.PlayerName)

	s.mu.Lock()
	if _, joined := s.clientEntities[client]; joined {
		s.mu.Unlock()
		err := errors.New("already joined")
		s.reject(client, err)
		return messages.JoinAccepted{}, err
	}
	if s.cfg.MaxPlayers > 0 && len(s.clientEntities) >= s.cfg.MaxPlayers {
		s.mu.Unlock()
		s.reject(client, ErrServerFull)
		return messages.JoinAccepted{}, ErrServerFull
	}

	player := factory.CreatePlayer(s.world, s.arena, req.PlayerName, s.nextIndex, prof, s.tuning,
		netcomponents.NetPosition,
		netcomponents.NetOrientation,
		netcomponents.NetLocomotion,
	)
	s.nextIndex++
	entity := player.Entity()

	// Mark entity for network sync with interpolation for position and facing
	err := srvsync.NetworkSync(s.world, &entity,
		srvsync.WithInterp(netcomponents.NetPosition, netcomponents.NetOrientation),
		netcomponents.NetLocomotion,
	)
	if err != nil {
		factory.RemovePlayer(s.world, s.arena, player)
		s.mu.Unlock()
		err = fmt.Errorf("network sync: %w", err)
		s.reject(client, err)
		return messages.JoinAccepted{}, err
	}
	systems.SyncNetComponents(s.world)

	var netID esync.NetworkId
	if id := esync.GetNetworkId(player); id != nil {
		netID = *id
	}
	s.clientEntities[client] = entity
	accepted := messages.JoinAccepted{
		NetworkID:   netID,
		ServerName:  s.cfg.Name,
		TickRate:    s.cfg.TickRate,
		Arena:       s.arenaName,
		Variant:     string(s.tuning.Variant),
		Sensitivity: components.Tuning.Get(player).Config.Look.Sensitivity,
		InvertPitch: prof.InvertPitch,
		Power:       prof.Power,
	}
	s.mu.Unlock()

	if err := client.SendMessage(accepted); err != nil {
		log.Printf("Failed to send join accepted: %v", err)
	}
	log.Printf("Player %q joined (network id %d)", req.PlayerName, netID)
	return accepted, nil
}

func (s *Server) reject(client Sender, reason error) {
	if err := client.SendMessage(messages.JoinRejected{Reason: reason.Error()}); err != nil {
		log.Printf("Failed to send join rejection: %v", err)
	}
}

// Leave removes the client's player, saving its profile when it changed.
func (s *Server) Leave(client Sender) {
	s.mu.Lock()
	entity, exists := s.clientEntities[client]
	if !exists {
		s.mu.Unlock()
		return
	}
	delete(s.clientEntities, client)

	var netID esync.NetworkId
	if s.world.Valid(entity) {
		if id := esync.GetNetworkId(s.world.Entry(entity)); id != nil {
			netID = *id
		}
	}
	s.removePlayerLocked(entity)
	s.mu.Unlock()

	s.broadcast(messages.DespawnEvent{NetworkID: netID})
}

func (s *Server) removePlayerLocked(entity donburi.Entity) {
	if !s.world.Valid(entity) {
		return
	}
	player := s.world.Entry(entity)
	name := components.Player.Get(player).Name
	if prof := components.Profile.Get(player); prof.Dirty {
		if err := s.profiles.Save(name, prof.Profile); err != nil {
			log.Printf("Failed to save profile for %q: %v", name, err)
		}
	}
	factory.RemovePlayer(s.world, s.arena, player)
	log.Printf("Player %q removed", name)
}

// QueueInput stores a client's input for the game loop.
func (s *Server) QueueInput(client Sender, input messages.PlayerInput) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entity, exists := s.clientEntities[client]
	if !exists || !s.world.Valid(entity) {
		return
	}
	systems.QueueInput(s.world.Entry(entity), input, s.cfg.MaxInputQueue)
}

// Step simulates one tick of dt seconds and returns the ability events to
// broadcast.
func (s *Server) Step(dt float64) []messages.AbilityEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	var events []messages.AbilityEvent
	systems.UpdateLocomotion(s.world, dt, func(player *donburi.Entry, res locomotion.Result) {
		events = append(events, abilityEvent(player, res))
	})
	systems.SyncNetComponents(s.world)

	s.tick++
	info := netcomponents.NetArena.Get(s.arenaInfo)
	info.Tick = s.tick
	info.Players = len(s.clientEntities)
	info.Variant = string(s.tuning.Variant)

	return events
}

func abilityEvent(player *donburi.Entry, res locomotion.Result) messages.AbilityEvent {
	loco := components.Locomotion.Get(player)
	evt := messages.AbilityEvent{
		Events:  uint16(res.Events),
		Ability: int(loco.State.Ability),
	}
	if id := esync.GetNetworkId(player); id != nil {
		evt.NetworkID = *id
	}
	if body := components.Body.Get(player); body.Body != nil {
		p := body.Position()
		evt.X, evt.Y, evt.Z = p.X, p.Y, p.Z
	}
	return evt
}

// SetTuning replaces the tuning for every current and future player.
func (s *Server) SetTuning(tuning config.LocomotionConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tuning = tuning
	systems.ApplyTuning(s.world, tuning)
}

// Tuning returns the global tuning currently in effect.
func (s *Server) Tuning() config.LocomotionConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tuning
}

func (s *Server) broadcast(msg any) {
	s.mu.RLock()
	clients := make([]Sender, 0, len(s.clientEntities))
	for client := range s.clientEntities {
		clients = append(clients, client)
	}
	s.mu.RUnlock()

	for _, client := range clients {
		if err := client.SendMessage(msg); err != nil {
			log.Printf("Broadcast failed: %v", err)
		}
	}
}

func (s *Server) sync() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := srvsync.DoSync(); err != nil {
		log.Printf("Sync error: %v", err)
	}
}

// World returns the ECS world
func (s *Server) World() donburi.World {
	return s.world
}

// PlayerCount returns the number of connected players
func (s *Server) PlayerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clientEntities)
}
