package core

import (
	"log"
	"time"

	"github.com/automoto/burrow/locomotion"
)

type GameLoop struct {
	server   *Server
	tickRate int
	running  bool
	stopChan chan struct{}
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 1
	}
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// DT is the fixed simulation step in seconds.
func (g *GameLoop) DT() float64 {
	return 1 / float64(g.tickRate)
}

func (g *GameLoop) Run() {
	g.running = true
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			g.running = false
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			g.tick()
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}

func (g *GameLoop) tick() {
	for _, evt := range g.server.Step(g.DT()) {
		if g.server.cfg.Verbose {
			log.Printf("[server] player %d: %v", evt.NetworkID, locomotion.Event(evt.Events))
		}
		g.server.broadcast(evt)
	}
	g.server.sync()
}
