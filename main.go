package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/burrow/assets"
	"github.com/automoto/burrow/config"
	"github.com/automoto/burrow/locomotion"
	"github.com/automoto/burrow/network"
	"github.com/automoto/burrow/shared/arena"
	"github.com/automoto/burrow/shared/messages"
	"github.com/automoto/burrow/shared/protocol"
)

// A headless client that joins a server and drives its character with a
// scripted route, predicting locally like a real player would.
func main() {
	address := flag.String("addr", "localhost:7373", "Server address")
	name := flag.String("name", "bot", "Player name")
	version := flag.String("version", "", "Client version sent on join")
	rate := flag.Int("rate", config.Server.TickRate, "Input rate (inputs per second)")
	duration := flag.Duration("duration", 0, "Stop after this long (0 = run until interrupted)")
	flag.Parse()

	// Register network components for client-side deserialization
	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register network components: %v", err)
	}

	tuning, err := config.ParseTuning(assets.DefaultTuning())
	if err != nil {
		log.Fatalf("Embedded tuning is invalid: %v", err)
	}

	loader := assets.NewArenaLoader(config.Arena)
	arenas := func(name string) (*arena.Arena, error) {
		for _, n := range loader.Names() {
			if n == name {
				return loader.MustLoadArena(n), nil
			}
		}
		return nil, fmt.Errorf("arena %q is not shipped with this client", name)
	}

	client := network.NewClient()
	client.Connect(*address, *version, *name)
	defer client.Disconnect()

	session := network.NewSession(client, *tuning, arenas)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var deadline <-chan time.Time
	if *duration > 0 {
		deadline = time.After(*duration)
	}

	ticker := time.NewTicker(time.Second / time.Duration(max(*rate, 1)))
	defer ticker.Stop()

	for tick := 0; ; tick++ {
		select {
		case <-sigChan:
			log.Println("Interrupted")
			return
		case <-deadline:
			log.Println("Done")
			return
		case <-ticker.C:
		}

		in := route(tick, *rate)
		for id, down := range in.Actions {
			if down && id != config.ActionRun {
				log.Printf("[bot] press %s", config.ActionNames[id])
			}
		}
		res, err := session.Update(in)
		if err != nil {
			log.Fatalf("Session ended: %v", err)
		}
		if res.Events != 0 {
			log.Printf("[bot] %v", res.Events)
		}
		for _, evt := range client.DrainAbilityEvents() {
			if evt.NetworkID != client.NetworkID() {
				log.Printf("[server] player %d: %v at (%.1f, %.1f, %.1f)",
					evt.NetworkID, locomotion.Event(evt.Events), evt.X, evt.Y, evt.Z)
			}
		}
		for _, evt := range client.DrainDespawnEvents() {
			log.Printf("[server] player %d left", evt.NetworkID)
		}
	}
}

// route walks a slow circle, jumps now and then and cycles both powers.
func route(tick, rate int) messages.PlayerInput {
	in := messages.NewPlayerInput(0)
	sec := float64(tick) / float64(rate)

	in.MoveY = 1
	in.LookX = 0.05 * math.Sin(sec/3)

	switch phase := tick % (rate * 6); {
	case phase == rate:
		in.Actions[config.ActionJump] = true
	case phase == 2*rate:
		in.Actions[config.ActionSelectBurrow] = true
	case phase == 2*rate+1:
		in.Actions[config.ActionAbility] = true
	case phase == 4*rate:
		in.Actions[config.ActionAbility] = true
	case phase == 5*rate:
		in.Actions[config.ActionSelectDash] = true
	case phase == 5*rate+1:
		in.Actions[config.ActionAbility] = true
	}
	if tick%(rate*12) > rate*6 {
		in.Actions[config.ActionRun] = true
	}
	return in
}
