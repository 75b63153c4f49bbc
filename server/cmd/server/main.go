package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/burrow/assets"
	"github.com/automoto/burrow/config"
	"github.com/automoto/burrow/profile"
	"github.com/automoto/burrow/server/core"
	"github.com/automoto/burrow/shared/protocol"
)

func main() {
	srvCfg := config.Server
	flag.UintVar(&srvCfg.Port, "port", srvCfg.Port, "Server port")
	flag.IntVar(&srvCfg.TickRate, "tickrate", srvCfg.TickRate, "Server tick rate (updates per second)")
	flag.StringVar(&srvCfg.Name, "name", srvCfg.Name, "Server display name")
	flag.StringVar(&srvCfg.Version, "version", srvCfg.Version, "Required client version (empty = accept any)")
	flag.IntVar(&srvCfg.MaxPlayers, "maxplayers", srvCfg.MaxPlayers, "Maximum connected players (0 = unlimited)")
	flag.StringVar(&srvCfg.ProfileAppName, "profiles", srvCfg.ProfileAppName, "Profile storage app name (empty = no persistence)")
	flag.BoolVar(&srvCfg.Verbose, "verbose", srvCfg.Verbose, "Log every ability event")
	arenaName := flag.String("arena", "", "Arena to load (empty = first available)")
	arenaDir := flag.String("arenas", "", "Directory of .tmx arenas (empty = embedded arenas)")
	tuningPath := flag.String("tuning", "", "YAML tuning file, reloaded on change (empty = embedded tuning)")
	flag.Parse()

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	tuning, err := config.ParseTuning(assets.DefaultTuning())
	if err != nil {
		log.Fatalf("Embedded tuning is invalid: %v", err)
	}
	if *tuningPath != "" {
		if tuning, err = config.LoadTuning(*tuningPath); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}
	config.Locomotion = *tuning

	a, name, err := core.LoadArena(*arenaDir, *arenaName, config.Arena)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}

	var profiles *profile.Manager
	if srvCfg.ProfileAppName != "" {
		if profiles, err = profile.Open(srvCfg.ProfileAppName); err != nil {
			log.Printf("Warning: profiles will not be saved: %v", err)
		}
	}

	server := core.NewServer(srvCfg, a, name, *tuning, profiles)

	if *tuningPath != "" {
		watcher, err := server.WatchTuning(*tuningPath)
		if err != nil {
			log.Printf("Warning: tuning hot reload disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting Burrow server %q on port %d (arena: %s, variant: %s, tick rate: %d/s, version: %s)",
		srvCfg.Name, srvCfg.Port, name, tuning.Variant, srvCfg.TickRate, srvCfg.Version)
	if err := server.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
