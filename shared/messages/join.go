package messages

import "github.com/leap-fish/necs/esync"

// JoinRequest is sent by a client after connecting to request joining the game.
type JoinRequest struct {
	Version    string
	PlayerName string
}

// JoinAccepted is sent by the server when a client's join request is accepted.
// The tuning fields let the client predict with the same settings the server
// simulates with.
type JoinAccepted struct {
	NetworkID   esync.NetworkId
	ServerName  string
	TickRate    int
	Arena       string
	Variant     string
	Sensitivity float64
	InvertPitch bool
	Power       int
}

// JoinRejected is sent by the server when a client's join request is rejected.
type JoinRejected struct {
	Reason string
}
