package client

import (
	"time"

	"github.com/tomz197/starshooter/internal/loop/model"
)

// ClientState holds per-connection loop state that is not part of the game
// model itself.
type ClientState struct {
	Running   bool          // Client loop running
	Keys      []string      // Keys read this frame
	Games     int           // Games started on this connection, counting the current one
	tick      int           // Cycle number passed to the model's Update
	sinceTick time.Duration // Time accumulated towards the next cycle
	delta     time.Duration // Frame delta time

	// Values at the last drawn frame; a change forces a full clear.
	prevGameState model.State
	prevTermW     int
	prevTermH     int
	drawn         bool
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		Running: true,
		Games:   1,
	}
}
