// Package object defines the game entities and their per-tick movement.
package object

import (
	"errors"
	"fmt"

	"github.com/tomz197/starshooter/internal/physics"
)

// ErrBoundaryExceeded is returned when a move would leave the grid.
var ErrBoundaryExceeded = errors.New("boundary exceeded")

// Ship is the player-controlled spaceship.
type Ship struct {
	body
	Health    int // Remaining health, never negative
	MaxHealth int // Upper bound for healing
	Score     int // Points collected

	bounds      Screen
	shieldTicks int // Ticks of damage immunity remaining
}

// NewShip creates a ship at (x, y) that may move anywhere inside bounds.
func NewShip(x, y, health int, bounds Screen) *Ship {
	return &Ship{
		body:      body{X: x, Y: y},
		Health:    health,
		MaxHealth: health,
		bounds:    bounds,
	}
}

// Kind implements Object.
func (s *Ship) Kind() Kind { return KindShip }

// Graphic implements Object.
func (s *Ship) Graphic() Graphic { return GraphicFor(KindShip) }

// Tick counts the shield down. The ship only moves on explicit Move calls.
func (s *Ship) Tick(_ int) {
	if s.shieldTicks > 0 {
		s.shieldTicks--
	}
}

// Move shifts the ship one cell in the given direction.
// The position is left untouched when the move fails.
func (s *Ship) Move(dir physics.Direction) error {
	dx, dy, ok := dir.Delta()
	if !ok {
		return fmt.Errorf("move ship: unknown direction %d", int(dir))
	}
	nx, ny := s.X+dx, s.Y+dy
	if !s.bounds.Contains(nx, ny) {
		return fmt.Errorf("move ship %s to (%d,%d): %w", dir, nx, ny, ErrBoundaryExceeded)
	}
	s.X, s.Y = nx, ny
	return nil
}

// TakeDamage lowers health by amount, flooring at zero.
// Returns false when an active shield absorbed the hit.
func (s *Ship) TakeDamage(amount int) bool {
	if s.Shielded() {
		return false
	}
	s.Health -= amount
	if s.Health < 0 {
		s.Health = 0
	}
	return true
}

// Heal raises health by amount, capped at MaxHealth.
func (s *Ship) Heal(amount int) {
	s.Health += amount
	if s.Health > s.MaxHealth {
		s.Health = s.MaxHealth
	}
}

// Shield grants damage immunity for the given number of ticks.
// An active shield with more time left is kept as is.
func (s *Ship) Shield(ticks int) {
	if ticks > s.shieldTicks {
		s.shieldTicks = ticks
	}
}

// Shielded reports whether damage is currently suppressed.
func (s *Ship) Shielded() bool {
	return s.shieldTicks > 0
}

// ShieldRemaining returns the ticks of shield left.
func (s *Ship) ShieldRemaining() int {
	return s.shieldTicks
}

// AddScore adds points to the ship's score.
func (s *Ship) AddScore(points int) {
	s.Score += points
}

// Destroyed reports whether the ship has run out of health.
func (s *Ship) Destroyed() bool {
	return s.Health <= 0
}
