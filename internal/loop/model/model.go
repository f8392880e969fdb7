// Package model implements the game model: the entity collection and the
// per-cycle tick, spawn, level and collision steps.
//
// A Model is not safe for concurrent use. One goroutine drives it; input is
// delivered to that goroutine and applied between cycles.
package model

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/tomz197/starshooter/internal/loop/config"
	"github.com/tomz197/starshooter/internal/object"
	"github.com/tomz197/starshooter/internal/physics"
)

var (
	// ErrNoShip is returned by ship commands once the ship is gone, and by
	// Start before one was placed.
	ErrNoShip = errors.New("no ship")
	// ErrNotRunning is returned by ship commands outside the running state.
	ErrNotRunning = errors.New("game not running")
	// ErrInvalidTransition is returned by Start and TogglePause when the
	// current state does not allow the change.
	ErrInvalidTransition = errors.New("invalid state transition")
)

// Model owns the entities and the ship of one game.
type Model struct {
	rules     config.Rules
	log       *zap.Logger
	world     *WorldState
	spawner   *Spawner
	grid      *physics.CellGrid
	offGrid   []int // Indices the grid rejected in the last collision pass
	ship      *object.Ship
	lastShip  *object.Ship // Survives destruction so final stats stay readable
	level     int
	spawnRate int
	state     State
	ticks     int
}

// New creates a game in the setup state. rng drives every random decision
// so that a fixed seed replays the same game.
func New(rules config.Rules, rng *rand.Rand, log *zap.Logger) *Model {
	if log == nil {
		log = zap.NewNop()
	}
	screen := object.NewScreen(rules.Width, rules.Height)
	return &Model{
		rules:     rules,
		log:       log,
		world:     NewWorldState(screen),
		spawner:   NewSpawner(rules, rng),
		grid:      physics.NewCellGrid(rules.Width, rules.Height),
		level:     1,
		spawnRate: rules.InitialSpawnRate,
		state:     StateSetup,
	}
}

// CreateShip places a new ship at the bottom centre of the grid. A game has
// at most one live ship; when one is already placed it is returned as is.
func (m *Model) CreateShip() *object.Ship {
	if m.ship != nil {
		return m.ship
	}
	ship := object.NewShip(m.rules.Width/2, m.rules.Height-1, m.rules.ShipHealth, m.world.Screen)
	m.ship = ship
	m.lastShip = ship
	m.world.AddObject(ship)
	return ship
}

// PopulateScene creates the ship and the opening enemy and asteroid.
func (m *Model) PopulateScene() {
	m.CreateShip()
	m.AddObject(object.NewEnemy(3, 1))
	m.AddObject(object.NewAsteroid(5, 1))
}

// AddObject appends an object to the game. A ship added while no ship is
// live becomes the game's ship; a second ship is dropped.
func (m *Model) AddObject(obj object.Object) {
	if s, ok := obj.(*object.Ship); ok {
		if m.ship != nil {
			m.log.Warn("Ship already placed.")
			return
		}
		m.ship = s
		m.lastShip = s
	}
	m.world.AddObject(obj)
}

// Objects returns the live entities in insertion order.
// The slice is owned by the model; use Snapshot for a stable copy.
func (m *Model) Objects() []object.Object {
	return m.world.Objects
}

// Ship returns the player's ship, or nil once it was destroyed.
func (m *Model) Ship() *object.Ship {
	return m.ship
}

// Level returns the current level, starting at 1.
func (m *Model) Level() int {
	return m.level
}

// SpawnRate returns the current spawn rate percentage.
func (m *Model) SpawnRate() int {
	return m.spawnRate
}

// State returns the current game phase.
func (m *Model) State() State {
	return m.state
}

// Screen returns the grid bounds.
func (m *Model) Screen() object.Screen {
	return m.world.Screen
}

// Start moves a game from setup to running. A ship must be placed first.
func (m *Model) Start() error {
	if m.state != StateSetup {
		return fmt.Errorf("start from %s: %w", m.state, ErrInvalidTransition)
	}
	if m.ship == nil {
		return fmt.Errorf("start: %w", ErrNoShip)
	}
	m.state = StateRunning
	m.log.Info("Game started.")
	return nil
}

// TogglePause switches between running and paused.
func (m *Model) TogglePause() error {
	switch m.state {
	case StateRunning:
		m.state = StatePaused
		m.log.Info("Game paused.")
	case StatePaused:
		m.state = StateRunning
		m.log.Info("Game resumed.")
	default:
		return fmt.Errorf("pause from %s: %w", m.state, ErrInvalidTransition)
	}
	return nil
}

// shipCommand checks the preconditions shared by player commands.
func (m *Model) shipCommand() error {
	if m.ship == nil {
		return ErrNoShip
	}
	if m.state != StateRunning {
		return fmt.Errorf("%w (%s)", ErrNotRunning, m.state)
	}
	return nil
}

// FireBullet adds a bullet one row above the ship.
func (m *Model) FireBullet() error {
	if err := m.shipCommand(); err != nil {
		return fmt.Errorf("fire: %w", err)
	}
	x, y := m.ship.Position()
	m.world.AddObject(object.NewBullet(x, y-1))
	return nil
}

// MoveShip moves the ship one cell. Errors wrap object.ErrBoundaryExceeded
// when the grid edge blocks the move.
func (m *Model) MoveShip(dir physics.Direction) error {
	if err := m.shipCommand(); err != nil {
		return fmt.Errorf("move: %w", err)
	}
	return m.ship.Move(dir)
}

// Update runs one game cycle: tick, purge, spawn, level check, collisions.
// It does nothing unless the game is running.
func (m *Model) Update(tick int) {
	if m.state != StateRunning {
		return
	}
	m.ticks++

	for _, obj := range m.world.Objects {
		obj.Tick(tick)
	}
	m.purgeOffscreen()

	if tick > 0 {
		m.SpawnObjects()
	}
	m.LevelUp()
	m.CheckCollisions()
}

// purgeOffscreen drops everything that has left the grid.
func (m *Model) purgeOffscreen() {
	for _, obj := range m.world.Objects {
		if obj == object.Object(m.ship) {
			continue
		}
		x, y := obj.Position()
		if !m.world.Screen.Contains(x, y) {
			m.world.MarkRemoved(obj)
		}
	}
	if n := m.world.Compact(); n > 0 {
		m.log.Debug("purged off-screen objects", zap.Int("count", n))
	}
}

// SpawnObjects lets the spawner introduce new objects at the top row.
func (m *Model) SpawnObjects() {
	for _, obj := range m.spawner.Spawn(m.spawnRate, m.ship) {
		x, y := obj.Position()
		m.log.Debug("spawned", zap.Stringer("kind", obj.Kind()), zap.Int("x", x), zap.Int("y", y))
		m.world.Spawn(obj)
	}
	m.world.FlushSpawned()
}

// Stats returns the HUD projection of the game.
func (m *Model) Stats() Stats {
	st := Stats{
		Level:     m.level,
		SpawnRate: m.spawnRate,
		Ticks:     m.ticks,
		Survived:  time.Duration(m.ticks) * m.rules.TickInterval,
		Objects:   len(m.world.Objects),
		Bullets:   len(object.FilterKind(m.world.Objects, object.KindBullet)),
	}
	if s := m.lastShip; s != nil {
		st.Score = s.Score
		st.Health = s.Health
		st.MaxHealth = s.MaxHealth
		st.Shield = s.ShieldRemaining()
	}
	return st
}

// Snapshot copies the current world for rendering.
func (m *Model) Snapshot() *Snapshot {
	objects := make([]object.Object, len(m.world.Objects))
	copy(objects, m.world.Objects)
	return &Snapshot{
		Objects: objects,
		Stats:   m.Stats(),
		State:   m.state,
		Screen:  m.world.Screen,
	}
}
