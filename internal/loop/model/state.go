package model

import (
	"time"

	"github.com/tomz197/starshooter/internal/object"
)

// State is the phase of a game.
type State int

const (
	StateSetup    State = iota // Scene placed, nothing ticks yet
	StateRunning               // Tick, spawn, level and collision loop active
	StatePaused                // Loop suspended, ship frozen
	StateGameOver              // Ship destroyed; terminal
)

var stateNames = [...]string{"setup", "running", "paused", "game over"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// WorldState holds the entity collection for one game.
type WorldState struct {
	Objects []object.Object
	toSpawn []object.Object // Objects to add after the current cycle step
	Screen  object.Screen   // Grid bounds

	// Objects marked for removal (deferred compaction)
	toRemove map[object.Object]struct{}
}

// NewWorldState creates an empty world of the given size.
func NewWorldState(screen object.Screen) *WorldState {
	return &WorldState{
		Objects:  []object.Object{},
		Screen:   screen,
		toRemove: make(map[object.Object]struct{}),
	}
}

// AddObject appends an object to the world.
func (w *WorldState) AddObject(obj object.Object) {
	w.Objects = append(w.Objects, obj)
}

// Spawn queues an object to be added by the next FlushSpawned.
func (w *WorldState) Spawn(obj object.Object) {
	w.toSpawn = append(w.toSpawn, obj)
}

// FlushSpawned adds all queued objects to the world and clears the queue.
func (w *WorldState) FlushSpawned() {
	w.Objects = append(w.Objects, w.toSpawn...)
	w.toSpawn = w.toSpawn[:0]
}

// MarkRemoved schedules an object for removal by the next Compact.
// Marking the same object twice is harmless.
func (w *WorldState) MarkRemoved(obj object.Object) {
	w.toRemove[obj] = struct{}{}
}

// Compact drops every marked object, keeping the order of the rest.
// Returns the number of objects removed.
func (w *WorldState) Compact() int {
	if len(w.toRemove) == 0 {
		return 0
	}
	before := len(w.Objects)
	kept := w.Objects[:0]
	for _, obj := range w.Objects {
		if _, remove := w.toRemove[obj]; !remove {
			kept = append(kept, obj)
		}
	}
	// Drop references held in the tail of the reused backing array.
	clear(w.Objects[len(kept):before])
	w.Objects = kept
	clear(w.toRemove)
	return before - len(kept)
}

// Contains reports whether obj is currently in the world.
func (w *WorldState) Contains(obj object.Object) bool {
	for _, o := range w.Objects {
		if o == obj {
			return true
		}
	}
	return false
}

// Stats is a read-only projection of the game for HUDs and telemetry.
type Stats struct {
	Score     int
	Health    int
	MaxHealth int
	Shield    int // Shield ticks remaining
	Level     int
	SpawnRate int
	Ticks     int           // Cycles run while the game was running
	Survived  time.Duration // Ticks scaled by the tick interval
	Objects   int
	Bullets   int // Bullets in flight
}

// Snapshot is an immutable copy of the world handed to renderers.
type Snapshot struct {
	Objects []object.Object
	Stats   Stats
	State   State
	Screen  object.Screen
}
