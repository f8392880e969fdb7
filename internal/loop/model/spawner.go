package model

import (
	"math/rand"

	"github.com/tomz197/starshooter/internal/loop/config"
	"github.com/tomz197/starshooter/internal/object"
)

// Spawner introduces new objects at the top row with probabilities scaled by
// the current spawn rate.
type Spawner struct {
	rng   *rand.Rand
	rules config.Rules
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rules config.Rules, rng *rand.Rand) *Spawner {
	if rng == nil {
		rng = rand.New(rand.NewSource(rules.Seed))
	}
	return &Spawner{rng: rng, rules: rules}
}

// Spawn runs one round of independent trials for an asteroid, an enemy and a
// power-up. Objects that would appear in the ship's column are skipped.
func (s *Spawner) Spawn(spawnRate int, ship *object.Ship) []object.Object {
	var out []object.Object
	rate := float64(spawnRate)

	if s.roll(rate) {
		if x, ok := s.column(ship); ok {
			out = append(out, object.NewAsteroid(x, 0))
		}
	}

	if s.roll(rate * s.rules.EnemySpawnRate) {
		if x, ok := s.column(ship); ok {
			out = append(out, object.NewEnemy(x, 0))
		}
	}

	if s.roll(rate * s.rules.PowerUpSpawnRate) {
		if x, ok := s.column(ship); ok {
			if s.rng.Intn(2) == 0 {
				out = append(out, object.NewShieldPowerUp(x, 0, s.rules.ShieldTicks))
			} else {
				out = append(out, object.NewHealthPowerUp(x, 0, s.rules.HealAmount))
			}
		}
	}

	return out
}

// roll draws from [0,100) and reports whether it fell below threshold.
func (s *Spawner) roll(threshold float64) bool {
	return float64(s.rng.Intn(100)) < threshold
}

// column picks a random column, refusing the one the ship is in.
func (s *Spawner) column(ship *object.Ship) (int, bool) {
	x := s.rng.Intn(s.rules.Width)
	if ship != nil && x == ship.X {
		return 0, false
	}
	return x, true
}
