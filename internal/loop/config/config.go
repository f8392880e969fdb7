// Package config centralizes all tunable game parameters.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Grid dimensions in cells.
const (
	GameWidth  = 10
	GameHeight = 20
)

// Player
const (
	ShipHealth     = 100
	EnemyDamage    = 20
	AsteroidDamage = 10
	HealAmount     = 20
	ShieldTicks    = 30 // Ticks of damage immunity from a shield power-up
)

// Levelling
const (
	ScoreThreshold    = 100 // Points per level
	SpawnRateIncrease = 5   // Spawn rate percentage points gained per level
)

// Spawning
const (
	InitialSpawnRate = 10  // Percent chance per cycle of an asteroid
	MaxSpawnRate     = 100 // Spawn rate ceiling
	EnemySpawnRate   = 0.5 // Enemy chance as a fraction of the spawn rate
	PowerUpSpawnRate = 0.25
)

// Timing
const (
	TickInterval    = 200 * time.Millisecond // One game cycle
	ClientTargetFPS = 30
	ClientFrameTime = time.Second / ClientTargetFPS
)

// Terminal layout
const (
	MaxTermWidth  = 120
	MaxTermHeight = 40
	FeedLines     = 6 // Log lines kept for the HUD
)

// Rules is the full set of gameplay parameters for one game.
type Rules struct {
	Width             int           `toml:"width"`
	Height            int           `toml:"height"`
	ShipHealth        int           `toml:"ship_health"`
	EnemyDamage       int           `toml:"enemy_damage"`
	AsteroidDamage    int           `toml:"asteroid_damage"`
	HealAmount        int           `toml:"heal_amount"`
	ShieldTicks       int           `toml:"shield_ticks"`
	ScoreThreshold    int           `toml:"score_threshold"`
	SpawnRateIncrease int           `toml:"spawn_rate_increase"`
	InitialSpawnRate  int           `toml:"initial_spawn_rate"`
	MaxSpawnRate      int           `toml:"max_spawn_rate"`
	EnemySpawnRate    float64       `toml:"enemy_spawn_rate"`
	PowerUpSpawnRate  float64       `toml:"power_up_spawn_rate"`
	TickInterval      time.Duration `toml:"tick_interval"`
	Seed              int64         `toml:"seed"` // 0 picks a time based seed
}

// DefaultRules returns the stock game rules.
func DefaultRules() Rules {
	return Rules{
		Width:             GameWidth,
		Height:            GameHeight,
		ShipHealth:        ShipHealth,
		EnemyDamage:       EnemyDamage,
		AsteroidDamage:    AsteroidDamage,
		HealAmount:        HealAmount,
		ShieldTicks:       ShieldTicks,
		ScoreThreshold:    ScoreThreshold,
		SpawnRateIncrease: SpawnRateIncrease,
		InitialSpawnRate:  InitialSpawnRate,
		MaxSpawnRate:      MaxSpawnRate,
		EnemySpawnRate:    EnemySpawnRate,
		PowerUpSpawnRate:  PowerUpSpawnRate,
		TickInterval:      TickInterval,
	}
}

// Validate checks that the rules describe a playable game.
func (r Rules) Validate() error {
	var errs []error
	if r.Width < 1 || r.Height < 2 {
		errs = append(errs, fmt.Errorf("grid %dx%d too small", r.Width, r.Height))
	}
	if r.ShipHealth < 1 {
		errs = append(errs, fmt.Errorf("ship_health must be positive, got %d", r.ShipHealth))
	}
	if r.EnemyDamage < 0 || r.AsteroidDamage < 0 || r.HealAmount < 0 || r.ShieldTicks < 0 {
		errs = append(errs, errors.New("damage, heal and shield values must not be negative"))
	}
	if r.ScoreThreshold < 1 {
		errs = append(errs, fmt.Errorf("score_threshold must be positive, got %d", r.ScoreThreshold))
	}
	if r.SpawnRateIncrease < 0 {
		errs = append(errs, fmt.Errorf("spawn_rate_increase must not be negative, got %d", r.SpawnRateIncrease))
	}
	if r.MaxSpawnRate < 0 || r.MaxSpawnRate > 100 {
		errs = append(errs, fmt.Errorf("max_spawn_rate must be within 0..100, got %d", r.MaxSpawnRate))
	}
	if r.InitialSpawnRate < 0 || r.InitialSpawnRate > r.MaxSpawnRate {
		errs = append(errs, fmt.Errorf("initial_spawn_rate must be within 0..%d, got %d", r.MaxSpawnRate, r.InitialSpawnRate))
	}
	if r.EnemySpawnRate < 0 || r.EnemySpawnRate > 1 || r.PowerUpSpawnRate < 0 || r.PowerUpSpawnRate > 1 {
		errs = append(errs, errors.New("enemy and power-up spawn rates must be within 0..1"))
	}
	if r.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("tick_interval must be positive, got %s", r.TickInterval))
	}
	return errors.Join(errs...)
}
