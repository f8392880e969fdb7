package model

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tomz197/starshooter/internal/loop/config"
	"github.com/tomz197/starshooter/internal/object"
	"github.com/tomz197/starshooter/internal/physics"
)

// newTestModel returns an empty running-capable model with spawning disabled
// and an observer capturing its log.
func newTestModel(t *testing.T) (*Model, *observer.ObservedLogs) {
	t.Helper()
	rules := config.DefaultRules()
	rules.InitialSpawnRate = 0
	core, logs := observer.New(zapcore.DebugLevel)
	m := New(rules, rand.New(rand.NewSource(1)), zap.New(core))
	return m, logs
}

// placeShip adds a ship at (x, y) with default health.
func placeShip(m *Model, x, y int) *object.Ship {
	s := object.NewShip(x, y, m.rules.ShipHealth, m.Screen())
	m.AddObject(s)
	return s
}

func TestCreateShip(t *testing.T) {
	m, _ := newTestModel(t)
	s := m.CreateShip()

	require.NotNil(t, m.Ship())
	assert.Same(t, s, m.Ship())
	x, y := s.Position()
	assert.Equal(t, 5, x)
	assert.Equal(t, 19, y)
	assert.Equal(t, 100, s.Health)
	assert.Len(t, m.Objects(), 1)
}

func TestPopulateScene(t *testing.T) {
	m, _ := newTestModel(t)
	m.PopulateScene()

	require.NotNil(t, m.Ship())
	assert.Len(t, m.Objects(), 3)
	assert.Len(t, object.FilterKind(m.Objects(), object.KindEnemy), 1)
	assert.Len(t, object.FilterKind(m.Objects(), object.KindAsteroid), 1)
	assert.Equal(t, StateSetup, m.State())
}

func TestFireBullet(t *testing.T) {
	m, _ := newTestModel(t)
	ship := placeShip(m, 5, 10)
	require.NoError(t, m.Start())

	before := len(m.Objects())
	require.NoError(t, m.FireBullet())

	assert.Len(t, m.Objects(), before+1)
	bullets := object.FilterKind(m.Objects(), object.KindBullet)
	require.Len(t, bullets, 1)
	x, y := bullets[0].Position()
	assert.Equal(t, 5, x)
	assert.Equal(t, 9, y)
	assert.True(t, m.world.Contains(ship))
}

func TestShipCommandsNeedRunningGame(t *testing.T) {
	m, _ := newTestModel(t)

	err := m.FireBullet()
	assert.True(t, errors.Is(err, ErrNoShip))

	placeShip(m, 5, 10)
	err = m.MoveShip(physics.Left)
	assert.True(t, errors.Is(err, ErrNotRunning), "setup state rejects moves")

	require.NoError(t, m.Start())
	require.NoError(t, m.TogglePause())
	err = m.FireBullet()
	assert.True(t, errors.Is(err, ErrNotRunning), "paused state rejects fire")
	x, _ := m.Ship().Position()
	assert.Equal(t, 5, x, "ship is frozen while paused")
}

func TestMoveShipBoundary(t *testing.T) {
	m, _ := newTestModel(t)
	placeShip(m, 0, 19)
	require.NoError(t, m.Start())

	err := m.MoveShip(physics.Left)
	require.Error(t, err)
	assert.True(t, errors.Is(err, object.ErrBoundaryExceeded))

	err = m.MoveShip(physics.Down)
	assert.True(t, errors.Is(err, object.ErrBoundaryExceeded))

	require.NoError(t, m.MoveShip(physics.Up))
	x, y := m.Ship().Position()
	assert.Equal(t, 0, x)
	assert.Equal(t, 18, y)
}

func TestOneShipPerGame(t *testing.T) {
	m, logs := newTestModel(t)
	first := m.CreateShip()

	m.AddObject(object.NewShip(1, 1, m.rules.ShipHealth, m.Screen()))
	again := m.CreateShip()

	assert.Same(t, first, again)
	assert.Same(t, first, m.Ship())
	assert.Len(t, object.FilterKind(m.Objects(), object.KindShip), 1)
	assert.Equal(t, 1, logs.FilterMessage("Ship already placed.").Len())
}

func TestStartNeedsShip(t *testing.T) {
	m, _ := newTestModel(t)

	err := m.Start()
	assert.True(t, errors.Is(err, ErrNoShip))
	assert.Equal(t, StateSetup, m.State())

	m.CreateShip()
	require.NoError(t, m.Start())
	assert.Equal(t, StateRunning, m.State())
}

func TestStateMachine(t *testing.T) {
	m, _ := newTestModel(t)
	placeShip(m, 5, 19)
	assert.Equal(t, StateSetup, m.State())

	err := m.TogglePause()
	assert.True(t, errors.Is(err, ErrInvalidTransition))

	require.NoError(t, m.Start())
	assert.Equal(t, StateRunning, m.State())
	assert.True(t, errors.Is(m.Start(), ErrInvalidTransition))

	require.NoError(t, m.TogglePause())
	assert.Equal(t, StatePaused, m.State())
	require.NoError(t, m.TogglePause())
	assert.Equal(t, StateRunning, m.State())
}

func TestUpdateOnlyWhileRunning(t *testing.T) {
	m, _ := newTestModel(t)
	placeShip(m, 5, 19)
	a := object.NewAsteroid(2, 3)
	m.AddObject(a)

	m.Update(1)
	assert.Equal(t, 3, a.Y, "setup does not tick")

	require.NoError(t, m.Start())
	m.Update(1)
	assert.Equal(t, 4, a.Y)

	require.NoError(t, m.TogglePause())
	m.Update(2)
	assert.Equal(t, 4, a.Y, "paused does not tick")
	assert.Equal(t, 1, m.Stats().Ticks)
}

func TestUpdatePurgesOffscreen(t *testing.T) {
	m, _ := newTestModel(t)
	placeShip(m, 5, 19)
	m.AddObject(object.NewBullet(1, 0))
	m.AddObject(object.NewAsteroid(2, 19))
	m.AddObject(object.NewFastEnemy(3, 18))
	require.NoError(t, m.Start())

	m.Update(1)

	require.Len(t, m.Objects(), 1)
	assert.Equal(t, object.KindShip, m.Objects()[0].Kind())
}

func TestUpdateResolvesCollisionsAfterTick(t *testing.T) {
	m, logs := newTestModel(t)
	ship := placeShip(m, 5, 10)
	m.AddObject(object.NewAsteroid(5, 9))
	require.NoError(t, m.Start())

	m.Update(1)

	assert.Equal(t, 90, ship.Health)
	assert.Empty(t, object.FilterKind(m.Objects(), object.KindAsteroid))
	assert.Equal(t, 1, logs.FilterMessage("Ship collided with asteroid.").Len())
}

func TestShipDestroyedEndsGame(t *testing.T) {
	m, logs := newTestModel(t)
	ship := placeShip(m, 5, 10)
	require.NoError(t, m.Start())

	for i := 0; i < 10; i++ {
		require.NotNil(t, m.Ship())
		m.AddObject(object.NewAsteroid(5, 10))
		m.CheckCollisions()
	}

	assert.Equal(t, 0, ship.Health)
	assert.Nil(t, m.Ship())
	assert.False(t, m.world.Contains(ship))
	assert.Equal(t, StateGameOver, m.State())
	assert.Equal(t, 1, logs.FilterMessage("Game Over: Ship destroyed.").Len())

	// Game over is terminal.
	count := len(m.Objects())
	m.AddObject(object.NewAsteroid(1, 1))
	m.Update(1)
	assert.Len(t, m.Objects(), count+1)
	assert.True(t, errors.Is(m.TogglePause(), ErrInvalidTransition))
	assert.True(t, errors.Is(m.FireBullet(), ErrNoShip))
}

func TestStatsAndSnapshot(t *testing.T) {
	m, _ := newTestModel(t)
	ship := placeShip(m, 5, 10)
	ship.AddScore(42)
	ship.Shield(3)
	require.NoError(t, m.Start())
	m.Update(1)
	m.Update(2)

	st := m.Stats()
	assert.Equal(t, 42, st.Score)
	assert.Equal(t, 100, st.Health)
	assert.Equal(t, 1, st.Shield)
	assert.Equal(t, 1, st.Level)
	assert.Equal(t, 2, st.Ticks)
	assert.Equal(t, 2*config.TickInterval, st.Survived)
	assert.Equal(t, 0, st.Bullets)
	require.NoError(t, m.FireBullet())
	assert.Equal(t, 1, m.Stats().Bullets)

	snap := m.Snapshot()
	assert.Equal(t, StateRunning, snap.State)
	assert.Len(t, snap.Objects, 2)
	assert.Equal(t, 10, snap.Screen.Width)

	// The snapshot does not alias the model's slice.
	m.AddObject(object.NewAsteroid(0, 0))
	assert.Len(t, snap.Objects, 2)
}

func TestFinalStatsAfterGameOver(t *testing.T) {
	m, _ := newTestModel(t)
	ship := placeShip(m, 5, 10)
	ship.AddScore(7)
	ship.Health = 5
	m.AddObject(object.NewAsteroid(5, 10))
	m.CheckCollisions()

	require.Nil(t, m.Ship())
	st := m.Stats()
	assert.Equal(t, 7, st.Score)
	assert.Equal(t, 0, st.Health)
}

func TestSeededGamesReplay(t *testing.T) {
	run := func() []string {
		rules := config.DefaultRules()
		rules.InitialSpawnRate = 60
		m := New(rules, rand.New(rand.NewSource(99)), nil)
		m.PopulateScene()
		require.NoError(t, m.Start())

		var trace []string
		for tick := 1; tick <= 40 && m.State() == StateRunning; tick++ {
			m.Update(tick)
			for _, obj := range m.Objects() {
				x, y := obj.Position()
				trace = append(trace, obj.Kind().String(), string(rune('0'+x)), string(rune('a'+y)))
			}
		}
		return trace
	}

	assert.Equal(t, run(), run())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "game over", StateGameOver.String())
	assert.Equal(t, "unknown", State(9).String())
}
