package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTickMovement(t *testing.T) {
	tests := []struct {
		name   string
		obj    Object
		wantDY int
	}{
		{"Bullet", NewBullet(3, 10), -1},
		{"Asteroid", NewAsteroid(3, 10), 1},
		{"Enemy", NewEnemy(3, 10), 1},
		{"FastEnemy", NewFastEnemy(3, 10), 2},
		{"HealthPowerUp", NewHealthPowerUp(3, 10, 20), 0},
		{"ShieldPowerUp", NewShieldPowerUp(3, 10, 5), 0},
		{"Ship", NewShip(3, 10, 100, NewScreen(10, 20)), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.obj.Tick(1)
			x, y := tt.obj.Position()
			assert.Equal(t, 3, x)
			assert.Equal(t, 10+tt.wantDY, y)
		})
	}
}

func TestKinds(t *testing.T) {
	assert.Equal(t, KindEnemy, NewEnemy(0, 0).Kind())
	assert.Equal(t, KindFastEnemy, NewFastEnemy(0, 0).Kind())
	assert.True(t, KindFastEnemy.IsEnemy())
	assert.True(t, KindEnemy.IsEnemy())
	assert.False(t, KindAsteroid.IsEnemy())
	assert.True(t, KindShieldPowerUp.IsPowerUp())
	assert.False(t, KindBullet.IsPowerUp())
	assert.Equal(t, "FastEnemy", KindFastEnemy.String())
	assert.Equal(t, "Unknown", Kind(99).String())
}

func TestGraphic(t *testing.T) {
	g := NewShip(0, 0, 1, NewScreen(1, 1)).Graphic()
	assert.Equal(t, "Ship", g.Label)
	assert.Equal(t, "assets/ship.png", g.Asset)

	assert.Equal(t, 'W', NewFastEnemy(0, 0).Graphic().Glyph)
	assert.Equal(t, '?', GraphicFor(Kind(99)).Glyph)
}

func TestPowerUpEffects(t *testing.T) {
	s := NewShip(0, 0, 100, NewScreen(10, 20))
	s.TakeDamage(50)

	NewHealthPowerUp(0, 0, 20).Apply(s)
	assert.Equal(t, 70, s.Health)

	NewShieldPowerUp(0, 0, 3).Apply(s)
	assert.True(t, s.Shielded())
	assert.Equal(t, 3, s.ShieldRemaining())

	// nil ship is ignored
	NewHealthPowerUp(0, 0, 20).Apply(nil)
}

func TestScreenContains(t *testing.T) {
	s := NewScreen(10, 20)
	assert.Equal(t, 5, s.CenterX)
	assert.True(t, s.Contains(0, 0))
	assert.True(t, s.Contains(9, 19))
	assert.False(t, s.Contains(10, 0))
	assert.False(t, s.Contains(0, 20))
	assert.False(t, s.Contains(-1, 5))
}

func TestFilterKind(t *testing.T) {
	objs := []Object{NewEnemy(0, 0), NewAsteroid(1, 1), NewEnemy(2, 2)}
	assert.Len(t, FilterKind(objs, KindEnemy), 2)
	assert.Len(t, FilterKind(objs, KindBullet), 0)
}
