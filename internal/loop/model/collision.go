package model

import (
	"go.uber.org/zap"

	"github.com/tomz197/starshooter/internal/object"
)

// CheckCollisions resolves every pair of objects sharing a cell and applies
// all removals as one batch. Returns true when this call destroyed the ship.
func (m *Model) CheckCollisions() bool {
	objects := m.world.Objects

	m.grid.Clear()
	m.offGrid = m.offGrid[:0]
	for i, obj := range objects {
		x, y := obj.Position()
		if !m.grid.Insert(x, y, i) {
			m.offGrid = append(m.offGrid, i)
		}
	}

	m.grid.ForEachPair(func(i, j int) {
		m.resolvePair(objects[i], objects[j])
	})

	// Objects past the grid edge still collide with each other.
	for a := 0; a < len(m.offGrid); a++ {
		ax, ay := objects[m.offGrid[a]].Position()
		for b := a + 1; b < len(m.offGrid); b++ {
			if bx, by := objects[m.offGrid[b]].Position(); ax == bx && ay == by {
				m.resolvePair(objects[m.offGrid[a]], objects[m.offGrid[b]])
			}
		}
	}

	hadShip := m.ship != nil
	if hadShip && m.ship.Destroyed() {
		m.world.MarkRemoved(m.ship)
	}
	m.world.Compact()

	if hadShip && !m.world.Contains(m.ship) {
		m.ship = nil
		m.state = StateGameOver
		m.log.Info("Game Over: Ship destroyed.")
		return true
	}
	return false
}

// resolvePair applies the first matching collision rule to two objects in
// the same cell.
func (m *Model) resolvePair(a, b object.Object) {
	ka, kb := a.Kind(), b.Kind()

	switch {
	case pairOf(ka, kb, object.KindBullet, object.KindAsteroid):
		// Bullets pass through asteroids.

	case ka == object.KindBullet && kb.IsEnemy() || kb == object.KindBullet && ka.IsEnemy():
		m.world.MarkRemoved(a)
		m.world.MarkRemoved(b)
		if m.ship != nil {
			m.ship.AddScore(1)
		}
		m.log.Info("Bullet destroyed enemy.")

	case ka == object.KindShip && kb.IsEnemy() || kb == object.KindShip && ka.IsEnemy():
		ship, enemy := orderShip(a, b)
		m.world.MarkRemoved(enemy)
		ship.AddScore(1)
		damaged := ship.TakeDamage(m.rules.EnemyDamage)
		m.log.Info("Ship collided with enemy.",
			zap.Bool("damaged", damaged),
			zap.Int("health", ship.Health))

	case pairOf(ka, kb, object.KindShip, object.KindAsteroid):
		ship, asteroid := orderShip(a, b)
		m.world.MarkRemoved(asteroid)
		damaged := ship.TakeDamage(m.rules.AsteroidDamage)
		m.log.Info("Ship collided with asteroid.",
			zap.Bool("damaged", damaged),
			zap.Int("health", ship.Health))

	case pairOf(ka, kb, object.KindShip, object.KindHealthPowerUp):
		ship, other := orderShip(a, b)
		applyPowerUp(ship, other)
		m.world.MarkRemoved(other)
		m.log.Info("Ship picked up health.", zap.Int("health", ship.Health))

	case pairOf(ka, kb, object.KindShip, object.KindShieldPowerUp):
		ship, other := orderShip(a, b)
		applyPowerUp(ship, other)
		m.world.MarkRemoved(other)
		m.log.Info("Ship picked up shield.", zap.Int("ticks", ship.ShieldRemaining()))

	default:
		m.world.MarkRemoved(a)
		m.world.MarkRemoved(b)
		m.log.Info("Collision detected between "+ka.String()+" and "+kb.String()+".",
			zap.Stringer("a", ka),
			zap.Stringer("b", kb))
	}
}

// pairOf reports whether {ka, kb} is the unordered pair {x, y}.
func pairOf(ka, kb, x, y object.Kind) bool {
	return ka == x && kb == y || ka == y && kb == x
}

// orderShip returns the ship of a ship pair first.
func orderShip(a, b object.Object) (*object.Ship, object.Object) {
	if s, ok := a.(*object.Ship); ok {
		return s, b
	}
	return b.(*object.Ship), a
}

func applyPowerUp(ship *object.Ship, obj object.Object) {
	if p, ok := obj.(*object.PowerUp); ok {
		p.Apply(ship)
	}
}
