package model

import (
	"fmt"

	"go.uber.org/zap"
)

// LevelUp raises the level by one when the score has reached the current
// level's threshold. At most one level is gained per call even if the score
// is several thresholds ahead, so difficulty ramps one step per cycle.
func (m *Model) LevelUp() bool {
	if m.ship == nil {
		return false
	}
	if m.ship.Score < m.level*m.rules.ScoreThreshold {
		return false
	}

	m.level++
	m.spawnRate = min(m.spawnRate+m.rules.SpawnRateIncrease, m.rules.MaxSpawnRate)
	m.log.Info(fmt.Sprintf("Level up! Now level %d", m.level),
		zap.Int("level", m.level),
		zap.Int("spawn_rate", m.spawnRate))
	return true
}
