package object

// Effect is applied to the ship when it picks up a power-up.
type Effect func(s *Ship)

// PowerUp is a stationary pickup carrying an effect for the ship.
type PowerUp struct {
	body
	kind   Kind
	effect Effect
}

// NewHealthPowerUp creates a power-up that heals the ship by amount.
func NewHealthPowerUp(x, y, amount int) *PowerUp {
	return &PowerUp{
		body: body{X: x, Y: y},
		kind: KindHealthPowerUp,
		effect: func(s *Ship) {
			s.Heal(amount)
		},
	}
}

// NewShieldPowerUp creates a power-up that shields the ship for ticks ticks.
func NewShieldPowerUp(x, y, ticks int) *PowerUp {
	return &PowerUp{
		body: body{X: x, Y: y},
		kind: KindShieldPowerUp,
		effect: func(s *Ship) {
			s.Shield(ticks)
		},
	}
}

// Kind implements Object.
func (p *PowerUp) Kind() Kind { return p.kind }

// Graphic implements Object.
func (p *PowerUp) Graphic() Graphic { return GraphicFor(p.kind) }

// Tick is a no-op; power-ups stay where they spawned.
func (p *PowerUp) Tick(_ int) {}

// Apply runs the power-up's effect on the ship.
func (p *PowerUp) Apply(s *Ship) {
	if s == nil || p.effect == nil {
		return
	}
	p.effect(s)
}
