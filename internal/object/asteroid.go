package object

// Asteroid is an indestructible rock falling one row per tick.
// Bullets pass through it; the ship takes damage when it hits one.
type Asteroid struct {
	body
}

// NewAsteroid creates an asteroid at (x, y).
func NewAsteroid(x, y int) *Asteroid {
	return &Asteroid{body: body{X: x, Y: y}}
}

// Kind implements Object.
func (a *Asteroid) Kind() Kind { return KindAsteroid }

// Graphic implements Object.
func (a *Asteroid) Graphic() Graphic { return GraphicFor(KindAsteroid) }

// Tick moves the asteroid down.
func (a *Asteroid) Tick(_ int) {
	a.Y++
}

// Bullet is a shot fired by the ship, travelling towards row 0.
type Bullet struct {
	body
}

// NewBullet creates a bullet at (x, y).
func NewBullet(x, y int) *Bullet {
	return &Bullet{body: body{X: x, Y: y}}
}

// Kind implements Object.
func (b *Bullet) Kind() Kind { return KindBullet }

// Graphic implements Object.
func (b *Bullet) Graphic() Graphic { return GraphicFor(KindBullet) }

// Tick moves the bullet up.
func (b *Bullet) Tick(_ int) {
	b.Y--
}
