package object

// Kind identifies the variant of a game object.
type Kind int

const (
	KindShip Kind = iota
	KindBullet
	KindEnemy
	KindFastEnemy
	KindAsteroid
	KindHealthPowerUp
	KindShieldPowerUp
)

var kindNames = [...]string{
	KindShip:          "Ship",
	KindBullet:        "Bullet",
	KindEnemy:         "Enemy",
	KindFastEnemy:     "FastEnemy",
	KindAsteroid:      "Asteroid",
	KindHealthPowerUp: "HealthPowerUp",
	KindShieldPowerUp: "ShieldPowerUp",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// IsEnemy reports whether the kind is a hostile ship (either descent speed).
func (k Kind) IsEnemy() bool {
	return k == KindEnemy || k == KindFastEnemy
}

// IsPowerUp reports whether the kind can be picked up by the ship.
func (k Kind) IsPowerUp() bool {
	return k == KindHealthPowerUp || k == KindShieldPowerUp
}

// Graphic is the renderable descriptor of an object. The core never looks
// inside it; renderers pick whichever field suits them.
type Graphic struct {
	Label string // Human readable name
	Asset string // Image asset path for sprite based renderers
	Glyph rune   // Character for terminal renderers
}

var graphics = map[Kind]Graphic{
	KindShip:          {Label: "Ship", Asset: "assets/ship.png", Glyph: 'A'},
	KindBullet:        {Label: "Bullet", Asset: "assets/bullet.png", Glyph: '|'},
	KindEnemy:         {Label: "Enemy", Asset: "assets/enemy.png", Glyph: 'V'},
	KindFastEnemy:     {Label: "FastEnemy", Asset: "assets/enemy.png", Glyph: 'W'},
	KindAsteroid:      {Label: "Asteroid", Asset: "assets/asteroid.png", Glyph: '@'},
	KindHealthPowerUp: {Label: "HealthPowerUp", Asset: "assets/health.png", Glyph: '+'},
	KindShieldPowerUp: {Label: "ShieldPowerUp", Asset: "assets/shield.png", Glyph: 'S'},
}

// GraphicFor returns the renderable descriptor for a kind.
func GraphicFor(k Kind) Graphic {
	if g, ok := graphics[k]; ok {
		return g
	}
	return Graphic{Label: k.String(), Glyph: '?'}
}

// Object is a positioned, tickable game entity.
type Object interface {
	// Kind returns the variant of the object.
	Kind() Kind

	// Position returns the grid cell the object occupies.
	Position() (x, y int)

	// Tick advances the object by one frame.
	Tick(frame int)

	// Graphic returns the renderable descriptor.
	Graphic() Graphic
}

// Screen represents the grid dimensions.
type Screen struct {
	Width   int
	Height  int
	CenterX int
	CenterY int
}

// NewScreen creates a Screen of the given size.
func NewScreen(width, height int) Screen {
	return Screen{
		Width:   width,
		Height:  height,
		CenterX: width / 2,
		CenterY: height / 2,
	}
}

// Contains reports whether (x, y) lies inside [0,Width) x [0,Height).
func (s Screen) Contains(x, y int) bool {
	return x >= 0 && x < s.Width && y >= 0 && y < s.Height
}

// body is the grid position shared by every object.
type body struct {
	X, Y int
}

// Position returns the object's cell.
func (b *body) Position() (int, int) {
	return b.X, b.Y
}

// FilterKind returns all objects of the given kind.
func FilterKind(objects []Object, kind Kind) []Object {
	var out []Object
	for _, obj := range objects {
		if obj.Kind() == kind {
			out = append(out, obj)
		}
	}
	return out
}
