package object

// Descent speeds in rows per tick.
const (
	EnemySpeed     = 1
	FastEnemySpeed = 2
)

// Enemy is a hostile ship descending towards the player.
// The fast variant only differs by Speed.
type Enemy struct {
	body
	Speed int // Rows moved per tick
	kind  Kind
}

// NewEnemy creates an enemy at (x, y) descending one row per tick.
func NewEnemy(x, y int) *Enemy {
	return &Enemy{body: body{X: x, Y: y}, Speed: EnemySpeed, kind: KindEnemy}
}

// NewFastEnemy creates an enemy at (x, y) descending two rows per tick.
func NewFastEnemy(x, y int) *Enemy {
	return &Enemy{body: body{X: x, Y: y}, Speed: FastEnemySpeed, kind: KindFastEnemy}
}

// Kind implements Object.
func (e *Enemy) Kind() Kind { return e.kind }

// Graphic implements Object.
func (e *Enemy) Graphic() Graphic { return GraphicFor(e.kind) }

// Tick moves the enemy down by its speed.
func (e *Enemy) Tick(_ int) {
	e.Y += e.Speed
}
