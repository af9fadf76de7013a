// Package engine contains the snake game state: the segment chain, toroidal
// movement, feeding, collision detection and the per-tick update sequence.
// It has no terminal dependencies; input and output are injected collaborators.
package engine

// Position is a cell on the playfield. Game entities only ever occupy the
// interior of the bordered grid: 1 <= X <= GridWidth-2, 1 <= Y <= GridHeight-2.
type Position struct {
	X, Y int
}

// Velocity is a per-tick displacement. Once play starts it is always one of
// the four unit vectors below.
type Velocity struct {
	DX, DY int
}

// The four legal directions.
var (
	Up    = Velocity{0, -1}
	Right = Velocity{1, 0}
	Down  = Velocity{0, 1}
	Left  = Velocity{-1, 0}
)

// Opposite reports whether v and w point in exactly opposing directions.
// The engine does not reject opposing input; steering into your own neck is
// legal and promptly fatal. Platforms may use this to filter key presses.
func (v Velocity) Opposite(w Velocity) bool {
	return v.DX == -w.DX && v.DY == -w.DY && (v.DX != 0 || v.DY != 0)
}

// Renderable is anything the game hands to the output collaborator each tick.
type Renderable interface {
	Position() Position
	Text() string
}

// Actor holds the fields shared by every visible game entity: a display
// glyph, a position and a velocity. Variants embed it rather than inherit.
type Actor struct {
	text string
	pos  Position
	vel  Velocity

	gridW int
	gridH int
}

// NewActor creates an actor bound to a grid of the given dimensions.
func NewActor(text string, gridW, gridH int) Actor {
	return Actor{text: text, gridW: gridW, gridH: gridH}
}

// Position returns the actor's current cell.
func (a *Actor) Position() Position { return a.pos }

// Text returns the actor's display glyph.
func (a *Actor) Text() string { return a.text }

// Velocity returns the actor's current velocity.
func (a *Actor) Velocity() Velocity { return a.vel }

// SetPosition places the actor at p.
func (a *Actor) SetPosition(p Position) { a.pos = p }

// SetVelocity sets the actor's per-tick displacement.
func (a *Actor) SetVelocity(v Velocity) { a.vel = v }

// MoveNext advances the actor by its velocity and wraps each axis
// independently into the interior of the bordered grid. Leaving one edge
// re-enters at the opposite edge, skipping the border row or column. The
// formula is total for any delta, so it needs no special-casing at edges:
//
//	new = 1 + mod(old + delta - 1, dim - 2)
func (a *Actor) MoveNext() {
	a.pos.X = 1 + mod(a.pos.X+a.vel.DX-1, a.gridW-2)
	a.pos.Y = 1 + mod(a.pos.Y+a.vel.DY-1, a.gridH-2)
}

// mod is the floored modulo: the result is always in [0, m) even for
// negative a. Go's % operator truncates toward zero instead.
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
