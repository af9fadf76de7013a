package engine

import "math/rand"

// Food is the single collectible on the board. When eaten it relocates to a
// uniformly random interior cell. The pick does not exclude cells occupied by
// the snake's body, so food can land inside the snake.
type Food struct {
	Actor
}

// NewFood creates food at a random interior cell.
func NewFood(gridW, gridH int, rng *rand.Rand) *Food {
	f := &Food{Actor: NewActor(FoodText, gridW, gridH)}
	f.Relocate(rng)
	return f
}

// Relocate moves the food to a uniformly random interior cell.
func (f *Food) Relocate(rng *rand.Rand) {
	f.pos = Position{
		X: 1 + rng.Intn(f.gridW-2),
		Y: 1 + rng.Intn(f.gridH-2),
	}
}
