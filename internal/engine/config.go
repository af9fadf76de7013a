package engine

import "time"

// Grid dimensions and initial snake size are fixed; the game is tuned for a
// 60x20 playfield and does not support resizing the board.
const (
	GridWidth       = 60
	GridHeight      = 20
	InitialSegments = 10

	// TickInterval is how long the platform waits for input before moving
	// the snake in its last known direction.
	TickInterval = 80 * time.Millisecond
)

// Config contains the immutable parameters the engine is constructed with.
// It exists so the engine has no package-level mutable state and tests can
// build small boards, but gameplay always uses DefaultConfig.
type Config struct {
	GridWidth       int
	GridHeight      int
	InitialSegments int // trailing segments behind the head
	Seed            int64
}

// DefaultConfig returns the standard playfield configuration.
func DefaultConfig() Config {
	return Config{
		GridWidth:       GridWidth,
		GridHeight:      GridHeight,
		InitialSegments: InitialSegments,
		Seed:            0, // 0 means the platform picks a time-based seed
	}
}
