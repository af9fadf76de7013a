package engine

import "fmt"

// Score tracks the player's points. It never decreases during a session and
// renders itself as a text label drawn at the top-left of the frame.
type Score struct {
	Actor
	points int
}

// NewScore creates a zero score anchored at (1, 0), on the top border row.
func NewScore(gridW, gridH int) *Score {
	s := &Score{Actor: NewActor("", gridW, gridH)}
	s.pos = Position{X: 1, Y: 0}
	s.Add(0)
	return s
}

// Add increases the score by points and refreshes the display text.
func (s *Score) Add(points int) {
	s.points += points
	s.text = fmt.Sprintf("Score: %d", s.points)
}

// Points returns the accumulated score.
func (s *Score) Points() int { return s.points }
