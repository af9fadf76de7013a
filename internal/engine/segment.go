package engine

// Glyphs for the snake's parts and the food, as drawn on the playfield.
const (
	HeadText = "8"
	BodyText = "#"
	FoodText = "@"
)

// Segment is one body unit of the snake. It carries no movement logic of its
// own: only the head is ever advanced, the rest are position markers. For
// collision purposes two segments are "the same" when they share a cell.
type Segment struct {
	Actor
}

// NewSegment creates a segment with the given glyph at the zero position.
func NewSegment(text string, gridW, gridH int) Segment {
	return Segment{Actor: NewActor(text, gridW, gridH)}
}

// SamePositionAs reports whether the segment occupies p.
func (s *Segment) SamePositionAs(p Position) bool {
	return s.pos == p
}
