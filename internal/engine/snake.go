package engine

// Snake owns the ordered chain of segments, head first. Movement is the
// classic list trick: advance the head, insert a fresh segment where the head
// just was (index 1), then pop the tail. Inserting without the matching pop
// is how feeding grows the chain by one.
type Snake struct {
	// segments[0] is always the head; increasing index is further from it.
	// The chain never shrinks below length 1 during play.
	segments []Segment

	gridW int
	gridH int
}

// NewSnake builds a snake with its head at the grid center heading right,
// followed by cfg.InitialSegments trailing segments laid out by growth.
func NewSnake(cfg Config) *Snake {
	s := &Snake{
		segments: make([]Segment, 0, cfg.InitialSegments+1),
		gridW:    cfg.GridWidth,
		gridH:    cfg.GridHeight,
	}

	head := NewSegment(HeadText, cfg.GridWidth, cfg.GridHeight)
	head.SetPosition(Position{X: cfg.GridWidth / 2, Y: cfg.GridHeight / 2})
	head.SetVelocity(Right)
	s.segments = append(s.segments, head)

	for range cfg.InitialSegments {
		s.GrowHead()
	}
	return s
}

// Head returns the chain's first segment, the only player-controlled one.
func (s *Snake) Head() *Segment {
	return &s.segments[0]
}

// Body returns the non-head segments, in head-to-tail order. The returned
// slice aliases the chain; callers must not mutate it.
func (s *Snake) Body() []Segment {
	return s.segments[1:]
}

// Len returns the chain length including the head.
func (s *Snake) Len() int {
	return len(s.segments)
}

// MoveNext slides the whole snake one cell in the given direction. Callers
// must only pass one of the four unit vectors; the direction is not
// validated. Passing the exact opposite of the current heading is legal and
// moves the head back into its own neck.
func (s *Snake) MoveNext(direction Velocity) {
	s.Head().SetVelocity(direction)
	s.GrowHead()
	s.TrimTail()
}

// GrowHead advances the head by its velocity (with torus wrap) and inserts a
// new body segment at the cell the head just vacated, directly behind it.
// Called without a matching TrimTail (the feeding path) the chain grows by
// exactly one.
func (s *Snake) GrowHead() {
	head := s.Head()
	vacated := head.Position()
	head.MoveNext()

	seg := NewSegment(BodyText, s.gridW, s.gridH)
	seg.SetPosition(vacated)

	s.segments = append(s.segments, Segment{})
	copy(s.segments[2:], s.segments[1:])
	s.segments[1] = seg
}

// TrimTail removes the last segment of the chain.
func (s *Snake) TrimTail() {
	s.segments = s.segments[:len(s.segments)-1]
}

// HitsBody reports whether the head shares a cell with any body segment.
func (s *Snake) HitsBody() bool {
	head := s.Head().Position()
	for i := range s.segments[1:] {
		if s.segments[i+1].SamePositionAs(head) {
			return true
		}
	}
	return false
}
