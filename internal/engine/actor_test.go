package engine

import "testing"

func TestMoveNextWrapsEachEdge(t *testing.T) {
	tests := []struct {
		name     string
		start    Position
		vel      Velocity
		expected Position
	}{
		{"plain step right", Position{30, 10}, Right, Position{31, 10}},
		{"plain step down", Position{30, 10}, Down, Position{30, 11}},
		{"wrap right edge", Position{GridWidth - 2, 10}, Right, Position{1, 10}},
		{"wrap left edge", Position{1, 10}, Left, Position{GridWidth - 2, 10}},
		{"wrap bottom edge", Position{30, GridHeight - 2}, Down, Position{30, 1}},
		{"wrap top edge", Position{30, 1}, Up, Position{30, GridHeight - 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewActor("x", GridWidth, GridHeight)
			a.SetPosition(tc.start)
			a.SetVelocity(tc.vel)
			a.MoveNext()
			if a.Position() != tc.expected {
				t.Errorf("MoveNext from %v with %v = %v, expected %v",
					tc.start, tc.vel, a.Position(), tc.expected)
			}
		})
	}
}

func TestMoveNextStaysInInterior(t *testing.T) {
	// Walk a long way in every direction; the position must never touch the
	// border rows/columns.
	for _, vel := range []Velocity{Up, Right, Down, Left} {
		a := NewActor("x", GridWidth, GridHeight)
		a.SetPosition(Position{X: 1, Y: 1})
		a.SetVelocity(vel)
		for i := 0; i < 500; i++ {
			a.MoveNext()
			p := a.Position()
			if p.X < 1 || p.X > GridWidth-2 || p.Y < 1 || p.Y > GridHeight-2 {
				t.Fatalf("position %v escaped the interior after %d steps with %v", p, i+1, vel)
			}
		}
	}
}

func TestTorusClosure(t *testing.T) {
	// Walking a full lap of the interior on each axis returns the actor to
	// where it started, for any unit velocity. The wrap modulus is the
	// interior size, so one lap is (GridWidth-2)*(GridHeight-2) steps.
	interiorW := GridWidth - 2
	interiorH := GridHeight - 2
	for _, vel := range []Velocity{Up, Right, Down, Left} {
		a := NewActor("x", GridWidth, GridHeight)
		start := Position{X: 7, Y: 5}
		a.SetPosition(start)
		a.SetVelocity(vel)
		for i := 0; i < interiorW*interiorH; i++ {
			a.MoveNext()
		}
		if a.Position() != start {
			t.Errorf("after %d steps with %v, position = %v, expected %v",
				interiorW*interiorH, vel, a.Position(), start)
		}
	}
}

func TestMoveNextLargeAndNegativeDeltas(t *testing.T) {
	// The wrap formula is total: arbitrary velocities land in the interior.
	tests := []struct {
		name     string
		start    Position
		vel      Velocity
		expected Position
	}{
		{"big positive delta", Position{1, 1}, Velocity{3 * (GridWidth - 2), 0}, Position{1, 1}},
		{"big negative delta", Position{5, 5}, Velocity{-(GridWidth - 2), -(GridHeight - 2)}, Position{5, 5}},
		{"negative past edge", Position{2, 2}, Velocity{-4, 0}, Position{GridWidth - 4, 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewActor("x", GridWidth, GridHeight)
			a.SetPosition(tc.start)
			a.SetVelocity(tc.vel)
			a.MoveNext()
			if a.Position() != tc.expected {
				t.Errorf("got %v, expected %v", a.Position(), tc.expected)
			}
		})
	}
}

func TestOpposite(t *testing.T) {
	tests := []struct {
		a, b     Velocity
		expected bool
	}{
		{Up, Down, true},
		{Down, Up, true},
		{Left, Right, true},
		{Right, Left, true},
		{Up, Left, false},
		{Right, Right, false},
		{Velocity{}, Velocity{}, false}, // zero vectors do not oppose
	}

	for _, tc := range tests {
		if got := tc.a.Opposite(tc.b); got != tc.expected {
			t.Errorf("Opposite(%v, %v) = %v, expected %v", tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestSegmentSamePositionAs(t *testing.T) {
	s := NewSegment(BodyText, GridWidth, GridHeight)
	s.SetPosition(Position{X: 4, Y: 9})

	if !s.SamePositionAs(Position{X: 4, Y: 9}) {
		t.Error("segment should match its own position")
	}
	if s.SamePositionAs(Position{X: 4, Y: 8}) {
		t.Error("segment should not match a different position")
	}
}
