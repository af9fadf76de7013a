package engine

import "testing"

func TestNewSnakeLayout(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSnake(cfg)

	if s.Len() != cfg.InitialSegments+1 {
		t.Fatalf("Len() = %d, expected %d", s.Len(), cfg.InitialSegments+1)
	}

	// The head starts at center and the initial growth walks it right, so
	// the chain trails off to the left of the final head position.
	head := s.Head()
	wantHead := Position{X: cfg.GridWidth/2 + cfg.InitialSegments, Y: cfg.GridHeight / 2}
	if head.Position() != wantHead {
		t.Errorf("head at %v, expected %v", head.Position(), wantHead)
	}
	if head.Text() != HeadText {
		t.Errorf("head glyph = %q, expected %q", head.Text(), HeadText)
	}
	if head.Velocity() != Right {
		t.Errorf("head velocity = %v, expected %v", head.Velocity(), Right)
	}

	for i, seg := range s.Body() {
		want := Position{X: wantHead.X - 1 - i, Y: wantHead.Y}
		if seg.Position() != want {
			t.Errorf("body[%d] at %v, expected %v", i, seg.Position(), want)
		}
		if seg.Text() != BodyText {
			t.Errorf("body[%d] glyph = %q, expected %q", i, seg.Text(), BodyText)
		}
	}
}

func TestMoveNextSlidesChain(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSnake(cfg)

	before := make([]Position, 0, s.Len())
	before = append(before, s.Head().Position())
	for _, seg := range s.Body() {
		before = append(before, seg.Position())
	}

	s.MoveNext(Right)

	if s.Len() != cfg.InitialSegments+1 {
		t.Errorf("Len() = %d after ordinary move, expected %d", s.Len(), cfg.InitialSegments+1)
	}

	wantHead := Position{X: before[0].X + 1, Y: before[0].Y}
	if s.Head().Position() != wantHead {
		t.Errorf("head at %v, expected %v", s.Head().Position(), wantHead)
	}

	// Every body segment now occupies its predecessor's former cell.
	body := s.Body()
	for i := range body {
		if body[i].Position() != before[i] {
			t.Errorf("body[%d] at %v, expected %v", i, body[i].Position(), before[i])
		}
	}
}

func TestLengthInvariantAcrossMoves(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSnake(cfg)
	want := cfg.InitialSegments + 1

	dirs := []Velocity{Right, Down, Right, Up, Right, Right, Down}
	for i, d := range dirs {
		s.MoveNext(d)
		if s.Len() != want {
			t.Fatalf("Len() = %d after move %d, expected %d", s.Len(), i+1, want)
		}
	}

	// One feeding event (GrowHead without TrimTail) adds exactly one.
	s.GrowHead()
	if s.Len() != want+1 {
		t.Fatalf("Len() = %d after feeding, expected %d", s.Len(), want+1)
	}

	// And it stays there across further ordinary moves.
	for range 5 {
		s.MoveNext(Down)
		if s.Len() != want+1 {
			t.Fatalf("Len() = %d, expected %d", s.Len(), want+1)
		}
	}
}

func TestGrowHeadInsertsBehindHead(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSnake(cfg)

	vacated := s.Head().Position()
	s.GrowHead()

	body := s.Body()
	if body[0].Position() != vacated {
		t.Errorf("new segment at %v, expected the vacated cell %v", body[0].Position(), vacated)
	}
	if body[0].Text() != BodyText {
		t.Errorf("new segment glyph = %q, expected %q", body[0].Text(), BodyText)
	}
}

func TestHitsBody(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSnake(cfg)

	if s.HitsBody() {
		t.Fatal("fresh snake should not collide with itself")
	}

	// Hook around: down and left are clear, but stepping back up re-enters
	// the row the chain is still lying on; an 11-long trail hasn't
	// retreated past that cell yet.
	for _, d := range []Velocity{Down, Left} {
		s.MoveNext(d)
		if s.HitsBody() {
			t.Fatalf("unexpected collision while turning %v", d)
		}
	}
	s.MoveNext(Up)
	if !s.HitsBody() {
		t.Error("head should collide with its own trail when hooking back onto it")
	}
}

func TestReverseDirectionHitsNeck(t *testing.T) {
	// Issuing the exact opposite of the current heading moves the head back
	// into the second segment's former cell. The engine performs no reversal
	// filtering, so the move is legal and fatal.
	cfg := DefaultConfig()
	s := NewSnake(cfg)

	s.MoveNext(Left)
	if !s.HitsBody() {
		t.Error("reversing into the neck should collide within one move")
	}
}

func TestWrapAcrossBorder(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSnake(cfg)

	// March to the right edge and one past it; the head must re-enter at the
	// left interior column, never the border.
	steps := cfg.GridWidth // more than enough to cross
	for range steps {
		s.MoveNext(Right)
		x := s.Head().Position().X
		if x < 1 || x > cfg.GridWidth-2 {
			t.Fatalf("head x = %d escaped the interior", x)
		}
	}
}
