package tui

import (
	"strings"
	"testing"

	"github.com/snakeoillabs/serpent/internal/canvas"
	"github.com/snakeoillabs/serpent/internal/config"
	"github.com/snakeoillabs/serpent/internal/engine"
)

// stubActor is a minimal engine.Renderable for renderer tests.
type stubActor struct {
	pos  engine.Position
	text string
}

func (s stubActor) Position() engine.Position { return s.pos }
func (s stubActor) Text() string              { return s.text }

func testTheme() Theme {
	return ThemeFromSettings(config.Default())
}

func TestFrameRendererDrawsBorderAndActors(t *testing.T) {
	r := newFrameRenderer(engine.GridWidth, engine.GridHeight, testTheme())

	r.Draw([]engine.Renderable{
		stubActor{engine.Position{X: 5, Y: 3}, engine.FoodText},
		stubActor{engine.Position{X: 1, Y: 0}, "Score: 2"},
		stubActor{engine.Position{X: 10, Y: 7}, engine.HeadText},
		stubActor{engine.Position{X: 9, Y: 7}, engine.BodyText},
	})

	// Exact-size terminal: the frame sits at the origin.
	if r.buf.Get(0, 0) != '┌' || r.buf.Get(engine.GridWidth-1, engine.GridHeight-1) != '┘' {
		t.Error("border box corners missing")
	}
	if r.buf.Get(5, 3) != '@' {
		t.Errorf("food cell = %q, expected '@'", r.buf.Get(5, 3))
	}
	if r.buf.Get(10, 7) != '8' {
		t.Errorf("head cell = %q, expected '8'", r.buf.Get(10, 7))
	}
	if r.buf.Get(9, 7) != '#' {
		t.Errorf("body cell = %q, expected '#'", r.buf.Get(9, 7))
	}
	// Multi-char score text lands on the top border row.
	if !strings.Contains(r.buf.Row(0), "Score: 2") {
		t.Errorf("score label missing from row 0: %q", r.buf.Row(0))
	}
}

func TestFrameRendererCentersOnLargerTerminal(t *testing.T) {
	r := newFrameRenderer(engine.GridWidth+20, engine.GridHeight+10, testTheme())

	if r.offX != 10 || r.offY != 5 {
		t.Fatalf("offset = (%d, %d), expected (10, 5)", r.offX, r.offY)
	}

	r.Draw([]engine.Renderable{
		stubActor{engine.Position{X: 1, Y: 1}, engine.HeadText},
	})
	if r.buf.Get(10+1, 5+1) != '8' {
		t.Error("actor not drawn at the frame-relative cell")
	}
	if r.buf.Get(10, 5) != '┌' {
		t.Error("border not drawn at the frame origin")
	}
}

func TestFrameRendererClearsBetweenFrames(t *testing.T) {
	r := newFrameRenderer(engine.GridWidth, engine.GridHeight, testTheme())

	r.Draw([]engine.Renderable{stubActor{engine.Position{X: 5, Y: 5}, engine.FoodText}})
	r.Draw([]engine.Renderable{stubActor{engine.Position{X: 6, Y: 5}, engine.FoodText}})

	if r.buf.Get(5, 5) != ' ' {
		t.Error("previous frame's food not cleared")
	}
	if r.buf.Get(6, 5) != '@' {
		t.Error("current frame's food missing")
	}
}

func TestFrameRendererFits(t *testing.T) {
	tests := []struct {
		w, h     int
		expected bool
	}{
		{engine.GridWidth, engine.GridHeight, true},
		{200, 60, true},
		{engine.GridWidth - 1, engine.GridHeight, false},
		{engine.GridWidth, engine.GridHeight - 1, false},
	}
	for _, tc := range tests {
		r := newFrameRenderer(tc.w, tc.h, testTheme())
		if r.fits() != tc.expected {
			t.Errorf("fits() on %dx%d = %v, expected %v", tc.w, tc.h, r.fits(), tc.expected)
		}
	}
}

func TestColorFor(t *testing.T) {
	theme := testTheme()
	r := newFrameRenderer(engine.GridWidth, engine.GridHeight, theme)

	tests := []struct {
		text     string
		expected canvas.Color
	}{
		{engine.HeadText, theme.Head},
		{engine.BodyText, theme.Body},
		{engine.FoodText, theme.Food},
		{"Score: 42", theme.Score},
	}
	for _, tc := range tests {
		if got := r.colorFor(tc.text); got != tc.expected {
			t.Errorf("colorFor(%q) = %v, expected %v", tc.text, got, tc.expected)
		}
	}
}

func TestRenderBufferPlainContent(t *testing.T) {
	b := canvas.New(6, 2)
	b.DrawText(0, 0, "abc", canvas.ColorDefault)
	b.DrawText(0, 1, "def", canvas.ColorGreen)

	out := RenderBuffer(b)
	// Styled output still contains the raw runes in row order.
	if !strings.Contains(out, "abc") {
		t.Errorf("output missing first row: %q", out)
	}
	if !strings.Contains(out, "def") {
		t.Errorf("output missing second row: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected a single newline between 2 rows, got %d", strings.Count(out, "\n"))
	}
}
