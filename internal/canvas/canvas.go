// Package canvas provides a 2D character buffer the game is rendered into.
// It decouples drawing from the terminal: the engine's renderer writes runes
// and colors here, and the platform converts the buffer to styled output.
package canvas

import "strings"

// Color is a foreground color for a buffer cell, mapped to a terminal style
// by the platform layer.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorOrange
	ColorGray
)

// Cell is one buffer position: a rune and its color.
type Cell struct {
	Rune  rune
	Color Color
}

// Buffer is a width x height grid of cells.
type Buffer struct {
	width  int
	height int
	cells  [][]Cell
}

// New creates a buffer of the given dimensions, filled with spaces.
func New(width, height int) *Buffer {
	b := &Buffer{width: width, height: height}
	b.allocate()
	b.Clear()
	return b
}

func (b *Buffer) allocate() {
	b.cells = make([][]Cell, b.height)
	for y := range b.cells {
		b.cells[y] = make([]Cell, b.width)
	}
}

// Width returns the buffer width in characters.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in characters.
func (b *Buffer) Height() int { return b.height }

// Resize changes the buffer dimensions, preserving content where possible.
func (b *Buffer) Resize(width, height int) {
	if width == b.width && height == b.height {
		return
	}

	old := b.cells
	oldW, oldH := b.width, b.height

	b.width = width
	b.height = height
	b.allocate()
	b.Clear()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(b.cells[y][:copyW], old[y][:copyW])
	}
}

// Clear fills the buffer with uncolored spaces.
func (b *Buffer) Clear() {
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = Cell{Rune: ' ', Color: ColorDefault}
		}
	}
}

// Set places a rune at (x, y) with the given color.
// Out-of-bounds coordinates are silently ignored.
func (b *Buffer) Set(x, y int, r rune, c Color) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.cells[y][x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at (x, y), or a space out of bounds.
func (b *Buffer) Get(x, y int) rune {
	return b.GetCell(x, y).Rune
}

// GetCell returns the cell at (x, y), or a default cell out of bounds.
func (b *Buffer) GetCell(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{Rune: ' ', Color: ColorDefault}
	}
	return b.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y), clipping at the
// buffer edges.
func (b *Buffer) DrawText(x, y int, text string, c Color) {
	for i, r := range text {
		b.Set(x+i, y, r, c)
	}
}

// DrawTextCentered draws text centered horizontally at the given row.
func (b *Buffer) DrawTextCentered(y int, text string, c Color) {
	b.DrawText((b.width-len(text))/2, y, text, c)
}

// DrawBox draws a box outline with box-drawing characters. x, y is the
// top-left corner; w, h the outer dimensions.
func (b *Buffer) DrawBox(x, y, w, h int, c Color) {
	right := x + w - 1
	bottom := y + h - 1

	b.Set(x, y, '┌', c)
	b.Set(right, y, '┐', c)
	b.Set(x, bottom, '└', c)
	b.Set(right, bottom, '┘', c)

	for i := x + 1; i < right; i++ {
		b.Set(i, y, '─', c)
		b.Set(i, bottom, '─', c)
	}
	for j := y + 1; j < bottom; j++ {
		b.Set(x, j, '│', c)
		b.Set(right, j, '│', c)
	}
}

// String converts the buffer to plain text, rows joined with newlines.
// Colors are dropped; the platform renderer applies them separately.
func (b *Buffer) String() string {
	var sb strings.Builder
	sb.Grow(b.width*b.height + b.height)

	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < b.width; x++ {
			sb.WriteRune(b.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the runes of one row as a string.
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return strings.Repeat(" ", b.width)
	}
	runes := make([]rune, b.width)
	for x := range runes {
		runes[x] = b.cells[y][x].Rune
	}
	return string(runes)
}
