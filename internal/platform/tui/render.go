package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/snakeoillabs/serpent/internal/canvas"
	"github.com/snakeoillabs/serpent/internal/config"
	"github.com/snakeoillabs/serpent/internal/engine"
)

// colorStyles maps canvas colors to lipgloss styles (ANSI 256 codes).
var colorStyles = map[canvas.Color]lipgloss.Style{
	canvas.ColorDefault:      lipgloss.NewStyle(),
	canvas.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	canvas.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	canvas.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	canvas.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	canvas.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	canvas.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	canvas.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	canvas.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	canvas.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	canvas.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	canvas.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderBuffer converts a canvas buffer to a styled string for display,
// batching runs of same-colored cells to keep escape sequences down.
func RenderBuffer(b *canvas.Buffer) string {
	var sb strings.Builder
	sb.Grow(b.Width()*b.Height()*2 + b.Height())

	for y := 0; y < b.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < b.Width() {
			start := b.GetCell(x, y).Color

			var run strings.Builder
			for x < b.Width() {
				cell := b.GetCell(x, y)
				if cell.Color != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[start]
			if !ok {
				style = colorStyles[canvas.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Theme holds the resolved canvas colors for each game element.
type Theme struct {
	Head   canvas.Color
	Body   canvas.Color
	Food   canvas.Color
	Score  canvas.Color
	Border canvas.Color
}

// ThemeFromSettings resolves the YAML color names into canvas colors.
func ThemeFromSettings(s config.Settings) Theme {
	return Theme{
		Head:   config.ParseColor(s.Theme.Head),
		Body:   config.ParseColor(s.Theme.Body),
		Food:   config.ParseColor(s.Theme.Food),
		Score:  config.ParseColor(s.Theme.Score),
		Border: config.ParseColor(s.Theme.Border),
	}
}

// frameRenderer implements engine.Renderer. It clears the terminal-sized
// buffer, draws the bordered playfield frame centered on it, then places each
// renderable relative to the frame origin.
type frameRenderer struct {
	buf   *canvas.Buffer
	theme Theme
	offX  int
	offY  int
}

func newFrameRenderer(width, height int, theme Theme) *frameRenderer {
	r := &frameRenderer{
		buf:   canvas.New(width, height),
		theme: theme,
	}
	r.layout()
	return r
}

// layout recomputes the frame origin for the current buffer size.
func (r *frameRenderer) layout() {
	r.offX = (r.buf.Width() - engine.GridWidth) / 2
	r.offY = (r.buf.Height() - engine.GridHeight) / 2
	if r.offX < 0 {
		r.offX = 0
	}
	if r.offY < 0 {
		r.offY = 0
	}
}

// fits reports whether the playfield frame fits the buffer.
func (r *frameRenderer) fits() bool {
	return r.buf.Width() >= engine.GridWidth && r.buf.Height() >= engine.GridHeight
}

// resize adjusts the buffer to a new terminal size.
func (r *frameRenderer) resize(width, height int) {
	r.buf.Resize(width, height)
	r.layout()
}

// Draw renders one tick's actor set: full clear, border frame, then every
// (position, text) pair at its frame-relative cell. The engine guarantees
// positions are inside the frame.
func (r *frameRenderer) Draw(actors []engine.Renderable) {
	r.buf.Clear()
	r.buf.DrawBox(r.offX, r.offY, engine.GridWidth, engine.GridHeight, r.theme.Border)

	for _, a := range actors {
		pos := a.Position()
		text := a.Text()
		r.buf.DrawText(r.offX+pos.X, r.offY+pos.Y, text, r.colorFor(text))
	}
}

// colorFor picks the theme color by glyph; anything that isn't a known
// single-cell glyph is the score label.
func (r *frameRenderer) colorFor(text string) canvas.Color {
	switch text {
	case engine.HeadText:
		return r.theme.Head
	case engine.BodyText:
		return r.theme.Body
	case engine.FoodText:
		return r.theme.Food
	default:
		return r.theme.Score
	}
}
