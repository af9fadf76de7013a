package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/snakeoillabs/serpent/internal/config"
	"github.com/snakeoillabs/serpent/internal/engine"
	"github.com/snakeoillabs/serpent/internal/storage"
)

// directionBuffer implements engine.InputProvider: it holds the last
// direction the player pressed and keeps returning it until a new key
// arrives, which gives the constant forward drift between key presses.
type directionBuffer struct {
	current engine.Velocity
}

func (d *directionBuffer) Direction() engine.Velocity { return d.current }

// Model is the Bubble Tea model that drives one play session. It owns the
// engine Game and adapts terminal events to the engine's collaborators: one
// TickMsg per engine tick, key presses into the direction buffer, and the
// frame renderer into the terminal.
type Model struct {
	game  *engine.Game
	dir   *directionBuffer
	frame *frameRenderer
	keys  KeyMap
	store *storage.Store

	width      int
	height     int
	scoreSaved bool
	quitting   bool
}

// NewModel wires a fresh game session to the terminal adapters.
func NewModel(store *storage.Store, settings config.Settings, width, height int, seed int64) Model {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := engine.DefaultConfig()
	cfg.Seed = seed

	dir := &directionBuffer{current: engine.Right}
	frame := newFrameRenderer(width, height, ThemeFromSettings(settings))

	return Model{
		game:   engine.NewGame(cfg, dir, frame),
		dir:    dir,
		frame:  frame,
		keys:   DefaultKeyMap(),
		store:  store,
		width:  width,
		height: height,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(engine.TickInterval)
}

// Update handles key, resize and tick messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.frame.resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey buffers direction changes and honors the quit binding. Quit
// terminates the session immediately; the engine never sees another tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if v, ok := m.keys.Direction(msg); ok {
		m.dir.current = v
	}
	return m, nil
}

// handleTick advances the engine by one tick. The engine is a no-op once it
// has ended, so ticking stays safe while the game-over overlay is shown.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.frame.fits() {
		m.game.Tick()
	}

	if m.game.Status() == engine.StatusEnded && !m.scoreSaved {
		if m.store != nil {
			// best effort; the overlay shows regardless
			_, _ = m.store.SaveScore(m.game.Score())
		}
		m.scoreSaved = true
	}

	return m, tickCmd(engine.TickInterval)
}

// View renders the last drawn frame plus any overlay.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.frame.fits() {
		m.frame.buf.Clear()
		m.frame.buf.DrawTextCentered(m.height/2, "Window too small", m.frame.theme.Score)
		m.frame.buf.DrawTextCentered(m.height/2+1,
			fmt.Sprintf("Need at least %dx%d", engine.GridWidth, engine.GridHeight),
			m.frame.theme.Border)
		return RenderBuffer(m.frame.buf)
	}

	if m.game.Status() == engine.StatusEnded {
		m.drawGameOver()
	}

	return RenderBuffer(m.frame.buf)
}

// drawGameOver paints the end-of-session overlay on top of the final frame.
func (m Model) drawGameOver() {
	lines := []string{
		"Game Over",
		fmt.Sprintf("Final score: %d", m.game.Score()),
		"Press q to quit",
	}

	boxW := 0
	for _, l := range lines {
		if len(l) > boxW {
			boxW = len(l)
		}
	}
	boxW += 4
	boxH := len(lines) + 4

	buf := m.frame.buf
	x := (buf.Width() - boxW) / 2
	y := (buf.Height() - boxH) / 2

	for j := y; j < y+boxH; j++ {
		for i := x; i < x+boxW; i++ {
			buf.Set(i, j, ' ', m.frame.theme.Border)
		}
	}
	buf.DrawBox(x, y, boxW, boxH, m.frame.theme.Border)
	for i, l := range lines {
		buf.DrawTextCentered(y+2+i, l, m.frame.theme.Score)
	}
}

// Run starts the Bubble Tea program for one play session in the local
// terminal, using the alternate screen buffer.
func Run(store *storage.Store, settings config.Settings, width, height int, seed int64) error {
	model := NewModel(store, settings, width, height, seed)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
