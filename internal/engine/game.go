package engine

import "math/rand"

// InputProvider supplies the direction for the next tick. Implementations
// return the last direction they handed out when no new key is pending, so
// the snake keeps drifting forward between key presses. A quit request is the
// provider's own concern: it terminates the program without the engine ever
// seeing another tick.
type InputProvider interface {
	Direction() Velocity
}

// Renderer draws one tick's render set onto a bordered canvas of the fixed
// grid dimensions, clearing and redrawing the whole frame. The engine never
// produces out-of-bounds positions.
type Renderer interface {
	Draw(actors []Renderable)
}

// Status is the game loop state.
type Status int

const (
	StatusRunning Status = iota
	StatusEnded          // terminal; reached via self-collision only
)

// Game sequences one play session: each tick it reads a direction, advances
// the snake, applies feeding and scoring, checks self-collision and emits the
// render set. It exclusively owns its Snake, Food and Score.
type Game struct {
	cfg    Config
	rng    *rand.Rand
	snake  *Snake
	food   *Food
	score  *Score
	in     InputProvider
	out    Renderer
	status Status

	// scratch buffer for the render set, reused across ticks
	actors []Renderable
}

// NewGame creates a session with a fresh snake, food and score. The seed
// drives food placement only.
func NewGame(cfg Config, in InputProvider, out Renderer) *Game {
	rng := rand.New(rand.NewSource(cfg.Seed))
	return &Game{
		cfg:    cfg,
		rng:    rng,
		snake:  NewSnake(cfg),
		food:   NewFood(cfg.GridWidth, cfg.GridHeight, rng),
		score:  NewScore(cfg.GridWidth, cfg.GridHeight),
		in:     in,
		out:    out,
		actors: make([]Renderable, 0, cfg.InitialSegments+3),
	}
}

// Tick runs one iteration of the loop: input, move, feed, collide, render.
// Once the game has ended it is a no-op; no state mutates after the fatal
// tick. Feeding is evaluated before collision, and both can fire on the same
// tick, since they test different position sets.
func (g *Game) Tick() {
	if g.status != StatusRunning {
		return
	}

	g.snake.MoveNext(g.in.Direction())

	head := g.snake.Head()
	if head.SamePositionAs(g.food.Position()) {
		g.snake.GrowHead()
		g.score.Add(1)
		g.food.Relocate(g.rng)
	}

	if g.snake.HitsBody() {
		g.status = StatusEnded
	}

	g.out.Draw(g.renderSet())
}

// renderSet collects food, score, head and body, in draw order.
func (g *Game) renderSet() []Renderable {
	g.actors = g.actors[:0]
	g.actors = append(g.actors, g.food, g.score, g.snake.Head())
	body := g.snake.Body()
	for i := range body {
		g.actors = append(g.actors, &body[i])
	}
	return g.actors
}

// Status returns whether the session is still running.
func (g *Game) Status() Status { return g.status }

// Score returns the accumulated points.
func (g *Game) Score() int { return g.score.Points() }

// Snake exposes the chain, mainly for the platform's debug overlays and tests.
func (g *Game) Snake() *Snake { return g.snake }

// Food exposes the collectible, mainly for tests.
func (g *Game) Food() *Food { return g.food }
