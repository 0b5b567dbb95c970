package game

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"snake-game/game/entity"
	"snake-game/game/manager"
	"snake-game/game/types"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Status is the state of the session state machine.
type Status int

const (
	Running Status = iota
	Paused
	Over
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Over:
		return "over"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// OverReason tells why a session reached Over.
type OverReason int

const (
	NotOver OverReason = iota
	WallHit
	SelfHit
	BoardFull
)

func (r OverReason) String() string {
	switch r {
	case NotOver:
		return "not over"
	case WallHit:
		return "wall"
	case SelfHit:
		return "self"
	case BoardFull:
		return "board full"
	default:
		return fmt.Sprintf("OverReason(%d)", int(r))
	}
}

// ScoreStore persists the best score between runs.
type ScoreStore interface {
	LoadBestScore() (int, error)
	SaveBestScore(score int) error
}

// Notifier receives fire-and-forget gameplay events, typically to play a
// sound. Implementations must not block.
type Notifier interface {
	Pickup()
	Collision()
}

// Recorder is told about every session that reaches Over.
type Recorder interface {
	AddGame(sessionID string, score int, start, end time.Time)
}

type nopNotifier struct{}

func (nopNotifier) Pickup() {}

func (nopNotifier) Collision() {}

// Game owns one play session: the snake, the food, the score and the tick
// clock. It is not safe for concurrent use; the frame loop drives it.
type Game struct {
	UUID      string
	Config    types.Config
	Grid      types.Grid
	StartTime time.Time
	EndTime   time.Time
	Steps     int

	snake        *entity.Snake
	food         types.Point
	hasFood      bool
	status       Status
	reason       OverReason
	score        int
	bestScore    int
	moveInterval time.Duration
	accumulator  time.Duration

	foodMgr      *manager.FoodManager
	collisionMgr *manager.CollisionManager
	store        ScoreStore
	notifier     Notifier
	recorder     Recorder
	now          func() time.Time
}

// Option configures a Game at construction.
type Option func(*options)

type options struct {
	store    ScoreStore
	notifier Notifier
	recorder Recorder
	rng      *rand.Rand
	now      func() time.Time
	body     []types.Point
	dir      types.Point
}

// WithStore loads the best score from s and saves new records to it.
func WithStore(s ScoreStore) Option {
	return func(o *options) { o.store = s }
}

func WithNotifier(n Notifier) Option {
	return func(o *options) { o.notifier = n }
}

func WithRecorder(r Recorder) Option {
	return func(o *options) { o.recorder = r }
}

// WithRand sets the random source used for food placement.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithClock replaces time.Now for session timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithStart overrides the starting body and heading. Reset returns to them.
func WithStart(body []types.Point, dir types.Point) Option {
	return func(o *options) {
		o.body = body
		o.dir = dir
	}
}

func NewGame(cfg types.Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{
		notifier: nopNotifier{},
		now:      time.Now,
		body:     cfg.StartBody(),
		dir:      types.Right,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	snake, err := entity.NewSnake(o.body, o.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to create snake: %w", err)
	}

	grid := cfg.Grid()
	for _, p := range o.body {
		if !grid.Contains(p) {
			return nil, fmt.Errorf("%w: start cell %v outside %dx%d grid", types.ErrInvalidConfig, p, grid.Width, grid.Height)
		}
	}
	g := &Game{
		Config:       cfg,
		Grid:         grid,
		snake:        snake,
		foodMgr:      manager.NewFoodManager(grid, o.rng),
		collisionMgr: manager.NewCollisionManager(grid),
		store:        o.store,
		notifier:     o.notifier,
		recorder:     o.recorder,
		now:          o.now,
	}
	g.bestScore = g.loadBestScore()
	g.Reset()
	return g, nil
}

func (g *Game) loadBestScore() int {
	if g.store == nil {
		return 0
	}
	best, err := g.store.LoadBestScore()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("[Store] could not load best score, starting from 0: %v", err)
		}
		return 0
	}
	if best < 0 {
		return 0
	}
	return best
}

// Reset starts a new session: the snake returns to its start, score and
// speed go back to their initial values and new food is placed. The best
// score is kept.
func (g *Game) Reset() {
	g.snake.Reset()
	g.UUID = uuid.New().String()
	g.StartTime = g.now()
	g.EndTime = time.Time{}
	g.Steps = 0
	g.score = 0
	g.status = Running
	g.reason = NotOver
	g.accumulator = 0
	g.moveInterval = g.Config.BaseMoveInterval
	g.spawnFood()
}

func (g *Game) spawnFood() {
	g.food, g.hasFood = g.foodMgr.GenerateFood(g.snake.Segments())
}

// TogglePause flips between Running and Paused. It does nothing once the
// session is Over.
func (g *Game) TogglePause() {
	switch g.status {
	case Running:
		g.status = Paused
	case Paused:
		g.status = Running
	case Over:
	}
}

// Update advances the clock by dt and runs as many ticks as fit into the
// accumulated time. Time only accumulates while Running; if the session
// stops running part way, the remainder is kept for later.
func (g *Game) Update(dt time.Duration) {
	switch g.status {
	case Paused, Over:
		return
	case Running:
	}
	if dt <= 0 {
		return
	}

	g.accumulator += dt
	for g.accumulator >= g.moveInterval {
		g.accumulator -= g.moveInterval
		g.Tick()
		if g.status != Running {
			break
		}
	}
}

// Tick moves the snake one cell, handling food, speed and collisions.
func (g *Game) Tick() {
	if g.status != Running {
		return
	}
	g.Steps++

	next := g.snake.PreviewNextHead()
	grow := g.collisionMgr.IsFoodCollision(next, g.food, g.hasFood)
	g.snake.Step(grow)

	if grow {
		g.score++
		g.notifier.Pickup()
		g.spawnFood()
		g.moveInterval = g.Config.MoveInterval(g.score)
	}

	switch g.collisionMgr.CheckCollision(g.snake) {
	case manager.WallCollision:
		g.notifier.Collision()
		g.gameOver(WallHit)
		return
	case manager.SelfCollision:
		g.notifier.Collision()
		g.gameOver(SelfHit)
		return
	case manager.NoCollision:
	}

	if !g.hasFood {
		g.gameOver(BoardFull)
	}
}

func (g *Game) gameOver(reason OverReason) {
	g.status = Over
	g.reason = reason
	g.EndTime = g.now()

	if g.score > g.bestScore {
		g.bestScore = g.score
		g.saveBestScore()
	}
	if g.recorder != nil {
		g.recorder.AddGame(g.UUID, g.score, g.StartTime, g.EndTime)
	}
	log.Printf("[Game] session %s over (%s): score %d, best %d, %d steps", g.UUID, reason, g.score, g.bestScore, g.Steps)
}

func (g *Game) saveBestScore() {
	if g.store == nil {
		return
	}
	if err := g.store.SaveBestScore(g.bestScore); err != nil {
		log.Printf("[Store] could not save best score %d: %v", g.bestScore, err)
	}
}

func (g *Game) Status() Status {
	return g.status
}

// Reason is NotOver unless Status is Over.
func (g *Game) Reason() OverReason {
	return g.reason
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) BestScore() int {
	return g.bestScore
}

// MoveInterval is the current time between ticks.
func (g *Game) MoveInterval() time.Duration {
	return g.moveInterval
}

// Accumulator is the unconsumed time carried to the next frame.
func (g *Game) Accumulator() time.Duration {
	return g.accumulator
}

// Food returns the current food cell; ok is false when the board is full.
func (g *Game) Food() (food types.Point, ok bool) {
	return g.food, g.hasFood
}

// GetSnake exposes the snake for read-only queries.
func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}
