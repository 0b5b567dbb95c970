package game

import (
	"snake-game/game/types"
	"time"
)

// Snapshot is a consistent copy of everything a renderer needs for one frame.
type Snapshot struct {
	SessionID    string
	Grid         types.Grid
	Segments     []types.Point
	Direction    types.Point
	Food         types.Point
	HasFood      bool
	Score        int
	BestScore    int
	Status       Status
	Reason       OverReason
	MoveInterval time.Duration
	Steps        int
}

// Snapshot copies the session state. It is only called between frames, so
// it never observes a half-applied tick.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		SessionID:    g.UUID,
		Grid:         g.Grid,
		Segments:     g.snake.Segments(),
		Direction:    g.snake.Direction(),
		Food:         g.food,
		HasFood:      g.hasFood,
		Score:        g.score,
		BestScore:    g.bestScore,
		Status:       g.status,
		Reason:       g.reason,
		MoveInterval: g.moveInterval,
		Steps:        g.Steps,
	}
}
