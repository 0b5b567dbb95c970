// Package ai drives the snake on its own for demo play. It only produces
// ordinary turn commands, the same ones a keyboard would.
package ai

import (
	"snake-game/game"
	"snake-game/game/manager"
	"snake-game/game/types"
)

// Autopilot picks a move each frame by scoring the three cells the head can
// reach: straight on, left and right.
type Autopilot struct {
	grid         types.Grid
	collisionMgr *manager.CollisionManager
}

func NewAutopilot(grid types.Grid) *Autopilot {
	return &Autopilot{
		grid:         grid,
		collisionMgr: manager.NewCollisionManager(grid),
	}
}

// NextCommand returns a turn command, or false when the snake should keep
// its heading or the session is not running.
func (a *Autopilot) NextCommand(s game.Snapshot) (game.Command, bool) {
	if s.Status != game.Running || len(s.Segments) == 0 {
		return game.Command{}, false
	}

	straight := s.Direction
	candidates := []types.Point{straight, straight.TurnLeft(), straight.TurnRight()}

	best := straight
	bestScore := a.score(s, straight)
	for _, dir := range candidates[1:] {
		if sc := a.score(s, dir); sc > bestScore {
			best, bestScore = dir, sc
		}
	}
	if best == straight {
		return game.Command{}, false
	}
	return game.Turn(best), true
}

// score rates moving the head one step in dir. Death is -1, food is 1,
// getting closer to food is 0.5 and moving away is -0.3. Free neighbours of
// the target cell break ties.
func (a *Autopilot) score(s game.Snapshot, dir types.Point) float64 {
	head := s.Segments[0]
	next := head.Add(dir)

	if a.collisionMgr.IsDanger(next, s.Segments) {
		return -1
	}

	value := 0.0
	if s.HasFood {
		switch {
		case next == s.Food:
			value = 1
		case types.Manhattan(next, s.Food) < types.Manhattan(head, s.Food):
			value = 0.5
		default:
			value = -0.3
		}
	}
	return value + 0.01*float64(a.freeNeighbours(next, s.Segments))
}

func (a *Autopilot) freeNeighbours(p types.Point, body []types.Point) int {
	n := 0
	for _, d := range []types.Point{types.Up, types.Down, types.Left, types.Right} {
		if !a.collisionMgr.IsDanger(p.Add(d), body) {
			n++
		}
	}
	return n
}
