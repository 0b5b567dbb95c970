package ai

import (
	"snake-game/game"
	"snake-game/game/types"
	"testing"

	"golang.org/x/exp/rand"
)

func snapshot(body []types.Point, dir, food types.Point) game.Snapshot {
	return game.Snapshot{
		Grid:      types.Grid{Width: 10, Height: 10},
		Segments:  body,
		Direction: dir,
		Food:      food,
		HasFood:   true,
		Status:    game.Running,
	}
}

func TestAutopilotTurnsTowardsFood(t *testing.T) {
	a := NewAutopilot(types.Grid{Width: 10, Height: 10})
	s := snapshot([]types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}, types.Right, types.Point{X: 5, Y: 1})

	cmd, ok := a.NextCommand(s)
	if !ok || cmd.Kind != game.TurnCommand || cmd.Direction != types.Up {
		t.Fatalf("command = %+v,%v want turn up", cmd, ok)
	}
}

func TestAutopilotKeepsHeadingWhenAligned(t *testing.T) {
	a := NewAutopilot(types.Grid{Width: 10, Height: 10})
	s := snapshot([]types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}, types.Right, types.Point{X: 8, Y: 5})

	if cmd, ok := a.NextCommand(s); ok {
		t.Fatalf("unexpected command %+v", cmd)
	}
}

func TestAutopilotAvoidsWall(t *testing.T) {
	a := NewAutopilot(types.Grid{Width: 10, Height: 10})
	s := snapshot([]types.Point{{X: 9, Y: 5}, {X: 8, Y: 5}, {X: 7, Y: 5}}, types.Right, types.Point{X: 0, Y: 5})

	cmd, ok := a.NextCommand(s)
	if !ok || (cmd.Direction != types.Up && cmd.Direction != types.Down) {
		t.Fatalf("command = %+v,%v want a turn away from the wall", cmd, ok)
	}
}

func TestAutopilotIdleWhenNotRunning(t *testing.T) {
	a := NewAutopilot(types.Grid{Width: 10, Height: 10})
	s := snapshot([]types.Point{{X: 9, Y: 5}, {X: 8, Y: 5}}, types.Right, types.Point{X: 0, Y: 0})
	s.Status = game.Paused
	if _, ok := a.NextCommand(s); ok {
		t.Error("autopilot steered a paused game")
	}
}

func TestAutopilotPlaysAGame(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.Cols, cfg.Rows = 12, 12
	g, err := game.NewGame(cfg, game.WithRand(rand.New(rand.NewSource(5))))
	if err != nil {
		t.Fatal(err)
	}
	a := NewAutopilot(g.Grid)

	for i := 0; i < 2000 && g.Status() == game.Running; i++ {
		if cmd, ok := a.NextCommand(g.Snapshot()); ok {
			g.Apply(cmd)
		}
		g.Update(g.MoveInterval())
	}
	if g.Score() == 0 && g.Status() == game.Over {
		t.Errorf("autopilot died without eating after %d steps (%s)", g.Steps, g.Reason())
	}
	if g.Steps == 0 {
		t.Error("no ticks were run")
	}
}
