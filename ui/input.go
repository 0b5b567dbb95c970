package ui

import (
	"snake-game/game"
	"snake-game/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var directionKeys = []struct {
	key int32
	dir types.Point
}{
	{rl.KeyUp, types.Up},
	{rl.KeyW, types.Up},
	{rl.KeyDown, types.Down},
	{rl.KeyS, types.Down},
	{rl.KeyLeft, types.Left},
	{rl.KeyA, types.Left},
	{rl.KeyRight, types.Right},
	{rl.KeyD, types.Right},
}

// ReadCommands collects the commands pressed since the previous frame.
func ReadCommands() []game.Command {
	var cmds []game.Command
	for _, k := range directionKeys {
		if rl.IsKeyPressed(k.key) {
			cmds = append(cmds, game.Turn(k.dir))
		}
	}
	if rl.IsKeyPressed(rl.KeyP) {
		cmds = append(cmds, game.TogglePause())
	}
	if rl.IsKeyPressed(rl.KeyR) {
		cmds = append(cmds, game.Restart())
	}
	return cmds
}

// QuitRequested reports whether the window was closed or Q pressed.
func QuitRequested() bool {
	return rl.WindowShouldClose() || rl.IsKeyPressed(rl.KeyQ)
}
