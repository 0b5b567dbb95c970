package game

import "snake-game/game/types"

// CommandKind identifies a decoded player command.
type CommandKind int

const (
	TurnCommand CommandKind = iota
	PauseCommand
	ResetCommand
)

// Command is one input event, already decoded from whatever device produced
// it. Direction is only meaningful for TurnCommand.
type Command struct {
	Kind      CommandKind
	Direction types.Point
}

func Turn(dir types.Point) Command {
	return Command{Kind: TurnCommand, Direction: dir}
}

func TogglePause() Command {
	return Command{Kind: PauseCommand}
}

func Restart() Command {
	return Command{Kind: ResetCommand}
}

// Apply handles a frame's worth of commands in order.
func (g *Game) Apply(cmds ...Command) {
	for _, cmd := range cmds {
		switch cmd.Kind {
		case TurnCommand:
			g.snake.QueueTurn(cmd.Direction)
		case PauseCommand:
			g.TogglePause()
		case ResetCommand:
			g.Reset()
		}
	}
}
