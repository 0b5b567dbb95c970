// Package term is a terminal front end: keyboard input through
// github.com/eiannone/keyboard and an ANSI text renderer.
package term

import (
	"snake-game/game"
	"snake-game/game/types"

	"github.com/eiannone/keyboard"
)

// KeyInput represents a keyboard input event
type KeyInput struct {
	Char rune
	Key  keyboard.Key
}

// KeyboardHandler reads keys on a background goroutine.
type KeyboardHandler struct {
	inputChan chan KeyInput
}

func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{
		inputChan: make(chan KeyInput, 16),
	}
}

// Start puts the terminal in raw mode and begins listening.
func (h *KeyboardHandler) Start() error {
	if err := keyboard.Open(); err != nil {
		return err
	}

	go func() {
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				return
			}
			h.inputChan <- KeyInput{Char: char, Key: key}
		}
	}()
	return nil
}

func (h *KeyboardHandler) Stop() {
	keyboard.Close()
}

// Drain returns every key received since the last call without blocking.
func (h *KeyboardHandler) Drain() []KeyInput {
	var keys []KeyInput
	for {
		select {
		case k := <-h.inputChan:
			keys = append(keys, k)
		default:
			return keys
		}
	}
}

// ParseCommand maps a key to a game command. Arrows and WASD turn, P or
// space pauses and R restarts.
func ParseCommand(input KeyInput) (game.Command, bool) {
	switch input.Key {
	case keyboard.KeyArrowUp:
		return game.Turn(types.Up), true
	case keyboard.KeyArrowDown:
		return game.Turn(types.Down), true
	case keyboard.KeyArrowLeft:
		return game.Turn(types.Left), true
	case keyboard.KeyArrowRight:
		return game.Turn(types.Right), true
	case keyboard.KeySpace:
		return game.TogglePause(), true
	}

	switch input.Char {
	case 'w', 'W':
		return game.Turn(types.Up), true
	case 's', 'S':
		return game.Turn(types.Down), true
	case 'a', 'A':
		return game.Turn(types.Left), true
	case 'd', 'D':
		return game.Turn(types.Right), true
	case 'p', 'P':
		return game.TogglePause(), true
	case 'r', 'R':
		return game.Restart(), true
	}
	return game.Command{}, false
}

// IsQuit checks if the input is a quit command
func IsQuit(input KeyInput) bool {
	return input.Char == 'q' || input.Char == 'Q' || input.Key == keyboard.KeyEsc || input.Key == keyboard.KeyCtrlC
}
