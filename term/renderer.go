package term

import (
	"fmt"
	"io"
	"snake-game/game"
	"snake-game/game/types"
	"strings"
)

const (
	CharEmpty = "  "
	CharWall  = "##"
	CharHead  = "@@"
	CharBody  = "[]"
	CharFood  = "()"
)

// Renderer draws snapshots as text. Lines end in \r\n because the keyboard
// handler leaves the terminal in raw mode.
type Renderer struct {
	out    io.Writer
	buffer strings.Builder
	clear  bool
}

// NewRenderer writes frames to out. With clear set every frame starts with
// an ANSI clear-screen sequence.
func NewRenderer(out io.Writer, clear bool) *Renderer {
	return &Renderer{out: out, clear: clear}
}

func (r *Renderer) HideCursor() {
	fmt.Fprint(r.out, "\033[?25l")
}

func (r *Renderer) ShowCursor() {
	fmt.Fprint(r.out, "\033[?25h")
}

func (r *Renderer) Render(s game.Snapshot) error {
	r.buffer.Reset()
	if r.clear {
		r.buffer.WriteString("\033[H\033[2J")
	}

	cells := make(map[types.Point]string, len(s.Segments)+1)
	if s.HasFood {
		cells[s.Food] = CharFood
	}
	for i := len(s.Segments) - 1; i >= 0; i-- {
		cells[s.Segments[i]] = CharBody
	}
	if len(s.Segments) > 0 {
		cells[s.Segments[0]] = CharHead
	}

	border := strings.Repeat(CharWall, s.Grid.Width+2)
	r.buffer.WriteString(border + "\r\n")
	for y := 0; y < s.Grid.Height; y++ {
		r.buffer.WriteString(CharWall)
		for x := 0; x < s.Grid.Width; x++ {
			if c, ok := cells[types.Point{X: x, Y: y}]; ok {
				r.buffer.WriteString(c)
			} else {
				r.buffer.WriteString(CharEmpty)
			}
		}
		r.buffer.WriteString(CharWall + "\r\n")
	}
	r.buffer.WriteString(border + "\r\n")

	fmt.Fprintf(&r.buffer, "Score: %d  Best: %d  Speed: %dms\r\n", s.Score, s.BestScore, s.MoveInterval.Milliseconds())
	switch s.Status {
	case game.Paused:
		r.buffer.WriteString("Paused - press P to resume\r\n")
	case game.Over:
		r.buffer.WriteString("Game over - press R to restart, Q to quit\r\n")
	case game.Running:
		r.buffer.WriteString("Arrows/WASD move, P pause, Q quit\r\n")
	}

	_, err := io.WriteString(r.out, r.buffer.String())
	return err
}

// Bell rings the terminal bell on collisions. The terminal has a single
// sound, so pickups are silent.
type Bell struct {
	Out io.Writer
}

func (b Bell) Pickup() {}

func (b Bell) Collision() {
	fmt.Fprint(b.Out, "\a")
}
