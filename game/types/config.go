package types

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// MinCols is the narrowest board that fits the default start body.
const MinCols = 3

// Config holds the static settings of a session. It is never modified once a
// game has been built from it.
type Config struct {
	Cols     int
	Rows     int
	CellSize int // rendering only
	FPS      int

	BaseMoveInterval time.Duration
	MinMoveInterval  time.Duration
	AccelEvery       int     // points per speed level
	AccelFactor      float64 // interval multiplier per level
}

// DefaultConfig returns the stock 30x30 board.
func DefaultConfig() Config {
	return Config{
		Cols:             30,
		Rows:             30,
		CellSize:         20,
		FPS:              60,
		BaseMoveInterval: 120 * time.Millisecond,
		MinMoveInterval:  45 * time.Millisecond,
		AccelEvery:       5,
		AccelFactor:      0.92,
	}
}

// Grid returns the board dimensions.
func (c Config) Grid() Grid {
	return Grid{Width: c.Cols, Height: c.Rows}
}

// Width is the board width in pixels.
func (c Config) Width() int {
	return c.Cols * c.CellSize
}

func (c Config) Height() int {
	return c.Rows * c.CellSize
}

func (c Config) Validate() error {
	switch {
	case c.Cols < MinCols || c.Rows < 1:
		return fmt.Errorf("%w: grid %dx%d, need at least %dx1", ErrInvalidConfig, c.Cols, c.Rows, MinCols)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size %d", ErrInvalidConfig, c.CellSize)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps %d", ErrInvalidConfig, c.FPS)
	case c.MinMoveInterval <= 0 || c.BaseMoveInterval <= 0:
		return fmt.Errorf("%w: move intervals must be positive", ErrInvalidConfig)
	case c.MinMoveInterval > c.BaseMoveInterval:
		return fmt.Errorf("%w: min interval %v above base %v", ErrInvalidConfig, c.MinMoveInterval, c.BaseMoveInterval)
	case c.AccelEvery <= 0:
		return fmt.Errorf("%w: accel every %d", ErrInvalidConfig, c.AccelEvery)
	case c.AccelFactor <= 0 || c.AccelFactor > 1:
		return fmt.Errorf("%w: accel factor %v", ErrInvalidConfig, c.AccelFactor)
	}
	return nil
}

// MoveInterval is the time between ticks at the given score:
// max(min, base * factor^floor(score/accelEvery)).
func (c Config) MoveInterval(score int) time.Duration {
	levels := score / c.AccelEvery
	interval := time.Duration(float64(c.BaseMoveInterval) * math.Pow(c.AccelFactor, float64(levels)))
	if interval < c.MinMoveInterval {
		return c.MinMoveInterval
	}
	return interval
}

// StartBody is the three-cell snake centred on the board, head first,
// facing Right.
func (c Config) StartBody() []Point {
	cx, cy := c.Cols/2, c.Rows/2
	return []Point{
		{X: cx + 1, Y: cy},
		{X: cx, Y: cy},
		{X: cx - 1, Y: cy},
	}
}
