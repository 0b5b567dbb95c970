package entity

import (
	"errors"
	"fmt"
	"snake-game/game/types"
)

var (
	// ErrEmptyBody is returned when a snake is built without segments.
	ErrEmptyBody = errors.New("snake body cannot be empty")
	// ErrInvalidDirection is returned for a zero, diagonal or long vector.
	ErrInvalidDirection = errors.New("direction must be a cardinal unit vector")
)

// Snake owns the body geometry, the heading and at most one queued turn.
// Body[0] is the head.
type Snake struct {
	body      []types.Point
	direction types.Point
	pending   types.Point
	hasTurn   bool

	initialBody      []types.Point
	initialDirection types.Point
}

// NewSnake copies body and remembers it, together with dir, for Reset.
func NewSnake(body []types.Point, dir types.Point) (*Snake, error) {
	if len(body) == 0 {
		return nil, ErrEmptyBody
	}
	if !dir.IsCardinal() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDirection, dir)
	}
	s := &Snake{
		initialBody:      append([]types.Point(nil), body...),
		initialDirection: dir,
	}
	s.Reset()
	return s, nil
}

// Reset restores the body and heading given at construction and drops any
// queued turn.
func (s *Snake) Reset() {
	s.body = append(s.body[:0], s.initialBody...)
	s.direction = s.initialDirection
	s.pending = types.Point{}
	s.hasTurn = false
}

func (s *Snake) GetHead() types.Point {
	return s.body[0]
}

func (s *Snake) Direction() types.Point {
	return s.direction
}

// PendingTurn returns the queued turn, if any.
func (s *Snake) PendingTurn() (types.Point, bool) {
	return s.pending, s.hasTurn
}

func (s *Snake) Len() int {
	return len(s.body)
}

// QueueTurn records dir to be applied on the next Step. Requests that would
// reverse the current heading, or reverse or repeat the queued turn, are
// dropped, as are non-cardinal vectors and the current heading itself.
func (s *Snake) QueueTurn(dir types.Point) {
	if dir == s.direction || !dir.IsCardinal() {
		return
	}
	if dir == s.direction.Opposite() {
		return
	}
	if s.hasTurn && (dir == s.pending || dir == s.pending.Opposite()) {
		return
	}
	s.pending = dir
	s.hasTurn = true
}

func (s *Snake) heading() types.Point {
	if s.hasTurn {
		return s.pending
	}
	return s.direction
}

// PreviewNextHead returns where the head lands on the next Step without
// moving the snake.
func (s *Snake) PreviewNextHead() types.Point {
	return s.GetHead().Add(s.heading())
}

// Step applies the queued turn and advances one cell. With grow set the tail
// stays put and the body gets one segment longer.
func (s *Snake) Step(grow bool) types.Point {
	s.direction = s.heading()
	s.pending = types.Point{}
	s.hasTurn = false

	newHead := s.GetHead().Add(s.direction)
	if grow {
		s.body = append(s.body, types.Point{})
	}
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = newHead
	return newHead
}

// HitsSelf reports whether the head overlaps a trailing segment.
func (s *Snake) HitsSelf() bool {
	head := s.GetHead()
	for _, p := range s.body[1:] {
		if p == head {
			return true
		}
	}
	return false
}

// Occupies reports whether any segment sits on cell.
func (s *Snake) Occupies(cell types.Point) bool {
	for _, p := range s.body {
		if p == cell {
			return true
		}
	}
	return false
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []types.Point {
	out := make([]types.Point, len(s.body))
	copy(out, s.body)
	return out
}
