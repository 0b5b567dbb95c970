package entity

import (
	"errors"
	"snake-game/game/types"
	"testing"
)

func newTestSnake(t *testing.T) *Snake {
	t.Helper()
	s, err := NewSnake([]types.Point{{X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2}}, types.Right)
	if err != nil {
		t.Fatalf("NewSnake: %v", err)
	}
	return s
}

func assertBody(t *testing.T, s *Snake, want []types.Point) {
	t.Helper()
	got := s.Segments()
	if len(got) != len(want) {
		t.Fatalf("body = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("body = %v, want %v", got, want)
		}
	}
}

func TestNewSnakeRejectsEmptyBody(t *testing.T) {
	if _, err := NewSnake(nil, types.Right); !errors.Is(err, ErrEmptyBody) {
		t.Fatalf("expected ErrEmptyBody, got %v", err)
	}
	if _, err := NewSnake([]types.Point{{X: 1, Y: 1}}, types.Point{X: 1, Y: 1}); !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("expected ErrInvalidDirection, got %v", err)
	}
}

func TestStepWithoutGrowthKeepsLength(t *testing.T) {
	s := newTestSnake(t)
	head := s.Step(false)
	if head != (types.Point{X: 3, Y: 2}) {
		t.Errorf("new head = %v", head)
	}
	assertBody(t, s, []types.Point{{X: 3, Y: 2}, {X: 2, Y: 2}, {X: 1, Y: 2}})
}

func TestStepWithGrowthExtendsLength(t *testing.T) {
	s := newTestSnake(t)
	s.Step(true)
	assertBody(t, s, []types.Point{{X: 3, Y: 2}, {X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2}})
}

func TestQueueRejectsOppositeDirection(t *testing.T) {
	s := newTestSnake(t)
	s.QueueTurn(types.Left)
	s.Step(false)
	if s.Direction() != types.Right {
		t.Errorf("direction = %v, want %v", s.Direction(), types.Right)
	}
	assertBody(t, s, []types.Point{{X: 3, Y: 2}, {X: 2, Y: 2}, {X: 1, Y: 2}})
}

func TestQueuedTurnAppliesOnNextStep(t *testing.T) {
	s := newTestSnake(t)
	s.QueueTurn(types.Up)
	if s.Direction() != types.Right {
		t.Fatal("turn applied before step")
	}
	s.Step(false)
	if s.Direction() != types.Up {
		t.Errorf("direction = %v, want %v", s.Direction(), types.Up)
	}
	if s.GetHead() != (types.Point{X: 2, Y: 1}) {
		t.Errorf("head = %v, want (2,1)", s.GetHead())
	}
	if _, ok := s.PendingTurn(); ok {
		t.Error("pending turn not cleared by step")
	}
}

func TestQueuePreventsDoubleTurn(t *testing.T) {
	s := newTestSnake(t)
	s.QueueTurn(types.Up)
	s.QueueTurn(types.Down)
	s.Step(false)
	if s.Direction() != types.Up {
		t.Errorf("direction = %v, want %v", s.Direction(), types.Up)
	}
}

func TestQueueTurnRules(t *testing.T) {
	tests := []struct {
		name    string
		turns   []types.Point
		pending types.Point
		queued  bool
	}{
		{"same as heading", []types.Point{types.Right}, types.Point{}, false},
		{"reverse of heading", []types.Point{types.Left}, types.Point{}, false},
		{"not cardinal", []types.Point{{X: 1, Y: 1}}, types.Point{}, false},
		{"zero vector", []types.Point{{X: 0, Y: 0}}, types.Point{}, false},
		{"valid turn", []types.Point{types.Down}, types.Down, true},
		{"repeat of pending", []types.Point{types.Down, types.Down}, types.Down, true},
		{"reverse of pending", []types.Point{types.Down, types.Up}, types.Down, true},
		{"back to heading leaves pending", []types.Point{types.Down, types.Right}, types.Down, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSnake(t)
			for _, d := range tt.turns {
				s.QueueTurn(d)
			}
			got, ok := s.PendingTurn()
			if ok != tt.queued || got != tt.pending {
				t.Errorf("pending = %v,%v want %v,%v", got, ok, tt.pending, tt.queued)
			}
		})
	}
}

func TestQueueNeverAcceptsReversal(t *testing.T) {
	dirs := []types.Point{types.Up, types.Down, types.Left, types.Right}
	s := newTestSnake(t)
	for i := 0; i < 200; i++ {
		d := dirs[(i*7+i/3)%4]
		before := s.Direction()
		pending, had := s.PendingTurn()
		s.QueueTurn(d)
		got, ok := s.PendingTurn()
		if ok && got == before.Opposite() {
			t.Fatalf("queued reversal %v of heading %v", got, before)
		}
		if had && ok && got == pending.Opposite() {
			t.Fatalf("queued reversal %v of pending %v", got, pending)
		}
		if i%3 == 0 {
			s.Step(false)
		}
	}
}

func TestPreviewDoesNotMutate(t *testing.T) {
	s := newTestSnake(t)
	s.QueueTurn(types.Down)
	if p := s.PreviewNextHead(); p != (types.Point{X: 2, Y: 3}) {
		t.Errorf("preview = %v, want (2,3)", p)
	}
	if s.Direction() != types.Right {
		t.Error("preview changed direction")
	}
	if _, ok := s.PendingTurn(); !ok {
		t.Error("preview consumed the pending turn")
	}
	assertBody(t, s, []types.Point{{X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2}})
}

func TestHitsSelf(t *testing.T) {
	s, err := NewSnake([]types.Point{{X: 2, Y: 2}, {X: 2, Y: 3}, {X: 1, Y: 3}, {X: 1, Y: 2}, {X: 0, Y: 2}}, types.Up)
	if err != nil {
		t.Fatal(err)
	}
	if s.HitsSelf() {
		t.Fatal("fresh snake reports self hit")
	}
	s.QueueTurn(types.Left)
	s.Step(false)
	if !s.HitsSelf() {
		t.Errorf("head %v should overlap body %v", s.GetHead(), s.Segments())
	}
}

func TestMovingIntoVacatedTailIsSafe(t *testing.T) {
	s, err := NewSnake([]types.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}}, types.Down)
	if err != nil {
		t.Fatal(err)
	}
	s.Step(false)
	if s.HitsSelf() {
		t.Errorf("moving into the old tail cell should be safe, body %v", s.Segments())
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	s := newTestSnake(t)
	s.QueueTurn(types.Down)
	s.Step(true)
	s.Step(true)
	s.QueueTurn(types.Left)
	s.Reset()
	assertBody(t, s, []types.Point{{X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2}})
	if s.Direction() != types.Right {
		t.Errorf("direction = %v after reset", s.Direction())
	}
	if _, ok := s.PendingTurn(); ok {
		t.Error("pending turn survived reset")
	}
}

func TestSegmentsIsACopy(t *testing.T) {
	s := newTestSnake(t)
	seg := s.Segments()
	seg[0] = types.Point{X: 99, Y: 99}
	if s.GetHead() == seg[0] {
		t.Error("Segments exposes internal storage")
	}
}
