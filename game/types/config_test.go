package types

import (
	"errors"
	"testing"
	"time"
)

func TestMoveIntervalSchedule(t *testing.T) {
	cfg := DefaultConfig()
	level1 := time.Duration(float64(cfg.BaseMoveInterval) * 0.92)

	for score := 0; score <= 4; score++ {
		if got := cfg.MoveInterval(score); got != cfg.BaseMoveInterval {
			t.Errorf("score %d: interval %v, want %v", score, got, cfg.BaseMoveInterval)
		}
	}
	for score := 5; score <= 9; score++ {
		if got := cfg.MoveInterval(score); got != level1 {
			t.Errorf("score %d: interval %v, want %v", score, got, level1)
		}
	}
}

func TestMoveIntervalFloorsAtMinimum(t *testing.T) {
	cfg := DefaultConfig()
	prev := cfg.MoveInterval(0)
	for score := 1; score < 2000; score++ {
		got := cfg.MoveInterval(score)
		if got < cfg.MinMoveInterval {
			t.Fatalf("score %d: interval %v below minimum %v", score, got, cfg.MinMoveInterval)
		}
		if got > prev {
			t.Fatalf("score %d: interval went up from %v to %v", score, prev, got)
		}
		prev = got
	}
	if prev != cfg.MinMoveInterval {
		t.Errorf("interval at high score = %v, want floor %v", prev, cfg.MinMoveInterval)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"zero cols", func(c *Config) { c.Cols = 0 }, false},
		{"narrower than start body", func(c *Config) { c.Cols, c.Rows = 2, 1 }, false},
		{"smallest board", func(c *Config) { c.Cols, c.Rows = 3, 1 }, true},
		{"negative rows", func(c *Config) { c.Rows = -3 }, false},
		{"zero fps", func(c *Config) { c.FPS = 0 }, false},
		{"min above base", func(c *Config) { c.MinMoveInterval = time.Second }, false},
		{"zero accel every", func(c *Config) { c.AccelEvery = 0 }, false},
		{"factor above one", func(c *Config) { c.AccelFactor = 1.5 }, false},
		{"factor of one", func(c *Config) { c.AccelFactor = 1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestStartBodyIsCentred(t *testing.T) {
	cfg := DefaultConfig()
	want := []Point{{16, 15}, {15, 15}, {14, 15}}
	got := cfg.StartBody()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDirections(t *testing.T) {
	for _, d := range []Point{Up, Down, Left, Right} {
		if !d.IsCardinal() {
			t.Errorf("%v should be cardinal", d)
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("double opposite of %v", d)
		}
		if d.TurnLeft().TurnRight() != d {
			t.Errorf("left then right of %v", d)
		}
	}
	if Right.TurnLeft() != Up || Up.TurnRight() != Right || Down.TurnRight() != Left {
		t.Error("turns do not follow screen orientation")
	}
	for _, d := range []Point{{0, 0}, {1, 1}, {2, 0}, {0, -2}} {
		if d.IsCardinal() {
			t.Errorf("%v should not be cardinal", d)
		}
	}
}
