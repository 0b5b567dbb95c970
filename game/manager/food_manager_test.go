package manager

import (
	"snake-game/game/types"
	"testing"

	"golang.org/x/exp/rand"
)

func TestFoodNotOnSnake(t *testing.T) {
	grid := types.Grid{Width: 5, Height: 5}
	snake := []types.Point{{X: 2, Y: 2}, {X: 2, Y: 3}, {X: 2, Y: 4}}
	fm := NewFoodManager(grid, rand.New(rand.NewSource(1)))

	for i := 0; i < 500; i++ {
		food, ok := fm.GenerateFood(snake)
		if !ok {
			t.Fatal("board reported full")
		}
		if !grid.Contains(food) {
			t.Fatalf("food %v outside grid", food)
		}
		for _, p := range snake {
			if p == food {
				t.Fatalf("food spawned on snake at %v", food)
			}
		}
	}
}

func TestFoodNoneWhenFull(t *testing.T) {
	grid := types.Grid{Width: 2, Height: 2}
	full := []types.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	if food, ok := SpawnFood(rand.New(rand.NewSource(7)), grid, full); ok {
		t.Fatalf("expected no food on a full board, got %v", food)
	}
}

func TestFoodTakesLastFreeCell(t *testing.T) {
	grid := types.Grid{Width: 2, Height: 2}
	occupied := []types.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	food, ok := SpawnFood(rand.New(rand.NewSource(3)), grid, occupied)
	if !ok || food != (types.Point{X: 1, Y: 0}) {
		t.Fatalf("food = %v,%v want (1,0),true", food, ok)
	}
}

func TestFoodCoversEveryFreeCell(t *testing.T) {
	grid := types.Grid{Width: 3, Height: 3}
	occupied := []types.Point{{X: 1, Y: 1}}
	rng := rand.New(rand.NewSource(42))

	seen := make(map[types.Point]int)
	for i := 0; i < 4000; i++ {
		food, ok := SpawnFood(rng, grid, occupied)
		if !ok {
			t.Fatal("unexpected full board")
		}
		seen[food]++
	}
	if len(seen) != grid.Cells()-len(occupied) {
		t.Fatalf("visited %d cells, want %d", len(seen), grid.Cells()-len(occupied))
	}
	for cell, n := range seen {
		// 500 expected per cell
		if n < 350 || n > 650 {
			t.Errorf("cell %v chosen %d times, distribution looks skewed", cell, n)
		}
	}
}
