package manager

import (
	"snake-game/game/types"

	"golang.org/x/exp/rand"
)

// FoodManager places food on free cells. It keeps no state between calls
// other than its random source.
type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
}

func NewFoodManager(grid types.Grid, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rng,
	}
}

// GenerateFood picks a free cell for the next food item. ok is false when
// occupied covers the whole board.
func (fm *FoodManager) GenerateFood(occupied []types.Point) (food types.Point, ok bool) {
	return SpawnFood(fm.rng, fm.grid, occupied)
}

// SpawnFood returns a cell chosen uniformly among the cells of grid that are
// not in occupied, or false if there is none.
func SpawnFood(rng *rand.Rand, grid types.Grid, occupied []types.Point) (types.Point, bool) {
	taken := make(map[types.Point]struct{}, len(occupied))
	for _, p := range occupied {
		taken[p] = struct{}{}
	}

	free := make([]types.Point, 0, grid.Cells())
	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			p := types.Point{X: x, Y: y}
			if _, ok := taken[p]; !ok {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[rng.Intn(len(free))], true
}
