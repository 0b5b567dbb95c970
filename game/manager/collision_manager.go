package manager

import (
	"snake-game/game/entity"
	"snake-game/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case NoCollision:
		return "none"
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "unknown"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision classifies the snake's position right after a step. Walls
// are checked first.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake) CollisionType {
	if cm.isWallCollision(snake.GetHead()) {
		return WallCollision
	}
	if snake.HitsSelf() {
		return SelfCollision
	}
	return NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// IsDanger reports whether moving the head onto pos would end the game. The
// tail cell counts as free because it moves away on the same step.
func (cm *CollisionManager) IsDanger(pos types.Point, body []types.Point) bool {
	if cm.isWallCollision(pos) {
		return true
	}
	for i := 0; i < len(body)-1; i++ {
		if pos == body[i] {
			return true
		}
	}
	return false
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point, hasFood bool) bool {
	return hasFood && pos == food
}
