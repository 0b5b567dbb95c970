package ui

import (
	"fmt"
	"snake-game/game"
	"snake-game/game/manager"
	"snake-game/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	maxScores     = 200 // most recent records plotted in the graph
	borderPadding = 10
	// StatsPanelWidth is the space to the right of the board.
	StatsPanelWidth = 220
)

var (
	snakeColor = rl.Color{R: 80, G: 200, B: 120, A: 255}
	headColor  = rl.Color{R: 40, G: 160, B: 80, A: 255}
	foodColor  = rl.Color{R: 220, G: 70, B: 70, A: 255}
	gridColor  = rl.Color{R: 30, G: 30, B: 30, A: 255}
	bgColor    = rl.Color{R: 12, G: 12, B: 12, A: 255}
	textColor  = rl.Color{R: 230, G: 230, B: 230, A: 255}
)

// StatsSource is the session history shown in the side panel.
type StatsSource interface {
	GetStats() []manager.GameRecord
	GetGamesPlayed() int
	GetAverageScore() float64
	GetMaxScore() int
}

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	gameWidth       int32
	statsPanel      int32
	graphHeight     int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
	stats           StatsSource
}

// NewRenderer draws into the current raylib window. stats may be nil.
func NewRenderer(stats StatsSource) *Renderer {
	r := &Renderer{stats: stats}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
	r.statsPanel = min(StatsPanelWidth, r.screenWidth/3)
	r.gameWidth = r.screenWidth - r.statsPanel
	r.graphHeight = r.screenHeight / 5
}

// layout fits the board into the game area, keeping cells square.
func (r *Renderer) layout(grid types.Grid) {
	availableWidth := r.gameWidth - borderPadding*2
	availableHeight := r.screenHeight - borderPadding*2

	r.cellSize = max(1, min(availableWidth/int32(grid.Width), availableHeight/int32(grid.Height)))
	r.totalGridWidth = r.cellSize * int32(grid.Width)
	r.totalGridHeight = r.cellSize * int32(grid.Height)
	r.offsetX = borderPadding + (availableWidth-r.totalGridWidth)/2
	r.offsetY = borderPadding + (availableHeight-r.totalGridHeight)/2
}

func (r *Renderer) cell(p types.Point) (int32, int32) {
	return r.offsetX + int32(p.X)*r.cellSize, r.offsetY + int32(p.Y)*r.cellSize
}

// Draw renders one frame from a snapshot.
func (r *Renderer) Draw(s game.Snapshot) {
	r.UpdateDimensions()
	r.layout(s.Grid)

	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(bgColor)

	fontSize := max(12, min(r.screenHeight/30, r.statsPanel/10))

	r.drawGrid(s.Grid)
	if s.HasFood {
		x, y := r.cell(s.Food)
		rl.DrawRectangle(x, y, r.cellSize, r.cellSize, foodColor)
	}
	r.drawSnake(s.Segments, s.Direction)

	rl.DrawText(fmt.Sprintf("Score: %d", s.Score), r.offsetX+5, r.offsetY+5, fontSize, textColor)
	rl.DrawText(fmt.Sprintf("Best: %d", s.BestScore), r.offsetX+5, r.offsetY+5+fontSize+4, fontSize, textColor)

	switch s.Status {
	case game.Paused:
		r.drawCentered("Paused", fontSize*2)
	case game.Over:
		r.drawCentered("Press R to restart", fontSize*2)
	case game.Running:
	}

	r.drawStatsPanel(s, fontSize)
}

func (r *Renderer) drawGrid(grid types.Grid) {
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)
	rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight, bgColor)
	for x := int32(0); x <= int32(grid.Width); x++ {
		px := r.offsetX + x*r.cellSize
		rl.DrawLine(px, r.offsetY, px, r.offsetY+r.totalGridHeight, gridColor)
	}
	for y := int32(0); y <= int32(grid.Height); y++ {
		py := r.offsetY + y*r.cellSize
		rl.DrawLine(r.offsetX, py, r.offsetX+r.totalGridWidth, py, gridColor)
	}
}

func (r *Renderer) drawSnake(body []types.Point, direction types.Point) {
	for i := len(body) - 1; i >= 0; i-- {
		x, y := r.cell(body[i])
		color := snakeColor
		if i == 0 {
			color = headColor
		}
		rl.DrawRectangle(x, y, r.cellSize, r.cellSize, color)
	}
	if len(body) > 0 {
		r.drawHeading(body[0], direction)
	}
}

// drawHeading puts a small arrow on the head cell.
func (r *Renderer) drawHeading(head, direction types.Point) {
	headX, headY := r.cell(head)
	size := r.cellSize
	half := size / 2
	v := func(x, y int32) rl.Vector2 { return rl.Vector2{X: float32(x), Y: float32(y)} }

	switch direction {
	case types.Right:
		rl.DrawTriangle(v(headX+size, headY+half), v(headX+half, headY), v(headX+half, headY+size), rl.Yellow)
	case types.Left:
		rl.DrawTriangle(v(headX, headY+half), v(headX+half, headY+size), v(headX+half, headY), rl.Yellow)
	case types.Down:
		rl.DrawTriangle(v(headX+half, headY+size), v(headX+size, headY+half), v(headX, headY+half), rl.Yellow)
	case types.Up:
		rl.DrawTriangle(v(headX+half, headY), v(headX, headY+half), v(headX+size, headY+half), rl.Yellow)
	}
}

func (r *Renderer) drawCentered(text string, fontSize int32) {
	width := rl.MeasureText(text, fontSize)
	x := r.offsetX + (r.totalGridWidth-width)/2
	y := r.offsetY + (r.totalGridHeight-fontSize)/2
	rl.DrawRectangle(x-10, y-6, width+20, fontSize+12, rl.Color{R: 0, G: 0, B: 0, A: 180})
	rl.DrawText(text, x, y, fontSize, textColor)
}

func (r *Renderer) drawStatsPanel(s game.Snapshot, fontSize int32) {
	statsX := r.gameWidth + 5
	statsY := int32(borderPadding)
	lineHeight := fontSize + 6

	rl.DrawRectangle(r.gameWidth, 0, r.statsPanel, r.screenHeight, rl.DarkGray)

	lines := []string{
		fmt.Sprintf("Status: %s", s.Status),
		fmt.Sprintf("Length: %d", len(s.Segments)),
		fmt.Sprintf("Speed: %d ms", s.MoveInterval.Milliseconds()),
		fmt.Sprintf("Steps: %d", s.Steps),
	}
	if r.stats != nil {
		lines = append(lines,
			"",
			fmt.Sprintf("Games: %d", r.stats.GetGamesPlayed()),
			fmt.Sprintf("Avg Score: %.1f", r.stats.GetAverageScore()),
			fmt.Sprintf("Max Score: %d", r.stats.GetMaxScore()),
		)
	}
	for _, line := range lines {
		rl.DrawText(line, statsX, statsY, fontSize, rl.White)
		statsY += lineHeight
	}

	r.drawScoreGraph(statsX, fontSize)
}

// drawScoreGraph plots recent session scores; grouped records use their
// average.
func (r *Renderer) drawScoreGraph(graphX, fontSize int32) {
	if r.stats == nil {
		return
	}
	records := r.stats.GetStats()
	if len(records) > maxScores {
		records = records[len(records)-maxScores:]
	}

	graphWidth := r.statsPanel - 10
	graphY := r.screenHeight - r.graphHeight - borderPadding
	rl.DrawRectangleLines(graphX, graphY, graphWidth, r.graphHeight, rl.White)
	rl.DrawText("Scores", graphX, graphY-fontSize-5, fontSize, rl.White)
	if len(records) < 2 {
		return
	}

	maxScore := 1.0
	for _, rec := range records {
		maxScore = max(maxScore, float64(rec.MaxScore))
	}
	point := func(i int) (int32, int32) {
		value := float64(records[i].Score)
		if records[i].CompressionIndex > 0 {
			value = records[i].AverageScore
		}
		x := graphX + int32(float32(graphWidth)*float32(i)/float32(len(records)-1))
		y := graphY + r.graphHeight - int32(float64(r.graphHeight)*value/maxScore)
		return x, y
	}
	for i := 1; i < len(records); i++ {
		x1, y1 := point(i - 1)
		x2, y2 := point(i)
		rl.DrawLine(x1, y1, x2, y2, rl.Green)
	}
}
