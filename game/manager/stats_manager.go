package manager

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

const (
	StatsFile = "stats.json"
	GroupSize = 100 // records merged into one at the next compression level

	// BadFileSuffix is appended to a history file that could not be loaded
	// before it is replaced.
	BadFileSuffix = ".bad"
)

// GameRecord is one finished session, or a group of sessions once
// CompressionIndex is above zero.
type GameRecord struct {
	SessionID        string    `json:"sessionId,omitempty"`
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	Score            int       `json:"score"`
	CompressionIndex int       `json:"compressionIndex"`
	GamesCount       int       `json:"gamesCount"`
	AverageScore     float64   `json:"averageScore"`
	MaxScore         int       `json:"maxScore"`
	MinScore         int       `json:"minScore"`
	AverageDuration  float64   `json:"averageDuration"`
	MaxDuration      float64   `json:"maxDuration"`
	MinDuration      float64   `json:"minDuration"`
}

// StatsManager keeps the history of finished sessions on disk.
type StatsManager struct {
	path       string
	games      []GameRecord
	loadFailed bool
	mutex      sync.RWMutex
}

// NewStatsManager loads the history at path. A missing file starts an empty
// history; an unreadable one is reported and also starts empty, and is moved
// aside on the first SaveToFile instead of being overwritten.
func NewStatsManager(path string) (*StatsManager, error) {
	sm := &StatsManager{
		path:  path,
		games: make([]GameRecord, 0),
	}
	return sm, sm.loadFromFile()
}

// AddGame records a finished session and compresses old records.
func (sm *StatsManager) AddGame(sessionID string, score int, start, end time.Time) {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	duration := end.Sub(start).Seconds()
	sm.games = append(sm.games, GameRecord{
		SessionID:       sessionID,
		StartTime:       start,
		EndTime:         end,
		Score:           score,
		GamesCount:      1,
		AverageScore:    float64(score),
		MaxScore:        score,
		MinScore:        score,
		AverageDuration: duration,
		MaxDuration:     duration,
		MinDuration:     duration,
	})
	sm.groupGames()
}

// groupGames merges every full run of GroupSize records at one compression
// level into a single record one level up, cascading upwards.
func (sm *StatsManager) groupGames() {
	sort.SliceStable(sm.games, func(i, j int) bool {
		if sm.games[i].CompressionIndex != sm.games[j].CompressionIndex {
			return sm.games[i].CompressionIndex < sm.games[j].CompressionIndex
		}
		return sm.games[i].StartTime.Before(sm.games[j].StartTime)
	})

	for level := 0; ; level++ {
		var records, rest []GameRecord
		for _, g := range sm.games {
			if g.CompressionIndex == level {
				records = append(records, g)
			} else {
				rest = append(rest, g)
			}
		}
		if len(records) < GroupSize {
			return
		}

		var merged []GameRecord
		for i := 0; i < len(records); i += GroupSize {
			end := i + GroupSize
			if end > len(records) {
				merged = append(merged, records[i:]...)
				break
			}
			merged = append(merged, mergeRecords(records[i:end], level+1))
		}
		sm.games = append(rest, merged...)
	}
}

func mergeRecords(group []GameRecord, level int) GameRecord {
	out := GameRecord{
		StartTime:        group[0].StartTime,
		EndTime:          group[0].EndTime,
		CompressionIndex: level,
		MaxScore:         group[0].MaxScore,
		MinScore:         group[0].MinScore,
		MaxDuration:      group[0].MaxDuration,
		MinDuration:      group[0].MinDuration,
	}

	var totalScore, totalDuration float64
	for _, g := range group {
		out.MaxScore = max(out.MaxScore, g.MaxScore)
		out.MinScore = min(out.MinScore, g.MinScore)
		out.MaxDuration = max(out.MaxDuration, g.MaxDuration)
		out.MinDuration = min(out.MinDuration, g.MinDuration)
		if g.StartTime.Before(out.StartTime) {
			out.StartTime = g.StartTime
		}
		if g.EndTime.After(out.EndTime) {
			out.EndTime = g.EndTime
		}
		totalScore += g.AverageScore * float64(g.GamesCount)
		totalDuration += g.AverageDuration * float64(g.GamesCount)
		out.GamesCount += g.GamesCount
	}
	out.AverageScore = totalScore / float64(out.GamesCount)
	out.AverageDuration = totalDuration / float64(out.GamesCount)
	return out
}

// GetStats returns a copy of the stored records.
func (sm *StatsManager) GetStats() []GameRecord {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return append([]GameRecord(nil), sm.games...)
}

func (sm *StatsManager) GetGamesPlayed() int {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	total := 0
	for _, g := range sm.games {
		total += g.GamesCount
	}
	return total
}

func (sm *StatsManager) GetAverageScore() float64 {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return sm.weightedAverage(func(g GameRecord) float64 { return g.AverageScore })
}

func (sm *StatsManager) GetAverageDuration() float64 {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return sm.weightedAverage(func(g GameRecord) float64 { return g.AverageDuration })
}

func (sm *StatsManager) weightedAverage(value func(GameRecord) float64) float64 {
	var total float64
	var games int
	for _, g := range sm.games {
		total += value(g) * float64(g.GamesCount)
		games += g.GamesCount
	}
	if games == 0 {
		return 0
	}
	return total / float64(games)
}

func (sm *StatsManager) GetMaxScore() int {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	best := 0
	for _, g := range sm.games {
		best = max(best, g.MaxScore)
	}
	return best
}

// SaveToFile writes the history as JSON.
func (sm *StatsManager) SaveToFile() error {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	if err := os.MkdirAll(filepath.Dir(sm.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if sm.loadFailed {
		bad := sm.path + BadFileSuffix
		if err := os.Rename(sm.path, bad); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("refusing to overwrite unreadable stats file: %w", err)
		}
		log.Printf("[Stats] moved unreadable history to %s", bad)
		sm.loadFailed = false
	}
	data, err := json.Marshal(sm.games)
	if err != nil {
		return fmt.Errorf("failed to marshal stats data: %w", err)
	}
	if err := os.WriteFile(sm.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write stats file: %w", err)
	}
	return nil
}

func (sm *StatsManager) loadFromFile() error {
	data, err := os.ReadFile(sm.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		sm.loadFailed = true
		return err
	}

	var games []GameRecord
	if err := json.Unmarshal(data, &games); err != nil {
		sm.loadFailed = true
		return fmt.Errorf("failed to parse %s: %w", sm.path, err)
	}
	sm.games = games
	return nil
}
