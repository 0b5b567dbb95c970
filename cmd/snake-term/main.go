// Command snake-term plays Snake in a terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"snake-game/ai"
	"snake-game/game"
	"snake-game/game/manager"
	"snake-game/game/types"
	"snake-game/term"
	"time"

	"golang.org/x/exp/rand"
)

const LogFile = "snake-term.log"

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run owns every deferred cleanup, so errors are returned rather than fatal.
func run() error {
	cfg := types.DefaultConfig()
	cfg.Cols, cfg.Rows = 20, 20
	flag.IntVar(&cfg.Cols, "cols", cfg.Cols, "Board width in cells")
	flag.IntVar(&cfg.Rows, "rows", cfg.Rows, "Board height in cells")
	flag.IntVar(&cfg.FPS, "fps", 30, "Redraws per second")
	storeKind := flag.String("store", "json", "Best score store: json or sqlite")
	dataDir := flag.String("data", "", "Data directory (default: per-user app dir)")
	autoplay := flag.Bool("autoplay", false, "Let the autopilot play")
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = time based)")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		return err
	}

	dir := *dataDir
	if dir == "" {
		var err error
		if dir, err = manager.DefaultDataDir(); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// The terminal is in raw mode while playing; keep log lines off it.
	logFile, err := os.OpenFile(filepath.Join(dir, LogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	defer log.SetOutput(os.Stderr)

	store, err := manager.OpenScoreStore(*storeKind, dir)
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := manager.NewStatsManager(filepath.Join(dir, manager.StatsFile))
	if err != nil {
		log.Printf("[Stats] starting with empty history, old file kept as %s%s on save: %v", manager.StatsFile, manager.BadFileSuffix, err)
	}
	defer func() {
		if err := stats.SaveToFile(); err != nil {
			log.Printf("[Stats] could not save history: %v", err)
		}
	}()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	g, err := game.NewGame(cfg,
		game.WithStore(store),
		game.WithNotifier(term.Bell{Out: os.Stdout}),
		game.WithRecorder(stats),
		game.WithRand(rand.New(rand.NewSource(*seed))),
	)
	if err != nil {
		return err
	}

	var pilot *ai.Autopilot
	if *autoplay {
		pilot = ai.NewAutopilot(g.Grid)
	}

	keys := term.NewKeyboardHandler()
	if err := keys.Start(); err != nil {
		return fmt.Errorf("failed to open keyboard: %w", err)
	}
	defer keys.Stop()

	renderer := term.NewRenderer(os.Stdout, true)
	renderer.HideCursor()
	defer renderer.ShowCursor()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer ticker.Stop()

	last := time.Now()
	for range ticker.C {
		var cmds []game.Command
		for _, k := range keys.Drain() {
			if term.IsQuit(k) {
				fmt.Print("\r\nThanks for playing!\r\n")
				return nil
			}
			if cmd, ok := term.ParseCommand(k); ok {
				cmds = append(cmds, cmd)
			}
		}
		if pilot != nil {
			if g.Status() == game.Over {
				cmds = append(cmds, game.Restart())
			} else if cmd, ok := pilot.NextCommand(g.Snapshot()); ok {
				cmds = append(cmds, cmd)
			}
		}
		g.Apply(cmds...)

		now := time.Now()
		g.Update(now.Sub(last))
		last = now

		if err := renderer.Render(g.Snapshot()); err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
	}
	return nil
}
