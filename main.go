package main

import (
	"flag"
	"log"
	"path/filepath"
	"snake-game/ai"
	"snake-game/game"
	"snake-game/game/manager"
	"snake-game/game/types"
	"snake-game/ui"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run owns every deferred cleanup, so errors are returned rather than fatal.
func run() error {
	cfg := types.DefaultConfig()
	flag.IntVar(&cfg.Cols, "cols", cfg.Cols, "Board width in cells")
	flag.IntVar(&cfg.Rows, "rows", cfg.Rows, "Board height in cells")
	flag.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "Initial cell size in pixels")
	flag.IntVar(&cfg.FPS, "fps", cfg.FPS, "Target frames per second")
	storeKind := flag.String("store", "json", "Best score store: json or sqlite")
	dataDir := flag.String("data", "", "Data directory (default: per-user app dir)")
	assets := flag.String("assets", "assets", "Directory holding pickup.wav and hit.wav")
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

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Width()+ui.StatsPanelWidth), int32(cfg.Height()), "Snake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FPS))

	audio := ui.NewAudio(*assets)
	defer audio.Close()

	g, err := game.NewGame(cfg,
		game.WithStore(store),
		game.WithNotifier(audio),
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

	renderer := ui.NewRenderer(stats)
	for !ui.QuitRequested() {
		cmds := ui.ReadCommands()
		if pilot != nil {
			if g.Status() == game.Over {
				cmds = append(cmds, game.Restart())
			} else if cmd, ok := pilot.NextCommand(g.Snapshot()); ok {
				cmds = append(cmds, cmd)
			}
		}
		g.Apply(cmds...)

		dt := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
		g.Update(dt)

		renderer.Draw(g.Snapshot())
	}
	return nil
}
