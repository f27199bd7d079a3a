// Command trainbox opens a window playing one level. Settings come from
// TRAINBOX_* environment variables; see package config.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"

	"github.com/thomasahle/trainbox"
	"github.com/thomasahle/trainbox/config"
	"github.com/thomasahle/trainbox/ecs"
	"github.com/thomasahle/trainbox/gfx"
	"github.com/thomasahle/trainbox/level"
	"github.com/thomasahle/trainbox/scenes"
	"github.com/thomasahle/trainbox/store"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	lvl, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	trainbox.SetLogger(logger)

	l, err := loadLevel(cfg.Level)
	if err != nil {
		return err
	}

	stage := gfx.NewStage()
	stage.ScreenshotDir = cfg.ScreenshotDir
	stage.ClearColor = gfx.ColorFromARGB(0xff1e1e28)
	stage.SetDebugMode(cfg.Debug)

	scene, err := scenes.NewLevelScene(stage, cfg.Level, l)
	if err != nil {
		return err
	}

	director := scenes.NewDirector(stage, cfg.Width, cfg.Height)
	scene.OnQuit = director.Quit

	world := donburi.NewWorld()
	scene.SetListener(ecs.NewDonburiListener(world))
	ecs.TrainEventType.Subscribe(world, func(_ donburi.World, ev ecs.TrainEvent) {
		logger.Debug("train event", "kind", ev.Kind.String(), "train", ev.TrainID, "cargo", ev.Cargo)
	})
	director.OnUpdate = func(float64) {
		ecs.TrainEventType.ProcessEvents(world)
	}

	if cfg.Script != "" {
		data, err := os.ReadFile(cfg.Script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		script, err := scenes.LoadScript(data)
		if err != nil {
			return err
		}
		scene.SetScript(script)
	}

	var st *store.Store
	if cfg.DBPath != "" {
		st, err = store.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer st.Close()
		scene.SetSaver(st)
	}

	director.SetScene(scene)
	if cfg.ShowFPS {
		stage.Root().Add(gfx.NewFPSLayer())
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(fmt.Sprintf("%s: %s", cfg.Title, l.Name))
	if err := ebiten.RunGame(director); err != nil {
		return err
	}

	if st != nil {
		if _, err := scene.Save(context.Background()); err != nil {
			return err
		}
	}
	logger.Info("done", "arrived", scene.Arrived(), "goal", l.Goal)
	return nil
}

// loadLevel resolves name as an embedded level first, then as a file path.
func loadLevel(name string) (*level.Level, error) {
	l, err := level.Builtin(name)
	if err == nil {
		return l, nil
	}
	if !errors.Is(err, level.ErrUnknownLevel) {
		return nil, err
	}
	return level.Load(name)
}
