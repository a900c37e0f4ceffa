package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/actioncore/arena"
	"github.com/milk9111/actioncore/config"
	"github.com/milk9111/actioncore/event"
	"github.com/milk9111/actioncore/fsm"
	"github.com/milk9111/actioncore/input"
	"github.com/milk9111/actioncore/prefabs"
)

func main() {
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := cfg.NewLogger(os.Stderr)
	slog.SetDefault(logger)
	prefabs.Dir = cfg.PrefabDir

	charSpec, err := prefabs.LoadCharacterSpec()
	if err != nil {
		log.Fatal(err)
	}
	arenaSpec, err := prefabs.LoadArenaSpec()
	if err != nil {
		log.Fatal(err)
	}

	var sampler fsm.InputSampler = input.NewKeyboard()
	if cfg.Headless() {
		sampler = input.Demo()
	}

	a, err := arena.New(arena.Options{
		Arena:        arenaSpec,
		Character:    charSpec,
		Input:        sampler,
		Dummies:      cfg.DummyLimit(len(arenaSpec.Dummies)),
		RespawnDelay: 2,
		Logger:       logger,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer a.Close()

	if cfg.Headless() {
		runHeadless(a, cfg, logger)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	game := NewGame(a, cfg, logger)
	if cfg.Watch {
		if err := game.watch(ctx, cfg.PrefabDir); err != nil {
			logger.Warn("main: hot reload disabled", "err", err)
		}
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("actioncore")
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, errQuit) {
		log.Fatal(err)
	}
}

// runHeadless drives the arena with the scripted demo and logs the outcome.
func runHeadless(a *arena.Arena, cfg config.Config, logger *slog.Logger) {
	f := a.Fighter()
	f.Events.StateChanged.Subscribe(func(sc event.StateChange) {
		logger.Debug("main: state", "from", sc.From, "to", sc.To)
	})

	dt := 1 / float64(cfg.TPS)
	for i := 0; i < cfg.HeadlessTicks; i++ {
		a.Step(dt)
	}

	s := a.Stats()
	logger.Info("main: headless run complete",
		"name", f.Name(),
		"ticks", cfg.HeadlessTicks,
		"swings", s.Swings,
		"hits", s.Hits,
		"kills", s.Kills,
		"damage", s.Damage,
		"fighter", f.Status().String(),
	)
}
