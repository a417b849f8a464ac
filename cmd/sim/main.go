package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"gridworld-sim/internal/content"
	"gridworld-sim/internal/domain"
	"gridworld-sim/internal/engine"
	"gridworld-sim/internal/version"
	"gridworld-sim/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var (
		configPath string
		seed       int64
		ticks      int
	)
	flag.StringVar(&configPath, "config", "", "Path to YAML config file (optional)")
	flag.Int64Var(&seed, "seed", 0, "Master seed (0 for random)")
	flag.IntVar(&ticks, "ticks", 0, "Tick budget override (0 keeps config value)")
	flag.Parse()

	logger.Log.Info("Starting gridworld simulation...")
	logger.Log.Info(version.String())

	cfg := engine.NewConfig()
	if configPath != "" {
		loaded, err := engine.LoadConfig(configPath)
		if err != nil {
			logger.Log.Fatal("Failed to load config: ", err)
		}
		cfg = loaded
	}
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit master seed: %d", cfg.Seed)
	} else {
		logger.Log.Infof("🎲 Using random master seed: %d", cfg.Seed)
	}
	if ticks != 0 {
		cfg.Ticks = ticks
	}

	// 2. Контент: файл шаблонов или встроенный набор.
	var pack *content.Pack
	if cfg.ContentPath != "" {
		loaded, err := content.Load(cfg.ContentPath, cfg.Seed)
		if err != nil {
			logger.Log.Fatal("Failed to load content: ", err)
		}
		pack = loaded
	} else {
		pack = content.DefaultPack(cfg.Seed)
	}

	world := buildDemoWorld(pack)

	// Graceful Shutdown
	ctx, cancel := context.WithCancel(context.Background())
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		logger.Log.Info("Shutting down...")
		cancel()
	}()

	// 3. Запуск цикла тиков.
	runner := engine.NewRunner(world, cfg)
	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Log.Fatal("Simulation error: ", err)
	}

	logger.Log.Info("Done.")
}

// buildDemoWorld расставляет по одному актору каждого шаблона на
// разреженной сетке. Порядок спавна фиксируем сортировкой имен,
// чтобы раскладка была воспроизводимой при одном сиде.
func buildDemoWorld(pack *content.Pack) *domain.World {
	world := domain.NewWorld()

	names := pack.ActorNames()
	sort.Strings(names)

	for i, name := range names {
		actor, err := pack.SpawnActor(name)
		if err != nil {
			logger.Log.Fatal("Failed to spawn actor: ", err)
		}

		x := (i % 4) * 3
		y := (i / 4) * 3
		if actor.Type == domain.ObjectTypePlayer {
			world.AddPlayer(actor, x, y)
		} else {
			world.AddObj(actor, x, y)
		}
	}

	return world
}
