package engine

import (
	"context"
	"time"

	"gridworld-sim/internal/domain"
	"gridworld-sim/pkg/logger"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Runner — внешний драйвер мира: вызывает World.Advance раз в тик,
// пока не исчерпан бюджет тиков или не отменен контекст.
//
// Сам мир однопоточный; раннер лишь задает темп. Вся работа тика
// (Think каждого думающего) выполняется синхронно внутри Advance.
type Runner struct {
	world *domain.World
	cfg   Config
}

// NewRunner создает раннер для мира.
func NewRunner(w *domain.World, cfg Config) *Runner {
	return &Runner{world: w, cfg: cfg}
}

// Run крутит цикл тиков до бюджета или отмены. Блокирует вызывающего.
func (r *Runner) Run(ctx context.Context) error {
	runLogger := logger.Log.WithFields(logrus.Fields{
		"component":     "runner",
		"ticks_budget":  r.cfg.Ticks,
		"tick_interval": r.cfg.TickInterval().String(),
	})
	runLogger.Info("Simulation started.")

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for i := 0; r.cfg.Ticks == 0 || i < r.cfg.Ticks; i++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			r.world.Advance()

			if r.cfg.ProgressEveryTicks > 0 && r.world.Tick()%r.cfg.ProgressEveryTicks == 0 {
				runLogger.WithFields(logrus.Fields{
					"tick":    r.world.Tick(),
					"objects": len(r.world.Objects()),
				}).Info("Simulation progress.")
			}

			if interval := r.cfg.TickInterval(); interval > 0 {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(interval):
				}
			}
		}
		return nil
	})

	err := g.Wait()

	runLogger.WithFields(logrus.Fields{
		"ticks_done": r.world.Tick(),
		"elapsed":    time.Since(start).String(),
	}).Info("Simulation finished.")

	return err
}
