package engine

import (
	"context"
	"testing"

	"gridworld-sim/internal/domain"
)

// pulse считает собственные Think-вызовы.
type pulse struct {
	domain.WorldObject
	thinks int
}

func newPulse() *pulse {
	return &pulse{WorldObject: domain.NewWorldObject("pulse", domain.ObjectTypeNPC, false)}
}

func (p *pulse) Think() { p.thinks++ }

func TestRunner_RunsTickBudget(t *testing.T) {
	w := domain.NewWorld()
	w.SetEventSink(nil)
	p := newPulse()
	w.AddObj(p, 0, 0)

	cfg := Config{Ticks: 5, TickIntervalMs: 0}
	r := NewRunner(w, cfg)

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if w.Tick() != 5 {
		t.Errorf("Expected 5 ticks, got %d", w.Tick())
	}
	// Добавлен до старта: очередь добавления сливается на первом же тике.
	if p.thinks != 5 {
		t.Errorf("Expected 5 thinks, got %d", p.thinks)
	}
}

func TestRunner_CancelStopsRun(t *testing.T) {
	w := domain.NewWorld()
	w.SetEventSink(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // отменяем до старта

	cfg := Config{Ticks: 0, TickIntervalMs: 0} // бесконечный бюджет
	r := NewRunner(w, cfg)

	if err := r.Run(ctx); err != context.Canceled {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.Seed == 0 {
		t.Error("Default seed must be randomized")
	}
	if cfg.Ticks <= 0 {
		t.Error("Default tick budget must be positive")
	}
}
