// Package behaviors содержит конкретные реализации поведенческих хуков
// актора (Look/Act/WhileDead). Ядро знает только контракт диспетчеризации;
// все решения "что делать на тике" живут здесь.
package behaviors

import (
	"math/rand"

	"gridworld-sim/internal/domain"
	"gridworld-sim/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Wander — бесцельный бродяга. В IDLE изредка делает случайный шаг,
// в ACTIVE преследует цель и бьет, когда оружие достает.
type Wander struct {
	// Rng — локальный генератор для воспроизводимости (мастер-сид мира).
	Rng *rand.Rand

	// Restlessness — шанс шага за тик в процентах (0-100).
	Restlessness int
}

// Look — случайный дрейф. Никакой агрессии: из IDLE актора выводит
// только полученный урон.
func (b *Wander) Look(a *domain.Actor) {
	if b.Rng == nil || b.Restlessness <= 0 {
		return
	}
	if b.Rng.Intn(100) >= b.Restlessness {
		return
	}

	dx := b.Rng.Intn(3) - 1
	dy := b.Rng.Intn(3) - 1
	if dx == 0 && dy == 0 {
		return
	}
	dest := a.Pos.Shift(dx, dy)
	a.TryMove(dest.X, dest.Y)
}

// Act — преследование текущей цели с ударом при контакте.
func (b *Wander) Act(a *domain.Actor) {
	pursue(a)
}

// WhileDead — трупы не бродят.
func (b *Wander) WhileDead(a *domain.Actor) {}

// Sentry — часовой. В IDLE сканирует радиус на предмет игрока,
// при обнаружении переходит в ACTIVE и атакует.
type Sentry struct {
	// Radius — радиус обнаружения.
	Radius int
	// Metric — метрика радиуса (по умолчанию манхэттенская).
	Metric domain.Metric
}

// Look сканирует окрестность через пространственный запрос мира.
// Обнаружение цели — единственный (кроме урона) переход IDLE -> ACTIVE.
func (b *Sentry) Look(a *domain.Actor) {
	w := a.World()
	if w == nil {
		return
	}
	player := w.Player()
	if player == nil || player == a || player.State == domain.StateDead {
		return
	}

	if !a.Pos.Within(player.Pos, b.Radius, b.Metric) {
		return
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "behaviors",
		"actor":     a.Name,
		"target":    player.Name,
	}).Debug("Sentry spotted the player.")

	a.Target = player
	a.State = domain.StateActive
}

// Act — преследование и атака; потерянная (мертвая) цель
// возвращает часового в IDLE.
func (b *Sentry) Act(a *domain.Actor) {
	pursue(a)
}

// WhileDead — часовой мертв, пост брошен.
func (b *Sentry) WhileDead(a *domain.Actor) {}

// pursue — общий шаг преследования: цель потеряна -> IDLE,
// цель достает оружие -> удар, иначе шаг навстречу.
func pursue(a *domain.Actor) {
	target := a.Target
	if target == nil || target.State == domain.StateDead {
		a.Target = nil
		a.State = domain.StateIdle
		return
	}

	if a.TryAttack(target) {
		return
	}

	dx, dy := stepToward(a, target)
	if dx == 0 && dy == 0 {
		return
	}
	dest := a.Pos.Shift(dx, dy)
	a.TryMove(dest.X, dest.Y)
}

// stepToward выбирает шаг к цели. Если идеальный диагональный шаг
// заблокирован, пробуем оси в порядке большей разницы (скольжение
// вдоль препятствия).
func stepToward(a *domain.Actor, target *domain.Actor) (int, int) {
	w := a.World()
	if w == nil {
		return 0, 0
	}

	dxRaw := target.Pos.X - a.Pos.X
	dyRaw := target.Pos.Y - a.Pos.Y
	stepX := sign(dxRaw)
	stepY := sign(dyRaw)

	free := func(dx, dy int) bool {
		dest := a.Pos.Shift(dx, dy)
		return w.CheckEmpty(dest.X, dest.Y)
	}

	// Попытка 1: идеальный путь.
	if (stepX != 0 || stepY != 0) && free(stepX, stepY) {
		return stepX, stepY
	}

	// Попытка 2: скольжение по приоритетной оси.
	if abs(dxRaw) > abs(dyRaw) {
		if stepX != 0 && free(stepX, 0) {
			return stepX, 0
		}
		if stepY != 0 && free(0, stepY) {
			return 0, stepY
		}
	} else {
		if stepY != 0 && free(0, stepY) {
			return 0, stepY
		}
		if stepX != 0 && free(stepX, 0) {
			return stepX, 0
		}
	}

	return 0, 0 // тупик
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
