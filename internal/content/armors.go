package content

import "gridworld-sim/internal/domain"

// PaddedArmor — броня с плоским вычетом: снижает урон подходящих типов
// на фиксированную величину. Protects == 0 означает "любой тип".
type PaddedArmor struct {
	domain.BaseArmor
	Reduction int
	Protects  domain.DamageType
}

// NewPaddedArmor создает броню с плоским вычетом.
func NewPaddedArmor(name string, slot domain.BodySlot, reduction int, protects domain.DamageType) *PaddedArmor {
	return &PaddedArmor{
		BaseArmor: domain.NewBaseArmor(name, slot),
		Reduction: reduction,
		Protects:  protects,
	}
}

// ReduceDamage вычитает Reduction из урона подходящего типа.
// Результат может уйти в минус — пол наносит уже конвейер актора.
func (a *PaddedArmor) ReduceDamage(damage int, dtype domain.DamageType) int {
	if a.Protects != 0 && !dtype.Has(a.Protects) {
		return damage
	}
	return damage - a.Reduction
}

// WardArmor — броня с процентным снижением урона подходящих типов
// (обереги от стихий). Percent 50 режет урон вдвое, 100 — обнуляет.
type WardArmor struct {
	domain.BaseArmor
	Percent  int
	Protects domain.DamageType
}

// NewWardArmor создает процентную броню.
func NewWardArmor(name string, slot domain.BodySlot, percent int, protects domain.DamageType) *WardArmor {
	return &WardArmor{
		BaseArmor: domain.NewBaseArmor(name, slot),
		Percent:   percent,
		Protects:  protects,
	}
}

// ReduceDamage срезает процент урона подходящего типа
// (целочисленно, с округлением вниз).
func (a *WardArmor) ReduceDamage(damage int, dtype domain.DamageType) int {
	if a.Protects != 0 && !dtype.Has(a.Protects) {
		return damage
	}
	return damage - damage*a.Percent/100
}
