package content

import "gridworld-sim/internal/domain"

// MeleeWeapon — оружие ближнего боя: достает до соседней клетки,
// включая диагонали (шахматный радиус 1).
type MeleeWeapon struct {
	domain.BaseWeapon
	Damage int
	DType  domain.DamageType
}

// NewMeleeWeapon создает оружие ближнего боя.
func NewMeleeWeapon(name string, damage int, dtype domain.DamageType) *MeleeWeapon {
	return &MeleeWeapon{
		BaseWeapon: domain.NewBaseWeapon(name),
		Damage:     damage,
		DType:      dtype,
	}
}

// Targets перечисляет живых акторов в контактном радиусе владельца.
func (w *MeleeWeapon) Targets() []*domain.Actor {
	return actorsInRange(w.Owner(), 1, domain.MetricChessboard)
}

// Attack наносит цели фиксированный урон типа оружия.
func (w *MeleeWeapon) Attack(target *domain.Actor) {
	target.ReceiveDamage(w.Owner(), w.Damage, w.DType)
}

// ReachWeapon — оружие с настраиваемым радиусом и метрикой
// (копья, хлысты, простая магия).
type ReachWeapon struct {
	domain.BaseWeapon
	Damage int
	DType  domain.DamageType
	Reach  int
	Metric domain.Metric
}

// NewReachWeapon создает оружие с радиусом reach в заданной метрике.
func NewReachWeapon(name string, damage int, dtype domain.DamageType, reach int, metric domain.Metric) *ReachWeapon {
	return &ReachWeapon{
		BaseWeapon: domain.NewBaseWeapon(name),
		Damage:     damage,
		DType:      dtype,
		Reach:      reach,
		Metric:     metric,
	}
}

// Targets перечисляет живых акторов в радиусе досягаемости.
func (w *ReachWeapon) Targets() []*domain.Actor {
	return actorsInRange(w.Owner(), w.Reach, w.Metric)
}

// Attack наносит цели фиксированный урон типа оружия.
func (w *ReachWeapon) Attack(target *domain.Actor) {
	target.ReceiveDamage(w.Owner(), w.Damage, w.DType)
}

// actorsInRange — общее перечисление целей: живые акторы в радиусе
// от владельца, сам владелец исключается. Неэкипированное оружие
// (или владелец вне мира) целей не имеет.
func actorsInRange(owner *domain.Actor, r int, metric domain.Metric) []*domain.Actor {
	if owner == nil {
		return nil
	}
	w := owner.World()
	if w == nil {
		return nil
	}

	var targets []*domain.Actor
	for _, obj := range w.GetObjectsInRange(owner.Pos.X, owner.Pos.Y, r, metric) {
		actor, ok := obj.(*domain.Actor)
		if !ok || actor == owner || actor.State == domain.StateDead {
			continue
		}
		targets = append(targets, actor)
	}
	return targets
}
