package domain

// Weapon — экипируемый предмет, умеющий перечислять цели и атаковать.
//
// Конкретные виды оружия встраивают BaseWeapon (он несет обратную ссылку
// на владельца и пустые хуки) и реализуют Targets/Attack. Внутренности
// атаки (величина урона, тип, форма радиуса) полиморфны: договор ядра —
// только то, что Attack в итоге вызовет ReceiveDamage цели.
type Weapon interface {
	Item

	// Owner возвращает актора, который сейчас держит оружие
	// (nil, если оружие не экипировано).
	Owner() *Actor
	setOwner(a *Actor)

	// OnEquip вызывается ПОСЛЕ установки владельца и снятия с инвентаря:
	// хук наблюдает финальное состояние экипировки.
	OnEquip()
	// OnUnequip вызывается после возврата в инвентарь,
	// но ДО очистки ссылки на владельца.
	OnUnequip()

	// Targets перечисляет акторов, которых оружие сейчас может атаковать.
	Targets() []*Actor
	// Attack наносит удар по цели (цель должна быть из Targets).
	Attack(target *Actor)
}

// BaseWeapon — базовые данные оружия. Не реализует Targets/Attack:
// это обязанность конкретного вида оружия.
type BaseWeapon struct {
	BaseItem
	owner *Actor
}

// NewBaseWeapon создает основу оружия с категорией WEAPON.
func NewBaseWeapon(name string) BaseWeapon {
	return BaseWeapon{BaseItem: NewBaseItem(name, ItemCategoryWeapon)}
}

// Owner возвращает текущего владельца (nil, если не экипировано).
func (w *BaseWeapon) Owner() *Actor { return w.owner }

func (w *BaseWeapon) setOwner(a *Actor) { w.owner = a }

// OnEquip — хук по умолчанию (пустой).
func (w *BaseWeapon) OnEquip() {}

// OnUnequip — хук по умолчанию (пустой).
func (w *BaseWeapon) OnUnequip() {}
