package domain

import (
	"sort"

	"gridworld-sim/internal/core/types"
	"gridworld-sim/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Behavior — поведенческие хуки актора. Think диспетчеризует строго
// по текущему состоянию: Look в IDLE, Act в ACTIVE, WhileDead в DEAD.
// Ровно один хук за тик, хуки никогда не пропускаются и не совмещаются.
type Behavior interface {
	Look(a *Actor)
	Act(a *Actor)
	WhileDead(a *Actor)
}

// Actor — думающий объект мира: хиты, состояние, модификаторы,
// экипировка и инвентарь. Владеет конвейером разрешения урона
// и протоколом экипировки/снятия.
type Actor struct {
	WorldObject

	HP    int `json:"hp"`
	MaxHP int `json:"maxHp"`

	State     ActorState `json:"state"`
	Modifiers Modifier   `json:"modifiers"`

	// Target — слабая ссылка: актор не владеет целью.
	Target *Actor `json:"-"`

	IsPlayer bool `json:"isPlayer"`

	// Brain реализует Look/Act/WhileDead. nil — актор инертен.
	Brain Behavior `json:"-"`

	weapon    Weapon
	armor     map[BodySlot]Armor
	inventory []Item
}

// NewActor создает актора. Начальное состояние задается явно:
// ядро не навязывает дефолт.
func NewActor(name string, typ ObjectType, maxHP int, state ActorState, brain Behavior) *Actor {
	return &Actor{
		WorldObject: NewWorldObject(name, typ, true),
		HP:          maxHP,
		MaxHP:       maxHP,
		State:       state,
		Brain:       brain,
		armor:       make(map[BodySlot]Armor),
	}
}

// Think вызывается миром раз в тик. Диспетчеризация чисто по состоянию.
func (a *Actor) Think() {
	if a.Brain == nil {
		return
	}
	switch a.State {
	case StateIdle:
		a.Brain.Look(a)
	case StateActive:
		a.Brain.Act(a)
	case StateDead:
		a.Brain.WhileDead(a)
	}
}

// --- ИНВЕНТАРЬ ---

// Inventory возвращает предметы, не экипированные в данный момент.
func (a *Actor) Inventory() []Item { return a.inventory }

// AddItem кладет предмет в инвентарь.
func (a *Actor) AddItem(item Item) {
	if item == nil {
		return
	}
	a.inventory = append(a.inventory, item)
}

// FindItem ищет предмет по ID.
func (a *Actor) FindItem(id types.ID) Item {
	for _, it := range a.inventory {
		if it.ItemID() == id {
			return it
		}
	}
	return nil
}

// RemoveItem удаляет предмет из инвентаря и возвращает его (nil, если нет).
func (a *Actor) RemoveItem(id types.ID) Item {
	for i, it := range a.inventory {
		if it.ItemID() == id {
			a.inventory = append(a.inventory[:i], a.inventory[i+1:]...)
			return it
		}
	}
	return nil
}

// --- ЭКИПИРОВКА ---

// Weapon возвращает экипированное оружие (nil, если нет).
func (a *Actor) Weapon() Weapon { return a.weapon }

// ArmorAt возвращает броню в слоте (nil, если слот свободен).
func (a *Actor) ArmorAt(slot BodySlot) Armor { return a.armor[slot] }

// EquipWeapon экипирует оружие из инвентаря.
//
// Предусловие: оружие лежит в инвентаре ЭТОГО актора, иначе тихий no-op.
// Если что-то уже экипировано — сначала снимается (с хуком OnUnequip).
// Порядок установки: снять с инвентаря -> установить -> владелец ->
// OnEquip, чтобы хук наблюдал финальное состояние.
func (a *Actor) EquipWeapon(w Weapon) {
	if w == nil {
		return
	}
	if a.FindItem(w.ItemID()) == nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "actor",
			"actor":     a.Name,
			"item":      w.ItemName(),
		}).Debug("EquipWeapon ignored: item not in inventory.")
		return
	}

	if a.weapon != nil {
		a.UnequipWeapon()
	}

	a.RemoveItem(w.ItemID())
	a.weapon = w
	w.setOwner(a)
	w.OnEquip()

	a.emit(Event{Type: EventWeaponEquipped, Object: a, Item: w})
}

// UnequipWeapon снимает текущее оружие в инвентарь.
// Порядок: вернуть в инвентарь -> OnUnequip -> очистить ссылки.
func (a *Actor) UnequipWeapon() {
	if a.weapon == nil {
		return
	}
	w := a.weapon
	a.inventory = append(a.inventory, w)
	w.OnUnequip()
	a.weapon = nil
	w.setOwner(nil)

	a.emit(Event{Type: EventWeaponUnequipped, Object: a, Item: w})
}

// EquipArmor экипирует броню из инвентаря в ее слот.
// Занятый слот освобождается через обычный путь снятия.
func (a *Actor) EquipArmor(ar Armor) {
	if ar == nil {
		return
	}
	if a.FindItem(ar.ItemID()) == nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "actor",
			"actor":     a.Name,
			"item":      ar.ItemName(),
		}).Debug("EquipArmor ignored: item not in inventory.")
		return
	}

	if a.armor == nil {
		a.armor = make(map[BodySlot]Armor)
	}

	slot := ar.Slot()
	if a.armor[slot] != nil {
		a.UnequipArmor(slot)
	}

	a.RemoveItem(ar.ItemID())
	a.armor[slot] = ar
	ar.setOwner(a)
	ar.OnEquip()

	a.emit(Event{Type: EventArmorEquipped, Object: a, Item: ar, Slot: slot})
}

// UnequipArmor снимает броню из слота в инвентарь.
func (a *Actor) UnequipArmor(slot BodySlot) {
	ar := a.armor[slot]
	if ar == nil {
		return
	}
	a.inventory = append(a.inventory, ar)
	ar.OnUnequip()
	delete(a.armor, slot)
	ar.setOwner(nil)

	a.emit(Event{Type: EventArmorUnequipped, Object: a, Item: ar, Slot: slot})
}

// --- УРОН И ЛЕЧЕНИЕ ---

// ReceiveDamage — единственный путь, который может перевести актора
// в DEAD (и IDLE -> ACTIVE при выживании).
//
// Урон последовательно проходит через всю экипированную броню в порядке
// возрастания номера слота (детерминированно), затем прижимается к нулю:
// отрицательный результат конвейера никогда не лечит. origin опционален
// и нигде не разыменовывается без проверки.
func (a *Actor) ReceiveDamage(origin *Actor, damage int, dtype DamageType) {
	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":   "actor",
		"target_name": a.Name,
		"damage_type": dtype.String(),
	})
	if origin != nil {
		combatLogger = combatLogger.WithField("origin_name", origin.Name)
	}

	// 1. Конвейер брони. Порядок слотов фиксируем сортировкой.
	slots := make([]BodySlot, 0, len(a.armor))
	for slot := range a.armor {
		slots = append(slots, slot)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })

	raw := damage
	for _, slot := range slots {
		damage = a.armor[slot].ReduceDamage(damage, dtype)
	}

	// 2. Пол: урон не может лечить.
	if damage < 0 {
		damage = 0
	}

	hpBefore := a.HP
	a.HP -= damage

	combatLogger.WithFields(logrus.Fields{
		"raw_damage":   raw,
		"final_damage": damage,
		"hp_before":    hpBefore,
		"hp_after":     a.HP,
	}).Info("Damage resolved.")

	a.emit(Event{Type: EventDamageTaken, Object: a, Origin: origin, Damage: damage, DType: dtype})

	// 3. Смертельный удар: переход в DEAD, снятие Solid и СТОП —
	// логика захвата цели на добивании не выполняется.
	if a.HP <= 0 {
		if a.State != StateDead {
			a.State = StateDead
			a.Solid = false
			combatLogger.Info("Actor died.")
			a.emit(Event{Type: EventActorDied, Object: a, Origin: origin})
		}
		return
	}

	// 4. Пережитая атака всегда агрит: цель молча перезаписывается,
	// даже если актор уже преследовал кого-то другого.
	// DEAD терминален — мертвых агро не поднимает.
	if origin != nil && a.State != StateDead {
		a.Target = origin
		a.State = StateActive
	}
}

// Heal прибавляет хиты. Без ignoreMax результат прижимается к MaxHP.
// Пола нет, и лечение НЕ триггерит переходы состояния: мертвый актор,
// вылеченный выше нуля, остается мертвым.
func (a *Actor) Heal(amount int, ignoreMax bool) {
	a.HP += amount
	if !ignoreMax && a.HP > a.MaxHP {
		a.HP = a.MaxHP
	}
}

// --- ДВИЖЕНИЕ И АТАКА ---

// TryMove пытается переместить актора. false — если мир не привязан
// или клетка занята твердым объектом; позиция в этом случае не меняется.
func (a *Actor) TryMove(x, y int) bool {
	if a.world == nil {
		return false
	}
	if !a.world.CheckEmpty(x, y) {
		return false
	}

	from := a.Pos
	a.Pos = Position{X: x, Y: y}
	a.emit(Event{Type: EventActorMoved, Object: a, From: from, To: a.Pos})
	return true
}

// TryAttack пытается атаковать цель экипированным оружием.
// false — если цели нет, оружия нет или цель вне списка целей оружия.
// Сам удар (и вызов ReceiveDamage) делегируется оружию.
func (a *Actor) TryAttack(target *Actor) bool {
	if target == nil || a.weapon == nil {
		return false
	}

	inRange := false
	for _, t := range a.weapon.Targets() {
		if t == target {
			inRange = true
			break
		}
	}
	if !inRange {
		return false
	}

	a.weapon.Attack(target)
	return true
}

func (a *Actor) emit(ev Event) {
	if a.world != nil {
		a.world.emit(ev)
	}
}
