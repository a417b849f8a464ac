package domain

import "strings"

// BodySlot — слот тела, в который надевается броня.
// Инвариант актора: не более одной брони на слот.
type BodySlot uint8

const (
	SlotHead BodySlot = iota
	SlotBody
	SlotHands
	SlotLegs
	SlotFeet
)

var bodySlotToString = map[BodySlot]string{
	SlotHead:  "HEAD",
	SlotBody:  "BODY",
	SlotHands: "HANDS",
	SlotLegs:  "LEGS",
	SlotFeet:  "FEET",
}

var bodySlotStringToSlot = map[string]BodySlot{
	"HEAD":  SlotHead,
	"BODY":  SlotBody,
	"HANDS": SlotHands,
	"LEGS":  SlotLegs,
	"FEET":  SlotFeet,
}

// String возвращает строковое представление (для логов и дебага)
func (s BodySlot) String() string {
	if val, ok := bodySlotToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseBodySlot конвертирует строку в Enum (нужно для загрузки шаблонов)
func ParseBodySlot(s string) BodySlot {
	upper := strings.ToUpper(s)
	if val, ok := bodySlotStringToSlot[upper]; ok {
		return val
	}
	return SlotBody
}

// Armor — экипируемый предмет, снижающий (или усиливающий) входящий урон.
// Конкретные виды брони встраивают BaseArmor и реализуют ReduceDamage.
type Armor interface {
	Item

	// Owner возвращает актора, который сейчас носит броню
	// (nil, если броня не экипирована).
	Owner() *Actor
	setOwner(a *Actor)

	// Slot возвращает слот тела, который занимает броня.
	Slot() BodySlot

	OnEquip()
	OnUnequip()

	// ReduceDamage возвращает скорректированный урон для данного типа.
	// Возврат может быть и больше входа (уязвимость), и отрицательным —
	// отрицательный результат конвейера актор прижимает к нулю.
	ReduceDamage(damage int, dtype DamageType) int
}

// BaseArmor — базовые данные брони. Не реализует ReduceDamage.
type BaseArmor struct {
	BaseItem
	slot  BodySlot
	owner *Actor
}

// NewBaseArmor создает основу брони для заданного слота.
func NewBaseArmor(name string, slot BodySlot) BaseArmor {
	return BaseArmor{
		BaseItem: NewBaseItem(name, ItemCategoryArmor),
		slot:     slot,
	}
}

// Owner возвращает текущего владельца (nil, если не экипирована).
func (a *BaseArmor) Owner() *Actor { return a.owner }

func (a *BaseArmor) setOwner(owner *Actor) { a.owner = owner }

// Slot возвращает слот тела.
func (a *BaseArmor) Slot() BodySlot { return a.slot }

// OnEquip — хук по умолчанию (пустой).
func (a *BaseArmor) OnEquip() {}

// OnUnequip — хук по умолчанию (пустой).
func (a *BaseArmor) OnUnequip() {}
