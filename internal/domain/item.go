package domain

import (
	"strings"

	"gridworld-sim/internal/core/types"
)

// ItemCategory — категория предмета.
type ItemCategory uint8

const (
	ItemCategoryMisc ItemCategory = iota
	ItemCategoryWeapon
	ItemCategoryArmor
	ItemCategoryConsumable
)

var itemCategoryToString = map[ItemCategory]string{
	ItemCategoryMisc:       "MISC",
	ItemCategoryWeapon:     "WEAPON",
	ItemCategoryArmor:      "ARMOR",
	ItemCategoryConsumable: "CONSUMABLE",
}

var itemCategoryStringToCategory = map[string]ItemCategory{
	"MISC":       ItemCategoryMisc,
	"WEAPON":     ItemCategoryWeapon,
	"ARMOR":      ItemCategoryArmor,
	"CONSUMABLE": ItemCategoryConsumable,
}

// String возвращает строковое представление (для логов и дебага)
func (c ItemCategory) String() string {
	if val, ok := itemCategoryToString[c]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseItemCategory конвертирует строку в Enum (нужно для загрузки шаблонов)
func ParseItemCategory(s string) ItemCategory {
	upper := strings.ToUpper(s)
	if val, ok := itemCategoryStringToCategory[upper]; ok {
		return val
	}
	return ItemCategoryMisc
}

// Item — базовая единица инвентаря.
// У предмета нет ссылки на владельца: ей обладают только
// экипируемые специализации (Weapon, Armor).
type Item interface {
	ItemID() types.ID
	ItemName() string
	Category() ItemCategory
}

// BaseItem — общие данные предмета. Конкретные предметы встраивают его.
type BaseItem struct {
	ID   types.ID     `json:"id"`
	Name string       `json:"name"`
	Kind ItemCategory `json:"kind"`
}

// NewBaseItem создает предмет с новым ID.
func NewBaseItem(name string, kind ItemCategory) BaseItem {
	return BaseItem{
		ID:   types.NewID(),
		Name: name,
		Kind: kind,
	}
}

func (it *BaseItem) ItemID() types.ID       { return it.ID }
func (it *BaseItem) ItemName() string       { return it.Name }
func (it *BaseItem) Category() ItemCategory { return it.Kind }
