package domain

import "strings"

// Modifier — битовая маска статусных модификаторов актора.
// Флаги ортогональны: любой набор может быть активен одновременно.
type Modifier uint16

const (
	ModifierBurned Modifier = 1 << iota
	ModifierParalyzed
	ModifierFrozen
	ModifierConfused
	ModifierPoisoned
	ModifierSleeping
	ModifierFlying
	ModifierPhasing
	ModifierShielded
	ModifierBleeding
	ModifierIrradiated
	ModifierSick
	ModifierSteady
	ModifierHeavy
	ModifierHungry
)

var modifierToString = map[Modifier]string{
	ModifierBurned:     "BURNED",
	ModifierParalyzed:  "PARALYZED",
	ModifierFrozen:     "FROZEN",
	ModifierConfused:   "CONFUSED",
	ModifierPoisoned:   "POISONED",
	ModifierSleeping:   "SLEEPING",
	ModifierFlying:     "FLYING",
	ModifierPhasing:    "PHASING",
	ModifierShielded:   "SHIELDED",
	ModifierBleeding:   "BLEEDING",
	ModifierIrradiated: "IRRADIATED",
	ModifierSick:       "SICK",
	ModifierSteady:     "STEADY",
	ModifierHeavy:      "HEAVY",
	ModifierHungry:     "HUNGRY",
}

// Has проверяет, установлен ли флаг (или хотя бы один из набора).
func (m Modifier) Has(flag Modifier) bool {
	return m&flag != 0
}

// Set устанавливает флаги.
func (m *Modifier) Set(flag Modifier) {
	*m |= flag
}

// Clear снимает флаги.
func (m *Modifier) Clear(flag Modifier) {
	*m &^= flag
}

// String возвращает "BURNED|FROZEN" для логов и дебага.
func (m Modifier) String() string {
	if m == 0 {
		return "NONE"
	}
	var parts []string
	for flag := ModifierBurned; flag <= ModifierHungry; flag <<= 1 {
		if m.Has(flag) {
			parts = append(parts, modifierToString[flag])
		}
	}
	return strings.Join(parts, "|")
}
