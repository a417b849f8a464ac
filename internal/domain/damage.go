package domain

import "strings"

// DamageType — категория урона (битовые флаги).
// Броня сверяется с типом, чтобы решить, снижать ли урон.
type DamageType uint8

const (
	DamageStab DamageType = 1 << iota
	DamageSlice
	DamageBlunt
	DamageFire
	DamageIce
	DamageMagic
	DamageLightning
)

var damageTypeToString = map[DamageType]string{
	DamageStab:      "STAB",
	DamageSlice:     "SLICE",
	DamageBlunt:     "BLUNT",
	DamageFire:      "FIRE",
	DamageIce:       "ICE",
	DamageMagic:     "MAGIC",
	DamageLightning: "LIGHTNING",
}

var damageTypeStringToType = map[string]DamageType{
	"STAB":      DamageStab,
	"SLICE":     DamageSlice,
	"BLUNT":     DamageBlunt,
	"FIRE":      DamageFire,
	"ICE":       DamageIce,
	"MAGIC":     DamageMagic,
	"LIGHTNING": DamageLightning,
}

// Has проверяет, установлен ли флаг (или хотя бы один из флагов).
func (d DamageType) Has(flag DamageType) bool {
	return d&flag != 0
}

// String возвращает строковое представление набора флагов
// в виде "STAB|FIRE" (для логов и дебага).
func (d DamageType) String() string {
	if d == 0 {
		return "NONE"
	}
	var parts []string
	for flag := DamageStab; flag <= DamageLightning; flag <<= 1 {
		if d.Has(flag) {
			parts = append(parts, damageTypeToString[flag])
		}
	}
	return strings.Join(parts, "|")
}

// ParseDamageType конвертирует строку ("stab", "fire" и т.д.) в один флаг.
// Неизвестные значения дают 0.
func ParseDamageType(s string) DamageType {
	upper := strings.ToUpper(strings.TrimSpace(s))
	if val, ok := damageTypeStringToType[upper]; ok {
		return val
	}
	return 0
}

// ParseDamageTypes собирает набор флагов из списка строк.
func ParseDamageTypes(names []string) DamageType {
	var d DamageType
	for _, n := range names {
		d |= ParseDamageType(n)
	}
	return d
}
