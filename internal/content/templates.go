package content

// Встроенный набор шаблонов: используется демо-драйвером,
// когда файл контента не указан.

var (
	RustySword = WeaponTemplate{
		Name:   "Ржавый меч",
		Damage: 3,
		Type:   "slice",
	}

	HuntingSpear = WeaponTemplate{
		Name:   "Охотничье копье",
		Damage: 2,
		Type:   "stab",
		Reach:  2,
		Metric: "manhattan",
	}

	LeatherVest = ArmorTemplate{
		Name:      "Кожаный жилет",
		Slot:      "body",
		Reduction: 1,
		Protects:  []string{"stab", "slice"},
	}

	EmberWard = ArmorTemplate{
		Name:     "Оберег от огня",
		Slot:     "hands",
		Percent:  50,
		Protects: []string{"fire"},
	}

	HeroTemplate = ActorTemplate{
		Name:   "Герой",
		Type:   "player",
		MaxHP:  20,
		State:  "idle",
		Weapon: RustySword.Name,
		Armor:  []string{LeatherVest.Name},
	}

	GoblinTemplate = ActorTemplate{
		Name:  "Гоблин",
		Type:  "enemy",
		MaxHP: 8,
		State: "idle",
		Brain: "wander",
	}

	SentryTemplate = ActorTemplate{
		Name:   "Страж",
		Type:   "enemy",
		MaxHP:  12,
		State:  "idle",
		Brain:  "sentry",
		Radius: 4,
		Weapon: HuntingSpear.Name,
	}
)

// DefaultPack собирает встроенный набор шаблонов.
func DefaultPack(seed int64) *Pack {
	p := newPack(seed)
	for _, w := range []WeaponTemplate{RustySword, HuntingSpear} {
		p.weapons[w.Name] = w
	}
	for _, a := range []ArmorTemplate{LeatherVest, EmberWard} {
		p.armors[a.Name] = a
	}
	for _, a := range []ActorTemplate{HeroTemplate, GoblinTemplate, SentryTemplate} {
		p.actors[a.Name] = a
	}
	return p
}
