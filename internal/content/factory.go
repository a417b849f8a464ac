package content

import (
	"fmt"
	"math/rand"
	"os"

	"gridworld-sim/internal/behaviors"
	"gridworld-sim/internal/domain"
	"gridworld-sim/pkg/logger"

	"gopkg.in/yaml.v3"
)

// WeaponTemplate определяет шаблон оружия в файле контента.
// Reach > 1 дает ReachWeapon, иначе обычное оружие ближнего боя.
type WeaponTemplate struct {
	Name   string `yaml:"name"`
	Damage int    `yaml:"damage"`
	Type   string `yaml:"type"`
	Reach  int    `yaml:"reach"`
	Metric string `yaml:"metric"`
}

// ArmorTemplate определяет шаблон брони.
// Percent > 0 дает процентную броню (WardArmor), иначе плоский вычет.
type ArmorTemplate struct {
	Name      string   `yaml:"name"`
	Slot      string   `yaml:"slot"`
	Reduction int      `yaml:"reduction"`
	Percent   int      `yaml:"percent"`
	Protects  []string `yaml:"protects"`
}

// ActorTemplate определяет шаблон актора со стартовым снаряжением.
type ActorTemplate struct {
	Name   string   `yaml:"name"`
	Type   string   `yaml:"type"`
	MaxHP  int      `yaml:"max_hp"`
	State  string   `yaml:"state"`
	Brain  string   `yaml:"brain"`  // "wander" | "sentry" | "none"
	Radius int      `yaml:"radius"` // радиус обнаружения для sentry
	Weapon string   `yaml:"weapon"` // имя шаблона оружия (экипируется при спавне)
	Armor  []string `yaml:"armor"`  // имена шаблонов брони (экипируются при спавне)
}

// Pack — загруженный набор шаблонов контента.
type Pack struct {
	weapons map[string]WeaponTemplate
	armors  map[string]ArmorTemplate
	actors  map[string]ActorTemplate

	rng *rand.Rand
}

type packFile struct {
	Weapons []WeaponTemplate `yaml:"weapons"`
	Armors  []ArmorTemplate  `yaml:"armors"`
	Actors  []ActorTemplate  `yaml:"actors"`
}

// Load читает набор шаблонов из YAML-файла.
func Load(path string, seed int64) (*Pack, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file packFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("content file %s: %w", path, err)
	}

	pack := newPack(seed)
	for _, w := range file.Weapons {
		if w.Name == "" {
			return nil, fmt.Errorf("content file %s: weapon template without a name", path)
		}
		pack.weapons[w.Name] = w
	}
	for _, a := range file.Armors {
		if a.Name == "" {
			return nil, fmt.Errorf("content file %s: armor template without a name", path)
		}
		pack.armors[a.Name] = a
	}
	for _, a := range file.Actors {
		if a.Name == "" {
			return nil, fmt.Errorf("content file %s: actor template without a name", path)
		}
		pack.actors[a.Name] = a
	}

	logger.Log.WithField("component", "content").
		Infof("Loaded content pack: %d weapons, %d armors, %d actors",
			len(pack.weapons), len(pack.armors), len(pack.actors))

	return pack, nil
}

func newPack(seed int64) *Pack {
	return &Pack{
		weapons: make(map[string]WeaponTemplate),
		armors:  make(map[string]ArmorTemplate),
		actors:  make(map[string]ActorTemplate),
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// SpawnWeapon создает оружие по имени шаблона.
func (p *Pack) SpawnWeapon(name string) (domain.Weapon, error) {
	t, ok := p.weapons[name]
	if !ok {
		return nil, fmt.Errorf("unknown weapon template %q", name)
	}

	dtype := domain.ParseDamageType(t.Type)
	if t.Reach > 1 {
		return NewReachWeapon(t.Name, t.Damage, dtype, t.Reach, domain.ParseMetric(t.Metric)), nil
	}
	return NewMeleeWeapon(t.Name, t.Damage, dtype), nil
}

// SpawnArmor создает броню по имени шаблона.
func (p *Pack) SpawnArmor(name string) (domain.Armor, error) {
	t, ok := p.armors[name]
	if !ok {
		return nil, fmt.Errorf("unknown armor template %q", name)
	}

	slot := domain.ParseBodySlot(t.Slot)
	protects := domain.ParseDamageTypes(t.Protects)
	if t.Percent > 0 {
		return NewWardArmor(t.Name, slot, t.Percent, protects), nil
	}
	return NewPaddedArmor(t.Name, slot, t.Reduction, protects), nil
}

// SpawnActor создает актора по имени шаблона: мозг, стартовое
// снаряжение в инвентарь и экипировка сразу при спавне.
func (p *Pack) SpawnActor(name string) (*domain.Actor, error) {
	t, ok := p.actors[name]
	if !ok {
		return nil, fmt.Errorf("unknown actor template %q", name)
	}

	actor := domain.NewActor(
		t.Name,
		domain.ParseObjectType(t.Type),
		t.MaxHP,
		domain.ParseActorState(t.State),
		p.brainFor(t),
	)

	if t.Weapon != "" {
		w, err := p.SpawnWeapon(t.Weapon)
		if err != nil {
			return nil, fmt.Errorf("actor template %q: %w", name, err)
		}
		actor.AddItem(w)
		actor.EquipWeapon(w)
	}

	for _, armorName := range t.Armor {
		ar, err := p.SpawnArmor(armorName)
		if err != nil {
			return nil, fmt.Errorf("actor template %q: %w", name, err)
		}
		actor.AddItem(ar)
		actor.EquipArmor(ar)
	}

	return actor, nil
}

func (p *Pack) brainFor(t ActorTemplate) domain.Behavior {
	switch t.Brain {
	case "wander":
		return &behaviors.Wander{Rng: p.rng, Restlessness: 30}
	case "sentry":
		radius := t.Radius
		if radius <= 0 {
			radius = 5
		}
		return &behaviors.Sentry{Radius: radius, Metric: domain.MetricChessboard}
	}
	return nil
}

// ActorNames возвращает имена всех шаблонов акторов (для демо-спавна).
func (p *Pack) ActorNames() []string {
	names := make([]string, 0, len(p.actors))
	for name := range p.actors {
		names = append(names, name)
	}
	return names
}
