package domain

import (
	"gridworld-sim/pkg/logger"

	"github.com/sirupsen/logrus"
)

// EventType - Внутренний числовой идентификатор события
type EventType uint8

const (
	EventUnknown EventType = iota
	EventObjectAdded
	EventObjectRemoved
	EventActorMoved
	EventDamageTaken
	EventActorDied
	EventWeaponEquipped
	EventWeaponUnequipped
	EventArmorEquipped
	EventArmorUnequipped
)

// Маппинг для логов Domain -> String
var eventTypeToString = map[EventType]string{
	EventObjectAdded:      "OBJECT_ADDED",
	EventObjectRemoved:    "OBJECT_REMOVED",
	EventActorMoved:       "ACTOR_MOVED",
	EventDamageTaken:      "DAMAGE_TAKEN",
	EventActorDied:        "ACTOR_DIED",
	EventWeaponEquipped:   "WEAPON_EQUIPPED",
	EventWeaponUnequipped: "WEAPON_UNEQUIPPED",
	EventArmorEquipped:    "ARMOR_EQUIPPED",
	EventArmorUnequipped:  "ARMOR_UNEQUIPPED",
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (e EventType) String() string {
	if val, ok := eventTypeToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}

// Event — событие ядра. Набор заполненных полей зависит от типа:
// у событий урона заполнены Damage/DamageType/Origin, у событий
// экипировки — Item (и Slot для брони), у движения — From/To.
type Event struct {
	Type   EventType
	Tick   int
	Object Object // субъект события (кого добавили/ударили/убили)
	Origin *Actor // источник урона; ОПЦИОНАЛЕН — всегда проверять на nil
	Item   Item   // предмет для событий экипировки
	Slot   BodySlot
	Damage int
	DType  DamageType
	From   Position
	To     Position
}

// EventSink — приемник событий ядра. Формат и назначение приемника —
// забота коллаборатора: ядро лишь гарантирует, что событие будет
// отправлено в момент, описанный контрактом.
type EventSink interface {
	HandleEvent(ev Event)
}

// LogSink — приемник по умолчанию: пишет события в структурированный лог.
type LogSink struct{}

// HandleEvent логирует событие со стандартным набором полей.
func (LogSink) HandleEvent(ev Event) {
	entry := logger.Log.WithFields(logrus.Fields{
		"component": "world_events",
		"event":     ev.Type.String(),
		"tick":      ev.Tick,
	})

	if ev.Object != nil {
		base := ev.Object.Base()
		entry = entry.WithFields(logrus.Fields{
			"object_id":   base.ID.Short(),
			"object_name": base.Name,
		})
	}
	if ev.Origin != nil {
		entry = entry.WithField("origin_name", ev.Origin.Name)
	}
	if ev.Item != nil {
		entry = entry.WithField("item_name", ev.Item.ItemName())
	}

	switch ev.Type {
	case EventDamageTaken:
		entry.WithFields(logrus.Fields{
			"damage":      ev.Damage,
			"damage_type": ev.DType.String(),
		}).Info("Damage resolved.")
	case EventActorDied:
		entry.Info("Actor died.")
	case EventActorMoved:
		entry.WithFields(logrus.Fields{
			"from": ev.From,
			"to":   ev.To,
		}).Debug("Actor moved.")
	case EventArmorEquipped, EventArmorUnequipped:
		entry.WithField("slot", ev.Slot.String()).Info("Equipment changed.")
	case EventWeaponEquipped, EventWeaponUnequipped:
		entry.Info("Equipment changed.")
	default:
		entry.Debug("World event.")
	}
}
