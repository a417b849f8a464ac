package domain

import (
	"gridworld-sim/pkg/logger"

	"github.com/sirupsen/logrus"
)

// World владеет авторитетным списком объектов и подмножеством "думающих".
//
// Мутации списка думающих (добавление/удаление) никогда не применяются
// посреди итерации: они складываются в отложенные очереди и применяются
// единственной точкой синхронизации — началом следующего Advance. Это
// защищает текущий проход тика от инвалидации итератора, когда актор
// умирает и удаляет себя (или кто-то добавляет нового думающего) прямо
// во время Think.
//
// Авторитетный список объектов, напротив, мутируется сразу и синхронно:
// код, который итерирует его посреди тика, защищается сам.
type World struct {
	// objects — авторитетный список всех объектов (порядок вставки).
	objects []Object

	// thinkers — живой список думающих текущего тика.
	thinkers []Thinker

	// Отложенные очереди членства думающих.
	pendingAdd    []Thinker
	pendingRemove []Thinker

	// player — выделенная ссылка на игрока (опциональна, максимум одна).
	player *Actor

	tick int
	sink EventSink
}

// NewWorld создает пустой мир с логирующим приемником событий.
func NewWorld() *World {
	return &World{sink: LogSink{}}
}

// SetEventSink заменяет приемник событий (nil отключает события).
func (w *World) SetEventSink(s EventSink) { w.sink = s }

// Tick возвращает номер текущего тика.
func (w *World) Tick() int { return w.tick }

// Player возвращает выделенного игрока (nil, если не назначен).
func (w *World) Player() *Actor { return w.player }

// Objects возвращает авторитетный список объектов в порядке вставки.
func (w *World) Objects() []Object { return w.objects }

func (w *World) emit(ev Event) {
	if w.sink == nil {
		return
	}
	ev.Tick = w.tick
	w.sink.HandleEvent(ev)
}

// AddObj размещает объект в мире в позиции (x, y).
//
// Привязывает обратную ссылку на мир, добавляет в авторитетный список
// и — если объект умеет думать — ставит его в очередь добавления:
// объект НЕ думает на тике своего создания, но начнет думать со
// следующего. Хук OnCreate вызывается после полной регистрации.
func (w *World) AddObj(obj Object, x, y int) {
	if obj == nil {
		logger.Log.WithField("component", "world").
			Error("AddObj called with nil object, ignoring.")
		return
	}

	base := obj.Base()
	base.world = w
	base.Pos = Position{X: x, Y: y}

	w.objects = append(w.objects, obj)

	if th, ok := obj.(Thinker); ok {
		w.pendingAdd = append(w.pendingAdd, th)
	}

	obj.OnCreate()
	w.emit(Event{Type: EventObjectAdded, Object: obj})

	logger.Log.WithFields(logrus.Fields{
		"component":   "world",
		"object_id":   base.ID.Short(),
		"object_name": base.Name,
		"pos":         base.Pos,
	}).Debug("Object added to world.")
}

// AddPlayer — AddObj плюс запись ссылки на игрока.
// Уникальность не форсируется: последний вызов побеждает.
func (w *World) AddPlayer(a *Actor, x, y int) {
	if a == nil {
		logger.Log.WithField("component", "world").
			Error("AddPlayer called with nil actor, ignoring.")
		return
	}
	a.IsPlayer = true
	w.player = a
	w.AddObj(a, x, y)
}

// RemoveObj удаляет объект из мира.
//
// OnDestroy вызывается ДО удаления из авторитетного списка. Сам список
// мутируется немедленно, а из живого списка думающих объект уходит
// отложенно — чтобы итерация текущего тика осталась стабильной.
func (w *World) RemoveObj(obj Object) {
	if obj == nil {
		logger.Log.WithField("component", "world").
			Warn("RemoveObj called with nil object, ignoring.")
		return
	}

	obj.OnDestroy()

	base := obj.Base()
	for i, o := range w.objects {
		if o.Base() == base {
			w.objects = append(w.objects[:i], w.objects[i+1:]...)
			break
		}
	}

	if th, ok := obj.(Thinker); ok {
		w.pendingRemove = append(w.pendingRemove, th)
	}

	w.emit(Event{Type: EventObjectRemoved, Object: obj})
}

// Advance выполняет один тик симуляции:
//
//  1. Слить очередь добавления в живой список и ОЧИСТИТЬ ее
//     (без очистки ранее добавленные думающие дублировались бы
//     в живом списке на каждом следующем тике).
//  2. Слить очередь удаления, убрав каждого из живого списка; очистить.
//  3. Пройти живой список по порядку и вызвать Think ровно один раз
//     на элемент.
func (w *World) Advance() {
	w.tick++

	// Фаза 1: отложенные добавления (порядок постановки сохраняется).
	if len(w.pendingAdd) > 0 {
		w.thinkers = append(w.thinkers, w.pendingAdd...)
		w.pendingAdd = w.pendingAdd[:0]
	}

	// Фаза 2: отложенные удаления.
	for _, gone := range w.pendingRemove {
		for i, th := range w.thinkers {
			if th.Base() == gone.Base() {
				w.thinkers = append(w.thinkers[:i], w.thinkers[i+1:]...)
				break
			}
		}
	}
	w.pendingRemove = w.pendingRemove[:0]

	// Фаза 3: итерация. Думающие, добавленные/удаленные внутри Think,
	// попадают только в отложенные очереди, поэтому живой список
	// в пределах тика стабилен.
	for _, th := range w.thinkers {
		th.Think()
	}
}

// --- ПРОСТРАНСТВЕННЫЕ ЗАПРОСЫ ---
// Всегда сверяются с авторитетным списком на момент вызова (без кэша).

// CheckEmpty возвращает true, если ни один ТВЕРДЫЙ объект
// не занимает клетку (x, y).
func (w *World) CheckEmpty(x, y int) bool {
	for _, obj := range w.objects {
		base := obj.Base()
		if base.Solid && base.Pos.X == x && base.Pos.Y == y {
			return false
		}
	}
	return true
}

// GetObjectsAt возвращает все объекты ровно в клетке (x, y).
func (w *World) GetObjectsAt(x, y int) []Object {
	var result []Object
	for _, obj := range w.objects {
		base := obj.Base()
		if base.Pos.X == x && base.Pos.Y == y {
			result = append(result, obj)
		}
	}
	return result
}

// GetObjectsInRange возвращает объекты в радиусе maxDistance от (x, y)
// в выбранной метрике (манхэттенской или шахматной).
func (w *World) GetObjectsInRange(x, y, maxDistance int, metric Metric) []Object {
	origin := Position{X: x, Y: y}
	var result []Object
	for _, obj := range w.objects {
		if origin.Within(obj.Base().Pos, maxDistance, metric) {
			result = append(result, obj)
		}
	}
	return result
}
