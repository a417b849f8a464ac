package domain

import "strings"

// ActorState — состояние актора. Закрытое множество: Idle / Active / Dead.
type ActorState uint8

const (
	StateIdle ActorState = iota
	StateActive
	StateDead
)

var stateToString = map[ActorState]string{
	StateIdle:   "IDLE",
	StateActive: "ACTIVE",
	StateDead:   "DEAD",
}

var stateStringToState = map[string]ActorState{
	"IDLE":   StateIdle,
	"ACTIVE": StateActive,
	"DEAD":   StateDead,
}

// String возвращает строковое представление (для логов и дебага)
func (s ActorState) String() string {
	if val, ok := stateToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseActorState конвертирует строку в ActorState (нужно для загрузки шаблонов).
// Неизвестные значения трактуются как IDLE.
func ParseActorState(s string) ActorState {
	upper := strings.ToUpper(s)
	if val, ok := stateStringToState[upper]; ok {
		return val
	}
	return StateIdle
}
