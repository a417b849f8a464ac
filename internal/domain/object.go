package domain

import (
	"strings"

	"gridworld-sim/internal/core/types"
)

// ObjectType — тип объекта мира.
type ObjectType uint8

const (
	ObjectTypeUnknown ObjectType = iota
	ObjectTypePlayer
	ObjectTypeNPC
	ObjectTypeEnemy
	ObjectTypeProp
)

var objectTypeToString = map[ObjectType]string{
	ObjectTypePlayer: "PLAYER",
	ObjectTypeNPC:    "NPC",
	ObjectTypeEnemy:  "ENEMY",
	ObjectTypeProp:   "PROP",
}

var objectTypeStringToType = map[string]ObjectType{
	"PLAYER": ObjectTypePlayer,
	"NPC":    ObjectTypeNPC,
	"ENEMY":  ObjectTypeEnemy,
	"PROP":   ObjectTypeProp,
}

// String возвращает строковое представление (для логов и дебага)
func (o ObjectType) String() string {
	if val, ok := objectTypeToString[o]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseObjectType конвертирует строку в Enum (нужно для загрузки шаблонов/конфигов)
func ParseObjectType(s string) ObjectType {
	upper := strings.ToUpper(s)
	if val, ok := objectTypeStringToType[upper]; ok {
		return val
	}
	return ObjectTypeUnknown
}

// Object — любой объект, размещаемый в мире.
//
// Base даёт доступ к общим данным (позиция, имя, флаг Solid).
// OnCreate вызывается миром ПОСЛЕ полной регистрации объекта,
// OnDestroy — ПЕРЕД удалением из авторитетного списка.
type Object interface {
	Base() *WorldObject
	OnCreate()
	OnDestroy()
}

// Thinker — объект, получающий Think-вызов на каждом тике мира.
type Thinker interface {
	Object
	Think()
}

// WorldObject — базовые данные позиционированного объекта.
// Конкретные объекты встраивают WorldObject и при необходимости
// переопределяют хуки жизненного цикла.
type WorldObject struct {
	ID   types.ID   `json:"id"`
	Name string     `json:"name"`
	Type ObjectType `json:"type"`
	Pos  Position   `json:"pos"`

	// Solid — блокирует ли объект клетку для размещения/движения.
	Solid bool `json:"solid"`

	// world — обратная ссылка на мир-владелец.
	// Выставляется один раз при AddObj и больше не переназначается.
	world *World
}

// NewWorldObject создает базовый объект с новым ID.
func NewWorldObject(name string, typ ObjectType, solid bool) WorldObject {
	return WorldObject{
		ID:    types.NewID(),
		Name:  name,
		Type:  typ,
		Solid: solid,
	}
}

// Base возвращает сам объект (реализация интерфейса Object).
func (o *WorldObject) Base() *WorldObject { return o }

// OnCreate — хук создания по умолчанию (пустой).
func (o *WorldObject) OnCreate() {}

// OnDestroy — хук уничтожения по умолчанию (пустой).
func (o *WorldObject) OnDestroy() {}

// World возвращает мир-владелец (nil, если объект еще не размещен).
func (o *WorldObject) World() *World { return o.world }
