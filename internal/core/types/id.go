package types

import "github.com/google/uuid"

// ID — уникальный идентификатор объекта мира.
//
// ID является value-type и предназначен для дешёвого копирования,
// сериализации и сравнения. Под капотом — каноническая строка UUID v4:
// идентификаторы глобально уникальны и не зависят от порядка создания,
// поэтому их можно безопасно использовать как слабые ссылки на объекты
// (реестры, цели, владельцы предметов) без риска коллизий после
// удаления и повторного создания.
type ID string

// NilID — нулевой идентификатор.
//
// Используется как аналог nil для случаев, когда объект отсутствует
// или ссылка ещё не инициализирована.
const NilID ID = ""

// NewID генерирует новый уникальный идентификатор.
func NewID() ID {
	return ID(uuid.NewString())
}

// IsNil проверяет, является ли идентификатор нулевым.
func (id ID) IsNil() bool {
	return id == NilID
}

// Short возвращает укороченную форму для логов и отладки
// (первые 8 символов UUID).
func (id ID) Short() string {
	if id.IsNil() {
		return "<nil>"
	}
	s := string(id)
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

// String возвращает полное строковое представление.
func (id ID) String() string {
	if id.IsNil() {
		return "<nil>"
	}
	return string(id)
}
