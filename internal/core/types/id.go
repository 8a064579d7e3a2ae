package types

import "github.com/google/uuid"

// EntityID - уникальный идентификатор сущности.
//
// Строковый UUID: дешево сериализуется в JSON и не требует
// координации между генератором уровней и движком.
type EntityID string

// NilEntityID - аналог nil для случаев, когда сущность отсутствует
// или ссылка ещё не инициализирована.
const NilEntityID EntityID = ""

// NewEntityID генерирует новый случайный идентификатор.
func NewEntityID() EntityID {
	return EntityID(uuid.NewString())
}

// IsNil проверяет, является ли идентификатор пустым.
func (id EntityID) IsNil() bool {
	return id == NilEntityID
}

// String реализует fmt.Stringer (для логов).
func (id EntityID) String() string {
	if id.IsNil() {
		return "<nil>"
	}
	return string(id)
}
