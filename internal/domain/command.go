package domain

import (
	"delve-server/internal/core/types"
	"encoding/json"
)

// Command - команда для движка. Привязана ровно к одному актору
// в момент создания; это единственный путь изменения игрового
// состояния (и для игрока, и для AI).
type Command struct {
	Action  ActionType      // Число! Быстро и безопасно.
	ActorID types.EntityID  // Кто выполняет действие
	Payload json.RawMessage // Сырые данные (парсятся хендлером)
}
