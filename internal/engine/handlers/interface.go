package handlers

import (
	"encoding/json"
	"math/rand"

	"delve-server/internal/domain"
)

// FloorChanger описывает движок с точки зрения хендлера лестницы:
// единственное, что тому нужно - уметь спускать игрока на следующий
// этаж. Engine неявно реализует этот интерфейс.
type FloorChanger interface {
	Descend() error
}

// Context передает хендлеру состояние мира.
// Мы передаем ссылки, чтобы хендлер мог менять состояние (мутировать данные).
type Context struct {
	World  *domain.GameMap
	Actor  *domain.Entity // Тот, кто выполняет команду (Игрок или NPC)
	Log    *domain.MessageLog
	RNG    *rand.Rand
	Floors FloorChanger
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет основное сообщение в лог напрямую, он возвращает данные;
// побочные сообщения (смена экипировки перед выбросом и т.п.) он может
// дописывать через ctx.Log.
type Result struct {
	Msg     string // Текст лога
	MsgType string // Тип лога (INFO, COMBAT, ERROR)
}

// HandlerFunc - это контракт для любой команды (MOVE, MELEE, etc).
// Невыполнимость действия сообщается ошибкой *domain.Impossible:
// мир при этом остается нетронутым, а ход не тратится.
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
