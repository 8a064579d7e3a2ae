package actions

import (
	"delve-server/internal/engine/handlers"
)

// HandleWait - пропуск хода. Всегда успешен и ничего не меняет.
func HandleWait(ctx handlers.Context) (handlers.Result, error) {
	return handlers.EmptyResult(), nil
}
