package domain

import "fmt"

// Impossible - ожидаемый, нефатальный исход действия: "в текущем
// состоянии мира так сделать нельзя". Действие с таким исходом НЕ
// оставляет частичных эффектов. Для игрока причина уходит в лог
// сообщений, для NPC молча превращается в пропуск хода.
type Impossible struct {
	Reason string
}

func (e *Impossible) Error() string {
	return e.Reason
}

// Impossiblef создает Impossible с форматированной причиной.
func Impossiblef(format string, args ...interface{}) *Impossible {
	return &Impossible{Reason: fmt.Sprintf(format, args...)}
}

// ConfigurationError - некорректные параметры генератора или таблиц
// спавна. Фатальна для попытки генерации, но восстановима для
// вызывающего: логируем и отменяем генерацию этажа.
type ConfigurationError struct {
	Field  string
	Detail string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Detail)
}
