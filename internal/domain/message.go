package domain

import (
	"fmt"
	"time"
)

// LogEntry - запись в логе сообщений
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"` // INFO, COMBAT, ERROR
	Timestamp int64  `json:"timestamp"`
}

// Типы сообщений
const (
	MsgInfo   = "INFO"
	MsgCombat = "COMBAT"
	MsgError  = "ERROR"
)

// MessageLog - упорядоченная история сообщений для игрока.
// Ядро никогда не форматирует и не красит текст, только копит записи;
// отображение - забота клиента.
type MessageLog struct {
	Entries []LogEntry `json:"entries"`
}

func NewMessageLog() *MessageLog {
	return &MessageLog{Entries: []LogEntry{}}
}

// Add добавляет сообщение в конец лога.
func (l *MessageLog) Add(text, msgType string) {
	l.Entries = append(l.Entries, LogEntry{
		ID:        fmt.Sprintf("%d", time.Now().UnixNano()),
		Text:      text,
		Type:      msgType,
		Timestamp: time.Now().UnixMilli(),
	})
}

// Addf добавляет форматированное сообщение.
func (l *MessageLog) Addf(msgType, format string, args ...interface{}) {
	l.Add(fmt.Sprintf(format, args...), msgType)
}

// Tail возвращает последние n записей (для DTO клиенту).
func (l *MessageLog) Tail(n int) []LogEntry {
	if n <= 0 || n >= len(l.Entries) {
		return l.Entries
	}
	return l.Entries[len(l.Entries)-n:]
}
