package enums

// AIKind - закрытое множество стратегий поведения.
// Диспетчеризация идет через один switch в systems (без виртуальных вызовов).
type AIKind uint8

const (
	AIKindNone AIKind = iota // Нет мозгов: предметы, трупы
	AIKindIdle
	AIKindHostile
	AIKindConfused
)

var aiKindToString = map[AIKind]string{
	AIKindNone:     "NONE",
	AIKindIdle:     "IDLE",
	AIKindHostile:  "HOSTILE",
	AIKindConfused: "CONFUSED",
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (k AIKind) String() string {
	if v, ok := aiKindToString[k]; ok {
		return v
	}
	return "UNKNOWN"
}
