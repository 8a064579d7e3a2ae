package enums

import "strings"

// EntityKind - тип сущности.
type EntityKind uint8

const (
	EntityKindUnknown EntityKind = iota
	EntityKindPlayer
	EntityKindActor
	EntityKindItem
)

var entityKindToString = map[EntityKind]string{
	EntityKindPlayer: "PLAYER",
	EntityKindActor:  "ACTOR",
	EntityKindItem:   "ITEM",
}

var stringToEntityKind = map[string]EntityKind{
	"PLAYER": EntityKindPlayer,
	"ACTOR":  EntityKindActor,
	"ITEM":   EntityKindItem,
}

// ParseEntityKind конвертирует строку (из JSON/конфига) в EntityKind.
func ParseEntityKind(s string) EntityKind {
	if v, ok := stringToEntityKind[strings.ToUpper(s)]; ok {
		return v
	}
	return EntityKindUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (k EntityKind) String() string {
	if v, ok := entityKindToString[k]; ok {
		return v
	}
	return "UNKNOWN"
}
