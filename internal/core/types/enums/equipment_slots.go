package enums

import "strings"

// EquipSlot - закрытое множество слотов экипировки.
type EquipSlot uint8

const (
	EquipSlotUnknown EquipSlot = iota
	EquipSlotWeapon
	EquipSlotArmor
)

var equipSlotToString = map[EquipSlot]string{
	EquipSlotWeapon: "WEAPON",
	EquipSlotArmor:  "ARMOR",
}

var stringToEquipSlot = map[string]EquipSlot{
	"WEAPON": EquipSlotWeapon,
	"ARMOR":  EquipSlotArmor,
}

// AllEquipSlots перечисляет слоты в фиксированном порядке (для детерминированных
// обходов: подсчет бонусов, снятие экипировки при выбросе).
var AllEquipSlots = []EquipSlot{EquipSlotWeapon, EquipSlotArmor}

// ParseEquipSlot конвертирует строку в EquipSlot.
func ParseEquipSlot(s string) EquipSlot {
	if v, ok := stringToEquipSlot[strings.ToUpper(s)]; ok {
		return v
	}
	return EquipSlotUnknown
}

func (s EquipSlot) String() string {
	if v, ok := equipSlotToString[s]; ok {
		return v
	}
	return "UNKNOWN"
}
