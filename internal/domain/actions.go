package domain

import "strings"

// ActionType - Внутренний числовой идентификатор действия
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionMove
	ActionMelee
	ActionBump
	ActionWait
	ActionPickup
	ActionDrop
	ActionUse
	ActionEquip
	ActionTakeStairs
	ActionLevelUp
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"MOVE":        ActionMove,
	"MELEE":       ActionMelee,
	"BUMP":        ActionBump,
	"WAIT":        ActionWait,
	"PICKUP":      ActionPickup,
	"DROP":        ActionDrop,
	"USE":         ActionUse,
	"EQUIP":       ActionEquip,
	"TAKE_STAIRS": ActionTakeStairs,
	"LEVEL_UP":    ActionLevelUp,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionMove:       "MOVE",
	ActionMelee:      "MELEE",
	ActionBump:       "BUMP",
	ActionWait:       "WAIT",
	ActionPickup:     "PICKUP",
	ActionDrop:       "DROP",
	ActionUse:        "USE",
	ActionEquip:      "EQUIP",
	ActionTakeStairs: "TAKE_STAIRS",
	ActionLevelUp:    "LEVEL_UP",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
