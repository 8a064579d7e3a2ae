package actions

import (
	"delve-server/internal/domain"
	"delve-server/internal/engine/handlers"
	"delve-server/pkg/api"
)

// Приращения характеристик при росте уровня.
const (
	levelUpHPGain      = 20
	levelUpPowerGain   = 1
	levelUpDefenseGain = 1
)

// HandleLevelUp тратит накопленный порог опыта на выбранную
// характеристику. Доступно только когда опыт достиг порога.
func HandleLevelUp(ctx handlers.Context, p api.LevelUpPayload) (handlers.Result, error) {
	actor := ctx.Actor

	if actor.Level == nil || !actor.Level.RequiresLevelUp() {
		return handlers.EmptyResult(), domain.Impossiblef("Вам пока нечему учиться.")
	}

	var msg string
	switch p.Stat {
	case api.LevelUpStatHP:
		actor.IncreaseMaxHP(levelUpHPGain)
		msg = "Ваше здоровье заметно крепнет!"
	case api.LevelUpStatPower:
		actor.IncreasePower(levelUpPowerGain)
		msg = "Вы чувствуете себя сильнее!"
	case api.LevelUpStatDefense:
		actor.IncreaseDefense(levelUpDefenseGain)
		msg = "Ваши движения становятся увереннее!"
	default:
		return handlers.EmptyResult(), domain.Impossiblef("Неизвестная характеристика: %s", p.Stat)
	}

	ctx.Log.Addf(domain.MsgInfo, "Вы достигаете уровня %d.", actor.Level.CurrentLevel)

	return handlers.Result{Msg: msg, MsgType: domain.MsgInfo}, nil
}
