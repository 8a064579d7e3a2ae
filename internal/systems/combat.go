package systems

import (
	"fmt"

	"delve-server/internal/core/types/enums"
	"delve-server/internal/domain"
	"delve-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// AttackOutcome - итог одного удара для вызывающего хендлера.
type AttackOutcome struct {
	Message    string
	TargetDied bool
	XPAwarded  int
}

// ApplyAttack наносит удар attacker -> target и, если цель погибла,
// выполняет разрешение смерти. Формула: damage = max(0, power - defense),
// где power/defense - производные характеристики (база + экипировка).
func ApplyAttack(attacker, target *domain.Entity) AttackOutcome {
	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":     "combat_system",
		"attacker_id":   attacker.ID,
		"attacker_name": attacker.Name,
		"target_id":     target.ID,
		"target_name":   target.Name,
	})

	power := attacker.PowerTotal()
	defense := target.DefenseTotal()

	damage := power - defense
	if damage < 0 {
		damage = 0
	}

	hpBefore := target.Fighter.HP
	died := target.Fighter.TakeDamage(damage)

	combatLogger.WithFields(logrus.Fields{
		"power":     power,
		"defense":   defense,
		"damage":    damage,
		"hp_before": hpBefore,
		"hp_after":  target.Fighter.HP,
		"died":      died,
	}).Info("Attack resolved.")

	var msg string
	if damage > 0 {
		msg = fmt.Sprintf("%s наносит %d урона по %s.", attacker.Name, damage, target.Name)
	} else {
		msg = fmt.Sprintf("%s атакует %s, но не пробивает защиту.", attacker.Name, target.Name)
	}

	outcome := AttackOutcome{Message: msg, TargetDied: died}
	if died {
		outcome.XPAwarded = resolveDeath(attacker, target)
		if target.IsPlayer() {
			outcome.Message += " Вы погибаете."
		} else {
			outcome.Message += fmt.Sprintf(" %s погибает.", target.Name)
		}
	}

	return outcome
}

// resolveDeath переводит цель в терминальное состояние трупа.
// Вызывается РОВНО один раз: TakeDamage возвращает true только при
// переходе HP в ноль. Возвращает начисленный убийце опыт.
func resolveDeath(killer, dead *domain.Entity) int {
	// Труп: не ходит, не блокирует, рисуется нижним слоем.
	dead.AI = nil
	dead.BlocksMovement = false
	dead.RenderOrder = enums.RenderOrderCorpse
	if dead.Render != nil {
		dead.Render.Glyph = dead.Render.Glyph.WithChar(domain.CorpseChar).WithColor(domain.CorpseColor)
	}

	// Игрок остается на карте: смерть игрока завершает забег,
	// а не сущность.
	if dead.IsPlayer() {
		return 0
	}

	dead.Name = "останки " + dead.Name

	// Опыт получает убийца (если умеет его копить).
	xp := 0
	if dead.Level != nil {
		xp = dead.Level.XPGiven
	}
	if xp > 0 && killer.Level != nil {
		killer.Level.AddXP(xp)
	}

	logger.Log.WithFields(logrus.Fields{
		"component":  "combat_system",
		"dead_id":    dead.ID,
		"killer_id":  killer.ID,
		"xp_awarded": xp,
	}).Info("Death resolved.")

	return xp
}
