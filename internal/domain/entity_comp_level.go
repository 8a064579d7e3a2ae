package domain

// Формула порога опыта: base + current_level * factor.
// Строго возрастает по уровню при фиксированных коэффициентах.

// ExperienceToNextLevel возвращает порог опыта для следующего уровня.
func (l *LevelComponent) ExperienceToNextLevel() int {
	return l.LevelUpBase + l.CurrentLevel*l.LevelUpFactor
}

// RequiresLevelUp: опыт дорос до порога.
func (l *LevelComponent) RequiresLevelUp() bool {
	return l.CurrentXP >= l.ExperienceToNextLevel()
}

// AddXP добавляет опыт. Возвращает true, если после начисления
// требуется повышение уровня.
func (l *LevelComponent) AddXP(xp int) bool {
	if xp <= 0 || l.LevelUpBase == 0 {
		// Монстрам опыт не копим (у них LevelUpBase == 0).
		return false
	}
	l.CurrentXP += xp
	return l.RequiresLevelUp()
}

// consumeLevelUp списывает порог и поднимает уровень.
// Вызывается из Increase* после применения бонуса.
func (l *LevelComponent) consumeLevelUp() {
	l.CurrentXP -= l.ExperienceToNextLevel()
	l.CurrentLevel++
}

// IncreaseMaxHP - выбор "живучесть" при повышении уровня.
func (e *Entity) IncreaseMaxHP(amount int) {
	if e.Fighter == nil || e.Level == nil {
		return
	}
	e.Fighter.MaxHP += amount
	e.Fighter.HP += amount
	e.Level.consumeLevelUp()
}

// IncreasePower - выбор "сила" при повышении уровня.
func (e *Entity) IncreasePower(amount int) {
	if e.Fighter == nil || e.Level == nil {
		return
	}
	e.Fighter.BasePower += amount
	e.Level.consumeLevelUp()
}

// IncreaseDefense - выбор "ловкость" при повышении уровня.
func (e *Entity) IncreaseDefense(amount int) {
	if e.Fighter == nil || e.Level == nil {
		return
	}
	e.Fighter.BaseDefense += amount
	e.Level.consumeLevelUp()
}
