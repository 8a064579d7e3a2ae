package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO.
// Хендлер-обертка вызывает Validate автоматически после Unmarshal.
type Validator interface {
	Validate() error
}

func (p DirectionPayload) Validate() error {
	if p.Dx == 0 && p.Dy == 0 {
		return errors.New("movement vector cannot be zero")
	}
	if p.Dx < -1 || p.Dx > 1 || p.Dy < -1 || p.Dy > 1 {
		return errors.New("movement step too large")
	}
	return nil
}

func (p ItemPayload) Validate() error {
	if p.ItemID == "" {
		return errors.New("itemId is required")
	}
	return nil
}

func (p PositionPayload) Validate() error {
	if p.X < 0 || p.Y < 0 {
		return errors.New("position must be non-negative")
	}
	return nil
}

func (p LevelUpPayload) Validate() error {
	switch p.Stat {
	case LevelUpStatHP, LevelUpStatPower, LevelUpStatDefense:
		return nil
	}
	return errors.New("stat must be one of: hp, power, defense")
}
