package enums

// EffectKind - закрытое множество эффектов расходуемых предметов.
type EffectKind uint8

const (
	EffectUnknown EffectKind = iota
	EffectHealing
	EffectLightning
	EffectConfusion
	EffectFireball
)

var effectKindToString = map[EffectKind]string{
	EffectHealing:   "HEALING",
	EffectLightning: "LIGHTNING",
	EffectConfusion: "CONFUSION",
	EffectFireball:  "FIREBALL",
}

func (k EffectKind) String() string {
	if v, ok := effectKindToString[k]; ok {
		return v
	}
	return "UNKNOWN"
}
