package enums

// RenderOrder - приоритет отрисовки. Чем меньше, тем ниже слой:
// труп лежит под предметом, предмет под живым актором.
// На логику игры ВЛИЯЕТ только в одном месте: при смерти актор
// опускается на слой RenderOrderCorpse.
type RenderOrder uint8

const (
	RenderOrderCorpse RenderOrder = iota
	RenderOrderItem
	RenderOrderActor
)

var renderOrderToString = map[RenderOrder]string{
	RenderOrderCorpse: "CORPSE",
	RenderOrderItem:   "ITEM",
	RenderOrderActor:  "ACTOR",
}

func (r RenderOrder) String() string {
	if v, ok := renderOrderToString[r]; ok {
		return v
	}
	return "UNKNOWN"
}
