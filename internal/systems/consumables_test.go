package systems

import (
	"testing"

	"delve-server/internal/core/types"
	"delve-server/internal/core/types/enums"
	"delve-server/internal/domain"
)

func testConsumable(name string, c domain.ConsumableComponent) *domain.Entity {
	return &domain.Entity{
		ID:         types.NewEntityID(),
		Kind:       enums.EntityKindItem,
		Name:       name,
		Consumable: &c,
	}
}

func TestHealingPotion(t *testing.T) {
	m := openMap(10, 10)
	msgLog := domain.NewMessageLog()
	player := testPlayer(5, 5)
	player.Fighter.HP = 20
	m.AddEntity(player)

	potion := testConsumable("зелье", domain.ConsumableComponent{
		Effect: enums.EffectHealing, Amount: 4,
	})

	if err := ActivateConsumable(m, msgLog, player, potion, player.Pos); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if player.Fighter.HP != 24 {
		t.Errorf("Expected 24 HP, got %d", player.Fighter.HP)
	}
}

func TestHealingPotionAtFullHP(t *testing.T) {
	m := openMap(10, 10)
	msgLog := domain.NewMessageLog()
	player := testPlayer(5, 5)
	m.AddEntity(player)

	potion := testConsumable("зелье", domain.ConsumableComponent{
		Effect: enums.EffectHealing, Amount: 4,
	})

	err := ActivateConsumable(m, msgLog, player, potion, player.Pos)

	var imp *domain.Impossible
	if !asImpossible(err, &imp) {
		t.Fatalf("Expected Impossible at full HP, got %v", err)
	}
}

func TestLightningStrikesNearestVisible(t *testing.T) {
	m := openMap(20, 20)
	markAllVisible(m)
	msgLog := domain.NewMessageLog()

	player := testPlayer(5, 5)
	near := testOrc(7, 5)  // dist 2
	far := testOrc(9, 5)   // dist 4
	out := testOrc(15, 5)  // за пределами дальности
	m.AddEntity(player)
	m.AddEntity(near)
	m.AddEntity(far)
	m.AddEntity(out)

	scroll := testConsumable("свиток молнии", domain.ConsumableComponent{
		Effect: enums.EffectLightning, Amount: 20, Range: 5,
	})

	if err := ActivateConsumable(m, msgLog, player, scroll, player.Pos); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if near.IsAlive() {
		t.Error("Nearest orc must be struck dead")
	}
	if !far.IsAlive() || !out.IsAlive() {
		t.Error("Only the nearest target takes lightning damage")
	}
}

func TestLightningNoTargets(t *testing.T) {
	m := openMap(20, 20)
	markAllVisible(m)
	msgLog := domain.NewMessageLog()

	player := testPlayer(5, 5)
	m.AddEntity(player)

	scroll := testConsumable("свиток молнии", domain.ConsumableComponent{
		Effect: enums.EffectLightning, Amount: 20, Range: 5,
	})

	err := ActivateConsumable(m, msgLog, player, scroll, player.Pos)
	var imp *domain.Impossible
	if !asImpossible(err, &imp) {
		t.Fatalf("Expected Impossible with no targets, got %v", err)
	}
}

func TestConfusionScroll(t *testing.T) {
	m := openMap(20, 20)
	markAllVisible(m)
	msgLog := domain.NewMessageLog()

	player := testPlayer(5, 5)
	orc := testOrc(8, 5)
	m.AddEntity(player)
	m.AddEntity(orc)

	scroll := testConsumable("свиток растерянности", domain.ConsumableComponent{
		Effect: enums.EffectConfusion, Turns: 10,
	})

	if err := ActivateConsumable(m, msgLog, player, scroll, orc.Pos); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if orc.AI.Kind != enums.AIKindConfused {
		t.Error("Target must be confused")
	}
	if orc.AI.PreviousKind != enums.AIKindHostile {
		t.Error("Previous strategy must be remembered")
	}
	if orc.AI.TurnsRemaining != 10 {
		t.Errorf("Expected 10 turns, got %d", orc.AI.TurnsRemaining)
	}
}

func TestConfusionRejectsSelfAndEmptyTiles(t *testing.T) {
	m := openMap(20, 20)
	markAllVisible(m)
	msgLog := domain.NewMessageLog()

	player := testPlayer(5, 5)
	m.AddEntity(player)

	scroll := testConsumable("свиток растерянности", domain.ConsumableComponent{
		Effect: enums.EffectConfusion, Turns: 10,
	})

	var imp *domain.Impossible
	if err := ActivateConsumable(m, msgLog, player, scroll, player.Pos); !asImpossible(err, &imp) {
		t.Errorf("Self-target must be Impossible, got %v", err)
	}
	if err := ActivateConsumable(m, msgLog, player, scroll, domain.Position{X: 10, Y: 10}); !asImpossible(err, &imp) {
		t.Errorf("Empty tile must be Impossible, got %v", err)
	}
}

func TestFireballHitsAreaIncludingUser(t *testing.T) {
	m := openMap(20, 20)
	markAllVisible(m)
	msgLog := domain.NewMessageLog()

	player := testPlayer(5, 5)
	orcIn := testOrc(7, 5)
	orcOut := testOrc(12, 5)
	m.AddEntity(player)
	m.AddEntity(orcIn)
	m.AddEntity(orcOut)

	scroll := testConsumable("свиток огненного шара", domain.ConsumableComponent{
		Effect: enums.EffectFireball, Amount: 12, Radius: 3,
	})

	// Взрыв по клетке рядом с собой: игрок тоже в радиусе
	if err := ActivateConsumable(m, msgLog, player, scroll, domain.Position{X: 6, Y: 5}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if orcIn.IsAlive() {
		t.Error("Orc inside radius must die")
	}
	if !orcOut.IsAlive() {
		t.Error("Orc outside radius must survive")
	}
	if player.Fighter.HP != player.Fighter.MaxHP-12 {
		t.Errorf("Fireball must not spare the caster: HP %d", player.Fighter.HP)
	}
}

func TestFireballInvisibleTile(t *testing.T) {
	m := openMap(20, 20)
	msgLog := domain.NewMessageLog()

	player := testPlayer(5, 5)
	m.AddEntity(player)

	scroll := testConsumable("свиток огненного шара", domain.ConsumableComponent{
		Effect: enums.EffectFireball, Amount: 12, Radius: 3,
	})

	err := ActivateConsumable(m, msgLog, player, scroll, domain.Position{X: 10, Y: 10})
	var imp *domain.Impossible
	if !asImpossible(err, &imp) {
		t.Fatalf("Expected Impossible for unseen tile, got %v", err)
	}
}
