package engine

import (
	"encoding/json"
	"strings"
	"testing"

	"delve-server/internal/core/types"
	"delve-server/internal/core/types/enums"
	"delve-server/internal/domain"
	"delve-server/internal/infrastructure/storage"
	"delve-server/pkg/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Хелперы: ручная сборка маленького этажа через снапшот дает тестам
// полный контроль над раскладкой, минуя генератор.

func allVisible(m *domain.GameMap, origin domain.Position, radius int) map[int]bool {
	visible := make(map[int]bool)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			visible[m.GetIndex(x, y)] = true
		}
	}
	return visible
}

func openFloor(w, h int) *domain.GameMap {
	m := domain.NewGameMap(w, h, 1)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			m.Tiles[y][x] = domain.FloorTile()
		}
	}
	return m
}

func heroAt(x, y int) *domain.Entity {
	return &domain.Entity{
		ID:             types.NewEntityID(),
		Kind:           enums.EntityKindPlayer,
		Name:           "Герой",
		Pos:            domain.Position{X: x, Y: y},
		BlocksMovement: true,
		Fighter:        &domain.FighterComponent{HP: 30, MaxHP: 30, BasePower: 5, BaseDefense: 0},
		Inventory:      &domain.InventoryComponent{Capacity: 26},
		Equipment:      &domain.EquipmentComponent{},
		Level: &domain.LevelComponent{
			CurrentLevel: 1, LevelUpBase: 200, LevelUpFactor: 150,
		},
	}
}

func orcNamed(name string, x, y int) *domain.Entity {
	return &domain.Entity{
		ID:             types.NewEntityID(),
		Kind:           enums.EntityKindActor,
		Name:           name,
		Pos:            domain.Position{X: x, Y: y},
		BlocksMovement: true,
		Fighter:        &domain.FighterComponent{HP: 10, MaxHP: 10, BasePower: 3, BaseDefense: 0},
		AI:             &domain.AIComponent{Kind: enums.AIKindHostile},
		Level:          &domain.LevelComponent{XPGiven: 35},
	}
}

func testEngine(t *testing.T, m *domain.GameMap) *Engine {
	t.Helper()

	cfg := NewConfig()
	cfg.Seed = 42

	snap := &storage.Snapshot{
		Seed:   42,
		Depth:  m.Depth,
		Floors: map[int]*domain.GameMap{m.Depth: m},
		Log:    domain.NewMessageLog(),
	}

	e, err := RestoreEngine(cfg, snap)
	require.NoError(t, err)

	e.Visibility = allVisible
	e.UpdateFOV()
	return e
}

func dirCmd(e *Engine, action domain.ActionType, dx, dy int) domain.Command {
	payload, _ := json.Marshal(api.DirectionPayload{Dx: dx, Dy: dy})
	return domain.Command{Action: action, ActorID: e.Player().ID, Payload: payload}
}

func emptyCmd(e *Engine, action domain.ActionType) domain.Command {
	return domain.Command{Action: action, ActorID: e.Player().ID}
}

func logText(e *Engine) string {
	var sb strings.Builder
	for _, entry := range e.Log.Entries {
		sb.WriteString(entry.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// --- Тесты ---

func TestNewEngineDeterministic(t *testing.T) {
	cfg := NewConfig()
	cfg.Seed = 12345

	e1, err := NewEngine(cfg)
	require.NoError(t, err)
	e2, err := NewEngine(cfg)
	require.NoError(t, err)

	require.Equal(t, e1.Map.Width, e2.Map.Width)
	require.Equal(t, len(e1.Map.Entities), len(e2.Map.Entities))

	// Одинаковое зерно - идентичная раскладка
	assert.Equal(t, e1.Map.EntryPos, e2.Map.EntryPos)
	assert.Equal(t, e1.Map.DownstairsPos, e2.Map.DownstairsPos)
	for i := range e1.Map.Entities {
		assert.Equal(t, e1.Map.Entities[i].Name, e2.Map.Entities[i].Name)
		assert.Equal(t, e1.Map.Entities[i].Pos, e2.Map.Entities[i].Pos)
	}

	for y := 0; y < e1.Map.Height; y++ {
		for x := 0; x < e1.Map.Width; x++ {
			if e1.Map.Tiles[y][x].Walkable != e2.Map.Tiles[y][x].Walkable {
				t.Fatalf("Maps diverge at (%d,%d)", x, y)
			}
		}
	}
}

func TestImpossibleMoveDoesNotAdvanceTurn(t *testing.T) {
	m := openFloor(12, 12)
	hero := heroAt(1, 1)
	orc := orcNamed("орк", 8, 8)
	m.AddEntity(hero)
	m.AddEntity(orc)

	e := testEngine(t, m)
	orcPosBefore := orc.Pos

	// Шаг в стену
	err := e.HandleCommand(dirCmd(e, domain.ActionMove, -1, 0))

	var imp *domain.Impossible
	require.ErrorAs(t, err, &imp)
	assert.Equal(t, 0, e.Turn, "Impossible action must not consume the turn")
	assert.Equal(t, orcPosBefore, orc.Pos, "Enemies must not act after an impossible action")
	assert.Contains(t, logText(e), "Путь прегражден.")
}

func TestWaitLetsEnemiesAct(t *testing.T) {
	m := openFloor(12, 12)
	hero := heroAt(5, 5)
	orc := orcNamed("орк", 6, 5)
	m.AddEntity(hero)
	m.AddEntity(orc)

	e := testEngine(t, m)

	require.NoError(t, e.HandleCommand(emptyCmd(e, domain.ActionWait)))

	assert.Equal(t, 1, e.Turn)
	// Орк вплотную: бьет игрока на своем ходу
	assert.Equal(t, 27, hero.Fighter.HP, "Adjacent orc must hit the waiting hero")
}

func TestEnemiesActInInsertionOrder(t *testing.T) {
	m := openFloor(12, 12)
	hero := heroAt(5, 5)
	first := orcNamed("первый орк", 4, 5)
	second := orcNamed("второй орк", 6, 5)
	m.AddEntity(hero)
	m.AddEntity(first)
	m.AddEntity(second)

	e := testEngine(t, m)

	require.NoError(t, e.HandleCommand(emptyCmd(e, domain.ActionWait)))

	log := logText(e)
	i := strings.Index(log, "первый орк наносит")
	j := strings.Index(log, "второй орк наносит")
	require.GreaterOrEqual(t, i, 0, "first orc must attack")
	require.GreaterOrEqual(t, j, 0, "second orc must attack")
	assert.Less(t, i, j, "Enemies must act in insertion order")
}

func TestMeleeKillAwardsXP(t *testing.T) {
	m := openFloor(12, 12)
	hero := heroAt(5, 5)
	hero.Fighter.BasePower = 100
	orc := orcNamed("орк", 6, 5)
	m.AddEntity(hero)
	m.AddEntity(orc)

	e := testEngine(t, m)

	require.NoError(t, e.HandleCommand(dirCmd(e, domain.ActionBump, 1, 0)))

	assert.False(t, orc.IsAlive())
	assert.Equal(t, 35, hero.Level.CurrentXP)
	assert.Contains(t, logText(e), "Вы получаете 35 опыта.")
}

func TestTakeStairsDescends(t *testing.T) {
	m := openFloor(12, 12)
	hero := heroAt(5, 5)
	m.AddEntity(hero)
	m.Tiles[5][5] = domain.StairsTile()
	m.DownstairsPos = domain.Position{X: 5, Y: 5}

	e := testEngine(t, m)

	require.NoError(t, e.HandleCommand(emptyCmd(e, domain.ActionTakeStairs)))

	assert.Equal(t, 2, e.Depth)
	assert.Equal(t, e.Map.EntryPos, hero.Pos, "Hero must arrive at the new floor entry")
	assert.Same(t, hero, e.Map.Player())

	// Первый этаж сохранился, но игрока на нем больше нет
	floor1 := e.Floors[1]
	require.NotNil(t, floor1)
	assert.Nil(t, floor1.Player())
}

func TestTakeStairsRequiresStairs(t *testing.T) {
	m := openFloor(12, 12)
	hero := heroAt(5, 5)
	m.AddEntity(hero)
	m.DownstairsPos = domain.Position{X: 9, Y: 9}

	e := testEngine(t, m)

	err := e.HandleCommand(emptyCmd(e, domain.ActionTakeStairs))
	var imp *domain.Impossible
	require.ErrorAs(t, err, &imp)
	assert.Equal(t, 1, e.Depth)
}

func TestLevelUpIsFreeAction(t *testing.T) {
	m := openFloor(12, 12)
	hero := heroAt(5, 5)
	hero.Level.CurrentXP = 350
	orc := orcNamed("орк", 6, 5)
	m.AddEntity(hero)
	m.AddEntity(orc)

	e := testEngine(t, m)

	payload, _ := json.Marshal(api.LevelUpPayload{Stat: api.LevelUpStatHP})
	cmd := domain.Command{Action: domain.ActionLevelUp, ActorID: hero.ID, Payload: payload}
	require.NoError(t, e.HandleCommand(cmd))

	assert.Equal(t, 2, hero.Level.CurrentLevel)
	assert.Equal(t, 0, e.Turn, "Level up must not consume a turn")
	assert.Equal(t, hero.Fighter.MaxHP, hero.Fighter.HP, "Orc must not act during level up")
}

func TestLevelUpWithoutThreshold(t *testing.T) {
	m := openFloor(12, 12)
	hero := heroAt(5, 5)
	m.AddEntity(hero)

	e := testEngine(t, m)

	payload, _ := json.Marshal(api.LevelUpPayload{Stat: api.LevelUpStatPower})
	err := e.HandleCommand(domain.Command{Action: domain.ActionLevelUp, ActorID: hero.ID, Payload: payload})

	var imp *domain.Impossible
	require.ErrorAs(t, err, &imp)
}

func TestPlayerDeathIsTerminal(t *testing.T) {
	m := openFloor(12, 12)
	hero := heroAt(5, 5)
	hero.Fighter.HP = 1
	orc := orcNamed("орк", 6, 5)
	orc.Fighter.BasePower = 50
	m.AddEntity(hero)
	m.AddEntity(orc)

	e := testEngine(t, m)

	// Игрок ждет, орк добивает
	err := e.HandleCommand(emptyCmd(e, domain.ActionWait))
	require.NoError(t, err)
	assert.Equal(t, StatePlayerDead, e.State)
	assert.NotNil(t, e.Map.GetEntity(hero.ID), "Dead hero stays on the map")

	// Дальнейшие команды отвергаются
	err = e.HandleCommand(emptyCmd(e, domain.ActionWait))
	var imp *domain.Impossible
	require.ErrorAs(t, err, &imp)
}

func TestSelfKillSkipsEnemyPhase(t *testing.T) {
	m := openFloor(12, 12)
	hero := heroAt(2, 2)
	hero.Fighter.HP = 2
	orc := orcNamed("орк", 9, 9) // вне радиуса взрыва
	m.AddEntity(hero)
	m.AddEntity(orc)

	scroll := &domain.Entity{
		ID: types.NewEntityID(), Kind: enums.EntityKindItem, Name: "свиток огненного шара",
		Consumable: &domain.ConsumableComponent{Effect: enums.EffectFireball, Amount: 12, Radius: 3},
	}
	hero.Inventory.AddItem(scroll)

	e := testEngine(t, m)
	orcPosBefore := orc.Pos

	// Огненный шар по собственной клетке убивает героя
	payload, _ := json.Marshal(api.ItemPayload{ItemID: scroll.ID.String()})
	require.NoError(t, e.HandleCommand(domain.Command{
		Action: domain.ActionUse, ActorID: hero.ID, Payload: payload,
	}))

	assert.False(t, hero.IsAlive())
	assert.Equal(t, StatePlayerDead, e.State)
	assert.Equal(t, orcPosBefore, orc.Pos, "Enemies must not act once the player is dead")
}

func TestConfusionExpiryMessage(t *testing.T) {
	m := openFloor(12, 12)
	hero := heroAt(2, 2)
	orc := orcNamed("орк", 9, 9)
	orc.AI.PreviousKind = orc.AI.Kind
	orc.AI.Kind = enums.AIKindConfused
	orc.AI.TurnsRemaining = 1
	m.AddEntity(hero)
	m.AddEntity(orc)

	e := testEngine(t, m)

	require.NoError(t, e.HandleCommand(emptyCmd(e, domain.ActionWait)))

	assert.Equal(t, enums.AIKindHostile, orc.AI.Kind, "Confusion must expire")
	assert.Contains(t, logText(e), "приходит в себя")
}

func TestUseHealingPotionConsumesItem(t *testing.T) {
	m := openFloor(12, 12)
	hero := heroAt(5, 5)
	hero.Fighter.HP = 10
	m.AddEntity(hero)

	potion := &domain.Entity{
		ID: types.NewEntityID(), Kind: enums.EntityKindItem, Name: "зелье лечения",
		Consumable: &domain.ConsumableComponent{Effect: enums.EffectHealing, Amount: 4},
	}
	hero.Inventory.AddItem(potion)

	e := testEngine(t, m)

	payload, _ := json.Marshal(api.ItemPayload{ItemID: potion.ID.String()})
	require.NoError(t, e.HandleCommand(domain.Command{
		Action: domain.ActionUse, ActorID: hero.ID, Payload: payload,
	}))

	assert.Equal(t, 14, hero.Fighter.HP)
	assert.Nil(t, hero.Inventory.FindItem(potion.ID), "Potion must be consumed")
}

func TestUseAtFullHPKeepsItem(t *testing.T) {
	m := openFloor(12, 12)
	hero := heroAt(5, 5)
	m.AddEntity(hero)

	potion := &domain.Entity{
		ID: types.NewEntityID(), Kind: enums.EntityKindItem, Name: "зелье лечения",
		Consumable: &domain.ConsumableComponent{Effect: enums.EffectHealing, Amount: 4},
	}
	hero.Inventory.AddItem(potion)

	e := testEngine(t, m)

	payload, _ := json.Marshal(api.ItemPayload{ItemID: potion.ID.String()})
	err := e.HandleCommand(domain.Command{
		Action: domain.ActionUse, ActorID: hero.ID, Payload: payload,
	})

	var imp *domain.Impossible
	require.ErrorAs(t, err, &imp)
	assert.NotNil(t, hero.Inventory.FindItem(potion.ID), "Failed activation must not consume the item")
	assert.Equal(t, 0, e.Turn)
}

func TestPickupAndDropRoundTrip(t *testing.T) {
	m := openFloor(12, 12)
	hero := heroAt(5, 5)
	m.AddEntity(hero)

	sword := &domain.Entity{
		ID: types.NewEntityID(), Kind: enums.EntityKindItem, Name: "меч",
		Pos:        domain.Position{X: 5, Y: 5},
		Equippable: &domain.EquippableComponent{Slot: enums.EquipSlotWeapon, PowerBonus: 4},
	}
	m.AddEntity(sword)

	e := testEngine(t, m)

	require.NoError(t, e.HandleCommand(emptyCmd(e, domain.ActionPickup)))
	assert.NotNil(t, hero.Inventory.FindItem(sword.ID))
	assert.Nil(t, m.GetItemAt(5, 5), "Picked up item must leave the map")

	payload, _ := json.Marshal(api.ItemPayload{ItemID: sword.ID.String()})
	require.NoError(t, e.HandleCommand(domain.Command{
		Action: domain.ActionDrop, ActorID: hero.ID, Payload: payload,
	}))
	assert.Nil(t, hero.Inventory.FindItem(sword.ID))
	require.NotNil(t, m.GetItemAt(5, 5))
	assert.Equal(t, hero.Pos, sword.Pos, "Dropped item lands at hero position")
}

func TestEquipToggle(t *testing.T) {
	m := openFloor(12, 12)
	hero := heroAt(5, 5)
	m.AddEntity(hero)

	sword := &domain.Entity{
		ID: types.NewEntityID(), Kind: enums.EntityKindItem, Name: "меч",
		Equippable: &domain.EquippableComponent{Slot: enums.EquipSlotWeapon, PowerBonus: 4},
	}
	hero.Inventory.AddItem(sword)

	e := testEngine(t, m)
	payload, _ := json.Marshal(api.ItemPayload{ItemID: sword.ID.String()})
	cmd := domain.Command{Action: domain.ActionEquip, ActorID: hero.ID, Payload: payload}

	require.NoError(t, e.HandleCommand(cmd))
	assert.True(t, hero.Equipment.IsEquipped(sword.ID))
	assert.Equal(t, 9, hero.PowerTotal())

	// Повторная команда снимает предмет
	require.NoError(t, e.HandleCommand(cmd))
	assert.False(t, hero.Equipment.IsEquipped(sword.ID))
	assert.Equal(t, 5, hero.PowerTotal())
}

func TestBuildStateRespectsFogOfWar(t *testing.T) {
	m := openFloor(12, 12)
	hero := heroAt(5, 5)
	m.AddEntity(hero)

	e := testEngine(t, m)

	// Видна только клетка героя
	e.Visibility = func(m *domain.GameMap, origin domain.Position, radius int) map[int]bool {
		return map[int]bool{m.GetIndex(origin.X, origin.Y): true}
	}
	// Сбрасываем разведку от allVisible в testEngine
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			m.Tiles[y][x].Explored = false
		}
	}
	e.UpdateFOV()

	state := e.BuildState()

	require.Len(t, state.Map, 1)
	assert.Equal(t, 5, state.Map[0].X)
	assert.Equal(t, 5, state.Map[0].Y)
	require.Len(t, state.Entities, 1)
	assert.Equal(t, hero.ID.String(), state.Entities[0].ID)
}
