package engine

import (
	"sort"

	"delve-server/internal/domain"
	"delve-server/pkg/api"
)

const logTailSize = 50

// BuildState создает снимок мира для клиента: туман войны, сущности в
// зоне видимости, инвентарь и хвост лога сообщений.
func (e *Engine) BuildState() *api.ServerResponse {
	m := e.Map
	player := e.player

	// 1. Карта: только разведанные клетки.
	var mapDTO []api.TileView
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			tile := m.Tiles[y][x]
			if !tile.Explored {
				continue
			}

			glyph := tile.Dark
			if tile.Visible {
				glyph = tile.Light
			}

			mapDTO = append(mapDTO, api.TileView{
				X: x, Y: y,
				Symbol:     string(glyph.Char()),
				Color:      glyph.HexColor(),
				IsVisible:  tile.Visible,
				IsExplored: true,
			})
		}
	}

	// 2. Сущности в зоне видимости, нижние слои первыми: клиент
	// рисует их по порядку, труп никогда не закрывает актора.
	visibleEntities := make([]*domain.Entity, 0, len(m.Entities))
	for _, ent := range m.Entities {
		if ent.ID == player.ID || m.Tiles[ent.Pos.Y][ent.Pos.X].Visible {
			visibleEntities = append(visibleEntities, ent)
		}
	}
	sort.SliceStable(visibleEntities, func(i, j int) bool {
		return visibleEntities[i].RenderOrder < visibleEntities[j].RenderOrder
	})

	viewEntities := make([]api.EntityView, 0, len(visibleEntities))
	for _, ent := range visibleEntities {
		viewEntities = append(viewEntities, toEntityView(ent))
	}

	// 3. Инвентарь игрока.
	var inventory []api.ItemView
	if player.Inventory != nil {
		for _, item := range player.Inventory.Items {
			view := api.ItemView{
				ID:   item.ID.String(),
				Name: item.Name,
			}
			if item.Render != nil {
				view.Symbol = string(item.Render.Glyph.Char())
				view.Color = item.Render.Glyph.HexColor()
			}
			if player.Equipment != nil {
				view.Equipped = player.Equipment.IsEquipped(item.ID)
			}
			inventory = append(inventory, view)
		}
	}

	// 4. Хвост лога.
	tail := e.Log.Tail(logTailSize)
	logs := make([]api.LogEntry, 0, len(tail))
	for _, entry := range tail {
		logs = append(logs, api.LogEntry{
			ID:        entry.ID,
			Text:      entry.Text,
			Type:      entry.Type,
			Timestamp: entry.Timestamp,
		})
	}

	respType := "UPDATE"
	if e.State == StatePlayerDead {
		respType = "DEAD"
	}

	resp := &api.ServerResponse{
		Type:       respType,
		Depth:      e.Depth,
		Turn:       e.Turn,
		Grid:       &api.GridMeta{Width: m.Width, Height: m.Height},
		Map:        mapDTO,
		Entities:   viewEntities,
		Inventory:  inventory,
		Logs:       logs,
		PlayerDead: e.State == StatePlayerDead,
	}
	if player.Level != nil {
		resp.RequiresLevelUp = player.Level.RequiresLevelUp()
	}
	return resp
}

func toEntityView(ent *domain.Entity) api.EntityView {
	view := api.EntityView{
		ID:          ent.ID.String(),
		Kind:        ent.Kind.String(),
		Name:        ent.Name,
		RenderOrder: uint8(ent.RenderOrder),
	}
	view.Pos.X = ent.Pos.X
	view.Pos.Y = ent.Pos.Y

	if ent.Render != nil {
		view.Symbol = string(ent.Render.Glyph.Char())
		view.Color = ent.Render.Glyph.HexColor()
	}

	if ent.Fighter != nil {
		stats := &api.StatsView{
			HP:      ent.Fighter.HP,
			MaxHP:   ent.Fighter.MaxHP,
			Power:   ent.PowerTotal(),
			Defense: ent.DefenseTotal(),
			IsDead:  ent.Fighter.IsDead,
		}
		if ent.Level != nil && ent.Level.LevelUpBase > 0 {
			stats.Level = ent.Level.CurrentLevel
			stats.XP = ent.Level.CurrentXP
			stats.XPNext = ent.Level.ExperienceToNextLevel()
		}
		view.Stats = stats
	}

	return view
}
