package systems

import (
	"container/heap"

	"delve-server/internal/domain"
)

// Поиск пути для AI: Дейкстра по cost-полю проходимых клеток.
// Клетки, занятые ЧУЖИМ блокирующим актором, дороже (но не
// запрещены): враги предпочитают обходить друг друга, а не
// застревать. Путь пересчитывается каждый ход заново - кэша нет.

// Базовая стоимость шага: по прямой 2, по диагонали 3.
// Дает естественные, не зигзагообразные маршруты.
const (
	stepCostCardinal = 2
	stepCostDiagonal = 3
)

// Фиксированный порядок обхода соседей: детерминированный tie-break
// при равных стоимостях.
var neighborSteps = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// pathItem - обертка для элемента очереди приоритетов.
type pathItem struct {
	Idx      int // Индекс клетки (Y*W+X)
	Priority int // Накопленная стоимость. Чем меньше, тем раньше.
	Seq      int // Порядок вставки: стабильность при равных стоимостях
	HeapIdx  int // Индекс в куче (нужен для Fix)
}

// pathQueue реализует heap.Interface (MinHeap по Priority).
type pathQueue []*pathItem

func (pq pathQueue) Len() int { return len(pq) }

func (pq pathQueue) Less(i, j int) bool {
	if pq[i].Priority != pq[j].Priority {
		return pq[i].Priority < pq[j].Priority
	}
	return pq[i].Seq < pq[j].Seq
}

func (pq pathQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].HeapIdx = i
	pq[j].HeapIdx = j
}

func (pq *pathQueue) Push(x interface{}) {
	item := x.(*pathItem)
	item.HeapIdx = len(*pq)
	*pq = append(*pq, item)
}

func (pq *pathQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // избегаем утечки памяти
	item.HeapIdx = -1
	*pq = old[0 : n-1]
	return item
}

// update изменяет приоритет элемента в очереди.
func (pq *pathQueue) update(item *pathItem, priority int) {
	item.Priority = priority
	heap.Fix(pq, item.HeapIdx)
}

// FindPath возвращает путь от позиции self до goal (без стартовой
// клетки, включая goal). Пустой слайс - пути нет. Стоимость поиска
// ограничена площадью карты, поиск всегда завершается.
func FindPath(m *domain.GameMap, self *domain.Entity, goal domain.Position) []domain.Position {
	if !m.InBounds(goal.X, goal.Y) {
		return nil
	}

	// Cost-поле: множитель стоимости входа в клетку.
	tileCost := func(x, y int) int {
		cost := 1
		if blocker := m.GetBlockingEntityAt(x, y); blocker != nil && blocker.ID != self.ID {
			cost += domain.OccupiedTileCost
		}
		return cost
	}

	startIdx := m.GetIndex(self.Pos.X, self.Pos.Y)
	goalIdx := m.GetIndex(goal.X, goal.Y)

	dist := map[int]int{startIdx: 0}
	cameFrom := map[int]int{}
	items := map[int]*pathItem{}

	pq := make(pathQueue, 0)
	heap.Init(&pq)

	seq := 0
	start := &pathItem{Idx: startIdx, Priority: 0, Seq: seq}
	items[startIdx] = start
	heap.Push(&pq, start)

	for pq.Len() > 0 {
		current := heap.Pop(&pq).(*pathItem)
		if current.Idx == goalIdx {
			break
		}

		cx := current.Idx % m.Width
		cy := current.Idx / m.Width

		for _, step := range neighborSteps {
			nx, ny := cx+step[0], cy+step[1]

			// Цель достижима, даже если на ней стоит блокирующий
			// актор (сам игрок); прочие непроходимые клетки - нет.
			nIdx := m.GetIndex(nx, ny)
			if !m.IsWalkable(nx, ny) {
				continue
			}

			stepBase := stepCostCardinal
			if step[0] != 0 && step[1] != 0 {
				stepBase = stepCostDiagonal
			}

			nd := dist[current.Idx] + stepBase*tileCost(nx, ny)
			if prev, seen := dist[nIdx]; !seen || nd < prev {
				dist[nIdx] = nd
				cameFrom[nIdx] = current.Idx

				if existing, ok := items[nIdx]; ok && existing.HeapIdx >= 0 {
					pq.update(existing, nd)
				} else {
					seq++
					item := &pathItem{Idx: nIdx, Priority: nd, Seq: seq}
					items[nIdx] = item
					heap.Push(&pq, item)
				}
			}
		}
	}

	if _, reached := dist[goalIdx]; !reached {
		return nil
	}

	// Восстанавливаем путь от цели к старту и разворачиваем.
	var reversed []int
	for idx := goalIdx; idx != startIdx; idx = cameFrom[idx] {
		reversed = append(reversed, idx)
	}

	path := make([]domain.Position, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		idx := reversed[i]
		path = append(path, domain.Position{X: idx % m.Width, Y: idx / m.Width})
	}
	return path
}
