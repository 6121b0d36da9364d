package ranking

import "github.com/vfg2006/store-analytics-api/internal/domain"

// AssignPositions numera os itens na ordem recebida (1..N) e compara com o snapshot anterior.
// PositionChange positivo = subiu, negativo = desceu, 0 = manteve ou entrou agora.
func AssignPositions(items []*domain.DriverRankingItem, previous map[string]*domain.DriverRankingItem) {
	for i, item := range items {
		item.Position = i + 1
		item.PreviousPosition = 0
		item.PositionChange = 0

		before, exists := previous[item.DriverID]
		if exists && before != nil && before.Position > 0 {
			item.PreviousPosition = before.Position
			item.PositionChange = before.Position - item.Position
		}
	}
}
