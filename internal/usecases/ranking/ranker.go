package ranking

import (
	"errors"
	"sort"

	"github.com/vfg2006/store-analytics-api/internal/domain"
)

var (
	ErrInvalidLimit  = errors.New("ranking limit must be positive")
	ErrInvalidMetric = errors.New("unknown ranking metric")
)

// TopN ordena as entidades de forma decrescente pela métrica e desempata pelo ID crescente.
// Entidades sem registros ficam de fora. Se houver menos de n entidades, retorna todas.
func TopN(aggregates map[string]*domain.EntityAggregate, n int, metric domain.RankingMetric) ([]domain.EntityAggregate, error) {
	if n <= 0 {
		return nil, ErrInvalidLimit
	}

	if !metric.Valid() {
		return nil, ErrInvalidMetric
	}

	candidates := make([]domain.EntityAggregate, 0, len(aggregates))
	for _, aggregate := range aggregates {
		if aggregate == nil || aggregate.TotalCount == 0 {
			continue
		}
		candidates = append(candidates, *aggregate)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if cmp := compareMetric(candidates[i], candidates[j], metric); cmp != 0 {
			return cmp > 0
		}
		return candidates[i].EntityID < candidates[j].EntityID
	})

	if len(candidates) > n {
		candidates = candidates[:n]
	}

	return candidates, nil
}

func compareMetric(a, b domain.EntityAggregate, metric domain.RankingMetric) int {
	switch metric {
	case domain.MetricGrossRevenue:
		return a.GrossRevenue.Cmp(b.GrossRevenue)
	default:
		switch {
		case a.TotalCount > b.TotalCount:
			return 1
		case a.TotalCount < b.TotalCount:
			return -1
		}
		return 0
	}
}
