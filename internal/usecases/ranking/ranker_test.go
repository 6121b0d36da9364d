package ranking

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-analytics-api/internal/domain"
)

func entity(id string, count int, gross int64) *domain.EntityAggregate {
	e := domain.NewEntityAggregate(id)
	e.TotalCount = count
	e.GrossRevenue = decimal.NewFromInt(gross)
	return e
}

func ids(ranking []domain.EntityAggregate) []string {
	out := make([]string, 0, len(ranking))
	for _, e := range ranking {
		out = append(out, e.EntityID)
	}
	return out
}

func TestTopN(t *testing.T) {
	tests := []struct {
		name       string
		aggregates map[string]*domain.EntityAggregate
		n          int
		metric     domain.RankingMetric
		expected   []string
	}{
		{
			name: "Empate desfeito pelo ID crescente",
			aggregates: map[string]*domain.EntityAggregate{
				"A": entity("A", 5, 0),
				"B": entity("B", 5, 0),
				"C": entity("C", 3, 0),
			},
			n:        2,
			metric:   domain.MetricTotalCount,
			expected: []string{"A", "B"},
		},
		{
			name: "Entidades sem registros ficam de fora",
			aggregates: map[string]*domain.EntityAggregate{
				"A": entity("A", 0, 0),
				"B": entity("B", 1, 0),
				"C": nil,
			},
			n:        5,
			metric:   domain.MetricTotalCount,
			expected: []string{"B"},
		},
		{
			name: "Menos entidades que o limite retorna todas",
			aggregates: map[string]*domain.EntityAggregate{
				"Z": entity("Z", 1, 0),
				"Y": entity("Y", 2, 0),
			},
			n:        10,
			metric:   domain.MetricTotalCount,
			expected: []string{"Y", "Z"},
		},
		{
			name: "Ordena por receita bruta",
			aggregates: map[string]*domain.EntityAggregate{
				"A": entity("A", 9, 100),
				"B": entity("B", 1, 900),
				"C": entity("C", 4, 900),
				"D": entity("D", 2, 50),
			},
			n:        3,
			metric:   domain.MetricGrossRevenue,
			expected: []string{"B", "C", "A"},
		},
		{
			name:       "Mapa vazio",
			aggregates: map[string]*domain.EntityAggregate{},
			n:          3,
			metric:     domain.MetricTotalCount,
			expected:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranking, err := TopN(tt.aggregates, tt.n, tt.metric)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, ids(ranking))
			assert.LessOrEqual(t, len(ranking), tt.n)
		})
	}
}

func TestTopN_InvalidArguments(t *testing.T) {
	aggregates := map[string]*domain.EntityAggregate{"A": entity("A", 1, 10)}

	_, err := TopN(aggregates, 0, domain.MetricTotalCount)
	assert.ErrorIs(t, err, ErrInvalidLimit)

	_, err = TopN(aggregates, -3, domain.MetricTotalCount)
	assert.ErrorIs(t, err, ErrInvalidLimit)

	_, err = TopN(aggregates, 1, "lucro")
	assert.ErrorIs(t, err, ErrInvalidMetric)
}

func TestTopN_StableAcrossMapIteration(t *testing.T) {
	aggregates := make(map[string]*domain.EntityAggregate)
	for _, id := range []string{"k", "c", "x", "a", "m", "b", "q"} {
		aggregates[id] = entity(id, 7, 700)
	}

	expected, err := TopN(aggregates, 4, domain.MetricGrossRevenue)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "k"}, ids(expected))

	for i := 0; i < 50; i++ {
		ranking, err := TopN(aggregates, 4, domain.MetricGrossRevenue)
		require.NoError(t, err)
		assert.Equal(t, ids(expected), ids(ranking))
	}
}

func TestTopN_DoesNotMutateInput(t *testing.T) {
	aggregates := map[string]*domain.EntityAggregate{"A": entity("A", 2, 10)}

	ranking, err := TopN(aggregates, 1, domain.MetricTotalCount)
	require.NoError(t, err)

	ranking[0].TotalCount = 99
	assert.Equal(t, 2, aggregates["A"].TotalCount)
}
