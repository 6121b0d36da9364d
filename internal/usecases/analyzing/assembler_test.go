package analyzing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-analytics-api/internal/domain"
	"github.com/vfg2006/store-analytics-api/internal/usecases/ranking"
)

func aggregationWithTotals(window domain.TimeWindow, count int, gross, payout int64) *domain.Aggregation {
	agg := domain.NewAggregation(window, domain.GranularityDaily)
	agg.Totals = domain.Totals{
		Count:        count,
		GrossRevenue: decimal.NewFromInt(gross),
		PayoutTotal:  decimal.NewFromInt(payout),
		Profit:       decimal.NewFromInt(gross - payout),
	}
	return agg
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  decimal.Decimal
		prior    decimal.Decimal
		expected float64
	}{
		{name: "Crescimento de 50%", current: decimal.NewFromInt(150), prior: decimal.NewFromInt(100), expected: 50},
		{name: "Queda total", current: decimal.Zero, prior: decimal.NewFromInt(100), expected: -100},
		{name: "Anterior zero resulta em zero", current: decimal.NewFromInt(500), prior: decimal.Zero, expected: 0},
		{name: "Ambos zero", current: decimal.Zero, prior: decimal.Zero, expected: 0},
		{name: "Arredonda em duas casas", current: decimal.NewFromInt(4), prior: decimal.NewFromInt(3), expected: 33.33},
		{name: "Anterior negativo usa valor absoluto", current: decimal.NewFromInt(-50), prior: decimal.NewFromInt(-100), expected: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PercentChange(tt.current, tt.prior))
		})
	}
}

func TestCompletionRate(t *testing.T) {
	assert.Equal(t, float64(0), CompletionRate(0, 0))
	assert.Equal(t, float64(100), CompletionRate(4, 4))
	assert.Equal(t, 66.67, CompletionRate(2, 3))
	assert.Equal(t, float64(50), CompletionRate(1, 2))
}

func TestBuildOverview(t *testing.T) {
	window := domain.TimeWindow{Start: day2, End: day3}
	prior := domain.TimeWindow{Start: day1, End: day2}

	t.Run("Variação contra a janela anterior", func(t *testing.T) {
		current := aggregationWithTotals(window, 3, 23000, 3500)
		current.StatusHistogram[domain.CategoryCompleted] = 2
		current.StatusHistogram[domain.CategoryCancelled] = 1
		current.Anomalies = []domain.RecordAnomaly{{RecordID: "X1"}}

		overview := BuildOverview(current, aggregationWithTotals(prior, 2, 10000, 3500))

		assert.Equal(t, window, overview.Window)
		assert.Equal(t, prior, overview.PriorWindow)
		assert.Equal(t, 3, overview.Totals.Count)
		assert.Equal(t, 2, overview.StatusHistogram[domain.CategoryCompleted])
		assert.Equal(t, 1, overview.SkippedRecords)
		assert.Equal(t, "7666.67", overview.Averages.GrossPerRecord.String())
		assert.Equal(t, "1166.67", overview.Averages.PayoutPerRecord.String())
		assert.Equal(t, float64(50), overview.TrendVsPriorWindow.Count)
		assert.Equal(t, float64(130), overview.TrendVsPriorWindow.GrossRevenue)
		assert.Equal(t, float64(0), overview.TrendVsPriorWindow.PayoutTotal)
	})

	t.Run("Janela anterior vazia não gera infinito", func(t *testing.T) {
		overview := BuildOverview(aggregationWithTotals(window, 1, 500, 0), aggregationWithTotals(prior, 0, 0, 0))

		assert.Equal(t, float64(0), overview.TrendVsPriorWindow.GrossRevenue)
		assert.Equal(t, float64(0), overview.TrendVsPriorWindow.Count)
	})

	t.Run("Sem registros as médias são zero", func(t *testing.T) {
		overview := BuildOverview(domain.NewAggregation(window, domain.GranularityDaily), nil)

		assert.True(t, overview.Averages.GrossPerRecord.IsZero())
		assert.True(t, overview.Averages.PayoutPerRecord.IsZero())
		assert.Equal(t, domain.TrendDelta{}, overview.TrendVsPriorWindow)
	})

	t.Run("Histograma retornado é uma cópia", func(t *testing.T) {
		current := aggregationWithTotals(window, 1, 10, 0)
		current.StatusHistogram[domain.CategoryPending] = 1

		overview := BuildOverview(current, nil)
		overview.StatusHistogram[domain.CategoryPending] = 99

		assert.Equal(t, 1, current.StatusHistogram[domain.CategoryPending])
	})
}

func TestBuildEntityStats(t *testing.T) {
	agg := domain.NewAggregation(domain.TimeWindow{Start: day1, End: day3}, domain.GranularityDaily)

	b := domain.NewEntityAggregate("driver-b")
	b.TotalCount, b.CompletedCount, b.CancelledCount = 3, 2, 1
	a := domain.NewEntityAggregate("driver-a")
	a.TotalCount, a.PendingCount = 1, 1
	agg.PerEntity["driver-b"] = b
	agg.PerEntity["driver-a"] = a

	stats := BuildEntityStats(agg)

	require.Len(t, stats, 2)
	assert.Equal(t, "driver-a", stats[0].EntityID)
	assert.Equal(t, float64(0), stats[0].CompletionRate)
	assert.Equal(t, "driver-b", stats[1].EntityID)
	assert.Equal(t, 66.67, stats[1].CompletionRate)
}

func TestBuildTrendSeries_IsSparseAndOrdered(t *testing.T) {
	aggregator := NewAggregator(NewResolver(time.UTC))
	window := domain.TimeWindow{Start: day1, End: day1.AddDate(0, 0, 3)}

	records := []domain.TransactionRecord{
		delivery("D3", "a", domain.StatusCompleted, 30, 3, day3.Add(time.Hour)),
		delivery("D1", "a", domain.StatusCompleted, 10, 1, day1.Add(time.Hour)),
	}

	series := BuildTrendSeries(aggregator.Aggregate(records, window, domain.GranularityDaily))

	require.Len(t, series.Points, 2)
	assert.Equal(t, domain.BucketKey("2024-01-01"), series.Points[0].Bucket)
	assert.Equal(t, domain.BucketKey("2024-01-03"), series.Points[1].Bucket)
	assert.Equal(t, domain.GranularityDaily, series.Granularity)
	for _, point := range series.Points {
		assert.NotEqual(t, domain.BucketKey("2024-01-02"), point.Bucket)
	}
}

func TestBuildTopPerformers(t *testing.T) {
	agg := domain.NewAggregation(domain.TimeWindow{Start: day1, End: day3}, domain.GranularityDaily)
	for id, count := range map[string]int{"A": 5, "B": 5, "C": 3} {
		entity := domain.NewEntityAggregate(id)
		entity.TotalCount = count
		agg.PerEntity[id] = entity
	}

	top, err := BuildTopPerformers(agg, 2, domain.MetricTotalCount)
	require.NoError(t, err)

	require.Len(t, top.Ranking, 2)
	assert.Equal(t, "A", top.Ranking[0].EntityID)
	assert.Equal(t, "B", top.Ranking[1].EntityID)
	assert.Equal(t, 2, top.Limit)
	assert.Equal(t, domain.MetricTotalCount, top.Metric)

	_, err = BuildTopPerformers(agg, 0, domain.MetricTotalCount)
	assert.ErrorIs(t, err, ranking.ErrInvalidLimit)
}
