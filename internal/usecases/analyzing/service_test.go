package analyzing

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-analytics-api/internal/domain"
	"github.com/vfg2006/store-analytics-api/internal/usecases/analyzing/mocks"
	"github.com/vfg2006/store-analytics-api/internal/usecases/ranking"
	"github.com/vfg2006/store-analytics-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	m.Run()
}

func newTestService(t *testing.T, now time.Time) (*Service, *mocks.MockRecordSource) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockRecordSource(ctrl)
	resolver := NewResolver(time.UTC).WithClock(fixedClock(now))

	return NewService(resolver, source, domain.GranularityDaily), source
}

func TestService_Overview(t *testing.T) {
	now := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	service, source := newTestService(t, now)

	currentStart := now.AddDate(0, 0, -7)
	priorStart := now.AddDate(0, 0, -14)

	source.EXPECT().
		FetchRecords(gomock.Any(), domain.KindDelivery, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Kind, window domain.TimeWindow) ([]domain.TransactionRecord, error) {
			switch {
			case window.Start.Equal(currentStart):
				return []domain.TransactionRecord{
					delivery("D1", "a", domain.StatusCompleted, 10000, 2000, currentStart.Add(time.Hour)),
					delivery("D2", "b", domain.StatusCompleted, 5000, 1000, currentStart.Add(2*time.Hour)),
				}, nil
			case window.Start.Equal(priorStart):
				return []domain.TransactionRecord{
					delivery("P1", "a", domain.StatusCompleted, 10000, 2000, priorStart.Add(time.Hour)),
				}, nil
			}
			return nil, errors.New("janela inesperada")
		}).
		Times(2)

	overview, err := service.Overview(context.Background(), domain.ReportRequest{
		Range: domain.RangeParams{Preset: domain.PresetWeek},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, overview.Totals.Count)
	assert.Equal(t, "15000", overview.Totals.GrossRevenue.String())
	assert.Equal(t, "12000", overview.Totals.Profit.String())
	assert.True(t, overview.PriorWindow.Start.Equal(priorStart))
	assert.True(t, overview.PriorWindow.End.Equal(currentStart))
	assert.Equal(t, float64(100), overview.TrendVsPriorWindow.Count)
	assert.Equal(t, float64(50), overview.TrendVsPriorWindow.GrossRevenue)
	assert.Equal(t, "7500", overview.Averages.GrossPerRecord.String())
}

func TestService_InvalidRangeDoesNotFetch(t *testing.T) {
	service, source := newTestService(t, time.Now())
	source.EXPECT().FetchRecords(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	start := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := service.Trend(context.Background(), domain.ReportRequest{
		Range: domain.RangeParams{Preset: domain.PresetCustom, Start: &start, End: &end},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestService_PropagatesSourceErrors(t *testing.T) {
	service, source := newTestService(t, time.Now())
	sourceErr := errors.New("conexão recusada")

	source.EXPECT().
		FetchRecords(gomock.Any(), domain.KindOrder, gomock.Any()).
		Return(nil, sourceErr)

	_, err := service.EntityStats(context.Background(), domain.ReportRequest{
		Kinds: []domain.Kind{domain.KindOrder},
		Range: domain.RangeParams{Preset: domain.PresetMonth},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, sourceErr)
	assert.Contains(t, err.Error(), "order")
}

func TestService_MultipleKinds(t *testing.T) {
	now := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	service, source := newTestService(t, now)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	source.EXPECT().
		FetchRecords(gomock.Any(), domain.KindSale, gomock.Any()).
		Return([]domain.TransactionRecord{
			{ID: "S1", Kind: domain.KindSale, Status: domain.StatusFinalized, GrossAmount: decimal.NewFromInt(300), Timestamp: start, EntityRef: stringPtr("produto-1")},
		}, nil)
	source.EXPECT().
		FetchRecords(gomock.Any(), domain.KindOrder, gomock.Any()).
		Return([]domain.TransactionRecord{
			{ID: "O1", Kind: domain.KindOrder, Status: domain.StatusOrdered, GrossAmount: decimal.NewFromInt(200), Timestamp: start.Add(time.Hour)},
			{ID: "O2", Kind: domain.KindOrder, Status: "finishied", GrossAmount: decimal.NewFromInt(200), Timestamp: start.Add(time.Hour)},
		}, nil)

	agg, err := service.Aggregate(context.Background(), domain.ReportRequest{
		Kinds:       []domain.Kind{domain.KindSale, domain.KindOrder},
		Range:       domain.RangeParams{Preset: domain.PresetCustom, Start: &start, End: &now},
		Granularity: domain.GranularityMonthly,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, agg.Totals.Count)
	assert.Equal(t, "500", agg.Totals.GrossRevenue.String())
	assert.Equal(t, 1, agg.StatusHistogram[domain.CategoryCompleted])
	assert.Equal(t, 1, agg.StatusHistogram[domain.CategoryPending])
	assert.Contains(t, agg.PerBucket, domain.BucketKey("2024-01"))
	require.Len(t, agg.Anomalies, 1)
	assert.Equal(t, "O2", agg.Anomalies[0].RecordID)
}

func TestService_TopPerformers(t *testing.T) {
	now := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	service, source := newTestService(t, now)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	source.EXPECT().
		FetchRecords(gomock.Any(), domain.KindDelivery, gomock.Any()).
		Return([]domain.TransactionRecord{
			delivery("D1", "b", domain.StatusCompleted, 100, 10, start),
			delivery("D2", "a", domain.StatusCompleted, 100, 10, start),
			delivery("D3", "c", domain.StatusCompleted, 900, 10, start),
		}, nil).
		Times(2)

	req := domain.ReportRequest{Range: domain.RangeParams{Preset: domain.PresetCustom, Start: &start, End: &now}}

	top, err := service.TopPerformers(context.Background(), req, 2, domain.MetricGrossRevenue)
	require.NoError(t, err)
	require.Len(t, top.Ranking, 2)
	assert.Equal(t, "c", top.Ranking[0].EntityID)
	assert.Equal(t, "a", top.Ranking[1].EntityID)

	_, err = service.TopPerformers(context.Background(), req, 2, "lucro")
	assert.ErrorIs(t, err, ranking.ErrInvalidMetric)
}

func TestService_ConcurrentCallsAreIndependent(t *testing.T) {
	now := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	service, source := newTestService(t, now)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	source.EXPECT().
		FetchRecords(gomock.Any(), domain.KindDelivery, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Kind, _ domain.TimeWindow) ([]domain.TransactionRecord, error) {
			return []domain.TransactionRecord{
				delivery("D1", "a", domain.StatusCompleted, 100, 10, start),
				delivery("D2", "a", domain.StatusPending, 50, 5, start.Add(time.Hour)),
			}, nil
		}).
		AnyTimes()

	req := domain.ReportRequest{Range: domain.RangeParams{Preset: domain.PresetCustom, Start: &start, End: &now}}

	var wg sync.WaitGroup
	results := make([]*domain.Aggregation, 20)
	errs := make([]error, 20)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = service.Aggregate(context.Background(), req)
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, snapshot(results[0]), snapshot(results[i]))
		assert.Equal(t, 2, results[i].Totals.Count)
	}
}
