package analyzing

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/store-analytics-api/internal/domain"
	"github.com/vfg2006/store-analytics-api/internal/usecases/ranking"
	"github.com/vfg2006/store-analytics-api/pkg/utils"
)

var hundred = decimal.NewFromInt(100)

// BuildOverview combina a agregação atual com a da janela anterior de mesmo tamanho
func BuildOverview(current, prior *domain.Aggregation) domain.OverviewStats {
	overview := domain.OverviewStats{
		Window:          current.Window,
		Totals:          current.Totals,
		StatusHistogram: copyHistogram(current.StatusHistogram),
		Averages: domain.Averages{
			GrossPerRecord:  perRecord(current.Totals.GrossRevenue, current.Totals.Count),
			PayoutPerRecord: perRecord(current.Totals.PayoutTotal, current.Totals.Count),
		},
		SkippedRecords: len(current.Anomalies),
	}

	if prior != nil {
		overview.PriorWindow = prior.Window
		overview.TrendVsPriorWindow = domain.TrendDelta{
			Count:        PercentChange(decimal.NewFromInt(int64(current.Totals.Count)), decimal.NewFromInt(int64(prior.Totals.Count))),
			GrossRevenue: PercentChange(current.Totals.GrossRevenue, prior.Totals.GrossRevenue),
			PayoutTotal:  PercentChange(current.Totals.PayoutTotal, prior.Totals.PayoutTotal),
			Profit:       PercentChange(current.Totals.Profit, prior.Totals.Profit),
		}
	}

	return overview
}

// BuildEntityStats retorna as estatísticas por entidade ordenadas pelo ID
func BuildEntityStats(agg *domain.Aggregation) []domain.EntityStats {
	stats := make([]domain.EntityStats, 0, len(agg.PerEntity))
	for _, entity := range agg.PerEntity {
		stats = append(stats, domain.EntityStats{
			EntityAggregate: *entity,
			CompletionRate:  CompletionRate(entity.CompletedCount, entity.TotalCount),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].EntityID < stats[j].EntityID
	})

	return stats
}

// BuildTrendSeries retorna um ponto por bucket com atividade, em ordem crescente.
// A série é esparsa: buckets sem registros não aparecem.
func BuildTrendSeries(agg *domain.Aggregation) domain.TrendSeries {
	points := make([]domain.TrendPoint, 0, len(agg.PerBucket))
	for _, point := range agg.PerBucket {
		points = append(points, *point)
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Bucket < points[j].Bucket
	})

	return domain.TrendSeries{
		Window:      agg.Window,
		Granularity: agg.Granularity,
		Points:      points,
	}
}

func BuildTopPerformers(agg *domain.Aggregation, n int, metric domain.RankingMetric) (domain.TopPerformers, error) {
	top, err := ranking.TopN(agg.PerEntity, n, metric)
	if err != nil {
		return domain.TopPerformers{}, err
	}

	return domain.TopPerformers{
		Window:  agg.Window,
		Metric:  metric,
		Limit:   n,
		Ranking: top,
	}, nil
}

// PercentChange calcula (atual - anterior) / |anterior| * 100.
// Anterior zero resulta em 0 por política, nunca em infinito.
func PercentChange(current, prior decimal.Decimal) float64 {
	if prior.IsZero() {
		return 0
	}

	change := current.Sub(prior).Mul(hundred).Div(prior.Abs())
	return utils.RoundWithTwoDecimalPlace(change.Round(2).InexactFloat64())
}

// CompletionRate retorna concluídos/total*100, ou 0 quando não há registros
func CompletionRate(completed, total int) float64 {
	if total == 0 {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace(float64(completed) / float64(total) * 100)
}

func perRecord(amount decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return amount.DivRound(decimal.NewFromInt(int64(count)), 2)
}

func copyHistogram(histogram map[domain.StatusCategory]int) map[domain.StatusCategory]int {
	out := make(map[domain.StatusCategory]int, len(histogram))
	for category, count := range histogram {
		out[category] = count
	}
	return out
}
