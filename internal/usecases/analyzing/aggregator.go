package analyzing

import (
	"sort"

	"github.com/vfg2006/store-analytics-api/internal/domain"
)

// Aggregator acumula um lote de registros em totais, histograma, entidades e buckets.
// Não guarda estado entre chamadas; cada chamada aloca a própria agregação.
type Aggregator struct {
	resolver *Resolver
}

func NewAggregator(resolver *Resolver) *Aggregator {
	return &Aggregator{resolver: resolver}
}

// Aggregate percorre os registros uma única vez. Registros fora da janela são ignorados;
// registros que o classificador rejeita são descartados e listados em Anomalies.
// Todas as somas são comutativas, então o resultado independe da ordem de entrada.
func (a *Aggregator) Aggregate(records []domain.TransactionRecord, window domain.TimeWindow, granularity domain.Granularity) *domain.Aggregation {
	agg := domain.NewAggregation(window, granularity)

	for _, record := range records {
		if !window.Contains(record.Timestamp) {
			continue
		}

		classification, err := Classify(record)
		if err != nil {
			agg.Anomalies = append(agg.Anomalies, domain.RecordAnomaly{
				RecordID: record.ID,
				Kind:     record.Kind,
				Status:   record.Status,
				Reason:   err.Error(),
			})
			continue
		}

		foldTotals(&agg.Totals, classification)
		agg.StatusHistogram[classification.Category]++

		if record.HasEntity() {
			entity, ok := agg.PerEntity[*record.EntityRef]
			if !ok {
				entity = domain.NewEntityAggregate(*record.EntityRef)
				agg.PerEntity[*record.EntityRef] = entity
			}
			foldEntity(entity, classification)
		}

		bucket := a.resolver.BucketKeyOf(record.Timestamp, granularity)
		point, ok := agg.PerBucket[bucket]
		if !ok {
			point = domain.NewTrendPoint(bucket)
			agg.PerBucket[bucket] = point
		}
		foldTrendPoint(point, classification)
	}

	sort.Slice(agg.Anomalies, func(i, j int) bool {
		if agg.Anomalies[i].RecordID != agg.Anomalies[j].RecordID {
			return agg.Anomalies[i].RecordID < agg.Anomalies[j].RecordID
		}
		if agg.Anomalies[i].Kind != agg.Anomalies[j].Kind {
			return agg.Anomalies[i].Kind < agg.Anomalies[j].Kind
		}
		return agg.Anomalies[i].Reason < agg.Anomalies[j].Reason
	})

	return agg
}

func foldTotals(totals *domain.Totals, c domain.Classification) {
	totals.Count++
	totals.GrossRevenue = totals.GrossRevenue.Add(c.Gross)
	totals.PayoutTotal = totals.PayoutTotal.Add(c.Payout)
	totals.Profit = totals.Profit.Add(c.Margin)
}

func foldEntity(entity *domain.EntityAggregate, c domain.Classification) {
	entity.TotalCount++

	switch c.Category {
	case domain.CategoryCompleted:
		entity.CompletedCount++
	case domain.CategoryPending:
		entity.PendingCount++
	case domain.CategoryActive:
		entity.InProgressCount++
	case domain.CategoryCancelled:
		entity.CancelledCount++
	}

	entity.GrossRevenue = entity.GrossRevenue.Add(c.Gross)
	entity.PayoutTotal = entity.PayoutTotal.Add(c.Payout)
	entity.Profit = entity.Profit.Add(c.Margin)
}

func foldTrendPoint(point *domain.TrendPoint, c domain.Classification) {
	point.Count++
	point.GrossRevenue = point.GrossRevenue.Add(c.Gross)
	point.PayoutTotal = point.PayoutTotal.Add(c.Payout)
	point.Profit = point.Profit.Add(c.Margin)
}
