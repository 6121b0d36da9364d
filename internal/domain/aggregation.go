package domain

import "github.com/shopspring/decimal"

// Totals são os acumulados globais de uma agregação
type Totals struct {
	Count        int   `json:"count"`
	GrossRevenue Money `json:"gross_revenue"`
	PayoutTotal  Money `json:"payout_total"`
	Profit       Money `json:"profit"`
}

// EntityAggregate são os acumulados de um entregador ou produto
type EntityAggregate struct {
	EntityID        string `json:"entity_id"`
	TotalCount      int    `json:"total_count"`
	CompletedCount  int    `json:"completed_count"`
	PendingCount    int    `json:"pending_count"`
	InProgressCount int    `json:"in_progress_count"`
	CancelledCount  int    `json:"cancelled_count"`
	GrossRevenue    Money  `json:"gross_revenue"`
	PayoutTotal     Money  `json:"payout_total"`
	Profit          Money  `json:"profit"`
}

// TrendPoint são os acumulados de um bucket de tempo
type TrendPoint struct {
	Bucket       BucketKey `json:"bucket"`
	Count        int       `json:"count"`
	GrossRevenue Money     `json:"gross_revenue"`
	PayoutTotal  Money     `json:"payout_total"`
	Profit       Money     `json:"profit"`
}

// Aggregation é o resultado de uma passada do agregador sobre um lote de registros
type Aggregation struct {
	Window          TimeWindow                  `json:"window"`
	Granularity     Granularity                 `json:"granularity"`
	Totals          Totals                      `json:"totals"`
	StatusHistogram map[StatusCategory]int      `json:"status_histogram"`
	PerEntity       map[string]*EntityAggregate `json:"per_entity"`
	PerBucket       map[BucketKey]*TrendPoint   `json:"per_bucket"`
	Anomalies       []RecordAnomaly             `json:"anomalies"`
}

// NewAggregation cria uma agregação zerada
func NewAggregation(window TimeWindow, granularity Granularity) *Aggregation {
	return &Aggregation{
		Window:      window,
		Granularity: granularity,
		Totals: Totals{
			GrossRevenue: decimal.Zero,
			PayoutTotal:  decimal.Zero,
			Profit:       decimal.Zero,
		},
		StatusHistogram: make(map[StatusCategory]int),
		PerEntity:       make(map[string]*EntityAggregate),
		PerBucket:       make(map[BucketKey]*TrendPoint),
		Anomalies:       []RecordAnomaly{},
	}
}

func NewEntityAggregate(entityID string) *EntityAggregate {
	return &EntityAggregate{
		EntityID:     entityID,
		GrossRevenue: decimal.Zero,
		PayoutTotal:  decimal.Zero,
		Profit:       decimal.Zero,
	}
}

func NewTrendPoint(bucket BucketKey) *TrendPoint {
	return &TrendPoint{
		Bucket:       bucket,
		GrossRevenue: decimal.Zero,
		PayoutTotal:  decimal.Zero,
		Profit:       decimal.Zero,
	}
}
