package domain

type RankingMetric string

const (
	MetricTotalCount   RankingMetric = "total_count"
	MetricGrossRevenue RankingMetric = "gross_revenue"
)

func (m RankingMetric) Valid() bool {
	return m == MetricTotalCount || m == MetricGrossRevenue
}

type Averages struct {
	GrossPerRecord  Money `json:"gross_per_record"`
	PayoutPerRecord Money `json:"payout_per_record"`
}

// TrendDelta é a variação percentual contra a janela anterior de mesmo tamanho.
// Quando o valor anterior é zero a variação é 0 (política explícita, não infinito).
type TrendDelta struct {
	Count        float64 `json:"count"`
	GrossRevenue float64 `json:"gross_revenue"`
	PayoutTotal  float64 `json:"payout_total"`
	Profit       float64 `json:"profit"`
}

type OverviewStats struct {
	Window             TimeWindow             `json:"window"`
	PriorWindow        TimeWindow             `json:"prior_window"`
	Totals             Totals                 `json:"totals"`
	StatusHistogram    map[StatusCategory]int `json:"status_histogram"`
	Averages           Averages               `json:"averages"`
	TrendVsPriorWindow TrendDelta             `json:"trend_vs_prior_window"`
	SkippedRecords     int                    `json:"skipped_records"`
}

type EntityStats struct {
	EntityAggregate
	CompletionRate float64 `json:"completion_rate"`
}

type TrendSeries struct {
	Window      TimeWindow   `json:"window"`
	Granularity Granularity  `json:"granularity"`
	Points      []TrendPoint `json:"points"`
}

type TopPerformers struct {
	Window  TimeWindow        `json:"window"`
	Metric  RankingMetric     `json:"metric"`
	Limit   int               `json:"limit"`
	Ranking []EntityAggregate `json:"ranking"`
}

// ReportRequest descreve o que o chamador quer agregar
type ReportRequest struct {
	Kinds       []Kind
	Range       RangeParams
	Granularity Granularity
}
