package analyzing

import (
	"context"

	"github.com/vfg2006/store-analytics-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// RecordSource define a interface da camada de persistência consumida pelo motor.
// Deve retornar todos os registros que possam cair na janela; o filtro exato é do agregador.
// Precisa suportar leituras concorrentes.
type RecordSource interface {
	FetchRecords(ctx context.Context, kind domain.Kind, window domain.TimeWindow) ([]domain.TransactionRecord, error)
}

// Analyzer expõe os relatórios do motor de análise para a camada de apresentação
type Analyzer interface {
	// Aggregate resolve a janela, busca os registros e retorna a agregação bruta
	Aggregate(ctx context.Context, req domain.ReportRequest) (*domain.Aggregation, error)

	// Overview retorna totais, histograma, médias e variação contra a janela anterior
	Overview(ctx context.Context, req domain.ReportRequest) (*domain.OverviewStats, error)

	// EntityStats retorna as estatísticas por entregador/produto com taxa de conclusão
	EntityStats(ctx context.Context, req domain.ReportRequest) ([]domain.EntityStats, error)

	// Trend retorna a série temporal esparsa na granularidade pedida
	Trend(ctx context.Context, req domain.ReportRequest) (*domain.TrendSeries, error)

	// TopPerformers retorna as n melhores entidades pela métrica
	TopPerformers(ctx context.Context, req domain.ReportRequest, n int, metric domain.RankingMetric) (*domain.TopPerformers, error)
}
