package analyzing

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/store-analytics-api/internal/domain"
	"github.com/vfg2006/store-analytics-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

// Service implementa Analyzer sobre uma RecordSource.
// Não há estado mutável compartilhado: chamadas concorrentes são independentes.
type Service struct {
	resolver           *Resolver
	aggregator         *Aggregator
	source             RecordSource
	defaultKinds       []domain.Kind
	defaultGranularity domain.Granularity
}

// NewService cria uma nova instância do serviço de análise
func NewService(resolver *Resolver, source RecordSource, defaultGranularity domain.Granularity) *Service {
	if defaultGranularity == "" {
		defaultGranularity = domain.GranularityDaily
	}

	return &Service{
		resolver:           resolver,
		aggregator:         NewAggregator(resolver),
		source:             source,
		defaultKinds:       []domain.Kind{domain.KindDelivery},
		defaultGranularity: defaultGranularity,
	}
}

func (s *Service) Aggregate(ctx context.Context, req domain.ReportRequest) (*domain.Aggregation, error) {
	window, err := s.resolver.Resolve(req.Range)
	if err != nil {
		return nil, err
	}

	return s.aggregateWindow(ctx, req, window)
}

func (s *Service) Overview(ctx context.Context, req domain.ReportRequest) (*domain.OverviewStats, error) {
	window, err := s.resolver.Resolve(req.Range)
	if err != nil {
		return nil, err
	}
	priorWindow := PriorWindow(window)

	var current, prior *domain.Aggregation

	// Janela atual e anterior buscadas em paralelo
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = s.aggregateWindow(gctx, req, window)
		return err
	})
	g.Go(func() error {
		var err error
		prior, err = s.aggregateWindow(gctx, req, priorWindow)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	overview := BuildOverview(current, prior)
	return &overview, nil
}

func (s *Service) EntityStats(ctx context.Context, req domain.ReportRequest) ([]domain.EntityStats, error) {
	agg, err := s.Aggregate(ctx, req)
	if err != nil {
		return nil, err
	}

	return BuildEntityStats(agg), nil
}

func (s *Service) Trend(ctx context.Context, req domain.ReportRequest) (*domain.TrendSeries, error) {
	agg, err := s.Aggregate(ctx, req)
	if err != nil {
		return nil, err
	}

	series := BuildTrendSeries(agg)
	return &series, nil
}

func (s *Service) TopPerformers(ctx context.Context, req domain.ReportRequest, n int, metric domain.RankingMetric) (*domain.TopPerformers, error) {
	agg, err := s.Aggregate(ctx, req)
	if err != nil {
		return nil, err
	}

	top, err := BuildTopPerformers(agg, n, metric)
	if err != nil {
		return nil, err
	}

	return &top, nil
}

func (s *Service) aggregateWindow(ctx context.Context, req domain.ReportRequest, window domain.TimeWindow) (*domain.Aggregation, error) {
	logger := log.ForContext(ctx)
	startTime := time.Now()

	kinds := req.Kinds
	if len(kinds) == 0 {
		kinds = s.defaultKinds
	}

	granularity := req.Granularity
	if granularity == "" {
		granularity = s.defaultGranularity
	}

	records, err := s.fetchRecords(ctx, kinds, window)
	if err != nil {
		return nil, err
	}

	agg := s.aggregator.Aggregate(records, window, granularity)

	for _, anomaly := range agg.Anomalies {
		logger.WithFields(log.Fields{
			"record_id": anomaly.RecordID,
			"kind":      anomaly.Kind,
			"status":    anomaly.Status,
			"error":     anomaly.Reason,
		}).Warn("analyzing: registro descartado da agregação")
	}

	logger.WithFields(log.Fields{
		"window_start":    window.Start.Format(time.RFC3339),
		"window_end":      window.End.Format(time.RFC3339),
		"granularity":     granularity,
		"records_fetched": len(records),
		"records_counted": agg.Totals.Count,
		"records_skipped": len(agg.Anomalies),
		"duration_ms":     time.Since(startTime).Milliseconds(),
	}).Info("analyzing: agregação concluída")

	return agg, nil
}

// fetchRecords busca cada tipo em paralelo e concatena na ordem dos tipos pedidos
func (s *Service) fetchRecords(ctx context.Context, kinds []domain.Kind, window domain.TimeWindow) ([]domain.TransactionRecord, error) {
	batches := make([][]domain.TransactionRecord, len(kinds))

	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		i, kind := i, kind
		g.Go(func() error {
			records, err := s.source.FetchRecords(gctx, kind, window)
			if err != nil {
				return errors.Wrapf(err, "erro ao buscar registros do tipo %s", kind)
			}
			batches[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, batch := range batches {
		total += len(batch)
	}

	records := make([]domain.TransactionRecord, 0, total)
	for _, batch := range batches {
		records = append(records, batch...)
	}

	return records, nil
}
