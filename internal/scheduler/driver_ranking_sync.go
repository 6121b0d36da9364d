// Package scheduler contém os serviços de agendamento executados em segundo plano
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-analytics-api/infrastructure/repository"
	"github.com/vfg2006/store-analytics-api/internal/config"
	"github.com/vfg2006/store-analytics-api/internal/domain"
	"github.com/vfg2006/store-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/store-analytics-api/internal/usecases/ranking"
	"github.com/vfg2006/store-analytics-api/pkg/log"
	"github.com/vfg2006/store-analytics-api/pkg/utils"
)

type DriverRankingSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
	TopN         int
	LookbackDays int
}

// DriverRankingSyncService grava diariamente o ranking de entregadores por receita bruta
type DriverRankingSyncService struct {
	scheduler           *gocron.Scheduler
	analyzer            analyzing.Analyzer
	rankingRepo         repository.DriverRankingRepository
	config              DriverRankingSyncConfig
	location            *time.Location
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRunID           string
	lastSyncError       string
}

func NewDriverRankingSyncService(
	analyzer analyzing.Analyzer,
	rankingRepo repository.DriverRankingRepository,
	location *time.Location,
	cfg *config.Config,
) *DriverRankingSyncService {
	syncConfig := DriverRankingSyncConfig{
		CronSchedule: cfg.DriverRankingSync.CronSchedule, // Default: 6h da manhã todos os dias
		SyncEnabled:  cfg.DriverRankingSync.Enabled,      // Default: desabilitado
		TopN:         cfg.DriverRankingSync.TopN,
		LookbackDays: cfg.DriverRankingSync.LookbackDays,
	}

	if location == nil {
		location = time.UTC
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"top_n":         syncConfig.TopN,
		"lookback_days": syncConfig.LookbackDays,
	}).Info("Configuração do agendador do ranking de entregadores carregada")

	return &DriverRankingSyncService{
		scheduler:   gocron.NewScheduler(location),
		analyzer:    analyzer,
		rankingRepo: rankingRepo,
		config:      syncConfig,
		location:    location,
		now:         time.Now,
	}
}

func (s *DriverRankingSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron do ranking de entregadores desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do ranking de entregadores")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.UpdateDriverRanking(); err != nil {
			logrus.WithError(err).Error("Erro na atualização do ranking de entregadores")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar ranking de entregadores: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do ranking de entregadores")
		s.scheduler.Stop()
	}()

	return nil
}

// UpdateDriverRanking executa uma rodada completa; rodadas simultâneas são ignoradas
func (s *DriverRankingSyncService) UpdateDriverRanking() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Atualização do ranking de entregadores já está em execução")
		return nil
	}

	runID, err := utils.GenerateRunID()
	if err != nil {
		s.syncMutex.Unlock()
		return fmt.Errorf("erro ao gerar id da execução: %w", err)
	}

	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.lastRunID = runID
	s.syncMutex.Unlock()

	ctx, _ := log.WithCorrelationID(context.Background())
	_, err = s.processDriverRanking(ctx, runID, s.now())

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()

	return err
}

// processDriverRanking agrega as entregas da janela, ordena os entregadores e grava o snapshot do dia
func (s *DriverRankingSyncService) processDriverRanking(ctx context.Context, runID string, processingDate time.Time) ([]*domain.DriverRankingItem, error) {
	logger := log.ForContext(ctx).WithField("run_id", runID)
	startTime := time.Now()

	end := processingDate.In(s.location)
	start := end.AddDate(0, 0, -s.config.LookbackDays)
	period := end.Format(time.DateOnly)
	previousPeriod := end.AddDate(0, 0, -1).Format(time.DateOnly)

	agg, err := s.analyzer.Aggregate(ctx, domain.ReportRequest{
		Kinds: []domain.Kind{domain.KindDelivery},
		Range: domain.RangeParams{Preset: domain.PresetCustom, Start: &start, End: &end},
	})
	if err != nil {
		logger.WithError(err).Error("DriverRankingSyncService: erro ao agregar entregas")
		return nil, err
	}

	top, err := ranking.TopN(agg.PerEntity, s.config.TopN, domain.MetricGrossRevenue)
	if err != nil {
		return nil, err
	}

	previous, err := s.rankingRepo.GetByPeriod(ctx, previousPeriod)
	if err != nil {
		// Sem o snapshot anterior o ranking ainda é gravado, só sem variação de posição
		logger.WithError(err).Warn("DriverRankingSyncService: erro ao buscar ranking anterior")
		previous = nil
	}

	items := make([]*domain.DriverRankingItem, 0, len(top))
	for _, entity := range top {
		items = append(items, &domain.DriverRankingItem{
			RunID:          runID,
			DriverID:       entity.EntityID,
			Period:         period,
			TotalCount:     entity.TotalCount,
			CompletedCount: entity.CompletedCount,
			GrossRevenue:   entity.GrossRevenue,
			PayoutTotal:    entity.PayoutTotal,
			Profit:         entity.Profit,
			CompletionRate: analyzing.CompletionRate(entity.CompletedCount, entity.TotalCount),
		})
	}

	ranking.AssignPositions(items, previous)

	if err := s.rankingRepo.SaveOrUpdateDriverRanking(ctx, items); err != nil {
		logger.WithError(err).Error("DriverRankingSyncService: erro ao salvar ranking de entregadores")
		return items, err
	}

	logger.WithFields(log.Fields{
		"driver_count":    len(items),
		"records_skipped": len(agg.Anomalies),
		"duration_ms":     time.Since(startTime).Milliseconds(),
	}).Info("DriverRankingSyncService: ranking de entregadores atualizado")

	return items, nil
}

// TriggerManualSync inicia manualmente uma atualização do ranking
func (s *DriverRankingSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização do ranking de entregadores já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual do ranking de entregadores")
	go func() {
		if err := s.UpdateDriverRanking(); err != nil {
			logrus.WithError(err).Error("Erro na atualização manual do ranking de entregadores")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *DriverRankingSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_run_id":            s.lastRunID,
		"last_sync_error":        s.lastSyncError,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

func (s *DriverRankingSyncService) Enabled() bool {
	return s.config.SyncEnabled
}
