package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-analytics-api/infrastructure/repository"
	"github.com/vfg2006/store-analytics-api/internal/api"
	"github.com/vfg2006/store-analytics-api/internal/config"
	"github.com/vfg2006/store-analytics-api/internal/domain"
	"github.com/vfg2006/store-analytics-api/internal/scheduler"
	"github.com/vfg2006/store-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/store-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/store-analytics-api/internal/usecases/ranking"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	location, err := cfg.Analytics.Location()
	if err != nil {
		logrus.Fatal(err)
	}

	granularity, err := domain.ParseGranularity(cfg.Analytics.DefaultGranularity)
	if err != nil {
		logrus.Fatal(err)
	}

	catalog, err := domain.NewStatusCatalog().WithAliases(cfg.Analytics.StatusAliases)
	if err != nil {
		logrus.WithError(err).Fatal("Aliases de status inválidos")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	recordRepo := repository.NewTransactionRecordRepository(pgConn, catalog)
	driverRankingRepo := repository.NewDriverRankingRepository(pgConn)

	analyzer := analyzing.NewService(analyzing.NewResolver(location), recordRepo, granularity)
	rankingService := ranking.NewDriverRankingService(driverRankingRepo)
	tokenValidator := authenticating.NewService(cfg)

	driverRankingSyncService := scheduler.NewDriverRankingSyncService(analyzer, driverRankingRepo, location, cfg)
	if err := driverRankingSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do ranking de entregadores")
	}

	server, err := api.New(cfg, analyzer, rankingService, tokenValidator, driverRankingSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
