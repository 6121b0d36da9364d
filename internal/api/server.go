package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-analytics-api/internal/api/handler"
	"github.com/vfg2006/store-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/store-analytics-api/internal/config"
	"github.com/vfg2006/store-analytics-api/internal/domain"
	"github.com/vfg2006/store-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/store-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/store-analytics-api/internal/usecases/ranking"
	"github.com/vfg2006/store-analytics-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	analyzer analyzing.Analyzer,
	rankingService ranking.RankingService,
	tokenValidator authenticating.TokenValidator,
	driverRankingSync handler.CronJob,
) (*Server, error) {
	location, err := config.Analytics.Location()
	if err != nil {
		return nil, err
	}

	granularity, err := domain.ParseGranularity(config.Analytics.DefaultGranularity)
	if err != nil {
		return nil, err
	}

	opts := handler.AnalyticsOptions{
		Location:           location,
		DefaultGranularity: granularity,
		DefaultTopN:        config.Analytics.DefaultTopN,
	}

	cronServices := handler.CronJobServices{
		DriverRankingSyncService: driverRankingSync,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Analytics(analyzer, opts)...),
		router.WithRoutes(handler.DriverRanking(rankingService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	// O logging envolve o panic para que a resposta 500 também seja registrada
	middlewares := []alice.Constructor{
		middleware.LoggingMiddleware(),
		middleware.LogPanicMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(tokenValidator),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
