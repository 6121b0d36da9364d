package handler

import (
	"net/http"

	"github.com/vfg2006/store-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/store-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/store-analytics-api/internal/usecases/ranking"
	"github.com/vfg2006/store-analytics-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Analytics(service analyzing.Analyzer, opts AnalyticsOptions) []router.Route {
	reportAccess := []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()}

	return []router.Route{
		{
			Path:        "/v1/analytics/overview",
			Method:      http.MethodGet,
			Handler:     GetOverview(service, opts),
			Middlewares: reportAccess,
		},
		{
			Path:        "/v1/analytics/entities",
			Method:      http.MethodGet,
			Handler:     GetEntityStats(service, opts),
			Middlewares: reportAccess,
		},
		{
			Path:        "/v1/analytics/trend",
			Method:      http.MethodGet,
			Handler:     GetTrend(service, opts),
			Middlewares: reportAccess,
		},
		{
			Path:        "/v1/analytics/top",
			Method:      http.MethodGet,
			Handler:     GetTopPerformers(service, opts),
			Middlewares: reportAccess,
		},
	}
}

func DriverRanking(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/drivers/ranking",
			Method:      http.MethodGet,
			Handler:     GetDriverRanking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

// CronJobs expõe a execução manual e o status dos agendadores, restritos a administradores
func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
