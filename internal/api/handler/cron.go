package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/store-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/store-analytics-api/pkg/log"
	"github.com/vfg2006/store-analytics-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeDriverRanking = "driver-ranking"
)

// CronJob é o contrato dos agendadores que aceitam execução manual
type CronJob interface {
	Enabled() bool
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	DriverRankingSyncService CronJob
}

func (s CronJobServices) byType(cronType string) (CronJob, bool) {
	switch cronType {
	case CronJobTypeDriverRanking:
		return s.DriverRankingSyncService, s.DriverRankingSyncService != nil
	}
	return nil, false
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var userID int
		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			userID = claims.UserID
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		job, ok := services.byType(cronType)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: driver-ranking", nil)
			return
		}

		if !job.Enabled() {
			apiErrors.WriteError(w, apiErrors.ErrServiceDisabled, "Sincronização desabilitada por configuração", nil)
			return
		}

		started := job.TriggerManualSync()

		logger.WithFields(log.Fields{
			"type":    cronType,
			"user_id": userID,
			"started": started,
		}).Info("Execução manual de cron job solicitada")

		message := "Cron job iniciada com sucesso"
		if !started {
			message = "Cron job já está em execução"
		}

		writeJSON(w, r, map[string]any{
			"message": message,
			"type":    cronType,
			"started": started,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.DriverRankingSyncService != nil {
			status[CronJobTypeDriverRanking] = services.DriverRankingSyncService.GetStatus()
		}

		writeJSON(w, r, status)
	}
}
