package handler

import (
	"net/http"

	"github.com/vfg2006/store-analytics-api/internal/usecases/ranking"
	"github.com/vfg2006/store-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/store-analytics-api/pkg/log"
)

// GetDriverRanking retorna o último snapshot gravado do ranking de entregadores
func GetDriverRanking(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		driverRanking, err := service.GetDriverRanking(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar ranking dos entregadores")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar ranking dos entregadores", nil)
			return
		}

		writeJSON(w, r, driverRanking)
	}
}
