package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/store-analytics-api/internal/domain"
	"github.com/vfg2006/store-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/store-analytics-api/internal/usecases/ranking"
	"github.com/vfg2006/store-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/store-analytics-api/pkg/log"
	"github.com/vfg2006/store-analytics-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// AnalyticsOptions são os valores usados quando a requisição não informa o parâmetro
type AnalyticsOptions struct {
	Location           *time.Location
	DefaultGranularity domain.Granularity
	DefaultTopN        int
}

// paramError indica um parâmetro de query inválido
type paramError struct {
	param string
	err   error
}

func (e *paramError) Error() string {
	return e.param + ": " + e.err.Error()
}

func (e *paramError) Unwrap() error {
	return e.err
}

func GetOverview(service analyzing.Analyzer, opts AnalyticsOptions) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := parseReportRequest(r, opts)
		if err != nil {
			writeAnalyticsError(w, r, err)
			return
		}

		overview, err := service.Overview(r.Context(), req)
		if err != nil {
			writeAnalyticsError(w, r, err)
			return
		}

		writeJSON(w, r, overview)
	})
}

func GetEntityStats(service analyzing.Analyzer, opts AnalyticsOptions) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := parseReportRequest(r, opts)
		if err != nil {
			writeAnalyticsError(w, r, err)
			return
		}

		stats, err := service.EntityStats(r.Context(), req)
		if err != nil {
			writeAnalyticsError(w, r, err)
			return
		}

		writeJSON(w, r, stats)
	})
}

func GetTrend(service analyzing.Analyzer, opts AnalyticsOptions) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := parseReportRequest(r, opts)
		if err != nil {
			writeAnalyticsError(w, r, err)
			return
		}

		series, err := service.Trend(r.Context(), req)
		if err != nil {
			writeAnalyticsError(w, r, err)
			return
		}

		writeJSON(w, r, series)
	})
}

func GetTopPerformers(service analyzing.Analyzer, opts AnalyticsOptions) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := parseReportRequest(r, opts)
		if err != nil {
			writeAnalyticsError(w, r, err)
			return
		}

		query := r.URL.Query()

		n := opts.DefaultTopN
		if raw := query.Get("n"); raw != "" {
			n, err = strconv.Atoi(raw)
			if err != nil {
				writeAnalyticsError(w, r, &paramError{param: "n", err: err})
				return
			}
		}

		metric := domain.MetricTotalCount
		if raw := query.Get("metric"); raw != "" {
			metric = domain.RankingMetric(raw)
		}

		top, err := service.TopPerformers(r.Context(), req, n, metric)
		if err != nil {
			writeAnalyticsError(w, r, err)
			return
		}

		writeJSON(w, r, top)
	})
}

// parseReportRequest lê range, start, end, kinds e granularity da query string
func parseReportRequest(r *http.Request, opts AnalyticsOptions) (domain.ReportRequest, error) {
	query := r.URL.Query()
	req := domain.ReportRequest{Granularity: opts.DefaultGranularity}

	preset := domain.PresetMonth
	if raw := query.Get("range"); raw != "" {
		parsed, err := domain.ParsePreset(raw)
		if err != nil {
			return req, &paramError{param: "range", err: err}
		}
		preset = parsed
	}
	req.Range.Preset = preset

	start, err := utils.ParseDate(query.Get("start"), opts.Location, false)
	if err != nil {
		return req, &paramError{param: "start", err: err}
	}

	end, err := utils.ParseDate(query.Get("end"), opts.Location, true)
	if err != nil {
		return req, &paramError{param: "end", err: err}
	}

	if start != nil || end != nil {
		// Datas explícitas sem range implicam período customizado
		if query.Get("range") == "" {
			req.Range.Preset = domain.PresetCustom
		}
		req.Range.Start = start
		req.Range.End = end
	}

	if raw := query.Get("kinds"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			kind := domain.Kind(strings.TrimSpace(part))
			if !kind.Valid() {
				return req, &paramError{param: "kinds", err: domain.ErrUnsupportedKind}
			}
			req.Kinds = append(req.Kinds, kind)
		}
	}

	if raw := query.Get("granularity"); raw != "" {
		granularity, err := domain.ParseGranularity(raw)
		if err != nil {
			return req, &paramError{param: "granularity", err: err}
		}
		req.Granularity = granularity
	}

	return req, nil
}

func writeAnalyticsError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var rangeErr *domain.InvalidRangeError
	var param *paramError

	switch {
	case errors.As(err, &rangeErr):
		logger.Warn("analytics: período inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRange, rangeErr.Reason, nil)
	case errors.As(err, &param):
		logger.Warn("analytics: parâmetro inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro inválido", map[string]string{"param": param.param, "error": param.err.Error()})
	case errors.Is(err, ranking.ErrInvalidLimit):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro inválido", map[string]string{"param": "n", "error": err.Error()})
	case errors.Is(err, ranking.ErrInvalidMetric):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro inválido", map[string]string{"param": "metric", "error": err.Error()})
	default:
		logger.Error("analytics: erro ao gerar relatório")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar registros", nil)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("analytics: erro ao enviar resposta")
	}
}
