package analyzing

import (
	"fmt"
	"time"

	"github.com/vfg2006/store-analytics-api/internal/domain"
)

const (
	day = 24 * time.Hour

	// Aproximações mantidas por compatibilidade com os números já reportados:
	// "mês" = 30 dias e "ano" = 365 dias, sem semântica de calendário.
	weekLookback  = 7 * day
	monthLookback = 30 * day
	yearLookback  = 365 * day
)

// Resolver converte períodos nomeados em janelas concretas e classifica instantes em buckets.
// Todos os instantes são normalizados para o fuso de referência antes de qualquer cálculo.
type Resolver struct {
	location *time.Location
	now      func() time.Time
}

func NewResolver(location *time.Location) *Resolver {
	if location == nil {
		location = time.UTC
	}

	return &Resolver{
		location: location,
		now:      time.Now,
	}
}

// WithClock substitui o relógio usado pelos períodos relativos
func (r *Resolver) WithClock(now func() time.Time) *Resolver {
	r.now = now
	return r
}

func (r *Resolver) Location() *time.Location {
	return r.location
}

// Resolve retorna a janela [início, fim) para o período informado
func (r *Resolver) Resolve(params domain.RangeParams) (domain.TimeWindow, error) {
	now := r.now().In(r.location)

	switch params.Preset {
	case domain.PresetToday:
		start := r.StartOfDay(now)
		end := now
		// À meia-noite exata a janela ficaria vazia
		if !start.Before(end) {
			end = start.Add(time.Nanosecond)
		}
		return domain.TimeWindow{Start: start, End: end}, nil

	case domain.PresetWeek:
		return domain.TimeWindow{Start: now.Add(-weekLookback), End: now}, nil

	case domain.PresetMonth:
		return domain.TimeWindow{Start: now.Add(-monthLookback), End: now}, nil

	case domain.PresetYear:
		return domain.TimeWindow{Start: now.Add(-yearLookback), End: now}, nil

	case domain.PresetCustom:
		if params.Start == nil || params.End == nil {
			return domain.TimeWindow{}, &domain.InvalidRangeError{Reason: "período customizado exige início e fim"}
		}

		start := params.Start.In(r.location)
		end := params.End.In(r.location)
		if !start.Before(end) {
			return domain.TimeWindow{}, &domain.InvalidRangeError{
				Reason: fmt.Sprintf("início %s não é anterior ao fim %s", start.Format(time.RFC3339), end.Format(time.RFC3339)),
			}
		}
		return domain.TimeWindow{Start: start, End: end}, nil
	}

	return domain.TimeWindow{}, &domain.InvalidRangeError{Reason: fmt.Sprintf("período desconhecido %q", params.Preset)}
}

// StartOfDay retorna a meia-noite do dia de t no fuso de referência
func (r *Resolver) StartOfDay(t time.Time) time.Time {
	t = t.In(r.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.location)
}

// BucketKeyOf classifica um instante no bucket da granularidade.
// Diário: 2006-01-02, semanal: ano ISO + semana ISO (2006-W01), mensal: 2006-01.
func (r *Resolver) BucketKeyOf(t time.Time, granularity domain.Granularity) domain.BucketKey {
	t = t.In(r.location)

	switch granularity {
	case domain.GranularityWeekly:
		year, week := t.ISOWeek()
		return domain.BucketKey(fmt.Sprintf("%04d-W%02d", year, week))
	case domain.GranularityMonthly:
		return domain.BucketKey(fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month())))
	default:
		return domain.BucketKey(fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day()))
	}
}

// PriorWindow retorna a janela imediatamente anterior, com a mesma duração
func PriorWindow(window domain.TimeWindow) domain.TimeWindow {
	return domain.TimeWindow{
		Start: window.Start.Add(-window.Duration()),
		End:   window.Start,
	}
}
