package domain

import (
	"fmt"
	"time"
)

type Preset string

const (
	PresetToday  Preset = "today"
	PresetWeek   Preset = "week"
	PresetMonth  Preset = "month"
	PresetYear   Preset = "year"
	PresetCustom Preset = "custom"
)

func ParsePreset(s string) (Preset, error) {
	switch p := Preset(s); p {
	case PresetToday, PresetWeek, PresetMonth, PresetYear, PresetCustom:
		return p, nil
	}
	return "", fmt.Errorf("período inválido: %q", s)
}

type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

func ParseGranularity(s string) (Granularity, error) {
	switch g := Granularity(s); g {
	case GranularityDaily, GranularityWeekly, GranularityMonthly:
		return g, nil
	}
	return "", fmt.Errorf("granularidade inválida: %q", s)
}

// TimeWindow é o intervalo semiaberto [Start, End). Start < End sempre.
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains indica se t está dentro da janela (início incluído, fim excluído)
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

func (w TimeWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// BucketKey identifica uma unidade de granularidade (YYYY-MM-DD, YYYY-Www ou YYYY-MM).
// A ordem lexicográfica coincide com a ordem cronológica.
type BucketKey string

// RangeParams são os parâmetros de período recebidos do chamador
type RangeParams struct {
	Preset Preset
	Start  *time.Time
	End    *time.Time
}
