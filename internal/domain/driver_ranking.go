package domain

import "time"

type DriverRankingResponse struct {
	Period     string              `json:"period"`
	Ranking    []DriverRankingItem `json:"ranking"`
	LastUpdate time.Time           `json:"last_update"`
}

type DriverRankingItem struct {
	ID               int       `json:"id"`
	RunID            string    `json:"run_id"`
	DriverID         string    `json:"driver_id"`
	Period           string    `json:"period"` // Formato yyyy-mm-dd do dia de referência do snapshot
	TotalCount       int       `json:"total_count"`
	CompletedCount   int       `json:"completed_count"`
	GrossRevenue     Money     `json:"gross_revenue"`
	PayoutTotal      Money     `json:"payout_total"`
	Profit           Money     `json:"profit"`
	CompletionRate   float64   `json:"completion_rate"`
	Position         int       `json:"position"`
	PositionChange   int       `json:"position_change"` // Valor positivo = subiu, negativo = desceu, 0 = manteve
	PreviousPosition int       `json:"previous_position"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
