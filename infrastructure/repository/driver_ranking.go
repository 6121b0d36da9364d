package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/store-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-analytics-api/internal/domain"
)

//go:generate mockgen -source=driver_ranking.go -destination=mocks/mock_driver_ranking.go -package=mocks

const (
	driverRankingTable = "driver_ranking dr"
)

var driverRankingColumns = []string{
	"dr.id",
	"dr.run_id",
	"dr.driver_id",
	"dr.period",
	"dr.total_count",
	"dr.completed_count",
	"dr.gross_revenue",
	"dr.payout_total",
	"dr.profit",
	"dr.completion_rate",
	"dr.position",
	"dr.position_change",
	"dr.previous_position",
	"dr.created_at",
	"dr.updated_at",
}

type DriverRankingRepository interface {
	// GetLatestRanking retorna o snapshot mais recente, ordenado pela posição
	GetLatestRanking(ctx context.Context) (*domain.DriverRankingResponse, error)
	// GetByPeriod retorna as posições já gravadas para o período, indexadas pelo entregador
	GetByPeriod(ctx context.Context, period string) (map[string]*domain.DriverRankingItem, error)
	SaveOrUpdateDriverRanking(ctx context.Context, rankings []*domain.DriverRankingItem) error
}

type driverRankingRepository struct {
	conn postgres.Queryer
}

func NewDriverRankingRepository(conn postgres.Queryer) DriverRankingRepository {
	return &driverRankingRepository{
		conn: conn,
	}
}

func (r *driverRankingRepository) GetLatestRanking(ctx context.Context) (*domain.DriverRankingResponse, error) {
	var period sql.NullString
	err := r.conn.QueryRowContext(ctx, "SELECT MAX(period) FROM driver_ranking").Scan(&period)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("erro ao buscar o último período do ranking: %w", err)
	}

	if !period.Valid {
		return &domain.DriverRankingResponse{
			Ranking:    []domain.DriverRankingItem{},
			LastUpdate: time.Now(),
		}, nil
	}

	sqlQuery, args, err := squirrel.
		Select(driverRankingColumns...).
		From(driverRankingTable).
		Where(squirrel.Eq{"dr.period": period.String}).
		OrderBy("dr.position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	rankings := make([]domain.DriverRankingItem, 0)
	var lastUpdate time.Time

	for rows.Next() {
		item, err := scanDriverRankingItem(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item do ranking: %w", err)
		}

		rankings = append(rankings, *item)

		if item.UpdatedAt.After(lastUpdate) {
			lastUpdate = item.UpdatedAt
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if lastUpdate.IsZero() {
		lastUpdate = time.Now()
	}

	return &domain.DriverRankingResponse{
		Period:     period.String,
		Ranking:    rankings,
		LastUpdate: lastUpdate,
	}, nil
}

func (r *driverRankingRepository) GetByPeriod(ctx context.Context, period string) (map[string]*domain.DriverRankingItem, error) {
	sqlQuery, args, err := squirrel.
		Select(driverRankingColumns...).
		From(driverRankingTable).
		Where(squirrel.Eq{"dr.period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	byDriver := make(map[string]*domain.DriverRankingItem)
	for rows.Next() {
		item, err := scanDriverRankingItem(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item do ranking: %w", err)
		}
		byDriver[item.DriverID] = item
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return byDriver, nil
}

func (r *driverRankingRepository) SaveOrUpdateDriverRanking(ctx context.Context, rankings []*domain.DriverRankingItem) error {
	if len(rankings) == 0 {
		return nil
	}

	sqlQuery, args, err := buildDriverRankingUpsert(rankings)
	if err != nil {
		return err
	}

	if _, err = r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		if code := postgres.ErrorCode(err); code != "" {
			return fmt.Errorf("erro ao executar query de inserção (%s): %w", code, err)
		}
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

// buildDriverRankingUpsert insere o lote inteiro em uma única instrução, atualizando (driver_id, period) existentes
func buildDriverRankingUpsert(rankings []*domain.DriverRankingItem) (string, []any, error) {
	query := squirrel.StatementBuilder.
		Insert("driver_ranking").
		Columns(
			"run_id",
			"driver_id",
			"period",
			"total_count",
			"completed_count",
			"gross_revenue",
			"payout_total",
			"profit",
			"completion_rate",
			"position",
			"position_change",
			"previous_position",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, ranking := range rankings {
		query = query.Values(
			ranking.RunID,
			ranking.DriverID,
			ranking.Period,
			ranking.TotalCount,
			ranking.CompletedCount,
			ranking.GrossRevenue,
			ranking.PayoutTotal,
			ranking.Profit,
			ranking.CompletionRate,
			ranking.Position,
			ranking.PositionChange,
			ranking.PreviousPosition,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (driver_id, period) DO UPDATE SET
			run_id = EXCLUDED.run_id,
			total_count = EXCLUDED.total_count,
			completed_count = EXCLUDED.completed_count,
			gross_revenue = EXCLUDED.gross_revenue,
			payout_total = EXCLUDED.payout_total,
			profit = EXCLUDED.profit,
			completion_rate = EXCLUDED.completion_rate,
			position = EXCLUDED.position,
			position_change = EXCLUDED.position_change,
			previous_position = EXCLUDED.previous_position,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	return sqlQuery, args, nil
}

func scanDriverRankingItem(row rowScanner) (*domain.DriverRankingItem, error) {
	item := &domain.DriverRankingItem{}

	err := row.Scan(
		&item.ID,
		&item.RunID,
		&item.DriverID,
		&item.Period,
		&item.TotalCount,
		&item.CompletedCount,
		&item.GrossRevenue,
		&item.PayoutTotal,
		&item.Profit,
		&item.CompletionRate,
		&item.Position,
		&item.PositionChange,
		&item.PreviousPosition,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return item, nil
}
