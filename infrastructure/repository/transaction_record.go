// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/store-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-analytics-api/internal/domain"
	"github.com/vfg2006/store-analytics-api/pkg/log"
)

//go:generate mockgen -source=transaction_record.go -destination=mocks/mock_transaction_record.go -package=mocks

// TransactionRecordRepository lê vendas, pedidos e entregas já na forma de TransactionRecord
type TransactionRecordRepository interface {
	FetchRecords(ctx context.Context, kind domain.Kind, window domain.TimeWindow) ([]domain.TransactionRecord, error)
}

type rowScanner interface {
	Scan(dest ...any) error
}

type transactionRecordRepository struct {
	conn    postgres.Queryer
	catalog *domain.StatusCatalog
}

func NewTransactionRecordRepository(conn postgres.Queryer, catalog *domain.StatusCatalog) TransactionRecordRepository {
	if catalog == nil {
		catalog = domain.NewStatusCatalog()
	}

	return &transactionRecordRepository{
		conn:    conn,
		catalog: catalog,
	}
}

func (r *transactionRecordRepository) FetchRecords(ctx context.Context, kind domain.Kind, window domain.TimeWindow) ([]domain.TransactionRecord, error) {
	sqlQuery, args, err := buildRecordQuery(kind, window)
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"kind":  kind,
			"error": postgres.ErrorCode(err),
		}).Error("repository: erro ao buscar registros")
		return nil, fmt.Errorf("erro ao executar a query de %s: %w", kind, err)
	}
	defer rows.Close()

	records := make([]domain.TransactionRecord, 0)
	for rows.Next() {
		record, err := r.scanRecord(kind, rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de %s: %w", kind, err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

// buildRecordQuery monta a consulta de cada tipo com as mesmas colunas:
// id, status, valor bruto, repasse, instante e entidade (nullable).
func buildRecordQuery(kind domain.Kind, window domain.TimeWindow) (string, []any, error) {
	var builder squirrel.SelectBuilder

	switch kind {
	case domain.KindSale:
		// Uma linha por item: a entidade da venda é o produto
		builder = squirrel.
			Select(
				"si.id",
				"s.status",
				"si.quantity * si.unit_price",
				"0",
				"s.sold_at",
				"si.product_id",
			).
			From("sale_items si").
			Join("sales s ON s.id = si.sale_id").
			Where(squirrel.GtOrEq{"s.sold_at": window.Start}).
			Where(squirrel.Lt{"s.sold_at": window.End})

	case domain.KindOrder:
		builder = squirrel.
			Select(
				"o.id",
				"o.status",
				"o.total_amount",
				"0",
				"o.ordered_at",
				"NULL",
			).
			From("orders o").
			Where(squirrel.GtOrEq{"o.ordered_at": window.Start}).
			Where(squirrel.Lt{"o.ordered_at": window.End})

	case domain.KindDelivery:
		builder = squirrel.
			Select(
				"d.id",
				"d.status",
				"d.delivery_fee",
				"d.driver_fee",
				"d.created_at",
				"d.driver_id",
			).
			From("deliveries d").
			Where(squirrel.GtOrEq{"d.created_at": window.Start}).
			Where(squirrel.Lt{"d.created_at": window.End})

	default:
		return "", nil, &domain.UnsupportedKindError{Kind: kind}
	}

	sqlQuery, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return sqlQuery, args, nil
}

func (r *transactionRecordRepository) scanRecord(kind domain.Kind, row rowScanner) (domain.TransactionRecord, error) {
	var (
		id        string
		rawStatus string
		gross     decimal.Decimal
		payout    decimal.Decimal
		timestamp time.Time
		entity    sql.NullString
	)

	if err := row.Scan(&id, &rawStatus, &gross, &payout, &timestamp, &entity); err != nil {
		return domain.TransactionRecord{}, err
	}

	record := domain.TransactionRecord{
		ID:                 id,
		Kind:               kind,
		Status:             r.catalog.Normalize(kind, rawStatus),
		GrossAmount:        gross,
		CounterpartyPayout: payout,
		Timestamp:          timestamp,
	}

	if entity.Valid && entity.String != "" {
		record.EntityRef = &entity.String
	}

	return record, nil
}
