package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-analytics-api/internal/config"
	"github.com/vfg2006/store-analytics-api/internal/domain"
	"github.com/vfg2006/store-analytics-api/pkg/utils"
)

const idLength = 10

var schema = []string{
	`CREATE TABLE IF NOT EXISTS sales (
		id         TEXT PRIMARY KEY,
		status     TEXT NOT NULL,
		sold_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sale_items (
		id          TEXT PRIMARY KEY,
		sale_id     TEXT NOT NULL REFERENCES sales (id),
		product_id  TEXT NOT NULL,
		quantity    INTEGER NOT NULL,
		unit_price  NUMERIC(14, 2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id            TEXT PRIMARY KEY,
		status        TEXT NOT NULL,
		total_amount  NUMERIC(14, 2) NOT NULL,
		ordered_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS deliveries (
		id            TEXT PRIMARY KEY,
		status        TEXT NOT NULL,
		delivery_fee  NUMERIC(14, 2) NOT NULL,
		driver_fee    NUMERIC(14, 2) NOT NULL,
		driver_id     TEXT,
		created_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS driver_ranking (
		id                 SERIAL PRIMARY KEY,
		run_id             TEXT NOT NULL,
		driver_id          TEXT NOT NULL,
		period             TEXT NOT NULL,
		total_count        INTEGER NOT NULL,
		completed_count    INTEGER NOT NULL,
		gross_revenue      NUMERIC(14, 2) NOT NULL,
		payout_total       NUMERIC(14, 2) NOT NULL,
		profit             NUMERIC(14, 2) NOT NULL,
		completion_rate    NUMERIC(5, 2) NOT NULL,
		position           INTEGER NOT NULL,
		position_change    INTEGER NOT NULL DEFAULT 0,
		previous_position  INTEGER NOT NULL DEFAULT 0,
		created_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT driver_ranking_driver_period_key UNIQUE (driver_id, period)
	)`,
	`CREATE INDEX IF NOT EXISTS sales_sold_at_idx ON sales (sold_at)`,
	`CREATE INDEX IF NOT EXISTS orders_ordered_at_idx ON orders (ordered_at)`,
	`CREATE INDEX IF NOT EXISTS deliveries_created_at_idx ON deliveries (created_at)`,
}

type saleSeed struct {
	ID     string
	Status string
	SoldAt time.Time
	Items  []saleItemSeed
}

type saleItemSeed struct {
	ID        string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}

type orderSeed struct {
	ID          string
	Status      string
	TotalAmount decimal.Decimal
	OrderedAt   time.Time
}

type deliverySeed struct {
	ID          string
	Status      string
	DeliveryFee decimal.Decimal
	DriverFee   decimal.Decimal
	DriverID    sql.NullString
	CreatedAt   time.Time
}

type seedData struct {
	Sales      []saleSeed
	Orders     []orderSeed
	Deliveries []deliverySeed
}

var (
	seedProducts = []string{"prod-cafe", "prod-pao", "prod-bolo", "prod-suco"}
	seedDrivers  = []string{"driver-ana", "driver-bruno", "driver-carla", "driver-diego", "driver-elis"}

	// "finishied" é o literal legado que o catálogo de status normaliza para "finished"
	seedOrderStatuses    = []string{"ordered", "finished", "finishied", "cancelled"}
	seedDeliveryStatuses = []string{"pending", "in_progress", "completed", "completed", "completed", "cancelled"}
)

func main() {
	seed := flag.Bool("seed", false, "insere dados de demonstração após criar o schema")
	days := flag.Int("days", 60, "quantidade de dias de histórico gerados pelo seed")
	perDay := flag.Int("per-day", 20, "registros de cada tipo gerados por dia")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	location, err := cfg.Analytics.Location()
	if err != nil {
		logrus.WithError(err).Fatal("Fuso horário inválido")
	}

	startTime := time.Now()

	opts := migrateOptions{Seed: *seed, Days: *days, PerDay: *perDay, Now: time.Now().In(location)}
	if err := migrate(ctx, conn, opts); err != nil {
		logrus.WithFields(logrus.Fields{
			"code": postgres.ErrorCode(err),
		}).WithError(err).Fatal("Migração revertida")
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("Migração concluída")
}

type migrateOptions struct {
	Seed   bool
	Days   int
	PerDay int
	Now    time.Time
}

// migrate cria o schema e, opcionalmente, os dados de demonstração numa única transação
func migrate(ctx context.Context, conn postgres.Conn, opts migrateOptions) error {
	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := createSchema(ctx, tx); err != nil {
			return err
		}

		if !opts.Seed {
			return nil
		}

		data, err := buildSeed(rand.New(rand.NewSource(opts.Now.UnixNano())), opts.Now, opts.Days, opts.PerDay)
		if err != nil {
			return err
		}

		return insertSeed(ctx, tx, data)
	})
}

func createSchema(ctx context.Context, tx *sql.Tx) error {
	for i, statement := range schema {
		if _, err := tx.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("erro ao executar o comando %d do schema: %w", i+1, err)
		}
	}

	logrus.WithField("statements", len(schema)).Info("Schema criado")
	return nil
}

// buildSeed gera o histórico de demonstração terminando em now.
// Algumas entregas ficam sem entregador e algumas vendas vêm com valor negativo para exercitar as anomalias.
func buildSeed(rng *rand.Rand, now time.Time, days, perDay int) (*seedData, error) {
	data := &seedData{}

	newID := func() (string, error) {
		return utils.GenerateID(idLength)
	}

	start := now.AddDate(0, 0, -days)

	for day := 0; day < days; day++ {
		dayStart := start.AddDate(0, 0, day)

		for i := 0; i < perDay; i++ {
			at := dayStart.Add(time.Duration(rng.Int63n(int64(24 * time.Hour))))
			if !at.Before(now) {
				continue
			}

			saleID, err := newID()
			if err != nil {
				return nil, err
			}

			sale := saleSeed{ID: saleID, Status: string(domain.StatusFinalized), SoldAt: at}
			items := 1 + rng.Intn(3)
			for n := 0; n < items; n++ {
				itemID, err := newID()
				if err != nil {
					return nil, err
				}

				price := decimal.New(int64(200+rng.Intn(4800)), -2)
				if rng.Intn(100) == 0 {
					price = price.Neg()
				}

				sale.Items = append(sale.Items, saleItemSeed{
					ID:        itemID,
					ProductID: seedProducts[rng.Intn(len(seedProducts))],
					Quantity:  1 + rng.Intn(4),
					UnitPrice: price,
				})
			}
			data.Sales = append(data.Sales, sale)

			orderID, err := newID()
			if err != nil {
				return nil, err
			}
			data.Orders = append(data.Orders, orderSeed{
				ID:          orderID,
				Status:      seedOrderStatuses[rng.Intn(len(seedOrderStatuses))],
				TotalAmount: decimal.New(int64(1000+rng.Intn(20000)), -2),
				OrderedAt:   at,
			})

			deliveryID, err := newID()
			if err != nil {
				return nil, err
			}

			fee := decimal.New(int64(800+rng.Intn(2200)), -2)
			delivery := deliverySeed{
				ID:          deliveryID,
				Status:      seedDeliveryStatuses[rng.Intn(len(seedDeliveryStatuses))],
				DeliveryFee: fee,
				DriverFee:   fee.Mul(decimal.NewFromFloat(0.7)).Round(2),
				CreatedAt:   at,
			}
			if rng.Intn(10) > 0 {
				delivery.DriverID = sql.NullString{String: seedDrivers[rng.Intn(len(seedDrivers))], Valid: true}
			}
			data.Deliveries = append(data.Deliveries, delivery)
		}
	}

	return data, nil
}

func insertSeed(ctx context.Context, tx *sql.Tx, data *seedData) error {
	saleStmt, err := tx.PrepareContext(ctx, `INSERT INTO sales (id, status, sold_at) VALUES ($1, $2, $3)`)
	if err != nil {
		return fmt.Errorf("erro ao preparar statement para sales: %w", err)
	}
	defer saleStmt.Close()

	itemStmt, err := tx.PrepareContext(ctx, `INSERT INTO sale_items (id, sale_id, product_id, quantity, unit_price) VALUES ($1, $2, $3, $4, $5)`)
	if err != nil {
		return fmt.Errorf("erro ao preparar statement para sale_items: %w", err)
	}
	defer itemStmt.Close()

	orderStmt, err := tx.PrepareContext(ctx, `INSERT INTO orders (id, status, total_amount, ordered_at) VALUES ($1, $2, $3, $4)`)
	if err != nil {
		return fmt.Errorf("erro ao preparar statement para orders: %w", err)
	}
	defer orderStmt.Close()

	deliveryStmt, err := tx.PrepareContext(ctx, `INSERT INTO deliveries (id, status, delivery_fee, driver_fee, driver_id, created_at) VALUES ($1, $2, $3, $4, $5, $6)`)
	if err != nil {
		return fmt.Errorf("erro ao preparar statement para deliveries: %w", err)
	}
	defer deliveryStmt.Close()

	for _, sale := range data.Sales {
		if _, err := saleStmt.ExecContext(ctx, sale.ID, sale.Status, sale.SoldAt); err != nil {
			return fmt.Errorf("erro ao inserir venda %s: %w", sale.ID, err)
		}
		for _, item := range sale.Items {
			if _, err := itemStmt.ExecContext(ctx, item.ID, sale.ID, item.ProductID, item.Quantity, item.UnitPrice); err != nil {
				return fmt.Errorf("erro ao inserir item %s: %w", item.ID, err)
			}
		}
	}

	for _, order := range data.Orders {
		if _, err := orderStmt.ExecContext(ctx, order.ID, order.Status, order.TotalAmount, order.OrderedAt); err != nil {
			return fmt.Errorf("erro ao inserir pedido %s: %w", order.ID, err)
		}
	}

	for _, delivery := range data.Deliveries {
		_, err := deliveryStmt.ExecContext(ctx,
			delivery.ID,
			delivery.Status,
			delivery.DeliveryFee,
			delivery.DriverFee,
			delivery.DriverID,
			delivery.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("erro ao inserir entrega %s: %w", delivery.ID, err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"sales":      len(data.Sales),
		"orders":     len(data.Orders),
		"deliveries": len(data.Deliveries),
	}).Info("Dados de demonstração inseridos")

	return nil
}
