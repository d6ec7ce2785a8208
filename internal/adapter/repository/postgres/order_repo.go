package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/glowpanel/engine/internal/domain"
	"github.com/glowpanel/engine/internal/usecase"
)

// OrderRepository implements usecase.OrderRepository.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository creates a new OrderRepository.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

const orderColumns = `id, account_id, service_id, link, quantity, charge, status, created_at`

// Create creates a new order inside a transaction.
func (r *OrderRepository) Create(ctx context.Context, tx usecase.Transaction, order *domain.Order) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO orders (id, account_id, service_id, link, quantity, charge, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := pgxTx.Exec(ctx, query,
		order.ID,
		order.AccountID,
		order.ServiceID,
		order.Link,
		order.Quantity,
		decimalToNumeric(order.Charge),
		string(order.Status),
		timeToPgTimestamptz(order.CreatedAt),
	)

	return err
}

// GetByID retrieves an order by ID.
func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)

	return scanOrder(row)
}

// ListByAccount lists orders for an account, newest first.
func (r *OrderRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Order, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE account_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		accountID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, rows.Err()
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		order     domain.Order
		charge    pgtype.Numeric
		status    string
		createdAt pgtype.Timestamptz
	)

	err := row.Scan(
		&order.ID,
		&order.AccountID,
		&order.ServiceID,
		&order.Link,
		&order.Quantity,
		&charge,
		&status,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}

		return nil, err
	}

	order.Charge = numericToDecimal(charge)
	order.Status = domain.OrderStatus(status)
	order.CreatedAt = createdAt.Time

	return &order, nil
}
