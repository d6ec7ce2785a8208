package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/glowpanel/engine/internal/domain"
	"github.com/glowpanel/engine/internal/usecase"
)

// AffiliateRepository implements usecase.AffiliateRepository.
type AffiliateRepository struct {
	pool *pgxpool.Pool
}

// NewAffiliateRepository creates a new AffiliateRepository.
func NewAffiliateRepository(pool *pgxpool.Pool) *AffiliateRepository {
	return &AffiliateRepository{pool: pool}
}

// Create creates a commission audit record inside a transaction.
func (r *AffiliateRepository) Create(ctx context.Context, tx usecase.Transaction, atx *domain.AffiliateTransaction) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO affiliate_transactions (id, referrer_id, referred_id, order_id, amount, level, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := pgxTx.Exec(ctx, query,
		atx.ID,
		atx.ReferrerID,
		atx.ReferredID,
		atx.OrderID,
		decimalToNumeric(atx.Amount),
		atx.Level,
		timeToPgTimestamptz(atx.CreatedAt),
	)

	return err
}

// ListByReferrer lists commission records for a referrer, newest first.
func (r *AffiliateRepository) ListByReferrer(ctx context.Context, referrerID string, limit, offset int) ([]*domain.AffiliateTransaction, error) {
	query := `
		SELECT id, referrer_id, referred_id, order_id, amount, level, created_at
		FROM affiliate_transactions
		WHERE referrer_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, referrerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.AffiliateTransaction
	for rows.Next() {
		var (
			atx       domain.AffiliateTransaction
			amount    pgtype.Numeric
			createdAt pgtype.Timestamptz
		)

		err := rows.Scan(
			&atx.ID,
			&atx.ReferrerID,
			&atx.ReferredID,
			&atx.OrderID,
			&amount,
			&atx.Level,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		atx.Amount = numericToDecimal(amount)
		atx.CreatedAt = createdAt.Time
		out = append(out, &atx)
	}

	return out, rows.Err()
}
