package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/glowpanel/engine/internal/domain"
	"github.com/glowpanel/engine/internal/usecase"
)

// AccountRepository implements usecase.AccountRepository.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

const accountColumns = `id, email, balance, ad_balance, total_spent, rank,
       affiliate_level, affiliate_earnings, referrer_id, created_at, updated_at`

// Create creates a new account.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	query := `
		INSERT INTO accounts (
			id, email, balance, ad_balance, total_spent, rank,
			affiliate_level, affiliate_earnings, referrer_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		account.ID,
		account.Email,
		decimalToNumeric(account.Balance),
		decimalToNumeric(account.AdBalance),
		decimalToNumeric(account.TotalSpent),
		account.Rank,
		account.AffiliateLevel,
		decimalToNumeric(account.AffiliateEarnings),
		account.ReferrerID,
		timeToPgTimestamptz(account.CreatedAt),
		timeToPgTimestamptz(account.UpdatedAt),
	)

	return err
}

// GetByID retrieves an account by ID outside any transaction. Display
// reads only; the order path goes through GetTx.
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)

	return scanAccount(row)
}

// GetTx reads an account inside an active transaction so that the
// serializable read-set covers it.
func (r *AccountRepository) GetTx(ctx context.Context, tx usecase.Transaction, id string) (*domain.Account, error) {
	pgxTx := tx.(*Tx).PgxTx()

	row := pgxTx.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)

	return scanAccount(row)
}

// Update writes all mutable account fields in one statement.
func (r *AccountRepository) Update(ctx context.Context, tx usecase.Transaction, account *domain.Account) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		UPDATE accounts
		SET balance = $2,
		    ad_balance = $3,
		    total_spent = $4,
		    rank = $5,
		    affiliate_level = $6,
		    affiliate_earnings = $7,
		    updated_at = $8
		WHERE id = $1
	`

	tag, err := pgxTx.Exec(ctx, query,
		account.ID,
		decimalToNumeric(account.Balance),
		decimalToNumeric(account.AdBalance),
		decimalToNumeric(account.TotalSpent),
		account.Rank,
		account.AffiliateLevel,
		decimalToNumeric(account.AffiliateEarnings),
		timeToPgTimestamptz(account.UpdatedAt),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

// List lists accounts with pagination.
func (r *AccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+accountColumns+` FROM accounts ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		account           domain.Account
		balance           pgtype.Numeric
		adBalance         pgtype.Numeric
		totalSpent        pgtype.Numeric
		affiliateEarnings pgtype.Numeric
		createdAt         pgtype.Timestamptz
		updatedAt         pgtype.Timestamptz
	)

	err := row.Scan(
		&account.ID,
		&account.Email,
		&balance,
		&adBalance,
		&totalSpent,
		&account.Rank,
		&account.AffiliateLevel,
		&affiliateEarnings,
		&account.ReferrerID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, err
	}

	account.Balance = numericToDecimal(balance)
	account.AdBalance = numericToDecimal(adBalance)
	account.TotalSpent = numericToDecimal(totalSpent)
	account.AffiliateEarnings = numericToDecimal(affiliateEarnings)
	account.CreatedAt = createdAt.Time
	account.UpdatedAt = updatedAt.Time

	return &account, nil
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
