package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/glowpanel/engine/internal/domain"
)

type fakeTx struct {
	pgx.Tx

	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rolledBack = true
	return nil
}

type fakePool struct {
	beginErr error
	lastOpts pgx.TxOptions
	tx       *fakeTx
}

func (p *fakePool) BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	p.lastOpts = opts
	if p.beginErr != nil {
		return nil, p.beginErr
	}
	p.tx = &fakeTx{}
	return p.tx, nil
}

func TestTxManagerBeginUsesSerializableIsolation(t *testing.T) {
	pool := &fakePool{}
	manager := newTxManagerWithPool(pool)

	tx, err := manager.Begin(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx == nil {
		t.Fatalf("expected transaction")
	}

	if pool.lastOpts.IsoLevel != pgx.Serializable {
		t.Fatalf("expected serializable isolation, got %v", pool.lastOpts.IsoLevel)
	}

	if err := tx.Commit(context.Background()); err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	if !pool.tx.committed {
		t.Fatalf("expected commit to reach the underlying transaction")
	}
}

func TestTxManagerBeginError(t *testing.T) {
	mockErr := errors.New("begin failed")
	pool := &fakePool{beginErr: mockErr}
	manager := newTxManagerWithPool(pool)

	tx, err := manager.Begin(context.Background())
	if err == nil || !errors.Is(err, mockErr) {
		t.Fatalf("expected begin error, got err=%v tx=%v", err, tx)
	}
}

func TestTxManagerBeginConnectionErrorIsStoreUnavailable(t *testing.T) {
	pool := &fakePool{beginErr: &pgconn.PgError{Code: "08001"}}
	manager := newTxManagerWithPool(pool)

	_, err := manager.Begin(context.Background())
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestTxRollback(t *testing.T) {
	pool := &fakePool{}
	manager := newTxManagerWithPool(pool)

	tx, err := manager.Begin(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := tx.Rollback(context.Background()); err != nil {
		t.Fatalf("rollback failed: %v", err)
	}
	if !pool.tx.rolledBack {
		t.Fatalf("expected rollback to reach the underlying transaction")
	}
}
