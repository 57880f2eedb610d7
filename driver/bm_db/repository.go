package bm_db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBPool is the subset of pgxpool.Pool the repository needs. Tests
// substitute a pgxmock pool through the same interface.
type DBPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

var _ DBPool = (*pgxpool.Pool)(nil)

type BmDBRepository struct {
	pool DBPool
}

func NewBmDBRepository(pool DBPool) *BmDBRepository {
	return &BmDBRepository{pool: pool}
}

// Ping reports whether the database is reachable.
func (r *BmDBRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
