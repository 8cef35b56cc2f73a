package store_db

import (
	"context"

	"newsreader/config"
	"newsreader/utils/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is the subset of pgxpool.Pool the repository needs. pgxmock satisfies
// it in tests.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// StoreDBRepository wraps the remote bookmark/article store.
type StoreDBRepository struct {
	pool DB
}

func NewStoreDBRepository(pool DB) *StoreDBRepository {
	return &StoreDBRepository{pool: pool}
}

// InitDBPool opens the connection pool against the configured store.
func InitDBPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	poolConfig.MaxConns = int32(cfg.MaxConnections)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.SafeError("Failed to create database pool", "error", err)
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectionTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		logger.SafeError("Failed to ping database", "error", err)
		pool.Close()
		return nil, err
	}

	logger.SafeInfo("Connected to article store")

	return pool, nil
}
