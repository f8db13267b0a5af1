package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Pool interface for database connection pool operations
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// Dialect selects the SQL flavour of the store.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// ParseDialect resolves a DB_DRIVER value. "postgresql" and "pgx" alias postgres.
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "sqlite", "sqlite3":
		return DialectSQLite, nil
	case "postgres", "postgresql", "pgx":
		return DialectPostgres, nil
	default:
		return "", fmt.Errorf("%s: %q", ErrMsgUnknownDriver, name)
	}
}

// Options describes how to reach the store
type Options struct {
	Dialect    Dialect
	SQLitePath string
	ConnString string
	MaxConns   int
	MaxIdle    time.Duration
	MaxLife    time.Duration
}

// DB is an open store handle. SQL is shared by every repository.
type DB struct {
	SQL     *sql.DB
	Dialect Dialect
	pool    *pgxpool.Pool
}

// Open connects to the configured dialect and verifies the connection
func Open(ctx context.Context, opts Options) (*DB, error) {
	switch opts.Dialect {
	case DialectPostgres:
		pool, err := NewPool(opts.ConnString, opts.MaxConns, opts.MaxIdle, opts.MaxLife)
		if err != nil {
			return nil, err
		}
		return &DB{SQL: stdlib.OpenDBFromPool(pool), Dialect: DialectPostgres, pool: pool}, nil
	case DialectSQLite, "":
		sqlDB, err := OpenSQLite(ctx, opts.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &DB{SQL: sqlDB, Dialect: DialectSQLite}, nil
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownDriver, opts.Dialect)
	}
}

// Ping checks the connection is alive
func (d *DB) Ping(ctx context.Context) error {
	return d.SQL.PingContext(ctx)
}

// Close releases the sql handle and, for postgres, the pool behind it
func (d *DB) Close() {
	if err := d.SQL.Close(); err != nil {
		slog.Default().Warn(LogMsgCloseFailed, "error", err)
	}
	if d.pool != nil {
		d.pool.Close()
	}
}

// OpenSQLite opens a SQLite file with foreign keys on and WAL journaling.
// Transactions start IMMEDIATE so concurrent writers wait on busy_timeout instead of failing on upgrade.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%s", ErrMsgSQLitePathRequired)
	}
	dsn := "file:" + filepath.Clean(path) + SQLiteDSNParams
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpenDatabase, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}
	slog.Default().Info(LogMsgSuccessfullyConnectedToDatabase, "driver", DialectSQLite, "path", path)
	return sqlDB, nil
}

// NewPool creates a new PostgreSQL connection pool
func NewPool(connString string, maxConns int, maxIdle, maxLife time.Duration) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	if maxConns > math.MaxInt32 {
		maxConns = math.MaxInt32
	}
	if maxConns > 0 {
		config.MaxConns = int32(maxConns)
	}
	config.MinConns = DefaultMinConnections
	config.MaxConnLifetime = maxLife
	config.MaxConnIdleTime = maxIdle

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgSuccessfullyConnectedToDatabase, "driver", DialectPostgres)
	return pool, nil
}
