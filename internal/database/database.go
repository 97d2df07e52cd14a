// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tomtom215/movieapi/internal/config"
	"github.com/tomtom215/movieapi/internal/logging"
	"github.com/tomtom215/movieapi/internal/metrics"
	"github.com/tomtom215/movieapi/internal/models"
)

// Table names used for metrics labels.
const (
	tableMovie    = "movie"
	tableDirector = "director"
	tableGenre    = "genre"
)

// openTimeout bounds connection setup and schema creation at startup.
const openTimeout = 30 * time.Second

// DB wraps the GORM handle and provides catalog data access methods.
// A single DB is created at startup and shared by all request handlers;
// GORM and database/sql make it safe for concurrent use.
type DB struct {
	gorm  *gorm.DB
	sqlDB *sql.DB
	pool  *pgxpool.Pool // set for the postgres driver only
	cfg   *config.DatabaseConfig
}

// New opens the configured database and creates the catalog schema if it
// does not exist yet.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), openTimeout)
	defer cancel()

	db := &DB{cfg: cfg}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := openPostgresPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		db.pool = pool
		dialector = postgres.New(postgres.Config{Conn: stdlib.OpenDBFromPool(pool)})
	case config.DriverSQLite, "":
		dsn, err := sqliteDSN(cfg.Path)
		if err != nil {
			return nil, err
		}
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: newGormLogger(cfg.LogQueries),
	})
	if err != nil {
		db.closePool()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.gorm = gdb

	sqlDB, err := gdb.DB()
	if err != nil {
		db.closePool()
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	db.sqlDB = sqlDB
	db.configureConnectionPool()

	if err := db.migrate(ctx); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	event := logging.Info().Str("driver", db.Driver())
	if db.pool == nil {
		event = event.Str("path", cfg.Path)
	}
	event.Msg("Database ready")

	return db, nil
}

// openPostgresPool builds a pgx pool from the DSN and verifies connectivity.
func openPostgresPool(ctx context.Context, cfg *config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DATABASE_URL: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		poolConfig.MaxConns = int32(cfg.MaxOpenConns) //nolint:gosec // bounded by config validation
	}
	if cfg.ConnMaxLifetime > 0 {
		poolConfig.MaxConnLifetime = cfg.ConnMaxLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

// sqliteDSN returns the driver DSN for a SQLite path. Foreign keys are
// enabled on every connection so ON DELETE SET NULL is honoured.
func sqliteDSN(path string) (string, error) {
	const pragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

	if path == ":memory:" {
		return path + "?" + pragmas, nil
	}

	// Ensure parent directory exists for database file
	// Use 0750 permissions (owner: rwx, group: rx, other: none) per gosec G301
	dbDir := filepath.Dir(path)
	if dbDir != "" && dbDir != "." {
		if err := os.MkdirAll(dbDir, 0o750); err != nil {
			return "", fmt.Errorf("failed to create database directory %s: %w", dbDir, err)
		}
	}
	return path + "?" + pragmas + "&_pragma=journal_mode(WAL)", nil
}

// configureConnectionPool applies pool limits to database/sql. PostgreSQL
// connections are pooled by pgxpool, so only SQLite is tuned here.
func (db *DB) configureConnectionPool() {
	if db.pool != nil {
		return
	}

	// Every connection to :memory: is a separate database.
	if db.cfg.Path == ":memory:" {
		db.sqlDB.SetMaxOpenConns(1)
		db.sqlDB.SetMaxIdleConns(1)
		db.sqlDB.SetConnMaxLifetime(0)
		return
	}

	if db.cfg.MaxOpenConns > 0 {
		db.sqlDB.SetMaxOpenConns(db.cfg.MaxOpenConns)
	}
	if db.cfg.MaxIdleConns > 0 {
		db.sqlDB.SetMaxIdleConns(db.cfg.MaxIdleConns)
	}
	db.sqlDB.SetConnMaxLifetime(db.cfg.ConnMaxLifetime)
}

// migrate creates the catalog tables. Directors and genres come first so
// the movie foreign keys have targets.
func (db *DB) migrate(ctx context.Context) error {
	return db.gorm.WithContext(ctx).AutoMigrate(
		&models.Director{},
		&models.Genre{},
		&models.Movie{},
	)
}

// Driver returns the active dialect name ("sqlite" or "postgres").
func (db *DB) Driver() string {
	return db.gorm.Dialector.Name()
}

// Conn returns the underlying GORM handle.
func (db *DB) Conn() *gorm.DB {
	return db.gorm
}

// Close closes the database connection
func (db *DB) Close() error {
	if db.sqlDB == nil {
		db.closePool()
		return nil
	}
	err := db.sqlDB.Close()
	db.closePool()
	return err
}

func (db *DB) closePool() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Ping checks if the database connection is alive and refreshes the pool gauges.
func (db *DB) Ping(ctx context.Context) error {
	if db.sqlDB == nil {
		return fmt.Errorf("database connection is nil")
	}
	err := db.sqlDB.PingContext(ctx)
	metrics.RecordDBPoolStats(db.sqlDB.Stats())
	return err
}

// observe records the duration and outcome of one storage call.
// Absence is an expected outcome and is not counted as an error.
func observe(operation, table string, start time.Time, err error) {
	if isNotFound(err) {
		err = nil
	}
	metrics.RecordDBQuery(operation, table, time.Since(start), err)
}
