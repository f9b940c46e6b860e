// Package postgres implements the Content Store on PostgreSQL, one JSONB table per collection.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/empreweb/empreweb-backend/config"
)

func NewConnection(ctx context.Context, cfg *config.DatabaseConfig) (*sql.DB, error) {
	dsn := DSN(cfg)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

// Open connects and creates the collection tables when they are missing.
func Open(ctx context.Context, cfg *config.DatabaseConfig) (*Store, error) {
	db, err := NewConnection(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewStore(db), nil
}

var tables = []string{"servicios", "resenas", "contactos"}

func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, t := range tables {
		q := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id TEXT PRIMARY KEY,
	seq BIGSERIAL,
	doc JSONB NOT NULL
)`, t)
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("create table %s: %w", t, err)
		}
	}
	return nil
}
