package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/GoSim-25-26J-441/portfolio-backend/config"
	_ "github.com/lib/pq"
)

const pingTimeout = 5 * time.Second

func NewConnection(ctx context.Context, cfg *config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := configure(ctx, db, cfg); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func configure(ctx context.Context, db *sql.DB, cfg *config.DatabaseConfig) error {
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}
