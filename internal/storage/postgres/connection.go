package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/GoSim-25-26J-441/bpmn-compliance/config"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const driverName = "pgx"

type Options struct {
	PingTO       time.Duration
	MaxOpenConns int
	MaxIdleConns int
}

// NewConnection opens the run log database through the pgx database/sql driver and
// fails fast when it cannot be reached.
func NewConnection(ctx context.Context, cfg *config.DatabaseConfig, opt Options) (*sql.DB, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("DB_DSN or DB_HOST is not set")
	}
	if opt.PingTO == 0 {
		opt.PingTO = 2 * time.Second
	}
	if opt.MaxOpenConns == 0 {
		opt.MaxOpenConns = 25
	}
	if opt.MaxIdleConns == 0 {
		opt.MaxIdleConns = 5
	}

	db, err := sql.Open(driverName, DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pctx, cancel := context.WithTimeout(ctx, opt.PingTO)
	defer cancel()
	if err := db.PingContext(pctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(opt.MaxOpenConns)
	db.SetMaxIdleConns(opt.MaxIdleConns)

	return db, nil
}
