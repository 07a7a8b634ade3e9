package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// MustOpen connects the submission history pool. The console writes
// rarely, so the pool stays small.
func MustOpen(ctx context.Context, dsn string) *pgxpool.Pool {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid DB_DSN")
	}
	cfg.MaxConns = 4
	cfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("db_host", cfg.ConnConfig.Host).Msg("db connect fail")
	}
	if err := pool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Str("db_host", cfg.ConnConfig.Host).Msg("db ping fail")
	}
	log.Info().Str("db_host", cfg.ConnConfig.Host).Str("db_name", cfg.ConnConfig.Database).Msg("submission history connected")
	return pool
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS console_submissions (
		id         TEXT PRIMARY KEY,
		urls       TEXT[] NOT NULL,
		mode       TEXT NOT NULL,
		options    JSONB NOT NULL DEFAULT '{}'::jsonb,
		status     TEXT NOT NULL,
		message    TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS console_submissions_created_at_idx
		ON console_submissions (created_at DESC)`,
}

// EnsureSchema creates the tables the console writes to
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
