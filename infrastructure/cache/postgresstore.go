package cache

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/arizon-automation/sales-dashboard/infrastructure/database/postgres"
	"github.com/arizon-automation/sales-dashboard/pkg/log"
)

const responseCacheTable = "response_cache"

// PostgresStore keeps cache entries in a single table so multiple API
// instances share one cache.
type PostgresStore struct {
	db  postgres.Queryer
	ttl time.Duration
}

func NewPostgresStore(ctx context.Context, db postgres.Queryer, ttl time.Duration) (*PostgresStore, error) {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS response_cache (
			key TEXT PRIMARY KEY,
			payload BYTEA NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("creating response_cache table: %w", err)
	}

	return &PostgresStore{db: db, ttl: ttl}, nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, bool) {
	query, args, err := squirrel.
		Select("payload").
		From(responseCacheTable).
		Where(squirrel.Eq{"key": key}).
		Where(squirrel.Gt{"updated_at": time.Now().Add(-s.ttl)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		log.L.WithError(err).WithField("key", key).Warn("cache read failed, treating as miss")
		return nil, false
	}

	var payload []byte
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&payload); err != nil {
		if err != sql.ErrNoRows {
			log.L.WithError(err).WithField("key", key).Warn("cache read failed, treating as miss")
		}
		return nil, false
	}

	return payload, true
}

func (s *PostgresStore) Set(ctx context.Context, key string, payload []byte) {
	query, args, err := squirrel.
		Insert(responseCacheTable).
		Columns("key", "payload", "updated_at").
		Values(key, payload, time.Now()).
		Suffix(`
			ON CONFLICT (key) DO UPDATE SET
				payload = EXCLUDED.payload,
				updated_at = EXCLUDED.updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		log.L.WithError(err).WithField("key", key).Warn("cache write failed")
		return
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		log.L.WithError(err).WithField("key", key).Warn("cache write failed")
	}
}

func (s *PostgresStore) Clear(ctx context.Context) error {
	query, args, err := squirrel.
		Delete(responseCacheTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building delete query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clearing cache table: %w", err)
	}

	return nil
}
