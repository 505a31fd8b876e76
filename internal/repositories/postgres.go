package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

const preferencesSchema = `
	CREATE TABLE IF NOT EXISTS preferences (
		key TEXT PRIMARY KEY,
		value JSONB NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	)
`

// EnsurePreferencesSchema creates the preferences table when it is missing.
func EnsurePreferencesSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, preferencesSchema); err != nil {
		return fmt.Errorf("%w: create schema: %v", models.ErrPersistence, err)
	}
	return nil
}

// PostgresKVRepository stores preference documents in the preferences table.
type PostgresKVRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPostgresKVRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PostgresKVRepository {
	return &PostgresKVRepository{db: db, txGetter: txGetter}
}

// Get reads the JSON document stored under key.
func (r *PostgresKVRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	const query = `SELECT value::text FROM preferences WHERE key = $1`

	var value string
	err := sqlx.GetContext(ctx, r.executor(ctx), &value, query, key)

	logger.Log.Debugw("preferences query",
		"query", query,
		"args", []any{key},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: get %s: %v", models.ErrPersistence, key, err)
	}
	return []byte(value), true, nil
}

// Set performs an UPSERT of the document stored under key.
func (r *PostgresKVRepository) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO preferences (key, value, updated_at)
		VALUES ($1, $2::jsonb, NOW())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, key, string(value))

	logger.Log.Debugw("preferences query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{key, len(value)},
		"error", err,
	)

	if err != nil {
		return fmt.Errorf("%w: set %s: %v", models.ErrPersistence, key, err)
	}
	return nil
}

func (r *PostgresKVRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}
