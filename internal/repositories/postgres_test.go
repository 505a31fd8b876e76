package repositories

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

const selectPreference = `SELECT value::text FROM preferences WHERE key = $1`

func setupSQLMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestPostgresKVRepository_Get(t *testing.T) {
	db, mock := setupSQLMock(t)
	repo := NewPostgresKVRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta(selectPreference)).
		WithArgs("favorites").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`["INR", "EUR"]`))

	value, found, err := repo.Get(context.Background(), "favorites")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `["INR","EUR"]`, string(value))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresKVRepository_GetMissing(t *testing.T) {
	db, mock := setupSQLMock(t)
	repo := NewPostgresKVRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta(selectPreference)).
		WithArgs("favorites").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	value, found, err := repo.Get(context.Background(), "favorites")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresKVRepository_GetError(t *testing.T) {
	db, mock := setupSQLMock(t)
	repo := NewPostgresKVRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta(selectPreference)).
		WithArgs("favorites").
		WillReturnError(errors.New("connection reset"))

	_, found, err := repo.Get(context.Background(), "favorites")
	assert.ErrorIs(t, err, models.ErrPersistence)
	assert.False(t, found)
}

func TestPostgresKVRepository_Set(t *testing.T) {
	db, mock := setupSQLMock(t)
	repo := NewPostgresKVRepository(db, nil)

	mock.ExpectExec("INSERT INTO preferences").
		WithArgs("favorites", `["INR"]`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Set(context.Background(), "favorites", []byte(`["INR"]`))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresKVRepository_SetError(t *testing.T) {
	db, mock := setupSQLMock(t)
	repo := NewPostgresKVRepository(db, nil)

	mock.ExpectExec("INSERT INTO preferences").
		WillReturnError(errors.New("disk full"))

	err := repo.Set(context.Background(), "favorites", []byte(`[]`))
	assert.ErrorIs(t, err, models.ErrPersistence)
}

func TestPostgresKVRepository_UsesTransactionFromContext(t *testing.T) {
	db, mock := setupSQLMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO preferences").
		WithArgs("conversionHistory", `[]`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)

	repo := NewPostgresKVRepository(db, func(ctx context.Context) *sqlx.Tx { return tx })

	require.NoError(t, repo.Set(context.Background(), "conversionHistory", []byte(`[]`)))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsurePreferencesSchema(t *testing.T) {
	db, mock := setupSQLMock(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS preferences").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, EnsurePreferencesSchema(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	require.NoError(t, EnsurePreferencesSchema(ctx, db))

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

func TestPostgresKVRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	repo := NewPostgresKVRepository(db, nil)

	_, found, err := repo.Get(ctx, "favorites")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.Set(ctx, "favorites", []byte(`["INR","EUR"]`)))
	require.NoError(t, repo.Set(ctx, "favorites", []byte(`["GBP"]`)))

	value, found, err := repo.Get(ctx, "favorites")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `["GBP"]`, string(value))

	var rows int
	require.NoError(t, db.Get(&rows, `SELECT COUNT(*) FROM preferences`))
	assert.Equal(t, 1, rows)
}
