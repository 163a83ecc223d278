package cache

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arizon-automation/sales-dashboard/pkg/log"
)

// fakeQueryer records every statement executed against it.
type fakeQueryer struct {
	execs   []string
	args    [][]interface{}
	execErr error
}

func (f *fakeQueryer) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	f.execs = append(f.execs, query)
	f.args = append(f.args, args)
	return nil, f.execErr
}

func (f *fakeQueryer) QueryContext(_ context.Context, _ string, _ ...interface{}) (*sql.Rows, error) {
	return nil, sql.ErrNoRows
}

func (f *fakeQueryer) QueryRowContext(_ context.Context, _ string, _ ...interface{}) *sql.Row {
	return nil
}

func TestNewPostgresStore(t *testing.T) {
	log.SetupTestLogger()

	t.Run("bootstraps the cache table", func(t *testing.T) {
		db := &fakeQueryer{}

		store, err := NewPostgresStore(context.Background(), db, 2*time.Hour)

		require.NoError(t, err)
		require.NotNil(t, store)
		require.Len(t, db.execs, 1)
		assert.Contains(t, db.execs[0], "CREATE TABLE IF NOT EXISTS response_cache")
	})

	t.Run("table bootstrap failure is returned", func(t *testing.T) {
		db := &fakeQueryer{execErr: assert.AnError}

		_, err := NewPostgresStore(context.Background(), db, 2*time.Hour)

		assert.Error(t, err)
	})
}

func TestPostgresStore_Set(t *testing.T) {
	log.SetupTestLogger()

	db := &fakeQueryer{}
	store, err := NewPostgresStore(context.Background(), db, 2*time.Hour)
	require.NoError(t, err)

	store.Set(context.Background(), "sales_orders/2024-05-01/2024-05-16", []byte(`[]`))

	require.Len(t, db.execs, 2)
	assert.Contains(t, db.execs[1], "INSERT INTO response_cache")
	assert.Contains(t, db.execs[1], "ON CONFLICT (key) DO UPDATE SET")
	require.NotEmpty(t, db.args[1])
	assert.Equal(t, "sales_orders/2024-05-01/2024-05-16", db.args[1][0])
}

func TestPostgresStore_Clear(t *testing.T) {
	log.SetupTestLogger()

	db := &fakeQueryer{}
	store, err := NewPostgresStore(context.Background(), db, 2*time.Hour)
	require.NoError(t, err)

	require.NoError(t, store.Clear(context.Background()))

	require.Len(t, db.execs, 2)
	assert.Contains(t, db.execs[1], "DELETE FROM response_cache")
}
