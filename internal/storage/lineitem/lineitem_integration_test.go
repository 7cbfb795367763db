//go:build integration

package lineitem_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/carson-networks/roi-server/internal/roi"
	"github.com/carson-networks/roi-server/internal/storage"
	"github.com/carson-networks/roi-server/internal/storage/lineitem"
)

func setupDatabase(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("roi"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("testpassword"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pre, post, err := storage.RunMigrations(dsn)
	require.NoError(t, err)
	assert.Equal(t, uint(0), pre)
	assert.Equal(t, uint(1), post)

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLineItems_InsertListDelete(t *testing.T) {
	ctx := context.Background()
	db := setupDatabase(t)
	exec := bob.NewDB(db)

	revenues := lineitem.NewWriter(exec, roi.KindRevenue)
	expenses := lineitem.NewReader(exec, roi.KindExpense)

	created, err := revenues.Insert(ctx, &lineitem.LineItemCreate{
		Name:    "Consulting",
		OneTime: decimal.RequireFromString("1000.50"),
		Monthly: decimal.Zero,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "Consulting", created.Name)
	assert.True(t, created.OneTime.Equal(decimal.RequireFromString("1000.50")))
	assert.True(t, created.Monthly.IsZero())
	assert.False(t, created.CreatedAt.IsZero())

	rows, err := revenues.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, created.ID, rows[0].ID)

	expenseRows, err := expenses.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, expenseRows, "tables are independent")

	deleted, err := revenues.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	deleted, err = revenues.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted, "deleting a missing id is not an error")
}

func TestStorage_WriteRollbackDiscardsInsert(t *testing.T) {
	ctx := context.Background()
	store := storage.New(setupDatabase(t))

	writer, err := store.Write(ctx)
	require.NoError(t, err)

	expenses, err := writer.LineItems(roi.KindExpense)
	require.NoError(t, err)
	_, err = expenses.Insert(ctx, &lineitem.LineItemCreate{
		Name:    "Servers",
		OneTime: decimal.NewFromInt(400),
		Monthly: decimal.NewFromInt(30),
	})
	require.NoError(t, err)
	require.NoError(t, writer.Rollback())

	rows, err := store.Expenses.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
