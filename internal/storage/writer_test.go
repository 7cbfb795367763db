package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/roi-server/internal/roi"
	"github.com/carson-networks/roi-server/internal/storage/lineitem"
)

type fakeTx struct {
	committed  bool
	rolledBack bool
	commitErr  error
}

func (f *fakeTx) Commit() error {
	f.committed = true
	return f.commitErr
}

func (f *fakeTx) Rollback() error {
	f.rolledBack = true
	return nil
}

func TestWriter_LineItemsSelectsTableByKind(t *testing.T) {
	revenues := lineitem.NewMockIWriter(t)
	expenses := lineitem.NewMockIWriter(t)
	writer := NewWriterWithTables(&fakeTx{}, revenues, expenses)

	w, err := writer.LineItems(roi.KindRevenue)
	require.NoError(t, err)
	assert.Same(t, revenues, w)

	w, err = writer.LineItems(roi.KindExpense)
	require.NoError(t, err)
	assert.Same(t, expenses, w)
}

func TestWriter_LineItemsUnknownKind(t *testing.T) {
	writer := NewWriterWithTables(&fakeTx{}, lineitem.NewMockIWriter(t), lineitem.NewMockIWriter(t))

	w, err := writer.LineItems(roi.Kind(9))
	assert.ErrorIs(t, err, roi.ErrUnknownKind)
	assert.Nil(t, w)
}

func TestWriter_CommitAndRollbackDelegate(t *testing.T) {
	tx := &fakeTx{commitErr: errors.New("serialization failure")}
	writer := NewWriterWithTables(tx, nil, nil)

	assert.EqualError(t, writer.Commit(), "serialization failure")
	assert.True(t, tx.committed)

	assert.NoError(t, writer.Rollback())
	assert.True(t, tx.rolledBack)
}

func TestTableName(t *testing.T) {
	assert.Equal(t, "revenues", lineitem.TableName(roi.KindRevenue))
	assert.Equal(t, "expenses", lineitem.TableName(roi.KindExpense))
}
