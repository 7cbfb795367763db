package storage

import (
	"database/sql"
	"fmt"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/roi-server/internal/roi"
	"github.com/carson-networks/roi-server/internal/storage/lineitem"
)

// Tx is the transaction behind a Writer.
type Tx interface {
	Commit() error
	Rollback() error
}

type Writer struct {
	tx       Tx
	Revenues lineitem.IWriter
	Expenses lineitem.IWriter
}

func NewWriter(tx *sql.Tx) *Writer {
	exec := bob.NewTx(tx)
	return NewWriterWithTables(
		tx,
		lineitem.NewWriter(exec, roi.KindRevenue),
		lineitem.NewWriter(exec, roi.KindExpense),
	)
}

// NewWriterWithTables builds a Writer from an existing transaction and table writers.
func NewWriterWithTables(tx Tx, revenues, expenses lineitem.IWriter) *Writer {
	return &Writer{
		tx:       tx,
		Revenues: revenues,
		Expenses: expenses,
	}
}

// LineItems returns the table writer for kind.
func (w *Writer) LineItems(kind roi.Kind) (lineitem.IWriter, error) {
	switch kind {
	case roi.KindRevenue:
		return w.Revenues, nil
	case roi.KindExpense:
		return w.Expenses, nil
	default:
		return nil, fmt.Errorf("%w: %v", roi.ErrUnknownKind, kind)
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit()
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback()
}
