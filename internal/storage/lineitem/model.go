package lineitem

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/roi-server/internal/roi"
)

// LineItem represents a revenue or expense record.
type LineItem struct {
	ID        uuid.UUID       `db:"id"`
	Name      string          `db:"name"`
	OneTime   decimal.Decimal `db:"one_time"`
	Monthly   decimal.Decimal `db:"monthly"`
	CreatedAt time.Time       `db:"created_at"`
}

// LineItemCreate is the input for creating a new line item.
type LineItemCreate struct {
	Name    string
	OneTime decimal.Decimal
	Monthly decimal.Decimal
}

// IReader defines the read operations of a line item table.
//
//go:generate mockery --name IReader --inpackage --with-expecter --filename mock_IReader.go
type IReader interface {
	List(ctx context.Context) ([]*LineItem, error)
}

// IWriter defines the write operations of a line item table.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name IWriter --inpackage --with-expecter --filename mock_IWriter.go
type IWriter interface {
	Insert(ctx context.Context, create *LineItemCreate) (*LineItem, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

var columns = []any{"id", "name", "one_time", "monthly", "created_at"}

// TableName returns the table that stores line items of the given kind.
func TableName(kind roi.Kind) string {
	if kind == roi.KindExpense {
		return "expenses"
	}
	return "revenues"
}

// Plain returns the record as a value with no storage fields attached.
func (l *LineItem) Plain() roi.LineItem {
	return roi.LineItem{
		ID:      l.ID,
		Name:    l.Name,
		OneTime: l.OneTime,
		Monthly: l.Monthly,
	}
}
