package roi

import (
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// ErrUnknownKind is returned when a line item type is neither revenue nor expenses.
var ErrUnknownKind = errors.New("unknown line item type")

// Kind selects which store a line item belongs to.
type Kind int8

const (
	KindRevenue Kind = iota
	KindExpense
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindRevenue:
		return "revenue"
	case KindExpense:
		return "expenses"
	default:
		return fmt.Sprintf("Kind(%d)", int8(k))
	}
}

// ParseKind maps the wire name of a kind ("revenue" or "expenses") to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "revenue":
		return KindRevenue, nil
	case "expenses":
		return KindExpense, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// LineItem is a plain revenue or expense entry, detached from the store that produced it.
type LineItem struct {
	ID      uuid.UUID
	Name    string
	OneTime decimal.Decimal
	Monthly decimal.Decimal
}
