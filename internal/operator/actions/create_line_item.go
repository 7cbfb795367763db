package actions

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/roi-server/internal/roi"
	"github.com/carson-networks/roi-server/internal/storage"
	"github.com/carson-networks/roi-server/internal/storage/lineitem"
)

var _ IAction = (*CreateLineItem)(nil)

// CreateLineItem inserts a revenue or expense. Created holds the stored
// record once Perform succeeds.
type CreateLineItem struct {
	Kind    roi.Kind
	Name    string
	OneTime decimal.Decimal
	Monthly decimal.Decimal

	Created roi.LineItem
}

func (c *CreateLineItem) Perform(ctx context.Context, writer *storage.Writer) error {
	table, err := writer.LineItems(c.Kind)
	if err != nil {
		return err
	}

	row, err := table.Insert(ctx, &lineitem.LineItemCreate{
		Name:    c.Name,
		OneTime: c.OneTime,
		Monthly: c.Monthly,
	})
	if err != nil {
		return fmt.Errorf("insert %v: %w", c.Kind, err)
	}

	c.Created = row.Plain()
	return nil
}
