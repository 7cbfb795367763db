package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/roi-server/internal/roi"
	"github.com/carson-networks/roi-server/internal/storage"
)

var _ IAction = (*DeleteLineItem)(nil)

// DeleteLineItem removes a revenue or expense by ID. A missing ID is not an
// error; Deleted reports how many rows matched.
type DeleteLineItem struct {
	Kind roi.Kind
	ID   uuid.UUID

	Deleted int64
}

func (d *DeleteLineItem) Perform(ctx context.Context, writer *storage.Writer) error {
	table, err := writer.LineItems(d.Kind)
	if err != nil {
		return err
	}

	deleted, err := table.Delete(ctx, d.ID)
	if err != nil {
		return fmt.Errorf("delete %v %s: %w", d.Kind, d.ID, err)
	}

	d.Deleted = deleted
	return nil
}
