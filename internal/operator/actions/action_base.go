package actions

import (
	"context"

	"github.com/carson-networks/roi-server/internal/storage"
)

// IAction is a unit of work that runs inside a single storage transaction.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
