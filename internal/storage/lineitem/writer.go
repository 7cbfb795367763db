package lineitem

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/roi-server/internal/roi"
)

var _ IWriter = (*Writer)(nil)

type Writer struct {
	tx bob.Executor
	Reader
}

func NewWriter(tx bob.Executor, kind roi.Kind) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec:  tx,
			table: TableName(kind),
		},
	}
}

// Insert creates a line item and returns the stored row, including its generated ID.
func (w *Writer) Insert(ctx context.Context, create *LineItemCreate) (*LineItem, error) {
	query := psql.Insert(
		im.Into(psql.Quote(w.table), "name", "one_time", "monthly"),
		im.Values(psql.Arg(create.Name, create.OneTime, create.Monthly)),
		im.Returning(columns...),
	)

	row, err := bob.One(ctx, w.tx, query, scan.StructMapper[LineItem]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Delete removes the line item with the given ID and reports how many rows matched.
func (w *Writer) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	query := psql.Delete(
		dm.From(psql.Quote(w.table)),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	result, err := bob.Exec(ctx, w.tx, query)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
