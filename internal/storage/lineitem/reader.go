package lineitem

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/roi-server/internal/roi"
)

var _ IReader = (*Reader)(nil)

type Reader struct {
	exec  bob.Executor
	table string
}

func NewReader(exec bob.Executor, kind roi.Kind) *Reader {
	return &Reader{exec: exec, table: TableName(kind)}
}

// List returns every line item in the table, oldest first.
func (r *Reader) List(ctx context.Context) ([]*LineItem, error) {
	query := psql.Select(
		sm.Columns(columns...),
		sm.From(psql.Quote(r.table)),
		sm.OrderBy(psql.Quote("created_at")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)

	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[LineItem]())
	if err != nil {
		return nil, err
	}

	result := make([]*LineItem, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
