package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/roi-server/internal/roi"
	"github.com/carson-networks/roi-server/internal/storage/lineitem"
)

type Reader struct {
	Revenues *lineitem.Reader
	Expenses *lineitem.Reader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Revenues: lineitem.NewReader(exec, roi.KindRevenue),
		Expenses: lineitem.NewReader(exec, roi.KindExpense),
	}
}
