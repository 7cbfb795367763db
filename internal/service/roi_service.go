package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/roi-server/internal/logging"
	"github.com/carson-networks/roi-server/internal/roi"
	"github.com/carson-networks/roi-server/internal/storage"
	"github.com/carson-networks/roi-server/internal/storage/lineitem"
)

// ROIService handles the ROI business logic.
type ROIService struct {
	storage *storage.Storage
}

// NewROIService creates a new ROIService.
func NewROIService(store *storage.Storage) *ROIService {
	return &ROIService{storage: store}
}

// Report loads all revenues and expenses and projects them over timeFrame months.
// Both collections are read concurrently; if either read fails no report is returned.
func (s *ROIService) Report(ctx context.Context, timeFrame decimal.Decimal) (*ROIReport, error) {
	var revenues, expenses []roi.LineItem

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		items, err := listPlain(groupCtx, s.storage.Revenues, "listRevenuesMs")
		if err != nil {
			return fmt.Errorf("list revenues: %w", err)
		}
		revenues = items
		return nil
	})
	group.Go(func() error {
		items, err := listPlain(groupCtx, s.storage.Expenses, "listExpensesMs")
		if err != nil {
			return fmt.Errorf("list expenses: %w", err)
		}
		expenses = items
		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return &ROIReport{
		Revenues: revenues,
		Expenses: expenses,
		Summary:  roi.Calculate(revenues, expenses, timeFrame),
	}, nil
}

func listPlain(ctx context.Context, reader lineitem.IReader, timingName string) ([]roi.LineItem, error) {
	if logData := logging.GetLogData(ctx); logData != nil {
		defer logData.AddTiming(timingName)()
	}

	rows, err := reader.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]roi.LineItem, len(rows))
	for i, row := range rows {
		items[i] = row.Plain()
	}
	return items, nil
}
