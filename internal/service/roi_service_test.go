package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/roi-server/internal/roi"
	"github.com/carson-networks/roi-server/internal/storage"
	"github.com/carson-networks/roi-server/internal/storage/lineitem"
)

func newTestService(t *testing.T) (*ROIService, *lineitem.MockIReader, *lineitem.MockIReader) {
	t.Helper()
	revenues := lineitem.NewMockIReader(t)
	expenses := lineitem.NewMockIReader(t)
	store := &storage.Storage{Revenues: revenues, Expenses: expenses}
	svc := NewROIService(store)
	return svc, revenues, expenses
}

func makeStorageRow(name string, oneTime, monthly int64) *lineitem.LineItem {
	return &lineitem.LineItem{
		ID:        uuid.Must(uuid.NewV4()),
		Name:      name,
		OneTime:   decimal.NewFromInt(oneTime),
		Monthly:   decimal.NewFromInt(monthly),
		CreatedAt: time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestReport_DefaultTimeFrame(t *testing.T) {
	svc, revenues, expenses := newTestService(t)

	revenueRow := makeStorageRow("Subscriptions", 1000, 100)
	expenseRow := makeStorageRow("Servers", 400, 30)
	revenues.EXPECT().List(mock.Anything).Return([]*lineitem.LineItem{revenueRow}, nil)
	expenses.EXPECT().List(mock.Anything).Return([]*lineitem.LineItem{expenseRow}, nil)

	report, err := svc.Report(context.Background(), decimal.NewFromInt(roi.DefaultTimeFrame))

	require.NoError(t, err)
	require.Len(t, report.Revenues, 1)
	require.Len(t, report.Expenses, 1)
	assert.Equal(t, revenueRow.ID, report.Revenues[0].ID)
	assert.Equal(t, "Subscriptions", report.Revenues[0].Name)
	assert.Equal(t, expenseRow.ID, report.Expenses[0].ID)

	s := report.Summary
	assert.True(t, s.OneTimeRevenue.Equal(decimal.NewFromInt(1000)))
	assert.True(t, s.OneTimeExpense.Equal(decimal.NewFromInt(400)))
	assert.True(t, s.MonthlyRevenue.Equal(decimal.NewFromInt(100)))
	assert.True(t, s.MonthlyExpense.Equal(decimal.NewFromInt(30)))
	assert.True(t, s.TotalRevenue.Equal(decimal.NewFromInt(2200)))
	assert.True(t, s.TotalExpense.Equal(decimal.NewFromInt(760)))
	assert.True(t, s.MonthlyContributionProfit.Equal(decimal.NewFromInt(70)))
	assert.True(t, s.TotalContributionProfit.Equal(decimal.NewFromInt(1440)))
	assert.True(t, s.ContributionMargin.Equal(decimal.NewFromInt(65)))
	assert.True(t, s.CapitalROI.Equal(decimal.RequireFromString("-8.6")))
}

func TestReport_CustomTimeFrame(t *testing.T) {
	svc, revenues, expenses := newTestService(t)

	revenues.EXPECT().List(mock.Anything).Return([]*lineitem.LineItem{makeStorageRow("A", 0, 50)}, nil)
	expenses.EXPECT().List(mock.Anything).Return([]*lineitem.LineItem{makeStorageRow("B", 0, 20)}, nil)

	report, err := svc.Report(context.Background(), decimal.NewFromInt(6))

	require.NoError(t, err)
	assert.True(t, report.Summary.TimeFrame.Equal(decimal.NewFromInt(6)))
	assert.True(t, report.Summary.TotalRevenue.Equal(decimal.NewFromInt(300)))
	assert.True(t, report.Summary.TotalExpense.Equal(decimal.NewFromInt(120)))
}

func TestReport_NoRecords(t *testing.T) {
	svc, revenues, expenses := newTestService(t)

	revenues.EXPECT().List(mock.Anything).Return([]*lineitem.LineItem{}, nil)
	expenses.EXPECT().List(mock.Anything).Return(nil, nil)

	report, err := svc.Report(context.Background(), decimal.NewFromInt(roi.DefaultTimeFrame))

	require.NoError(t, err)
	assert.NotNil(t, report.Revenues)
	assert.NotNil(t, report.Expenses)
	assert.Empty(t, report.Revenues)
	assert.Empty(t, report.Expenses)
	assert.True(t, report.Summary.CapitalROI.IsZero())
	assert.True(t, report.Summary.ContributionMargin.IsZero())
}

func TestReport_RevenueStorageError(t *testing.T) {
	svc, revenues, expenses := newTestService(t)

	revenues.EXPECT().List(mock.Anything).Return(nil, errors.New("database unavailable"))
	expenses.EXPECT().List(mock.Anything).Return([]*lineitem.LineItem{}, nil).Maybe()

	report, err := svc.Report(context.Background(), decimal.NewFromInt(roi.DefaultTimeFrame))

	assert.EqualError(t, err, "list revenues: database unavailable")
	assert.Nil(t, report)
}

func TestReport_ExpenseStorageError(t *testing.T) {
	svc, revenues, expenses := newTestService(t)

	revenues.EXPECT().List(mock.Anything).Return([]*lineitem.LineItem{makeStorageRow("A", 1, 1)}, nil).Maybe()
	expenses.EXPECT().List(mock.Anything).Return(nil, errors.New("connection reset"))

	report, err := svc.Report(context.Background(), decimal.NewFromInt(roi.DefaultTimeFrame))

	assert.EqualError(t, err, "list expenses: connection reset")
	assert.Nil(t, report, "no partial payload")
}

func TestReport_ReadsShareCancellation(t *testing.T) {
	svc, revenues, expenses := newTestService(t)

	revenues.EXPECT().List(mock.Anything).Return(nil, errors.New("database unavailable"))
	expenses.EXPECT().List(mock.Anything).RunAndReturn(func(ctx context.Context) ([]*lineitem.LineItem, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(5 * time.Second):
			return nil, errors.New("expense read was not cancelled")
		}
	}).Maybe()

	_, err := svc.Report(context.Background(), decimal.NewFromInt(roi.DefaultTimeFrame))

	assert.EqualError(t, err, "list revenues: database unavailable")
}
