package lineitem

import (
	"context"

	"github.com/carson-networks/roi-server/internal/operator/actions"
	"github.com/carson-networks/roi-server/internal/roi"
)

// LineItem is the API response model for a revenue or expense.
type LineItem struct {
	ID      string  `json:"id" doc:"Line item UUID"`
	Name    string  `json:"name" doc:"Line item name"`
	OneTime float64 `json:"oneTime" doc:"One-time amount"`
	Monthly float64 `json:"monthly" doc:"Recurring monthly amount"`
}

// NewLineItem converts a plain line item into its API model.
func NewLineItem(item roi.LineItem) LineItem {
	return LineItem{
		ID:      item.ID.String(),
		Name:    item.Name,
		OneTime: item.OneTime.InexactFloat64(),
		Monthly: item.Monthly.InexactFloat64(),
	}
}

// NewLineItems converts items, returning an empty slice rather than nil.
func NewLineItems(items []roi.LineItem) []LineItem {
	result := make([]LineItem, len(items))
	for i, item := range items {
		result[i] = NewLineItem(item)
	}
	return result
}

// actionProcessor runs write actions, satisfied by operator.OperatorDelegator.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}
