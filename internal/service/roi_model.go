package service

import (
	"github.com/carson-networks/roi-server/internal/roi"
)

// ROIReport is the aggregate view of every revenue and expense together
// with the figures derived from them.
type ROIReport struct {
	Revenues []roi.LineItem
	Expenses []roi.LineItem
	Summary  roi.Summary
}
