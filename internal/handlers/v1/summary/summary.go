package summary

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/roi-server/internal/handlers/v1/lineitem"
	"github.com/carson-networks/roi-server/internal/service"
)

// SummaryBody is the aggregate response: every line item plus the derived figures.
type SummaryBody struct {
	Revenues                  []lineitem.LineItem `json:"revenues" doc:"All revenues in creation order"`
	Expenses                  []lineitem.LineItem `json:"expenses" doc:"All expenses in creation order"`
	TimeFrame                 float64             `json:"timeFrame" doc:"Months the totals are projected over"`
	OneTimeRevenue            float64             `json:"oneTimeRevenue"`
	OneTimeExpense            float64             `json:"oneTimeExpense"`
	MonthlyRevenue            float64             `json:"monthlyRevenue"`
	MonthlyExpense            float64             `json:"monthlyExpense"`
	TotalRevenue              float64             `json:"totalRevenue"`
	TotalExpense              float64             `json:"totalExpense"`
	MonthlyContributionProfit float64             `json:"monthlyContributionProfit"`
	TotalContributionProfit   float64             `json:"totalContributionProfit"`
	ContributionMargin        float64             `json:"contributionMargin" doc:"Total profit as a whole-number percentage of total revenue"`
	CapitalROI                float64             `json:"capitalROI" doc:"Months to recoup net one-time spend, one decimal place"`
}

// SummaryOutput is the Huma output shared by both aggregate endpoints.
type SummaryOutput struct {
	Body SummaryBody
}

// reportProvider builds ROI reports, satisfied by service.ROIService.
type reportProvider interface {
	Report(ctx context.Context, timeFrame decimal.Decimal) (*service.ROIReport, error)
}

func newSummaryOutput(report *service.ROIReport) *SummaryOutput {
	s := report.Summary
	return &SummaryOutput{
		Body: SummaryBody{
			Revenues:                  lineitem.NewLineItems(report.Revenues),
			Expenses:                  lineitem.NewLineItems(report.Expenses),
			TimeFrame:                 s.TimeFrame.InexactFloat64(),
			OneTimeRevenue:            s.OneTimeRevenue.InexactFloat64(),
			OneTimeExpense:            s.OneTimeExpense.InexactFloat64(),
			MonthlyRevenue:            s.MonthlyRevenue.InexactFloat64(),
			MonthlyExpense:            s.MonthlyExpense.InexactFloat64(),
			TotalRevenue:              s.TotalRevenue.InexactFloat64(),
			TotalExpense:              s.TotalExpense.InexactFloat64(),
			MonthlyContributionProfit: s.MonthlyContributionProfit.InexactFloat64(),
			TotalContributionProfit:   s.TotalContributionProfit.InexactFloat64(),
			ContributionMargin:        s.ContributionMargin.InexactFloat64(),
			CapitalROI:                s.CapitalROI.InexactFloat64(),
		},
	}
}
