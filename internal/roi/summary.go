package roi

import (
	"github.com/shopspring/decimal"
)

// Summary holds every figure derived from a set of revenues and expenses.
type Summary struct {
	TimeFrame                 decimal.Decimal
	OneTimeRevenue            decimal.Decimal
	OneTimeExpense            decimal.Decimal
	MonthlyRevenue            decimal.Decimal
	MonthlyExpense            decimal.Decimal
	TotalRevenue              decimal.Decimal
	TotalExpense              decimal.Decimal
	MonthlyContributionProfit decimal.Decimal
	TotalContributionProfit   decimal.Decimal
	ContributionMargin        decimal.Decimal
	CapitalROI                decimal.Decimal
}

// Calculate derives the summary for revenues and expenses projected over months.
func Calculate(revenues, expenses []LineItem, months decimal.Decimal) Summary {
	s := Summary{TimeFrame: months}

	s.OneTimeRevenue = SumOneTime(revenues)
	s.OneTimeExpense = SumOneTime(expenses)
	s.MonthlyRevenue = SumMonthly(revenues)
	s.MonthlyExpense = SumMonthly(expenses)
	s.TotalRevenue = ProjectedTotal(s.OneTimeRevenue, s.MonthlyRevenue, months)
	s.TotalExpense = ProjectedTotal(s.OneTimeExpense, s.MonthlyExpense, months)
	s.MonthlyContributionProfit = ContributionProfit(s.MonthlyRevenue, s.MonthlyExpense)
	s.TotalContributionProfit = ContributionProfit(s.TotalRevenue, s.TotalExpense)
	s.ContributionMargin = ContributionMargin(s.TotalRevenue, s.TotalContributionProfit)
	s.CapitalROI = CapitalROI(s.TotalExpense, s.TotalRevenue, s.OneTimeExpense, s.OneTimeRevenue, s.MonthlyContributionProfit)

	return s
}
