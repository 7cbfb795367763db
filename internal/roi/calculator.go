package roi

import (
	"github.com/shopspring/decimal"
)

// DefaultTimeFrame is the number of months used when the caller does not pick one.
const DefaultTimeFrame = 12

var hundred = decimal.NewFromInt(100)

// SumOneTime adds up the one-time amounts of items.
func SumOneTime(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.OneTime)
	}
	return sum
}

// SumMonthly adds up the monthly amounts of items.
func SumMonthly(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Monthly)
	}
	return sum
}

// ProjectedTotal projects a one-time sum and a monthly sum over months.
func ProjectedTotal(oneTimeSum, monthlySum, months decimal.Decimal) decimal.Decimal {
	return oneTimeSum.Add(monthlySum.Mul(months))
}

// ContributionProfit is revenue minus expense. It may be negative.
func ContributionProfit(revenueSum, expenseSum decimal.Decimal) decimal.Decimal {
	return revenueSum.Sub(expenseSum)
}

// ContributionMargin returns profit as a whole-number percentage of revenue.
// Zero revenue yields a margin of 0.
func ContributionMargin(revenueSum, profit decimal.Decimal) decimal.Decimal {
	if revenueSum.IsZero() {
		return decimal.Zero
	}
	return profit.Div(revenueSum).Mul(hundred).Round(0)
}

// CapitalROI returns the net one-time investment divided by the monthly
// contribution profit, rounded to one decimal place.
//
// The result is 0 when both totals are zero, or when the monthly profit is
// zero and the ratio would be undefined.
func CapitalROI(totalExpense, totalRevenue, oneTimeExpense, oneTimeRevenue, monthlyProfit decimal.Decimal) decimal.Decimal {
	if totalExpense.IsZero() && totalRevenue.IsZero() {
		return decimal.Zero
	}
	if monthlyProfit.IsZero() {
		return decimal.Zero
	}
	return oneTimeExpense.Sub(oneTimeRevenue).Div(monthlyProfit).Round(1)
}
