package aggregation

import (
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-profit-tracker/internal/models"
)

// WeeklyStats summarises a list of weekly profit records
type WeeklyStats struct {
	TotalWeeks          int     `json:"totalWeeks"`
	TotalProfit         float64 `json:"totalProfit"`
	AverageWeeklyProfit float64 `json:"averageWeeklyProfit"`
}

// SumAmounts adds up the amounts of the given profit entries.
func SumAmounts(entries []models.ProfitEntryDB) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total
}

// WeeklySummary totals the records and averages them per week.
// The average of zero weeks is zero.
func WeeklySummary(records []models.WeeklyProfitDB) WeeklyStats {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.TotalProfit)
	}

	stats := WeeklyStats{
		TotalWeeks:  len(records),
		TotalProfit: total.InexactFloat64(),
	}
	if len(records) > 0 {
		stats.AverageWeeklyProfit = total.Div(decimal.NewFromInt(int64(len(records)))).InexactFloat64()
	}
	return stats
}
