package aggregation

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-profit-tracker/internal/models"
)

const dayLayout = "2006-01-02"

// DailyNetProfit is the roll-up of one UTC calendar day
type DailyNetProfit struct {
	Date             string  `json:"date"`
	TotalColumnValue float64 `json:"totalColumnValue"`
	TotalProfit      float64 `json:"totalProfit"`
	NetProfit        float64 `json:"netProfit"`
}

// NetProfitTotals is the field-wise sum of all daily rows
type NetProfitTotals struct {
	TotalColumnValue float64 `json:"totalColumnValue"`
	TotalProfit      float64 `json:"totalProfit"`
	NetProfit        float64 `json:"netProfit"`
}

// NetProfitReport holds the daily rows in ascending date order and their totals
type NetProfitReport struct {
	Daily   []DailyNetProfit `json:"dailyNetProfit"`
	Overall NetProfitTotals  `json:"overallSummary"`
}

type dayBucket struct {
	columnValue decimal.Decimal
	profit      decimal.Decimal
}

// NetProfitSummary buckets every column entry and every profit entry by the UTC
// day of its own date. Numeric column values count as costs:
// netProfit = totalProfit - totalColumnValue.
func NetProfitSummary(columns []models.ColumnDB, weeks []models.WeeklyProfitDB) NetProfitReport {
	buckets := make(map[string]*dayBucket)
	bucket := func(day string) *dayBucket {
		b, ok := buckets[day]
		if !ok {
			b = &dayBucket{columnValue: decimal.Zero, profit: decimal.Zero}
			buckets[day] = b
		}
		return b
	}

	for _, c := range columns {
		for _, e := range c.Entries {
			// text entries still open a day, with nothing added
			b := bucket(e.RecordedAt.UTC().Format(dayLayout))
			if v, ok := e.Value().Number(); ok {
				b.columnValue = b.columnValue.Add(decimal.NewFromFloat(v))
			}
		}
	}

	for _, w := range weeks {
		for _, e := range w.Entries {
			b := bucket(e.EntryDate.UTC().Format(dayLayout))
			b.profit = b.profit.Add(e.Amount)
		}
	}

	days := make([]string, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	// ISO dates sort chronologically as strings
	sort.Strings(days)

	report := NetProfitReport{Daily: make([]DailyNetProfit, 0, len(days))}
	overallColumn, overallProfit := decimal.Zero, decimal.Zero

	for _, day := range days {
		b := buckets[day]
		net := b.profit.Sub(b.columnValue)
		report.Daily = append(report.Daily, DailyNetProfit{
			Date:             day,
			TotalColumnValue: b.columnValue.InexactFloat64(),
			TotalProfit:      b.profit.InexactFloat64(),
			NetProfit:        net.InexactFloat64(),
		})
		overallColumn = overallColumn.Add(b.columnValue)
		overallProfit = overallProfit.Add(b.profit)
	}

	report.Overall = NetProfitTotals{
		TotalColumnValue: overallColumn.InexactFloat64(),
		TotalProfit:      overallProfit.InexactFloat64(),
		NetProfit:        overallProfit.Sub(overallColumn).InexactFloat64(),
	}
	return report
}
