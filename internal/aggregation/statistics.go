package aggregation

import (
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-profit-tracker/internal/models"
)

// Statistics summarises the numeric values of a column
type Statistics struct {
	Count   int     `json:"count"`
	Total   float64 `json:"total"`
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// ColumnStatistics computes count, total, average, min and max over the numeric
// entries. Text entries are skipped. It returns nil when no entry is numeric.
func ColumnStatistics(entries []models.ColumnEntryDB) *Statistics {
	var (
		count  int
		total  = decimal.Zero
		lo, hi float64
	)

	for _, e := range entries {
		v, ok := e.Value().Number()
		if !ok {
			continue
		}
		if count == 0 || v < lo {
			lo = v
		}
		if count == 0 || v > hi {
			hi = v
		}
		total = total.Add(decimal.NewFromFloat(v))
		count++
	}

	if count == 0 {
		return nil
	}

	return &Statistics{
		Count:   count,
		Total:   total.InexactFloat64(),
		Average: total.Div(decimal.NewFromInt(int64(count))).InexactFloat64(),
		Min:     lo,
		Max:     hi,
	}
}

// FilterEntries returns the entries dated within r. A nil range keeps everything.
func FilterEntries(entries []models.ColumnEntryDB, r *models.DateRange) []models.ColumnEntryDB {
	filtered := make([]models.ColumnEntryDB, 0, len(entries))
	for _, e := range entries {
		if r.Contains(e.RecordedAt) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
