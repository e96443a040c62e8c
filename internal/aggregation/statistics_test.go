package aggregation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-profit-tracker/internal/models"
)

func entry(v models.EntryValue, at time.Time) models.ColumnEntryDB {
	var e models.ColumnEntryDB
	e.SetValue(v)
	e.RecordedAt = at
	return e
}

func TestColumnStatistics(t *testing.T) {
	now := time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		entries []models.ColumnEntryDB
		want    *Statistics
	}{
		{
			name: "mixed values skip text",
			entries: []models.ColumnEntryDB{
				entry(models.NumberValue(5), now),
				entry(models.TextValue("n/a"), now),
				entry(models.NumberValue(15), now),
			},
			want: &Statistics{Count: 2, Total: 20, Average: 10, Min: 5, Max: 15},
		},
		{
			name: "only text",
			entries: []models.ColumnEntryDB{
				entry(models.TextValue("a"), now),
				entry(models.TextValue("b"), now),
			},
			want: nil,
		},
		{
			name:    "no entries",
			entries: nil,
			want:    nil,
		},
		{
			name: "negative values",
			entries: []models.ColumnEntryDB{
				entry(models.NumberValue(-3), now),
				entry(models.NumberValue(-1), now),
			},
			want: &Statistics{Count: 2, Total: -4, Average: -2, Min: -3, Max: -1},
		},
		{
			name: "single value",
			entries: []models.ColumnEntryDB{
				entry(models.NumberValue(0.1), now),
			},
			want: &Statistics{Count: 1, Total: 0.1, Average: 0.1, Min: 0.1, Max: 0.1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ColumnStatistics(tt.entries)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestColumnStatistics_DecimalSum(t *testing.T) {
	now := time.Now()
	got := ColumnStatistics([]models.ColumnEntryDB{
		entry(models.NumberValue(0.1), now),
		entry(models.NumberValue(0.2), now),
	})
	require.NotNil(t, got)
	assert.Equal(t, 0.3, got.Total)
}

func TestFilterEntries(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	entries := []models.ColumnEntryDB{
		entry(models.NumberValue(1), day(1)),
		entry(models.NumberValue(2), day(5)),
		entry(models.NumberValue(3), day(10)),
	}

	start, end := day(5), day(10)

	t.Run("nil range keeps all", func(t *testing.T) {
		assert.Len(t, FilterEntries(entries, nil), 3)
	})

	t.Run("inclusive bounds", func(t *testing.T) {
		got := FilterEntries(entries, &models.DateRange{Start: &start, End: &end})
		require.Len(t, got, 2)
		assert.Equal(t, day(5), got[0].RecordedAt)
		assert.Equal(t, day(10), got[1].RecordedAt)
	})

	t.Run("open end", func(t *testing.T) {
		got := FilterEntries(entries, &models.DateRange{Start: &end})
		require.Len(t, got, 1)
	})

	t.Run("open start", func(t *testing.T) {
		got := FilterEntries(entries, &models.DateRange{End: &start})
		require.Len(t, got, 2)
	})

	t.Run("empty result is not nil", func(t *testing.T) {
		later := day(20)
		got := FilterEntries(entries, &models.DateRange{Start: &later})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
