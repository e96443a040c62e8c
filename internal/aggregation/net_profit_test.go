package aggregation

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-profit-tracker/internal/models"
)

func TestNetProfitSummary(t *testing.T) {
	jan := func(d, h int) time.Time { return time.Date(2024, 1, d, h, 0, 0, 0, time.UTC) }

	columns := []models.ColumnDB{
		{
			ColumnName: "fuel",
			Entries: []models.ColumnEntryDB{
				entry(models.NumberValue(10), jan(2, 8)),
				entry(models.NumberValue(20), jan(2, 18)),
				entry(models.TextValue("skipped"), jan(4, 9)),
			},
		},
		{
			ColumnName: "food",
			Entries: []models.ColumnEntryDB{
				entry(models.NumberValue(5), jan(3, 12)),
			},
		},
	}
	weeks := []models.WeeklyProfitDB{
		{
			Entries: []models.ProfitEntryDB{
				{EntryDate: jan(3, 10), Amount: decimal.NewFromInt(40)},
				{EntryDate: jan(2, 10), Amount: decimal.NewFromInt(80)},
			},
		},
	}

	want := NetProfitReport{
		Daily: []DailyNetProfit{
			{Date: "2024-01-02", TotalColumnValue: 30, TotalProfit: 80, NetProfit: 50},
			{Date: "2024-01-03", TotalColumnValue: 5, TotalProfit: 40, NetProfit: 35},
			{Date: "2024-01-04", TotalColumnValue: 0, TotalProfit: 0, NetProfit: 0},
		},
		Overall: NetProfitTotals{TotalColumnValue: 35, TotalProfit: 120, NetProfit: 85},
	}

	got := NetProfitSummary(columns, weeks)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NetProfitSummary mismatch (-want +got):\n%s", diff)
	}
}

func TestNetProfitSummary_Empty(t *testing.T) {
	got := NetProfitSummary(nil, nil)

	want := NetProfitReport{Daily: []DailyNetProfit{}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NetProfitSummary mismatch (-want +got):\n%s", diff)
	}
}

func TestNetProfitSummary_BucketsByUTCDay(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)

	weeks := []models.WeeklyProfitDB{
		{
			Entries: []models.ProfitEntryDB{
				// 2024-01-05 22:00 at -05:00 is 2024-01-06 in UTC
				{EntryDate: time.Date(2024, 1, 5, 22, 0, 0, 0, loc), Amount: decimal.NewFromInt(10)},
			},
		},
	}

	got := NetProfitSummary(nil, weeks)
	if len(got.Daily) != 1 || got.Daily[0].Date != "2024-01-06" {
		t.Fatalf("unexpected days: %+v", got.Daily)
	}
}

func TestNetProfitSummary_ProfitOnlyDaysAndLosses(t *testing.T) {
	day := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	columns := []models.ColumnDB{
		{Entries: []models.ColumnEntryDB{entry(models.NumberValue(100), day)}},
	}
	weeks := []models.WeeklyProfitDB{
		{Entries: []models.ProfitEntryDB{{EntryDate: day, Amount: decimal.NewFromInt(25)}}},
	}

	got := NetProfitSummary(columns, weeks)
	want := NetProfitTotals{TotalColumnValue: 100, TotalProfit: 25, NetProfit: -75}
	if diff := cmp.Diff(want, got.Overall); diff != "" {
		t.Errorf("overall mismatch (-want +got):\n%s", diff)
	}
}
