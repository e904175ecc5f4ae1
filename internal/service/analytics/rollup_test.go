package analytics_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/mamadbah2/flockbook/internal/domain/models"
	"github.com/mamadbah2/flockbook/internal/service/analytics"
)

func TestWeeklyRollupEmptyInput(t *testing.T) {
	if got := analytics.WeeklyRollup(nil); len(got) != 0 {
		t.Fatalf("expected empty rollup, got %v", got)
	}
}

func TestWeeklyRollupGroupsSameISOWeek(t *testing.T) {
	// Monday and Wednesday of ISO week 35, 2025.
	records := []models.DailyRecord{
		{Date: "2025-08-25", EggsCollected: 100, EggsSold: 90, EggPrice: 0.5, FowlDeaths: 1, FeedConsumed: 40, FeedCost: 20},
		{Date: "2025-08-27", EggsCollected: 120, EggsSold: 100, EggPrice: 0.5, FowlDeaths: 2, FeedConsumed: 60, FeedCost: 25},
	}

	weeks := analytics.WeeklyRollup(records)
	if len(weeks) != 1 {
		t.Fatalf("expected one summary, got %d", len(weeks))
	}

	week := weeks[0]
	if week.Week != "2025-W35" {
		t.Fatalf("week key = %q, want 2025-W35", week.Week)
	}
	if week.TotalEggs != 220 {
		t.Fatalf("totalEggs = %d, want 220", week.TotalEggs)
	}
	if !almostEqual(week.TotalRevenue, 95) {
		t.Fatalf("totalRevenue = %v, want 95", week.TotalRevenue)
	}
	if !almostEqual(week.TotalCosts, 45) {
		t.Fatalf("totalCosts = %v, want 45", week.TotalCosts)
	}
	if week.TotalDeaths != 3 {
		t.Fatalf("totalDeaths = %d, want 3", week.TotalDeaths)
	}
	if !almostEqual(week.AvgFeedConsumed, 50) {
		t.Fatalf("avgFeedConsumed = %v, want 50", week.AvgFeedConsumed)
	}
	if week.Days != 2 {
		t.Fatalf("days = %d, want 2", week.Days)
	}
}

func TestWeeklyRollupSeparatesWeeks(t *testing.T) {
	// Sunday closes ISO week 34; the following Monday opens week 35.
	records := []models.DailyRecord{
		{Date: "2025-08-24", EggsCollected: 50},
		{Date: "2025-08-25", EggsCollected: 60},
	}

	weeks := analytics.WeeklyRollup(records)
	if len(weeks) != 2 {
		t.Fatalf("expected two summaries, got %d", len(weeks))
	}
	if weeks[0].Week != "2025-W34" || weeks[1].Week != "2025-W35" {
		t.Fatalf("wrong keys or order: %v, %v", weeks[0].Week, weeks[1].Week)
	}
}

func TestWeeklyRollupYearBoundary(t *testing.T) {
	// 2024-12-30 and 2025-01-01 both fall in ISO week 2025-W01.
	records := []models.DailyRecord{
		{Date: "2024-12-30", EggsCollected: 10},
		{Date: "2025-01-01", EggsCollected: 20},
	}

	weeks := analytics.WeeklyRollup(records)
	if len(weeks) != 1 {
		t.Fatalf("expected one summary across the year boundary, got %d", len(weeks))
	}
	if weeks[0].Week != "2025-W01" {
		t.Fatalf("week key = %q, want 2025-W01", weeks[0].Week)
	}
	if weeks[0].TotalEggs != 30 {
		t.Fatalf("totalEggs = %d, want 30", weeks[0].TotalEggs)
	}
}

func TestWeeklyRollupTruncatesToEightMostRecent(t *testing.T) {
	start := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC) // a Monday
	var records []models.DailyRecord
	for week := 0; week < 12; week++ {
		records = append(records, models.DailyRecord{
			Date:          start.AddDate(0, 0, week*7).Format(models.DateLayout),
			EggsCollected: week,
		})
	}

	weeks := analytics.WeeklyRollup(records)
	if len(weeks) != 8 {
		t.Fatalf("expected 8 summaries, got %d", len(weeks))
	}
	// the four oldest weeks are dropped, order stays chronological
	if weeks[0].TotalEggs != 4 || weeks[7].TotalEggs != 11 {
		t.Fatalf("wrong truncation window: first %d, last %d", weeks[0].TotalEggs, weeks[7].TotalEggs)
	}
	for i := 1; i < len(weeks); i++ {
		if weeks[i-1].Week >= weeks[i].Week {
			t.Fatalf("summaries not ascending: %v", weeks)
		}
	}
}

func TestWeeklyRollupSkipsBadDates(t *testing.T) {
	records := []models.DailyRecord{
		{Date: "2025-08-25", EggsCollected: 10},
		{Date: "not-a-date", EggsCollected: 99},
		{Date: "", EggsCollected: 42},
	}

	weeks := analytics.WeeklyRollup(records)
	if len(weeks) != 1 {
		t.Fatalf("expected one summary, got %d", len(weeks))
	}
	if weeks[0].TotalEggs != 10 {
		t.Fatalf("bad-date records counted: totalEggs = %d", weeks[0].TotalEggs)
	}
}

func TestWeeklyRollupKeyPadding(t *testing.T) {
	weeks := analytics.WeeklyRollup([]models.DailyRecord{{Date: "2025-01-08"}})
	if len(weeks) != 1 {
		t.Fatalf("expected one summary, got %d", len(weeks))
	}
	if want := fmt.Sprintf("%d-W%02d", 2025, 2); weeks[0].Week != want {
		t.Fatalf("week key = %q, want %q", weeks[0].Week, want)
	}
}
