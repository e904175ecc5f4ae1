package analytics

import (
	"sort"

	"github.com/mamadbah2/flockbook/internal/domain/models"
)

// DefaultTrendWindow is the number of observations compared against the
// window immediately preceding it.
const DefaultTrendWindow = 7

// Trend computes the percent change between the average of the most recent
// `window` observations and the average of the `window` observations before
// them. Chronological order is expected. It returns 0 when there are fewer
// observations than the window, when no previous window exists, or when the
// previous average is 0.
func Trend(series []float64, window int) float64 {
	if window <= 0 || len(series) < window {
		return 0
	}

	recent := series[len(series)-window:]
	previousStart := len(series) - 2*window
	if previousStart < 0 {
		previousStart = 0
	}
	previous := series[previousStart : len(series)-window]
	if len(previous) == 0 {
		return 0
	}

	recentAvg := average(recent)
	previousAvg := average(previous)
	if previousAvg == 0 {
		return 0
	}

	return (recentAvg - previousAvg) / previousAvg * 100
}

// TrendSet bundles the period-over-period deltas shown on the analytics view.
type TrendSet struct {
	Eggs      float64 `json:"eggs"`
	Revenue   float64 `json:"revenue"`
	Mortality float64 `json:"mortality"`
}

// ComputeTrends derives egg, revenue and mortality trends from the records,
// sorted by date ascending, over the default window.
func ComputeTrends(records []models.DailyRecord) TrendSet {
	sorted := sortByDate(records)

	eggs := make([]float64, len(sorted))
	revenue := make([]float64, len(sorted))
	deaths := make([]float64, len(sorted))
	for i, record := range sorted {
		eggs[i] = float64(record.EggsCollected)
		revenue[i] = record.Revenue()
		deaths[i] = float64(record.FowlDeaths)
	}

	return TrendSet{
		Eggs:      Trend(eggs, DefaultTrendWindow),
		Revenue:   Trend(revenue, DefaultTrendWindow),
		Mortality: Trend(deaths, DefaultTrendWindow),
	}
}

func average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// LastNByDate returns the n most recent records, date-ascending.
func LastNByDate(records []models.DailyRecord, n int) []models.DailyRecord {
	sorted := sortByDate(records)
	if n <= 0 {
		return nil
	}
	if n >= len(sorted) {
		return sorted
	}
	return sorted[len(sorted)-n:]
}

// sortByDate returns a date-ascending copy. ISO dates compare correctly as
// strings.
func sortByDate(records []models.DailyRecord) []models.DailyRecord {
	sorted := make([]models.DailyRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})
	return sorted
}
