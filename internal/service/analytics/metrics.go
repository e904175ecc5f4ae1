package analytics

import (
	"github.com/mamadbah2/flockbook/internal/domain/models"
)

// ComputeMetrics derives the analytical metrics from the full record history
// and the current aggregates. Every division guards its zero-denominator
// case by yielding 0, so an empty or zero state is valid input and produces
// an all-zero result.
func ComputeMetrics(state *models.FarmState) models.Metrics {
	if state == nil {
		return models.Metrics{}
	}

	var (
		totalRevenue float64
		totalCosts   float64
		totalEggs    int
		totalDeaths  int
		totalFeed    float64
	)

	for _, record := range state.DailyRecords {
		totalRevenue += record.Revenue()
		totalCosts += record.FeedCost
		totalEggs += record.EggsCollected
		totalDeaths += record.FowlDeaths
		totalFeed += record.FeedConsumed
	}

	metrics := models.Metrics{
		TotalRevenue: totalRevenue,
		TotalCosts:   totalCosts,
		NetProfit:    totalRevenue - totalCosts,
	}

	recordCount := len(state.DailyRecords)
	if state.TotalFowls > 0 && recordCount > 0 {
		metrics.EggProductionRate = float64(totalEggs) / (float64(state.TotalFowls) * float64(recordCount)) * 100
	}
	if state.TotalFowls > 0 {
		metrics.MortalityRate = float64(totalDeaths) / float64(state.TotalFowls) * 100
	}
	if totalFeed > 0 {
		metrics.FeedEfficiency = float64(totalEggs) / totalFeed
	}

	return metrics
}
