package analytics

import "github.com/mamadbah2/flockbook/internal/domain/models"

// Insight is a threshold-based advisory derived from the current metrics.
type Insight struct {
	Level   string `json:"level"` // "good", "warning" or "critical"
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Advisory thresholds, expressed in the metric units.
const (
	lowProductionRate  = 70.0
	goodProductionRate = 75.0
	highMortalityRate  = 3.0
	lowFeedEfficiency  = 15.0
)

// Insights evaluates the metrics against the advisory thresholds.
func Insights(metrics models.Metrics) []Insight {
	var insights []Insight

	if metrics.EggProductionRate < lowProductionRate {
		insights = append(insights, Insight{
			Level:   "warning",
			Title:   "Low Production Rate",
			Message: "Production is below optimal levels. Consider reviewing feed quality and flock health.",
		})
	}

	if metrics.MortalityRate > highMortalityRate {
		insights = append(insights, Insight{
			Level:   "critical",
			Title:   "High Mortality",
			Message: "Mortality rate is above normal. Veterinary consultation recommended.",
		})
	}

	if metrics.FeedEfficiency < lowFeedEfficiency {
		insights = append(insights, Insight{
			Level:   "warning",
			Title:   "Feed Efficiency",
			Message: "Feed conversion could be improved. Review feed formula and feeding schedule.",
		})
	}

	if metrics.NetProfit > 0 && metrics.EggProductionRate > goodProductionRate {
		insights = append(insights, Insight{
			Level:   "good",
			Title:   "Excellent Performance",
			Message: "Your farm is performing well with good profitability and production rates.",
		})
	}

	return insights
}
