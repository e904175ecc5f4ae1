package models

// Metrics is the point-in-time analytical view derived from the full record
// history and current aggregates.
type Metrics struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalCosts        float64 `json:"totalCosts"`
	NetProfit         float64 `json:"netProfit"`
	EggProductionRate float64 `json:"eggProductionRate"`
	MortalityRate     float64 `json:"mortalityRate"`
	FeedEfficiency    float64 `json:"feedEfficiency"`
}

// WeekSummary aggregates the records of one ISO calendar week.
type WeekSummary struct {
	Week            string  `json:"week"` // e.g. "2025-W31"
	TotalEggs       int     `json:"totalEggs"`
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalCosts      float64 `json:"totalCosts"`
	TotalDeaths     int     `json:"totalDeaths"`
	AvgFeedConsumed float64 `json:"avgFeedConsumed"`
	Days            int     `json:"days"`
}
