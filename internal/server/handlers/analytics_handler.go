package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/flockbook/internal/domain/models"
	"github.com/mamadbah2/flockbook/internal/service/analytics"
	"github.com/mamadbah2/flockbook/internal/service/farm"
)

// AnalyticsHandler exposes the read-side computations over the current
// snapshot: metrics, trends, weekly rollups and the dashboard overview.
type AnalyticsHandler struct {
	svc    *farm.Service
	logger *zap.Logger
	now    func() time.Time
}

// NewAnalyticsHandler constructs the HTTP adapter for the read side.
func NewAnalyticsHandler(svc *farm.Service, logger *zap.Logger) *AnalyticsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsHandler{svc: svc, logger: logger, now: time.Now}
}

// GetMetrics returns the six headline metrics.
func (h *AnalyticsHandler) GetMetrics(c *gin.Context) {
	snap := h.svc.Snapshot()
	c.JSON(http.StatusOK, analytics.ComputeMetrics(&snap))
}

// analyticsResponse bundles everything the analytics view needs in one call.
type analyticsResponse struct {
	Metrics  models.Metrics       `json:"metrics"`
	Trends   analytics.TrendSet   `json:"trends"`
	Weekly   []models.WeekSummary `json:"weekly"`
	Insights []analytics.Insight  `json:"insights"`
}

// GetAnalytics returns metrics, trend deltas, the weekly rollup and the
// derived insights. The optional `days` query limits the records considered
// for trends and rollups to the most recent N days of entries.
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	snap := h.svc.Snapshot()
	records := snap.DailyRecords

	if raw := c.Query("days"); raw != "" {
		if days, err := strconv.Atoi(raw); err == nil && days > 0 && days < len(records) {
			records = analytics.LastNByDate(records, days)
		}
	}

	metrics := analytics.ComputeMetrics(&snap)
	insights := analytics.Insights(metrics)
	if insights == nil {
		insights = []analytics.Insight{}
	}

	c.JSON(http.StatusOK, analyticsResponse{
		Metrics:  metrics,
		Trends:   analytics.ComputeTrends(records),
		Weekly:   analytics.WeeklyRollup(records),
		Insights: insights,
	})
}

// GetOverview returns the dashboard read model.
func (h *AnalyticsHandler) GetOverview(c *gin.Context) {
	snap := h.svc.Snapshot()
	c.JSON(http.StatusOK, analytics.BuildOverview(&snap, h.now()))
}
