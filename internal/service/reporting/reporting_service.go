package reporting

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/mamadbah2/flockbook/internal/domain/models"
	"github.com/mamadbah2/flockbook/internal/service/analytics"
)

// reportedWeeks limits the weekly report to the most recent summaries.
const reportedWeeks = 2

// SnapshotProvider supplies the current read-only farm state.
type SnapshotProvider interface {
	Snapshot() models.FarmState
}

// Service renders plain-text farm summaries for scheduled delivery.
type Service struct {
	farm   SnapshotProvider
	logger *zap.Logger
}

// NewService wires a new reporting service instance.
func NewService(farm SnapshotProvider, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{farm: farm, logger: logger}
}

// BuildWeeklyReport assembles the weekly performance report from the current
// state. A farm with no records yet still produces a well-formed message.
func (s *Service) BuildWeeklyReport() string {
	state := s.farm.Snapshot()
	metrics := analytics.ComputeMetrics(&state)
	weeks := analytics.WeeklyRollup(state.DailyRecords)

	var b strings.Builder
	b.WriteString("Weekly farm report\n")
	fmt.Fprintf(&b, "Flock: %d birds, %d eggs collected to date.\n", state.TotalFowls, state.TotalEggs)
	fmt.Fprintf(&b, "Revenue %.2f, costs %.2f, net profit %.2f.\n", metrics.TotalRevenue, metrics.TotalCosts, metrics.NetProfit)
	fmt.Fprintf(&b, "Production rate %.1f%%, mortality %.2f%%, feed efficiency %.2f eggs/kg.\n",
		round1(metrics.EggProductionRate), round2(metrics.MortalityRate), metrics.FeedEfficiency)

	if len(weeks) == 0 {
		b.WriteString("No records logged yet.")
		s.logger.Debug("weekly report built without records")
		return b.String()
	}

	start := len(weeks) - reportedWeeks
	if start < 0 {
		start = 0
	}
	for _, week := range weeks[start:] {
		fmt.Fprintf(&b, "%s: %d eggs across %d days, revenue %.0f, feed cost %.0f", week.Week, week.TotalEggs, week.Days, week.TotalRevenue, week.TotalCosts)
		if week.TotalDeaths > 0 {
			fmt.Fprintf(&b, ", %d deaths", week.TotalDeaths)
		}
		b.WriteString(".\n")
	}

	for _, insight := range analytics.Insights(metrics) {
		fmt.Fprintf(&b, "%s: %s\n", insight.Title, insight.Message)
	}

	return strings.TrimRight(b.String(), "\n")
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
