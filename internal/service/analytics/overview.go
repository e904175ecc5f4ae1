package analytics

import (
	"time"

	"github.com/mamadbah2/flockbook/internal/domain/models"
)

const (
	maxUpcomingTasks = 4
	maxRecentRecords = 3
)

// Overview is the dashboard read model: today's record if one exists, the
// most recent records, the next active tasks and the headline numbers.
type Overview struct {
	TotalFowls    int                  `json:"totalFowls"`
	TotalEggs     int                  `json:"totalEggs"`
	TotalProfit   float64              `json:"totalProfit"`
	TodayRecord   *models.DailyRecord  `json:"todayRecord,omitempty"`
	RecentRecords []models.DailyRecord `json:"recentRecords"`
	UpcomingTasks []models.Schedule    `json:"upcomingTasks"`
	Metrics       models.Metrics       `json:"metrics"`
}

// BuildOverview assembles the dashboard view for the given day.
func BuildOverview(state *models.FarmState, now time.Time) Overview {
	overview := Overview{
		RecentRecords: []models.DailyRecord{},
		UpcomingTasks: []models.Schedule{},
	}
	if state == nil {
		return overview
	}

	overview.TotalFowls = state.TotalFowls
	overview.TotalEggs = state.TotalEggs
	overview.TotalProfit = state.TotalProfit
	overview.Metrics = ComputeMetrics(state)

	today := now.Format(models.DateLayout)
	for i := range state.DailyRecords {
		if state.DailyRecords[i].Date == today {
			record := state.DailyRecords[i]
			overview.TodayRecord = &record
			break
		}
	}

	sorted := sortByDate(state.DailyRecords)
	for i := len(sorted) - 1; i >= 0 && len(overview.RecentRecords) < maxRecentRecords; i-- {
		overview.RecentRecords = append(overview.RecentRecords, sorted[i])
	}

	for _, schedule := range state.Schedules {
		if !schedule.Active {
			continue
		}
		overview.UpcomingTasks = append(overview.UpcomingTasks, schedule)
		if len(overview.UpcomingTasks) == maxUpcomingTasks {
			break
		}
	}

	return overview
}
