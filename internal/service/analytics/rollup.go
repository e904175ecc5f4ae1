package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/mamadbah2/flockbook/internal/domain/models"
)

// maxRollupWeeks caps the rollup at the most recent ISO weeks present.
const maxRollupWeeks = 8

// WeeklyRollup groups records into ISO calendar weeks and summarizes each
// week. The result is ordered by week key ascending and truncated to the
// most recent 8 weeks. Records with unparseable dates are skipped; empty
// input yields an empty slice.
func WeeklyRollup(records []models.DailyRecord) []models.WeekSummary {
	type bucket struct {
		summary models.WeekSummary
		feedSum float64
	}

	buckets := make(map[string]*bucket)
	for _, record := range records {
		date, err := time.Parse(models.DateLayout, record.Date)
		if err != nil {
			continue
		}

		key := weekKey(date)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{summary: models.WeekSummary{Week: key}}
			buckets[key] = b
		}

		b.summary.TotalEggs += record.EggsCollected
		b.summary.TotalRevenue += record.Revenue()
		b.summary.TotalCosts += record.FeedCost
		b.summary.TotalDeaths += record.FowlDeaths
		b.summary.Days++
		b.feedSum += record.FeedConsumed
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	if len(keys) > maxRollupWeeks {
		keys = keys[len(keys)-maxRollupWeeks:]
	}

	summaries := make([]models.WeekSummary, 0, len(keys))
	for _, key := range keys {
		b := buckets[key]
		b.summary.AvgFeedConsumed = b.feedSum / float64(b.summary.Days)
		summaries = append(summaries, b.summary)
	}

	return summaries
}

// weekKey renders the ISO-8601 week of the date, e.g. "2025-W31". The ISO
// year can differ from the calendar year around January 1st.
func weekKey(date time.Time) string {
	year, week := date.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
