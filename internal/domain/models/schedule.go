package models

// ScheduleType enumerates supported recurring task categories.
type ScheduleType string

const (
	ScheduleFeeding      ScheduleType = "feeding"
	ScheduleMedication   ScheduleType = "medication"
	ScheduleDisinfection ScheduleType = "disinfection"
	ScheduleInspection   ScheduleType = "inspection"
)

// Valid reports whether the type is one of the closed enumeration values.
func (t ScheduleType) Valid() bool {
	switch t {
	case ScheduleFeeding, ScheduleMedication, ScheduleDisinfection, ScheduleInspection:
		return true
	}
	return false
}

// Supported schedule frequencies.
const (
	FrequencyDaily    = "Daily"
	FrequencyWeekly   = "Weekly"
	FrequencyMonthly  = "Monthly"
	FrequencyAsNeeded = "As Needed"
)

// Schedule is a recurring maintenance or feeding task definition. Unlike
// DailyRecord it is mutable and deletable.
type Schedule struct {
	ID          string       `json:"id" bson:"id"`
	Type        ScheduleType `json:"type" bson:"type"`
	Title       string       `json:"title" bson:"title"`
	Time        string       `json:"time" bson:"time"` // HH:MM, 24-hour
	Frequency   string       `json:"frequency" bson:"frequency"`
	Description string       `json:"description" bson:"description"`
	Active      bool         `json:"active" bson:"active"`
}

// ScheduleInput carries all fields of a new schedule except its identifier.
type ScheduleInput struct {
	Type        ScheduleType `json:"type" binding:"required"`
	Title       string       `json:"title" binding:"required"`
	Time        string       `json:"time" binding:"required"`
	Frequency   string       `json:"frequency"`
	Description string       `json:"description"`
	Active      bool         `json:"active"`
}

// SchedulePatch is a partial update: nil fields are left untouched during
// the merge.
type SchedulePatch struct {
	Type        *ScheduleType `json:"type"`
	Title       *string       `json:"title"`
	Time        *string       `json:"time"`
	Frequency   *string       `json:"frequency"`
	Description *string       `json:"description"`
	Active      *bool         `json:"active"`
}

// Apply merges the set patch fields into the schedule.
func (p SchedulePatch) Apply(s *Schedule) {
	if p.Type != nil {
		s.Type = *p.Type
	}
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Time != nil {
		s.Time = *p.Time
	}
	if p.Frequency != nil {
		s.Frequency = *p.Frequency
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Active != nil {
		s.Active = *p.Active
	}
}

// DefaultSchedules returns the seed set used when no persisted state exists
// or a loaded snapshot is missing its schedules.
func DefaultSchedules() []Schedule {
	return []Schedule{
		{
			ID:          "1",
			Type:        ScheduleFeeding,
			Title:       "Morning Feed",
			Time:        "06:00",
			Frequency:   FrequencyDaily,
			Description: "Layer feed with supplements",
			Active:      true,
		},
		{
			ID:          "2",
			Type:        ScheduleFeeding,
			Title:       "Evening Feed",
			Time:        "17:00",
			Frequency:   FrequencyDaily,
			Description: "Regular layer feed",
			Active:      true,
		},
		{
			ID:          "3",
			Type:        ScheduleMedication,
			Title:       "Weekly Vitamin Boost",
			Time:        "09:00",
			Frequency:   FrequencyWeekly,
			Description: "Vitamin supplements in water",
			Active:      true,
		},
		{
			ID:          "4",
			Type:        ScheduleDisinfection,
			Title:       "Coop Disinfection",
			Time:        "14:00",
			Frequency:   FrequencyWeekly,
			Description: "Deep clean and disinfect coops",
			Active:      true,
		},
	}
}
