package models

// FarmState is the aggregate root: running totals plus the full record and
// schedule collections. It is owned exclusively by the farm service; every
// other component works on copies.
type FarmState struct {
	TotalFowls   int           `json:"totalFowls" bson:"totalFowls"`
	TotalEggs    int           `json:"totalEggs" bson:"totalEggs"`
	TotalProfit  float64       `json:"totalProfit" bson:"totalProfit"`
	DailyRecords []DailyRecord `json:"dailyRecords" bson:"dailyRecords"`
	Schedules    []Schedule    `json:"schedules" bson:"schedules"`
}

// NewFarmState builds the default initial state for a farm with the given
// starting flock size.
func NewFarmState(initialFowls int) *FarmState {
	return &FarmState{
		TotalFowls:   initialFowls,
		DailyRecords: []DailyRecord{},
		Schedules:    DefaultSchedules(),
	}
}

// Normalize repairs a state loaded from a snapshot: nil collections become
// empty slices and a missing schedule set is backfilled with the defaults.
func (s *FarmState) Normalize() {
	if s.DailyRecords == nil {
		s.DailyRecords = []DailyRecord{}
	}
	if len(s.Schedules) == 0 {
		s.Schedules = DefaultSchedules()
	}
}

// Clone returns a deep copy safe to hand out as a read-only snapshot.
func (s *FarmState) Clone() FarmState {
	out := FarmState{
		TotalFowls:   s.TotalFowls,
		TotalEggs:    s.TotalEggs,
		TotalProfit:  s.TotalProfit,
		DailyRecords: make([]DailyRecord, len(s.DailyRecords)),
		Schedules:    make([]Schedule, len(s.Schedules)),
	}
	copy(out.DailyRecords, s.DailyRecords)
	copy(out.Schedules, s.Schedules)
	return out
}
