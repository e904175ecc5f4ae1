package farm

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mamadbah2/flockbook/internal/domain/models"
	"github.com/mamadbah2/flockbook/internal/repository/snapshot"
)

// ErrScheduleNotFound indicates an update or delete referenced an unknown
// schedule id. The schedule set is left untouched.
var ErrScheduleNotFound = errors.New("schedule not found")

// RecordExporter mirrors appended records to an external sink, best-effort.
type RecordExporter interface {
	AppendRecordRow(ctx context.Context, record models.DailyRecord) error
}

// Service owns the mutable FarmState. It applies daily records and schedule
// changes, keeps the running aggregates consistent with the record log, and
// persists a snapshot after every mutation. Readers only ever receive copies.
type Service struct {
	mu        sync.Mutex
	state     *models.FarmState
	snapshots snapshot.Repository
	exporter  RecordExporter
	logger    *zap.Logger
	newID     func() string
	now       func() time.Time
}

// NewService wires a farm service around an already loaded state. The
// snapshot repository and exporter may be nil; persistence is then skipped.
func NewService(state *models.FarmState, snapshots snapshot.Repository, exporter RecordExporter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if state == nil {
		state = models.NewFarmState(0)
	}
	state.Normalize()

	return &Service{
		state:     state,
		snapshots: snapshots,
		exporter:  exporter,
		logger:    logger,
		newID:     uuid.NewString,
		now:       time.Now,
	}
}

// AppendRecord coerces the raw input into a DailyRecord, assigns it a fresh
// id, appends it and updates the running aggregates in one step. Coercion
// never fails: unparseable numeric fields become 0.
func (s *Service) AppendRecord(ctx context.Context, input models.DailyRecordInput) models.DailyRecord {
	record := s.buildRecord(input)

	s.mu.Lock()
	s.state.DailyRecords = append(s.state.DailyRecords, record)
	s.state.TotalFowls += record.NewHatches - record.FowlDeaths
	s.state.TotalEggs += record.EggsCollected
	s.state.TotalProfit += record.Revenue() - record.FeedCost
	snap := s.state.Clone()
	s.mu.Unlock()

	s.logger.Info("daily record appended",
		zap.String("record_id", record.ID),
		zap.String("date", record.Date),
		zap.Int("eggs_collected", record.EggsCollected),
		zap.Int("total_fowls", snap.TotalFowls))

	s.persist(ctx, snap)

	if s.exporter != nil {
		if err := s.exporter.AppendRecordRow(ctx, record); err != nil {
			s.logger.Warn("failed exporting record row", zap.Error(err), zap.String("record_id", record.ID))
		}
	}

	return record
}

func (s *Service) buildRecord(input models.DailyRecordInput) models.DailyRecord {
	date := input.Date
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		date = s.now().Format(models.DateLayout)
	}

	return models.DailyRecord{
		ID:                s.newID(),
		Date:              date,
		EggsCollected:     coerceInt(input.EggsCollected),
		EggsBroken:        coerceInt(input.EggsBroken),
		EggsSpoilt:        coerceInt(input.EggsSpoilt),
		EggsSold:          coerceInt(input.EggsSold),
		EggPrice:          coerceFloat(input.EggPrice),
		FowlDeaths:        coerceInt(input.FowlDeaths),
		NewHatches:        coerceInt(input.NewHatches),
		FeedConsumed:      coerceFloat(input.FeedConsumed),
		FeedCost:          coerceFloat(input.FeedCost),
		MedicationGiven:   input.MedicationGiven,
		MedicationDetails: input.MedicationDetails,
		DisinfectionDone:  input.DisinfectionDone,
		DailyCheckNotes:   input.DailyCheckNotes,
	}
}

// AddSchedule assigns a fresh id and appends the schedule.
func (s *Service) AddSchedule(ctx context.Context, input models.ScheduleInput) models.Schedule {
	schedule := models.Schedule{
		ID:          s.newID(),
		Type:        input.Type,
		Title:       input.Title,
		Time:        input.Time,
		Frequency:   input.Frequency,
		Description: input.Description,
		Active:      input.Active,
	}
	if schedule.Frequency == "" {
		schedule.Frequency = models.FrequencyDaily
	}

	s.mu.Lock()
	s.state.Schedules = append(s.state.Schedules, schedule)
	snap := s.state.Clone()
	s.mu.Unlock()

	s.logger.Info("schedule added", zap.String("schedule_id", schedule.ID), zap.String("type", string(schedule.Type)))
	s.persist(ctx, snap)

	return schedule
}

// UpdateSchedule merges the set patch fields into the matching schedule.
func (s *Service) UpdateSchedule(ctx context.Context, id string, patch models.SchedulePatch) error {
	s.mu.Lock()
	idx := s.findSchedule(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrScheduleNotFound
	}
	patch.Apply(&s.state.Schedules[idx])
	snap := s.state.Clone()
	s.mu.Unlock()

	s.logger.Info("schedule updated", zap.String("schedule_id", id))
	s.persist(ctx, snap)

	return nil
}

// DeleteSchedule removes the matching schedule.
func (s *Service) DeleteSchedule(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := s.findSchedule(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrScheduleNotFound
	}
	s.state.Schedules = append(s.state.Schedules[:idx], s.state.Schedules[idx+1:]...)
	snap := s.state.Clone()
	s.mu.Unlock()

	s.logger.Info("schedule deleted", zap.String("schedule_id", id))
	s.persist(ctx, snap)

	return nil
}

// Snapshot returns a deep copy of the current state.
func (s *Service) Snapshot() models.FarmState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// GroupSchedulesByType partitions the schedule set by type, each group
// sorted by time of day ascending. Lexical compare is correct for
// zero-padded 24-hour HH:MM values.
func (s *Service) GroupSchedulesByType() map[models.ScheduleType][]models.Schedule {
	snap := s.Snapshot()

	groups := make(map[models.ScheduleType][]models.Schedule)
	for _, schedule := range snap.Schedules {
		groups[schedule.Type] = append(groups[schedule.Type], schedule)
	}

	for _, group := range groups {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Time < group[j].Time
		})
	}

	return groups
}

// findSchedule must be called with the mutex held.
func (s *Service) findSchedule(id string) int {
	for i, schedule := range s.state.Schedules {
		if schedule.ID == id {
			return i
		}
	}
	return -1
}

// persist saves the snapshot best-effort. The in-memory state stays
// authoritative when the write fails.
func (s *Service) persist(ctx context.Context, snap models.FarmState) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.Save(ctx, snap); err != nil {
		s.logger.Warn("failed persisting snapshot", zap.Error(err))
	}
}
