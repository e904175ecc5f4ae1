package handlers

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/flockbook/internal/domain/models"
	"github.com/mamadbah2/flockbook/internal/service/farm"
)

// FarmHandler exposes the record and schedule mutation entry points plus the
// raw state snapshot.
type FarmHandler struct {
	svc    *farm.Service
	logger *zap.Logger
}

// NewFarmHandler constructs the HTTP handler adapter for farm mutations.
func NewFarmHandler(svc *farm.Service, logger *zap.Logger) *FarmHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FarmHandler{svc: svc, logger: logger}
}

// CreateRecord appends a daily record. Numeric fields arrive as free-form
// text and are coerced by the service; appending never fails.
func (h *FarmHandler) CreateRecord(c *gin.Context) {
	var input models.DailyRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid record payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	record := h.svc.AppendRecord(c.Request.Context(), input)
	c.JSON(http.StatusCreated, record)
}

// ListRecords returns all records sorted by date ascending.
func (h *FarmHandler) ListRecords(c *gin.Context) {
	snap := h.svc.Snapshot()
	records := snap.DailyRecords
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date < records[j].Date
	})
	c.JSON(http.StatusOK, records)
}

// GetState returns the full read-only snapshot.
func (h *FarmHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Snapshot())
}

// CreateSchedule adds a new recurring task.
func (h *FarmHandler) CreateSchedule(c *gin.Context) {
	var input models.ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("invalid schedule payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if !input.Type.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown schedule type"})
		return
	}

	schedule := h.svc.AddSchedule(c.Request.Context(), input)
	c.JSON(http.StatusCreated, schedule)
}

// ListSchedules returns the schedule set grouped by type.
func (h *FarmHandler) ListSchedules(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.GroupSchedulesByType())
}

// UpdateSchedule merges a partial update into an existing schedule.
func (h *FarmHandler) UpdateSchedule(c *gin.Context) {
	var patch models.SchedulePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.logger.Warn("invalid schedule patch", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if patch.Type != nil && !patch.Type.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown schedule type"})
		return
	}

	if err := h.svc.UpdateSchedule(c.Request.Context(), c.Param("id"), patch); err != nil {
		if errors.Is(err, farm.ErrScheduleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "schedule not found"})
			return
		}
		h.logger.Error("failed updating schedule", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update schedule"})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteSchedule removes an existing schedule.
func (h *FarmHandler) DeleteSchedule(c *gin.Context) {
	if err := h.svc.DeleteSchedule(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, farm.ErrScheduleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "schedule not found"})
			return
		}
		h.logger.Error("failed deleting schedule", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete schedule"})
		return
	}

	c.Status(http.StatusNoContent)
}
