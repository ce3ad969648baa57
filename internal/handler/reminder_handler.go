package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-notification-scheduler/internal/domain"
)

type reminderRequest struct {
	Title                  string     `json:"title" binding:"required"`
	Description            string     `json:"description"`
	IntervalUnit           string     `json:"interval_unit" binding:"required"`
	IntervalCount          int        `json:"interval_count" binding:"required,min=1"`
	OccurrencesPerInterval int        `json:"occurrences_per_interval" binding:"required,min=1"`
	IsRecurring            *bool      `json:"is_recurring"`
	TrackStreak            bool       `json:"track_streak"`
	StartDate              time.Time  `json:"start_date" binding:"required"`
	EndDate                *time.Time `json:"end_date"`
	ScheduleIDs            []int64    `json:"schedule_ids"`
}

func (r *reminderRequest) toDomain(id int64) *domain.Reminder {
	recurring := true
	if r.IsRecurring != nil {
		recurring = *r.IsRecurring
	}
	return &domain.Reminder{
		ID:                     id,
		Title:                  r.Title,
		Description:            r.Description,
		IntervalUnit:           domain.IntervalUnit(r.IntervalUnit),
		IntervalCount:          r.IntervalCount,
		OccurrencesPerInterval: r.OccurrencesPerInterval,
		IsRecurring:            recurring,
		TrackStreak:            r.TrackStreak,
		StartDate:              r.StartDate,
		EndDate:                r.EndDate,
	}
}

type reminderResponse struct {
	ID                     int64      `json:"id"`
	Title                  string     `json:"title"`
	Description            string     `json:"description,omitempty"`
	IntervalUnit           string     `json:"interval_unit"`
	IntervalCount          int        `json:"interval_count"`
	OccurrencesPerInterval int        `json:"occurrences_per_interval"`
	IsRecurring            bool       `json:"is_recurring"`
	IsMuted                bool       `json:"is_muted"`
	TrackStreak            bool       `json:"track_streak"`
	StartDate              time.Time  `json:"start_date"`
	EndDate                *time.Time `json:"end_date,omitempty"`
}

func newReminderResponse(r *domain.Reminder) reminderResponse {
	return reminderResponse{
		ID:                     r.ID,
		Title:                  r.Title,
		Description:            r.Description,
		IntervalUnit:           r.IntervalUnit.String(),
		IntervalCount:          r.IntervalCount,
		OccurrencesPerInterval: r.OccurrencesPerInterval,
		IsRecurring:            r.IsRecurring,
		IsMuted:                r.IsMuted,
		TrackStreak:            r.TrackStreak,
		StartDate:              r.StartDate,
		EndDate:                r.EndDate,
	}
}

type notificationResponse struct {
	ID             int64      `json:"id"`
	ReminderID     int64      `json:"reminder_id"`
	ScheduledAt    time.Time  `json:"scheduled_at"`
	IntervalIndex  int        `json:"interval_index"`
	SegmentIndex   int        `json:"segment_index"`
	ResponseStatus *string    `json:"response_status,omitempty"`
	ResponseAt     *time.Time `json:"response_at,omitempty"`
}

func newNotificationResponse(n *domain.Notification) notificationResponse {
	resp := notificationResponse{
		ID:            n.ID,
		ReminderID:    n.ReminderID,
		ScheduledAt:   n.ScheduledAt,
		IntervalIndex: n.IntervalIndex,
		SegmentIndex:  n.SegmentIndex,
		ResponseAt:    n.ResponseAt,
	}
	if n.ResponseStatus != nil {
		s := n.ResponseStatus.String()
		resp.ResponseStatus = &s
	}
	return resp
}

type ReminderHandler struct {
	reminders    ReminderService
	horizon      HorizonService
	desiredCount int
	bias         float64
}

func NewReminderHandler(reminders ReminderService, horizon HorizonService, desiredCount int, bias float64) *ReminderHandler {
	return &ReminderHandler{
		reminders:    reminders,
		horizon:      horizon,
		desiredCount: desiredCount,
		bias:         bias,
	}
}

func (h *ReminderHandler) HandleCreate(c *gin.Context) {
	var req reminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	r := req.toDomain(0)
	if err := h.reminders.CreateReminder(c.Request.Context(), r, req.ScheduleIDs); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newReminderResponse(r))
}

func (h *ReminderHandler) HandleUpdate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req reminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	r := req.toDomain(id)
	if err := h.reminders.UpdateReminder(c.Request.Context(), r, req.ScheduleIDs); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, newReminderResponse(r))
}

func (h *ReminderHandler) HandleMute(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.reminders.Mute(c.Request.Context(), id); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReminderHandler) HandleUnmute(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.reminders.Unmute(c.Request.Context(), id); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReminderHandler) HandleNext(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	n, err := h.reminders.NextNotification(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, newNotificationResponse(n))
}

func (h *ReminderHandler) HandleEnsure(c *gin.Context) {
	h.handleHorizon(c, "ensure", h.horizon.Ensure)
}

func (h *ReminderHandler) HandleRecalc(c *gin.Context) {
	h.handleHorizon(c, "recalc", h.horizon.Recalc)
}

func (h *ReminderHandler) handleHorizon(c *gin.Context, mode string, op func(ctx context.Context, id int64, desired int, bias float64) error) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	desired, bias, err := h.horizonParams(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	if err := op(c.Request.Context(), id, desired, bias); err != nil {
		respondDomainError(c, err)
		return
	}

	slog.InfoContext(c.Request.Context(), "horizon maintained via api",
		slog.String("mode", mode),
		slog.Int64("reminder_id", id),
		slog.Int("desired_count", desired),
		slog.Float64("bias", bias),
	)
	c.Status(http.StatusNoContent)
}

var errInvalidHorizonParams = errors.New("desired_count must be a positive integer and bias a number in [0,1]")

func (h *ReminderHandler) horizonParams(c *gin.Context) (int, float64, error) {
	desired := h.desiredCount
	if raw := c.Query("desired_count"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return 0, 0, errInvalidHorizonParams
		}
		desired = v
	}

	bias := h.bias
	if raw := c.Query("bias"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 || v > 1 {
			return 0, 0, errInvalidHorizonParams
		}
		bias = v
	}
	return desired, bias, nil
}
