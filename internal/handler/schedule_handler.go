package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-notification-scheduler/internal/domain"
)

// scheduleRequest lists active weekdays as 0 (Sunday) through 6 (Saturday).
type scheduleRequest struct {
	Label     string `json:"label"`
	Days      []int  `json:"days" binding:"dive,min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

func (r *scheduleRequest) toDomain(id int64) (*domain.Schedule, error) {
	start, err := domain.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := domain.ParseTimeOfDay(r.EndTime)
	if err != nil {
		return nil, err
	}

	var days domain.DayMask
	for _, d := range r.Days {
		days = days.With(time.Weekday(d))
	}

	return &domain.Schedule{
		ID:        id,
		Label:     r.Label,
		Days:      days,
		StartTime: start,
		EndTime:   end,
	}, nil
}

type scheduleResponse struct {
	ID        int64  `json:"id"`
	Label     string `json:"label,omitempty"`
	Days      []int  `json:"days"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	AllDay    bool   `json:"all_day"`
}

func newScheduleResponse(s *domain.Schedule) scheduleResponse {
	days := make([]int, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Days.Has(d) {
			days = append(days, int(d))
		}
	}
	return scheduleResponse{
		ID:        s.ID,
		Label:     s.Label,
		Days:      days,
		StartTime: s.StartTime.String(),
		EndTime:   s.EndTime.String(),
		AllDay:    s.IsAllDay(),
	}
}

type ScheduleHandler struct {
	reminders ReminderService
}

func NewScheduleHandler(reminders ReminderService) *ScheduleHandler {
	return &ScheduleHandler{reminders: reminders}
}

func (h *ScheduleHandler) HandleCreate(c *gin.Context) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	s, err := req.toDomain(0)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if err := h.reminders.CreateSchedule(c.Request.Context(), s); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newScheduleResponse(s))
}

func (h *ScheduleHandler) HandleUpdate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	s, err := req.toDomain(id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if err := h.reminders.UpdateSchedule(c.Request.Context(), s); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, newScheduleResponse(s))
}
