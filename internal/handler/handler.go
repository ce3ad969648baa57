package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-notification-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-notification-scheduler/internal/service/sweep"
)

//go:generate mockgen -source=handler.go -destination=mock_test.go -package=handler

type ReminderService interface {
	CreateReminder(ctx context.Context, r *domain.Reminder, scheduleIDs []int64) error
	UpdateReminder(ctx context.Context, r *domain.Reminder, scheduleIDs []int64) error
	Mute(ctx context.Context, reminderID int64) error
	Unmute(ctx context.Context, reminderID int64) error
	NextNotification(ctx context.Context, reminderID int64) (*domain.Notification, error)
	CreateSchedule(ctx context.Context, schedule *domain.Schedule) error
	UpdateSchedule(ctx context.Context, schedule *domain.Schedule) error
}

type HorizonService interface {
	Ensure(ctx context.Context, reminderID int64, desiredCount int, bias float64) error
	Recalc(ctx context.Context, reminderID int64, desiredCount int, bias float64) error
}

type ResponseService interface {
	Respond(ctx context.Context, notificationID int64, status domain.ResponseStatus) error
}

type SweepService interface {
	Run(ctx context.Context, trigger string) (*sweep.Result, error)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, errorResponse{Code: code, Message: message})
}

// respondDomainError maps service errors onto HTTP statuses.
func respondDomainError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, domain.ErrReminderNotFound),
		errors.Is(err, domain.ErrScheduleNotFound),
		errors.Is(err, domain.ErrNotificationNotFound):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domain.ErrInvalidReminder),
		errors.Is(err, domain.ErrInvalidSchedule),
		errors.Is(err, domain.ErrInvalidResponseStatus),
		errors.Is(err, domain.ErrHorizonExhausted):
		respondError(c, http.StatusUnprocessableEntity, "invalid", err.Error())
	case errors.Is(err, domain.ErrConflict):
		respondError(c, http.StatusConflict, "conflict", err.Error())
	default:
		slog.ErrorContext(c.Request.Context(), "request failed",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "id must be a positive integer")
		return 0, false
	}
	return id, true
}
