package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-notification-scheduler/internal/domain"
)

type respondRequest struct {
	Status string `json:"status" binding:"required"`
}

type NotificationHandler struct {
	responses ResponseService
}

func NewNotificationHandler(responses ResponseService) *NotificationHandler {
	return &NotificationHandler{responses: responses}
}

func (h *NotificationHandler) HandleRespond(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req respondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	status, err := domain.ParseUserResponse(req.Status)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	if err := h.responses.Respond(c.Request.Context(), id, status); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
