package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-notification-scheduler/internal/service/sweep"
)

type sweepResponse struct {
	RunID            string    `json:"run_id"`
	Trigger          string    `json:"trigger"`
	StartedAt        time.Time `json:"started_at"`
	Archived         int       `json:"archived"`
	ToppedUp         int       `json:"topped_up"`
	Failed           int       `json:"failed"`
	Reconciled       int       `json:"reconciled"`
	ReconcileSkipped bool      `json:"reconcile_skipped"`
	DurationMs       int64     `json:"duration_ms"`
	Error            string    `json:"error,omitempty"`
}

type SweepHandler struct {
	sweeps SweepService
}

func NewSweepHandler(sweeps SweepService) *SweepHandler {
	return &SweepHandler{sweeps: sweeps}
}

// HandleSweep runs a sweep synchronously. Phase failures are reported in the
// body alongside the partial result.
func (h *SweepHandler) HandleSweep(c *gin.Context) {
	result, err := h.sweeps.Run(c.Request.Context(), sweep.TriggerManual)
	if result == nil {
		if err == nil {
			c.Status(http.StatusNoContent)
			return
		}
		respondDomainError(c, err)
		return
	}

	resp := sweepResponse{
		RunID:            result.RunID,
		Trigger:          result.Trigger,
		StartedAt:        result.StartedAt,
		Archived:         result.Archived,
		ToppedUp:         result.ToppedUp,
		Failed:           result.Failed,
		Reconciled:       result.Reconciled,
		ReconcileSkipped: result.ReconcileSkipped,
		DurationMs:       result.Duration.Milliseconds(),
	}

	status := http.StatusOK
	if err != nil {
		_ = c.Error(err)
		resp.Error = err.Error()
		status = http.StatusMultiStatus
	}
	c.JSON(status, resp)
}
