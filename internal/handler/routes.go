package handler

import "github.com/gin-gonic/gin"

type Handlers struct {
	Reminders     *ReminderHandler
	Schedules     *ScheduleHandler
	Notifications *NotificationHandler
	Sweep         *SweepHandler
}

// Register mounts the v1 API on g.
func (h Handlers) Register(g gin.IRouter) {
	reminders := g.Group("/reminders")
	reminders.POST("", h.Reminders.HandleCreate)
	reminders.PUT("/:id", h.Reminders.HandleUpdate)
	reminders.POST("/:id/mute", h.Reminders.HandleMute)
	reminders.POST("/:id/unmute", h.Reminders.HandleUnmute)
	reminders.GET("/:id/next", h.Reminders.HandleNext)
	reminders.POST("/:id/ensure", h.Reminders.HandleEnsure)
	reminders.POST("/:id/recalc", h.Reminders.HandleRecalc)

	g.POST("/schedules", h.Schedules.HandleCreate)
	g.PUT("/schedules/:id", h.Schedules.HandleUpdate)

	g.POST("/notifications/:id/respond", h.Notifications.HandleRespond)

	g.POST("/sweep", h.Sweep.HandleSweep)
}
