package taskqueue

import "time"

// NotificationTask is the body delivered to the notification endpoint when
// the task fires.
type NotificationTask struct {
	TaskID     string    `json:"-"`
	ScheduleAt time.Time `json:"-"`

	NotificationID int64             `json:"notification_id"`
	ReminderID     int64             `json:"reminder_id"`
	Title          string            `json:"title"`
	Body           string            `json:"body,omitempty"`
	Category       string            `json:"category"`
	ScheduledAt    time.Time         `json:"scheduled_at"`
	Payload        map[string]string `json:"payload,omitempty"`
}

type TaskResponse struct {
	Name         string    `json:"name"`
	ScheduleTime time.Time `json:"schedule_time"`
	CreateTime   time.Time `json:"create_time"`
}

type PrimindTaskRequest struct {
	Task PrimindTask `json:"task"`
}

type PrimindTask struct {
	Name         string             `json:"name,omitempty"`
	HTTPRequest  PrimindHTTPRequest `json:"httpRequest"`
	ScheduleTime string             `json:"scheduleTime,omitempty"`
}

type PrimindHTTPRequest struct {
	Body    string            `json:"body"`
	Headers map[string]string `json:"headers,omitempty"`
}

type PrimindTaskResponse struct {
	Name         string `json:"name"`
	ScheduleTime string `json:"scheduleTime"`
	CreateTime   string `json:"createTime"`
}
