package taskqueue

import "context"

//go:generate mockgen -source=task_queue.go -destination=mock.go -package=taskqueue

// TaskQueue registers delayed HTTP tasks that deliver notifications.
type TaskQueue interface {
	RegisterNotification(ctx context.Context, task *NotificationTask) (*TaskResponse, error)
	// DeleteTask treats an already-dispatched or unknown task as deleted.
	DeleteTask(ctx context.Context, taskID string) error
}
