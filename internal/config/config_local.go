//go:build !gcloud

package config

// Validate accepts an empty PRIMIND_TASKS_URL: alarms are then tracked in the
// registry only and nothing is delivered.
func (c *TaskQueueConfig) Validate() error {
	return nil
}
