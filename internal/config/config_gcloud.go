//go:build gcloud

package config

import (
	"errors"
	"fmt"
)

// Validate requires the full Cloud Tasks coordinates; alarms cannot be
// delivered without them in the gcloud build.
func (c *TaskQueueConfig) Validate() error {
	var errs []error

	for _, field := range []struct {
		value string
		env   string
	}{
		{c.GCloudProjectID, "GCLOUD_PROJECT_ID"},
		{c.GCloudLocationID, "GCLOUD_LOCATION_ID"},
		{c.GCloudQueueID, "GCLOUD_QUEUE_ID"},
		{c.GCloudTargetURL, "GCLOUD_TARGET_URL"},
	} {
		if field.value == "" {
			errs = append(errs, fmt.Errorf("%s is required", field.env))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("task queue configuration errors: %w", errors.Join(errs...))
	}

	return nil
}
