//go:build gcloud

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/KasumiMercury/primind-notification-scheduler/internal/config"
	"github.com/KasumiMercury/primind-notification-scheduler/internal/infra/taskqueue"
	"github.com/KasumiMercury/primind-notification-scheduler/internal/observability"
	"github.com/KasumiMercury/primind-notification-scheduler/internal/observability/logging"
)

// productionSamplingRate applies to traces started here; sampled upstream
// requests stay sampled.
const productionSamplingRate = 0.1

// newAlarmQueue delivers alarms as named Cloud Tasks targeting the
// notification endpoint. Task names come from the registry, so reconcile can
// delete exactly what it registered.
func newAlarmQueue(ctx context.Context, cfg config.TaskQueueConfig) (taskqueue.TaskQueue, func() error, error) {
	client, err := taskqueue.NewCloudTasksClient(ctx, taskqueue.CloudTasksConfig{
		ProjectID:  cfg.GCloudProjectID,
		LocationID: cfg.GCloudLocationID,
		QueueID:    cfg.GCloudQueueID,
		TargetURL:  cfg.GCloudTargetURL,
		MaxRetries: cfg.MaxRetries,
	})
	if err != nil {
		return nil, nil, err
	}

	slog.Info("alarm delivery via cloud tasks",
		slog.String("project", cfg.GCloudProjectID),
		slog.String("location", cfg.GCloudLocationID),
		slog.String("queue", cfg.GCloudQueueID),
		slog.String("target", cfg.GCloudTargetURL),
	)
	return client, client.Close, nil
}

func observabilityConfig() observability.Config {
	name := os.Getenv("K_SERVICE")
	if name == "" {
		name = defaultServiceName
	}

	env := logging.EnvProd
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		projectID = os.Getenv("GCLOUD_PROJECT_ID")
	}

	return observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     name,
			Version:  Version,
			Revision: os.Getenv("K_REVISION"),
		},
		Environment:   env,
		GCPProjectID:  projectID,
		SamplingRate:  productionSamplingRate,
		DefaultModule: serviceModule,
	}
}
