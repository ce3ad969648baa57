//go:build !gcloud

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

// newAlarmQueue connects reconcile to the Primind Tasks emulator. Without a
// URL, alarms are recorded in the Redis registry and never delivered, which
// is enough to exercise sweeps locally.
func newAlarmQueue(_ context.Context, cfg config.TaskQueueConfig) (taskqueue.TaskQueue, func() error, error) {
	if cfg.PrimindTasksURL == "" {
		slog.Warn("alarm delivery disabled: PRIMIND_TASKS_URL not set, reconcile updates the registry only")
		return nil, nil, nil
	}

	client := taskqueue.NewPrimindTasksClient(cfg.PrimindTasksURL, cfg.QueueName, cfg.MaxRetries)

	slog.Info("alarm delivery via primind tasks",
		slog.String("url", cfg.PrimindTasksURL),
		slog.String("queue", cfg.QueueName),
		slog.Int("max_retries", cfg.MaxRetries),
	)
	return client, client.Close, nil
}

func observabilityConfig() observability.Config {
	name := os.Getenv("SERVICE_NAME")
	if name == "" {
		name = defaultServiceName
	}

	env := logging.EnvDev
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	return observability.Config{
		ServiceInfo:   logging.ServiceInfo{Name: name, Version: Version},
		Environment:   env,
		SamplingRate:  1.0,
		DefaultModule: serviceModule,
	}
}
