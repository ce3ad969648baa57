//go:build !gcloud

package sweeprecorder

import (
	"context"
	"log/slog"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/KasumiMercury/primind-notification-scheduler/internal/domain"
)

const sweepMeasurement = "sweep_result"

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	bucket   string
	org      string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.SweepResultRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "sweep result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, sweep result recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)
	writeAPI := client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket)

	slog.InfoContext(ctx, "sweep result recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: writeAPI,
		bucket:   cfg.InfluxDBBucket,
		org:      cfg.InfluxDBOrg,
	}, nil
}

// RecordSweep writes one point per sweep. Write failures are logged and
// swallowed so analytics never fail a sweep.
func (r *influxDBRecorder) RecordSweep(ctx context.Context, record domain.SweepResultRecord) error {
	if err := r.writeAPI.WritePoint(ctx, sweepPoint(record)); err != nil {
		slog.WarnContext(ctx, "failed to write sweep result to InfluxDB",
			slog.String("error", err.Error()),
			slog.String("run_id", record.RunID),
		)
	}
	return nil
}

func sweepPoint(record domain.SweepResultRecord) *write.Point {
	runID := record.RunID
	if runID == "" {
		runID = "default"
	}

	return influxdb2.NewPoint(
		sweepMeasurement,
		map[string]string{
			"run_id":  runID,
			"trigger": record.Trigger,
		},
		map[string]any{
			"archived_count":    record.ArchivedCount,
			"topped_up_count":   record.ToppedUpCount,
			"failed_count":      record.FailedCount,
			"reconciled_count":  record.ReconciledCount,
			"reconcile_skipped": record.ReconcileSkipped,
			"duration_ms":       record.Duration.Milliseconds(),
		},
		record.StartedAt,
	)
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}
