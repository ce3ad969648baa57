//go:build gcloud

package sweeprecorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/KasumiMercury/primind-notification-scheduler/internal/domain"
)

type bigQueryRecord struct {
	RecordedAt       time.Time `bigquery:"recorded_at"`
	StartedAt        time.Time `bigquery:"started_at"`
	RunID            string    `bigquery:"run_id"`
	Trigger          string    `bigquery:"trigger"`
	ArchivedCount    int64     `bigquery:"archived_count"`
	ToppedUpCount    int64     `bigquery:"topped_up_count"`
	FailedCount      int64     `bigquery:"failed_count"`
	ReconciledCount  int64     `bigquery:"reconciled_count"`
	ReconcileSkipped bool      `bigquery:"reconcile_skipped"`
	DurationMillis   int64     `bigquery:"duration_ms"`
}

type bigQueryRecorder struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.SweepResultRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "sweep result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, sweep result recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, sweep result recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	inserter := client.Dataset(cfg.BigQueryDataset).Table(cfg.BigQueryTable).Inserter()

	slog.InfoContext(ctx, "sweep result recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:   client,
		inserter: inserter,
	}, nil
}

func (r *bigQueryRecorder) RecordSweep(ctx context.Context, record domain.SweepResultRecord) error {
	row := &bigQueryRecord{
		RecordedAt:       time.Now(),
		StartedAt:        record.StartedAt,
		RunID:            record.RunID,
		Trigger:          record.Trigger,
		ArchivedCount:    int64(record.ArchivedCount),
		ToppedUpCount:    int64(record.ToppedUpCount),
		FailedCount:      int64(record.FailedCount),
		ReconciledCount:  int64(record.ReconciledCount),
		ReconcileSkipped: record.ReconcileSkipped,
		DurationMillis:   record.Duration.Milliseconds(),
	}

	if err := r.inserter.Put(ctx, row); err != nil {
		slog.WarnContext(ctx, "failed to insert sweep result to BigQuery",
			slog.String("error", err.Error()),
			slog.String("run_id", record.RunID),
		)
	}
	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
