//go:build gcloud

package observability

import (
	"context"
	"errors"

	mexporter "github.com/GoogleCloudPlatform/opentelemetry-operations-go/exporter/metric"
	texporter "github.com/GoogleCloudPlatform/opentelemetry-operations-go/exporter/trace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

var ErrMissingProjectID = errors.New("GCP project ID is required for cloud exporters")

func traceExporterOptions(_ context.Context, cfg Config) ([]sdktrace.TracerProviderOption, error) {
	if cfg.GCPProjectID == "" {
		return nil, ErrMissingProjectID
	}
	exporter, err := texporter.New(texporter.WithProjectID(cfg.GCPProjectID))
	if err != nil {
		return nil, err
	}
	return []sdktrace.TracerProviderOption{sdktrace.WithBatcher(exporter)}, nil
}

func metricReaderOptions(_ context.Context, cfg Config) ([]sdkmetric.Option, error) {
	exporter, err := mexporter.New(mexporter.WithProjectID(cfg.GCPProjectID))
	if err != nil {
		return nil, err
	}
	return []sdkmetric.Option{sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter))}, nil
}
