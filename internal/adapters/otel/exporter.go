package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/lferraz/prodash/internal/ports"
)

const (
	serviceName    = "prodash"
	serviceVersion = "1.0.0"
)

// Exporter exports upload metrics to an OTEL Collector.
type Exporter struct {
	provider      *sdkmetric.MeterProvider
	meter         metric.Meter
	uploadsTotal  metric.Int64Counter
	recordsTotal  metric.Int64Counter
	failuresTotal metric.Int64Counter
	batchSizeHist metric.Int64Histogram
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	uploadsTotal, err := meter.Int64Counter(
		"prodash_uploads_total",
		metric.WithDescription("Total merged upload batches"),
		metric.WithUnit("{upload}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating uploads counter: %w", err)
	}

	recordsTotal, err := meter.Int64Counter(
		"prodash_records_total",
		metric.WithDescription("Total unit records merged from uploads"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating records counter: %w", err)
	}

	failuresTotal, err := meter.Int64Counter(
		"prodash_file_failures_total",
		metric.WithDescription("Total files that failed to parse or read"),
		metric.WithUnit("{file}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating failures counter: %w", err)
	}

	batchSizeHist, err := meter.Int64Histogram(
		"prodash_upload_batch_records",
		metric.WithDescription("Records per merged upload batch"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating batch size histogram: %w", err)
	}

	return &Exporter{
		provider:      provider,
		meter:         meter,
		uploadsTotal:  uploadsTotal,
		recordsTotal:  recordsTotal,
		failuresTotal: failuresTotal,
		batchSizeHist: batchSizeHist,
	}, nil
}

// ExportUploadMetrics exports metrics for one merged upload batch.
func (e *Exporter) ExportUploadMetrics(ctx context.Context, m *ports.UploadMetrics) error {
	opt := metric.WithAttributes(
		attribute.String("collaborator", m.Collaborator),
	)

	e.uploadsTotal.Add(ctx, 1, opt)
	e.recordsTotal.Add(ctx, int64(m.RecordCount), opt)
	e.failuresTotal.Add(ctx, int64(m.FailedFiles), opt)
	e.batchSizeHist.Record(ctx, int64(m.RecordCount), opt)

	return nil
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
