package ports

import "context"

// UploadMetrics describes one merged upload batch.
type UploadMetrics struct {
	Collaborator string
	FileCount    int
	FailedFiles  int
	RecordCount  int
}

// MetricsExporter pushes upload metrics to an external collector.
// Implementations must be safe to call with a no-op fallback when no
// collector is configured.
type MetricsExporter interface {
	ExportUploadMetrics(ctx context.Context, m *UploadMetrics) error
	Close(ctx context.Context) error
}
