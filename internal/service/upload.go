package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/lferraz/prodash/internal/ingest"
	"github.com/lferraz/prodash/internal/ports"
)

// UploadSummary describes one committed upload batch. DayCount is the number
// of distinct work dates the batch covered.
type UploadSummary struct {
	BatchID      string   `json:"batchId"`
	Collaborator string   `json:"collaborator"`
	RecordCount  int      `json:"recordCount"`
	DayCount     int      `json:"dayCount"`
	TotalRecords int      `json:"totalRecords"`
	FileErrors   []string `json:"fileErrors,omitempty"`
}

// ImportFiles reads every source concurrently, collects the parsed records
// and merges them as one upload for the collaborator. The collaborator is
// validated before any file is opened. Individual file failures do not abort
// the batch, but a batch that yields zero records is rejected whole with
// ingest.ErrNoMatchingSheets and commits nothing.
func (s *Service) ImportFiles(ctx context.Context, collaborator string, sources []ingest.Source) (*UploadSummary, error) {
	if collaborator == "" {
		return nil, &ValidationError{Field: "collaborator", Reason: "a collaborator must be selected before uploading"}
	}

	results := ingest.ReadBatch(ctx, sources)
	records, fileErrs, err := ingest.Collect(results)
	if err != nil {
		return nil, err
	}

	total, err := s.MergeUpload(ctx, collaborator, records)
	if err != nil {
		return nil, err
	}

	days := make(map[string]struct{})
	for _, r := range records {
		days[r.Date] = struct{}{}
	}

	summary := &UploadSummary{
		BatchID:      uuid.NewString(),
		Collaborator: collaborator,
		RecordCount:  len(records),
		DayCount:     len(days),
		TotalRecords: total,
	}
	for _, fe := range fileErrs {
		summary.FileErrors = append(summary.FileErrors, fe.Error())
	}

	if s.exporter != nil {
		metrics := &ports.UploadMetrics{
			Collaborator: collaborator,
			FileCount:    len(sources),
			FailedFiles:  len(fileErrs),
			RecordCount:  len(records),
		}
		if err := s.exporter.ExportUploadMetrics(ctx, metrics); err != nil {
			log.Printf("Warning: failed to export upload metrics: %v", err)
		}
	}

	return summary, nil
}
