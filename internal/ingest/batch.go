package ingest

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/lferraz/prodash/internal/domain"
)

// Source is one uploadable workbook: a name for error reporting and a way to
// open its bytes.
type Source struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// FileResult is the outcome of reading and parsing one source. A failed file
// carries its error and no records.
type FileResult struct {
	File    string
	Records []domain.UnitRecord
	Err     error
}

// ReadBatch reads and parses every source concurrently and returns one
// result per source, in source order. All reads are in flight at once; the
// join waits until every read has either completed or failed. A read or
// parse error counts toward completion like a success but contributes no
// records (no goroutine ever aborts the group).
func ReadBatch(ctx context.Context, sources []Source) []FileResult {
	results := make([]FileResult, len(sources))

	g, _ := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			results[i] = readOne(src)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func readOne(src Source) FileResult {
	result := FileResult{File: src.Name}

	r, err := src.Open()
	if err != nil {
		result.Err = &ParseError{File: src.Name, Err: err}
		return result
	}
	defer func() { _ = r.Close() }()

	data, err := io.ReadAll(r)
	if err != nil {
		result.Err = &ParseError{File: src.Name, Err: err}
		return result
	}

	result.Records, result.Err = ParseWorkbook(data, src.Name)
	return result
}

// Collect merges a batch's per-file results into one candidate sequence.
// Per-file errors are returned alongside the records; when the whole batch
// yields zero records the batch fails with ErrNoMatchingSheets and nothing
// should be committed.
func Collect(results []FileResult) ([]domain.UnitRecord, []error, error) {
	var records []domain.UnitRecord
	var fileErrs []error

	for _, res := range results {
		if res.Err != nil {
			fileErrs = append(fileErrs, res.Err)
			continue
		}
		records = append(records, res.Records...)
	}

	if len(records) == 0 {
		return nil, fileErrs, ErrNoMatchingSheets
	}
	return records, fileErrs, nil
}
