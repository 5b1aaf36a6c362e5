package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/lferraz/prodash/internal/domain"
)

// Sheet names carry the category and the work date: "Categoria DD-MM-AAAA",
// with ".", "/" or "-" accepted as date separators.
var sheetNameRe = regexp.MustCompile(`^(.*?) (\d{2}[./-]\d{2}[./-]\d{4})$`)

var separatorReplacer = strings.NewReplacer(".", "-", "/", "-")

// ErrNoMatchingSheets signals that an upload batch yielded zero usable
// sheets: nothing is committed and the caller is notified.
var ErrNoMatchingSheets = errors.New(`no sheet matches the expected "Categoria DD-MM-AAAA" name format`)

// ParseError wraps a failure to read one workbook file. It is reported per
// file and does not abort sibling files in the same batch.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing workbook %q: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseWorkbook expands a workbook into unit record candidates. Every data
// row of a matching sheet becomes one {items:1, date, category} record; cell
// contents are never read, only the row count matters. Sheets whose name
// does not match the grammar are skipped with a warning.
//
// The returned records carry no collaborator; the merge step stamps them.
func ParseWorkbook(data []byte, filename string) ([]domain.UnitRecord, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &ParseError{File: filename, Err: err}
	}
	defer func() { _ = f.Close() }()

	var records []domain.UnitRecord
	for _, sheetName := range f.GetSheetList() {
		m := sheetNameRe.FindStringSubmatch(strings.TrimSpace(sheetName))
		if m == nil {
			log.Printf("warning: sheet %q does not follow the \"Categoria DD-MM-AAAA\" format and will be ignored", sheetName)
			continue
		}

		category := m[1]
		isoDate := toISODate(m[2])

		rows, err := f.GetRows(sheetName)
		if err != nil {
			return nil, &ParseError{File: filename, Err: err}
		}

		// The first row is the header; every row below it is one item.
		for i := 1; i < len(rows); i++ {
			records = append(records, domain.UnitRecord{
				Items:    1,
				Date:     isoDate,
				Category: category,
			})
		}
	}

	return records, nil
}

// toISODate reverses a DD-MM-YYYY date (any accepted separator) into
// YYYY-MM-DD. The regexp guarantees the shape.
func toISODate(raw string) string {
	parts := strings.Split(separatorReplacer.Replace(raw), "-")
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}
