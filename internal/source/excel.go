package source

import (
	"context"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// ExcelSource reads a local workbook, for running against a file export
// instead of the published sheet.
type ExcelSource struct {
	path  string
	sheet string
}

// NewExcelSource creates the local workbook source.
func NewExcelSource(path, sheet string) *ExcelSource {
	return &ExcelSource{path: path, sheet: sheet}
}

// Name identifies the source in logs and snapshots.
func (s *ExcelSource) Name() string { return "local-excel" }

// Fetch opens the workbook and reads the configured sheet. The first
// row is the header.
func (s *ExcelSource) Fetch(ctx context.Context) (*Table, error) {
	if _, err := os.Stat(s.path); err != nil {
		return nil, fmt.Errorf("%w: excel not found: %s", ErrUnavailable, s.path)
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrBadFormat, s.path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(s.sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %v", ErrBadFormat, s.sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %q is empty", ErrBadFormat, s.sheet)
	}

	return &Table{Header: rows[0], Rows: rows[1:]}, nil
}
