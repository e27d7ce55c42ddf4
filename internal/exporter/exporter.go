package exporter

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/unnativehicles2009-web/Open-RO/internal/report"
)

// SheetName is the single worksheet carrying the export.
const SheetName = "Open_RO"

// headers is the fixed, human-readable column order.
var headers = []string{
	"RO ID", "RO Date", "Branch", "Status", "SR Type", "Hold Reason",
	"SA Name", "Reg Number", "Customer Name", "Model Name", "KM",
	"Age Bucket", "Days", "Total RO Amount", "Total Parts Amount",
	"Total Labor Amount",
}

// Exporter renders projected rows as an .xlsx workbook.
type Exporter struct{}

// NewExporter creates the workbook exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export writes the filtered, projected rows onto a single Open_RO
// sheet. Callers decide what an empty input means; the exporter writes
// whatever it is given.
func (e *Exporter) Export(rows []report.Row) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", SheetName)

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		f.SetCellValue(SheetName, cell, h)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err == nil {
		f.SetRowStyle(SheetName, 1, 1, headerStyle)
	}

	for i, r := range rows {
		rowNo := i + 2
		for j, v := range cellValues(r) {
			cell, err := excelize.CoordinatesToCellName(j+1, rowNo)
			if err != nil {
				return nil, fmt.Errorf("data cell: %w", err)
			}
			f.SetCellValue(SheetName, cell, v)
		}
	}

	f.SetColWidth(SheetName, "A", "B", 14)
	f.SetColWidth(SheetName, "C", "F", 16)
	f.SetColWidth(SheetName, "G", "J", 22)
	f.SetColWidth(SheetName, "K", "M", 11)
	f.SetColWidth(SheetName, "N", "P", 17)

	return f, nil
}

// cellValues flattens a row into the header order.
func cellValues(r report.Row) []interface{} {
	return []interface{}{
		r.ROID, r.RODate, r.Branch, r.Status, r.SRType, r.HoldReason,
		r.SAName, r.RegNumber, r.CustomerName, r.ModelName, r.KM,
		r.AgeBucket, r.Days, r.TotalROAmount, r.TotalPartsAmount,
		r.TotalLaborAmount,
	}
}

// Filename is the attachment name for an export generated on day.
func Filename(day time.Time) string {
	return fmt.Sprintf("Open_RO_Export_%s.xlsx", day.Format("2006-01-02"))
}
