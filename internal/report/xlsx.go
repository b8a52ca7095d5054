package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"syllabus-analyzer/internal/analyses"
)

const (
	// SheetName is the single worksheet in an export.
	SheetName = "Analysis"
	// XLSXFilename is the suggested download name.
	XLSXFilename = "Syllabus-Analysis-Report.xlsx"
	// XLSXContentType is the MIME type of the workbook.
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Headers are the spreadsheet column titles, in column order.
var Headers = []string{
	"Question Number",
	"Topic",
	"Intended Learning Outcome",
	"Bloom's Level",
	"Suggested Item Placement",
	"Suggested TOS Table Row",
}

// ColumnWidths are the spreadsheet column widths, in column order.
var ColumnWidths = []float64{15, 30, 50, 15, 50, 40}

// WriteXLSX writes items as a workbook to w. An empty sequence produces a
// header-only sheet.
func WriteXLSX(w io.Writer, items []analyses.AnalysisResultItem) error {
	f, err := buildWorkbook(items)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

// XLSX returns the workbook bytes for items.
func XLSX(items []analyses.AnalysisResultItem) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, items); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildWorkbook(items []analyses.AnalysisResultItem) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("header style: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(Headers), 1)
	if err := f.SetCellStyle(SheetName, "A1", last, bold); err != nil {
		f.Close()
		return nil, fmt.Errorf("apply header style: %w", err)
	}

	for i, width := range ColumnWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			f.Close()
			return nil, fmt.Errorf("set width %s: %w", col, err)
		}
	}

	for i, item := range items {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			item.QuestionNumber,
			item.Topic,
			item.IntendedLearningOutcome,
			string(item.BloomsLevel),
			item.SuggestedItemPlacement,
			item.SuggestedTOSTableRow,
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	return f, nil
}
