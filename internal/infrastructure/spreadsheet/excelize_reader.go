package spreadsheet

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/aquafarm-pro/aquafarm-api/internal/application/extraction"
)

var _ extraction.SpreadsheetReader = (*ExcelizeReader)(nil)

// ExcelizeReader reads xlsx/xls workbooks into a plain string grid for the
// spreadsheet extraction strategy. Only the first sheet is read: supplier
// packing lists put the line items there and later sheets hold totals or
// notes.
type ExcelizeReader struct{}

// NewExcelizeReader builds the reader.
func NewExcelizeReader() *ExcelizeReader {
	return &ExcelizeReader{}
}

// ReadGrid parses the workbook bytes and returns the first sheet as rows of
// cell strings. Formula cells come back as their cached values.
func (r *ExcelizeReader) ReadGrid(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}
