package spreadsheet

import (
	"errors"
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"
)

// ErrEncodingFailure is returned when a row cannot be written to the workbook.
var ErrEncodingFailure = errors.New("spreadsheet encoding failure")

const (
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	defaultSheet = "Sheet1"
)

// Writer renders a single worksheet workbook as xlsx bytes.
type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

// WriteSheet writes header and rows to a workbook with one sheet named title.
// Cells must be strings, integers, floats, bools or nil. Nothing is returned
// unless every row was encoded.
func (w *Writer) WriteSheet(title string, header []string, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, title); err != nil {
		return nil, fmt.Errorf("%w: sheet name %q: %v", ErrEncodingFailure, title, err)
	}

	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := writeRow(f, title, 1, headerRow); err != nil {
		return nil, err
	}

	for i, row := range rows {
		if err := writeRow(f, title, i+2, row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodingFailure, err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, row []any) error {
	for col, cell := range row {
		if !supportedCell(cell) {
			return fmt.Errorf("%w: row %d column %d has unsupported type %T", ErrEncodingFailure, rowNum, col+1, cell)
		}
	}

	axis, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncodingFailure, err)
	}
	if err := f.SetSheetRow(sheet, axis, &row); err != nil {
		return fmt.Errorf("%w: row %d: %v", ErrEncodingFailure, rowNum, err)
	}
	return nil
}

func supportedCell(v any) bool {
	switch c := v.(type) {
	case nil, string, bool, int, int32, int64:
		return true
	case float64:
		return !math.IsNaN(c) && !math.IsInf(c, 0)
	default:
		return false
	}
}
