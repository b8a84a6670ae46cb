package output

import (
	"fmt"
	"os"

	"github.com/e12tools/resistor-combinator/internal/search"
	"github.com/e12tools/resistor-combinator/pkg/constants"
	"github.com/xuri/excelize/v2"
)

// XLSXWriter streams the report into a single worksheet. Numbers are stored
// as numeric cells; the workbook is saved on Close.
type XLSXWriter struct {
	path   string
	file   *excelize.File
	stream *excelize.StreamWriter
	row    int
}

// NewXLSXWriter checks that path can be written and prepares a workbook.
func NewXLSXWriter(path string) (*XLSXWriter, error) {
	// Test if we can create/write to the file
	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	_ = out.Close()

	f := excelize.NewFile()
	stream, err := f.NewStreamWriter(constants.XLSXSheetName)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to prepare worksheet: %w", err)
	}
	return &XLSXWriter{path: path, file: f, stream: stream}, nil
}

func (x *XLSXWriter) nextRow(values []interface{}) error {
	if x.row >= constants.MaxXLSXRows {
		return fmt.Errorf("worksheet is full at %d rows", constants.MaxXLSXRows)
	}
	x.row++
	cell, err := excelize.CoordinatesToCellName(1, x.row)
	if err != nil {
		return err
	}
	return x.stream.SetRow(cell, values)
}

// WriteHeader writes the column names.
func (x *XLSXWriter) WriteHeader() error {
	values := make([]interface{}, len(CSVHeader))
	for i, name := range CSVHeader {
		values[i] = name
	}
	return x.nextRow(values)
}

// WriteRecord writes one row.
func (x *XLSXWriter) WriteRecord(r search.Record) error {
	return x.nextRow([]interface{}{
		r.Target, r.A, r.Operator.Symbol(), r.B, r.Value, r.Diff, r.PercentDiff,
	})
}

// Close flushes the stream and saves the workbook.
func (x *XLSXWriter) Close() error {
	defer func() {
		_ = x.file.Close()
	}()

	if err := x.stream.Flush(); err != nil {
		return fmt.Errorf("failed to flush worksheet: %w", err)
	}
	if err := x.file.SaveAs(x.path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", x.path, err)
	}
	return nil
}
