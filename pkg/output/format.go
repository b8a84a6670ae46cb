// Package output provides utilities for writing and displaying search results.
package output

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/e12tools/resistor-combinator/internal/search"
	"github.com/e12tools/resistor-combinator/pkg/constants"
	"github.com/e12tools/resistor-combinator/pkg/format"
)

// LogHeader is the first line of the tab-separated report, followed by a blank line.
const LogHeader = "<Target>\t<R1>\t\t<func>\t<R2>\t\t<Value>\t\t<Diff>\t\t<% Diff>\n\n"

// CSVHeader names the columns of the CSV and XLSX reports.
var CSVHeader = []string{"target", "r1", "func", "r2", "value", "diff", "percent_diff"}

// Writer is a report destination. Close flushes buffered records and
// releases the underlying file.
type Writer interface {
	search.RecordWriter
	Close() error
}

// Create opens the report file at path in the given format. The file is
// created (or, for xlsx, checked for writability) before returning so a bad
// destination fails before any search work is done. An unknown format is
// rejected before anything is created on disk.
func Create(outputFormat, path string) (Writer, error) {
	switch outputFormat {
	case constants.OutputFormatLog, constants.OutputFormatCSV, constants.OutputFormatXLSX:
	default:
		return nil, fmt.Errorf("unsupported output format: %s", outputFormat)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	if outputFormat == constants.OutputFormatXLSX {
		w, err := NewXLSXWriter(path)
		if err != nil {
			return nil, err
		}
		return w, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	if outputFormat == constants.OutputFormatCSV {
		return NewCSVWriter(file), nil
	}
	return NewLogWriter(file), nil
}

// FormatRecord renders one record as a line of the tab-separated report.
func FormatRecord(r search.Record) string {
	return fmt.Sprintf("%s\t%s\t<%s>\t%s\t%s\t%s\t%s\n",
		format.Scientific(r.Target),
		format.Scientific(r.A),
		r.Operator.Symbol(),
		format.Scientific(r.B),
		format.Scientific(r.Value),
		format.Scientific(r.Diff),
		format.Percent(r.PercentDiff),
	)
}

// LogWriter writes the tab-separated report.
type LogWriter struct {
	w      *bufio.Writer
	closer io.Closer
}

// NewLogWriter buffers writes to w. If w is an io.Closer it is closed by Close.
func NewLogWriter(w io.Writer) *LogWriter {
	closer, _ := w.(io.Closer)
	return &LogWriter{w: bufio.NewWriter(w), closer: closer}
}

// WriteHeader writes the column header line and a blank line.
func (l *LogWriter) WriteHeader() error {
	_, err := l.w.WriteString(LogHeader)
	return err
}

// WriteRecord writes one report line.
func (l *LogWriter) WriteRecord(r search.Record) error {
	_, err := l.w.WriteString(FormatRecord(r))
	return err
}

// Close flushes and closes the destination.
func (l *LogWriter) Close() error {
	err := l.w.Flush()
	if l.closer != nil {
		if cerr := l.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// CSVWriter writes the report as comma-separated values.
type CSVWriter struct {
	w      *csv.Writer
	closer io.Closer
}

// NewCSVWriter writes CSV to w. If w is an io.Closer it is closed by Close.
func NewCSVWriter(w io.Writer) *CSVWriter {
	closer, _ := w.(io.Closer)
	return &CSVWriter{w: csv.NewWriter(w), closer: closer}
}

// WriteHeader writes the column names.
func (c *CSVWriter) WriteHeader() error {
	return c.w.Write(CSVHeader)
}

// WriteRecord writes one row using the same field formatting as the log format.
func (c *CSVWriter) WriteRecord(r search.Record) error {
	return c.w.Write([]string{
		format.Scientific(r.Target),
		format.Scientific(r.A),
		r.Operator.Symbol(),
		format.Scientific(r.B),
		format.Scientific(r.Value),
		format.Scientific(r.Diff),
		format.Percent(r.PercentDiff),
	})
}

// Close flushes and closes the destination.
func (c *CSVWriter) Close() error {
	c.w.Flush()
	err := c.w.Error()
	if c.closer != nil {
		if cerr := c.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
