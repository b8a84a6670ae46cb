package output

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"
)

func TestXLSXWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	w, err := NewXLSXWriter(path)
	if err != nil {
		t.Fatalf("NewXLSXWriter() error = %v", err)
	}

	if err := w.WriteHeader(); err != nil {
		t.Fatalf("WriteHeader() error = %v", err)
	}
	for _, record := range sampleRecords()[2:] {
		if err := w.WriteRecord(record); err != nil {
			t.Fatalf("WriteRecord() error = %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("excelize.OpenFile() error = %v", err)
	}
	defer func() {
		_ = f.Close()
	}()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}

	expected := [][]string{
		{"target", "r1", "func", "r2", "value", "diff", "percent_diff"},
		{"50", "10", "&&", "39", "49", "1", "2"},
		{"100", "18", "&&", "82", "100", "0", "0"},
	}
	if diff := cmp.Diff(expected, rows); diff != "" {
		t.Errorf("worksheet mismatch (-want +got):\n%s", diff)
	}
}
