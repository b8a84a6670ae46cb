// Package testutil provides common utility functions for testing.
package testutil

import (
	"bufio"
	"os"
	"testing"

	"github.com/e12tools/resistor-combinator/internal/search"
)

// FindRecord finds the record for target in the records slice.
// Returns a pointer to the record if found, nil otherwise.
func FindRecord(records []search.Record, target float64) *search.Record {
	for i := range records {
		if records[i].Target == target {
			return &records[i]
		}
	}
	return nil
}

// ReadLines returns the lines of the file at path, failing the test on error.
func ReadLines(t testing.TB, path string) []string {
	t.Helper()

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return lines
}
