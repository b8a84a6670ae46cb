// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/e12tools/resistor-combinator/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatLog, constants.OutputFormatCSV, constants.OutputFormatXLSX:
		return nil
	}
	return fmt.Errorf("expected output format of %s, %s or %s, got %s",
		constants.OutputFormatLog, constants.OutputFormatCSV, constants.OutputFormatXLSX, format)
}
