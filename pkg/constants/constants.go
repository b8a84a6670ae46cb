// Package constants provides shared constants for the resistor-combinator application.
package constants

// Search defaults
const (
	// DefaultDecades is the number of power-of-ten tiers the base table is scaled across
	DefaultDecades = 6

	// DefaultEndValue is the sentinel candidate appended after all decades (a 10M resistor)
	DefaultEndValue = 1e+7

	// DefaultTolerance is the early-exit threshold, an order of magnitude better than 1%
	DefaultTolerance = 1e-3

	// DefaultTargetStart is the first target resistance in ohms
	DefaultTargetStart = 1.0

	// DefaultTargetEnd is the last target resistance in ohms
	DefaultTargetEnd = 1e+7

	// DefaultProgressEvery is how many targets pass between progress log lines
	DefaultProgressEvery int64 = 500_000
)

// Output format constants
const (
	// OutputFormatLog is the tab-separated text table
	OutputFormatLog = "log"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatXLSX is the Excel workbook output format
	OutputFormatXLSX = "xlsx"
)

// File constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultOutputFile is the default report file name
	DefaultOutputFile = "E12_1-10M_combinations.log"

	// EnvPrefix prefixes environment variable overrides, e.g. E12_SEARCH_DECADES
	EnvPrefix = "E12"
)

// Spreadsheet limits
const (
	// MaxXLSXRows is the maximum number of rows in one Excel worksheet
	MaxXLSXRows = 1_048_576

	// XLSXSheetName is the worksheet the report is streamed into
	XLSXSheetName = "Sheet1"
)

// Numeric constants
const (
	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// DecadeBase is the scaling factor between decades
	DecadeBase = 10.0
)
