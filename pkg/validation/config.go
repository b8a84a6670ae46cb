// Package validation provides configuration validation utilities.
package validation

import (
	"errors"
	"fmt"
	"math"

	"github.com/e12tools/resistor-combinator/pkg/constants"
)

// SearchValidator holds the search and output settings to be checked.
type SearchValidator struct {
	Decades      int
	BaseValues   []float64
	EndValue     float64
	Tolerance    float64
	TargetStart  float64
	TargetEnd    float64
	Targets      []float64
	OutputFormat string
}

// TargetCount returns how many report records the settings produce.
func (sv *SearchValidator) TargetCount() int64 {
	if len(sv.Targets) > 0 {
		return int64(len(sv.Targets))
	}
	if sv.TargetEnd < sv.TargetStart {
		return 0
	}
	return int64(math.Floor(sv.TargetEnd-sv.TargetStart)) + 1
}

// ValidateAll returns warnings for questionable settings and an error joining
// every setting the search cannot run with.
func (sv *SearchValidator) ValidateAll() ([]string, error) {
	var warnings []string
	var errs []error

	if err := ValidateOutputFormat(sv.OutputFormat); err != nil {
		errs = append(errs, err)
	}

	if sv.Decades < 0 {
		errs = append(errs, fmt.Errorf("decades must not be negative, got %d", sv.Decades))
	} else if sv.Decades == 0 {
		warnings = append(warnings, "decades is 0: only the end value sentinel will be combined")
	}

	if len(sv.BaseValues) == 0 && sv.Decades > 0 {
		warnings = append(warnings, "base value table is empty: only the end value sentinel will be combined")
	}
	for i := 1; i < len(sv.BaseValues); i++ {
		if sv.BaseValues[i] < sv.BaseValues[i-1] {
			warnings = append(warnings, fmt.Sprintf("base values are not ascending at index %d (%g < %g): tie-break order follows table order",
				i, sv.BaseValues[i], sv.BaseValues[i-1]))
			break
		}
	}

	if math.IsNaN(sv.Tolerance) || sv.Tolerance < 0 {
		errs = append(errs, fmt.Errorf("tolerance must be a non-negative number, got %g", sv.Tolerance))
	}

	if !isPositiveFinite(sv.EndValue) {
		errs = append(errs, fmt.Errorf("endValue must be positive and finite, got %g", sv.EndValue))
	}

	if len(sv.Targets) > 0 {
		for _, target := range sv.Targets {
			if err := ValidateTarget(target); err != nil {
				errs = append(errs, err)
				break
			}
		}
	} else {
		if !isPositiveFinite(sv.TargetStart) {
			errs = append(errs, fmt.Errorf("targetStart must be positive, got %g", sv.TargetStart))
		}
		if math.IsNaN(sv.TargetEnd) || sv.TargetEnd < sv.TargetStart {
			errs = append(errs, fmt.Errorf("targetEnd (%g) is before targetStart (%g)", sv.TargetEnd, sv.TargetStart))
		}
	}

	if limit := 2 * sv.EndValue; sv.maxTarget() > limit {
		warnings = append(warnings, fmt.Sprintf("targets above %g exceed the largest series combination of the end value", limit))
	}

	if sv.OutputFormat == constants.OutputFormatXLSX {
		// One row is taken by the header.
		if rows := sv.TargetCount() + 1; rows > constants.MaxXLSXRows {
			errs = append(errs, fmt.Errorf("xlsx output holds at most %d targets, configuration produces %d",
				constants.MaxXLSXRows-1, rows-1))
		}
	}

	return warnings, errors.Join(errs...)
}

// ValidateTarget checks that a single target resistance is positive and finite.
func ValidateTarget(target float64) error {
	if !isPositiveFinite(target) {
		return fmt.Errorf("targets must be positive, got %g", target)
	}
	return nil
}

func isPositiveFinite(value float64) bool {
	return value > 0 && !math.IsInf(value, 1)
}

func (sv *SearchValidator) maxTarget() float64 {
	if len(sv.Targets) == 0 {
		return sv.TargetEnd
	}
	highest := sv.Targets[0]
	for _, target := range sv.Targets[1:] {
		highest = math.Max(highest, target)
	}
	return highest
}
