// Package format renders resistance values for reports and terminal output.
package format

import (
	"fmt"
	"math"
)

// Scientific returns value in scientific notation with four fractional digits (e.g., "4.7000e+03").
func Scientific(value float64) string {
	return fmt.Sprintf("%.4e", value)
}

// Percent returns value as a fixed-point percentage with two fractional digits (e.g., "2.00%").
func Percent(value float64) string {
	return fmt.Sprintf("%2.2f%%", value)
}

var ohmPrefixes = []struct {
	scale  float64
	suffix string
}{
	{1e9, "G"},
	{1e6, "M"},
	{1e3, "k"},
}

// Ohms returns a resistance with an SI prefix and four significant digits (e.g., "4.7kΩ", "10MΩ").
func Ohms(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Sprintf("%vΩ", value)
	}
	magnitude := math.Abs(value)
	for _, p := range ohmPrefixes {
		if magnitude >= p.scale {
			return fmt.Sprintf("%.4g%sΩ", value/p.scale, p.suffix)
		}
	}
	return fmt.Sprintf("%.4gΩ", value)
}
