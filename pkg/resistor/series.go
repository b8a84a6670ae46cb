// Package resistor provides the preferred-value tables and the two ways of
// combining a pair of resistors.
package resistor

import (
	"math"

	"github.com/e12tools/resistor-combinator/pkg/constants"
)

// E12 holds the twelve preferred values of one decade.
var E12 = []float64{
	10.0, 12.0, 15.0, 18.0, 22.0, 27.0,
	33.0, 39.0, 47.0, 56.0, 68.0, 82.0,
}

// Candidates scales base across decades, decade-major then base-minor, and
// appends endValue as a final sentinel. The result has
// decades*len(base)+1 values. A negative decade count is treated as zero.
func Candidates(base []float64, decades int, endValue float64) []float64 {
	if decades < 0 {
		decades = 0
	}

	values := make([]float64, 0, decades*len(base)+1)
	for i := 0; i < decades; i++ {
		scale := math.Pow(constants.DecadeBase, float64(i))
		for _, v := range base {
			values = append(values, v*scale)
		}
	}
	return append(values, endValue)
}

// IsAscending reports whether values never decrease.
func IsAscending(values []float64) bool {
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return false
		}
	}
	return true
}
