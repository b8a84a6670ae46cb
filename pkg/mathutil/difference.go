// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/e12tools/resistor-combinator/pkg/constants"
)

// AbsDiff returns |target - value|. NaN and infinities propagate unchanged.
func AbsDiff(target, value float64) float64 {
	return math.Abs(target - value)
}

// Improves reports whether value is strictly closer to target than best.
// A NaN on either side never improves.
func Improves(target, value, best float64) bool {
	return AbsDiff(target, value) < AbsDiff(target, best)
}

// BelowTolerance reports whether diff is strictly below tolerance.
func BelowTolerance(diff, tolerance float64) bool {
	return diff < tolerance
}

// PercentOf returns diff as a percentage of total. Unlike a guarded
// percentage helper, a zero total yields Inf or NaN.
func PercentOf(diff, total float64) float64 {
	return (diff / total) * constants.PercentageMultiplier
}
