package search

import (
	"github.com/e12tools/resistor-combinator/pkg/mathutil"
	"github.com/e12tools/resistor-combinator/pkg/resistor"
)

// Combine tries every pair (values[h], values[i]) with i >= h, in order of
// increasing h then i, and overwrites best whenever a pair lands strictly
// closer to target. A value may pair with itself. The first pair to reach
// the minimum difference wins ties.
//
// As soon as an improvement is closer than tolerance the search stops and
// Combine returns true. An empty values slice leaves best untouched.
func Combine(op resistor.Operator, values []float64, target, tolerance float64, best *Match) bool {
	for h, head := range values {
		for _, partner := range values[h:] {
			value := op.Apply(head, partner)
			if !mathutil.Improves(target, value, best.Value) {
				continue
			}

			*best = Match{A: head, B: partner, Value: value, Operator: op}
			if mathutil.BelowTolerance(mathutil.AbsDiff(target, value), tolerance) {
				return true
			}
		}
	}
	return false
}
