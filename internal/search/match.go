// Package search finds the pair of candidate resistors, and the way of
// combining them, that best approximates each target resistance.
package search

import (
	"math"

	"github.com/e12tools/resistor-combinator/pkg/mathutil"
	"github.com/e12tools/resistor-combinator/pkg/resistor"
)

// Match is the best combination found so far. The zero Match is the empty
// starting point: value 0 with no operator.
type Match struct {
	A        float64
	B        float64
	Value    float64
	Operator resistor.Operator
}

// emptyMatch is the starting point when best matches are not carried
// between targets. Any finite combination improves on it.
func emptyMatch() Match {
	return Match{Value: math.Inf(1)}
}

// Diff returns the absolute difference between target and the matched value.
func (m Match) Diff(target float64) float64 {
	return mathutil.AbsDiff(target, m.Value)
}

// Record is one report row.
type Record struct {
	Target      float64
	A           float64
	Operator    resistor.Operator
	B           float64
	Value       float64
	Diff        float64
	PercentDiff float64
}

// NewRecord builds the report row for target from its best match.
func NewRecord(target float64, m Match) Record {
	diff := m.Diff(target)
	return Record{
		Target:      target,
		A:           m.A,
		Operator:    m.Operator,
		B:           m.B,
		Value:       m.Value,
		Diff:        diff,
		PercentDiff: mathutil.PercentOf(diff, target),
	}
}
