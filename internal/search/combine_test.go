package search

import (
	"math"
	"testing"

	"github.com/e12tools/resistor-combinator/pkg/resistor"
	"github.com/google/go-cmp/cmp"
)

func TestCombineEmptyIsNoop(t *testing.T) {
	best := Match{A: 1, B: 2, Value: 3, Operator: resistor.Series}
	before := best

	for _, values := range [][]float64{nil, {}} {
		if Combine(resistor.Series, values, 10, 1e-3, &best) {
			t.Errorf("Combine() on empty values reported an early exit")
		}
		if diff := cmp.Diff(before, best); diff != "" {
			t.Errorf("Combine() on empty values changed best (-want +got):\n%s", diff)
		}
	}
}

func TestCombineCarriedZeroMatchIsNotBeaten(t *testing.T) {
	// The empty match has value 0, so for target 1 its diff is 1. The
	// closest series pair is 10+10=20 (diff 19) and the closest parallel
	// pair is 10||10=5 (diff 4); neither is closer than 1.
	values := []float64{10, 12}
	var best Match

	Combine(resistor.Series, values, 1, 1e-3, &best)
	Combine(resistor.Parallel, values, 1, 1e-3, &best)

	if diff := cmp.Diff(Match{}, best); diff != "" {
		t.Errorf("Combine() replaced the empty match (-want +got):\n%s", diff)
	}
}

func TestCombineFromEmptyMatch(t *testing.T) {
	values := []float64{10, 12}

	t.Run("Series only", func(t *testing.T) {
		best := emptyMatch()
		Combine(resistor.Series, values, 1, 1e-3, &best)
		want := Match{A: 10, B: 10, Value: 20, Operator: resistor.Series}
		if diff := cmp.Diff(want, best); diff != "" {
			t.Errorf("Combine() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Series then parallel", func(t *testing.T) {
		best := emptyMatch()
		Combine(resistor.Series, values, 1, 1e-3, &best)
		Combine(resistor.Parallel, values, 1, 1e-3, &best)
		want := Match{A: 10, B: 10, Value: 5, Operator: resistor.Parallel}
		if diff := cmp.Diff(want, best); diff != "" {
			t.Errorf("Combine() mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestCombineNeverRegresses(t *testing.T) {
	values := resistor.Candidates(resistor.E12, 3, 1e7)
	var best Match

	for target := 1.0; target <= 2000; target += 7 {
		for _, op := range resistor.Operators {
			before := best.Diff(target)
			Combine(op, values, target, 1e-3, &best)
			if after := best.Diff(target); after > before {
				t.Fatalf("target %v, %v: diff regressed from %v to %v", target, op, before, after)
			}
		}
	}
}

func TestCombineEarlyExit(t *testing.T) {
	// 10+10=20 is within 1.5 of 21, so the search stops before reaching
	// the exact pair 10+11.
	values := []float64{10, 11}
	best := emptyMatch()

	if !Combine(resistor.Series, values, 21, 1.5, &best) {
		t.Fatalf("Combine() expected an early exit")
	}
	want := Match{A: 10, B: 10, Value: 20, Operator: resistor.Series}
	if diff := cmp.Diff(want, best); diff != "" {
		t.Errorf("Combine() mismatch (-want +got):\n%s", diff)
	}
}

func TestCombineNoEarlyExitWithoutCloseMatch(t *testing.T) {
	best := emptyMatch()
	if Combine(resistor.Series, []float64{10, 12}, 21, 1e-3, &best) {
		t.Errorf("Combine() reported an early exit without a close match")
	}
	// 10+12=22 is as far from 21 as 10+10=20, so the earlier pair stays.
	want := Match{A: 10, B: 10, Value: 20, Operator: resistor.Series}
	if diff := cmp.Diff(want, best); diff != "" {
		t.Errorf("Combine() mismatch (-want +got):\n%s", diff)
	}
}

func TestCombineTieBreak(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		target float64
		want   Match
	}{
		{
			// (10,30) and (20,20) both hit 40 exactly; the lower head wins.
			name:   "Lower head index wins",
			values: []float64{10, 20, 30},
			target: 40,
			want:   Match{A: 10, B: 30, Value: 40, Operator: resistor.Series},
		},
		{
			// (10,15)=25 and (10,25)=35 are both 5 away from 30.
			name:   "Lower partner index wins",
			values: []float64{10, 15, 25},
			target: 30,
			want:   Match{A: 10, B: 15, Value: 25, Operator: resistor.Series},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			best := emptyMatch()
			// A zero tolerance disables the early exit.
			Combine(resistor.Series, tt.values, tt.target, 0, &best)
			if diff := cmp.Diff(tt.want, best); diff != "" {
				t.Errorf("Combine() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCombineParallelWithZeroCandidate(t *testing.T) {
	// 0||0 = 1/(Inf+Inf) = 0, and 0||10 = 0: nothing is closer to 1 than
	// the first pair, so the zero pair stands.
	best := emptyMatch()
	Combine(resistor.Parallel, []float64{0, 10}, 1, 1e-3, &best)

	if best.A != 0 || best.B != 0 || best.Value != 0 {
		t.Errorf("Combine() = %+v, expected the 0||0 pair", best)
	}
}

func TestCombineNaNNeverWins(t *testing.T) {
	best := emptyMatch()
	Combine(resistor.Series, []float64{math.NaN(), 10}, 20, 1e-3, &best)

	want := Match{A: 10, B: 10, Value: 20, Operator: resistor.Series}
	if diff := cmp.Diff(want, best); diff != "" {
		t.Errorf("Combine() mismatch (-want +got):\n%s", diff)
	}
}
