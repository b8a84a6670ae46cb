package resistor

import "fmt"

// Operator is a way of combining two resistors.
type Operator int

const (
	// None is the zero Operator. It combines nothing and has an empty symbol.
	None Operator = iota
	// Series adds the two resistances.
	Series
	// Parallel takes the reciprocal of the summed reciprocals.
	Parallel
)

// Operators lists the combining operators in search order.
var Operators = []Operator{Series, Parallel}

// Apply combines a and b. Division by zero follows IEEE-754 rules.
func (o Operator) Apply(a, b float64) float64 {
	switch o {
	case Series:
		return a + b
	case Parallel:
		return 1.0 / ((1.0 / a) + (1.0 / b))
	default:
		return 0
	}
}

// Symbol returns the short display symbol used in reports.
func (o Operator) Symbol() string {
	switch o {
	case Series:
		return "&&"
	case Parallel:
		return "||"
	default:
		return ""
	}
}

func (o Operator) String() string {
	switch o {
	case None:
		return "none"
	case Series:
		return "series"
	case Parallel:
		return "parallel"
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}
