package divistack

import (
	"fmt"
	"math"
)

// Percent is a ratio expressed in percent.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// compared at a display precision
	const precision = 0.0001
	return math.Abs(float64(p-q)) < precision
}

func (p Percent) String() string {
	if math.IsNaN(float64(p)) || math.IsInf(float64(p), 0) {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", p)
}

// SignedString returns the percent with an explicit sign, "-" for zero.
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" || math.IsNaN(float64(p)) || math.IsInf(float64(p), 0) {
		return "-"
	}
	return res
}
