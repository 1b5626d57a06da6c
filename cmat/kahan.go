package cmat

import "math"

// Accumulator is a compensated complex summator (Kahan–Babuška /
// Neumaier variant). The combinatorial engines add up to 2⁶⁴ terms of
// wildly varying magnitude and alternating sign; plain summation sheds
// low-order bits exactly where the inclusion–exclusion cancellation
// needs them. Neumaier's form also survives terms larger than the
// running sum, which plain Kahan does not. Real and imaginary parts
// carry independent compensation.
//
// The zero value is ready to use. Accumulators must not be shared
// between goroutines; workers keep one each and the partials are folded
// with Combine in a fixed order.
type Accumulator struct {
	re, im   float64 // running totals
	cre, cim float64 // compensation (captured low-order error)
}

// Add folds v into the running sum.
// Complexity: O(1).
func (a *Accumulator) Add(v complex128) {
	a.re, a.cre = compAdd(a.re, a.cre, real(v))
	a.im, a.cim = compAdd(a.im, a.cim, imag(v))
}

// Combine folds another accumulator, compensation included, into this
// one. Used for the deterministic final reduction over worker partials;
// callers must combine in a fixed chunk order for reproducible bits.
// Complexity: O(1).
func (a *Accumulator) Combine(b Accumulator) {
	a.Add(complex(b.re, b.im))
	a.cre += b.cre
	a.cim += b.cim
}

// Sum returns the compensated total.
func (a *Accumulator) Sum() complex128 {
	return complex(a.re+a.cre, a.im+a.cim)
}

// compAdd performs one Neumaier step: the rounding error of sum+v is
// recovered from whichever operand dominates and banked into c.
func compAdd(sum, c, v float64) (newSum, newC float64) {
	t := sum + v
	if math.Abs(sum) >= math.Abs(v) {
		c += (sum - t) + v
	} else {
		c += (v - t) + sum
	}
	return t, c
}
