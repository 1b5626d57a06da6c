package detection

import (
	"fmt"
	"math"
	"math/bits"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/photonq/hafnia/cmat"
	"github.com/photonq/hafnia/hafnian"
)

// ThresholdDetectionProb returns the probability of observing the given
// click pattern (one 0/1 entry per mode) on the Gaussian state with
// xxpp mean mu and quadrature covariance cov (ħ = 2).
//
// The probability is assembled by inclusion–exclusion over the clicked
// modes: for each subset S of clicks the marginal vacuum overlap of the
// no-click modes joined with S is added with sign (−1)^|S|. Each
// overlap is a Cholesky solve on the positive-definite block
// (Σ_M + I)/2, so the cost is O(2^c · m³) for c clicks over m modes.
//
// Blueprint:
//
//	Stage 1: validate shapes and pattern entries.
//	Stage 2: split modes into clicks and no-clicks.
//	Stage 3: alternating sum of marginal vacuum overlaps.
func ThresholdDetectionProb(mu []float64, cov *mat.SymDense, pattern []int) (float64, error) {
	k, err := checkState(mu, cov, pattern)
	if err != nil {
		return 0, err
	}
	if k == 0 {
		return 1, nil
	}

	var clicks, silent []int
	for i, v := range pattern {
		switch v {
		case 0:
			silent = append(silent, i)
		case 1:
			clicks = append(clicks, i)
		default:
			return 0, fmt.Errorf("detection: threshold pattern entry %d at mode %d: %w", v, i, ErrPatternValue)
		}
	}
	if len(clicks) > 63 {
		return 0, fmt.Errorf("detection: %d click modes: %w", len(clicks), ErrTooLarge)
	}

	// Σ_{S ⊆ clicks} (−1)^|S| · p₀(silent ∪ S), accumulated with
	// compensation: the terms alternate and cancel heavily.
	var acc cmat.Accumulator
	modes := make([]int, 0, k)
	for s := uint64(0); s < uint64(1)<<len(clicks); s++ {
		modes = append(modes[:0], silent...)
		for b, c := range clicks {
			if s&(uint64(1)<<b) != 0 {
				modes = append(modes, c)
			}
		}
		p0, err := vacuumOverlap(mu, cov, modes)
		if err != nil {
			return 0, err
		}
		if bits.OnesCount64(s)%2 == 1 {
			p0 = -p0
		}
		acc.Add(complex(p0, 0))
	}
	return real(acc.Sum()), nil
}

// vacuumOverlap computes the probability that every mode in modes is
// projected onto vacuum, marginalizing over the rest of the state:
//
//	p₀(M) = exp(−½ μ_Mᵀ (Σ_M + I)⁻¹ μ_M) / √det((Σ_M + I)/2)
//
// with the empty selection contributing exactly 1.
func vacuumOverlap(mu []float64, cov *mat.SymDense, modes []int) (float64, error) {
	m := len(modes)
	if m == 0 {
		return 1, nil
	}
	k := cov.SymmetricDim() / 2

	// Quadrature indices of the selected modes: x rows then p rows.
	qi := make([]int, 2*m)
	for t, md := range modes {
		qi[t] = md
		qi[m+t] = k + md
	}

	b := mat.NewSymDense(2*m, nil)
	muM := mat.NewVecDense(2*m, nil)
	for i := 0; i < 2*m; i++ {
		muM.SetVec(i, mu[qi[i]])
		for j := i; j < 2*m; j++ {
			v := cov.At(qi[i], qi[j])
			if i == j {
				v++
			}
			b.SetSym(i, j, v/2)
		}
	}

	var chol mat.Cholesky
	if !chol.Factorize(b) {
		return 0, ErrNotPositiveDefinite
	}
	sol := mat.NewVecDense(2*m, nil)
	if err := chol.SolveVecTo(sol, muM); err != nil {
		return 0, ErrNotPositiveDefinite
	}
	// (Σ_M + I)⁻¹ = B⁻¹/2 for B = (Σ_M + I)/2.
	expo := -0.25 * mat.Dot(muM, sol)
	return math.Exp(expo) / math.Sqrt(chol.Det()), nil
}

// Probability returns the probability of the photon-number outcome
// pattern (one non-negative count per mode) on the Gaussian state with
// xxpp mean mu and quadrature covariance cov (ħ = 2).
//
// The state is recast in the (a, a†) basis: Husimi covariance Q, pair
// matrix A = X·(I − Q⁻¹) and displacement β. A mode with count c
// contributes c repetitions of its rows and columns to the principal
// reduction of A; the loop hafnian of the reduction (diagonal replaced
// by γ = β̄ − A·β when the state is displaced) is scaled by
//
//	exp(−½ β̄ᵀ Q⁻¹ β) / (√det Q · ∏ nᵢ!).
//
// Cost is dominated by the hafnian of a 2n×2n reduction for n total
// photons, i.e. O(n³·2ⁿ).
func Probability(mu []float64, cov *mat.SymDense, pattern []int) (float64, error) {
	k, err := checkState(mu, cov, pattern)
	if err != nil {
		return 0, err
	}
	if k == 0 {
		return 1, nil
	}
	total := 0
	for i, v := range pattern {
		if v < 0 {
			return 0, fmt.Errorf("detection: photon count %d at mode %d: %w", v, i, ErrPatternValue)
		}
		total += v
	}

	// Stage 1: complex-basis state parameters.
	q := qmat(cov)
	var lu cmat.LU
	if err := lu.Factorize(q); err != nil {
		return 0, err
	}
	detQ := lu.Det()
	if detQ == 0 {
		return 0, ErrNotPositiveDefinite
	}
	bv := beta(mu)
	displaced := false
	for _, v := range mu {
		if v != 0 {
			displaced = true
			break
		}
	}

	// Stage 2: normalization exp(−½ β̄ᵀQ⁻¹β)/√det Q.
	sol, err := lu.SolveVec(bv)
	if err != nil {
		return 0, ErrNotPositiveDefinite
	}
	var quad complex128
	for i, v := range bv {
		quad += complex(real(v), -imag(v)) * sol[i]
	}
	pref := cmplx.Exp(-0.5*quad) / cmplx.Sqrt(detQ)

	// Stage 3: loop hafnian of the pattern reduction of A.
	haf := complex(1, 0)
	if total > 0 {
		a, err := amat(&lu, 2*k)
		if err != nil {
			return 0, err
		}
		idx := make([]int, 0, 2*total)
		for i, c := range pattern {
			for t := 0; t < c; t++ {
				idx = append(idx, i)
			}
		}
		for i, c := range pattern {
			for t := 0; t < c; t++ {
				idx = append(idx, k+i)
			}
		}
		an, err := cmat.Principal(a, idx)
		if err != nil {
			return 0, err
		}
		if displaced {
			gamma, err := cmat.MulVec(a, bv)
			if err != nil {
				return 0, err
			}
			for i, v := range bv {
				gamma[i] = complex(real(v), -imag(v)) - gamma[i]
			}
			for t, j := range idx {
				an.Set(t, t, gamma[j])
			}
		}
		opts := hafnian.DefaultOptions()
		opts.Loop = displaced
		haf, err = hafnian.Hafnian(an, &opts)
		if err != nil {
			return 0, err
		}
	}

	norm := 1.0
	for _, c := range pattern {
		for t := 2; t <= c; t++ {
			norm *= float64(t)
		}
	}
	return real(pref*haf) / norm, nil
}

// checkState validates the shared (mu, cov, pattern) contract and
// returns the mode count.
func checkState(mu []float64, cov *mat.SymDense, pattern []int) (int, error) {
	if cov == nil {
		return 0, ErrNilCovariance
	}
	d := cov.SymmetricDim()
	if d%2 != 0 {
		return 0, fmt.Errorf("detection: covariance is %dx%d: %w", d, d, ErrOddDimension)
	}
	if len(mu) != d {
		return 0, fmt.Errorf("detection: mean length %d for %dx%d covariance: %w", len(mu), d, d, ErrDimensionMismatch)
	}
	if len(pattern) != d/2 {
		return 0, fmt.Errorf("detection: pattern length %d for %d modes: %w", len(pattern), d/2, ErrDimensionMismatch)
	}
	return d / 2, nil
}
