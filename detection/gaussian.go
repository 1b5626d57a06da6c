package detection

import (
	"gonum.org/v1/gonum/mat"

	"github.com/photonq/hafnia/cmat"
)

// hbar fixes the quadrature convention: vacuum covariance = identity.
const hbar = 2.0

// beta maps an xxpp mean vector of length 2k to the complex
// displacement (α₁..α_k, ᾱ₁..ᾱ_k) with α_j = (x_j + i·p_j)/√(2ħ).
func beta(mu []float64) []complex128 {
	k := len(mu) / 2
	b := make([]complex128, 2*k)
	for j := 0; j < k; j++ {
		a := complex(mu[j]/2, mu[k+j]/2)
		b[j] = a
		b[k+j] = complex(real(a), -imag(a))
	}
	return b
}

// qmat builds the 2k×2k Husimi covariance Q from the xxpp quadrature
// covariance. Block structure in the (a, a†) basis:
//
//	Q = [[⟨a†a⟩+I, ⟨aa⟩*], [⟨aa⟩, ⟨a†a⟩*+I]]
//
// with the moment blocks read off the scaled quadrature blocks.
func qmat(cov *mat.SymDense) *mat.CDense {
	d := cov.SymmetricDim()
	k := d / 2
	s := 2.0 / hbar

	// ⟨a_i†a_j⟩ and ⟨a_i a_j⟩ from the x, p and xp blocks.
	aidaj := make([]complex128, k*k)
	aiaj := make([]complex128, k*k)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			x := cov.At(i, j) * s
			p := cov.At(k+i, k+j) * s
			xp := cov.At(i, k+j) * s
			px := cov.At(j, k+i) * s
			var eye float64
			if i == j {
				eye = 2
			}
			aidaj[i*k+j] = complex((x+p-eye)/4, (xp-px)/4)
			aiaj[i*k+j] = complex((x-p)/4, (xp+px)/4)
		}
	}

	q := mat.NewCDense(d, d, nil)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			ad := aidaj[i*k+j]
			aa := aiaj[i*k+j]
			q.Set(i, j, ad)
			q.Set(k+i, k+j, complex(real(ad), -imag(ad)))
			q.Set(k+i, j, aa)
			q.Set(i, k+j, complex(real(aa), -imag(aa)))
		}
	}
	for i := 0; i < d; i++ {
		q.Set(i, i, q.At(i, i)+1)
	}
	return q
}

// amat derives the pair matrix A = X·(I − Q⁻¹) from a factorized Q,
// where X swaps the a and a† blocks. A is symmetric for a physical
// state, and its principal reductions feed the hafnian engines.
func amat(lu *cmat.LU, d int) (*mat.CDense, error) {
	qinv, err := lu.Inverse()
	if err != nil {
		return nil, err
	}
	k := d / 2
	a := mat.NewCDense(d, d, nil)
	for i := 0; i < d; i++ {
		// Row i of A is row (i+k) mod d of I − Q⁻¹.
		src := (i + k) % d
		for j := 0; j < d; j++ {
			v := -qinv.At(src, j)
			if src == j {
				v += 1
			}
			a.Set(i, j, v)
		}
	}
	return a, nil
}
