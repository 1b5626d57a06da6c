package hafnian

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/photonq/hafnia/cmat"
)

// exponent packing for the low-rank generating polynomial: one byte per
// factor column, so rank ≤ 8 and n < 256.
const (
	maxLowRank  = 8
	maxLowRankN = 255
)

// LowRankHafnian returns hafnian(G·Gᵗ) given only the n×r factor G,
// without materializing the n×n product. The cost is polynomial in n
// and exponential only in r, so the specialization pays off for r ≪ n.
//
// Identity: with l_i(z) = Σ_k G[i,k]·z_k and P(z) = ∏ᵢ l_i(z),
//
//	haf(GGᵗ) = Σ_{even e₁..e_r, Σe=n}  [∏_k (e_k−1)!!] · [z₁^e₁···z_r^e_r] P
//
// which follows from expanding exp(½·Σ_k (g_k·x)²) and matching the
// multilinear coefficient. P is built by n successive linear-form
// multiplications over a packed-exponent coefficient table; the final
// extraction walks the table in sorted key order with compensated
// summation, so the result is deterministic.
//
// Blueprint:
//
//	Stage 1 (Validate): g non-nil, r ≤ n, packing limits; odd n → 0.
//	Stage 2 (Shortcut): r = 1 collapses to (n−1)!!·∏ᵢ G[i,0].
//	Stage 3 (Expand): multiply the n linear forms into the table.
//	Stage 4 (Extract): keep all-even exponent keys, weight by double
//	        factorials, reduce in sorted order.
//
// Errors: ErrNilMatrix, ErrRankExceedsRows, ErrRankTooLarge.
// Complexity: O(n·r·C(n+r−1, r−1)) time, O(C(n+r−1, r−1)) memory.
func LowRankHafnian(g *mat.CDense) (complex128, error) {
	// Stage 1: Validate factor shape
	if g == nil {
		return 0, fmt.Errorf("LowRankHafnian: %w", ErrNilMatrix)
	}
	n, r := g.Dims()
	if r > n {
		return 0, fmt.Errorf("LowRankHafnian: factor %dx%d: %w", n, r, ErrRankExceedsRows)
	}
	if n == 0 {
		return 1, nil // empty matching convention
	}
	if n%2 == 1 {
		return 0, nil // no perfect matching exists; documented terminal value
	}
	if r > maxLowRank || n > maxLowRankN {
		return 0, fmt.Errorf("LowRankHafnian: factor %dx%d: %w", n, r, ErrRankTooLarge)
	}

	// Stage 2: Rank-one shortcut — a single even power z₁ⁿ
	if r == 1 {
		prod := complex128(1)
		for i := 0; i < n; i++ {
			prod *= g.At(i, 0)
		}
		return prod * complex(doubleFactorial(n-1), 0), nil
	}

	// Stage 3: Expand P(z) = ∏ᵢ (Σ_k G[i,k]·z_k) term by term.
	// Keys pack the r exponents into one byte each.
	cur := map[uint64]complex128{0: 1}
	for i := 0; i < n; i++ {
		next := make(map[uint64]complex128, len(cur)*r)
		for key, coeff := range cur {
			for k := 0; k < r; k++ {
				gik := g.At(i, k)
				if gik == 0 {
					continue
				}
				next[key+uint64(1)<<uint(8*k)] += coeff * gik
			}
		}
		cur = next
	}

	// Stage 4: Extract the all-even exponent coefficients.
	// Sorted key order keeps the reduction independent of map iteration.
	keys := make([]uint64, 0, len(cur))
	for key := range cur {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(a, b int) bool { return keys[a] < keys[b] })

	var acc cmat.Accumulator
	for _, key := range keys {
		weight := 1.0
		even := true
		for k := 0; k < r; k++ {
			e := int(key >> uint(8*k) & 0xff)
			if e%2 == 1 {
				even = false
				break
			}
			if e > 0 {
				weight *= doubleFactorial(e - 1)
			}
		}
		if even {
			acc.Add(cur[key] * complex(weight, 0))
		}
	}
	return acc.Sum(), nil
}

// doubleFactorial returns k!! for k ≥ -1 (with (-1)!! = 0!! = 1).
func doubleFactorial(k int) float64 {
	out := 1.0
	for ; k > 1; k -= 2 {
		out *= float64(k)
	}
	return out
}
