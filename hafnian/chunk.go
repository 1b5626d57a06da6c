package hafnian

import (
	"github.com/photonq/hafnia/cmat"
	"github.com/photonq/hafnia/subset"
)

// traceChunk accumulates the trace-recursion summands for subset
// counters x ∈ [lo, hi) over the m = n/2 mode-pairs of the flattened
// matrix. loopC/loopD are nil for the plain hafnian; for the loop
// variant they hold the pair-swapped and raw diagonal vectors.
//
// Per subset: expand the mask into flat indices {2i, 2i+1}, build the
// pair submatrix B[i][j] = a[pos[i]][pos[j] XOR 1] (the XOR pairs each
// row with its partner column), take tr(B¹..Bᵐ), and fold them into the
// two-row symmetric-polynomial recurrence
//
//	comb ← comb shifted by i·j with weight (tr(Bⁱ)/(2i))ʲ / j!
//
// whose m-th coefficient, signed by (popcount vs m) parity, is the
// subset's contribution. The loop variant adds ½·Σ C₁D₁ to each step's
// factor, advancing C₁ ← C₁·B between steps.
func traceChunk(flat []complex128, n int, loopC, loopD []complex128, lo, hi uint64) cmat.Accumulator {
	var (
		m   = n / 2
		acc cmat.Accumulator
		// per-chunk scratch, reused across subsets
		pos    = make([]int, 0, n)
		b      = make([]complex128, n*n)   // pair submatrix
		pw     = make([]complex128, n*n)   // running power of b
		nx     = make([]complex128, n*n)   // next power scratch
		traces = make([]complex128, m)     // tr(B¹..Bᵐ)
		combA  = make([]complex128, m+1)   // recurrence row
		combB  = make([]complex128, m+1)   // recurrence row
		c1     []complex128                // loop: C restricted, advanced by B
		d1     []complex128                // loop: D restricted
		c1nx   []complex128                // loop: C₁·B scratch
	)
	loop := loopD != nil
	if loop {
		c1 = make([]complex128, n)
		d1 = make([]complex128, n)
		c1nx = make([]complex128, n)
	}

	for x := lo; x < hi; x++ {
		// expand the pair mask into flat row/column indices
		pos = subset.PairIndices(x, pos[:0])
		s := len(pos)

		// build B and the restricted loop vectors
		for i := 0; i < s; i++ {
			for j := 0; j < s; j++ {
				b[i*s+j] = flat[pos[i]*n+(pos[j]^1)]
			}
		}
		if loop {
			for i := 0; i < s; i++ {
				c1[i] = loopC[pos[i]]
				d1[i] = loopD[pos[i]]
			}
		}

		powTraces(b, pw, nx, s, m, traces)

		// two-row recurrence over the trace powers
		cur, nxt := combA, combB
		for k := range cur {
			cur[k] = 0
		}
		cur[0] = 1
		for i := 1; i <= m; i++ {
			factor := traces[i-1] / complex(float64(2*i), 0)
			if loop {
				var dot complex128
				for j := 0; j < s; j++ {
					dot += c1[j] * d1[j]
				}
				factor += 0.5 * dot
				// advance C₁ ← C₁·B for the next power step
				for j := 0; j < s; j++ {
					var sum complex128
					for k := 0; k < s; k++ {
						sum += c1[k] * b[k*s+j]
					}
					c1nx[j] = sum
				}
				c1, c1nx = c1nx, c1
			}
			copy(nxt, cur)
			powfactor := complex128(1)
			for j := 1; j <= m/i; j++ {
				powfactor = powfactor * factor / complex(float64(j), 0)
				for k := i*j + 1; k <= m+1; k++ {
					nxt[k-1] += cur[k-i*j-1] * powfactor
				}
			}
			cur, nxt = nxt, cur
		}

		// parity sign: popcount(x) = s/2 selected pairs vs m total
		summand := cur[m]
		if (s/2)%2 != m%2 {
			summand = -summand
		}
		acc.Add(summand)
	}
	return acc
}

// powTraces fills traces[i] = tr(b^(i+1)) for i < l, where b is s×s in
// row-major order. pw and nx are caller scratch of capacity ≥ s².
// Traces come from iterated products, not an eigensolve: l
// multiplications of an s×s matrix, O(l·s³).
func powTraces(b, pw, nx []complex128, s, l int, traces []complex128) {
	for i := 0; i < l; i++ {
		traces[i] = 0
	}
	if s == 0 {
		return // empty submatrix: all trace powers vanish
	}
	copy(pw[:s*s], b[:s*s])
	for p := 0; p < l; p++ {
		var tr complex128
		for i := 0; i < s; i++ {
			tr += pw[i*s+i]
		}
		traces[p] = tr
		if p+1 == l {
			break
		}
		// nx ← pw·b
		for i := 0; i < s; i++ {
			for j := 0; j < s; j++ {
				var sum complex128
				for k := 0; k < s; k++ {
					sum += pw[i*s+k] * b[k*s+j]
				}
				nx[i*s+j] = sum
			}
		}
		pw, nx = nx, pw
	}
}
