package torontonian_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/photonq/hafnia/torontonian"
)

func serial() *torontonian.Options { return &torontonian.Options{Workers: 1} }

// tmsvOperator returns the torontonian operator of a two-mode squeezed
// vacuum with the given mean photon number, optionally rotated by a
// phase. The real part of its torontonian is exactly 1.
func tmsvOperator(meanN float64, phase complex128) *mat.CDense {
	r := math.Asinh(math.Sqrt(meanN))
	t := complex(math.Tanh(r), 0)
	pc := cmplx.Conj(phase)
	return mat.NewCDense(4, 4, []complex128{
		0, 0, 0, t * phase,
		0, 0, t * phase, 0,
		0, t * pc, 0, 0,
		t * pc, 0, 0, 0,
	})
}

// thermalFourierOperator builds the O matrix of an l-mode system whose
// first mode is a thermal state with mean photon number nbar, sent
// through a Fourier interferometer: O = [[A, 0], [0, A]] with
// A = nbar/(l·(1+nbar)) in every entry.
func thermalFourierOperator(l int, nbar float64) *mat.CDense {
	a := nbar / (float64(l) * (1 + nbar))
	o := mat.NewCDense(2*l, 2*l, nil)
	for i := 0; i < l; i++ {
		for j := 0; j < l; j++ {
			o.Set(i, j, complex(a, 0))
			o.Set(l+i, l+j, complex(a, 0))
		}
	}
	return o
}

// poch is the Pochhammer rising factorial x·(x+1)···(x+n−1).
func poch(x float64, n int) float64 {
	out := 1.0
	for j := 0; j < n; j++ {
		out *= x + float64(j)
	}
	return out
}

func factorial(n int) float64 {
	out := 1.0
	for j := 2; j <= n; j++ {
		out *= float64(j)
	}
	return out
}

// thermalFourierAnalytical is the closed form of the torontonian of
// thermalFourierOperator(l, nbar); at the removable singularity
// l == nbar the limit is 1.
func thermalFourierAnalytical(l int, nbar float64) float64 {
	if math.Abs(float64(l)-nbar) < 1e-14 {
		return 1.0
	}
	beta := -nbar / (float64(l) * (1 + nbar))
	pref := factorial(l) / beta
	p1 := pref * float64(l) / poch(1/beta, l+2)
	p2 := pref * beta / poch(2+1/beta, l)
	sign := 1.0
	if l%2 == 1 {
		sign = -1.0
	}
	return (p1 + p2) * sign
}

func TestTor_TMSV(t *testing.T) {
	// two-mode squeezed vacuum at mean photon number 1.0
	v, err := torontonian.Tor(tmsvOperator(1.0, 1), serial())
	require.NoError(t, err)
	require.InDelta(t, 1.0, real(v), 1e-9)
}

func TestTor_TMSVComplexZeroImagPart(t *testing.T) {
	// the same operator fed through the complex path with zero imaginary
	// parts must reproduce the real result identically
	o := tmsvOperator(1.0, 1)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			o.Set(i, j, complex(real(o.At(i, j)), 0))
		}
	}
	v, err := torontonian.Tor(o, serial())
	require.NoError(t, err)
	require.InDelta(t, 1.0, real(v), 1e-9)
}

func TestTor_TMSVComplexPhase(t *testing.T) {
	// a phase rotation must cancel through the principal-branch roots;
	// this is the branch-consistency regression
	phase := cmplx.Exp(0.3i)
	v, err := torontonian.Tor(tmsvOperator(1.0, phase), serial())
	require.NoError(t, err)
	require.InDelta(t, 1.0, real(v), 1e-9)
	require.InDelta(t, 0.0, imag(v), 1e-9)
}

func TestTor_VacuumIsZero(t *testing.T) {
	// the all-zero operator is the vacuum: every subset term is ±1 and
	// the binomial signs cancel to exact zero
	for k := 1; k <= 5; k++ {
		v, err := torontonian.Tor(mat.NewCDense(2*k, 2*k, nil), serial())
		require.NoError(t, err)
		require.Equal(t, complex128(0), v, "k=%d", k)
	}
}

func TestTor_ThermalFourierFamily(t *testing.T) {
	// closed-form family across l modes and a grid of thermal occupations
	for l := 1; l <= 5; l++ {
		for j := 1; j <= 11; j++ {
			nbar := 0.25 * float64(j)
			want := thermalFourierAnalytical(l, nbar)
			got, err := torontonian.Tor(thermalFourierOperator(l, nbar), serial())
			require.NoError(t, err)
			require.InDelta(t, want, real(got), 1e-9*(1+math.Abs(want)), "l=%d nbar=%v", l, nbar)
			require.InDelta(t, 0.0, imag(got), 1e-9, "l=%d nbar=%v", l, nbar)
		}
	}
}

func TestTor_Empty(t *testing.T) {
	v, err := torontonian.Tor(&mat.CDense{}, serial())
	require.NoError(t, err)
	require.Equal(t, complex128(1), v)
}

func TestTor_ParallelMatchesSerial(t *testing.T) {
	o := thermalFourierOperator(5, 1.75)
	s, err := torontonian.Tor(o, serial())
	require.NoError(t, err)
	for _, workers := range []int{2, 4, 8} {
		p, err := torontonian.Tor(o, &torontonian.Options{Workers: workers})
		require.NoError(t, err)
		require.Less(t, cmplx.Abs(p-s), 1e-10*(1+cmplx.Abs(s)), "workers=%d", workers)
	}
}

func TestTor_SameWorkersSameBits(t *testing.T) {
	o := thermalFourierOperator(4, 0.5)
	opts := &torontonian.Options{Workers: 3}
	v1, err := torontonian.Tor(o, opts)
	require.NoError(t, err)
	v2, err := torontonian.Tor(o, opts)
	require.NoError(t, err)
	require.Equal(t, v1, v2, "fixed worker count must be bit-reproducible")
}

func TestTor_OddDimension(t *testing.T) {
	_, err := torontonian.Tor(mat.NewCDense(3, 3, nil), nil)
	require.ErrorIs(t, err, torontonian.ErrOddDimension)
}

func TestTor_NonSquare(t *testing.T) {
	_, err := torontonian.Tor(mat.NewCDense(2, 4, nil), nil)
	require.ErrorIs(t, err, torontonian.ErrNonSquare)
}

func TestTor_Nil(t *testing.T) {
	_, err := torontonian.Tor(nil, nil)
	require.ErrorIs(t, err, torontonian.ErrNilMatrix)
}
