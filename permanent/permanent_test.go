package permanent_test

import (
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/photonq/hafnia/permanent"
)

// bruteForce sums over all n! permutations directly. Usable up to n≈8;
// it is the ground truth the Ryser path is checked against.
func bruteForce(a *mat.CDense) complex128 {
	n, _ := a.Dims()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	var total complex128
	var recurse func(k int)
	recurse = func(k int) {
		if k == n {
			prod := complex128(1)
			for i := 0; i < n; i++ {
				prod *= a.At(i, perm[i])
			}
			total += prod
			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			recurse(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	recurse(0)
	return total
}

func randCDense(n int, rng *rand.Rand) *mat.CDense {
	data := make([]complex128, n*n)
	for i := range data {
		data[i] = complex(rng.Float64()-0.5, rng.Float64()-0.5)
	}
	return mat.NewCDense(n, n, data)
}

func serial() *permanent.Options { return &permanent.Options{Workers: 1} }

func TestPermanent_Empty(t *testing.T) {
	// 0×0 permanent is 1 by the empty-product convention
	p, err := permanent.Permanent(&mat.CDense{}, serial())
	require.NoError(t, err)
	require.Equal(t, complex128(1), p)
}

func TestPermanent_OneByOne(t *testing.T) {
	p, err := permanent.Permanent(mat.NewCDense(1, 1, []complex128{3 - 2i}), serial())
	require.NoError(t, err)
	require.Equal(t, complex128(3-2i), p)
}

func TestPermanent_Known2x2(t *testing.T) {
	// perm [[1,2],[3,4]] = 1·4 + 2·3 = 10
	a := mat.NewCDense(2, 2, []complex128{1, 2, 3, 4})
	p, err := permanent.Permanent(a, serial())
	require.NoError(t, err)
	require.InDelta(t, 10, real(p), 1e-12)
	require.InDelta(t, 0, imag(p), 1e-12)
}

func TestPermanent_AllOnesIsFactorial(t *testing.T) {
	// perm of the all-ones matrix is n!
	fact := 1.0
	for n := 1; n <= 10; n++ {
		fact *= float64(n)
		data := make([]complex128, n*n)
		for i := range data {
			data[i] = 1
		}
		p, err := permanent.Permanent(mat.NewCDense(n, n, data), serial())
		require.NoError(t, err)
		require.InEpsilon(t, fact, real(p), 1e-10, "n=%d", n)
		require.InDelta(t, 0, imag(p), 1e-6)
	}
}

func TestPermanent_Identity(t *testing.T) {
	// only the identity permutation survives
	for _, n := range []int{2, 5, 9} {
		id := mat.NewCDense(n, n, nil)
		for i := 0; i < n; i++ {
			id.Set(i, i, 1)
		}
		p, err := permanent.Permanent(id, serial())
		require.NoError(t, err)
		require.InDelta(t, 1, real(p), 1e-10)
		require.InDelta(t, 0, imag(p), 1e-10)
	}
}

func TestPermanent_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(29))
	for _, n := range []int{2, 3, 4, 5, 6, 7} {
		a := randCDense(n, rng)
		want := bruteForce(a)
		got, err := permanent.Permanent(a, serial())
		require.NoError(t, err)
		require.Less(t, cmplx.Abs(got-want), 1e-9, "n=%d", n)
	}
}

func TestPermanent_ParallelMatchesSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	a := randCDense(10, rng)
	s, err := permanent.Permanent(a, serial())
	require.NoError(t, err)
	for _, workers := range []int{2, 3, 8} {
		p, err := permanent.Permanent(a, &permanent.Options{Workers: workers})
		require.NoError(t, err)
		// worker count may shift last bits, never more
		require.Less(t, cmplx.Abs(p-s), 1e-10*(1+cmplx.Abs(s)), "workers=%d", workers)
	}
}

func TestPermanent_SameWorkersSameBits(t *testing.T) {
	rng := rand.New(rand.NewSource(37))
	a := randCDense(9, rng)
	opts := &permanent.Options{Workers: 4}
	p1, err := permanent.Permanent(a, opts)
	require.NoError(t, err)
	p2, err := permanent.Permanent(a, opts)
	require.NoError(t, err)
	require.Equal(t, p1, p2, "fixed worker count must be bit-reproducible")
}

func TestPermanent_NonSquare(t *testing.T) {
	_, err := permanent.Permanent(mat.NewCDense(2, 3, nil), nil)
	require.ErrorIs(t, err, permanent.ErrNonSquare)
}

func TestPermanent_Nil(t *testing.T) {
	_, err := permanent.Permanent(nil, nil)
	require.ErrorIs(t, err, permanent.ErrNilMatrix)
}
