// Package cmat provides the complex dense linear algebra the engines
// lean on: LU factorization with partial pivoting over gonum's
// *mat.CDense, determinants, linear solves and inverses, principal
// submatrix extraction, and a compensated complex accumulator.
//
// 🚀 Why a dedicated package?
//
//	gonum's mat package ships CDense as a complex container but carries
//	no complex factorizations (LU, determinant, solve live only on the
//	real types). The torontonian needs det(I − O_S) for complex O, and
//	the detection layer needs Q⁻¹ for the complex Husimi covariance —
//	so the factorization lives here, complex128 end to end.
//
// ✨ Key pieces:
//   - LU: partial-pivoting factorization; Det, SolveVec, Inverse.
//   - Principal: principal submatrix A[idx, idx] for an index list.
//   - Accumulator: Kahan-compensated complex summation, so long
//     alternating subset sums do not shed their low bits.
//
// All routines validate shapes fail-fast with package sentinels and
// never panic on user input. Complexity: LU O(n³) time, O(n²) memory;
// Principal O(s²); Accumulator O(1) per Add.
package cmat
