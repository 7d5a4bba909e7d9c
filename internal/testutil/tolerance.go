package testutil

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair differs by more than eps.
func RequireSliceNearlyEqual(t *testing.T, want, got []float64, eps float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDeltaf(t, want[i], got[i], eps, "index %d", i)
	}
}

// RequireComplexNearlyEqual is RequireSliceNearlyEqual for complex slices,
// comparing by modulus of the difference.
func RequireComplexNearlyEqual(t *testing.T, want, got []complex128, eps float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		diff := cmplx.Abs(want[i] - got[i])
		require.LessOrEqualf(t, diff, eps, "index %d: want %v, got %v", i, want[i], got[i])
	}
}

// RequireMatrixNearlyEqual fails t if got does not match the row-major
// expectation want within eps.
func RequireMatrixNearlyEqual(t *testing.T, want [][]float64, got mat.Matrix, eps float64) {
	t.Helper()
	r, c := got.Dims()
	require.Len(t, want, r, "row count")
	for i := range want {
		require.Lenf(t, want[i], c, "column count of row %d", i)
		for j := range want[i] {
			require.InDeltaf(t, want[i][j], got.At(i, j), eps, "entry (%d, %d)", i, j)
		}
	}
}

// RequireSymmetric fails t if the square matrix m has |m_ij - m_ji| > eps.
func RequireSymmetric(t *testing.T, m mat.Matrix, eps float64) {
	t.Helper()
	r, c := m.Dims()
	require.Equal(t, r, c, "matrix must be square")
	for i := 0; i < r; i++ {
		for j := i + 1; j < c; j++ {
			require.InDeltaf(t, m.At(i, j), m.At(j, i), eps, "entries (%d, %d) and (%d, %d)", i, j, j, i)
		}
	}
}
