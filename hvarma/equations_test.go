package hvarma

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/gohvarma/internal/testutil"
	"github.com/sartorproj/gohvarma/stats"
)

func TestParamsSize(t *testing.T) {
	assert.Equal(t, 2, Params{}.Size())
	assert.Equal(t, 5, Params{Order: 1}.Size())
	assert.Equal(t, 92, Params{Order: 30}.Size())
}

func TestDefaultWeightEquivalence(t *testing.T) {
	x1, x2, v := testutil.Triaxial(20, 180)
	const maxTau = 15
	cov, err := stats.Covariance(x1, x2, v, maxTau)
	require.NoError(t, err)

	explicit := Weights{
		Mu: 1 / cov.VerticalAt(0),
		Nu: 1 / real(cov.HorizontalAt(0)),
	}

	for _, conv := range []SignConvention{Symmetric, Reference} {
		auto, err := ComputeEquations(x1, x2, v, 14, Params{Order: 4, MaxTau: maxTau, Convention: conv})
		require.NoError(t, err)
		fixed, err := ComputeEquations(x1, x2, v, 14, Params{Order: 4, MaxTau: maxTau, Weights: explicit, Convention: conv})
		require.NoError(t, err)

		assert.Equal(t, explicit, auto.Weights)
		assert.True(t, mat.Equal(fixed.Matrix, auto.Matrix), conv.String())
		assert.True(t, mat.Equal(fixed.Indep, auto.Indep), conv.String())
	}
}

func TestPartialAutoWeights(t *testing.T) {
	x1, x2, v := testutil.Triaxial(21, 80)
	cov, err := stats.Covariance(x1, x2, v, 5)
	require.NoError(t, err)

	w, err := ResolveWeights(cov, Weights{Mu: 0.25})
	require.NoError(t, err)
	assert.Equal(t, 0.25, w.Mu)
	assert.Equal(t, 1/real(cov.HorizontalAt(0)), w.Nu)

	w, err = ResolveWeights(cov, Weights{Nu: 4})
	require.NoError(t, err)
	assert.Equal(t, 1/cov.VerticalAt(0), w.Mu)
	assert.Equal(t, 4.0, w.Nu)
}

func TestComputeEquationsDoesNotModifyInputs(t *testing.T) {
	x1, x2, v := testutil.Triaxial(22, 64)
	c1 := append([]float64(nil), x1...)
	c2 := append([]float64(nil), x2...)
	cv := append([]float64(nil), v...)

	params := Params{Order: 2, MaxTau: 6}
	_, err := ComputeEquations(x1, x2, v, params.Size(), params)
	require.NoError(t, err)

	assert.Equal(t, c1, x1)
	assert.Equal(t, c2, x2)
	assert.Equal(t, cv, v)
}

func TestComputeEquationsInvalid(t *testing.T) {
	x1, x2, v := testutil.Triaxial(23, 16)
	ok := Params{Order: 2, MaxTau: 4, Weights: Weights{Mu: 1, Nu: 1}}

	tests := []struct {
		name      string
		x1, x2, v []float64
		size      int
		params    Params
		target    error
	}{
		{"length mismatch", x1[:10], x2, v, ok.Size(), ok, ErrInvalidArgument},
		{"empty signals", nil, nil, nil, ok.Size(), ok, ErrInvalidArgument},
		{"maxTau equals length", x1, x2, v, 11, Params{Order: 3, MaxTau: 16}, ErrInvalidArgument},
		{"negative maxTau", x1, x2, v, 2, Params{MaxTau: -1}, ErrInvalidArgument},
		{"order above maxTau", x1, x2, v, 17, Params{Order: 5, MaxTau: 4}, ErrInvalidArgument},
		{"negative order", x1, x2, v, -1, Params{Order: -1, MaxTau: 4}, ErrInvalidArgument},
		{"negative mu", x1, x2, v, ok.Size(), Params{Order: 2, MaxTau: 4, Weights: Weights{Mu: -0.5}}, ErrInvalidArgument},
		{"infinite nu", x1, x2, v, ok.Size(), Params{Order: 2, MaxTau: 4, Weights: Weights{Nu: math.Inf(1)}}, ErrInvalidArgument},
		{"NaN mu", x1, x2, v, ok.Size(), Params{Order: 2, MaxTau: 4, Weights: Weights{Mu: math.NaN()}}, ErrInvalidArgument},
		{"unknown convention", x1, x2, v, ok.Size(), Params{Order: 2, MaxTau: 4, Convention: SignConvention(3)}, ErrInvalidArgument},
		{"size mismatch", x1, x2, v, 7, ok, ErrSizeMismatch},
		{"full system size", x1, x2, v, 3 * (ok.Order + 1), ok, ErrSizeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eq, err := ComputeEquations(tt.x1, tt.x2, tt.v, tt.size, tt.params)
			require.ErrorIs(t, err, tt.target)
			assert.Nil(t, eq)
		})
	}
}

func TestSizeMismatchIsInvalidArgument(t *testing.T) {
	require.ErrorIs(t, ErrSizeMismatch, ErrInvalidArgument)
}

func TestUndefinedWeight(t *testing.T) {
	x1, x2, v := testutil.Triaxial(24, 32)
	zeros := make([]float64, 32)

	tests := []struct {
		name      string
		x1, x2, v []float64
		w         Weights
		wantErr   bool
	}{
		{"silent vertical with auto mu", x1, x2, zeros, Weights{}, true},
		{"silent horizontal with auto nu", zeros, zeros, v, Weights{Mu: 1}, true},
		{"silent vertical with fixed mu", x1, x2, zeros, Weights{Mu: 1}, false},
		{"silent horizontal with fixed weights", zeros, zeros, v, Weights{Mu: 1, Nu: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := Params{Order: 1, MaxTau: 3, Weights: tt.w}
			_, err := ComputeEquations(tt.x1, tt.x2, tt.v, params.Size(), params)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUndefinedWeight)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestResolveWeightsInvalid(t *testing.T) {
	_, err := ResolveWeights(nil, Weights{})
	require.ErrorIs(t, err, ErrInvalidArgument)

	cov, err := stats.Covariance([]float64{1, 2}, []float64{0, 1}, []float64{1, -1}, 1)
	require.NoError(t, err)
	_, err = ResolveWeights(cov, Weights{Mu: -1})
	require.ErrorIs(t, err, ErrInvalidArgument)
}
