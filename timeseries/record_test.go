package timeseries

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	x1 := []float64{1, 2, 3}
	x2 := []float64{4, 5, 6}
	v := []float64{7, 8, 9}

	rec, err := New(x1, x2, v)
	require.NoError(t, err)
	assert.Equal(t, 3, rec.Len())
	assert.Equal(t, x1, rec.X1)
	assert.Equal(t, x2, rec.X2)
	assert.Equal(t, v, rec.V)
}

func TestNewLengthMismatch(t *testing.T) {
	tests := []struct {
		name      string
		x1, x2, v []float64
	}{
		{"short x2", []float64{1, 2}, []float64{1}, []float64{1, 2}},
		{"short v", []float64{1, 2}, []float64{1, 2}, []float64{1}},
		{"long x1", []float64{1, 2, 3}, []float64{1, 2}, []float64{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.x1, tt.x2, tt.v)
			require.ErrorIs(t, err, ErrLengthMismatch)
		})
	}
}

func TestMeansAndCenter(t *testing.T) {
	rec, err := New(
		[]float64{1, 2, 3, 4},
		[]float64{-2, -2, -2, -2},
		[]float64{10, 0, 10, 0},
	)
	require.NoError(t, err)

	m1, m2, mv := rec.Means()
	assert.InDelta(t, 2.5, m1, 1e-12)
	assert.InDelta(t, -2.0, m2, 1e-12)
	assert.InDelta(t, 5.0, mv, 1e-12)

	centered := rec.Center()
	c1, c2, cv := centered.Means()
	assert.InDelta(t, 0, c1, 1e-12)
	assert.InDelta(t, 0, c2, 1e-12)
	assert.InDelta(t, 0, cv, 1e-12)
	assert.Equal(t, []float64{-1.5, -0.5, 0.5, 1.5}, centered.X1)

	// Original must be untouched
	assert.Equal(t, []float64{1, 2, 3, 4}, rec.X1)
}

func TestMeansEmpty(t *testing.T) {
	rec, err := New(nil, nil, nil)
	require.NoError(t, err)

	m1, m2, mv := rec.Means()
	assert.Zero(t, m1)
	assert.Zero(t, m2)
	assert.Zero(t, mv)
}

func TestHorizontal(t *testing.T) {
	rec, err := New([]float64{1, 0, -1}, []float64{0, 2, 3}, []float64{0, 0, 0})
	require.NoError(t, err)

	zx := rec.Horizontal()
	assert.Equal(t, []complex128{1, 2i, -1 + 3i}, zx)
}

func TestSlice(t *testing.T) {
	rec, err := New(
		[]float64{0, 1, 2, 3, 4},
		[]float64{5, 6, 7, 8, 9},
		[]float64{10, 11, 12, 13, 14},
	)
	require.NoError(t, err)
	rec.Station = "B001"
	rec.SampleRate = 50

	sub := rec.Slice(1, 4)
	assert.Equal(t, 3, sub.Len())
	assert.Equal(t, []float64{1, 2, 3}, sub.X1)
	assert.Equal(t, []float64{6, 7, 8}, sub.X2)
	assert.Equal(t, []float64{11, 12, 13}, sub.V)
	assert.Equal(t, "B001", sub.Station)
	assert.Equal(t, 50.0, sub.SampleRate)

	sub.X1[0] = math.Pi
	assert.Equal(t, 1.0, rec.X1[1], "slice must not alias the record")

	assert.Equal(t, 0, rec.Slice(3, 2).Len())
	assert.Equal(t, 5, rec.Slice(-3, 99).Len())
}

func TestCopy(t *testing.T) {
	rec, err := New([]float64{1, 2}, []float64{3, 4}, []float64{5, 6})
	require.NoError(t, err)

	cp := rec.Copy()
	cp.V[0] = 100
	assert.Equal(t, 5.0, rec.V[0])
}

func TestWindows(t *testing.T) {
	n := 10
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
	}
	rec, err := New(x, x, x)
	require.NoError(t, err)

	tests := []struct {
		name    string
		size    int
		overlap int
		limit   int
		starts  []float64
	}{
		{"no overlap", 4, 0, 0, []float64{0, 4}},
		{"half overlap", 4, 2, 0, []float64{0, 2, 4, 6}},
		{"limited", 4, 2, 2, []float64{0, 2}},
		{"whole record", 10, 5, 0, []float64{0}},
		{"step one", 8, 7, 0, []float64{0, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			windows, err := rec.Windows(tt.size, tt.overlap, tt.limit)
			require.NoError(t, err)
			require.Len(t, windows, len(tt.starts))
			for i, w := range windows {
				assert.Equal(t, tt.size, w.Len())
				assert.Equal(t, tt.starts[i], w.V[0])
			}
		})
	}
}

func TestWindowsInvalid(t *testing.T) {
	rec, err := New(make([]float64, 8), make([]float64, 8), make([]float64, 8))
	require.NoError(t, err)

	tests := []struct {
		name                 string
		size, overlap, limit int
	}{
		{"zero size", 0, 0, 0},
		{"negative overlap", 4, -1, 0},
		{"overlap equals size", 4, 4, 0},
		{"negative limit", 4, 0, -1},
		{"window exceeds record", 9, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rec.Windows(tt.size, tt.overlap, tt.limit)
			require.ErrorIs(t, err, ErrInvalidWindow)
		})
	}
}
