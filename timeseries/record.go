// Package timeseries provides the three-component record type and windowing utilities.
package timeseries

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrLengthMismatch is returned when the components of a record differ in length.
	ErrLengthMismatch = errors.New("timeseries: components must have the same length")

	// ErrInvalidWindow is returned when a window layout cannot be applied to a record.
	ErrInvalidWindow = errors.New("timeseries: invalid window")
)

// Record holds three synchronous components of a ground-motion recording.
// X1 and X2 are the horizontal components combined into X1 + i*X2, V is the
// vertical component.
type Record struct {
	X1         []float64
	X2         []float64
	V          []float64
	SampleRate float64 // Samples per second (informational)
	Station    string
}

// New creates a record from its three components.
func New(x1, x2, v []float64) (*Record, error) {
	if len(x1) != len(x2) || len(x1) != len(v) {
		return nil, fmt.Errorf("%w: x1=%d x2=%d v=%d", ErrLengthMismatch, len(x1), len(x2), len(v))
	}
	return &Record{
		X1: x1,
		X2: x2,
		V:  v,
	}, nil
}

// Len returns the number of samples in the record.
func (r *Record) Len() int {
	return len(r.V)
}

// Means returns the arithmetic mean of each component.
func (r *Record) Means() (m1, m2, mv float64) {
	if r.Len() == 0 {
		return 0, 0, 0
	}
	return stat.Mean(r.X1, nil), stat.Mean(r.X2, nil), stat.Mean(r.V, nil)
}

// Center returns a copy of the record with each component shifted to zero mean.
func (r *Record) Center() *Record {
	out := r.Copy()
	m1, m2, mv := r.Means()
	floats.AddConst(-m1, out.X1)
	floats.AddConst(-m2, out.X2)
	floats.AddConst(-mv, out.V)
	return out
}

// Horizontal returns the complex horizontal signal X1 + i*X2.
func (r *Record) Horizontal() []complex128 {
	zx := make([]complex128, len(r.X1))
	for i := range zx {
		zx[i] = complex(r.X1[i], r.X2[i])
	}
	return zx
}

// Slice returns a copy of the samples from start to end (exclusive).
func (r *Record) Slice(start, end int) *Record {
	if start < 0 {
		start = 0
	}
	if end > r.Len() {
		end = r.Len()
	}
	if start >= end {
		return &Record{
			X1:         []float64{},
			X2:         []float64{},
			V:          []float64{},
			SampleRate: r.SampleRate,
			Station:    r.Station,
		}
	}

	return &Record{
		X1:         cloneRange(r.X1, start, end),
		X2:         cloneRange(r.X2, start, end),
		V:          cloneRange(r.V, start, end),
		SampleRate: r.SampleRate,
		Station:    r.Station,
	}
}

// Copy creates a deep copy of the record.
func (r *Record) Copy() *Record {
	return &Record{
		X1:         cloneRange(r.X1, 0, len(r.X1)),
		X2:         cloneRange(r.X2, 0, len(r.X2)),
		V:          cloneRange(r.V, 0, len(r.V)),
		SampleRate: r.SampleRate,
		Station:    r.Station,
	}
}

// Windows splits the record into windows of the given size. Consecutive
// windows start size-overlap samples apart; a window is emitted only when it
// fits entirely in the record. When limit > 0 at most limit windows are returned.
func (r *Record) Windows(size, overlap, limit int) ([]*Record, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: size %d must be positive", ErrInvalidWindow, size)
	}
	if overlap < 0 || overlap >= size {
		return nil, fmt.Errorf("%w: overlap %d must be in [0, %d)", ErrInvalidWindow, overlap, size)
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: window limit %d must not be negative", ErrInvalidWindow, limit)
	}
	if r.Len() < size {
		return nil, fmt.Errorf("%w: window of %d samples exceeds record of %d", ErrInvalidWindow, size, r.Len())
	}

	step := size - overlap
	var windows []*Record
	for start := 0; start+size <= r.Len(); start += step {
		windows = append(windows, r.Slice(start, start+size))
		if limit > 0 && len(windows) == limit {
			break
		}
	}
	return windows, nil
}

func cloneRange(src []float64, start, end int) []float64 {
	dst := make([]float64, end-start)
	copy(dst, src[start:end])
	return dst
}
