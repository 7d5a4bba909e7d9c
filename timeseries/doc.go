// Package timeseries provides the three-component record used as model input.
//
// A Record carries two horizontal components (X1, X2) and one vertical
// component (V) sampled on the same clock. The horizontal pair is treated as
// a single complex signal X1 + i*X2 by the estimation code.
//
// # Creating a Record
//
//	rec, err := timeseries.New(north, east, vertical)
//	if err != nil {
//	    log.Fatal(err) // components differ in length
//	}
//	rec.SampleRate = 100
//	rec.Station = "B001"
//
// # Loading from CSV
//
// Records exported as CSV with "n", "e" and "z" columns can be loaded directly:
//
//	opts := timeseries.DefaultCSVOptions()
//	opts.SampleRate = 100
//	rec, err := timeseries.LoadCSV("trace.csv", opts)
//
// # Centering
//
// The estimators assume zero-mean stationary input. Center returns a copy
// with each component's mean removed:
//
//	centered := rec.Center()
//	m1, m2, mv := centered.Means() // all ~0
//
// # Windowing
//
// Long recordings are processed in overlapping windows:
//
//	// 512-sample windows, 256 samples of overlap, at most 100 windows
//	windows, err := rec.Windows(512, 256, 100)
//
// Windows and Slice always copy, so callers may modify the result freely.
package timeseries
