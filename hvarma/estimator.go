package hvarma

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sartorproj/gohvarma/timeseries"
)

// Estimator assembles normal equations for records under a fixed Config.
type Estimator struct {
	logger *zap.Logger
	cfg    Config
}

// NewEstimator validates cfg and returns an Estimator. A nil logger is
// replaced by a no-op logger.
func NewEstimator(logger *zap.Logger, cfg Config) (*Estimator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Estimator{
		logger: logger,
		cfg:    cfg,
	}, nil
}

// Config returns the configuration of the estimator.
func (e *Estimator) Config() Config {
	return e.cfg
}

// Equations centers rec and assembles its normal equations over the whole
// record. The record is not modified.
func (e *Estimator) Equations(rec *timeseries.Record) (*Equations, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: nil record", ErrInvalidArgument)
	}
	params := e.cfg.Params
	c := rec.Center()
	return ComputeEquations(c.X1, c.X2, c.V, params.Size(), params)
}

// WindowEquations splits rec according to the configured windowing and
// assembles one system per window, each window centered independently.
func (e *Estimator) WindowEquations(rec *timeseries.Record) ([]*Equations, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: nil record", ErrInvalidArgument)
	}

	start := time.Now()
	w := e.cfg.Windowing
	windows, err := rec.Windows(w.Size, w.Overlap, w.Max)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	out := make([]*Equations, 0, len(windows))
	for i, win := range windows {
		eq, err := e.Equations(win)
		if err != nil {
			return nil, fmt.Errorf("window %d: %w", i, err)
		}
		e.logger.Debug("window equations assembled",
			zap.Int("window", i),
			zap.Int("order", eq.Order),
			zap.Int("max_tau", e.cfg.Params.MaxTau),
			zap.Float64("mu", eq.Weights.Mu),
			zap.Float64("nu", eq.Weights.Nu),
		)
		out = append(out, eq)
	}

	e.logger.Info("record processed",
		zap.String("station", rec.Station),
		zap.Int("windows", len(out)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return out, nil
}
