package hvarma

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Windowing describes how a long record is split before assembly.
type Windowing struct {
	Size    int // Samples per window
	Overlap int // Samples shared by consecutive windows
	Max     int // Maximum number of windows (0 = no limit)
}

// Config holds everything an Estimator needs.
type Config struct {
	Params    Params
	Windowing Windowing
}

// DefaultConfig returns the default configuration: order 30, lags up to
// 128, weights 0.5/0.5, 512-sample windows overlapping by 256, at most 1000
// windows.
func DefaultConfig() Config {
	return Config{
		Params: Params{
			Order:      30,
			MaxTau:     128,
			Weights:    Weights{Mu: 0.5, Nu: 0.5},
			Convention: Symmetric,
		},
		Windowing: Windowing{
			Size:    512,
			Overlap: 256,
			Max:     1000,
		},
	}
}

// Validate checks the model parameters and their consistency with the
// window layout.
func (c Config) Validate() error {
	if err := c.Params.validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	w := c.Windowing
	if w.Size <= 0 {
		return fmt.Errorf("%w: window_size %d must be positive", ErrInvalidConfig, w.Size)
	}
	if 2*c.Params.MaxTau > w.Size {
		return fmt.Errorf("%w: 2*maxtau (%d) must not exceed window_size (%d)", ErrInvalidConfig, 2*c.Params.MaxTau, w.Size)
	}
	if w.Overlap < 0 || w.Overlap >= w.Size {
		return fmt.Errorf("%w: overlap %d must be in [0, window_size)", ErrInvalidConfig, w.Overlap)
	}
	if w.Max < 0 {
		return fmt.Errorf("%w: max_windows %d must not be negative", ErrInvalidConfig, w.Max)
	}
	return nil
}

// ignoredKeys are read by the spectral post-processing stage. They are
// accepted so that one parameter file can drive both stages.
var ignoredKeys = map[string]bool{
	"nfir":        true,
	"neg_freq":    true,
	"pos_freq":    true,
	"freq_points": true,
	"freq_conf":   true,
	"plot_conf":   true,
	"output_dir":  true,
}

// LoadConfig reads a parameter file made of "parameter=value" lines on top
// of DefaultConfig. Blank lines and lines starting with '#' are skipped.
// The weights mu and nu accept "sigma" to request inverse-variance weights.
// The result is validated before it is returned.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return Config{}, fmt.Errorf("%w: line %d: expected parameter=value, got %q", ErrInvalidConfig, lineNo, line)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		if err := cfg.set(key, value); err != nil {
			return Config{}, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile loads a parameter file from disk.
func LoadConfigFile(filename string) (Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	return LoadConfig(file)
}

func (c *Config) set(key, value string) error {
	var err error
	switch key {
	case "model_order":
		c.Params.Order, err = parseInt(key, value)
	case "maxtau":
		c.Params.MaxTau, err = parseInt(key, value)
	case "mu":
		c.Params.Weights.Mu, err = parseWeight(key, value)
	case "nu":
		c.Params.Weights.Nu, err = parseWeight(key, value)
	case "convention":
		c.Params.Convention, err = ParseSignConvention(value)
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	case "window_size":
		c.Windowing.Size, err = parseInt(key, value)
	case "overlap":
		c.Windowing.Overlap, err = parseInt(key, value)
	case "max_windows":
		c.Windowing.Max, err = parseInt(key, value)
	default:
		if !ignoredKeys[key] {
			err = fmt.Errorf("%w: unknown parameter %q", ErrInvalidConfig, key)
		}
	}
	return err
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not an integer", ErrInvalidConfig, key, value)
	}
	return n, nil
}

func parseWeight(key, value string) (float64, error) {
	if strings.EqualFold(value, "sigma") {
		return 0, nil
	}
	w, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not a number", ErrInvalidConfig, key, value)
	}
	return w, nil
}
