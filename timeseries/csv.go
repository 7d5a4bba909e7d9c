package timeseries

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrNoData is returned when a CSV source holds no sample rows.
var ErrNoData = errors.New("timeseries: no samples found in CSV")

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	NorthColumn    string  // Column for x1 (default: "n")
	EastColumn     string  // Column for x2 (default: "e")
	VerticalColumn string  // Column for v (default: "z")
	HasHeader      bool    // Whether CSV has header row (default: true)
	Delimiter      rune    // Field delimiter (default: ',')
	SkipRows       int     // Number of rows to skip at start
	SampleRate     float64 // Copied to the record
	Station        string  // Copied to the record
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		NorthColumn:    "n",
		EastColumn:     "e",
		VerticalColumn: "z",
		HasHeader:      true,
		Delimiter:      ',',
	}
}

// LoadCSV loads a three-component record from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Record, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a three-component record from an io.Reader.
//
// With a header the components are located by name (case-insensitive).
// Without one the columns are taken as north, east, vertical in that order.
// Every row must carry a numeric value for all three components; a gap
// would misalign the components, so it is reported as an error.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Record, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	northIdx, eastIdx, vertIdx := 0, 1, 2
	if opts.HasHeader {
		header, err := reader.Read()
		if err == io.EOF {
			return nil, ErrNoData
		}
		if err != nil {
			return nil, err
		}

		northIdx, eastIdx, vertIdx = -1, -1, -1
		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			switch {
			case strings.EqualFold(h, opts.NorthColumn):
				northIdx = i
			case strings.EqualFold(h, opts.EastColumn):
				eastIdx = i
			case strings.EqualFold(h, opts.VerticalColumn):
				vertIdx = i
			}
		}
		for name, idx := range map[string]int{
			opts.NorthColumn:    northIdx,
			opts.EastColumn:     eastIdx,
			opts.VerticalColumn: vertIdx,
		} {
			if idx < 0 {
				return nil, fmt.Errorf("timeseries: column %q not found in CSV header", name)
			}
		}
	}

	rec := &Record{
		SampleRate: opts.SampleRate,
		Station:    opts.Station,
	}

	for row := 1; ; row++ {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		n, err := parseField(fields, northIdx)
		if err != nil {
			return nil, fmt.Errorf("timeseries: row %d: %w", row, err)
		}
		e, err := parseField(fields, eastIdx)
		if err != nil {
			return nil, fmt.Errorf("timeseries: row %d: %w", row, err)
		}
		z, err := parseField(fields, vertIdx)
		if err != nil {
			return nil, fmt.Errorf("timeseries: row %d: %w", row, err)
		}

		rec.X1 = append(rec.X1, n)
		rec.X2 = append(rec.X2, e)
		rec.V = append(rec.V, z)
	}

	if rec.Len() == 0 {
		return nil, ErrNoData
	}
	return rec, nil
}

func parseField(fields []string, idx int) (float64, error) {
	if idx >= len(fields) {
		return 0, fmt.Errorf("missing column %d", idx)
	}
	s := strings.TrimSpace(strings.Trim(fields[idx], "\""))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("column %d: %q is not a number", idx, s)
	}
	return v, nil
}

// SaveCSV writes the record to a CSV file with an "n,e,z" header.
func SaveCSV(rec *Record, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if _, err := writer.WriteString("n,e,z\n"); err != nil {
		return err
	}
	for i := 0; i < rec.Len(); i++ {
		writer.WriteString(strconv.FormatFloat(rec.X1[i], 'g', -1, 64))
		writer.WriteString(",")
		writer.WriteString(strconv.FormatFloat(rec.X2[i], 'g', -1, 64))
		writer.WriteString(",")
		writer.WriteString(strconv.FormatFloat(rec.V[i], 'g', -1, 64))
		writer.WriteString("\n")
	}

	return writer.Flush()
}
