package ingest

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// frame is a lightweight row-oriented wrapper over a parsed CSV. The gota
// dataframe does the parsing and shape validation; downstream code only
// needs positional access by column name, so everything stays string-typed
// and field conversion happens in the cleaning pass.
type frame struct {
	cols map[string]int
	rows [][]string
}

// readFrame parses CSV content into a frame. Returns ErrMalformedCSV when
// the input is not a rectangular CSV with a header row.
func readFrame(r io.Reader) (*frame, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithLazyQuotes(true),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCSV, df.Err)
	}

	records := df.Records()
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrMalformedCSV)
	}

	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	return &frame{cols: cols, rows: records[1:]}, nil
}

// require verifies that all named columns are present.
func (f *frame) require(names ...string) error {
	for _, n := range names {
		if _, ok := f.cols[n]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingColumn, n)
		}
	}
	return nil
}

// has reports whether a column exists.
func (f *frame) has(name string) bool {
	_, ok := f.cols[name]
	return ok
}

// get returns the trimmed cell value for a column in a row, or "" when the
// column is absent.
func (f *frame) get(row []string, name string) string {
	i, ok := f.cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	v := strings.TrimSpace(row[i])
	if v == "NA" || v == "NaN" {
		return ""
	}
	return v
}

// getInt returns the cell as an int, or fallback when empty or not numeric.
func (f *frame) getInt(row []string, name string, fallback int) int {
	v := f.get(row, name)
	if v == "" {
		return fallback
	}
	// Margins appear as "6.0" in some exports.
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	if fl, err := strconv.ParseFloat(v, 64); err == nil {
		return int(fl)
	}
	return fallback
}
