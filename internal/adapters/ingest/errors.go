package ingest

import "errors"

// Sentinel kinds for dataset loading errors. All are fatal at startup.
var (
	ErrMissingFile   = errors.New("dataset file not found")
	ErrMalformedCSV  = errors.New("malformed dataset CSV")
	ErrMissingColumn = errors.New("dataset missing required column")
)
