// Package ingest loads the two CSV datasets into typed, cleaned records.
package ingest

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/okian/pavilion/internal/domain/model"
	"github.com/okian/pavilion/pkg/logger"
)

// Dataset holds the cleaned, immutable record sets.
type Dataset struct {
	Matches    []model.Match
	Deliveries []model.Delivery

	// OrphanDeliveries counts delivery rows dropped because their match id
	// references no loaded match.
	OrphanDeliveries int
}

// Load reads, parses, and cleans both CSV files. Any error here is fatal
// to startup: the service has nothing to serve without its dataset.
func Load(ctx context.Context, matchesPath, deliveriesPath string) (*Dataset, error) {
	mf, err := openFile(matchesPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = mf.Close() }()

	df, err := openFile(deliveriesPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = df.Close() }()

	return Read(ctx, mf, df)
}

// Read parses and cleans the two datasets from readers. Split out from
// Load so tests can feed CSV content directly.
func Read(ctx context.Context, matches, deliveries io.Reader) (*Dataset, error) {
	log := logger.Get().Named("ingest")

	mFrame, err := readFrame(matches)
	if err != nil {
		return nil, fmt.Errorf("matches: %w", err)
	}
	ms, err := cleanMatches(mFrame)
	if err != nil {
		return nil, fmt.Errorf("matches: %w", err)
	}

	dFrame, err := readFrame(deliveries)
	if err != nil {
		return nil, fmt.Errorf("deliveries: %w", err)
	}
	ds, orphans, err := cleanDeliveries(dFrame, ms)
	if err != nil {
		return nil, fmt.Errorf("deliveries: %w", err)
	}

	if orphans > 0 {
		log.Warn(ctx, "deliveries referenced no known match and were dropped",
			logger.Int("orphans", orphans))
	}
	log.Info(ctx, "dataset loaded",
		logger.Int("matches", len(ms)),
		logger.Int("deliveries", len(ds)))

	return &Dataset{Matches: ms, Deliveries: ds, OrphanDeliveries: orphans}, nil
}

func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingFile, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}
