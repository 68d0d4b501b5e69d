// Command gen-data writes a synthetic, schema-compatible dataset for
// local development: a matches CSV and a deliveries CSV.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/okian/pavilion/internal/fixture"
	"github.com/okian/pavilion/pkg/logger"
)

func main() {
	cfg := fixture.DefaultConfig()

	var (
		matchesPath    = flag.String("matches", "data/matches.csv", "Output path for the matches CSV")
		deliveriesPath = flag.String("deliveries", "data/deliveries.csv", "Output path for the deliveries CSV")
		seed           = flag.Int64("seed", cfg.Seed, "Random seed; the same seed reproduces the same files")
		seasons        = flag.Int("seasons", cfg.Seasons, "Number of seasons to generate")
		perSeason      = flag.Int("matches-per-season", cfg.MatchesPerSeason, "Matches per season")
		startSeason    = flag.Int("start-season", cfg.StartSeason, "First season year")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx := context.Background()
	log := logger.Get().Named("gen-data")

	cfg.Seed = *seed
	cfg.Seasons = *seasons
	cfg.MatchesPerSeason = *perSeason
	cfg.StartSeason = *startSeason

	mf, err := os.Create(*matchesPath)
	if err != nil {
		log.Fatal(ctx, "create matches file", logger.Error(err))
	}
	defer func() { _ = mf.Close() }()

	df, err := os.Create(*deliveriesPath)
	if err != nil {
		log.Fatal(ctx, "create deliveries file", logger.Error(err))
	}
	defer func() { _ = df.Close() }()

	if err := fixture.Generate(ctx, cfg, mf, df); err != nil {
		log.Fatal(ctx, "generate dataset", logger.Error(err))
	}

	log.Info(ctx, "dataset written",
		logger.String("matches", *matchesPath),
		logger.String("deliveries", *deliveriesPath))
}
