// Command export precomputes every dashboard view and writes each one
// as a JSON file, so the aggregates can be consumed without running the
// HTTP service.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	app "github.com/okian/pavilion/internal/app"
	"github.com/okian/pavilion/internal/config"
	"github.com/okian/pavilion/pkg/logger"
)

func main() {
	outDir := flag.String("out", "export", "Output directory for JSON files")
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx := context.Background()
	log := logger.Get().Named("export")

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal(ctx, "load config", logger.Error(err))
	}

	svc := app.New(
		app.WithDatasetPaths(cfg.MatchesPath, cfg.DeliveriesPath),
		app.WithDefaultLimit(cfg.DefaultLimit),
		app.WithMaxLimit(cfg.MaxLimit),
	)
	if err := svc.Start(ctx); err != nil {
		log.Fatal(ctx, "start service", logger.Error(err))
	}
	defer svc.Stop()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal(ctx, "create output directory", logger.Error(err))
	}

	write := func(name string, v any) {
		path := filepath.Join(*outDir, name+".json")
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			log.Fatal(ctx, "marshal view", logger.String("view", name), logger.Error(err))
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			log.Fatal(ctx, "write view", logger.String("view", name), logger.Error(err))
		}
		log.Info(ctx, "view exported", logger.String("path", path))
	}

	write("overview", svc.Overview(ctx))
	write("teams", svc.Teams(ctx))
	write("players", svc.Players(ctx, cfg.DefaultLimit))
	write("venues", svc.Venues(ctx, cfg.DefaultLimit))

	for _, year := range svc.Seasons(ctx) {
		detail, err := svc.Season(ctx, year)
		if err != nil {
			log.Fatal(ctx, "season view", logger.Int("season", year), logger.Error(err))
		}
		write("season-"+strconv.Itoa(year), detail)
	}

	for _, name := range svc.TeamNames(ctx) {
		detail, err := svc.Team(ctx, name)
		if err != nil {
			log.Fatal(ctx, "team view", logger.String("team", name), logger.Error(err))
		}
		write(fmt.Sprintf("team-%s", slug(name)), detail)
	}

	log.Info(ctx, "export complete", logger.String("dir", *outDir))
}

// slug converts a team name into a safe file name component.
func slug(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			out = append(out, c)
		case c >= 'A' && c <= 'Z':
			out = append(out, c+('a'-'A'))
		case c == ' ' || c == '-' || c == '_':
			out = append(out, '-')
		}
	}
	return string(out)
}
