// Package fixture generates synthetic, schema-compatible CSV datasets
// for local development and load testing when the real data files are
// not distributed with the repository.
package fixture

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"strconv"

	"github.com/okian/pavilion/internal/domain/model"
	"github.com/okian/pavilion/pkg/logger"
)

// Generation shape constants.
const (
	inningsPerMatch = 2
	oversPerInnings = 20
	ballsPerOver    = 6
	squadSize       = 8
)

// Config controls the synthetic dataset shape. The same seed always
// produces the same files.
type Config struct {
	Seed             int64
	StartSeason      int
	Seasons          int
	MatchesPerSeason int
}

// DefaultConfig returns a dataset shape comparable to a few real seasons.
func DefaultConfig() Config {
	return Config{
		Seed:             1,
		StartSeason:      2008,
		Seasons:          3,
		MatchesPerSeason: 14,
	}
}

var teams = []string{
	"Chennai Super Kings",
	"Mumbai Indians",
	"Kolkata Knight Riders",
	"Royal Challengers Bangalore",
	"Rajasthan Royals",
	"Delhi Capitals",
	"Punjab Kings",
	"Sunrisers Hyderabad",
}

var venues = []string{
	"Wankhede Stadium",
	"Eden Gardens",
	"MA Chidambaram Stadium",
	"M Chinnaswamy Stadium",
	"Arun Jaitley Stadium",
	"Sawai Mansingh Stadium",
}

var dismissals = []string{
	model.DismissalCaught,
	model.DismissalBowled,
	model.DismissalLBW,
	model.DismissalRunOut,
	model.DismissalStumped,
}

// Generate writes a matches CSV and a deliveries CSV sharing consistent
// match ids, team names, and player names.
func Generate(ctx context.Context, cfg Config, matches, deliveries io.Writer) error {
	log := logger.Get().Named("fixture")
	rng := rand.New(rand.NewSource(cfg.Seed))

	mw := csv.NewWriter(matches)
	dw := csv.NewWriter(deliveries)

	if err := mw.Write([]string{
		"id", "season", "city", "date", "match_type", "player_of_match", "venue",
		"team1", "team2", "toss_winner", "toss_decision", "winner",
		"result", "result_margin", "super_over", "method", "umpire1", "umpire2",
	}); err != nil {
		return fmt.Errorf("write matches header: %w", err)
	}
	if err := dw.Write([]string{
		"match_id", "inning", "batting_team", "bowling_team", "over", "ball",
		"batter", "bowler", "non_striker", "batsman_runs", "extra_runs", "total_runs",
		"extras_type", "is_wicket", "player_dismissed", "dismissal_kind", "fielder",
	}); err != nil {
		return fmt.Errorf("write deliveries header: %w", err)
	}

	matchID := 0
	for s := 0; s < cfg.Seasons; s++ {
		season := cfg.StartSeason + s
		for m := 0; m < cfg.MatchesPerSeason; m++ {
			matchID++
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("generation cancelled: %w", err)
			}
			if err := writeMatch(rng, mw, dw, matchID, season); err != nil {
				return err
			}
		}
	}

	mw.Flush()
	dw.Flush()
	if err := mw.Error(); err != nil {
		return fmt.Errorf("flush matches: %w", err)
	}
	if err := dw.Error(); err != nil {
		return fmt.Errorf("flush deliveries: %w", err)
	}

	log.Info(ctx, "fixture dataset generated",
		logger.Int("matches", matchID),
		logger.Int("seasons", cfg.Seasons))
	return nil
}

func writeMatch(rng *rand.Rand, mw, dw *csv.Writer, matchID, season int) error {
	t1 := rng.Intn(len(teams))
	t2 := rng.Intn(len(teams) - 1)
	if t2 >= t1 {
		t2++
	}
	team1, team2 := teams[t1], teams[t2]

	tossWinner := team1
	if rng.Intn(2) == 1 {
		tossWinner = team2
	}
	decision := "bat"
	if rng.Intn(2) == 1 {
		decision = "field"
	}
	winner := team1
	if rng.Intn(2) == 1 {
		winner = team2
	}

	venue := venues[rng.Intn(len(venues))]
	date := fmt.Sprintf("%d-%02d-%02d", season, 4+rng.Intn(2), 1+rng.Intn(28))
	pom := playerName(winner, rng.Intn(squadSize))

	if err := mw.Write([]string{
		strconv.Itoa(matchID), strconv.Itoa(season), venue, date, "league", pom, venue,
		team1, team2, tossWinner, decision, winner,
		"runs", strconv.Itoa(1 + rng.Intn(60)), "N", "Normal", "Umpire A", "Umpire B",
	}); err != nil {
		return fmt.Errorf("write match %d: %w", matchID, err)
	}

	for inning := 1; inning <= inningsPerMatch; inning++ {
		batting, bowling := team1, team2
		if inning == 2 {
			batting, bowling = team2, team1
		}
		if err := writeInnings(rng, dw, matchID, inning, batting, bowling); err != nil {
			return err
		}
	}
	return nil
}

func writeInnings(rng *rand.Rand, dw *csv.Writer, matchID, inning int, batting, bowling string) error {
	striker := 0
	nonStriker := 1
	wickets := 0

	for over := 0; over < oversPerInnings; over++ {
		bowler := playerName(bowling, rng.Intn(squadSize))
		for ball := 1; ball <= ballsPerOver; ball++ {
			runs := rollRuns(rng)
			extras := 0
			extrasType := ""
			if rng.Intn(12) == 0 {
				extras = 1
				extrasType = "wides"
			}

			isWicket := "0"
			dismissed, kind, fielder := "", "", ""
			if runs == 0 && extras == 0 && rng.Intn(9) == 0 && wickets < squadSize-1 {
				isWicket = "1"
				dismissed = playerName(batting, striker)
				kind = dismissals[rng.Intn(len(dismissals))]
				if kind == model.DismissalCaught || kind == model.DismissalRunOut || kind == model.DismissalStumped {
					fielder = playerName(bowling, rng.Intn(squadSize))
				}
				wickets++
				striker = maxPlayer(striker, nonStriker) + 1
			}

			if err := dw.Write([]string{
				strconv.Itoa(matchID), strconv.Itoa(inning), batting, bowling,
				strconv.Itoa(over), strconv.Itoa(ball),
				playerName(batting, striker), bowler, playerName(batting, nonStriker),
				strconv.Itoa(runs), strconv.Itoa(extras), strconv.Itoa(runs + extras),
				extrasType, isWicket, dismissed, kind, fielder,
			}); err != nil {
				return fmt.Errorf("write delivery: %w", err)
			}

			if runs%2 == 1 {
				striker, nonStriker = nonStriker, striker
			}
		}
		striker, nonStriker = nonStriker, striker
	}
	return nil
}

// rollRuns draws runs off the bat with a rough T20 distribution.
func rollRuns(rng *rand.Rand) int {
	switch r := rng.Intn(100); {
	case r < 35:
		return 0
	case r < 65:
		return 1
	case r < 78:
		return 2
	case r < 82:
		return 3
	case r < 93:
		return 4
	default:
		return 6
	}
}

func playerName(team string, n int) string {
	return fmt.Sprintf("%s Player %d", initials(team), n+1)
}

func initials(team string) string {
	out := make([]byte, 0, 4)
	prevSpace := true
	for i := 0; i < len(team); i++ {
		if team[i] == ' ' {
			prevSpace = true
			continue
		}
		if prevSpace {
			out = append(out, team[i])
		}
		prevSpace = false
	}
	return string(out)
}

func maxPlayer(a, b int) int {
	if a > b {
		return a
	}
	return b
}
