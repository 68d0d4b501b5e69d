package ingest

import (
	"fmt"
	"strconv"

	"github.com/okian/pavilion/internal/domain/model"
)

// cleanMatches converts raw match rows to typed records: season labels
// normalize to a single year, team names canonicalize through the alias
// table, and missing fields get their placeholder values.
func cleanMatches(f *frame) ([]model.Match, error) {
	if err := f.require("id", "season", "team1", "team2", "winner", "venue"); err != nil {
		return nil, err
	}

	out := make([]model.Match, 0, len(f.rows))
	for i, row := range f.rows {
		id, err := strconv.Atoi(f.get(row, "id"))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d has non-numeric match id", ErrMalformedCSV, i+1)
		}
		season, err := model.ParseSeason(f.get(row, "season"))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrMalformedCSV, i+1, err)
		}

		m := model.Match{
			ID:            id,
			Season:        season,
			City:          orDefault(f.get(row, "city"), model.UnknownPlace),
			Date:          f.get(row, "date"),
			MatchType:     f.get(row, "match_type"),
			PlayerOfMatch: orDefault(f.get(row, "player_of_match"), model.NonePlayer),
			Venue:         orDefault(f.get(row, "venue"), model.UnknownPlace),
			Team1:         model.CanonicalTeam(f.get(row, "team1")),
			Team2:         model.CanonicalTeam(f.get(row, "team2")),
			TossDecision:  f.get(row, "toss_decision"),
			Result:        f.get(row, "result"),
			ResultMargin:  f.getInt(row, "result_margin", 0),
			SuperOver:     f.get(row, "super_over") == "Y",
			Method:        orDefault(f.get(row, "method"), model.DefaultMethod),
			Umpire1:       f.get(row, "umpire1"),
			Umpire2:       f.get(row, "umpire2"),
		}

		if w := f.get(row, "winner"); w == "" {
			m.Winner = model.NoResult
		} else {
			m.Winner = model.CanonicalTeam(w)
		}
		if tw := f.get(row, "toss_winner"); tw == "" {
			m.TossWinner = model.NonePlayer
		} else {
			m.TossWinner = model.CanonicalTeam(tw)
		}

		out = append(out, m)
	}
	return out, nil
}

// cleanDeliveries converts raw delivery rows, canonicalizes team names,
// and denormalizes the season from the referenced match. Rows whose match
// id is unknown are dropped and counted.
func cleanDeliveries(f *frame, matches []model.Match) ([]model.Delivery, int, error) {
	if err := f.require("match_id", "inning", "batting_team", "over", "ball", "batter", "bowler", "batsman_runs", "total_runs"); err != nil {
		return nil, 0, err
	}

	seasonByMatch := make(map[int]int, len(matches))
	for _, m := range matches {
		seasonByMatch[m.ID] = m.Season
	}

	out := make([]model.Delivery, 0, len(f.rows))
	orphans := 0
	for i, row := range f.rows {
		matchID, err := strconv.Atoi(f.get(row, "match_id"))
		if err != nil {
			return nil, 0, fmt.Errorf("%w: row %d has non-numeric match_id", ErrMalformedCSV, i+1)
		}
		season, ok := seasonByMatch[matchID]
		if !ok {
			orphans++
			continue
		}

		d := model.Delivery{
			MatchID:         matchID,
			Season:          season,
			Inning:          f.getInt(row, "inning", 0),
			BattingTeam:     model.CanonicalTeam(orDefault(f.get(row, "batting_team"), model.UnknownPlace)),
			BowlingTeam:     model.CanonicalTeam(orDefault(f.get(row, "bowling_team"), model.UnknownPlace)),
			Over:            f.getInt(row, "over", 0),
			Ball:            f.getInt(row, "ball", 0),
			Batter:          f.get(row, "batter"),
			Bowler:          f.get(row, "bowler"),
			NonStriker:      f.get(row, "non_striker"),
			BatterRuns:      f.getInt(row, "batsman_runs", 0),
			ExtraRuns:       f.getInt(row, "extra_runs", 0),
			TotalRuns:       f.getInt(row, "total_runs", 0),
			ExtrasType:      orDefault(f.get(row, "extras_type"), model.NonePlayer),
			PlayerDismissed: orDefault(f.get(row, "player_dismissed"), model.NonePlayer),
			DismissalKind:   orDefault(f.get(row, "dismissal_kind"), model.NonePlayer),
			Fielder:         orDefault(f.get(row, "fielder"), model.NonePlayer),
		}

		// Wickets are flagged explicitly in newer exports; older ones only
		// carry the dismissal columns.
		if f.has("is_wicket") {
			d.IsWicket = f.getInt(row, "is_wicket", 0) == 1
		} else {
			d.IsWicket = d.PlayerDismissed != model.NonePlayer
		}

		out = append(out, d)
	}
	return out, orphans, nil
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
