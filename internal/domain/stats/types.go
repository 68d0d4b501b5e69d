// Package stats implements the aggregate queries over the two record sets.
// Every function is a pure reduction: filter, group, reduce, sort. An empty
// selection yields an empty slice, never an error.
package stats

import "sort"

// Count is a labeled tally, the common ranking row.
type Count struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Percentage is a labeled ratio expressed as 0-100.
type Percentage struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// SeasonLeader is the top performer of one season for some measure.
type SeasonLeader struct {
	Season int    `json:"season"`
	Player string `json:"player"`
	Value  int    `json:"value"`
}

// SeasonWinner is the team that won a season's final.
type SeasonWinner struct {
	Season int    `json:"season"`
	Winner string `json:"winner"`
}

// TeamTotal is one innings total with the opposing side.
type TeamTotal struct {
	MatchID  int    `json:"match_id"`
	Team     string `json:"team"`
	Opponent string `json:"opponent"`
	Runs     int    `json:"runs"`
}

// SeasonValue is one point of a per-season series.
type SeasonValue struct {
	Season int `json:"season"`
	Value  int `json:"value"`
}

// BatterSeries is a batter's per-season series, e.g. cumulative runs.
type BatterSeries struct {
	Batter string        `json:"batter"`
	Points []SeasonValue `json:"points"`
}

// TossOutcome correlates a toss decision with winning the match.
type TossOutcome struct {
	Decision      string  `json:"decision"`
	Matches       int     `json:"matches"`
	TossWinnerWon int     `json:"toss_winner_won"`
	WinPercent    float64 `json:"win_percent"`
}

// HeadToHead tallies the fixtures between two teams.
type HeadToHead struct {
	Team1     string  `json:"team1"`
	Team2     string  `json:"team2"`
	Matches   int     `json:"matches"`
	Wins      []Count `json:"wins"`
	NoResults int     `json:"no_results"`
}

// sortCounts orders by value descending, then label ascending so that
// ties render deterministically.
func sortCounts(counts []Count) {
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Value != counts[j].Value {
			return counts[i].Value > counts[j].Value
		}
		return counts[i].Label < counts[j].Label
	})
}

// rankedCounts converts a tally map into a sorted, optionally truncated slice.
// limit <= 0 means no truncation.
func rankedCounts(tally map[string]int, limit int) []Count {
	counts := make([]Count, 0, len(tally))
	for label, value := range tally {
		counts = append(counts, Count{Label: label, Value: value})
	}
	sortCounts(counts)
	if limit > 0 && len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}
