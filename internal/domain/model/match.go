// Package model contains the typed records of the historical dataset.
package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Placeholder values applied during cleaning for missing fields.
const (
	NoResult      = "No Result"
	NonePlayer    = "None"
	UnknownPlace  = "Unknown"
	DefaultMethod = "Normal"
)

// Match is one row of the match table: a completed fixture.
type Match struct {
	ID            int
	Season        int
	City          string
	Date          string
	MatchType     string
	PlayerOfMatch string
	Venue         string
	Team1         string
	Team2         string
	TossWinner    string
	TossDecision  string
	Winner        string
	Result        string
	ResultMargin  int
	SuperOver     bool
	Method        string
	Umpire1       string
	Umpire2       string
}

// Decided reports whether the match produced a winner.
func (m Match) Decided() bool {
	return m.Winner != "" && m.Winner != NoResult
}

// Involves reports whether team played in this match.
func (m Match) Involves(team string) bool {
	return m.Team1 == team || m.Team2 == team
}

// Opponent returns the other side of the fixture, or "" when team did not play.
func (m Match) Opponent(team string) string {
	switch team {
	case m.Team1:
		return m.Team2
	case m.Team2:
		return m.Team1
	default:
		return ""
	}
}

// ParseSeason normalizes the dataset's season labels to a single year.
// The source mixes plain years ("2013") with split labels ("2007/08",
// "2009-10"); split labels resolve to the later year, except the
// pandemic season "2020/21" which the league records as 2020.
func ParseSeason(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "2020/21" || s == "2020-21" {
		return 2020, nil
	}
	sep := ""
	switch {
	case strings.Contains(s, "/"):
		sep = "/"
	case strings.Contains(s, "-"):
		sep = "-"
	}
	if sep != "" {
		parts := strings.Split(s, sep)
		year := strings.TrimSpace(parts[len(parts)-1])
		if len(year) == 2 {
			year = "20" + year
		}
		n, err := strconv.Atoi(year)
		if err != nil {
			return 0, fmt.Errorf("invalid season %q: %w", s, err)
		}
		return n, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid season %q: %w", s, err)
	}
	return n, nil
}
