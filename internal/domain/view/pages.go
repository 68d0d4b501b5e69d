package view

import "github.com/okian/pavilion/internal/domain/stats"

// Overview is the landing page: headline figures and season champions.
type Overview struct {
	Figures        []Figure `json:"figures"`
	SeasonWinners  Table    `json:"seasonWinners"`
	Titles         Chart    `json:"titles"`
	WinsPerTeam    Chart    `json:"winsPerTeam"`
	CumulativeRuns Chart    `json:"cumulativeRuns"`
}

// Teams is the league-wide team analysis page.
type Teams struct {
	MatchesPerTeam    Chart `json:"matchesPerTeam"`
	WinsPerTeam       Chart `json:"winsPerTeam"`
	LossesPerTeam     Chart `json:"lossesPerTeam"`
	WinPercentages    Chart `json:"winPercentages"`
	TossWins          Chart `json:"tossWins"`
	TossOutcomes      Table `json:"tossOutcomes"`
	FinalsAppearances Chart `json:"finalsAppearances"`
	HighestTotals     Table `json:"highestTotals"`
}

// Players is the career leaderboard page.
type Players struct {
	TopRunScorers   Chart `json:"topRunScorers"`
	TopWicketTakers Chart `json:"topWicketTakers"`
	MostSixes       Chart `json:"mostSixes"`
	MostFours       Chart `json:"mostFours"`
	MostCatches     Chart `json:"mostCatches"`
	MostStumpings   Chart `json:"mostStumpings"`
	MostRunOuts     Chart `json:"mostRunOuts"`
	MostMatches     Chart `json:"mostMatches"`
	PlayerOfMatch   Chart `json:"playerOfMatch"`
	OrangeCaps      Table `json:"orangeCaps"`
	PurpleCaps      Table `json:"purpleCaps"`
	OrangeCapCounts Chart `json:"orangeCapCounts"`
	PurpleCapCounts Chart `json:"purpleCapCounts"`
	SixLeaders      Table `json:"sixLeaders"`
	FourLeaders     Table `json:"fourLeaders"`
	CumulativeRuns  Chart `json:"cumulativeRuns"`
}

// SeasonDetail is one season's page.
type SeasonDetail struct {
	Season          int      `json:"season"`
	Figures         []Figure `json:"figures"`
	Winner          string   `json:"winner"`
	TopRunScorers   Chart    `json:"topRunScorers"`
	TopWicketTakers Chart    `json:"topWicketTakers"`
	MostSixes       Chart    `json:"mostSixes"`
	MostFours       Chart    `json:"mostFours"`
	MostCatches     Chart    `json:"mostCatches"`
	MostStumpings   Chart    `json:"mostStumpings"`
	MostRunOuts     Chart    `json:"mostRunOuts"`
	Venues          Table    `json:"venues"`
}

// TeamDetail is one team's page.
type TeamDetail struct {
	Team            string           `json:"team"`
	Figures         []Figure         `json:"figures"`
	TopRunScorers   Chart            `json:"topRunScorers"`
	TopWicketTakers Chart            `json:"topWicketTakers"`
	MostSixes       Chart            `json:"mostSixes"`
	MostFours       Chart            `json:"mostFours"`
	MostCatches     Chart            `json:"mostCatches"`
	MostStumpings   Chart            `json:"mostStumpings"`
	MostRunOuts     Chart            `json:"mostRunOuts"`
	SeasonResults   Table            `json:"seasonResults"`
	HeadToHead      []stats.Count    `json:"headToHead"`
	WinPercentage   stats.Percentage `json:"winPercentage"`
}

// Venues is the grounds page.
type Venues struct {
	MatchesPerVenue Chart `json:"matchesPerVenue"`
	VenueTable      Table `json:"venueTable"`
}

// Rivalry is the head-to-head page for two sides.
type Rivalry struct {
	Summary stats.HeadToHead `json:"summary"`
	Wins    Chart            `json:"wins"`
}
