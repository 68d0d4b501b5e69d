package model

// Dismissal kinds appearing in the delivery table.
const (
	DismissalCaught          = "caught"
	DismissalBowled          = "bowled"
	DismissalLBW             = "lbw"
	DismissalStumped         = "stumped"
	DismissalCaughtAndBowled = "caught and bowled"
	DismissalHitWicket       = "hit wicket"
	DismissalRunOut          = "run out"
)

// bowlerDismissals are the kinds credited to the bowler as a wicket.
var bowlerDismissals = map[string]bool{
	DismissalCaught:          true,
	DismissalBowled:          true,
	DismissalLBW:             true,
	DismissalStumped:         true,
	DismissalCaughtAndBowled: true,
	DismissalHitWicket:       true,
}

// BowlerCredited reports whether a dismissal kind counts as the bowler's wicket.
func BowlerCredited(kind string) bool {
	return bowlerDismissals[kind]
}

// Delivery is one row of the delivery table: a single ball bowled.
// Season is denormalized from the referenced match at load time.
type Delivery struct {
	MatchID         int
	Season          int
	Inning          int
	BattingTeam     string
	BowlingTeam     string
	Over            int
	Ball            int
	Batter          string
	Bowler          string
	NonStriker      string
	BatterRuns      int
	ExtraRuns       int
	TotalRuns       int
	ExtrasType      string
	IsWicket        bool
	PlayerDismissed string
	DismissalKind   string
	Fielder         string
}

// IsSix reports a six off the bat.
func (d Delivery) IsSix() bool { return d.BatterRuns == 6 }

// IsFour reports a four off the bat.
func (d Delivery) IsFour() bool { return d.BatterRuns == 4 }

// BowlerWicket reports whether this ball took a wicket credited to the bowler.
func (d Delivery) BowlerWicket() bool {
	return d.IsWicket && BowlerCredited(d.DismissalKind)
}
