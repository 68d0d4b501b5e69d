package view

import (
	"strconv"

	"github.com/okian/pavilion/internal/domain/stats"
)

// BarChart renders a ranking as a single-series bar chart.
func BarChart(title, xAxis, yAxis string, counts []stats.Count) Chart {
	c := Chart{ChartType: ChartBar, Title: title, XAxis: xAxis, YAxis: yAxis,
		Series: []Series{{Name: yAxis, Data: countPoints(counts)}}}
	return noteIfEmpty(c)
}

// PieChart renders a ranking as shares of a whole.
func PieChart(title string, counts []stats.Count) Chart {
	c := Chart{ChartType: ChartPie, Title: title, ShowLegend: true,
		Series: []Series{{Name: title, Data: countPoints(counts)}}}
	return noteIfEmpty(c)
}

// PercentageBarChart renders percentage rankings as a bar chart.
func PercentageBarChart(title, xAxis, yAxis string, pcts []stats.Percentage) Chart {
	data := make([]Point, 0, len(pcts))
	for _, p := range pcts {
		data = append(data, Point{Label: p.Label, Value: p.Value})
	}
	c := Chart{ChartType: ChartBar, Title: title, XAxis: xAxis, YAxis: yAxis,
		Series: []Series{{Name: yAxis, Data: data}}}
	return noteIfEmpty(c)
}

// LineChart renders per-season series, one line per batter.
func LineChart(title, xAxis, yAxis string, series []stats.BatterSeries) Chart {
	out := make([]Series, 0, len(series))
	for _, s := range series {
		data := make([]Point, 0, len(s.Points))
		for _, p := range s.Points {
			data = append(data, Point{Label: strconv.Itoa(p.Season), Value: float64(p.Value)})
		}
		out = append(out, Series{Name: s.Batter, Data: data})
	}
	c := Chart{ChartType: ChartLine, Title: title, XAxis: xAxis, YAxis: yAxis,
		Series: out, ShowLegend: true}
	return noteIfEmpty(c)
}

// CountTable renders a ranking as a two-column table.
func CountTable(title, labelHeader, valueHeader string, counts []stats.Count) Table {
	t := Table{Title: title, Columns: []Column{
		{Key: "label", Label: labelHeader, Type: "text"},
		{Key: "value", Label: valueHeader, Type: "number"},
	}}
	for _, c := range counts {
		t.Rows = append(t.Rows, []string{c.Label, strconv.Itoa(c.Value)})
	}
	if len(t.Rows) == 0 {
		t.Note = EmptyNote
	}
	return t
}

// LeaderTable renders per-season leaders as a three-column table.
func LeaderTable(title, valueHeader string, leaders []stats.SeasonLeader) Table {
	t := Table{Title: title, Columns: []Column{
		{Key: "season", Label: "Season", Type: "number"},
		{Key: "player", Label: "Player", Type: "text"},
		{Key: "value", Label: valueHeader, Type: "number"},
	}}
	for _, l := range leaders {
		t.Rows = append(t.Rows, []string{strconv.Itoa(l.Season), l.Player, strconv.Itoa(l.Value)})
	}
	if len(t.Rows) == 0 {
		t.Note = EmptyNote
	}
	return t
}

// WinnerTable renders the champion of each season.
func WinnerTable(title string, winners []stats.SeasonWinner) Table {
	t := Table{Title: title, Columns: []Column{
		{Key: "season", Label: "Season", Type: "number"},
		{Key: "winner", Label: "Winner", Type: "text"},
	}}
	for _, w := range winners {
		t.Rows = append(t.Rows, []string{strconv.Itoa(w.Season), w.Winner})
	}
	if len(t.Rows) == 0 {
		t.Note = EmptyNote
	}
	return t
}

// TotalsTable renders the highest innings totals.
func TotalsTable(title string, totals []stats.TeamTotal) Table {
	t := Table{Title: title, Columns: []Column{
		{Key: "team", Label: "Team", Type: "text"},
		{Key: "runs", Label: "Runs", Type: "number"},
		{Key: "opponent", Label: "Against", Type: "text"},
	}}
	for _, tt := range totals {
		t.Rows = append(t.Rows, []string{tt.Team, strconv.Itoa(tt.Runs), tt.Opponent})
	}
	if len(t.Rows) == 0 {
		t.Note = EmptyNote
	}
	return t
}

// TossTable renders toss decision outcomes.
func TossTable(title string, outcomes []stats.TossOutcome) Table {
	t := Table{Title: title, Columns: []Column{
		{Key: "decision", Label: "Toss Decision", Type: "text"},
		{Key: "matches", Label: "Matches", Type: "number"},
		{Key: "won", Label: "Toss Winner Won", Type: "number"},
		{Key: "pct", Label: "Win %", Type: "number"},
	}}
	for _, o := range outcomes {
		t.Rows = append(t.Rows, []string{
			o.Decision,
			strconv.Itoa(o.Matches),
			strconv.Itoa(o.TossWinnerWon),
			strconv.FormatFloat(o.WinPercent, 'f', 2, 64),
		})
	}
	if len(t.Rows) == 0 {
		t.Note = EmptyNote
	}
	return t
}

func countPoints(counts []stats.Count) []Point {
	data := make([]Point, 0, len(counts))
	for _, c := range counts {
		data = append(data, Point{Label: c.Label, Value: float64(c.Value)})
	}
	return data
}

func noteIfEmpty(c Chart) Chart {
	if c.Empty() {
		c.Note = EmptyNote
	}
	return c
}
