// Package view shapes aggregate results into render-ready payloads:
// charts, tables, and headline figures consumed by the dashboard.
package view

// Chart types understood by the dashboard frontend.
const (
	ChartBar  = "bar"
	ChartPie  = "pie"
	ChartLine = "line"
)

// EmptyNote is the placeholder shown when a selection yields no rows.
const EmptyNote = "No data for this selection"

// Chart defines how to render one chart.
type Chart struct {
	ChartType  string   `json:"chartType"`
	Title      string   `json:"title"`
	XAxis      string   `json:"xAxis,omitempty"`
	YAxis      string   `json:"yAxis,omitempty"`
	Series     []Series `json:"series"`
	ShowLegend bool     `json:"showLegend"`
	Note       string   `json:"note,omitempty"`
}

// Series is one data series of a chart.
type Series struct {
	Name string  `json:"name"`
	Data []Point `json:"data"`
}

// Point is a single labeled value.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Table defines how to render one table.
type Table struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Note    string     `json:"note,omitempty"`
}

// Column describes a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

// Figure is a single headline number with its caption.
type Figure struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Empty reports whether the chart carries no points at all.
func (c Chart) Empty() bool {
	for _, s := range c.Series {
		if len(s.Data) > 0 {
			return false
		}
	}
	return true
}
