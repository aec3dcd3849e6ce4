// Package chart converts query reports into chart-ready structures for dashboard frontends.
package chart

import (
	"sort"

	"github.com/m-zajac/ghinsights/internal/app"
	"github.com/montanaflynn/stats"
)

const (
	trendLabel = "Commits (90d)"
	trendColor = "#6366F1"
	hoverAlpha = 0.85
	fillAlpha  = 0.2
)

var (
	issueLabels = []string{"Open Issues", "Closed Issues", "Open PRs", "Closed PRs"}
	issueColors = []string{"#F59E0B", "#10B981", "#3B82F6", "#EF4444"}
)

// Dashboard is everything a frontend needs to render query results.
type Dashboard struct {
	Reference app.Reference `json:"reference"`
	Header    app.Header    `json:"header"`
	KPIs      []app.KPI     `json:"kpis"`
	Languages *Proportion   `json:"languages,omitempty"`
	Commits   *Trend        `json:"commits,omitempty"`
	Issues    *Comparison   `json:"issues,omitempty"`
}

// Proportion is a category/value series for doughnut-like charts.
type Proportion struct {
	Labels      []string `json:"labels"`
	Values      []int64  `json:"values"`
	Colors      []string `json:"colors"`
	HoverColors []string `json:"hover_colors"`
}

// Trend is a time ordered series for line charts.
type Trend struct {
	Label     string       `json:"label"`
	Labels    []string     `json:"labels"`
	Data      []int        `json:"data"`
	Color     string       `json:"color"`
	FillColor string       `json:"fill_color"`
	Summary   TrendSummary `json:"summary"`
}

// TrendSummary holds basic statistics of trend data.
type TrendSummary struct {
	Total  int     `json:"total"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Max    int     `json:"max"`
}

// Comparison is a fixed category series for bar charts.
type Comparison struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
	Colors []string `json:"colors"`
}

// Build creates dashboard from query report.
func Build(r *app.Report) Dashboard {
	d := Dashboard{
		Reference: r.Reference,
		Header:    r.View.Header(),
		KPIs:      app.KPIs(r.View),
	}
	if r.Languages != nil {
		p := NewProportion(r.Languages)
		d.Languages = &p
	}
	if r.Commits != nil {
		t := NewTrend(r.Commits)
		d.Commits = &t
	}
	if r.Issues != nil {
		c := NewComparison(*r.Issues)
		d.Issues = &c
	}

	return d
}

// NewProportion creates language proportion series.
// Languages are ordered by bytes descending, then by name.
func NewProportion(langs app.LanguageTotals) Proportion {
	type entry struct {
		name  string
		bytes int64
	}
	entries := make([]entry, 0, len(langs))
	for name, bytes := range langs {
		entries = append(entries, entry{name: name, bytes: bytes})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].bytes != entries[j].bytes {
			return entries[i].bytes > entries[j].bytes
		}
		return entries[i].name < entries[j].name
	})

	p := Proportion{
		Labels:      make([]string, 0, len(entries)),
		Values:      make([]int64, 0, len(entries)),
		Colors:      Colors(len(entries)),
		HoverColors: make([]string, 0, len(entries)),
	}
	for i, e := range entries {
		p.Labels = append(p.Labels, e.name)
		p.Values = append(p.Values, e.bytes)
		p.HoverColors = append(p.HoverColors, WithAlpha(p.Colors[i], hoverAlpha))
	}

	return p
}

// NewTrend creates commits trend series.
func NewTrend(series app.CommitSeries) Trend {
	t := Trend{
		Label:     trendLabel,
		Labels:    series.Labels(),
		Data:      series.Counts(),
		Color:     trendColor,
		FillColor: WithAlpha(trendColor, fillAlpha),
	}
	t.Summary = summarize(t.Data)

	return t
}

// NewComparison creates issues and pull requests comparison series.
func NewComparison(mix app.IssueMix) Comparison {
	return Comparison{
		Labels: append([]string(nil), issueLabels...),
		Values: []int{mix.OpenIssues, mix.ClosedIssues, mix.OpenPRs, mix.ClosedPRs},
		Colors: append([]string(nil), issueColors...),
	}
}

func summarize(data []int) TrendSummary {
	if len(data) == 0 {
		return TrendSummary{}
	}

	d := stats.LoadRawData(data)
	// Errors are returned only for empty input.
	total, _ := d.Sum()
	mean, _ := d.Mean()
	median, _ := d.Median()
	max, _ := d.Max()

	return TrendSummary{
		Total:  int(total),
		Mean:   mean,
		Median: median,
		Max:    int(max),
	}
}
