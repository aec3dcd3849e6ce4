package chart

import (
	"testing"
	"time"

	"github.com/m-zajac/ghinsights/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColors(t *testing.T) {
	assert.Empty(t, Colors(0))
	assert.Equal(t, []string{"#6366F1", "#10B981", "#F59E0B"}, Colors(3))

	colors := Colors(12)
	require.Len(t, colors, 12)
	assert.Equal(t, colors[0], colors[10])
	assert.Equal(t, colors[1], colors[11])
	assert.Equal(t, "#14B8A6", colors[9])
}

func TestWithAlpha(t *testing.T) {
	tests := []struct {
		hex   string
		alpha float64
		want  string
	}{
		{hex: "#6366F1", alpha: 0.2, want: "rgba(99, 102, 241, 0.2)"},
		{hex: "#000000", alpha: 1, want: "rgba(0, 0, 0, 1)"},
		{hex: "ffffff", alpha: 0.85, want: "rgba(255, 255, 255, 0.85)"},
		{hex: "#fff", alpha: 0.5, want: "#fff"},
		{hex: "#zzzzzz", alpha: 0.5, want: "#zzzzzz"},
	}
	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			assert.Equal(t, tt.want, WithAlpha(tt.hex, tt.alpha))
		})
	}
}

func TestNewProportion(t *testing.T) {
	p := NewProportion(app.LanguageTotals{"Shell": 5, "Go": 100, "C": 5})

	assert.Equal(t, []string{"Go", "C", "Shell"}, p.Labels)
	assert.Equal(t, []int64{100, 5, 5}, p.Values)
	assert.Equal(t, Colors(3), p.Colors)
	assert.Equal(t, "rgba(99, 102, 241, 0.85)", p.HoverColors[0])
	assert.Len(t, p.HoverColors, 3)

	empty := NewProportion(app.LanguageTotals{})
	assert.Empty(t, empty.Labels)
	assert.Empty(t, empty.Values)
}

func TestNewTrend(t *testing.T) {
	tr := NewTrend(app.CommitSeries{
		{Day: "2024-01-02", Count: 2},
		{Day: "2024-01-03", Count: 1},
		{Day: "2024-01-05", Count: 6},
	})

	assert.Equal(t, "Commits (90d)", tr.Label)
	assert.Equal(t, []string{"2024-01-02", "2024-01-03", "2024-01-05"}, tr.Labels)
	assert.Equal(t, []int{2, 1, 6}, tr.Data)
	assert.Equal(t, "rgba(99, 102, 241, 0.2)", tr.FillColor)
	assert.Equal(t, 9, tr.Summary.Total)
	assert.InDelta(t, 3.0, tr.Summary.Mean, 1e-9)
	assert.InDelta(t, 2.0, tr.Summary.Median, 1e-9)
	assert.Equal(t, 6, tr.Summary.Max)

	empty := NewTrend(app.CommitSeries{})
	assert.Equal(t, TrendSummary{}, empty.Summary)
	assert.Empty(t, empty.Data)
}

func TestNewComparison(t *testing.T) {
	c := NewComparison(app.IssueMix{OpenIssues: 2, ClosedIssues: 1, OpenPRs: 1, ClosedPRs: 3})

	assert.Equal(t, []string{"Open Issues", "Closed Issues", "Open PRs", "Closed PRs"}, c.Labels)
	assert.Equal(t, []int{2, 1, 1, 3}, c.Values)
	assert.Len(t, c.Colors, 4)
}

func TestBuild(t *testing.T) {
	t.Run("repo report", func(t *testing.T) {
		r := &app.Report{
			Reference: app.Reference{Kind: app.ReferenceRepo, Owner: "foo", Repo: "bar"},
			View: app.View{
				Kind: app.ReferenceRepo,
				Repo: &app.Repo{FullName: "foo/bar", Stars: 4, PushedAt: time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC)},
			},
			Languages: app.LanguageTotals{"Go": 1},
			Commits:   app.CommitSeries{},
			Issues:    &app.IssueMix{},
		}

		d := Build(r)
		assert.Equal(t, r.Reference, d.Reference)
		assert.Equal(t, "foo/bar", d.Header.Title)
		require.Len(t, d.KPIs, 4)
		assert.Equal(t, app.KPI{Label: "Stars", Value: "4"}, d.KPIs[0])
		require.NotNil(t, d.Languages)
		require.NotNil(t, d.Commits)
		require.NotNil(t, d.Issues)
	})

	t.Run("user report without issues", func(t *testing.T) {
		r := &app.Report{
			Reference: app.Reference{Kind: app.ReferenceUser, Owner: "foo"},
			View: app.View{
				Kind:    app.ReferenceUser,
				Profile: &app.Profile{Login: "foo"},
			},
			Languages: app.LanguageTotals{},
		}

		d := Build(r)
		assert.Equal(t, "@foo", d.Header.Title)
		assert.NotNil(t, d.Languages)
		assert.Nil(t, d.Commits)
		assert.Nil(t, d.Issues)
	})
}
