// Package render draws dashboards in the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/m-zajac/ghinsights/internal/chart"
)

const (
	barWidth = 30

	noLanguages = "No language data yet."
	noCommits   = "Load a repo to see commits."
	noIssues    = "No issues/PRs yet."
)

var (
	colorAccent = lipgloss.Color("#6366F1")
	colorRed    = lipgloss.Color("#EF4444")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")

	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	styleSubtitle = lipgloss.NewStyle().Foreground(colorGray)
	styleLink     = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Underline(true)
	styleSection  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite).MarginTop(1)
	styleDim      = lipgloss.NewStyle().Foreground(colorDim)
	styleError    = lipgloss.NewStyle().Foreground(colorRed)

	styleTile = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1).
			Width(16)
	styleTileLabel = lipgloss.NewStyle().Foreground(colorGray)
	styleTileValue = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
)

var sparks = []rune("▁▂▃▄▅▆▇█")

// Dashboard renders whole dashboard: header, KPI tiles and three chart sections.
func Dashboard(d chart.Dashboard) string {
	sections := []string{
		header(d),
		tiles(d),
		styleSection.Render("Languages"),
		languages(d.Languages),
		styleSection.Render("Commits"),
		commits(d.Commits),
		styleSection.Render("Issues & PRs"),
		issues(d.Issues),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

// Loading renders message shown while query for input is running.
func Loading(input string) string {
	return styleDim.Render(fmt.Sprintf("› loading %s ...", input))
}

// Error renders query failure.
func Error(err error) string {
	return styleError.Render("✗ " + err.Error())
}

func header(d chart.Dashboard) string {
	lines := []string{
		styleTitle.Render(d.Header.Title),
		styleSubtitle.Render(d.Header.Subtitle),
	}
	if d.Header.URL != "" {
		lines = append(lines, styleLink.Render(d.Header.URL))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func tiles(d chart.Dashboard) string {
	rendered := make([]string, 0, len(d.KPIs))
	for _, k := range d.KPIs {
		rendered = append(rendered, styleTile.Render(
			styleTileLabel.Render(k.Label)+"\n"+styleTileValue.Render(k.Value),
		))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func languages(p *chart.Proportion) string {
	if p == nil || len(p.Values) == 0 {
		return styleDim.Render(noLanguages)
	}

	var total int64
	for _, v := range p.Values {
		total += v
	}
	if total == 0 {
		return styleDim.Render(noLanguages)
	}

	width := maxLen(p.Labels)
	lines := make([]string, 0, len(p.Labels))
	for i, label := range p.Labels {
		share := float64(p.Values[i]) / float64(total)
		bar := lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Colors[i])).
			Render(strings.Repeat("█", barLen(share)))
		lines = append(lines, fmt.Sprintf("%-*s %s %5.1f%%", width, label, bar, share*100))
	}

	return strings.Join(lines, "\n")
}

func commits(t *chart.Trend) string {
	if t == nil || len(t.Data) == 0 {
		return styleDim.Render(noCommits)
	}

	line := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Color)).Render(sparkline(t.Data))
	span := styleDim.Render(fmt.Sprintf("%s … %s", t.Labels[0], t.Labels[len(t.Labels)-1]))
	summary := styleDim.Render(fmt.Sprintf(
		"total %d · mean %.1f/day · median %.1f/day · max %d/day",
		t.Summary.Total, t.Summary.Mean, t.Summary.Median, t.Summary.Max,
	))

	return lipgloss.JoinVertical(lipgloss.Left, t.Label, line, span, summary)
}

func issues(c *chart.Comparison) string {
	if c == nil {
		return styleDim.Render(noIssues)
	}

	maxValue := 0
	for _, v := range c.Values {
		if v > maxValue {
			maxValue = v
		}
	}
	if maxValue == 0 {
		return styleDim.Render(noIssues)
	}

	width := maxLen(c.Labels)
	lines := make([]string, 0, len(c.Labels))
	for i, label := range c.Labels {
		bar := lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Colors[i])).
			Render(strings.Repeat("█", barLen(float64(c.Values[i])/float64(maxValue))))
		lines = append(lines, fmt.Sprintf("%-*s %s %d", width, label, bar, c.Values[i]))
	}

	return strings.Join(lines, "\n")
}

func sparkline(data []int) string {
	maxValue := 0
	for _, v := range data {
		if v > maxValue {
			maxValue = v
		}
	}

	var b strings.Builder
	for _, v := range data {
		i := 0
		if maxValue > 0 {
			i = v * (len(sparks) - 1) / maxValue
		}
		b.WriteRune(sparks[i])
	}

	return b.String()
}

// barLen returns bar length for share in <0..1>. Non zero shares get at least one cell.
func barLen(share float64) int {
	n := int(share * barWidth)
	if n == 0 && share > 0 {
		n = 1
	}
	return n
}

func maxLen(ss []string) int {
	n := 0
	for _, s := range ss {
		if w := lipgloss.Width(s); w > n {
			n = w
		}
	}
	return n
}
