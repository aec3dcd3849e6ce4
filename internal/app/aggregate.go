package app

import (
	"sort"
	"strconv"
	"time"
)

const (
	dayLayout   = "2006-01-02"
	placeholder = "—"
	stateClosed = "closed"
)

// SumLanguages sums language byte counts from multiple repositories.
func SumLanguages(maps []LanguageTotals) LanguageTotals {
	totals := make(LanguageTotals)
	for _, m := range maps {
		for lang, bytes := range m {
			totals[lang] += bytes
		}
	}

	return totals
}

// CommitsByDay counts commits per UTC day. Result is sorted by day ascending.
// Records without author date are skipped.
func CommitsByDay(commits []CommitRecord) CommitSeries {
	counts := make(map[string]int)
	for _, c := range commits {
		if c.AuthorDate.IsZero() {
			continue
		}
		counts[c.AuthorDate.UTC().Format(dayLayout)]++
	}

	series := make(CommitSeries, 0, len(counts))
	for day, count := range counts {
		series = append(series, DayCount{Day: day, Count: count})
	}
	// ISO dates sort chronologically as strings.
	sort.Slice(series, func(i, j int) bool {
		return series[i].Day < series[j].Day
	})

	return series
}

// IssueStats counts open and closed issues and pull requests.
// Items with state other than "closed" (including empty) are counted as open.
func IssueStats(items []IssueOrPR) IssueMix {
	var mix IssueMix
	for _, i := range items {
		closed := i.State == stateClosed
		switch {
		case i.IsPullRequest && closed:
			mix.ClosedPRs++
		case i.IsPullRequest:
			mix.OpenPRs++
		case closed:
			mix.ClosedIssues++
		default:
			mix.OpenIssues++
		}
	}

	return mix
}

// KPI is a labeled summary metric.
type KPI struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// KPIs returns summary metrics for given view.
func KPIs(v View) []KPI {
	if v.Kind == ReferenceRepo {
		if v.Repo == nil {
			return nil
		}
		r := v.Repo
		return []KPI{
			{Label: "Stars", Value: strconv.Itoa(r.Stars)},
			{Label: "Forks", Value: strconv.Itoa(r.Forks)},
			{Label: "Open Issues", Value: strconv.Itoa(r.OpenIssues)},
			{Label: "Last Push", Value: formatDay(r.PushedAt)},
		}
	}

	var stars, forks int
	var last time.Time
	for _, r := range v.Repos {
		stars += r.Stars
		forks += r.Forks
		if r.PushedAt.After(last) {
			last = r.PushedAt
		}
	}

	return []KPI{
		{Label: "Total Repos", Value: strconv.Itoa(len(v.Repos))},
		{Label: "Total Stars", Value: strconv.Itoa(stars)},
		{Label: "Total Forks", Value: strconv.Itoa(forks)},
		{Label: "Last Activity", Value: formatDay(last)},
	}
}

func formatDay(t time.Time) string {
	if t.IsZero() {
		return placeholder
	}
	return t.UTC().Format(dayLayout)
}
