package app

import (
	"time"
)

// ReferenceKind tells whether a reference points to a user or a repository.
type ReferenceKind string

// Reference kinds.
const (
	ReferenceUser ReferenceKind = "user"
	ReferenceRepo ReferenceKind = "repo"
)

// Reference identifies a github user or repository parsed from user input.
type Reference struct {
	Kind  ReferenceKind `json:"kind"`
	Owner string        `json:"owner"`
	Repo  string        `json:"repo,omitempty"`
}

// String returns reference in "owner" or "owner/repo" form.
func (r Reference) String() string {
	if r.Kind == ReferenceRepo {
		return r.Owner + "/" + r.Repo
	}
	return r.Owner
}

// Profile entity
type Profile struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	HTMLURL     string `json:"html_url"`
	AvatarURL   string `json:"avatar_url"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
}

// Repo entity
type Repo struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	OwnerLogin  string    `json:"owner_login"`
	Description string    `json:"description"`
	HTMLURL     string    `json:"html_url"`
	Language    string    `json:"language"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	OpenIssues  int       `json:"open_issues_count"`
	PushedAt    time.Time `json:"pushed_at"`
}

// LanguageTotals maps language name to number of bytes.
type LanguageTotals map[string]int64

// CommitRecord entity
type CommitRecord struct {
	SHA        string    `json:"sha"`
	AuthorDate time.Time `json:"author_date"`
}

// IssueOrPR is a single item from github issues list. Pull requests are listed as issues too.
type IssueOrPR struct {
	Number        int    `json:"number"`
	Title         string `json:"title"`
	State         string `json:"state"`
	IsPullRequest bool   `json:"is_pull_request"`
}

// IssueListOptions are params for listing issues.
type IssueListOptions struct {
	State   string
	PerPage int
}

// DayCount is number of commits made in a single day.
type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// CommitSeries is a list of day counts sorted by day ascending.
type CommitSeries []DayCount

// Labels returns series days.
func (s CommitSeries) Labels() []string {
	labels := make([]string, 0, len(s))
	for _, dc := range s {
		labels = append(labels, dc.Day)
	}
	return labels
}

// Counts returns series commit counts.
func (s CommitSeries) Counts() []int {
	counts := make([]int, 0, len(s))
	for _, dc := range s {
		counts = append(counts, dc.Count)
	}
	return counts
}

// IssueMix holds issue and pull request counts by state.
type IssueMix struct {
	OpenIssues   int `json:"open_issues"`
	ClosedIssues int `json:"closed_issues"`
	OpenPRs      int `json:"open_prs"`
	ClosedPRs    int `json:"closed_prs"`
}

// View is the fetched subject of a query: single repo or user with repos.
type View struct {
	Kind    ReferenceKind `json:"kind"`
	Repo    *Repo         `json:"repo,omitempty"`
	Profile *Profile      `json:"profile,omitempty"`
	Repos   []Repo        `json:"repos,omitempty"`
}

// Header describes view's subject.
type Header struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	URL      string `json:"url"`
}

// Header returns title, description and link of the view.
func (v View) Header() Header {
	var h Header
	switch {
	case v.Kind == ReferenceRepo && v.Repo != nil:
		h = Header{
			Title:    v.Repo.FullName,
			Subtitle: v.Repo.Description,
			URL:      v.Repo.HTMLURL,
		}
	case v.Profile != nil:
		h = Header{
			Title:    "@" + v.Profile.Login,
			Subtitle: v.Profile.Bio,
			URL:      v.Profile.HTMLURL,
		}
	}
	if h.Subtitle == "" {
		h.Subtitle = placeholder
	}
	return h
}

// Report is the result of a single query.
// Nil Languages, Commits or Issues mean that the metric was not computed for this kind of view.
type Report struct {
	Reference Reference      `json:"reference"`
	View      View           `json:"view"`
	Languages LanguageTotals `json:"languages,omitempty"`
	Commits   CommitSeries   `json:"commits,omitempty"`
	Issues    *IssueMix      `json:"issues,omitempty"`
}
