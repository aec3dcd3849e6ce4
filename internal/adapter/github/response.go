package github

import (
	"github.com/google/go-github/v62/github"
	"github.com/m-zajac/ghinsights/internal/app"
)

// Responses are decoded into go-github types. Missing fields end up as nil pointers,
// getters turn them into zero values.

type userResponse struct {
	github.User
}

func (u userResponse) ToProfile() app.Profile {
	return app.Profile{
		Login:       u.GetLogin(),
		Name:        u.GetName(),
		Bio:         u.GetBio(),
		HTMLURL:     u.GetHTMLURL(),
		AvatarURL:   u.GetAvatarURL(),
		PublicRepos: u.GetPublicRepos(),
		Followers:   u.GetFollowers(),
		Following:   u.GetFollowing(),
	}
}

type reposResponse []*github.Repository

func (rs reposResponse) ToRepos() []app.Repo {
	repos := make([]app.Repo, 0, len(rs))
	for _, r := range rs {
		if r == nil {
			continue
		}
		repos = append(repos, app.Repo{
			ID:          r.GetID(),
			Name:        r.GetName(),
			FullName:    r.GetFullName(),
			OwnerLogin:  r.GetOwner().GetLogin(),
			Description: r.GetDescription(),
			HTMLURL:     r.GetHTMLURL(),
			Language:    r.GetLanguage(),
			Stars:       r.GetStargazersCount(),
			Forks:       r.GetForksCount(),
			OpenIssues:  r.GetOpenIssuesCount(),
			PushedAt:    r.GetPushedAt().Time,
		})
	}

	return repos
}

type languagesResponse map[string]int64

func (l languagesResponse) ToLanguageTotals() app.LanguageTotals {
	totals := make(app.LanguageTotals, len(l))
	for lang, bytes := range l {
		totals[lang] = bytes
	}

	return totals
}

type issuesResponse []*github.Issue

func (is issuesResponse) ToIssues() []app.IssueOrPR {
	issues := make([]app.IssueOrPR, 0, len(is))
	for _, i := range is {
		if i == nil {
			continue
		}
		issues = append(issues, app.IssueOrPR{
			Number:        i.GetNumber(),
			Title:         i.GetTitle(),
			State:         i.GetState(),
			IsPullRequest: i.IsPullRequest(),
		})
	}

	return issues
}

type commitsResponse []*github.RepositoryCommit

func (cs commitsResponse) ToCommits() []app.CommitRecord {
	commits := make([]app.CommitRecord, 0, len(cs))
	for _, c := range cs {
		if c == nil {
			continue
		}
		commits = append(commits, app.CommitRecord{
			SHA:        c.GetSHA(),
			AuthorDate: c.GetCommit().GetAuthor().GetDate().Time,
		})
	}

	return commits
}
