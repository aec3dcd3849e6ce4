package app

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	topReposCount   = 6
	issuesPerPage   = 100
	issuesStateAll  = "all"
	commitsLookback = 90 * 24 * time.Hour
)

// GithubClient returns github profiles, repositories and repository activity.
//go:generate mockgen -destination mock/githubclient.go -package mock github.com/m-zajac/ghinsights/internal/app GithubClient
type GithubClient interface {
	User(ctx context.Context, owner string) (Profile, error)
	Repos(ctx context.Context, owner string) ([]Repo, error)
	RepoLanguages(ctx context.Context, owner string, repo string) (LanguageTotals, error)
	Issues(ctx context.Context, owner string, repo string, opts IssueListOptions) ([]IssueOrPR, error)
	Commits(ctx context.Context, owner string, repo string, since time.Time) ([]CommitRecord, error)
}

// Service is main apps entry point. Provides all app functionality
type Service struct {
	githubClient GithubClient
	timeout      time.Duration
}

// NewService creates new Service instance.
// Timeout limits single query execution time, zero means no limit.
func NewService(githubClient GithubClient, timeout time.Duration) *Service {
	return &Service{
		githubClient: githubClient,
		timeout:      timeout,
	}
}

// Insights parses github link and runs query for it.
func (s *Service) Insights(ctx context.Context, input string) (*Report, error) {
	ref, ok := ParseReference(input)
	if !ok {
		return nil, InvalidRequestError("paste a valid github profile or repo url")
	}

	return s.Query(ctx, ref)
}

// Query fetches data for referenced user or repository and computes metrics.
// Any failed fetch fails whole query, partial results are never returned.
func (s *Service) Query(ctx context.Context, ref Reference) (*Report, error) {
	if ref.Owner == "" {
		return nil, InvalidRequestError("owner cannot be empty")
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	switch ref.Kind {
	case ReferenceUser:
		return s.queryUser(ctx, ref)
	case ReferenceRepo:
		if ref.Repo == "" {
			return nil, InvalidRequestError("repo cannot be empty")
		}
		return s.queryRepo(ctx, ref)
	default:
		return nil, InvalidRequestError(fmt.Sprintf("unknown reference kind %q", ref.Kind))
	}
}

func (s *Service) queryUser(ctx context.Context, ref Reference) (*Report, error) {
	var (
		profile Profile
		repos   []Repo
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile, err = s.githubClient.User(gctx, ref.Owner)
		if err != nil {
			return fmt.Errorf("retrieving user %s: %w", ref.Owner, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		repos, err = s.githubClient.Repos(gctx, ref.Owner)
		if err != nil {
			return fmt.Errorf("retrieving repos of %s: %w", ref.Owner, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	top := topReposByStars(repos, topReposCount)

	langs := make([]LanguageTotals, len(top))
	var issues []IssueOrPR
	g, gctx = errgroup.WithContext(ctx)
	for i, r := range top {
		i, r := i, r
		g.Go(func() error {
			l, err := s.githubClient.RepoLanguages(gctx, repoOwner(r, ref), r.Name)
			if err != nil {
				return fmt.Errorf("retrieving languages of %s/%s: %w", repoOwner(r, ref), r.Name, err)
			}
			langs[i] = l
			return nil
		})
	}
	if len(top) > 0 {
		first := top[0]
		g.Go(func() error {
			var err error
			issues, err = s.githubClient.Issues(gctx, repoOwner(first, ref), first.Name, IssueListOptions{
				State:   issuesStateAll,
				PerPage: issuesPerPage,
			})
			if err != nil {
				return fmt.Errorf("retrieving issues of %s/%s: %w", repoOwner(first, ref), first.Name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := Report{
		Reference: ref,
		View: View{
			Kind:    ReferenceUser,
			Profile: &profile,
			Repos:   repos,
		},
		Languages: SumLanguages(langs),
	}
	if len(top) > 0 {
		mix := IssueStats(issues)
		report.Issues = &mix
	}

	return &report, nil
}

func (s *Service) queryRepo(ctx context.Context, ref Reference) (*Report, error) {
	repos, err := s.githubClient.Repos(ctx, ref.Owner)
	if err != nil {
		return nil, fmt.Errorf("retrieving repos of %s: %w", ref.Owner, err)
	}

	repo, ok := findRepo(repos, ref.Repo)
	if !ok {
		return nil, NotFoundError(fmt.Sprintf("repo %s not found in %s's public repos", ref.Repo, ref.Owner))
	}
	owner := repoOwner(repo, ref)

	var (
		langs   LanguageTotals
		issues  []IssueOrPR
		commits []CommitRecord
	)
	since := time.Now().Add(-commitsLookback)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		langs, err = s.githubClient.RepoLanguages(gctx, owner, repo.Name)
		if err != nil {
			return fmt.Errorf("retrieving languages of %s/%s: %w", owner, repo.Name, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		issues, err = s.githubClient.Issues(gctx, owner, repo.Name, IssueListOptions{
			State:   issuesStateAll,
			PerPage: issuesPerPage,
		})
		if err != nil {
			return fmt.Errorf("retrieving issues of %s/%s: %w", owner, repo.Name, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		commits, err = s.githubClient.Commits(gctx, owner, repo.Name, since)
		if err != nil {
			return fmt.Errorf("retrieving commits of %s/%s: %w", owner, repo.Name, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	mix := IssueStats(issues)
	return &Report{
		Reference: ref,
		View: View{
			Kind: ReferenceRepo,
			Repo: &repo,
		},
		Languages: SumLanguages([]LanguageTotals{langs}),
		Commits:   CommitsByDay(commits),
		Issues:    &mix,
	}, nil
}

// User returns github user profile.
func (s *Service) User(ctx context.Context, owner string) (Profile, error) {
	if owner == "" {
		return Profile{}, InvalidRequestError("owner cannot be empty")
	}
	return s.githubClient.User(ctx, owner)
}

// Repos returns public repositories of the owner.
func (s *Service) Repos(ctx context.Context, owner string) ([]Repo, error) {
	if owner == "" {
		return nil, InvalidRequestError("owner cannot be empty")
	}
	return s.githubClient.Repos(ctx, owner)
}

// RepoLanguages returns language byte counts of the repository.
func (s *Service) RepoLanguages(ctx context.Context, owner string, repo string) (LanguageTotals, error) {
	if err := validateRepoParams(owner, repo); err != nil {
		return nil, err
	}
	return s.githubClient.RepoLanguages(ctx, owner, repo)
}

// Issues returns first page of repository issues and pull requests.
func (s *Service) Issues(ctx context.Context, owner string, repo string, opts IssueListOptions) ([]IssueOrPR, error) {
	if err := validateRepoParams(owner, repo); err != nil {
		return nil, err
	}
	if opts.State == "" {
		opts.State = issuesStateAll
	}
	if opts.PerPage < 1 || opts.PerPage > issuesPerPage {
		opts.PerPage = issuesPerPage
	}
	return s.githubClient.Issues(ctx, owner, repo, opts)
}

// Commits returns first page of repository commits made after since.
func (s *Service) Commits(ctx context.Context, owner string, repo string, since time.Time) ([]CommitRecord, error) {
	if err := validateRepoParams(owner, repo); err != nil {
		return nil, err
	}
	return s.githubClient.Commits(ctx, owner, repo, since)
}

func validateRepoParams(owner string, repo string) error {
	if owner == "" {
		return InvalidRequestError("owner cannot be empty")
	}
	if repo == "" {
		return InvalidRequestError("repo cannot be empty")
	}
	return nil
}

// topReposByStars returns up to n repos with most stars. Ties keep input order.
func topReposByStars(repos []Repo, n int) []Repo {
	sorted := make([]Repo, len(repos))
	copy(sorted, repos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Stars > sorted[j].Stars
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// findRepo returns first repo with matching name, case insensitive.
func findRepo(repos []Repo, name string) (Repo, bool) {
	for _, r := range repos {
		if strings.EqualFold(r.Name, name) {
			return r, true
		}
	}
	return Repo{}, false
}

func repoOwner(r Repo, ref Reference) string {
	if r.OwnerLogin != "" {
		return r.OwnerLogin
	}
	return ref.Owner
}
