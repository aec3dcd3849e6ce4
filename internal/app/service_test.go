package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/m-zajac/ghinsights/internal/app"
	"github.com/m-zajac/ghinsights/internal/app/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allIssues = app.IssueListOptions{State: "all", PerPage: 100}

func TestServiceInsights(t *testing.T) {
	t.Parallel()

	pushed := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	userRepos := []app.Repo{
		{Name: "a", OwnerLogin: "foo", Stars: 5},
		{Name: "b", OwnerLogin: "foo", Stars: 10},
		{Name: "c", Stars: 5},
		{Name: "d", OwnerLogin: "foo", Stars: 1},
		{Name: "e", OwnerLogin: "foo", Stars: 5},
		{Name: "f", OwnerLogin: "foo", Stars: 0},
		{Name: "g", OwnerLogin: "foo", Stars: 5},
		{Name: "h", OwnerLogin: "foo", Stars: 10, PushedAt: pushed},
	}
	ownerRepos := []app.Repo{
		{Name: "other", OwnerLogin: "foo"},
		{Name: "Bar", FullName: "foo/Bar", OwnerLogin: "foo", Stars: 3},
	}

	tests := []struct {
		name      string
		input     string
		setupMock func(*mock.MockGithubClient)
		want      *app.Report
		wantErr   func(error) bool
	}{
		{
			name:      "invalid input",
			input:     `"  "`,
			setupMock: func(m *mock.MockGithubClient) {},
			want:      nil,
			wantErr:   app.IsInvalidRequestError,
		},
		{
			name:  "user view",
			input: "https://github.com/foo",
			setupMock: func(m *mock.MockGithubClient) {
				m.EXPECT().
					User(gomock.Any(), "foo").
					Return(app.Profile{Login: "foo"}, nil)
				m.EXPECT().
					Repos(gomock.Any(), "foo").
					Return(userRepos, nil)

				// Top 6 by stars, ties in input order: b, h, a, c, e, g.
				for _, name := range []string{"b", "h", "a", "c", "e", "g"} {
					m.EXPECT().
						RepoLanguages(gomock.Any(), "foo", name).
						Return(app.LanguageTotals{"Go": 10, name: 1}, nil)
				}
				m.EXPECT().
					Issues(gomock.Any(), "foo", "b", allIssues).
					Return([]app.IssueOrPR{
						{State: "open"},
						{State: "closed", IsPullRequest: true},
					}, nil)
			},
			want: &app.Report{
				Reference: app.Reference{Kind: app.ReferenceUser, Owner: "foo"},
				View: app.View{
					Kind:    app.ReferenceUser,
					Profile: &app.Profile{Login: "foo"},
					Repos:   userRepos,
				},
				Languages: app.LanguageTotals{"Go": 60, "a": 1, "b": 1, "c": 1, "e": 1, "g": 1, "h": 1},
				Issues:    &app.IssueMix{OpenIssues: 1, ClosedPRs: 1},
			},
		},
		{
			name:  "user view without repos",
			input: "foo",
			setupMock: func(m *mock.MockGithubClient) {
				m.EXPECT().
					User(gomock.Any(), "foo").
					Return(app.Profile{Login: "foo"}, nil)
				m.EXPECT().
					Repos(gomock.Any(), "foo").
					Return(nil, nil)
			},
			want: &app.Report{
				Reference: app.Reference{Kind: app.ReferenceUser, Owner: "foo"},
				View: app.View{
					Kind:    app.ReferenceUser,
					Profile: &app.Profile{Login: "foo"},
				},
				Languages: app.LanguageTotals{},
			},
		},
		{
			name:  "user profile error",
			input: "foo",
			setupMock: func(m *mock.MockGithubClient) {
				m.EXPECT().
					User(gomock.Any(), "foo").
					Return(app.Profile{}, &app.TransportError{Op: "fetching user", Err: errors.New("error")})
				m.EXPECT().
					Repos(gomock.Any(), "foo").
					Return(userRepos, nil).
					AnyTimes()
			},
			want:    nil,
			wantErr: app.IsTransportError,
		},
		{
			name:  "user languages error",
			input: "foo",
			setupMock: func(m *mock.MockGithubClient) {
				m.EXPECT().
					User(gomock.Any(), "foo").
					Return(app.Profile{Login: "foo"}, nil)
				m.EXPECT().
					Repos(gomock.Any(), "foo").
					Return(ownerRepos, nil)
				m.EXPECT().
					RepoLanguages(gomock.Any(), "foo", "Bar").
					Return(nil, errors.New("error"))
				m.EXPECT().
					RepoLanguages(gomock.Any(), "foo", "other").
					Return(app.LanguageTotals{}, nil).
					AnyTimes()
				m.EXPECT().
					Issues(gomock.Any(), "foo", "Bar", allIssues).
					Return(nil, nil).
					AnyTimes()
			},
			want: nil,
			wantErr: func(err error) bool {
				return err != nil
			},
		},
		{
			name:  "repo view",
			input: "https://github.com/foo/bar",
			setupMock: func(m *mock.MockGithubClient) {
				m.EXPECT().
					Repos(gomock.Any(), "foo").
					Return(ownerRepos, nil)
				m.EXPECT().
					RepoLanguages(gomock.Any(), "foo", "Bar").
					Return(app.LanguageTotals{"Go": 100, "Shell": 5}, nil)
				m.EXPECT().
					Issues(gomock.Any(), "foo", "Bar", allIssues).
					Return([]app.IssueOrPR{
						{State: "open"},
						{State: "open", IsPullRequest: true},
						{},
					}, nil)
				m.EXPECT().
					Commits(gomock.Any(), "foo", "Bar", gomock.Any()).
					DoAndReturn(func(ctx context.Context, owner string, repo string, since time.Time) ([]app.CommitRecord, error) {
						lookback := time.Since(since)
						if lookback < 90*24*time.Hour || lookback > 90*24*time.Hour+time.Minute {
							t.Errorf("invalid since arg %v, want 90 days ago", since)
						}
						return []app.CommitRecord{
							{AuthorDate: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)},
							{AuthorDate: time.Date(2024, 1, 2, 23, 0, 0, 0, time.UTC)},
							{AuthorDate: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)},
						}, nil
					})
			},
			want: &app.Report{
				Reference: app.Reference{Kind: app.ReferenceRepo, Owner: "foo", Repo: "bar"},
				View: app.View{
					Kind: app.ReferenceRepo,
					Repo: &app.Repo{Name: "Bar", FullName: "foo/Bar", OwnerLogin: "foo", Stars: 3},
				},
				Languages: app.LanguageTotals{"Go": 100, "Shell": 5},
				Commits: app.CommitSeries{
					{Day: "2024-01-02", Count: 2},
					{Day: "2024-01-03", Count: 1},
				},
				Issues: &app.IssueMix{OpenIssues: 2, OpenPRs: 1},
			},
		},
		{
			name:  "repo not found",
			input: "foo/missing",
			setupMock: func(m *mock.MockGithubClient) {
				m.EXPECT().
					Repos(gomock.Any(), "foo").
					Return(ownerRepos, nil)
			},
			want:    nil,
			wantErr: app.IsNotFoundError,
		},
		{
			name:  "repo list error",
			input: "foo/bar",
			setupMock: func(m *mock.MockGithubClient) {
				m.EXPECT().
					Repos(gomock.Any(), "foo").
					Return(nil, &app.TransportError{Op: "fetching repos", Err: errors.New("error")})
			},
			want:    nil,
			wantErr: app.IsTransportError,
		},
		{
			name:  "repo commits error",
			input: "foo/bar",
			setupMock: func(m *mock.MockGithubClient) {
				m.EXPECT().
					Repos(gomock.Any(), "foo").
					Return(ownerRepos, nil)
				m.EXPECT().
					RepoLanguages(gomock.Any(), "foo", "Bar").
					Return(app.LanguageTotals{"Go": 1}, nil).
					AnyTimes()
				m.EXPECT().
					Issues(gomock.Any(), "foo", "Bar", allIssues).
					Return(nil, nil).
					AnyTimes()
				m.EXPECT().
					Commits(gomock.Any(), "foo", "Bar", gomock.Any()).
					Return(nil, &app.TransportError{Op: "fetching commits", Err: errors.New("error")})
			},
			want:    nil,
			wantErr: app.IsTransportError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			githubCli := mock.NewMockGithubClient(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(githubCli)
			}

			s := app.NewService(githubCli, time.Minute)
			got, err := s.Insights(context.Background(), tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), "unexpected error type: %v", err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestServiceQueryTimeout(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	githubCli := mock.NewMockGithubClient(ctrl)
	githubCli.EXPECT().
		Repos(gomock.Any(), "foo").
		DoAndReturn(func(ctx context.Context, owner string) ([]app.Repo, error) {
			select {
			case <-ctx.Done():
				return nil, &app.TransportError{Op: "fetching repos", Err: ctx.Err()}
			case <-time.After(time.Second):
				return nil, nil
			}
		})

	s := app.NewService(githubCli, 10*time.Millisecond)
	got, err := s.Query(context.Background(), app.Reference{Kind: app.ReferenceRepo, Owner: "foo", Repo: "bar"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Nil(t, got)
}

func TestServicePassthroughValidation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	githubCli := mock.NewMockGithubClient(ctrl)
	githubCli.EXPECT().
		Issues(gomock.Any(), "foo", "bar", app.IssueListOptions{State: "all", PerPage: 100}).
		Return([]app.IssueOrPR{{Number: 1}}, nil)

	s := app.NewService(githubCli, 0)
	ctx := context.Background()

	_, err := s.User(ctx, "")
	assert.True(t, app.IsInvalidRequestError(err))
	_, err = s.Repos(ctx, "")
	assert.True(t, app.IsInvalidRequestError(err))
	_, err = s.RepoLanguages(ctx, "foo", "")
	assert.True(t, app.IsInvalidRequestError(err))
	_, err = s.Commits(ctx, "", "bar", time.Time{})
	assert.True(t, app.IsInvalidRequestError(err))

	issues, err := s.Issues(ctx, "foo", "bar", app.IssueListOptions{PerPage: 1000})
	require.NoError(t, err)
	assert.Equal(t, []app.IssueOrPR{{Number: 1}}, issues)
}
