package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-zajac/ghinsights/internal/app"
	"github.com/sirupsen/logrus"
)

// Service provides insights queries and github data passthroughs.
//go:generate mockgen -destination mock/service.go -package mock github.com/m-zajac/ghinsights/internal/api/http Service
type Service interface {
	Insights(ctx context.Context, input string) (*app.Report, error)
	User(ctx context.Context, owner string) (app.Profile, error)
	Repos(ctx context.Context, owner string) ([]app.Repo, error)
	RepoLanguages(ctx context.Context, owner string, repo string) (app.LanguageTotals, error)
	Issues(ctx context.Context, owner string, repo string, opts app.IssueListOptions) ([]app.IssueOrPR, error)
	Commits(ctx context.Context, owner string, repo string, since time.Time) ([]app.CommitRecord, error)
}

// NewMux creates router for app's http server
func NewMux(service Service, timeout time.Duration, l logrus.FieldLogger) http.Handler {
	timeoutMiddleware := NewTimeoutMiddleware(timeout)

	owner := func(r *http.Request) string {
		return chi.URLParam(r, "owner")
	}
	repo := func(r *http.Request) string {
		return chi.URLParam(r, "repo")
	}

	m := chi.NewRouter()
	m.Use(NewRequestLogMiddleware(l))

	m.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	m.Route("/api", func(r chi.Router) {
		r.Get("/insights", timeoutMiddleware(NewInsightsHandler(service, l)))
		r.Get("/user/{owner}", timeoutMiddleware(NewUserHandler(owner, service, l)))
		r.Get("/repos/{owner}", timeoutMiddleware(NewReposHandler(owner, service, l)))
		r.Route("/repo/{owner}/{repo}", func(r chi.Router) {
			r.Get("/languages", timeoutMiddleware(NewLanguagesHandler(owner, repo, service, l)))
			r.Get("/issues", timeoutMiddleware(NewIssuesHandler(owner, repo, service, l)))
			r.Get("/commits", timeoutMiddleware(NewCommitsHandler(owner, repo, service, l)))
		})
	})

	return m
}
