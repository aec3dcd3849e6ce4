package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/ghinsights/internal/app"
	"github.com/m-zajac/ghinsights/internal/chart"
	"github.com/sirupsen/logrus"
)

const (
	defaultIssuesState   = "all"
	defaultIssuesPerPage = 100
	maxIssuesPerPage     = 100
)

// NewInsightsHandler creates handlerfunc returning dashboard for github link passed in "url" query param.
func NewInsightsHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input := r.URL.Query().Get("url")

		report, err := service.Insights(r.Context(), input)
		if err != nil {
			writeError(w, err, l)
			return
		}

		writeJSON(w, chart.Build(report))
	}
}

// NewUserHandler creates handlerfunc returning github user profile.
func NewUserHandler(
	getOwner func(*http.Request) string,
	service Service,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := service.User(r.Context(), getOwner(r))
		if err != nil {
			writeError(w, err, l)
			return
		}

		writeJSON(w, profile)
	}
}

// NewReposHandler creates handlerfunc returning owner's public repositories.
func NewReposHandler(
	getOwner func(*http.Request) string,
	service Service,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repos, err := service.Repos(r.Context(), getOwner(r))
		if err != nil {
			writeError(w, err, l)
			return
		}
		if repos == nil {
			repos = []app.Repo{}
		}

		writeJSON(w, repos)
	}
}

// NewLanguagesHandler creates handlerfunc returning repository languages.
func NewLanguagesHandler(
	getOwner func(*http.Request) string,
	getRepo func(*http.Request) string,
	service Service,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		langs, err := service.RepoLanguages(r.Context(), getOwner(r), getRepo(r))
		if err != nil {
			writeError(w, err, l)
			return
		}
		if langs == nil {
			langs = app.LanguageTotals{}
		}

		writeJSON(w, langs)
	}
}

// NewIssuesHandler creates handlerfunc returning repository issues and pull requests.
// Accepts "state" and "per_page" query params.
func NewIssuesHandler(
	getOwner func(*http.Request) string,
	getRepo func(*http.Request) string,
	service Service,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := r.URL.Query().Get("state")
		if state == "" {
			state = defaultIssuesState
		}
		opts := app.IssueListOptions{
			State:   state,
			PerPage: getIntParam(r, "per_page", defaultIssuesPerPage, maxIssuesPerPage),
		}

		issues, err := service.Issues(r.Context(), getOwner(r), getRepo(r), opts)
		if err != nil {
			writeError(w, err, l)
			return
		}
		if issues == nil {
			issues = []app.IssueOrPR{}
		}

		writeJSON(w, issues)
	}
}

// NewCommitsHandler creates handlerfunc returning repository commits.
// Optional "since" query param must be RFC3339 timestamp.
func NewCommitsHandler(
	getOwner func(*http.Request) string,
	getRepo func(*http.Request) string,
	service Service,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var since time.Time
		if s := r.URL.Query().Get("since"); s != "" {
			t, err := time.Parse(time.RFC3339, s)
			if err != nil {
				http.Error(w, "since must be RFC3339 timestamp", http.StatusBadRequest)
				return
			}
			since = t
		}

		commits, err := service.Commits(r.Context(), getOwner(r), getRepo(r), since)
		if err != nil {
			writeError(w, err, l)
			return
		}
		if commits == nil {
			commits = []app.CommitRecord{}
		}

		writeJSON(w, commits)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-type", "application/json; charset=utf-8")
	_ = jsoniter.ConfigFastest.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error, l logrus.FieldLogger) {
	var te *app.TransportError
	switch {
	case app.IsInvalidRequestError(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case app.IsNotFoundError(err):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &te) && te.IsUpstreamNotFound():
		http.Error(w, "not found on github", http.StatusNotFound)
	case app.IsTransportError(err):
		l.Warnf("github request failed: %v", err)
		http.Error(w, "github request failed", http.StatusBadGateway)
	default:
		l.Errorf("handling request: %v", err)
		http.Error(w, "", http.StatusInternalServerError)
	}
}

func getIntParam(r *http.Request, name string, defaultValue int, maxValue int) int {
	value := defaultValue
	if vs := r.URL.Query().Get(name); vs != "" {
		if v, err := strconv.Atoi(vs); err == nil && v > 0 && v <= maxValue {
			value = v
		}
	}

	return value
}
