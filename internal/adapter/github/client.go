package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/m-zajac/ghinsights/internal/app"
)

const userAgent = "ghinsights"

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client returns github profiles, repositories and repository activity.
// This struct is an adapter for app.GithubClient.
//
// Authorization is expected to be handled by the doer (see oauth2.Transport).
type Client struct {
	doer    HTTPDoer
	address string

	objectResponseMaxSize int
	listResponseMaxSize   int
}

var _ app.GithubClient = &Client{}

// NewClient creates new github client.
// Address is github rest api address or address of any api compatible proxy.
func NewClient(doer HTTPDoer, address string) *Client {
	c := Client{
		doer:    doer,
		address: address,

		objectResponseMaxSize: 1024 * 1024,
		listResponseMaxSize:   1024 * 1024 * 20,
	}

	return &c
}

// User returns github user profile.
func (c *Client) User(ctx context.Context, owner string) (app.Profile, error) {
	if owner == "" {
		return app.Profile{}, app.InvalidRequestError("owner login cannot be empty")
	}

	const op = "fetching user"
	body, err := c.get(ctx, op, "/users/"+url.PathEscape(owner), nil, c.objectResponseMaxSize)
	if err != nil {
		return app.Profile{}, err
	}

	var resp userResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return app.Profile{}, unmarshalError(op, err)
	}

	return resp.ToProfile(), nil
}

// Repos returns first page of owner's public repositories.
func (c *Client) Repos(ctx context.Context, owner string) ([]app.Repo, error) {
	if owner == "" {
		return nil, app.InvalidRequestError("owner login cannot be empty")
	}

	v := make(url.Values)
	v.Set("per_page", "100")

	const op = "fetching repos"
	body, err := c.get(ctx, op, "/users/"+url.PathEscape(owner)+"/repos", v, c.listResponseMaxSize)
	if err != nil {
		return nil, err
	}

	var resp reposResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, unmarshalError(op, err)
	}

	return resp.ToRepos(), nil
}

// RepoLanguages returns language byte counts of the repository.
func (c *Client) RepoLanguages(ctx context.Context, owner string, repo string) (app.LanguageTotals, error) {
	path, err := repoPath(owner, repo, "/languages")
	if err != nil {
		return nil, err
	}

	const op = "fetching languages"
	body, err := c.get(ctx, op, path, nil, c.objectResponseMaxSize)
	if err != nil {
		return nil, err
	}

	var resp languagesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, unmarshalError(op, err)
	}

	return resp.ToLanguageTotals(), nil
}

// Issues returns single page of repository issues, including pull requests.
// Non-list response is treated as empty list.
func (c *Client) Issues(ctx context.Context, owner string, repo string, opts app.IssueListOptions) ([]app.IssueOrPR, error) {
	path, err := repoPath(owner, repo, "/issues")
	if err != nil {
		return nil, err
	}
	if opts.PerPage < 1 || opts.PerPage > 100 {
		return nil, app.InvalidRequestError("per page must be in range <1..100>")
	}

	v := make(url.Values)
	if opts.State != "" {
		v.Set("state", opts.State)
	}
	v.Set("per_page", strconv.Itoa(opts.PerPage))

	const op = "fetching issues"
	body, err := c.get(ctx, op, path, v, c.listResponseMaxSize)
	if err != nil {
		return nil, err
	}
	if !isJSONArray(body) {
		return []app.IssueOrPR{}, nil
	}

	var resp issuesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, unmarshalError(op, err)
	}

	return resp.ToIssues(), nil
}

// Commits returns single page of repository commits made after since.
// Zero since means no time filter. Non-list response is treated as empty list.
func (c *Client) Commits(ctx context.Context, owner string, repo string, since time.Time) ([]app.CommitRecord, error) {
	path, err := repoPath(owner, repo, "/commits")
	if err != nil {
		return nil, err
	}

	v := make(url.Values)
	if !since.IsZero() {
		v.Set("since", since.UTC().Format(time.RFC3339))
	}
	v.Set("per_page", "100")

	const op = "fetching commits"
	body, err := c.get(ctx, op, path, v, c.listResponseMaxSize)
	if err != nil {
		return nil, err
	}
	if !isJSONArray(body) {
		return []app.CommitRecord{}, nil
	}

	var resp commitsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, unmarshalError(op, err)
	}

	return resp.ToCommits(), nil
}

func (c *Client) get(ctx context.Context, op string, path string, query url.Values, maxBytes int) ([]byte, error) {
	u, err := url.Parse(c.address + path)
	if err != nil {
		return nil, &app.TransportError{Op: op, Err: fmt.Errorf("invalid url: %w", err)}
	}
	if query != nil {
		u.RawQuery = query.Encode()
	}

	httpReq, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &app.TransportError{Op: op, Err: fmt.Errorf("creating http request: %w", err)}
	}

	body, code, err := c.makeRequest(ctx, httpReq, maxBytes)
	if err != nil {
		return nil, &app.TransportError{Op: op, StatusCode: code, Err: err}
	}

	return body, nil
}

func (c *Client) makeRequest(ctx context.Context, req *http.Request, maxBytes int) ([]byte, int, error) {
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.doer.Do(req.WithContext(ctx))
	if err != nil {
		return nil, 0, fmt.Errorf("doing http request: %w", err)
	}
	// Always drain body before close to allow connection reuse.
	// See: http://tleyden.github.io/blog/2016/11/21/tuning-the-go-http-client-library-for-load-testing/
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNoContent {
		return nil, resp.StatusCode, nil
	}
	if resp.StatusCode/100 > 2 {
		if c.checkRateLimitExceeded(&resp.Header) {
			return nil, resp.StatusCode, errors.New("rate limit exceeded")
		}
		return nil, resp.StatusCode, fmt.Errorf("got invalid http status code: %d", resp.StatusCode)
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, int64(maxBytes)))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("reading http response body: %w", err)
	}

	return b, resp.StatusCode, nil
}

func (c *Client) checkRateLimitExceeded(h *http.Header) bool {
	if s := h.Get("X-RateLimit-Remaining"); s != "" {
		if limit, err := strconv.Atoi(s); err == nil && limit == 0 {
			return true
		}
	}
	return false
}

func repoPath(owner string, repo string, suffix string) (string, error) {
	if owner == "" {
		return "", app.InvalidRequestError("repo's owner login cannot be empty")
	}
	if repo == "" {
		return "", app.InvalidRequestError("repo's name cannot be empty")
	}
	return "/repos/" + url.PathEscape(owner) + "/" + url.PathEscape(repo) + suffix, nil
}

func isJSONArray(b []byte) bool {
	b = bytes.TrimSpace(b)
	return len(b) > 0 && b[0] == '['
}

func unmarshalError(op string, err error) error {
	return &app.TransportError{Op: op, Err: fmt.Errorf("unmarshalling response: %w", err)}
}
