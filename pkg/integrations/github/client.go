package github

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/matzehuels/ghinsight/pkg/integrations"
)

// DefaultBaseURL is the public GitHub REST API.
const DefaultBaseURL = "https://api.github.com"

// UserAgent identifies requests made by this client.
const UserAgent = "ghinsight"

// Attempt budgets. Search and per-item lookups get a single attempt so a
// slow suggestion list never stalls behind backoff.
const (
	searchAttempts   = 1
	detailAttempts   = 1
	languageAttempts = 1
)

// SearchLimit is the number of search candidates requested and enriched.
const SearchLimit = 6

// Client provides access to the GitHub REST API.
// It handles HTTP requests with automatic retries and optional authentication.
type Client struct {
	*integrations.Client
}

// NewClient creates a GitHub API client with optional authentication.
// Pass an empty string for token to use unauthenticated requests (lower rate limits).
func NewClient(token string, opts ...integrations.Option) *Client {
	headers := map[string]string{
		"Accept":     "application/vnd.github.v3+json",
		"User-Agent": UserAgent,
	}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	opts = append([]integrations.Option{integrations.WithBaseURL(DefaultBaseURL)}, opts...)
	return &Client{Client: integrations.NewClient(headers, opts...)}
}

// FetchUser retrieves the public profile for login.
func (c *Client) FetchUser(ctx context.Context, login string) (*User, error) {
	return c.fetchUser(ctx, login, integrations.DefaultAttempts)
}

// FetchUserDetails is FetchUser with a single attempt, used to enrich
// search candidates.
func (c *Client) FetchUserDetails(ctx context.Context, login string) (*User, error) {
	return c.fetchUser(ctx, login, detailAttempts)
}

func (c *Client) fetchUser(ctx context.Context, login string, attempts int) (*User, error) {
	var u User
	if err := c.GetAttempts(ctx, "/users/"+url.PathEscape(login), attempts, &u); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return nil, fmt.Errorf("%w: github user %s", err, login)
		}
		return nil, err
	}
	return &u, nil
}

// FetchRepos lists a user's repositories in the order given by opts.
func (c *Client) FetchRepos(ctx context.Context, login string, opts ReposOptions) ([]Repository, error) {
	if opts.PerPage <= 0 {
		opts.PerPage = DefaultReposOptions.PerPage
	}
	if opts.Sort == "" {
		opts.Sort = DefaultReposOptions.Sort
	}
	if opts.Direction == "" {
		opts.Direction = DefaultReposOptions.Direction
	}
	endpoint := fmt.Sprintf("/users/%s/repos?sort=%s&per_page=%d&direction=%s",
		url.PathEscape(login), integrations.URLEncode(opts.Sort), opts.PerPage, integrations.URLEncode(opts.Direction))

	repos := []Repository{}
	if err := c.Get(ctx, endpoint, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// FetchAllRepos lists up to 100 of a user's repositories, most recently
// updated first.
func (c *Client) FetchAllRepos(ctx context.Context, login string) ([]Repository, error) {
	endpoint := fmt.Sprintf("/users/%s/repos?per_page=100&sort=updated", url.PathEscape(login))
	repos := []Repository{}
	if err := c.Get(ctx, endpoint, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// FetchRepoLanguages returns the language byte counts of one repository.
func (c *Client) FetchRepoLanguages(ctx context.Context, owner, repo string) (map[string]int64, error) {
	endpoint := fmt.Sprintf("/repos/%s/%s/languages", url.PathEscape(owner), url.PathEscape(repo))
	langs := map[string]int64{}
	if err := c.GetAttempts(ctx, endpoint, languageAttempts, &langs); err != nil {
		return nil, err
	}
	return langs, nil
}

// FetchEvents returns up to perPage of a user's public events, newest first.
func (c *Client) FetchEvents(ctx context.Context, login string, perPage int) ([]Event, error) {
	if perPage <= 0 {
		perPage = 100
	}
	endpoint := "/users/" + url.PathEscape(login) + "/events/public?per_page=" + strconv.Itoa(perPage)
	events := []Event{}
	if err := c.Get(ctx, endpoint, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// SearchUsers returns the top matches for query by name or login, ordered
// by followers. Candidates carry no display name; callers enrich them
// with [Client.FetchUserDetails].
func (c *Client) SearchUsers(ctx context.Context, query string) ([]SearchCandidate, error) {
	endpoint := fmt.Sprintf("/search/users?q=%s+in:name+in:login&per_page=%d&sort=followers&order=desc",
		integrations.URLEncode(query), SearchLimit)

	var data searchResponse
	if err := c.GetAttempts(ctx, endpoint, searchAttempts, &data); err != nil {
		return nil, err
	}

	items := data.Items
	if len(items) > SearchLimit {
		items = items[:SearchLimit]
	}
	out := make([]SearchCandidate, 0, len(items))
	for _, it := range items {
		out = append(out, SearchCandidate{Login: it.Login, AvatarURL: it.AvatarURL, ID: it.ID})
	}
	return out, nil
}
