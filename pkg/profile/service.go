package profile

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/ghinsight/pkg/analytics"
	"github.com/matzehuels/ghinsight/pkg/cache"
	"github.com/matzehuels/ghinsight/pkg/integrations/github"
)

// DefaultEventsPageSize is the number of public events requested when the
// caller does not choose one.
const DefaultEventsPageSize = 100

// Service composes GitHub API calls with caching.
// Both CLI and API use it so caching and error mapping live in one place.
//
// The Service holds no per-request state. Multiple goroutines can safely
// share one Service.
type Service struct {
	GitHub *github.Client
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration

	// Repos controls the recent-repositories listing.
	Repos github.ReposOptions

	// Analytics pins the clock and zone used by LoadAnalytics.
	Analytics analytics.Options

	// Refresh skips cache lookups; successful results are still stored.
	Refresh bool
}

// NewService creates a facade over gh.
// If c is nil, a NullCache is used (caching disabled).
// If keyer is nil, a DefaultKeyer is used.
// A ttl <= 0 selects cache.DefaultTTL.
func NewService(gh *github.Client, c cache.Cache, keyer cache.Keyer, ttl time.Duration, logger *log.Logger) *Service {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		GitHub: gh,
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    ttl,
		Repos:  github.DefaultReposOptions,
	}
}

// cached returns the value stored under key, or runs fetch and stores its
// result when it succeeds. Cache failures are logged and ignored.
func cached[T any](ctx context.Context, s *Service, key string, fetch func() (T, error)) (T, error) {
	if !s.Refresh {
		data, hit, err := s.Cache.Get(ctx, key)
		if err != nil {
			s.Logger.Debug("cache read failed", "key", key, "error", err)
		}
		if hit {
			var v T
			if err := json.Unmarshal(data, &v); err == nil {
				s.Logger.Debug("cache hit", "key", key)
				return v, nil
			}
			s.Logger.Debug("discarding undecodable cache entry", "key", key)
		}
	}

	v, err := fetch()
	if err != nil {
		return v, err
	}
	if data, err := json.Marshal(v); err != nil {
		s.Logger.Debug("cache encode failed", "key", key, "error", err)
	} else if err := s.Cache.Set(ctx, key, data, s.TTL); err != nil {
		s.Logger.Debug("cache write failed", "key", key, "error", err)
	}
	return v, nil
}

// GetUser fetches a user profile.
func (s *Service) GetUser(ctx context.Context, login string) Result[github.User] {
	login, verr := validate(login)
	if verr != nil {
		return failure[github.User](verr)
	}
	u, err := cached(ctx, s, s.Keyer.UserKey(login), func() (github.User, error) {
		u, err := s.GitHub.FetchUser(ctx, login)
		if err != nil {
			return github.User{}, err
		}
		return *u, nil
	})
	if err != nil {
		s.Logger.Debug("fetch user failed", "login", login, "error", err)
		return failure[github.User](classify(err, "fetch user "+login))
	}
	return success(u)
}

// GetRepos fetches a user's most recently created repositories.
func (s *Service) GetRepos(ctx context.Context, login string) Result[[]github.Repository] {
	login, verr := validate(login)
	if verr != nil {
		return failure[[]github.Repository](verr)
	}
	repos, err := cached(ctx, s, s.Keyer.ReposKey(login), func() ([]github.Repository, error) {
		return s.GitHub.FetchRepos(ctx, login, s.Repos)
	})
	if err != nil {
		s.Logger.Debug("fetch repos failed", "login", login, "error", err)
		return failure[[]github.Repository](classify(err, "fetch repos "+login))
	}
	return success(repos)
}

// GetUserEvents fetches a user's public event stream, newest first.
// A pageSize <= 0 selects DefaultEventsPageSize.
func (s *Service) GetUserEvents(ctx context.Context, login string, pageSize int) Result[[]github.Event] {
	login, verr := validate(login)
	if verr != nil {
		return failure[[]github.Event](verr)
	}
	if pageSize <= 0 {
		pageSize = DefaultEventsPageSize
	}
	key := s.Keyer.EventsKey(login)
	if pageSize != DefaultEventsPageSize {
		key += "-" + strconv.Itoa(pageSize)
	}
	events, err := cached(ctx, s, key, func() ([]github.Event, error) {
		return s.GitHub.FetchEvents(ctx, login, pageSize)
	})
	if err != nil {
		s.Logger.Debug("fetch events failed", "login", login, "error", err)
		return failure[[]github.Event](classify(err, "fetch events "+login))
	}
	return success(events)
}

// SearchUsers returns up to six users matching query by name or login,
// ordered as the search API ranked them. Each candidate's display name is
// looked up separately; a failed lookup or empty name falls back to the
// login. A blank query succeeds with no candidates and no network call;
// over-long queries or queries with control characters fail with
// INVALID_INPUT.
func (s *Service) SearchUsers(ctx context.Context, query string) Result[[]github.SearchCandidate] {
	if strings.TrimSpace(query) == "" {
		return success([]github.SearchCandidate{})
	}
	query, verr := validateQuery(query)
	if verr != nil {
		return failure[[]github.SearchCandidate](verr)
	}
	out, err := cached(ctx, s, s.Keyer.SearchKey(query), func() ([]github.SearchCandidate, error) {
		candidates, err := s.GitHub.SearchUsers(ctx, query)
		if err != nil {
			return nil, err
		}

		var g errgroup.Group
		for i := range candidates {
			c := &candidates[i]
			g.Go(func() error {
				c.Name = c.Login
				if u, err := s.GitHub.FetchUserDetails(ctx, c.Login); err != nil {
					s.Logger.Debug("candidate lookup failed", "login", c.Login, "error", err)
				} else if u.Name != "" {
					c.Name = u.Name
				}
				return nil
			})
		}
		g.Wait()
		return candidates, nil
	})
	if err != nil {
		s.Logger.Debug("search failed", "query", query, "error", err)
		return failure[[]github.SearchCandidate](classify(err, "search users"))
	}
	return success(out)
}

// GetLanguageBreakdown fetches up to 100 repositories and the language
// byte counts of each one that declares a primary language. Repositories
// whose lookup fails are left out; the result keeps repository order.
func (s *Service) GetLanguageBreakdown(ctx context.Context, login string) Result[github.LanguageBreakdown] {
	login, verr := validate(login)
	if verr != nil {
		return failure[github.LanguageBreakdown](verr)
	}
	out, err := cached(ctx, s, s.Keyer.LanguagesKey(login), func() (github.LanguageBreakdown, error) {
		repos, err := s.GitHub.FetchAllRepos(ctx, login)
		if err != nil {
			return github.LanguageBreakdown{}, err
		}

		slots := make([]*github.RepoLanguages, len(repos))
		var g errgroup.Group
		for i, r := range repos {
			if r.Language == "" {
				continue
			}
			g.Go(func() error {
				langs, err := s.GitHub.FetchRepoLanguages(ctx, login, r.Name)
				if err != nil {
					s.Logger.Debug("repo languages failed", "repo", r.Name, "error", err)
					return nil
				}
				slots[i] = &github.RepoLanguages{RepoName: r.Name, Languages: langs}
				return nil
			})
		}
		g.Wait()

		breakdown := github.LanguageBreakdown{Repos: repos, Languages: []github.RepoLanguages{}}
		for _, rl := range slots {
			if rl != nil {
				breakdown.Languages = append(breakdown.Languages, *rl)
			}
		}
		return breakdown, nil
	})
	if err != nil {
		s.Logger.Debug("language breakdown failed", "login", login, "error", err)
		return failure[github.LanguageBreakdown](classify(err, "fetch languages "+login))
	}
	return success(out)
}
