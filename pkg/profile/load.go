package profile

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/ghinsight/pkg/analytics"
	"github.com/matzehuels/ghinsight/pkg/integrations/github"
)

// Profile is a user together with their recent repositories.
type Profile struct {
	User  github.User         `json:"user"`
	Repos []github.Repository `json:"repos"`
}

// LoadProfile fetches the user and their recent repositories in parallel.
// A failed user lookup fails the load; a failed repository lookup leaves
// the repository list empty.
func (s *Service) LoadProfile(ctx context.Context, login string) Result[Profile] {
	login, verr := validate(login)
	if verr != nil {
		return failure[Profile](verr)
	}

	var (
		user  Result[github.User]
		repos Result[[]github.Repository]
		g     errgroup.Group
	)
	g.Go(func() error { user = s.GetUser(ctx, login); return nil })
	g.Go(func() error { repos = s.GetRepos(ctx, login); return nil })
	g.Wait()

	if !user.OK() {
		return failure[Profile](user.Err)
	}
	p := Profile{User: user.Data, Repos: repos.Data}
	if !repos.OK() {
		s.Logger.Warn("repositories unavailable", "login", login, "code", repos.Code())
	}
	if p.Repos == nil {
		p.Repos = []github.Repository{}
	}
	return success(p)
}

// LoadAnalytics fetches events and the language breakdown in parallel and
// derives every analytics view. Failed events fail the load; failed
// languages degrade to an empty distribution.
func (s *Service) LoadAnalytics(ctx context.Context, login string) Result[analytics.Report] {
	login, verr := validate(login)
	if verr != nil {
		return failure[analytics.Report](verr)
	}

	var (
		events Result[[]github.Event]
		langs  Result[github.LanguageBreakdown]
		g      errgroup.Group
	)
	g.Go(func() error { events = s.GetUserEvents(ctx, login, DefaultEventsPageSize); return nil })
	g.Go(func() error { langs = s.GetLanguageBreakdown(ctx, login); return nil })
	g.Wait()

	if !events.OK() {
		return failure[analytics.Report](events.Err)
	}
	if !langs.OK() {
		s.Logger.Warn("language breakdown unavailable", "login", login, "code", langs.Code())
	}
	return success(analytics.BuildReport(events.Data, langs.Data, s.Analytics))
}
