// Package pkg provides the core libraries for ghinsight GitHub profile
// analytics.
//
// # Overview
//
// ghinsight fetches a user's public GitHub data and derives views from it:
// a contribution heatmap, a language breakdown, an activity feed and
// productivity insights. The pkg directory is organized into these areas:
//
//  1. [integrations] - HTTP fetch layer with per-attempt timeouts and retry
//  2. [integrations/github] - GitHub REST endpoints and response types
//  3. [cache] - TTL response cache and key schemes
//  4. [profile] - Facade composing fetches with caching and error mapping
//  5. [analytics] - Pure transformations from API data to views
//  6. [suggest] - Debounce and latest-wins primitives for type-ahead search
//
// Supporting packages: [errors] (coded errors and fixed user messages),
// [httputil] (retry with exponential backoff), [observability] (hooks)
// and [buildinfo].
//
// # Architecture
//
// The typical data flow:
//
//	GitHub REST API
//	       ↓
//	  [integrations] (timeout, classify, retry)
//	       ↓
//	  [profile] (cache, fan-out, coded errors)
//	       ↓
//	  [analytics] (grid, languages, feed, insights)
//	       ↓
//	  CLI views / JSON API
//
// # Quick Start
//
//	import (
//	    "context"
//	    "time"
//
//	    "github.com/matzehuels/ghinsight/pkg/cache"
//	    "github.com/matzehuels/ghinsight/pkg/integrations/github"
//	    "github.com/matzehuels/ghinsight/pkg/profile"
//	)
//
//	svc := profile.NewService(github.NewClient(""), cache.NewMemoryCache(5*time.Minute), nil, 0, nil)
//	res := svc.LoadAnalytics(context.Background(), "octocat")
//	if !res.OK() {
//	    fmt.Println(res.Message())
//	    return
//	}
//	fmt.Println(res.Data.Grid.Total, "contributions")
package pkg
