// Package profile is the API facade the CLI and HTTP server talk to.
//
// # Overview
//
// [Service] exposes task-level operations over the GitHub client:
//
//   - [Service.GetUser], [Service.GetRepos], [Service.GetUserEvents]
//   - [Service.SearchUsers]: search plus a per-candidate name lookup
//   - [Service.GetLanguageBreakdown]: repository list plus per-repo languages
//   - [Service.LoadProfile]: user and recent repositories in parallel
//   - [Service.LoadAnalytics]: events and languages, turned into a report
//
// Every operation returns a [Result] instead of an error. A failed result
// carries a coded [errors.Error] whose user message comes from a fixed
// set; raw HTTP failures never leak to the caller.
//
// # Caching
//
// Each operation checks the cache under its own key before touching the
// network and stores the JSON encoding of a successful result. Failures
// are never cached. Fan-out operations cache their combined result once
// the top-level request has succeeded; a sub-request that failed simply
// contributes a fallback value.
//
// [errors.Error]: github.com/matzehuels/ghinsight/pkg/errors.Error
package profile
