// Package github provides an HTTP client for the GitHub REST API.
//
// # Overview
//
// This package fetches user profiles, repositories, public events, user
// search results and per-repository language statistics from
// https://api.github.com. It is the transport half of the profile facade;
// caching and result shaping happen in pkg/profile.
//
// # Usage
//
//	client := github.NewClient(token, integrations.WithAttemptTimeout(5*time.Second))
//
//	user, err := client.FetchUser(ctx, "octocat")
//	if errors.Is(err, integrations.ErrNotFound) {
//	    ...
//	}
//
// # Endpoints
//
//   - [Client.FetchUser]: GET /users/{login}
//   - [Client.FetchRepos]: GET /users/{login}/repos?sort=..&per_page=..&direction=..
//   - [Client.FetchAllRepos]: GET /users/{login}/repos?per_page=100&sort=updated
//   - [Client.FetchRepoLanguages]: GET /repos/{owner}/{repo}/languages
//   - [Client.FetchEvents]: GET /users/{login}/events/public?per_page=..
//   - [Client.SearchUsers]: GET /search/users?q=..+in:name+in:login
//
// # Authentication
//
// A GitHub personal access token is optional but recommended to avoid rate
// limits. Without a token, the client is limited to 60 requests/hour.
// With a token, the limit is 5000 requests/hour.
//
// # Attempt budgets
//
// Profile, repository and event lookups get three attempts. Search, the
// per-candidate detail lookup and per-repository language lookups get a
// single attempt.
package github
