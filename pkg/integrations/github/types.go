package github

import "time"

// Event type tags reported by the events API.
const (
	EventPush              = "PushEvent"
	EventPullRequest       = "PullRequestEvent"
	EventIssues            = "IssuesEvent"
	EventPullRequestReview = "PullRequestReviewEvent"
	EventCreate            = "CreateEvent"
	EventFork              = "ForkEvent"
	EventWatch             = "WatchEvent"
	EventPublic            = "PublicEvent"
)

// User represents a GitHub user profile.
type User struct {
	ID          int64     `json:"id"`
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	AvatarURL   string    `json:"avatar_url"`
	HTMLURL     string    `json:"html_url"`
	Bio         string    `json:"bio"`
	Location    string    `json:"location"`
	Company     string    `json:"company"`
	Blog        string    `json:"blog"`
	Email       string    `json:"email"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	PublicRepos int       `json:"public_repos"`
	CreatedAt   time.Time `json:"created_at"`
}

// DisplayName returns the user's name, or the login when no name is set.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Login
}

// Repository represents a GitHub repository.
type Repository struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Description string    `json:"description"`
	Language    string    `json:"language"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	Watchers    int       `json:"watchers_count"`
	OpenIssues  int       `json:"open_issues_count"`
	Topics      []string  `json:"topics"`
	HTMLURL     string    `json:"html_url"`
	Fork        bool      `json:"fork"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Event is one entry of a user's public event stream.
type Event struct {
	ID        string       `json:"id"`
	Type      string       `json:"type"`
	Repo      EventRepo    `json:"repo"`
	CreatedAt time.Time    `json:"created_at"`
	Payload   EventPayload `json:"payload"`
}

// EventRepo names the repository an event happened in.
type EventRepo struct {
	Name string `json:"name"`
}

// EventPayload holds the payload fields used by the analytics views.
// Fields not relevant to an event type are left zero.
type EventPayload struct {
	Size        int          `json:"size,omitempty"`
	Commits     []Commit     `json:"commits,omitempty"`
	Action      string       `json:"action,omitempty"`
	Number      int          `json:"number,omitempty"`
	PullRequest *PullRequest `json:"pull_request,omitempty"`
	Issue       *Issue       `json:"issue,omitempty"`
	RefType     string       `json:"ref_type,omitempty"`
	Ref         string       `json:"ref,omitempty"`
	Description string       `json:"description,omitempty"`
}

// Commit is a commit summary inside a push payload.
type Commit struct {
	SHA     string `json:"sha"`
	Message string `json:"message"`
}

// PullRequest is the pull request summary inside an event payload.
type PullRequest struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
}

// Issue is the issue summary inside an event payload.
type Issue struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
}

// SearchCandidate is one user search suggestion.
type SearchCandidate struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	ID        int64  `json:"id"`
}

// RepoLanguages maps language names to byte counts for one repository.
type RepoLanguages struct {
	RepoName  string           `json:"repo_name"`
	Languages map[string]int64 `json:"languages"`
}

// LanguageBreakdown is a user's repositories plus per-repo language data
// for every repository whose language lookup succeeded.
type LanguageBreakdown struct {
	Repos     []Repository    `json:"repos"`
	Languages []RepoLanguages `json:"languages"`
}

// ReposOptions controls the recent-repositories listing.
type ReposOptions struct {
	PerPage   int
	Sort      string
	Direction string
}

// DefaultReposOptions lists the five most recently created repositories.
var DefaultReposOptions = ReposOptions{PerPage: 5, Sort: "created", Direction: "desc"}

// searchResponse is the /search/users response body.
type searchResponse struct {
	TotalCount int `json:"total_count"`
	Items      []struct {
		Login     string `json:"login"`
		ID        int64  `json:"id"`
		AvatarURL string `json:"avatar_url"`
	} `json:"items"`
}
